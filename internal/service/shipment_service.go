package service

import (
	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/repository"
	"go-warehouse-api/pkg/apperr"
)

type ShipmentService interface {
	ListShipments(filter repository.ShipmentFilter, sort repository.Sort) ([]model.Shipment, error)
	GetShipmentByID(id uint) (*model.Shipment, error)
	CreateShipment(shipment *model.Shipment) error
	UpdateShipment(id uint, shipment *model.Shipment) (*model.Shipment, error)
	DeleteShipment(id uint) error
}

type shipmentService struct {
	shipmentRepo repository.ShipmentRepository
	orderRepo    repository.OrderRepository
}

func NewShipmentService(sRepo repository.ShipmentRepository, oRepo repository.OrderRepository) ShipmentService {
	return &shipmentService{shipmentRepo: sRepo, orderRepo: oRepo}
}

func (s *shipmentService) ListShipments(filter repository.ShipmentFilter, sort repository.Sort) ([]model.Shipment, error) {
	return s.shipmentRepo.FindAll(filter, sort)
}

func (s *shipmentService) GetShipmentByID(id uint) (*model.Shipment, error) {
	shipment, err := s.shipmentRepo.FindByID(id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, apperr.NotFound("shipment", id)
		}
		return nil, apperr.Internal(err)
	}
	return shipment, nil
}

func (s *shipmentService) CreateShipment(shipment *model.Shipment) error {
	if err := validateInput(shipment); err != nil {
		return err
	}

	if shipment.OrderID != nil {
		if _, err := s.orderRepo.FindByID(*shipment.OrderID); err != nil {
			if isRecordNotFound(err) {
				return apperr.NotFound("order", *shipment.OrderID)
			}
			return apperr.Internal(err)
		}
	}

	if err := s.shipmentRepo.Create(shipment); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (s *shipmentService) UpdateShipment(id uint, req *model.Shipment) (*model.Shipment, error) {
	existing, err := s.shipmentRepo.FindByID(id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, apperr.NotFound("shipment", id)
		}
		return nil, apperr.Internal(err)
	}

	existing.Reference = req.Reference
	existing.CarrierCode = req.CarrierCode
	existing.Status = req.Status
	existing.ShipmentDate = req.ShipmentDate
	if req.OrderID != nil {
		if _, err := s.orderRepo.FindByID(*req.OrderID); err != nil {
			if isRecordNotFound(err) {
				return nil, apperr.NotFound("order", *req.OrderID)
			}
			return nil, apperr.Internal(err)
		}
		existing.OrderID = req.OrderID
	}

	if err := s.shipmentRepo.Update(existing); err != nil {
		return nil, apperr.Internal(err)
	}
	return existing, nil
}

func (s *shipmentService) DeleteShipment(id uint) error {
	if err := s.shipmentRepo.Delete(id); err != nil {
		return apperr.Internal(err)
	}
	return nil
}
