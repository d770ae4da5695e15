package service

import (
	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/repository"
	"go-warehouse-api/pkg/apperr"
)

type WarehouseService interface {
	ListWarehouses(nameFilter string, sort repository.Sort) ([]model.Warehouse, error)
	GetWarehouseByID(id uint) (*model.Warehouse, error)
	CreateWarehouse(warehouse *model.Warehouse) error
	UpdateWarehouse(id uint, warehouse *model.Warehouse) (*model.Warehouse, error)
	DeleteWarehouse(id uint) error
}

type warehouseService struct {
	warehouseRepo repository.WarehouseRepository
}

func NewWarehouseService(wRepo repository.WarehouseRepository) WarehouseService {
	return &warehouseService{warehouseRepo: wRepo}
}

func (s *warehouseService) ListWarehouses(nameFilter string, sort repository.Sort) ([]model.Warehouse, error) {
	return s.warehouseRepo.FindAll(nameFilter, sort)
}

func (s *warehouseService) GetWarehouseByID(id uint) (*model.Warehouse, error) {
	warehouse, err := s.warehouseRepo.FindByID(id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, apperr.NotFound("warehouse", id)
		}
		return nil, apperr.Internal(err)
	}
	return warehouse, nil
}

func (s *warehouseService) CreateWarehouse(warehouse *model.Warehouse) error {
	if err := validateInput(warehouse); err != nil {
		return err
	}
	if err := s.warehouseRepo.Create(warehouse); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (s *warehouseService) UpdateWarehouse(id uint, req *model.Warehouse) (*model.Warehouse, error) {
	existing, err := s.warehouseRepo.FindByID(id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, apperr.NotFound("warehouse", id)
		}
		return nil, apperr.Internal(err)
	}

	existing.Code = req.Code
	existing.Name = req.Name
	existing.Address = req.Address
	existing.City = req.City
	existing.Country = req.Country

	if err := validateInput(existing); err != nil {
		return nil, err
	}
	if err := s.warehouseRepo.Update(existing); err != nil {
		return nil, apperr.Internal(err)
	}
	return existing, nil
}

func (s *warehouseService) DeleteWarehouse(id uint) error {
	if err := s.warehouseRepo.Delete(id); err != nil {
		return apperr.Internal(err)
	}
	return nil
}
