package service

import (
	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/repository"
	"go-warehouse-api/pkg/apperr"
)

type LocationService interface {
	ListLocations(filter repository.LocationFilter, sort repository.Sort) ([]model.Location, error)
	GetLocationByID(id uint) (*model.Location, error)
	CreateLocation(location *model.Location) error
	UpdateLocation(id uint, location *model.Location) (*model.Location, error)
	DeleteLocation(id uint) error
}

type locationService struct {
	locationRepo  repository.LocationRepository
	warehouseRepo repository.WarehouseRepository
}

func NewLocationService(lRepo repository.LocationRepository, wRepo repository.WarehouseRepository) LocationService {
	return &locationService{locationRepo: lRepo, warehouseRepo: wRepo}
}

func (s *locationService) ListLocations(filter repository.LocationFilter, sort repository.Sort) ([]model.Location, error) {
	return s.locationRepo.FindAll(filter, sort)
}

func (s *locationService) GetLocationByID(id uint) (*model.Location, error) {
	location, err := s.locationRepo.FindByID(id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, apperr.NotFound("location", id)
		}
		return nil, apperr.Internal(err)
	}
	return location, nil
}

func (s *locationService) CreateLocation(location *model.Location) error {
	if err := validateInput(location); err != nil {
		return err
	}

	if _, err := s.warehouseRepo.FindByID(location.WarehouseID); err != nil {
		if isRecordNotFound(err) {
			return apperr.NotFound("warehouse", location.WarehouseID)
		}
		return apperr.Internal(err)
	}

	if err := s.locationRepo.Create(location); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (s *locationService) UpdateLocation(id uint, req *model.Location) (*model.Location, error) {
	existing, err := s.locationRepo.FindByID(id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, apperr.NotFound("location", id)
		}
		return nil, apperr.Internal(err)
	}

	// The warehouse link is set once at creation
	existing.Code = req.Code
	existing.Row = req.Row
	existing.Rack = req.Rack
	existing.Shelf = req.Shelf

	if err := s.locationRepo.Update(existing); err != nil {
		return nil, apperr.Internal(err)
	}
	return existing, nil
}

func (s *locationService) DeleteLocation(id uint) error {
	if err := s.locationRepo.Delete(id); err != nil {
		return apperr.Internal(err)
	}
	return nil
}
