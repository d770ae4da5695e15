package service

import (
	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/repository"
	"go-warehouse-api/pkg/apperr"
)

type InventoryService interface {
	ListInventories(filter repository.InventoryFilter) ([]model.Inventory, error)
	GetInventoryByID(id uint) (*model.Inventory, error)
	CreateInventory(inv *model.Inventory) error
	UpdateInventory(id uint, quantity int) (*model.Inventory, error)
	DeleteInventory(id uint) error
}

type inventoryService struct {
	inventoryRepo repository.InventoryRepository
	itemRepo      repository.ItemRepository
	locationRepo  repository.LocationRepository
}

func NewInventoryService(invRepo repository.InventoryRepository, iRepo repository.ItemRepository, lRepo repository.LocationRepository) InventoryService {
	return &inventoryService{
		inventoryRepo: invRepo,
		itemRepo:      iRepo,
		locationRepo:  lRepo,
	}
}

func (s *inventoryService) ListInventories(filter repository.InventoryFilter) ([]model.Inventory, error) {
	return s.inventoryRepo.FindAll(filter)
}

func (s *inventoryService) GetInventoryByID(id uint) (*model.Inventory, error) {
	inv, err := s.inventoryRepo.FindByID(id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, apperr.NotFound("inventory", id)
		}
		return nil, apperr.Internal(err)
	}
	return inv, nil
}

func (s *inventoryService) CreateInventory(inv *model.Inventory) error {
	if err := validateInput(inv); err != nil {
		return err
	}

	if _, err := s.itemRepo.FindByID(inv.ItemID); err != nil {
		if isRecordNotFound(err) {
			return apperr.NotFound("item", inv.ItemID)
		}
		return apperr.Internal(err)
	}
	if _, err := s.locationRepo.FindByID(inv.LocationID); err != nil {
		if isRecordNotFound(err) {
			return apperr.NotFound("location", inv.LocationID)
		}
		return apperr.Internal(err)
	}

	// One record per (item, location) pair
	existing, err := s.inventoryRepo.FindByItemAndLocation(inv.ItemID, inv.LocationID)
	if err == nil && existing != nil {
		return apperr.Conflict("inventory for item %d at location %d already exists", inv.ItemID, inv.LocationID)
	}
	if err != nil && !isRecordNotFound(err) {
		return apperr.Internal(err)
	}

	if err := s.inventoryRepo.Create(inv); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (s *inventoryService) UpdateInventory(id uint, quantity int) (*model.Inventory, error) {
	if quantity < 0 {
		return nil, apperr.Validation("quantity cannot be negative")
	}

	inv, err := s.inventoryRepo.FindByID(id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, apperr.NotFound("inventory", id)
		}
		return nil, apperr.Internal(err)
	}

	inv.Quantity = quantity
	if err := s.inventoryRepo.Update(inv); err != nil {
		return nil, apperr.Internal(err)
	}
	return inv, nil
}

func (s *inventoryService) DeleteInventory(id uint) error {
	if err := s.inventoryRepo.Delete(id); err != nil {
		return apperr.Internal(err)
	}
	return nil
}
