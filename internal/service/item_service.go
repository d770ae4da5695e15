package service

import (
	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/repository"
	"go-warehouse-api/pkg/apperr"

	"github.com/google/uuid"
)

type ItemService interface {
	ListItems(filter repository.ItemFilter, sort repository.Sort) ([]model.Item, error)
	GetItemByID(id uint) (*model.Item, error)
	GetItemByUID(uid string) (*model.Item, error)
	CreateItem(item *model.Item) error
	UpdateItem(id uint, item *model.Item) (*model.Item, error)
	DeleteItem(id uint) error
}

type itemService struct {
	itemRepo     repository.ItemRepository
	supplierRepo repository.SupplierRepository
}

func NewItemService(iRepo repository.ItemRepository, sRepo repository.SupplierRepository) ItemService {
	return &itemService{itemRepo: iRepo, supplierRepo: sRepo}
}

func (s *itemService) ListItems(filter repository.ItemFilter, sort repository.Sort) ([]model.Item, error) {
	return s.itemRepo.FindAll(filter, sort)
}

func (s *itemService) GetItemByID(id uint) (*model.Item, error) {
	item, err := s.itemRepo.FindByID(id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, apperr.NotFound("item", id)
		}
		return nil, apperr.Internal(err)
	}
	return item, nil
}

func (s *itemService) GetItemByUID(uid string) (*model.Item, error) {
	item, err := s.itemRepo.FindByUID(uid)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, apperr.NotFound("item", uid)
		}
		return nil, apperr.Internal(err)
	}
	return item, nil
}

func (s *itemService) CreateItem(item *model.Item) error {
	if err := validateInput(item); err != nil {
		return err
	}

	// Mint a UID for items registered without one
	if item.UID == "" {
		item.UID = uuid.NewString()
	}

	// Cek duplikasi UID
	existing, err := s.itemRepo.FindByUID(item.UID)
	if err == nil && existing != nil {
		return apperr.Conflict("item uid %s already exists", item.UID)
	}
	if err != nil && !isRecordNotFound(err) {
		return apperr.Internal(err)
	}

	if item.SupplierID != nil {
		if _, err := s.supplierRepo.FindByID(*item.SupplierID); err != nil {
			if isRecordNotFound(err) {
				return apperr.NotFound("supplier", *item.SupplierID)
			}
			return apperr.Internal(err)
		}
	}

	if err := s.itemRepo.Create(item); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (s *itemService) UpdateItem(id uint, req *model.Item) (*model.Item, error) {
	existing, err := s.itemRepo.FindByID(id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, apperr.NotFound("item", id)
		}
		return nil, apperr.Internal(err)
	}

	// UID is immutable once assigned
	existing.Code = req.Code
	existing.Name = req.Name
	existing.Description = req.Description
	existing.UnitOfMeasure = req.UnitOfMeasure
	existing.UnitPrice = req.UnitPrice
	existing.SupplierID = req.SupplierID

	if err := validateInput(existing); err != nil {
		return nil, err
	}
	if err := s.itemRepo.Update(existing); err != nil {
		return nil, apperr.Internal(err)
	}
	return existing, nil
}

func (s *itemService) DeleteItem(id uint) error {
	if err := s.itemRepo.Delete(id); err != nil {
		return apperr.Internal(err)
	}
	return nil
}
