package service

import (
	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/repository"
	"go-warehouse-api/pkg/apperr"
)

type SupplierService interface {
	ListSuppliers(nameFilter string, sort repository.Sort) ([]model.Supplier, error)
	GetSupplierByID(id uint) (*model.Supplier, error)
	CreateSupplier(supplier *model.Supplier) error
	UpdateSupplier(id uint, supplier *model.Supplier) (*model.Supplier, error)
	DeleteSupplier(id uint) error
}

type supplierService struct {
	supplierRepo repository.SupplierRepository
}

func NewSupplierService(sRepo repository.SupplierRepository) SupplierService {
	return &supplierService{supplierRepo: sRepo}
}

func (s *supplierService) ListSuppliers(nameFilter string, sort repository.Sort) ([]model.Supplier, error) {
	return s.supplierRepo.FindAll(nameFilter, sort)
}

func (s *supplierService) GetSupplierByID(id uint) (*model.Supplier, error) {
	supplier, err := s.supplierRepo.FindByID(id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, apperr.NotFound("supplier", id)
		}
		return nil, apperr.Internal(err)
	}
	return supplier, nil
}

func (s *supplierService) CreateSupplier(supplier *model.Supplier) error {
	if err := validateInput(supplier); err != nil {
		return err
	}
	if err := s.supplierRepo.Create(supplier); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (s *supplierService) UpdateSupplier(id uint, req *model.Supplier) (*model.Supplier, error) {
	existing, err := s.supplierRepo.FindByID(id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, apperr.NotFound("supplier", id)
		}
		return nil, apperr.Internal(err)
	}

	existing.Code = req.Code
	existing.Name = req.Name
	existing.Address = req.Address
	existing.City = req.City
	existing.Country = req.Country
	existing.Phone = req.Phone
	existing.Email = req.Email

	if err := validateInput(existing); err != nil {
		return nil, err
	}
	if err := s.supplierRepo.Update(existing); err != nil {
		return nil, apperr.Internal(err)
	}
	return existing, nil
}

func (s *supplierService) DeleteSupplier(id uint) error {
	if err := s.supplierRepo.Delete(id); err != nil {
		return apperr.Internal(err)
	}
	return nil
}
