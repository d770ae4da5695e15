package repository

import (
	"go-warehouse-api/internal/model"

	"gorm.io/gorm"
)

var supplierSortFields = map[string]string{
	"id":         "id",
	"code":       "code",
	"name":       "name",
	"city":       "city",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

type SupplierRepository interface {
	Create(supplier *model.Supplier) error
	FindAll(nameFilter string, sort Sort) ([]model.Supplier, error)
	FindByID(id uint) (*model.Supplier, error)
	Update(supplier *model.Supplier) error
	Delete(id uint) error
}

type supplierRepo struct {
	db *gorm.DB
}

func NewSupplierRepo(db *gorm.DB) SupplierRepository {
	return &supplierRepo{db}
}

func (r *supplierRepo) Create(supplier *model.Supplier) error {
	return r.db.Create(supplier).Error
}

func (r *supplierRepo) FindAll(nameFilter string, sort Sort) ([]model.Supplier, error) {
	var suppliers []model.Supplier

	q := r.db.Model(&model.Supplier{})
	q = applyContains(q, "name", nameFilter)
	q = applySort(q, supplierSortFields, sort)

	err := q.Find(&suppliers).Error
	return suppliers, err
}

func (r *supplierRepo) FindByID(id uint) (*model.Supplier, error) {
	var supplier model.Supplier
	err := r.db.First(&supplier, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *supplierRepo) Update(supplier *model.Supplier) error {
	return r.db.Save(supplier).Error
}

func (r *supplierRepo) Delete(id uint) error {
	return r.db.Delete(&model.Supplier{}, id).Error
}
