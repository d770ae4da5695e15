package repository

import (
	"go-warehouse-api/internal/model"

	"gorm.io/gorm"
)

var warehouseSortFields = map[string]string{
	"id":         "id",
	"code":       "code",
	"name":       "name",
	"city":       "city",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

type WarehouseRepository interface {
	Create(warehouse *model.Warehouse) error
	FindAll(nameFilter string, sort Sort) ([]model.Warehouse, error)
	FindByID(id uint) (*model.Warehouse, error)
	Update(warehouse *model.Warehouse) error
	Delete(id uint) error
}

type warehouseRepo struct {
	db *gorm.DB
}

func NewWarehouseRepo(db *gorm.DB) WarehouseRepository {
	return &warehouseRepo{db}
}

func (r *warehouseRepo) Create(warehouse *model.Warehouse) error {
	return r.db.Create(warehouse).Error
}

func (r *warehouseRepo) FindAll(nameFilter string, sort Sort) ([]model.Warehouse, error) {
	var warehouses []model.Warehouse

	q := r.db.Model(&model.Warehouse{})
	q = applyContains(q, "name", nameFilter)
	q = applySort(q, warehouseSortFields, sort)

	err := q.Find(&warehouses).Error
	return warehouses, err
}

func (r *warehouseRepo) FindByID(id uint) (*model.Warehouse, error) {
	var warehouse model.Warehouse
	err := r.db.Preload("Locations").Preload("Docks").First(&warehouse, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &warehouse, nil
}

func (r *warehouseRepo) Update(warehouse *model.Warehouse) error {
	return r.db.Save(warehouse).Error
}

func (r *warehouseRepo) Delete(id uint) error {
	return r.db.Delete(&model.Warehouse{}, id).Error
}
