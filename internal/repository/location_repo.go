package repository

import (
	"go-warehouse-api/internal/model"

	"gorm.io/gorm"
)

type LocationFilter struct {
	WarehouseID uint
	Code        string
}

var locationSortFields = map[string]string{
	"id":           "id",
	"code":         "code",
	"warehouse_id": "warehouse_id",
	"row":          "row",
	"created_at":   "created_at",
	"updated_at":   "updated_at",
}

type LocationRepository interface {
	Create(location *model.Location) error
	FindAll(filter LocationFilter, sort Sort) ([]model.Location, error)
	FindByID(id uint) (*model.Location, error)
	Update(location *model.Location) error
	Delete(id uint) error
}

type locationRepo struct {
	db *gorm.DB
}

func NewLocationRepo(db *gorm.DB) LocationRepository {
	return &locationRepo{db}
}

func (r *locationRepo) Create(location *model.Location) error {
	return r.db.Create(location).Error
}

func (r *locationRepo) FindAll(filter LocationFilter, sort Sort) ([]model.Location, error) {
	var locations []model.Location

	q := r.db.Model(&model.Location{})
	if filter.WarehouseID > 0 {
		q = q.Where("warehouse_id = ?", filter.WarehouseID)
	}
	q = applyContains(q, "code", filter.Code)
	q = applySort(q, locationSortFields, sort)

	err := q.Find(&locations).Error
	return locations, err
}

func (r *locationRepo) FindByID(id uint) (*model.Location, error) {
	var location model.Location
	err := r.db.First(&location, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &location, nil
}

func (r *locationRepo) Update(location *model.Location) error {
	return r.db.Save(location).Error
}

func (r *locationRepo) Delete(id uint) error {
	return r.db.Delete(&model.Location{}, id).Error
}
