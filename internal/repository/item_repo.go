package repository

import (
	"go-warehouse-api/internal/model"

	"gorm.io/gorm"
)

type ItemFilter struct {
	UID  string
	Code string
	Name string
}

var itemSortFields = map[string]string{
	"id":         "id",
	"uid":        "uid",
	"code":       "code",
	"name":       "name",
	"unit_price": "unit_price",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

type ItemRepository interface {
	Create(item *model.Item) error
	FindAll(filter ItemFilter, sort Sort) ([]model.Item, error)
	FindByID(id uint) (*model.Item, error)
	FindByUID(uid string) (*model.Item, error)
	Update(item *model.Item) error
	Delete(id uint) error
}

type itemRepo struct {
	db *gorm.DB
}

func NewItemRepo(db *gorm.DB) ItemRepository {
	return &itemRepo{db}
}

func (r *itemRepo) Create(item *model.Item) error {
	return r.db.Create(item).Error
}

func (r *itemRepo) FindAll(filter ItemFilter, sort Sort) ([]model.Item, error) {
	var items []model.Item

	q := r.db.Model(&model.Item{})
	q = applyContains(q, "uid", filter.UID)
	q = applyContains(q, "code", filter.Code)
	q = applyContains(q, "name", filter.Name)
	q = applySort(q, itemSortFields, sort)

	err := q.Find(&items).Error
	return items, err
}

func (r *itemRepo) FindByID(id uint) (*model.Item, error) {
	var item model.Item
	err := r.db.First(&item, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepo) FindByUID(uid string) (*model.Item, error) {
	var item model.Item
	err := r.db.First(&item, "uid = ?", uid).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepo) Update(item *model.Item) error {
	return r.db.Save(item).Error
}

func (r *itemRepo) Delete(id uint) error {
	return r.db.Delete(&model.Item{}, id).Error
}
