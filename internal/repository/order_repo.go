package repository

import (
	"go-warehouse-api/internal/model"

	"gorm.io/gorm"
)

type OrderFilter struct {
	Reference string
	Status    string
	ClientID  uint
}

var orderSortFields = map[string]string{
	"id":         "id",
	"reference":  "reference",
	"status":     "status",
	"order_date": "order_date",
	"client_id":  "client_id",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

type OrderRepository interface {
	Create(tx *gorm.DB, order *model.Order) error
	FindAll(filter OrderFilter, sort Sort) ([]model.Order, error)
	FindByID(id uint) (*model.Order, error)
	Update(order *model.Order) error
	Delete(id uint) error
}

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepo(db *gorm.DB) OrderRepository {
	return &orderRepo{db}
}

func (r *orderRepo) Create(tx *gorm.DB, order *model.Order) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Create(order).Error
}

func (r *orderRepo) FindAll(filter OrderFilter, sort Sort) ([]model.Order, error) {
	var orders []model.Order

	q := r.db.Model(&model.Order{}).Preload("Items")
	q = applyContains(q, "reference", filter.Reference)
	q = applyContains(q, "status", filter.Status)
	if filter.ClientID > 0 {
		q = q.Where("client_id = ?", filter.ClientID)
	}
	q = applySort(q, orderSortFields, sort)

	err := q.Find(&orders).Error
	return orders, err
}

func (r *orderRepo) FindByID(id uint) (*model.Order, error) {
	var order model.Order
	err := r.db.Preload("Items").First(&order, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepo) Update(order *model.Order) error {
	return r.db.Save(order).Error
}

func (r *orderRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&model.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Order{}, id).Error
	})
}
