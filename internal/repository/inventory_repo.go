package repository

import (
	"go-warehouse-api/internal/model"

	"gorm.io/gorm"
)

type InventoryFilter struct {
	ItemID     uint
	LocationID uint
}

type InventoryRepository interface {
	Create(inv *model.Inventory) error
	FindAll(filter InventoryFilter) ([]model.Inventory, error)
	FindByID(id uint) (*model.Inventory, error)
	FindByItemAndLocation(itemID, locationID uint) (*model.Inventory, error)
	Update(inv *model.Inventory) error
	Delete(id uint) error
}

type inventoryRepo struct {
	db *gorm.DB
}

func NewInventoryRepo(db *gorm.DB) InventoryRepository {
	return &inventoryRepo{db}
}

func (r *inventoryRepo) Create(inv *model.Inventory) error {
	return r.db.Create(inv).Error
}

func (r *inventoryRepo) FindAll(filter InventoryFilter) ([]model.Inventory, error) {
	var inventories []model.Inventory

	q := r.db.Model(&model.Inventory{}).Preload("Item").Preload("Location")
	if filter.ItemID > 0 {
		q = q.Where("item_id = ?", filter.ItemID)
	}
	if filter.LocationID > 0 {
		q = q.Where("location_id = ?", filter.LocationID)
	}

	err := q.Order("id ASC").Find(&inventories).Error
	return inventories, err
}

func (r *inventoryRepo) FindByID(id uint) (*model.Inventory, error) {
	var inv model.Inventory
	err := r.db.Preload("Item").Preload("Location").First(&inv, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *inventoryRepo) FindByItemAndLocation(itemID, locationID uint) (*model.Inventory, error) {
	var inv model.Inventory
	err := r.db.First(&inv, "item_id = ? AND location_id = ?", itemID, locationID).Error
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *inventoryRepo) Update(inv *model.Inventory) error {
	return r.db.Save(inv).Error
}

func (r *inventoryRepo) Delete(id uint) error {
	return r.db.Delete(&model.Inventory{}, id).Error
}
