package repository

import (
	"testing"

	"go-warehouse-api/internal/model"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a throwaway in-memory database migrated with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}

	err = db.AutoMigrate(
		&model.Warehouse{}, &model.Location{}, &model.Item{}, &model.Inventory{},
		&model.Transfer{}, &model.TransferItem{}, &model.Dock{}, &model.Shipment{},
		&model.Supplier{}, &model.Client{}, &model.Contact{},
		&model.Order{}, &model.OrderItem{},
	)
	if err != nil {
		t.Fatalf("migrating test db: %v", err)
	}
	return db
}

// seedLocations creates a warehouse with n locations and returns their ids.
func seedLocations(t *testing.T, db *gorm.DB, n int) []uint {
	t.Helper()

	warehouse := model.Warehouse{Name: "Main"}
	if err := db.Create(&warehouse).Error; err != nil {
		t.Fatalf("seeding warehouse: %v", err)
	}

	ids := make([]uint, 0, n)
	for i := 0; i < n; i++ {
		loc := model.Location{WarehouseID: warehouse.ID}
		if err := db.Create(&loc).Error; err != nil {
			t.Fatalf("seeding location: %v", err)
		}
		ids = append(ids, loc.ID)
	}
	return ids
}

func seedItem(t *testing.T, db *gorm.DB, uid string) model.Item {
	t.Helper()

	item := model.Item{UID: uid, Name: "Item " + uid}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("seeding item %s: %v", uid, err)
	}
	return item
}

func seedStock(t *testing.T, db *gorm.DB, itemID, locationID uint, quantity int) {
	t.Helper()

	inv := model.Inventory{ItemID: itemID, LocationID: locationID, Quantity: quantity}
	if err := db.Create(&inv).Error; err != nil {
		t.Fatalf("seeding inventory: %v", err)
	}
}
