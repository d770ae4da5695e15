package repository

import (
	"testing"

	"go-warehouse-api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardStats(t *testing.T) {
	db := newTestDB(t)
	repo := NewDashboardRepo(db)
	locs := seedLocations(t, db, 2)
	seedItem(t, db, "UID001")
	seedItem(t, db, "UID002")

	require.NoError(t, db.Create(&model.Dock{WarehouseID: 1, Name: "Dock A", Status: model.DockUnoccupied}).Error)
	require.NoError(t, db.Create(&model.Dock{WarehouseID: 1, Name: "Dock B", ShipmentID: 9, Status: model.DockOccupied}).Error)

	require.NoError(t, db.Create(pendingTransfer("TRF001", locs[0], locs[1],
		model.TransferItem{ItemUID: "UID001", Amount: 2})).Error)
	completed := pendingTransfer("TRF002", locs[0], locs[1],
		model.TransferItem{ItemUID: "UID002", Amount: 1})
	completed.Status = model.TransferStatusCompleted
	require.NoError(t, db.Create(completed).Error)

	stats, err := repo.GetDashboardStats()
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalItems)
	assert.Equal(t, int64(2), stats.TotalLocations)
	assert.Equal(t, int64(2), stats.TotalDocks)
	assert.Equal(t, int64(1), stats.OccupiedDocks)
	assert.Equal(t, int64(1), stats.PendingTransfers)
}
