package repository

import (
	"testing"

	"go-warehouse-api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDockRepoCRUD(t *testing.T) {
	db := newTestDB(t)
	repo := NewDockRepo(db)

	dock := &model.Dock{WarehouseID: 1, Name: "Dock A", Status: model.DockUnoccupied}
	require.NoError(t, repo.Create(dock))
	require.NotZero(t, dock.ID)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	got, err := repo.FindByID(dock.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dock A", got.Name)

	got.ShipmentID = 7
	got.Status = model.DockOccupied
	require.NoError(t, repo.Update(got))

	updated, err := repo.FindByID(dock.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(7), updated.ShipmentID)
	assert.Equal(t, model.DockOccupied, updated.Status)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt) || updated.UpdatedAt.Equal(updated.CreatedAt))

	deleted, err := repo.Delete(dock.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(dock.ID)
	require.NoError(t, err)
	assert.False(t, deleted, "second delete finds nothing")
}

func TestDockRepoFindAllOrdersByID(t *testing.T) {
	db := newTestDB(t)
	repo := NewDockRepo(db)

	for _, name := range []string{"Dock A", "Dock B", "Dock C"} {
		require.NoError(t, repo.Create(&model.Dock{WarehouseID: 1, Name: name, Status: model.DockUnoccupied}))
	}

	docks, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, docks, 3)
	assert.Equal(t, "Dock A", docks[0].Name)
	assert.Equal(t, "Dock C", docks[2].Name)
}
