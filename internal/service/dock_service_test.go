package service

import (
	"testing"

	"go-warehouse-api/internal/model"
	"go-warehouse-api/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeDockRepo struct {
	docks  map[uint]*model.Dock
	nextID uint
}

func newFakeDockRepo() *fakeDockRepo {
	return &fakeDockRepo{docks: make(map[uint]*model.Dock), nextID: 1}
}

func (r *fakeDockRepo) Create(dock *model.Dock) error {
	dock.ID = r.nextID
	r.nextID++
	clone := *dock
	r.docks[dock.ID] = &clone
	return nil
}

func (r *fakeDockRepo) FindAll() ([]model.Dock, error) {
	var out []model.Dock
	for _, d := range r.docks {
		out = append(out, *d)
	}
	return out, nil
}

func (r *fakeDockRepo) FindByID(id uint) (*model.Dock, error) {
	d, ok := r.docks[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *d
	return &clone, nil
}

func (r *fakeDockRepo) Update(dock *model.Dock) error {
	clone := *dock
	r.docks[dock.ID] = &clone
	return nil
}

func (r *fakeDockRepo) Delete(id uint) (bool, error) {
	if _, ok := r.docks[id]; !ok {
		return false, nil
	}
	delete(r.docks, id)
	return true, nil
}

func (r *fakeDockRepo) Count() (int64, error) {
	return int64(len(r.docks)), nil
}

func TestCreateDockRejectsMissingWarehouse(t *testing.T) {
	svc := NewDockService(newFakeDockRepo(), nil)

	_, err := svc.CreateDock(&CreateDockInput{Name: "Dock X"})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeValidation))
}

func TestCreateDockAutoNames(t *testing.T) {
	svc := NewDockService(newFakeDockRepo(), nil)

	first, err := svc.CreateDock(&CreateDockInput{WarehouseID: 1})
	require.NoError(t, err)
	second, err := svc.CreateDock(&CreateDockInput{WarehouseID: 1})
	require.NoError(t, err)

	assert.Equal(t, "Dock A", first.Name)
	assert.Equal(t, "Dock B", second.Name)
	assert.Equal(t, model.DockUnoccupied, first.Status)
	assert.Zero(t, first.ShipmentID)
}

func TestCreateDockKeepsSuppliedName(t *testing.T) {
	svc := NewDockService(newFakeDockRepo(), nil)

	dock, err := svc.CreateDock(&CreateDockInput{Name: "North Gate", WarehouseID: 2})
	require.NoError(t, err)
	assert.Equal(t, "North Gate", dock.Name)
}

func TestUpdateDockDerivesOccupancy(t *testing.T) {
	svc := NewDockService(newFakeDockRepo(), nil)

	dock, err := svc.CreateDock(&CreateDockInput{Name: "Dock A", WarehouseID: 1})
	require.NoError(t, err)

	ok, err := svc.UpdateDock(dock.ID, &UpdateDockInput{Name: "Dock A", ShipmentID: 7})
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := svc.GetDockByID(dock.ID)
	require.NoError(t, err)
	assert.Equal(t, model.DockOccupied, got.Status)
	assert.Equal(t, uint(7), got.ShipmentID)

	ok, err = svc.ClearDock(dock.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err = svc.GetDockByID(dock.ID)
	require.NoError(t, err)
	assert.Equal(t, model.DockUnoccupied, got.Status)
	assert.Zero(t, got.ShipmentID)
}

func TestUpdateDockPreservesWarehouse(t *testing.T) {
	svc := NewDockService(newFakeDockRepo(), nil)

	dock, err := svc.CreateDock(&CreateDockInput{Name: "Dock A", WarehouseID: 3})
	require.NoError(t, err)

	ok, err := svc.UpdateDock(dock.ID, &UpdateDockInput{Name: "Renamed", ShipmentID: 42})
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := svc.GetDockByID(dock.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(3), got.WarehouseID)
	assert.Equal(t, "Renamed", got.Name)
}

func TestUpdateDockNotFound(t *testing.T) {
	svc := NewDockService(newFakeDockRepo(), nil)

	ok, err := svc.UpdateDock(99, &UpdateDockInput{Name: "x", ShipmentID: 1})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClearDockNotFound(t *testing.T) {
	svc := NewDockService(newFakeDockRepo(), nil)

	ok, err := svc.ClearDock(99)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDeleteDock(t *testing.T) {
	svc := NewDockService(newFakeDockRepo(), nil)

	dock, err := svc.CreateDock(&CreateDockInput{Name: "Dock A", WarehouseID: 1})
	require.NoError(t, err)

	deleted, err := svc.DeleteDock(dock.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = svc.DeleteDock(dock.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestDockLetters(t *testing.T) {
	cases := map[int64]string{
		0:  "A",
		1:  "B",
		25: "Z",
		26: "AA",
		27: "AB",
		51: "AZ",
		52: "BA",
	}
	for n, want := range cases {
		assert.Equal(t, want, dockLetters(n), "count %d", n)
	}
}
