package service

import (
	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/repository"
	"go-warehouse-api/internal/ws"
	"go-warehouse-api/pkg/apperr"
)

type CreateDockInput struct {
	Name        string `json:"name"`
	WarehouseID uint   `json:"warehouse_id"`
}

type UpdateDockInput struct {
	Name       string `json:"name"`
	ShipmentID uint   `json:"shipment_id"`
}

type DockService interface {
	ListDocks() ([]model.Dock, error)
	GetDockByID(id uint) (*model.Dock, error)
	CreateDock(input *CreateDockInput) (*model.Dock, error)
	UpdateDock(id uint, input *UpdateDockInput) (bool, error)
	ClearDock(id uint) (bool, error)
	DeleteDock(id uint) (bool, error)
}

type dockService struct {
	dockRepo repository.DockRepository
	hub      *ws.Hub
}

func NewDockService(dRepo repository.DockRepository, hub *ws.Hub) DockService {
	return &dockService{dockRepo: dRepo, hub: hub}
}

func (s *dockService) ListDocks() ([]model.Dock, error) {
	return s.dockRepo.FindAll()
}

func (s *dockService) GetDockByID(id uint) (*model.Dock, error) {
	dock, err := s.dockRepo.FindByID(id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, apperr.NotFound("dock", id)
		}
		return nil, apperr.Internal(err)
	}
	return dock, nil
}

func (s *dockService) CreateDock(input *CreateDockInput) (*model.Dock, error) {
	if input.WarehouseID == 0 {
		return nil, apperr.Validation("warehouse_id must be a positive integer")
	}

	name := input.Name
	if name == "" {
		count, err := s.dockRepo.Count()
		if err != nil {
			return nil, apperr.Internal(err)
		}
		name = "Dock " + dockLetters(count)
	}

	dock := &model.Dock{
		WarehouseID: input.WarehouseID,
		Name:        name,
		ShipmentID:  0,
		Status:      model.DockUnoccupied,
	}
	if err := s.dockRepo.Create(dock); err != nil {
		return nil, apperr.Internal(err)
	}
	return dock, nil
}

// UpdateDock overwrites name and shipment assignment and re-derives the
// occupancy status. The warehouse link never changes. Returns false when the
// dock does not exist.
func (s *dockService) UpdateDock(id uint, input *UpdateDockInput) (bool, error) {
	dock, err := s.dockRepo.FindByID(id)
	if err != nil {
		if isRecordNotFound(err) {
			return false, nil
		}
		return false, apperr.Internal(err)
	}

	dock.Name = input.Name
	dock.ShipmentID = input.ShipmentID
	dock.Status = model.OccupancyStatus(input.ShipmentID)

	if err := s.dockRepo.Update(dock); err != nil {
		return false, apperr.Internal(err)
	}

	if dock.Status == model.DockOccupied {
		s.hub.Publish("dock_occupied", dock)
	} else {
		s.hub.Publish("dock_cleared", dock)
	}
	return true, nil
}

// ClearDock releases the dock's shipment, if any.
func (s *dockService) ClearDock(id uint) (bool, error) {
	dock, err := s.dockRepo.FindByID(id)
	if err != nil {
		if isRecordNotFound(err) {
			return false, nil
		}
		return false, apperr.Internal(err)
	}

	dock.ShipmentID = 0
	dock.Status = model.DockUnoccupied

	if err := s.dockRepo.Update(dock); err != nil {
		return false, apperr.Internal(err)
	}

	s.hub.Publish("dock_cleared", dock)
	return true, nil
}

func (s *dockService) DeleteDock(id uint) (bool, error) {
	deleted, err := s.dockRepo.Delete(id)
	if err != nil {
		return false, apperr.Internal(err)
	}
	return deleted, nil
}

// dockLetters turns a zero-based dock count into spreadsheet-style letters:
// 0 -> A, 25 -> Z, 26 -> AA.
func dockLetters(n int64) string {
	letters := ""
	n++
	for n > 0 {
		n--
		letters = string(rune('A'+n%26)) + letters
		n /= 26
	}
	return letters
}
