package service

import (
	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/repository"
	"go-warehouse-api/internal/ws"
	"go-warehouse-api/pkg/apperr"
)

// TransferLineInput is one (item uid, amount) pair of a new transfer.
type TransferLineInput struct {
	ItemUID string `json:"item_uid" validate:"required"`
	Amount  int    `json:"amount" validate:"required,gt=0"`
}

type CreateTransferInput struct {
	Reference      string              `json:"reference"`
	FromLocationID *uint               `json:"from_location_id"`
	ToLocationID   *uint               `json:"to_location_id"`
	Status         string              `json:"status"`
	Items          []TransferLineInput `json:"items" validate:"required,min=1,dive"`
}

// UpdateTransferInput is a patch: nil leaves the field untouched, an explicit
// zero location id clears the link. Item lines are never updated here.
type UpdateTransferInput struct {
	Reference      *string `json:"reference"`
	FromLocationID *uint   `json:"from_location_id"`
	ToLocationID   *uint   `json:"to_location_id"`
	Status         *string `json:"status"`
}

type TransferService interface {
	ListTransfers(filter repository.TransferFilter, sort repository.Sort) ([]model.Transfer, error)
	GetTransferByID(id uint) (*model.Transfer, error)
	CreateTransfer(input *CreateTransferInput) (*model.Transfer, error)
	UpdateTransfer(id uint, input *UpdateTransferInput) error
	DeleteTransfer(id uint) error
	CommitTransfer(id uint) error
}

type transferService struct {
	transferRepo repository.TransferRepository
	itemRepo     repository.ItemRepository
	locationRepo repository.LocationRepository
	hub          *ws.Hub
}

func NewTransferService(tRepo repository.TransferRepository, iRepo repository.ItemRepository, lRepo repository.LocationRepository, hub *ws.Hub) TransferService {
	return &transferService{
		transferRepo: tRepo,
		itemRepo:     iRepo,
		locationRepo: lRepo,
		hub:          hub,
	}
}

func (s *transferService) ListTransfers(filter repository.TransferFilter, sort repository.Sort) ([]model.Transfer, error) {
	return s.transferRepo.FindAll(filter, sort)
}

func (s *transferService) GetTransferByID(id uint) (*model.Transfer, error) {
	transfer, err := s.transferRepo.FindByID(id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, apperr.NotFound("transfer", id)
		}
		return nil, apperr.Internal(err)
	}
	return transfer, nil
}

func (s *transferService) CreateTransfer(input *CreateTransferInput) (*model.Transfer, error) {
	// 1. Validasi input: at least one line, every amount > 0
	if err := validateInput(input); err != nil {
		return nil, err
	}

	// 2. Every line must reference a known item
	for _, line := range input.Items {
		if _, err := s.itemRepo.FindByUID(line.ItemUID); err != nil {
			if isRecordNotFound(err) {
				return nil, apperr.NotFound("item", line.ItemUID)
			}
			return nil, apperr.Internal(err)
		}
	}

	// 3. Locations, when supplied, must resolve
	fromID, err := s.resolveLocation(input.FromLocationID)
	if err != nil {
		return nil, err
	}
	toID, err := s.resolveLocation(input.ToLocationID)
	if err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = model.TransferStatusPending
	}

	transfer := &model.Transfer{
		Reference:      input.Reference,
		FromLocationID: fromID,
		ToLocationID:   toID,
		Status:         status,
	}
	for _, line := range input.Items {
		transfer.Items = append(transfer.Items, model.TransferItem{
			ItemUID: line.ItemUID,
			Amount:  line.Amount,
		})
	}

	// 4. Header + lines land together or not at all
	if err := s.transferRepo.Create(nil, transfer); err != nil {
		return nil, apperr.Internal(err)
	}

	s.hub.Publish("transfer_created", transfer)
	return transfer, nil
}

func (s *transferService) UpdateTransfer(id uint, input *UpdateTransferInput) error {
	transfer, err := s.transferRepo.FindByID(id)
	if err != nil {
		if isRecordNotFound(err) {
			return apperr.NotFound("transfer", id)
		}
		return apperr.Internal(err)
	}

	if input.Reference != nil {
		transfer.Reference = *input.Reference
	}
	if input.Status != nil {
		transfer.Status = *input.Status
	}
	if input.FromLocationID != nil {
		locID, err := s.resolveLocation(input.FromLocationID)
		if err != nil {
			return err
		}
		transfer.FromLocationID = locID
	}
	if input.ToLocationID != nil {
		locID, err := s.resolveLocation(input.ToLocationID)
		if err != nil {
			return err
		}
		transfer.ToLocationID = locID
	}

	if err := s.transferRepo.Update(transfer); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// DeleteTransfer is an idempotent no-op when the id does not exist.
func (s *transferService) DeleteTransfer(id uint) error {
	if err := s.transferRepo.Delete(id); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// CommitTransfer applies the stock movement and marks the transfer Completed.
// Only a Pending transfer (blank counts as Pending) with both locations set
// can be committed.
func (s *transferService) CommitTransfer(id uint) error {
	transfer, err := s.transferRepo.FindByID(id)
	if err != nil {
		if isRecordNotFound(err) {
			return apperr.NotFound("transfer", id)
		}
		return apperr.Internal(err)
	}

	if transfer.Status != "" && transfer.Status != model.TransferStatusPending {
		return apperr.InvalidState("transfer %d cannot be committed from status %q", id, transfer.Status)
	}
	if transfer.FromLocationID == nil || transfer.ToLocationID == nil {
		return apperr.InvalidState("transfer %d cannot be committed without source and destination locations", id)
	}

	if err := s.transferRepo.Commit(transfer); err != nil {
		return apperr.From(err)
	}

	transfer.Status = model.TransferStatusCompleted
	s.hub.Publish("transfer_committed", transfer)
	return nil
}

// resolveLocation maps a patch value to a persisted location reference: nil or
// zero means "no location", anything else must exist.
func (s *transferService) resolveLocation(id *uint) (*uint, error) {
	if id == nil || *id == 0 {
		return nil, nil
	}
	if _, err := s.locationRepo.FindByID(*id); err != nil {
		if isRecordNotFound(err) {
			return nil, apperr.NotFound("location", *id)
		}
		return nil, apperr.Internal(err)
	}
	return id, nil
}
