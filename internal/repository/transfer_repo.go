package repository

import (
	"errors"

	"go-warehouse-api/internal/model"
	"go-warehouse-api/pkg/apperr"

	"gorm.io/gorm"
)

// TransferFilter narrows ListTransfers. Zero values mean "no filter".
type TransferFilter struct {
	Reference      string
	Status         string
	FromLocationID uint
	ToLocationID   uint
}

var transferSortFields = map[string]string{
	"id":               "id",
	"reference":        "reference",
	"status":           "status",
	"from_location_id": "from_location_id",
	"to_location_id":   "to_location_id",
	"created_at":       "created_at",
	"updated_at":       "updated_at",
}

type TransferRepository interface {
	Create(tx *gorm.DB, transfer *model.Transfer) error
	FindAll(filter TransferFilter, sort Sort) ([]model.Transfer, error)
	FindByID(id uint) (*model.Transfer, error)
	Update(transfer *model.Transfer) error
	Delete(id uint) error
	Commit(transfer *model.Transfer) error
}

type transferRepo struct {
	db *gorm.DB
}

func NewTransferRepo(db *gorm.DB) TransferRepository {
	return &transferRepo{db}
}

// Create menerima *gorm.DB (tx) agar header + lines berjalan dalam satu transaksi
func (r *transferRepo) Create(tx *gorm.DB, transfer *model.Transfer) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Create(transfer).Error
}

func (r *transferRepo) FindAll(filter TransferFilter, sort Sort) ([]model.Transfer, error) {
	var transfers []model.Transfer

	q := r.db.Model(&model.Transfer{}).Preload("Items")
	q = applyContains(q, "reference", filter.Reference)
	q = applyContains(q, "status", filter.Status)
	if filter.FromLocationID > 0 {
		q = q.Where("from_location_id = ?", filter.FromLocationID)
	}
	if filter.ToLocationID > 0 {
		q = q.Where("to_location_id = ?", filter.ToLocationID)
	}
	q = applySort(q, transferSortFields, sort)

	err := q.Find(&transfers).Error
	return transfers, err
}

func (r *transferRepo) FindByID(id uint) (*model.Transfer, error) {
	var transfer model.Transfer
	err := r.db.Preload("Items").First(&transfer, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &transfer, nil
}

func (r *transferRepo) Update(transfer *model.Transfer) error {
	return r.db.Save(transfer).Error
}

func (r *transferRepo) Delete(id uint) error {
	// Lines are owned exclusively by the header.
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("transfer_id = ?", id).Delete(&model.TransferItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Transfer{}, id).Error
	})
}

// Commit moves every line's amount from the source location's inventory to the
// destination's and marks the transfer Completed, all in one transaction. Any
// failure (missing item, insufficient stock) rolls back the whole movement.
// The final status update only matches a still-pending row, so two racing
// commits can never both apply: the loser's movement rolls back. The caller
// must have checked the status precondition and that both locations are set.
func (r *transferRepo) Commit(transfer *model.Transfer) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, line := range transfer.Items {
			var item model.Item
			if err := tx.First(&item, "uid = ?", line.ItemUID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperr.NotFound("item", line.ItemUID)
				}
				return err
			}

			// Check available quantity at the source.
			var src model.Inventory
			available := 0
			err := tx.First(&src, "item_id = ? AND location_id = ?", item.ID, *transfer.FromLocationID).Error
			if err == nil {
				available = src.Quantity
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			if available < line.Amount {
				return apperr.InvalidState(
					"insufficient stock for item %s at location %d: have %d, need %d",
					line.ItemUID, *transfer.FromLocationID, available, line.Amount)
			}

			// Decrease at source, dropping emptied records.
			src.Quantity -= line.Amount
			if src.Quantity == 0 {
				if err := tx.Delete(&model.Inventory{}, src.ID).Error; err != nil {
					return err
				}
			} else if err := tx.Save(&src).Error; err != nil {
				return err
			}

			// Increase at destination.
			var dst model.Inventory
			err = tx.First(&dst, "item_id = ? AND location_id = ?", item.ID, *transfer.ToLocationID).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				dst = model.Inventory{ItemID: item.ID, LocationID: *transfer.ToLocationID, Quantity: line.Amount}
				if err := tx.Create(&dst).Error; err != nil {
					return err
				}
			} else if err != nil {
				return err
			} else {
				dst.Quantity += line.Amount
				if err := tx.Save(&dst).Error; err != nil {
					return err
				}
			}
		}

		res := tx.Model(&model.Transfer{}).
			Where("id = ? AND (status = ? OR status = '')", transfer.ID, model.TransferStatusPending).
			Update("status", model.TransferStatusCompleted)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperr.InvalidState("transfer %d is no longer pending", transfer.ID)
		}
		return nil
	})
}
