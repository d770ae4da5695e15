package repository

import (
	"testing"

	"go-warehouse-api/internal/model"
	"go-warehouse-api/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingTransfer(reference string, from, to uint, lines ...model.TransferItem) *model.Transfer {
	return &model.Transfer{
		Reference:      reference,
		FromLocationID: &from,
		ToLocationID:   &to,
		Status:         model.TransferStatusPending,
		Items:          lines,
	}
}

func TestTransferCreatePersistsHeaderAndLines(t *testing.T) {
	db := newTestDB(t)
	repo := NewTransferRepo(db)
	locs := seedLocations(t, db, 2)

	transfer := pendingTransfer("TRF001", locs[0], locs[1],
		model.TransferItem{ItemUID: "UID001", Amount: 10},
		model.TransferItem{ItemUID: "UID002", Amount: 5},
	)
	require.NoError(t, repo.Create(nil, transfer))
	require.NotZero(t, transfer.ID)

	got, err := repo.FindByID(transfer.ID)
	require.NoError(t, err)
	assert.Equal(t, "TRF001", got.Reference)
	require.Len(t, got.Items, 2)
	assert.Equal(t, transfer.ID, got.Items[0].TransferID)
	assert.Equal(t, 10, got.Items[0].Amount)
	assert.False(t, got.CreatedAt.IsZero())
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestTransferDeleteRemovesLines(t *testing.T) {
	db := newTestDB(t)
	repo := NewTransferRepo(db)
	locs := seedLocations(t, db, 2)

	transfer := pendingTransfer("TRF002", locs[0], locs[1],
		model.TransferItem{ItemUID: "UID001", Amount: 1},
	)
	require.NoError(t, repo.Create(nil, transfer))
	require.NoError(t, repo.Delete(transfer.ID))

	_, err := repo.FindByID(transfer.ID)
	require.Error(t, err)

	var lineCount int64
	db.Model(&model.TransferItem{}).Where("transfer_id = ?", transfer.ID).Count(&lineCount)
	assert.Zero(t, lineCount, "orphan lines must not survive the header")
}

func TestTransferDeleteMissingIsNoop(t *testing.T) {
	db := newTestDB(t)
	repo := NewTransferRepo(db)

	require.NoError(t, repo.Delete(12345))
}

func TestTransferFindAllFilters(t *testing.T) {
	db := newTestDB(t)
	repo := NewTransferRepo(db)
	locs := seedLocations(t, db, 3)

	for _, tc := range []struct {
		ref    string
		status string
		from   uint
		to     uint
	}{
		{"TRF001", "Pending", locs[0], locs[1]},
		{"TRF002", "Completed", locs[0], locs[2]},
		{"MOVE003", "Pending", locs[1], locs[2]},
	} {
		require.NoError(t, repo.Create(nil, pendingTransfer(tc.ref, tc.from, tc.to,
			model.TransferItem{ItemUID: "UID001", Amount: 1})))
		db.Model(&model.Transfer{}).Where("reference = ?", tc.ref).Update("status", tc.status)
	}

	byRef, err := repo.FindAll(TransferFilter{Reference: "trf"}, Sort{})
	require.NoError(t, err)
	assert.Len(t, byRef, 2)

	byStatus, err := repo.FindAll(TransferFilter{Status: "pending"}, Sort{})
	require.NoError(t, err)
	assert.Len(t, byStatus, 2)

	byFrom, err := repo.FindAll(TransferFilter{FromLocationID: locs[1]}, Sort{})
	require.NoError(t, err)
	require.Len(t, byFrom, 1)
	assert.Equal(t, "MOVE003", byFrom[0].Reference)

	byTo, err := repo.FindAll(TransferFilter{ToLocationID: locs[2]}, Sort{})
	require.NoError(t, err)
	assert.Len(t, byTo, 2)
}

func TestTransferFindAllSorts(t *testing.T) {
	db := newTestDB(t)
	repo := NewTransferRepo(db)
	locs := seedLocations(t, db, 2)

	for _, ref := range []string{"B", "C", "A"} {
		require.NoError(t, repo.Create(nil, pendingTransfer(ref, locs[0], locs[1],
			model.TransferItem{ItemUID: "UID001", Amount: 1})))
	}

	asc, err := repo.FindAll(TransferFilter{}, Sort{Field: "reference"})
	require.NoError(t, err)
	require.Len(t, asc, 3)
	assert.Equal(t, []string{"A", "B", "C"}, []string{asc[0].Reference, asc[1].Reference, asc[2].Reference})

	desc, err := repo.FindAll(TransferFilter{}, Sort{Field: "reference", Desc: true})
	require.NoError(t, err)
	assert.Equal(t, "C", desc[0].Reference)

	// Unknown sort keys silently fall back to id ordering.
	byID, err := repo.FindAll(TransferFilter{}, Sort{Field: "no_such_column"})
	require.NoError(t, err)
	require.Len(t, byID, 3)
	assert.Equal(t, "B", byID[0].Reference)
}

func TestTransferCommitMovesStock(t *testing.T) {
	db := newTestDB(t)
	repo := NewTransferRepo(db)
	locs := seedLocations(t, db, 2)
	item1 := seedItem(t, db, "UID001")
	item2 := seedItem(t, db, "UID002")
	seedStock(t, db, item1.ID, locs[0], 10)
	seedStock(t, db, item2.ID, locs[0], 8)
	seedStock(t, db, item1.ID, locs[1], 1)

	transfer := pendingTransfer("TRF001", locs[0], locs[1],
		model.TransferItem{ItemUID: "UID001", Amount: 10},
		model.TransferItem{ItemUID: "UID002", Amount: 5},
	)
	require.NoError(t, repo.Create(nil, transfer))
	require.NoError(t, repo.Commit(transfer))

	// Source emptied for item1 (record dropped), reduced for item2.
	var src model.Inventory
	err := db.First(&src, "item_id = ? AND location_id = ?", item1.ID, locs[0]).Error
	require.Error(t, err, "emptied source record should be gone")

	require.NoError(t, db.First(&src, "item_id = ? AND location_id = ?", item2.ID, locs[0]).Error)
	assert.Equal(t, 3, src.Quantity)

	// Destination accumulated for item1, created fresh for item2.
	var dst model.Inventory
	require.NoError(t, db.First(&dst, "item_id = ? AND location_id = ?", item1.ID, locs[1]).Error)
	assert.Equal(t, 11, dst.Quantity)

	// Reset so the previous row's primary key is not added as a query condition.
	dst = model.Inventory{}
	require.NoError(t, db.First(&dst, "item_id = ? AND location_id = ?", item2.ID, locs[1]).Error)
	assert.Equal(t, 5, dst.Quantity)

	got, err := repo.FindByID(transfer.ID)
	require.NoError(t, err)
	assert.Equal(t, model.TransferStatusCompleted, got.Status)
}

func TestTransferCommitInsufficientStockRollsBack(t *testing.T) {
	db := newTestDB(t)
	repo := NewTransferRepo(db)
	locs := seedLocations(t, db, 2)
	item1 := seedItem(t, db, "UID001")
	item2 := seedItem(t, db, "UID002")
	seedStock(t, db, item1.ID, locs[0], 10)
	seedStock(t, db, item2.ID, locs[0], 2)

	transfer := pendingTransfer("TRF001", locs[0], locs[1],
		model.TransferItem{ItemUID: "UID001", Amount: 10},
		model.TransferItem{ItemUID: "UID002", Amount: 5}, // only 2 available
	)
	require.NoError(t, repo.Create(nil, transfer))

	err := repo.Commit(transfer)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeInvalidState))

	// The first line's movement must have been rolled back too.
	var src model.Inventory
	require.NoError(t, db.First(&src, "item_id = ? AND location_id = ?", item1.ID, locs[0]).Error)
	assert.Equal(t, 10, src.Quantity)

	var dstCount int64
	db.Model(&model.Inventory{}).Where("location_id = ?", locs[1]).Count(&dstCount)
	assert.Zero(t, dstCount)

	got, err := repo.FindByID(transfer.ID)
	require.NoError(t, err)
	assert.Equal(t, model.TransferStatusPending, got.Status)
}

func TestTransferCommitTwiceRejectsSecond(t *testing.T) {
	db := newTestDB(t)
	repo := NewTransferRepo(db)
	locs := seedLocations(t, db, 2)
	item := seedItem(t, db, "UID001")
	seedStock(t, db, item.ID, locs[0], 10)

	transfer := pendingTransfer("TRF001", locs[0], locs[1],
		model.TransferItem{ItemUID: "UID001", Amount: 4})
	require.NoError(t, repo.Create(nil, transfer))
	require.NoError(t, repo.Commit(transfer))

	err := repo.Commit(transfer)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeInvalidState))

	// The second pass's stock movement must have rolled back with it.
	var src model.Inventory
	require.NoError(t, db.First(&src, "item_id = ? AND location_id = ?", item.ID, locs[0]).Error)
	assert.Equal(t, 6, src.Quantity)

	var dst model.Inventory
	require.NoError(t, db.First(&dst, "item_id = ? AND location_id = ?", item.ID, locs[1]).Error)
	assert.Equal(t, 4, dst.Quantity)
}

func TestTransferCommitUnknownItemRollsBack(t *testing.T) {
	db := newTestDB(t)
	repo := NewTransferRepo(db)
	locs := seedLocations(t, db, 2)
	item1 := seedItem(t, db, "UID001")
	seedStock(t, db, item1.ID, locs[0], 10)

	transfer := pendingTransfer("TRF001", locs[0], locs[1],
		model.TransferItem{ItemUID: "UID001", Amount: 4},
		model.TransferItem{ItemUID: "GHOST", Amount: 1},
	)
	require.NoError(t, repo.Create(nil, transfer))

	err := repo.Commit(transfer)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))

	var src model.Inventory
	require.NoError(t, db.First(&src, "item_id = ? AND location_id = ?", item1.ID, locs[0]).Error)
	assert.Equal(t, 10, src.Quantity)
}
