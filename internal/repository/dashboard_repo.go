package repository

import (
	"time"

	"go-warehouse-api/internal/model"

	"gorm.io/gorm"
)

// TransferMovementData untuk chart data
type TransferMovementData struct {
	Date      string `json:"date"`
	Transfers int    `json:"transfers"`
	Units     int    `json:"units"`
}

// DashboardStats untuk overview stats
type DashboardStats struct {
	TotalItems       int64 `json:"total_items"`
	TotalLocations   int64 `json:"total_locations"`
	TotalDocks       int64 `json:"total_docks"`
	OccupiedDocks    int64 `json:"occupied_docks"`
	PendingTransfers int64 `json:"pending_transfers"`
}

type DashboardRepository interface {
	GetDashboardStats() (*DashboardStats, error)
	GetTransferMovement(startDate, endDate time.Time) ([]TransferMovementData, error)
}

type dashboardRepo struct {
	db *gorm.DB
}

func NewDashboardRepo(db *gorm.DB) DashboardRepository {
	return &dashboardRepo{db}
}

func (r *dashboardRepo) GetDashboardStats() (*DashboardStats, error) {
	var stats DashboardStats

	r.db.Model(&model.Item{}).Count(&stats.TotalItems)
	r.db.Model(&model.Location{}).Count(&stats.TotalLocations)
	r.db.Model(&model.Dock{}).Count(&stats.TotalDocks)
	r.db.Model(&model.Dock{}).Where("shipment_id > 0").Count(&stats.OccupiedDocks)
	r.db.Model(&model.Transfer{}).Where("status = ?", model.TransferStatusPending).Count(&stats.PendingTransfers)

	return &stats, nil
}

func (r *dashboardRepo) GetTransferMovement(startDate, endDate time.Time) ([]TransferMovementData, error) {
	var results []TransferMovementData

	// Aggregate transfers and moved units per day
	rows, err := r.db.Model(&model.Transfer{}).
		Select(`
			DATE(transfers.created_at) as date,
			COUNT(DISTINCT transfers.id) as transfers,
			COALESCE(SUM(transfer_items.amount), 0) as units
		`).
		Joins("LEFT JOIN transfer_items ON transfer_items.transfer_id = transfers.id").
		Where("transfers.created_at BETWEEN ? AND ?", startDate, endDate).
		Group("DATE(transfers.created_at)").
		Order("date ASC").
		Rows()

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var data TransferMovementData
		if err := rows.Scan(&data.Date, &data.Transfers, &data.Units); err != nil {
			return nil, err
		}
		results = append(results, data)
	}

	return results, nil
}
