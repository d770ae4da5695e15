package service

import (
	"time"

	"go-warehouse-api/internal/repository"
	"go-warehouse-api/pkg/apperr"
)

type DashboardService interface {
	GetDashboardStats() (*repository.DashboardStats, error)
	GetTransferMovement(startDate, endDate time.Time) ([]repository.TransferMovementData, error)
}

type dashboardService struct {
	dashboardRepo repository.DashboardRepository
}

func NewDashboardService(dRepo repository.DashboardRepository) DashboardService {
	return &dashboardService{dashboardRepo: dRepo}
}

func (s *dashboardService) GetDashboardStats() (*repository.DashboardStats, error) {
	stats, err := s.dashboardRepo.GetDashboardStats()
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return stats, nil
}

func (s *dashboardService) GetTransferMovement(startDate, endDate time.Time) ([]repository.TransferMovementData, error) {
	data, err := s.dashboardRepo.GetTransferMovement(startDate, endDate)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return data, nil
}
