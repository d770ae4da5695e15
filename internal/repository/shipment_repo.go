package repository

import (
	"go-warehouse-api/internal/model"

	"gorm.io/gorm"
)

type ShipmentFilter struct {
	Reference   string
	CarrierCode string
	Status      string
}

var shipmentSortFields = map[string]string{
	"id":            "id",
	"reference":     "reference",
	"carrier_code":  "carrier_code",
	"status":        "status",
	"shipment_date": "shipment_date",
	"created_at":    "created_at",
	"updated_at":    "updated_at",
}

type ShipmentRepository interface {
	Create(shipment *model.Shipment) error
	FindAll(filter ShipmentFilter, sort Sort) ([]model.Shipment, error)
	FindByID(id uint) (*model.Shipment, error)
	Update(shipment *model.Shipment) error
	Delete(id uint) error
}

type shipmentRepo struct {
	db *gorm.DB
}

func NewShipmentRepo(db *gorm.DB) ShipmentRepository {
	return &shipmentRepo{db}
}

func (r *shipmentRepo) Create(shipment *model.Shipment) error {
	return r.db.Create(shipment).Error
}

func (r *shipmentRepo) FindAll(filter ShipmentFilter, sort Sort) ([]model.Shipment, error) {
	var shipments []model.Shipment

	q := r.db.Model(&model.Shipment{})
	q = applyContains(q, "reference", filter.Reference)
	q = applyContains(q, "carrier_code", filter.CarrierCode)
	q = applyContains(q, "status", filter.Status)
	q = applySort(q, shipmentSortFields, sort)

	err := q.Find(&shipments).Error
	return shipments, err
}

func (r *shipmentRepo) FindByID(id uint) (*model.Shipment, error) {
	var shipment model.Shipment
	err := r.db.First(&shipment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &shipment, nil
}

func (r *shipmentRepo) Update(shipment *model.Shipment) error {
	return r.db.Save(shipment).Error
}

func (r *shipmentRepo) Delete(id uint) error {
	return r.db.Delete(&model.Shipment{}, id).Error
}
