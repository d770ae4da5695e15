package model

// Dock occupancy states. Status is always derived from ShipmentID, never set
// directly by callers.
const (
	DockOccupied   = "occupied"
	DockUnoccupied = "unoccupied"
)

// Dock is a loading bay, occupied by at most one shipment at a time.
type Dock struct {
	BaseModel
	WarehouseID uint   `gorm:"not null;index" json:"warehouse_id"`
	Name        string `gorm:"type:varchar(100)" json:"name"`
	ShipmentID  uint   `gorm:"default:0" json:"shipment_id"` // 0 = unoccupied
	Status      string `gorm:"type:varchar(20)" json:"status"`
}

// OccupancyStatus derives the dock status from a shipment id.
func OccupancyStatus(shipmentID uint) string {
	if shipmentID > 0 {
		return DockOccupied
	}
	return DockUnoccupied
}
