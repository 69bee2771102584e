package delivery

import (
	"time"

	"bps-backoffice/models/booking"
	"bps-backoffice/models/quotation"
	"bps-backoffice/models/vehicle"
)

// Delivery is the operational record tracking a shipment from assignment to
// finalization. Exactly one of BookingID / QuotationID is set, and
// DeliveryType names which one; the services/delivery package only builds
// deliveries through its Source type so the pair cannot drift apart.
//
// JSON tags are camelCase because the admin console consumes these rows
// directly.
type Delivery struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	OrderID string `gorm:"type:varchar(50);not null;unique" json:"orderId"`

	// Mutually exclusive source references. Partial unique indexes on both
	// columns (see database.createIndexes) enforce at most one delivery per
	// source even under concurrent assignment.
	BookingID   *uint                `json:"bookingId,omitempty"`
	Booking     *booking.Booking     `gorm:"foreignKey:BookingID" json:"booking,omitempty"`
	QuotationID *uint                `json:"quotationId,omitempty"`
	Quotation   *quotation.Quotation `gorm:"foreignKey:QuotationID" json:"quotation,omitempty"`

	DeliveryType Type `gorm:"type:varchar(20);not null" json:"deliveryType"`

	DriverName string `gorm:"type:varchar(255);not null" json:"driverName"`

	// Storage id of the assigned vehicle, resolved from its business id.
	VehicleID uint            `gorm:"not null" json:"vehicleId"`
	Vehicle   vehicle.Vehicle `gorm:"foreignKey:VehicleID" json:"vehicle"`

	Status Status `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
