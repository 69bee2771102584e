package booking

import (
	"time"

	"bps-backoffice/models/station"
)

// Booking represents a confirmed shipment order placed by a customer.
// BookingID is the business identifier used by the admin console; the
// delivery-assignment flow resolves it before falling back to quotations.
type Booking struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	BookingID    string `gorm:"type:varchar(50);not null;unique" json:"bookingId"`
	SenderName   string `gorm:"type:varchar(255);not null" json:"senderName"`
	ReceiverName string `gorm:"type:varchar(255);not null" json:"receiverName"`

	// Foreign keys for station relationships
	StartStationID uint            `gorm:"not null" json:"start_station_id"`
	StartStation   station.Station `gorm:"foreignKey:StartStationID" json:"start_station"`
	EndStationID   uint            `gorm:"not null" json:"end_station_id"`
	EndStation     station.Station `gorm:"foreignKey:EndStationID" json:"end_station"`

	// Set while a delivery is out for this booking, cleared on finalize.
	DeliveryAssigned bool `gorm:"default:false" json:"deliveryAssigned"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
