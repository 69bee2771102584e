package quotation

import (
	"time"

	"bps-backoffice/models/station"
)

// Quotation represents a provisional shipment estimate that can be assigned a
// delivery just like a booking. It shares the BookingID lookup namespace with
// bookings, which is how the assignment endpoint resolves either with one field.
//
// EndStation is a raw station name, not a reference. The console captures it
// free-form at quotation time; keep it that way.
type Quotation struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	BookingID        string `gorm:"type:varchar(50);not null;unique" json:"bookingId"`
	FromCustomerName string `gorm:"type:varchar(255);not null" json:"fromCustomerName"`
	ToCustomerName   string `gorm:"type:varchar(255);not null" json:"toCustomerName"`

	StartStationID uint            `gorm:"not null" json:"start_station_id"`
	StartStation   station.Station `gorm:"foreignKey:StartStationID" json:"start_station"`
	EndStation     string          `gorm:"type:varchar(255)" json:"endStation"`

	QuotationDate time.Time `json:"quotationDate"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
