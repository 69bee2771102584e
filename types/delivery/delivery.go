package delivery

import (
	"fmt"

	"bps-backoffice/models/delivery"
	"bps-backoffice/models/vehicle"
)

// AssignDeliveryRequest is the payload for POST /api/delivery/assign.
// BookingID carries either a booking or a quotation business identifier;
// VehicleID is the vehicle's business identifier, not its storage id.
type AssignDeliveryRequest struct {
	BookingID  string `json:"bookingId"`
	DriverName string `json:"driverName"`
	VehicleID  string `json:"vehicleId"`
}

func (r AssignDeliveryRequest) Validate() error {
	if r.BookingID == "" {
		return fmt.Errorf("bookingId (or quotation id) is required")
	}
	if r.DriverName == "" {
		return fmt.Errorf("driverName is required")
	}
	if r.VehicleID == "" {
		return fmt.Errorf("vehicleId is required")
	}
	return nil
}

// Row is one denormalized line of the booking or quotation delivery listing.
// SNo is assigned by position after an explicit created_at ordering.
type Row struct {
	SNo          int             `json:"SNo"`
	OrderID      string          `json:"orderId"`
	SenderName   string          `json:"senderName"`
	ReceiverName string          `json:"receiverName"`
	StartStation string          `json:"startStation"`
	EndStation   string          `json:"endStation"`
	Status       delivery.Status `json:"status"`
	DriverName   string          `json:"driverName"`
	VehicleName  string          `json:"vehicleName"`
}

// FinalRow is one line of the finalized-delivery listing; it embeds the full
// vehicle record rather than just its model name.
type FinalRow struct {
	SNo          int             `json:"SNo"`
	OrderID      string          `json:"orderId"`
	StartStation string          `json:"startStation"`
	EndStation   string          `json:"endStation"`
	DriverName   string          `json:"driverName"`
	Vehicle      vehicle.Vehicle `json:"vehicle"`
}

// FinalizeResult is the response body of PUT /api/delivery/finalize/:orderId
type FinalizeResult struct {
	OrderID string          `json:"orderId"`
	Status  delivery.Status `json:"status"`
}
