package quotation

import (
	"fmt"
	"time"
)

// QuotationCreateRequest represents the request payload for creating a quotation.
// BookingID shares the lookup namespace with bookings so the delivery
// assignment endpoint can resolve either with one identifier.
type QuotationCreateRequest struct {
	BookingID        string    `json:"bookingId"`
	FromCustomerName string    `json:"fromCustomerName"`
	ToCustomerName   string    `json:"toCustomerName"`
	StartStationID   uint      `json:"start_station_id"`
	EndStation       string    `json:"endStation"`
	QuotationDate    time.Time `json:"quotationDate"`
}

func (q QuotationCreateRequest) Validate() error {
	if q.BookingID == "" {
		return fmt.Errorf("bookingId is required")
	}
	if q.FromCustomerName == "" {
		return fmt.Errorf("fromCustomerName is required")
	}
	if q.ToCustomerName == "" {
		return fmt.Errorf("toCustomerName is required")
	}
	if q.StartStationID == 0 {
		return fmt.Errorf("start_station_id is required")
	}
	return nil
}
