package booking

import "fmt"

// BookingCreateRequest represents the request payload for creating a booking
type BookingCreateRequest struct {
	BookingID      string `json:"bookingId"`
	SenderName     string `json:"senderName"`
	ReceiverName   string `json:"receiverName"`
	StartStationID uint   `json:"start_station_id"`
	EndStationID   uint   `json:"end_station_id"`
}

func (b BookingCreateRequest) Validate() error {
	if b.BookingID == "" {
		return fmt.Errorf("bookingId is required")
	}
	if b.SenderName == "" {
		return fmt.Errorf("senderName is required")
	}
	if b.ReceiverName == "" {
		return fmt.Errorf("receiverName is required")
	}
	if b.StartStationID == 0 {
		return fmt.Errorf("start_station_id is required")
	}
	if b.EndStationID == 0 {
		return fmt.Errorf("end_station_id is required")
	}
	return nil
}

// BookingUpdateRequest represents the request payload for updating a booking
type BookingUpdateRequest struct {
	SenderName     string `json:"senderName"`
	ReceiverName   string `json:"receiverName"`
	StartStationID uint   `json:"start_station_id"`
	EndStationID   uint   `json:"end_station_id"`
}
