package delivery

// Status is the delivery lifecycle state. The only legal transition is
// Pending -> Final Delivery; Final Delivery is terminal.
type Status string

const (
	StatusPending       Status = "Pending"
	StatusFinalDelivery Status = "Final Delivery"
)

// Type tags which source document a delivery was assigned from.
type Type string

const (
	TypeBooking   Type = "Booking"
	TypeQuotation Type = "Quotation"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusFinalDelivery:
		return true
	default:
		return false
	}
}

// IsFinal returns true if the delivery has reached its terminal state
func (s Status) IsFinal() bool {
	return s == StatusFinalDelivery
}

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeBooking, TypeQuotation:
		return true
	default:
		return false
	}
}
