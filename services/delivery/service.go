package delivery

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"bps-backoffice/apperr"
	deliveryModel "bps-backoffice/models/delivery"
	deliveryTypes "bps-backoffice/types/delivery"
)

// Placeholder for joined fields that cannot be resolved; listing rows degrade
// to it instead of failing.
const missingField = "N/A"

// Service implements the delivery assignment, listing and finalize flows.
type Service struct {
	store      Store
	genOrderID func() string
}

// NewService creates a delivery service over the given store.
func NewService(store Store) *Service {
	return &Service{
		store:      store,
		genOrderID: newOrderID,
	}
}

// Assign binds a new delivery to the booking or quotation identified by
// req.BookingID and returns the created record. At most one delivery may
// exist per source: the pre-check catches the common case and the partial
// unique indexes catch concurrent assigners, so the loser of the race gets
// the same conflict error.
func (s *Service) Assign(req deliveryTypes.AssignDeliveryRequest) (*deliveryModel.Delivery, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperr.ErrValidation, err.Error())
	}

	v, err := s.store.VehicleByBusinessID(req.VehicleID)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, fmt.Errorf("%w: no vehicle with vehicleId %s", apperr.ErrNotFound, req.VehicleID)
	}

	src, err := s.resolveSource(req.BookingID)
	if err != nil {
		return nil, err
	}

	existing, err := s.store.DeliveryBySource(src)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: delivery already assigned to %s", apperr.ErrConflict, req.BookingID)
	}

	orderID, err := s.uniqueOrderID()
	if err != nil {
		return nil, err
	}

	d := &deliveryModel.Delivery{
		OrderID:    orderID,
		DriverName: req.DriverName,
		VehicleID:  v.ID,
		Status:     deliveryModel.StatusPending,
	}
	src.attach(d)

	if err := s.store.CreateDelivery(d); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: delivery already assigned to %s", apperr.ErrConflict, req.BookingID)
		}
		return nil, err
	}
	return d, nil
}

// resolveSource looks the business identifier up as a booking first and falls
// back to quotations, matching how the console overloads the field.
func (s *Service) resolveSource(businessID string) (Source, error) {
	b, err := s.store.BookingByBusinessID(businessID)
	if err != nil {
		return Source{}, err
	}
	if b != nil {
		return BookingSource(b.ID), nil
	}

	q, err := s.store.QuotationByBusinessID(businessID)
	if err != nil {
		return Source{}, err
	}
	if q != nil {
		return QuotationSource(q.ID), nil
	}

	return Source{}, fmt.Errorf("%w: no booking or quotation with bookingId %s", apperr.ErrNotFound, businessID)
}

func (s *Service) uniqueOrderID() (string, error) {
	for i := 0; i < orderIDAttempts; i++ {
		id := s.genOrderID()
		taken, err := s.store.OrderIDTaken(id)
		if err != nil {
			return "", err
		}
		if !taken {
			return id, nil
		}
	}
	return "", fmt.Errorf("could not generate a unique order id after %d attempts", orderIDAttempts)
}

// ListBookingDeliveries returns the active booking-sourced deliveries joined
// to sender/receiver and station names.
func (s *Service) ListBookingDeliveries() ([]deliveryTypes.Row, error) {
	deliveries, err := s.store.ActiveDeliveriesByType(deliveryModel.TypeBooking)
	if err != nil {
		return nil, err
	}

	rows := make([]deliveryTypes.Row, 0, len(deliveries))
	for i, d := range deliveries {
		row := deliveryTypes.Row{
			SNo:          i + 1,
			OrderID:      d.OrderID,
			SenderName:   missingField,
			ReceiverName: missingField,
			StartStation: missingField,
			EndStation:   missingField,
			Status:       d.Status,
			DriverName:   orPlaceholder(d.DriverName),
			VehicleName:  orPlaceholder(d.Vehicle.VehicleModel),
		}
		if d.Booking != nil {
			row.SenderName = orPlaceholder(d.Booking.SenderName)
			row.ReceiverName = orPlaceholder(d.Booking.ReceiverName)
			row.StartStation = orPlaceholder(d.Booking.StartStation.StationName)
			row.EndStation = orPlaceholder(d.Booking.EndStation.StationName)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ListQuotationDeliveries returns the active quotation-sourced deliveries.
// The end station comes straight off the quotation's raw field, not a join.
func (s *Service) ListQuotationDeliveries() ([]deliveryTypes.Row, error) {
	deliveries, err := s.store.ActiveDeliveriesByType(deliveryModel.TypeQuotation)
	if err != nil {
		return nil, err
	}

	rows := make([]deliveryTypes.Row, 0, len(deliveries))
	for i, d := range deliveries {
		row := deliveryTypes.Row{
			SNo:          i + 1,
			OrderID:      d.OrderID,
			SenderName:   missingField,
			ReceiverName: missingField,
			StartStation: missingField,
			EndStation:   missingField,
			Status:       d.Status,
			DriverName:   orPlaceholder(d.DriverName),
			VehicleName:  orPlaceholder(d.Vehicle.VehicleModel),
		}
		if d.Quotation != nil {
			row.SenderName = orPlaceholder(d.Quotation.FromCustomerName)
			row.ReceiverName = orPlaceholder(d.Quotation.ToCustomerName)
			row.StartStation = orPlaceholder(d.Quotation.StartStation.StationName)
			row.EndStation = orPlaceholder(d.Quotation.EndStation)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ListFinalDeliveries returns the finalized deliveries with station names
// resolved through the source booking and the full vehicle record embedded.
func (s *Service) ListFinalDeliveries() ([]deliveryTypes.FinalRow, error) {
	deliveries, err := s.store.FinalDeliveries()
	if err != nil {
		return nil, err
	}

	rows := make([]deliveryTypes.FinalRow, 0, len(deliveries))
	for i, d := range deliveries {
		row := deliveryTypes.FinalRow{
			SNo:          i + 1,
			OrderID:      d.OrderID,
			StartStation: missingField,
			EndStation:   missingField,
			DriverName:   orPlaceholder(d.DriverName),
			Vehicle:      d.Vehicle,
		}
		if d.Booking != nil {
			row.StartStation = orPlaceholder(d.Booking.StartStation.StationName)
			row.EndStation = orPlaceholder(d.Booking.EndStation.StationName)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// CountBookingDeliveries counts active booking-sourced deliveries.
func (s *Service) CountBookingDeliveries() (int64, error) {
	return s.store.CountActiveByType(deliveryModel.TypeBooking)
}

// CountQuotationDeliveries counts active quotation-sourced deliveries.
func (s *Service) CountQuotationDeliveries() (int64, error) {
	return s.store.CountActiveByType(deliveryModel.TypeQuotation)
}

// CountFinalDeliveries counts finalized deliveries.
func (s *Service) CountFinalDeliveries() (int64, error) {
	return s.store.CountFinal()
}

// Finalize moves a pending delivery to Final Delivery. Booking-sourced
// deliveries release the booking's assignment flag; quotations carry no such
// flag and stay untouched.
func (s *Service) Finalize(orderID string) (deliveryTypes.FinalizeResult, error) {
	if orderID == "" {
		return deliveryTypes.FinalizeResult{}, fmt.Errorf("%w: orderId is required", apperr.ErrValidation)
	}

	d, err := s.store.DeliveryByOrderID(orderID)
	if err != nil {
		return deliveryTypes.FinalizeResult{}, err
	}
	if d == nil {
		return deliveryTypes.FinalizeResult{}, fmt.Errorf("%w: no delivery with orderId %s", apperr.ErrNotFound, orderID)
	}
	if d.Status.IsFinal() {
		return deliveryTypes.FinalizeResult{}, fmt.Errorf("%w: delivery %s is already finalized", apperr.ErrConflict, orderID)
	}

	d.Status = deliveryModel.StatusFinalDelivery
	if err := s.store.SaveDelivery(d); err != nil {
		return deliveryTypes.FinalizeResult{}, err
	}

	if d.BookingID != nil {
		b, err := s.store.BookingByID(*d.BookingID)
		if err != nil {
			return deliveryTypes.FinalizeResult{}, err
		}
		if b != nil {
			b.DeliveryAssigned = false
			if err := s.store.SaveBooking(b); err != nil {
				return deliveryTypes.FinalizeResult{}, err
			}
		}
	}

	return deliveryTypes.FinalizeResult{OrderID: d.OrderID, Status: d.Status}, nil
}

func orPlaceholder(s string) string {
	if s == "" {
		return missingField
	}
	return s
}
