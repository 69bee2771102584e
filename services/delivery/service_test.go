package delivery

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"bps-backoffice/apperr"
	bookingModel "bps-backoffice/models/booking"
	deliveryModel "bps-backoffice/models/delivery"
	quotationModel "bps-backoffice/models/quotation"
	"bps-backoffice/models/station"
	vehicleModel "bps-backoffice/models/vehicle"
	deliveryTypes "bps-backoffice/types/delivery"
)

// stubStore implements Store with overridable functions; unset lookups report
// not-found and unset writes succeed.
type stubStore struct {
	vehicleFn      func(string) (*vehicleModel.Vehicle, error)
	bookingFn      func(string) (*bookingModel.Booking, error)
	quotationFn    func(string) (*quotationModel.Quotation, error)
	bySourceFn     func(Source) (*deliveryModel.Delivery, error)
	byOrderFn      func(string) (*deliveryModel.Delivery, error)
	takenFn        func(string) (bool, error)
	createFn       func(*deliveryModel.Delivery) error
	saveDeliveryFn func(*deliveryModel.Delivery) error
	bookingByIDFn  func(uint) (*bookingModel.Booking, error)
	saveBookingFn  func(*bookingModel.Booking) error
	activeFn       func(deliveryModel.Type) ([]deliveryModel.Delivery, error)
	finalFn        func() ([]deliveryModel.Delivery, error)
	countActiveFn  func(deliveryModel.Type) (int64, error)
	countFinalFn   func() (int64, error)
}

func (s *stubStore) VehicleByBusinessID(id string) (*vehicleModel.Vehicle, error) {
	if s.vehicleFn == nil {
		return nil, nil
	}
	return s.vehicleFn(id)
}

func (s *stubStore) BookingByBusinessID(id string) (*bookingModel.Booking, error) {
	if s.bookingFn == nil {
		return nil, nil
	}
	return s.bookingFn(id)
}

func (s *stubStore) QuotationByBusinessID(id string) (*quotationModel.Quotation, error) {
	if s.quotationFn == nil {
		return nil, nil
	}
	return s.quotationFn(id)
}

func (s *stubStore) DeliveryBySource(src Source) (*deliveryModel.Delivery, error) {
	if s.bySourceFn == nil {
		return nil, nil
	}
	return s.bySourceFn(src)
}

func (s *stubStore) DeliveryByOrderID(orderID string) (*deliveryModel.Delivery, error) {
	if s.byOrderFn == nil {
		return nil, nil
	}
	return s.byOrderFn(orderID)
}

func (s *stubStore) OrderIDTaken(orderID string) (bool, error) {
	if s.takenFn == nil {
		return false, nil
	}
	return s.takenFn(orderID)
}

func (s *stubStore) CreateDelivery(d *deliveryModel.Delivery) error {
	if s.createFn == nil {
		return nil
	}
	return s.createFn(d)
}

func (s *stubStore) SaveDelivery(d *deliveryModel.Delivery) error {
	if s.saveDeliveryFn == nil {
		return nil
	}
	return s.saveDeliveryFn(d)
}

func (s *stubStore) BookingByID(id uint) (*bookingModel.Booking, error) {
	if s.bookingByIDFn == nil {
		return nil, nil
	}
	return s.bookingByIDFn(id)
}

func (s *stubStore) SaveBooking(b *bookingModel.Booking) error {
	if s.saveBookingFn == nil {
		return nil
	}
	return s.saveBookingFn(b)
}

func (s *stubStore) ActiveDeliveriesByType(t deliveryModel.Type) ([]deliveryModel.Delivery, error) {
	if s.activeFn == nil {
		return nil, nil
	}
	return s.activeFn(t)
}

func (s *stubStore) FinalDeliveries() ([]deliveryModel.Delivery, error) {
	if s.finalFn == nil {
		return nil, nil
	}
	return s.finalFn()
}

func (s *stubStore) CountActiveByType(t deliveryModel.Type) (int64, error) {
	if s.countActiveFn == nil {
		return 0, nil
	}
	return s.countActiveFn(t)
}

func (s *stubStore) CountFinal() (int64, error) {
	if s.countFinalFn == nil {
		return 0, nil
	}
	return s.countFinalFn()
}

func validAssignRequest() deliveryTypes.AssignDeliveryRequest {
	return deliveryTypes.AssignDeliveryRequest{
		BookingID:  "BK1001",
		DriverName: "Asha",
		VehicleID:  "VH01",
	}
}

func testVehicle() *vehicleModel.Vehicle {
	return &vehicleModel.Vehicle{ID: 9, VehicleID: "VH01", VehicleName: "Tata Ace", VehicleModel: "Ace Gold"}
}

func TestService_Assign_BookingSuccess(t *testing.T) {
	t.Parallel()

	var created *deliveryModel.Delivery
	store := &stubStore{
		vehicleFn: func(id string) (*vehicleModel.Vehicle, error) {
			require.Equal(t, "VH01", id)
			return testVehicle(), nil
		},
		bookingFn: func(id string) (*bookingModel.Booking, error) {
			require.Equal(t, "BK1001", id)
			return &bookingModel.Booking{ID: 5, BookingID: "BK1001"}, nil
		},
		createFn: func(d *deliveryModel.Delivery) error {
			created = d
			return nil
		},
	}

	svc := NewService(store)
	d, err := svc.Assign(validAssignRequest())
	require.NoError(t, err)
	require.NotNil(t, created)
	require.Same(t, created, d)

	require.Regexp(t, orderIDPattern, d.OrderID)
	require.Equal(t, deliveryModel.TypeBooking, d.DeliveryType)
	require.NotNil(t, d.BookingID)
	require.Equal(t, uint(5), *d.BookingID)
	require.Nil(t, d.QuotationID)
	require.Equal(t, deliveryModel.StatusPending, d.Status)
	require.Equal(t, "Asha", d.DriverName)
	require.Equal(t, uint(9), d.VehicleID)
}

func TestService_Assign_QuotationFallback(t *testing.T) {
	t.Parallel()

	store := &stubStore{
		vehicleFn: func(string) (*vehicleModel.Vehicle, error) { return testVehicle(), nil },
		quotationFn: func(id string) (*quotationModel.Quotation, error) {
			require.Equal(t, "QT2001", id)
			return &quotationModel.Quotation{ID: 11, BookingID: "QT2001"}, nil
		},
	}

	svc := NewService(store)
	req := validAssignRequest()
	req.BookingID = "QT2001"

	d, err := svc.Assign(req)
	require.NoError(t, err)
	require.Equal(t, deliveryModel.TypeQuotation, d.DeliveryType)
	require.NotNil(t, d.QuotationID)
	require.Equal(t, uint(11), *d.QuotationID)
	require.Nil(t, d.BookingID)
}

func TestService_Assign_MissingFields(t *testing.T) {
	t.Parallel()

	svc := NewService(&stubStore{})

	for _, req := range []deliveryTypes.AssignDeliveryRequest{
		{DriverName: "Asha", VehicleID: "VH01"},
		{BookingID: "BK1001", VehicleID: "VH01"},
		{BookingID: "BK1001", DriverName: "Asha"},
	} {
		_, err := svc.Assign(req)
		require.ErrorIs(t, err, apperr.ErrValidation)
	}
}

func TestService_Assign_VehicleNotFound(t *testing.T) {
	t.Parallel()

	svc := NewService(&stubStore{})
	_, err := svc.Assign(validAssignRequest())
	require.ErrorIs(t, err, apperr.ErrNotFound)
	require.Contains(t, err.Error(), "vehicle")
}

func TestService_Assign_SourceNotFound(t *testing.T) {
	t.Parallel()

	store := &stubStore{
		vehicleFn: func(string) (*vehicleModel.Vehicle, error) { return testVehicle(), nil },
	}

	svc := NewService(store)
	_, err := svc.Assign(validAssignRequest())
	require.ErrorIs(t, err, apperr.ErrNotFound)
	require.Contains(t, err.Error(), "booking or quotation")
}

func TestService_Assign_AlreadyAssigned(t *testing.T) {
	t.Parallel()

	store := &stubStore{
		vehicleFn: func(string) (*vehicleModel.Vehicle, error) { return testVehicle(), nil },
		bookingFn: func(string) (*bookingModel.Booking, error) {
			return &bookingModel.Booking{ID: 5, BookingID: "BK1001"}, nil
		},
		bySourceFn: func(src Source) (*deliveryModel.Delivery, error) {
			require.Equal(t, deliveryModel.TypeBooking, src.Type())
			require.Equal(t, uint(5), src.ID())
			return &deliveryModel.Delivery{OrderID: "BHA1234DELIVERY"}, nil
		},
	}

	svc := NewService(store)
	_, err := svc.Assign(validAssignRequest())
	require.ErrorIs(t, err, apperr.ErrConflict)
}

func TestService_Assign_RaceLoserGetsConflict(t *testing.T) {
	t.Parallel()

	// Both requests pass the pre-check; the second insert trips the partial
	// unique index.
	store := &stubStore{
		vehicleFn: func(string) (*vehicleModel.Vehicle, error) { return testVehicle(), nil },
		bookingFn: func(string) (*bookingModel.Booking, error) {
			return &bookingModel.Booking{ID: 5, BookingID: "BK1001"}, nil
		},
		createFn: func(*deliveryModel.Delivery) error { return gorm.ErrDuplicatedKey },
	}

	svc := NewService(store)
	_, err := svc.Assign(validAssignRequest())
	require.ErrorIs(t, err, apperr.ErrConflict)
}

func TestService_Assign_OrderIDCollisionRetries(t *testing.T) {
	t.Parallel()

	taken := map[string]bool{"BHA1111DELIVERY": true, "BHA2222DELIVERY": true}
	ids := []string{"BHA1111DELIVERY", "BHA2222DELIVERY", "BHA3333DELIVERY"}
	next := 0

	store := &stubStore{
		vehicleFn: func(string) (*vehicleModel.Vehicle, error) { return testVehicle(), nil },
		bookingFn: func(string) (*bookingModel.Booking, error) {
			return &bookingModel.Booking{ID: 5, BookingID: "BK1001"}, nil
		},
		takenFn: func(id string) (bool, error) { return taken[id], nil },
	}

	svc := NewService(store)
	svc.genOrderID = func() string {
		id := ids[next]
		next++
		return id
	}

	d, err := svc.Assign(validAssignRequest())
	require.NoError(t, err)
	require.Equal(t, "BHA3333DELIVERY", d.OrderID)
	require.Equal(t, 3, next)
}

func TestService_Assign_OrderIDExhaustion(t *testing.T) {
	t.Parallel()

	store := &stubStore{
		vehicleFn: func(string) (*vehicleModel.Vehicle, error) { return testVehicle(), nil },
		bookingFn: func(string) (*bookingModel.Booking, error) {
			return &bookingModel.Booking{ID: 5, BookingID: "BK1001"}, nil
		},
		takenFn: func(string) (bool, error) { return true, nil },
	}

	svc := NewService(store)
	_, err := svc.Assign(validAssignRequest())
	require.Error(t, err)
	require.NotErrorIs(t, err, apperr.ErrValidation)
	require.NotErrorIs(t, err, apperr.ErrNotFound)
	require.NotErrorIs(t, err, apperr.ErrConflict)
}

func TestService_Finalize_BookingSourced(t *testing.T) {
	t.Parallel()

	bookingID := uint(5)
	booking := &bookingModel.Booking{ID: bookingID, BookingID: "BK1001", DeliveryAssigned: true}
	d := &deliveryModel.Delivery{
		OrderID:      "BHA1234DELIVERY",
		BookingID:    &bookingID,
		DeliveryType: deliveryModel.TypeBooking,
		Status:       deliveryModel.StatusPending,
	}

	var savedDelivery *deliveryModel.Delivery
	var savedBooking *bookingModel.Booking

	store := &stubStore{
		byOrderFn: func(orderID string) (*deliveryModel.Delivery, error) {
			require.Equal(t, "BHA1234DELIVERY", orderID)
			return d, nil
		},
		saveDeliveryFn: func(d *deliveryModel.Delivery) error {
			savedDelivery = d
			return nil
		},
		bookingByIDFn: func(id uint) (*bookingModel.Booking, error) {
			require.Equal(t, bookingID, id)
			return booking, nil
		},
		saveBookingFn: func(b *bookingModel.Booking) error {
			savedBooking = b
			return nil
		},
	}

	svc := NewService(store)
	result, err := svc.Finalize("BHA1234DELIVERY")
	require.NoError(t, err)

	require.Equal(t, "BHA1234DELIVERY", result.OrderID)
	require.Equal(t, deliveryModel.StatusFinalDelivery, result.Status)
	require.NotNil(t, savedDelivery)
	require.Equal(t, deliveryModel.StatusFinalDelivery, savedDelivery.Status)
	require.NotNil(t, savedBooking)
	require.False(t, savedBooking.DeliveryAssigned)
}

func TestService_Finalize_QuotationSourcedSkipsBooking(t *testing.T) {
	t.Parallel()

	quotationID := uint(11)
	d := &deliveryModel.Delivery{
		OrderID:      "BHA9999DELIVERY",
		QuotationID:  &quotationID,
		DeliveryType: deliveryModel.TypeQuotation,
		Status:       deliveryModel.StatusPending,
	}

	bookingLookups := 0
	store := &stubStore{
		byOrderFn: func(string) (*deliveryModel.Delivery, error) { return d, nil },
		bookingByIDFn: func(uint) (*bookingModel.Booking, error) {
			bookingLookups++
			return nil, nil
		},
		saveBookingFn: func(*bookingModel.Booking) error {
			t.Fatal("quotation-sourced finalize must not touch bookings")
			return nil
		},
	}

	svc := NewService(store)
	result, err := svc.Finalize("BHA9999DELIVERY")
	require.NoError(t, err)
	require.Equal(t, deliveryModel.StatusFinalDelivery, result.Status)
	require.Zero(t, bookingLookups)
}

func TestService_Finalize_NotFound(t *testing.T) {
	t.Parallel()

	svc := NewService(&stubStore{})
	_, err := svc.Finalize("BHA0000DELIVERY")
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestService_Finalize_AlreadyFinal(t *testing.T) {
	t.Parallel()

	d := &deliveryModel.Delivery{
		OrderID: "BHA1234DELIVERY",
		Status:  deliveryModel.StatusFinalDelivery,
	}
	store := &stubStore{
		byOrderFn: func(string) (*deliveryModel.Delivery, error) { return d, nil },
		saveDeliveryFn: func(*deliveryModel.Delivery) error {
			t.Fatal("already-final delivery must not be saved again")
			return nil
		},
	}

	svc := NewService(store)
	_, err := svc.Finalize("BHA1234DELIVERY")
	require.ErrorIs(t, err, apperr.ErrConflict)
	require.Equal(t, deliveryModel.StatusFinalDelivery, d.Status)
}

func TestService_ListBookingDeliveries_Rows(t *testing.T) {
	t.Parallel()

	bookingID := uint(5)
	deliveries := []deliveryModel.Delivery{
		{
			OrderID:      "BHA1234DELIVERY",
			BookingID:    &bookingID,
			DeliveryType: deliveryModel.TypeBooking,
			Status:       deliveryModel.StatusPending,
			DriverName:   "Asha",
			Vehicle:      vehicleModel.Vehicle{VehicleModel: "Ace Gold"},
			Booking: &bookingModel.Booking{
				SenderName:   "Kumar",
				ReceiverName: "Priya",
				StartStation: station.Station{StationName: "Chennai Central"},
				EndStation:   station.Station{StationName: "Madurai"},
			},
		},
		{
			// Dangling source reference: every joined field degrades to N/A.
			OrderID:      "BHA5678DELIVERY",
			DeliveryType: deliveryModel.TypeBooking,
			Status:       deliveryModel.StatusPending,
			DriverName:   "Vikram",
		},
	}

	store := &stubStore{
		activeFn: func(typ deliveryModel.Type) ([]deliveryModel.Delivery, error) {
			require.Equal(t, deliveryModel.TypeBooking, typ)
			return deliveries, nil
		},
	}

	rows, err := NewService(store).ListBookingDeliveries()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	require.Equal(t, 1, rows[0].SNo)
	require.Equal(t, "BHA1234DELIVERY", rows[0].OrderID)
	require.Equal(t, "Kumar", rows[0].SenderName)
	require.Equal(t, "Priya", rows[0].ReceiverName)
	require.Equal(t, "Chennai Central", rows[0].StartStation)
	require.Equal(t, "Madurai", rows[0].EndStation)
	require.Equal(t, "Ace Gold", rows[0].VehicleName)

	require.Equal(t, 2, rows[1].SNo)
	require.Equal(t, "N/A", rows[1].SenderName)
	require.Equal(t, "N/A", rows[1].ReceiverName)
	require.Equal(t, "N/A", rows[1].StartStation)
	require.Equal(t, "N/A", rows[1].EndStation)
	require.Equal(t, "N/A", rows[1].VehicleName)
	require.Equal(t, "Vikram", rows[1].DriverName)
}

func TestService_ListQuotationDeliveries_RawEndStation(t *testing.T) {
	t.Parallel()

	quotationID := uint(11)
	deliveries := []deliveryModel.Delivery{
		{
			OrderID:      "BHA4242DELIVERY",
			QuotationID:  &quotationID,
			DeliveryType: deliveryModel.TypeQuotation,
			Status:       deliveryModel.StatusPending,
			DriverName:   "Asha",
			Vehicle:      vehicleModel.Vehicle{VehicleModel: "Ace Gold"},
			Quotation: &quotationModel.Quotation{
				FromCustomerName: "Ravi",
				ToCustomerName:   "Meena",
				StartStation:     station.Station{StationName: "Salem"},
				EndStation:       "Erode",
			},
		},
	}

	store := &stubStore{
		activeFn: func(typ deliveryModel.Type) ([]deliveryModel.Delivery, error) {
			require.Equal(t, deliveryModel.TypeQuotation, typ)
			return deliveries, nil
		},
	}

	rows, err := NewService(store).ListQuotationDeliveries()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "Ravi", rows[0].SenderName)
	require.Equal(t, "Meena", rows[0].ReceiverName)
	require.Equal(t, "Salem", rows[0].StartStation)
	// End station is the quotation's raw field, not a station join.
	require.Equal(t, "Erode", rows[0].EndStation)
}

func TestService_ListFinalDeliveries_EmbedsVehicle(t *testing.T) {
	t.Parallel()

	bookingID := uint(5)
	vehicle := vehicleModel.Vehicle{ID: 9, VehicleID: "VH01", VehicleName: "Tata Ace", VehicleModel: "Ace Gold"}
	deliveries := []deliveryModel.Delivery{
		{
			OrderID:      "BHA1234DELIVERY",
			BookingID:    &bookingID,
			DeliveryType: deliveryModel.TypeBooking,
			Status:       deliveryModel.StatusFinalDelivery,
			DriverName:   "Asha",
			Vehicle:      vehicle,
			Booking: &bookingModel.Booking{
				StartStation: station.Station{StationName: "Chennai Central"},
				EndStation:   station.Station{StationName: "Madurai"},
			},
		},
	}

	store := &stubStore{
		finalFn: func() ([]deliveryModel.Delivery, error) { return deliveries, nil },
	}

	rows, err := NewService(store).ListFinalDeliveries()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, 1, rows[0].SNo)
	require.Equal(t, "Chennai Central", rows[0].StartStation)
	require.Equal(t, "Madurai", rows[0].EndStation)
	require.Equal(t, vehicle, rows[0].Vehicle)
}

func TestService_Counts(t *testing.T) {
	t.Parallel()

	store := &stubStore{
		countActiveFn: func(typ deliveryModel.Type) (int64, error) {
			if typ == deliveryModel.TypeBooking {
				return 3, nil
			}
			return 2, nil
		},
		countFinalFn: func() (int64, error) { return 7, nil },
	}

	svc := NewService(store)

	bookingCount, err := svc.CountBookingDeliveries()
	require.NoError(t, err)
	require.EqualValues(t, 3, bookingCount)

	quotationCount, err := svc.CountQuotationDeliveries()
	require.NoError(t, err)
	require.EqualValues(t, 2, quotationCount)

	finalCount, err := svc.CountFinalDeliveries()
	require.NoError(t, err)
	require.EqualValues(t, 7, finalCount)
}

func TestService_Assign_StoreErrorPassesThrough(t *testing.T) {
	t.Parallel()

	dbErr := errors.New("connection reset")
	store := &stubStore{
		vehicleFn: func(string) (*vehicleModel.Vehicle, error) { return nil, dbErr },
	}

	_, err := NewService(store).Assign(validAssignRequest())
	require.ErrorIs(t, err, dbErr)
}
