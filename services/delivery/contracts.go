package delivery

import (
	bookingModel "bps-backoffice/models/booking"
	deliveryModel "bps-backoffice/models/delivery"
	quotationModel "bps-backoffice/models/quotation"
	vehicleModel "bps-backoffice/models/vehicle"
)

// Store is the persistence surface the delivery service needs. Lookups return
// (nil, nil) when the record does not exist; the service owns the translation
// into error kinds.
type Store interface {
	VehicleByBusinessID(vehicleID string) (*vehicleModel.Vehicle, error)
	BookingByBusinessID(bookingID string) (*bookingModel.Booking, error)
	QuotationByBusinessID(bookingID string) (*quotationModel.Quotation, error)

	DeliveryBySource(src Source) (*deliveryModel.Delivery, error)
	DeliveryByOrderID(orderID string) (*deliveryModel.Delivery, error)
	OrderIDTaken(orderID string) (bool, error)

	CreateDelivery(d *deliveryModel.Delivery) error
	SaveDelivery(d *deliveryModel.Delivery) error

	BookingByID(id uint) (*bookingModel.Booking, error)
	SaveBooking(b *bookingModel.Booking) error

	// Listing queries preload the source document, its stations and the
	// vehicle, ordered by creation time so row numbers stay stable.
	ActiveDeliveriesByType(t deliveryModel.Type) ([]deliveryModel.Delivery, error)
	FinalDeliveries() ([]deliveryModel.Delivery, error)
	CountActiveByType(t deliveryModel.Type) (int64, error)
	CountFinal() (int64, error)
}
