package delivery

import (
	"errors"

	"gorm.io/gorm"

	bookingModel "bps-backoffice/models/booking"
	deliveryModel "bps-backoffice/models/delivery"
	quotationModel "bps-backoffice/models/quotation"
	vehicleModel "bps-backoffice/models/vehicle"
)

type gormStore struct {
	db *gorm.DB
}

// NewStore returns a Store backed by GORM.
func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) VehicleByBusinessID(vehicleID string) (*vehicleModel.Vehicle, error) {
	var v vehicleModel.Vehicle
	if err := s.db.Where("vehicle_id = ?", vehicleID).First(&v).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

func (s *gormStore) BookingByBusinessID(bookingID string) (*bookingModel.Booking, error) {
	var b bookingModel.Booking
	if err := s.db.Where("booking_id = ?", bookingID).First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (s *gormStore) QuotationByBusinessID(bookingID string) (*quotationModel.Quotation, error) {
	var q quotationModel.Quotation
	if err := s.db.Where("booking_id = ?", bookingID).First(&q).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &q, nil
}

func (s *gormStore) DeliveryBySource(src Source) (*deliveryModel.Delivery, error) {
	query := s.db
	switch src.Type() {
	case deliveryModel.TypeBooking:
		query = query.Where("booking_id = ?", src.ID())
	case deliveryModel.TypeQuotation:
		query = query.Where("quotation_id = ?", src.ID())
	}

	var d deliveryModel.Delivery
	if err := query.First(&d).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

func (s *gormStore) DeliveryByOrderID(orderID string) (*deliveryModel.Delivery, error) {
	var d deliveryModel.Delivery
	if err := s.db.Where("order_id = ?", orderID).First(&d).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

func (s *gormStore) OrderIDTaken(orderID string) (bool, error) {
	var count int64
	if err := s.db.Model(&deliveryModel.Delivery{}).Where("order_id = ?", orderID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *gormStore) CreateDelivery(d *deliveryModel.Delivery) error {
	return s.db.Create(d).Error
}

func (s *gormStore) SaveDelivery(d *deliveryModel.Delivery) error {
	return s.db.Save(d).Error
}

func (s *gormStore) BookingByID(id uint) (*bookingModel.Booking, error) {
	var b bookingModel.Booking
	if err := s.db.First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (s *gormStore) SaveBooking(b *bookingModel.Booking) error {
	return s.db.Save(b).Error
}

func (s *gormStore) ActiveDeliveriesByType(t deliveryModel.Type) ([]deliveryModel.Delivery, error) {
	var deliveries []deliveryModel.Delivery
	err := s.db.
		Preload("Booking.StartStation").
		Preload("Booking.EndStation").
		Preload("Quotation.StartStation").
		Preload("Vehicle").
		Where("delivery_type = ? AND status <> ?", t, deliveryModel.StatusFinalDelivery).
		Order("created_at").
		Find(&deliveries).Error
	if err != nil {
		return nil, err
	}
	return deliveries, nil
}

func (s *gormStore) FinalDeliveries() ([]deliveryModel.Delivery, error) {
	var deliveries []deliveryModel.Delivery
	err := s.db.
		Preload("Booking.StartStation").
		Preload("Booking.EndStation").
		Preload("Vehicle").
		Where("status = ?", deliveryModel.StatusFinalDelivery).
		Order("created_at").
		Find(&deliveries).Error
	if err != nil {
		return nil, err
	}
	return deliveries, nil
}

func (s *gormStore) CountActiveByType(t deliveryModel.Type) (int64, error) {
	var count int64
	err := s.db.Model(&deliveryModel.Delivery{}).
		Where("delivery_type = ? AND status <> ?", t, deliveryModel.StatusFinalDelivery).
		Count(&count).Error
	return count, err
}

func (s *gormStore) CountFinal() (int64, error) {
	var count int64
	err := s.db.Model(&deliveryModel.Delivery{}).
		Where("status = ?", deliveryModel.StatusFinalDelivery).
		Count(&count).Error
	return count, err
}
