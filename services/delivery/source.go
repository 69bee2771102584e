package delivery

import (
	deliveryModel "bps-backoffice/models/delivery"
)

// Source identifies the single document a delivery is assigned from: either a
// booking or a quotation, never both and never neither. Construct it only
// through BookingSource or QuotationSource.
type Source struct {
	typ deliveryModel.Type
	id  uint
}

// BookingSource builds a Source pointing at a booking's storage id.
func BookingSource(id uint) Source {
	return Source{typ: deliveryModel.TypeBooking, id: id}
}

// QuotationSource builds a Source pointing at a quotation's storage id.
func QuotationSource(id uint) Source {
	return Source{typ: deliveryModel.TypeQuotation, id: id}
}

func (s Source) Type() deliveryModel.Type {
	return s.typ
}

func (s Source) ID() uint {
	return s.id
}

// attach sets the matching reference field and the type tag on a delivery, so
// DeliveryType always agrees with whichever reference is populated.
func (s Source) attach(d *deliveryModel.Delivery) {
	d.DeliveryType = s.typ
	id := s.id
	switch s.typ {
	case deliveryModel.TypeBooking:
		d.BookingID = &id
	case deliveryModel.TypeQuotation:
		d.QuotationID = &id
	}
}
