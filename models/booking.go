package models

import "time"

// Booking lifecycle. Status and PaymentStatus are independent axes; nothing
// couples paid to confirmed or cancelled to refunded.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
	BookingCompleted = "completed"

	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentFailed   = "failed"
	PaymentRefunded = "refunded"

	BookingTypeEvent   = "event"
	BookingTypeService = "service"
)

// PackageSnapshot is copied from the catalog package at booking time so
// later catalog edits never alter historical bookings.
type PackageSnapshot struct {
	Name  string  `json:"name" bson:"name"`
	Price float64 `json:"price" bson:"price"`
}

type Booking struct {
	BookingID     string          `json:"bookingid" bson:"bookingid"`
	CustomerID    string          `json:"customerid" bson:"customerid"`
	EventID       string          `json:"eventid,omitempty" bson:"eventid,omitempty"`
	ServiceID     string          `json:"serviceid,omitempty" bson:"serviceid,omitempty"`
	Type          string          `json:"type" bson:"type"` // event | service
	TicketType    string          `json:"ticketType,omitempty" bson:"ticketType,omitempty"`
	Quantity      int             `json:"quantity" bson:"quantity"`
	Package       PackageSnapshot `json:"package" bson:"package"`
	TotalAmount   float64         `json:"totalAmount" bson:"totalAmount"`
	Status        string          `json:"status" bson:"status"`
	PaymentStatus string          `json:"paymentStatus" bson:"paymentStatus"`
	PaymentID     string          `json:"paymentId,omitempty" bson:"paymentId,omitempty"`
	BookingDate   time.Time       `json:"bookingDate" bson:"bookingDate"`
	CustomerNotes string          `json:"customerNotes,omitempty" bson:"customerNotes,omitempty"`
	CreatedAt     time.Time       `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" bson:"updated_at"`
}

// CatalogID returns whichever catalog reference is set.
func (b *Booking) CatalogID() string {
	if b.EventID != "" {
		return b.EventID
	}
	return b.ServiceID
}
