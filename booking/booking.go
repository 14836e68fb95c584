package booking

import (
	"errors"
	"time"

	"eventify/models"
	"eventify/utils"
)

// Validation failures surfaced to the caller as 400-level rejections.
var (
	ErrNoTarget          = errors.New("either eventId or serviceId is required")
	ErrBothTargets       = errors.New("only one of eventId or serviceId may be set")
	ErrInvalidQuantity   = errors.New("quantity must be at least 1")
	ErrInvalidTicketType = errors.New("invalid ticket type")
	ErrInvalidPackage    = errors.New("invalid service package")
)

// CreateRequest is the customer's booking submission.
type CreateRequest struct {
	EventID       string `json:"eventId"`
	ServiceID     string `json:"serviceId"`
	TicketType    string `json:"ticketType"`
	Quantity      int    `json:"quantity"`
	PackageName   string `json:"packageName"`
	CustomerNotes string `json:"customerNotes"`
}

// Validate enforces the catalog-reference XOR and normalizes quantity.
// A zero quantity means the client omitted it and defaults to 1.
func (req *CreateRequest) Validate() error {
	if req.EventID == "" && req.ServiceID == "" {
		return ErrNoTarget
	}
	if req.EventID != "" && req.ServiceID != "" {
		return ErrBothTargets
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.Quantity < 1 {
		return ErrInvalidQuantity
	}
	return nil
}

// BuildEventBooking resolves the requested ticket class against the event's
// packages and snapshots the match. Total amount scales with quantity.
func BuildEventBooking(customerID string, event *models.Event, req CreateRequest) (models.Booking, error) {
	pkg, ok := event.FindEventPackage(req.TicketType)
	if !ok {
		return models.Booking{}, ErrInvalidTicketType
	}

	now := time.Now()
	return models.Booking{
		BookingID:     "b" + utils.GenerateID(16),
		CustomerID:    customerID,
		EventID:       event.EventID,
		Type:          models.BookingTypeEvent,
		TicketType:    req.TicketType,
		Quantity:      req.Quantity,
		Package:       models.PackageSnapshot{Name: pkg.Name, Price: pkg.Price},
		TotalAmount:   pkg.Price * float64(req.Quantity),
		Status:        models.BookingPending,
		PaymentStatus: models.PaymentPending,
		BookingDate:   now,
		CustomerNotes: req.CustomerNotes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// BuildServiceBooking resolves the requested package by exact name and
// snapshots the match. Services are not quantity-scaled.
func BuildServiceBooking(customerID string, service *models.Service, req CreateRequest) (models.Booking, error) {
	pkg, ok := service.FindServicePackage(req.PackageName)
	if !ok {
		return models.Booking{}, ErrInvalidPackage
	}

	now := time.Now()
	return models.Booking{
		BookingID:     "b" + utils.GenerateID(16),
		CustomerID:    customerID,
		ServiceID:     service.ServiceID,
		Type:          models.BookingTypeService,
		Quantity:      req.Quantity,
		Package:       models.PackageSnapshot{Name: pkg.Name, Price: pkg.Price},
		TotalAmount:   pkg.Price,
		Status:        models.BookingPending,
		PaymentStatus: models.PaymentPending,
		BookingDate:   now,
		CustomerNotes: req.CustomerNotes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// canCancel reports whether a booking in the given status may still be
// cancelled. Cancelling is not idempotent; a cancelled booking is rejected.
func canCancel(status string) bool {
	return status != models.BookingCancelled
}

// ownsBooking reports whether the requesting organizer owns the booking's
// catalog item. An unresolved owner fails closed.
func ownsBooking(ownerID string, resolveErr error, organizerID string) bool {
	return resolveErr == nil && ownerID == organizerID
}

// ValidStatusTarget reports whether an organizer may set the given status.
// Pending is creation-only and never a valid target. No ordering is enforced
// between the three targets.
func ValidStatusTarget(status string) bool {
	switch status {
	case models.BookingConfirmed, models.BookingCancelled, models.BookingCompleted:
		return true
	}
	return false
}
