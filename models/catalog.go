package models

import "time"

// Ticket classes for event packages.
const (
	TicketGeneral = "general"
	TicketVIP     = "vip"
)

// EventPackage is a purchasable ticket class on an Event. Nothing stops an
// organizer from submitting two packages with the same type; lookups pick
// the first match.
type EventPackage struct {
	Type  string  `json:"type" bson:"type"` // general | vip
	Name  string  `json:"name" bson:"name"`
	Price float64 `json:"price" bson:"price"`
}

// ServicePackage is a named offering on a Service.
type ServicePackage struct {
	Name        string   `json:"name" bson:"name"`
	Price       float64  `json:"price" bson:"price"`
	Description string   `json:"description" bson:"description"`
	Features    []string `json:"features" bson:"features"`
}

type GalleryImage struct {
	URL      string `json:"url" bson:"url"`
	Filename string `json:"filename" bson:"filename"`
}

type Event struct {
	EventID     string         `json:"eventid" bson:"eventid"`
	Name        string         `json:"name" bson:"name"`
	Date        string         `json:"date" bson:"date"` // opaque display string
	Venue       string         `json:"venue" bson:"venue"`
	Description string         `json:"description" bson:"description"`
	Packages    []EventPackage `json:"packages" bson:"packages"`
	OrganizerID string         `json:"organizerid" bson:"organizerid"`
	Gallery     []GalleryImage `json:"gallery,omitempty" bson:"gallery,omitempty"`
	CreatedAt   time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" bson:"updated_at"`
}

type Service struct {
	ServiceID     string           `json:"serviceid" bson:"serviceid"`
	OrganizerName string           `json:"organizerName" bson:"organizerName"`
	ServiceType   string           `json:"serviceType" bson:"serviceType"`
	Location      string           `json:"location" bson:"location"`
	Rating        float64          `json:"rating" bson:"rating"` // 0..5
	Description   string           `json:"description" bson:"description"`
	Packages      []ServicePackage `json:"packages" bson:"packages"`
	Portfolio     []GalleryImage   `json:"portfolio,omitempty" bson:"portfolio,omitempty"`
	IsActive      bool             `json:"isActive" bson:"isActive"`
	OrganizerID   string           `json:"organizerid" bson:"organizerid"`
	CreatedAt     time.Time        `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at" bson:"updated_at"`
}

// FindEventPackage returns the first package matching the ticket type.
func (e *Event) FindEventPackage(ticketType string) (EventPackage, bool) {
	for _, p := range e.Packages {
		if p.Type == ticketType {
			return p, true
		}
	}
	return EventPackage{}, false
}

// FindServicePackage matches by exact, case-sensitive name.
func (s *Service) FindServicePackage(name string) (ServicePackage, bool) {
	for _, p := range s.Packages {
		if p.Name == name {
			return p, true
		}
	}
	return ServicePackage{}, false
}
