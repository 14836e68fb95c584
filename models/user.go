package models

import "time"

// Customer is the buying side of the marketplace.
type Customer struct {
	CustomerID string    `json:"customerid" bson:"customerid"`
	Name       string    `json:"name" bson:"name"`
	Email      string    `json:"email" bson:"email"`
	Phone      string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Address    string    `json:"address,omitempty" bson:"address,omitempty"`
	Password   string    `json:"-" bson:"password"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" bson:"updated_at"`
}

// Organizer lists events and services.
type Organizer struct {
	OrganizerID  string    `json:"organizerid" bson:"organizerid"`
	BusinessName string    `json:"businessName" bson:"businessName"`
	Email        string    `json:"email" bson:"email"`
	Phone        string    `json:"phone,omitempty" bson:"phone,omitempty"`
	ServiceType  string    `json:"serviceType,omitempty" bson:"serviceType,omitempty"`
	Password     string    `json:"-" bson:"password"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

// Principal kinds carried in token claims.
const (
	UserTypeCustomer  = "customer"
	UserTypeOrganizer = "organizer"
)
