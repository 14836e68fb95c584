package booking

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventify/middleware"
	"eventify/models"

	"go.mongodb.org/mongo-driver/bson"
)

func TestBookingFeedRequiresOrganizerToken(t *testing.T) {
	handler := middleware.Authenticate(models.UserTypeOrganizer, HandleWS)

	cases := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"wrong scheme", "Basic abc"},
		{"garbage token", "Bearer not-a-jwt"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/ws/bookings", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		rec := httptest.NewRecorder()
		handler(rec, req, nil)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s: status = %d, want 401", tc.name, rec.Code)
		}
	}
}

func TestCanCancel(t *testing.T) {
	for _, s := range []string{models.BookingPending, models.BookingConfirmed, models.BookingCompleted} {
		if !canCancel(s) {
			t.Errorf("%s booking should be cancellable", s)
		}
	}
	if canCancel(models.BookingCancelled) {
		t.Error("cancelled booking must not be cancellable again")
	}
}

func TestOwnsBookingFailsClosed(t *testing.T) {
	if !ownsBooking("o1", nil, "o1") {
		t.Error("matching owner should pass")
	}
	if ownsBooking("o2", nil, "o1") {
		t.Error("foreign owner should be rejected")
	}
	// a dangling catalog reference resolves with an error; the matching id
	// that came with it must not grant access
	if ownsBooking("o1", errors.New("event e1 not found"), "o1") {
		t.Error("unresolved ownership must fail closed")
	}
	if ownsBooking("", errors.New("booking has no catalog reference"), "o1") {
		t.Error("missing catalog reference must fail closed")
	}
}

func TestOrganizerBookingsFilter(t *testing.T) {
	filter := organizerBookingsFilter([]string{"e1", "e2"}, []string{"s1"})

	or, ok := filter["$or"].(bson.A)
	if !ok || len(or) != 2 {
		t.Fatalf("filter must be an $or over both id sets: %+v", filter)
	}

	eventClause := or[0].(bson.M)
	in := eventClause["eventid"].(bson.M)["$in"].([]string)
	if len(in) != 2 || in[0] != "e1" {
		t.Errorf("event clause = %+v", eventClause)
	}

	serviceClause := or[1].(bson.M)
	in = serviceClause["serviceid"].(bson.M)["$in"].([]string)
	if len(in) != 1 || in[0] != "s1" {
		t.Errorf("service clause = %+v", serviceClause)
	}
}
