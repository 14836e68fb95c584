package booking

import (
	"testing"

	"eventify/models"
)

func testEvent() models.Event {
	return models.Event{
		EventID: "e1",
		Name:    "Summer Gala",
		Packages: []models.EventPackage{
			{Type: models.TicketGeneral, Name: "General Admission", Price: 500},
			{Type: models.TicketVIP, Name: "VIP Pass", Price: 1000},
		},
		OrganizerID: "o1",
	}
}

func testService() models.Service {
	return models.Service{
		ServiceID:     "s1",
		OrganizerName: "Dream Weddings",
		Packages: []models.ServicePackage{
			{Name: "Silver", Price: 2500, Description: "basics"},
			{Name: "Gold", Price: 5000, Description: "full planning"},
		},
		IsActive:    true,
		OrganizerID: "o1",
	}
}

func TestValidateRequiresExactlyOneTarget(t *testing.T) {
	cases := []struct {
		name    string
		req     CreateRequest
		wantErr error
	}{
		{"neither", CreateRequest{}, ErrNoTarget},
		{"both", CreateRequest{EventID: "e1", ServiceID: "s1"}, ErrBothTargets},
		{"event only", CreateRequest{EventID: "e1"}, nil},
		{"service only", CreateRequest{ServiceID: "s1"}, nil},
	}
	for _, tc := range cases {
		req := tc.req
		if err := req.Validate(); err != tc.wantErr {
			t.Errorf("%s: got %v, want %v", tc.name, err, tc.wantErr)
		}
	}
}

func TestValidateQuantity(t *testing.T) {
	req := CreateRequest{EventID: "e1"}
	if err := req.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Quantity != 1 {
		t.Errorf("omitted quantity should default to 1, got %d", req.Quantity)
	}

	req = CreateRequest{EventID: "e1", Quantity: -2}
	if err := req.Validate(); err != ErrInvalidQuantity {
		t.Errorf("negative quantity: got %v, want ErrInvalidQuantity", err)
	}
}

func TestBuildEventBookingResolvesTicketClass(t *testing.T) {
	event := testEvent()

	b, err := BuildEventBooking("u1", &event, CreateRequest{
		EventID: "e1", TicketType: models.TicketVIP, Quantity: 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Package.Name != "VIP Pass" || b.Package.Price != 1000 {
		t.Errorf("wrong package snapshot: %+v", b.Package)
	}
	if b.TotalAmount != 2000 {
		t.Errorf("totalAmount = %v, want 2000", b.TotalAmount)
	}
	if b.Status != models.BookingPending || b.PaymentStatus != models.PaymentPending {
		t.Errorf("new booking must start pending/pending, got %s/%s", b.Status, b.PaymentStatus)
	}
	if b.EventID == "" || b.ServiceID != "" {
		t.Errorf("event booking must set only the event reference: %+v", b)
	}
	if b.Type != models.BookingTypeEvent {
		t.Errorf("type = %s, want event", b.Type)
	}
}

func TestBuildEventBookingRejectsUnknownTicketClass(t *testing.T) {
	event := testEvent()
	event.Packages = event.Packages[:1] // general only

	_, err := BuildEventBooking("u1", &event, CreateRequest{
		EventID: "e1", TicketType: models.TicketVIP, Quantity: 1,
	})
	if err != ErrInvalidTicketType {
		t.Errorf("got %v, want ErrInvalidTicketType", err)
	}
}

func TestBuildEventBookingDuplicateClassPicksFirst(t *testing.T) {
	// the schema does not enforce one package per ticket class; lookups take
	// the first match
	event := testEvent()
	event.Packages = []models.EventPackage{
		{Type: models.TicketGeneral, Name: "Early Bird", Price: 300},
		{Type: models.TicketGeneral, Name: "Regular", Price: 500},
	}

	b, err := BuildEventBooking("u1", &event, CreateRequest{
		EventID: "e1", TicketType: models.TicketGeneral, Quantity: 1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Package.Name != "Early Bird" || b.TotalAmount != 300 {
		t.Errorf("expected first matching package, got %+v", b.Package)
	}
}

func TestBuildServiceBookingIgnoresQuantityInTotal(t *testing.T) {
	service := testService()

	b, err := BuildServiceBooking("u1", &service, CreateRequest{
		ServiceID: "s1", PackageName: "Gold", Quantity: 3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.TotalAmount != 5000 {
		t.Errorf("service totalAmount must not scale with quantity, got %v", b.TotalAmount)
	}
	if b.ServiceID == "" || b.EventID != "" {
		t.Errorf("service booking must set only the service reference: %+v", b)
	}
}

func TestBuildServiceBookingPackageNameIsCaseSensitive(t *testing.T) {
	service := testService()

	if _, err := BuildServiceBooking("u1", &service, CreateRequest{
		ServiceID: "s1", PackageName: "gold",
	}); err != ErrInvalidPackage {
		t.Errorf("got %v, want ErrInvalidPackage", err)
	}
}

func TestSnapshotSurvivesCatalogEdit(t *testing.T) {
	service := testService()

	b, err := BuildServiceBooking("u1", &service, CreateRequest{
		ServiceID: "s1", PackageName: "Silver",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// organizer reprices the package after the booking exists
	service.Packages[0].Price = 9999
	service.Packages[0].Name = "Silver Plus"

	if b.Package.Price != 2500 || b.Package.Name != "Silver" {
		t.Errorf("booking snapshot changed with the catalog: %+v", b.Package)
	}
}

func TestValidStatusTarget(t *testing.T) {
	for _, s := range []string{models.BookingConfirmed, models.BookingCancelled, models.BookingCompleted} {
		if !ValidStatusTarget(s) {
			t.Errorf("%s should be a valid target", s)
		}
	}
	for _, s := range []string{models.BookingPending, "paid", "done", ""} {
		if ValidStatusTarget(s) {
			t.Errorf("%s should not be a valid target", s)
		}
	}
}
