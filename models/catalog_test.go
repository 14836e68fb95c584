package models

import "testing"

func TestFindEventPackage(t *testing.T) {
	e := Event{Packages: []EventPackage{
		{Type: TicketGeneral, Name: "Early Bird", Price: 300},
		{Type: TicketVIP, Name: "VIP", Price: 900},
		{Type: TicketGeneral, Name: "Regular", Price: 500},
	}}

	pkg, ok := e.FindEventPackage(TicketVIP)
	if !ok || pkg.Price != 900 {
		t.Errorf("vip lookup: ok=%v pkg=%+v", ok, pkg)
	}

	// first match wins when a class appears twice
	pkg, ok = e.FindEventPackage(TicketGeneral)
	if !ok || pkg.Name != "Early Bird" {
		t.Errorf("general lookup: ok=%v pkg=%+v", ok, pkg)
	}

	if _, ok := e.FindEventPackage("premium"); ok {
		t.Error("unknown class should not resolve")
	}
}

func TestFindServicePackage(t *testing.T) {
	s := Service{Packages: []ServicePackage{
		{Name: "Gold", Price: 5000},
	}}

	if _, ok := s.FindServicePackage("Gold"); !ok {
		t.Error("exact name should resolve")
	}
	if _, ok := s.FindServicePackage("gold"); ok {
		t.Error("name lookup is case sensitive")
	}
	if _, ok := s.FindServicePackage(""); ok {
		t.Error("empty name should not resolve")
	}
}
