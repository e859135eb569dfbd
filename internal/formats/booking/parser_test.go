package booking

import (
	"strings"
	"testing"
	"time"
)

var refNow = time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)

const sampleConfirmation = `Your booking is confirmed
Outbound:
British Airways
BA117
21:35
25 Nov
London Heathrow
Stop 1
2h 15m
9:55
Mumbai
Aircraft: Boeing 777
bs12345
Return:
Virgin Atlantic
10:30
2 Dec
Mumbai
London Heathrow
18:45
Class: Economy
`

func TestExtractSections(t *testing.T) {
	p := &Parser{}

	legs := p.extractAt(sampleConfirmation, refNow)
	if len(legs) != 2 {
		t.Fatalf("len(legs) = %d, want 2", len(legs))
	}

	out := legs[0]
	if out.From != "LHR" || out.To != "BOM" {
		t.Errorf("outbound route = %s-%s, want LHR-BOM", out.From, out.To)
	}
	if out.Airline != "British Airways" {
		t.Errorf("outbound airline = %q", out.Airline)
	}
	if out.Dep != "21:35" {
		t.Errorf("outbound Dep = %q, want 21:35", out.Dep)
	}
	// Single-digit hours are zero-padded.
	if out.Arr != "09:55" {
		t.Errorf("outbound Arr = %q, want 09:55", out.Arr)
	}
	if out.Date != "2026-11-25" {
		t.Errorf("outbound Date = %q, want 2026-11-25", out.Date)
	}
	if !strings.HasPrefix(out.Raw, "Outbound:") {
		t.Errorf("outbound Raw = %q, want Outbound: prefix", out.Raw)
	}

	ret := legs[1]
	if ret.From != "BOM" || ret.To != "LHR" {
		t.Errorf("return route = %s-%s, want BOM-LHR", ret.From, ret.To)
	}
	if ret.Airline != "Virgin Atlantic" {
		t.Errorf("return airline = %q", ret.Airline)
	}
	if ret.Dep != "10:30" || ret.Arr != "18:45" {
		t.Errorf("return clocks = %s/%s", ret.Dep, ret.Arr)
	}
	if ret.Date != "2026-12-02" {
		t.Errorf("return Date = %q, want 2026-12-02", ret.Date)
	}
}

func TestExtractSkipsNoiseOnlySection(t *testing.T) {
	p := &Parser{}

	text := "Outbound:\nAircraft: A320\nClass: Economy\nbs99\n"

	legs := p.extractAt(text, refNow)
	if len(legs) != 0 {
		t.Fatalf("len(legs) = %d, want 0 for a section with no leg data", len(legs))
	}
}

func TestExtractDateRollsForward(t *testing.T) {
	p := &Parser{}

	// February is behind a mid-June reference, so the leg is next year.
	text := "Outbound:\n08:15\n10 Feb\nLondon Heathrow\nMumbai\n12:40\n"

	legs := p.extractAt(text, refNow)
	if len(legs) != 1 {
		t.Fatalf("len(legs) = %d, want 1", len(legs))
	}
	if legs[0].Date != "2027-02-10" {
		t.Errorf("Date = %q, want 2027-02-10", legs[0].Date)
	}
}

func TestSignature(t *testing.T) {
	p := &Parser{}

	if !p.Signature(sampleConfirmation) {
		t.Error("Signature(sample) = false, want true")
	}
	if p.Signature("1. AI  128 U  28JAN LHRBOM AK1  1330  #0410   WE") {
		t.Error("Signature(GDS row) = true, want false")
	}
}
