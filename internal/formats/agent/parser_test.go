package agent

import "testing"

const sampleEmail = `Vietnam Airlines
VN - 56
LHR:Fri 11:00 13 Mar,2026London, London Heathrow Arpt
SGN:Sat 06:25 14 Mar,2026Ho Chi Minh City, Tan Son Nhat Intl Arpt
VN - 255
SGN:Sat 10:30 14 Mar,2026Ho Chi Minh City, Tan Son Nhat Intl Arpt
HAN:Sat 12:40 14 Mar,2026Hanoi, Noi Bai Arpt
`

func TestExtractAlternatingPairs(t *testing.T) {
	p := &Parser{}

	legs := p.Extract(sampleEmail)
	if len(legs) != 2 {
		t.Fatalf("len(legs) = %d, want 2", len(legs))
	}

	first := legs[0]
	if first.From != "LHR" || first.To != "SGN" {
		t.Errorf("first route = %s-%s, want LHR-SGN", first.From, first.To)
	}
	if first.Flight != "VN56" || first.Airline != "Vietnam Airlines" {
		t.Errorf("first flight = %q / %q", first.Flight, first.Airline)
	}
	if first.Date != "2026-03-13" || first.Dep != "11:00" || first.Arr != "06:25" {
		t.Errorf("first leg = %+v", first)
	}

	second := legs[1]
	if second.From != "SGN" || second.To != "HAN" {
		t.Errorf("second route = %s-%s, want SGN-HAN", second.From, second.To)
	}
	if second.Flight != "VN255" {
		t.Errorf("second flight = %q, want VN255", second.Flight)
	}
	// The airline line appears once and carries across segments.
	if second.Airline != "Vietnam Airlines" {
		t.Errorf("second airline = %q, want carried over", second.Airline)
	}
	if second.Dep != "10:30" || second.Arr != "12:40" {
		t.Errorf("second leg = %+v", second)
	}
}

func TestExtractAirlineFromFlightNumber(t *testing.T) {
	p := &Parser{}

	// No airline name line; the carrier prefix resolves it.
	text := "BA-123\n" +
		"LHR:Mon 09:00 6 Apr,2026London, London Heathrow Arpt\n" +
		"JFK:Mon 12:00 6 Apr,2026New York, John F Kennedy Intl Arpt\n"

	legs := p.Extract(text)
	if len(legs) != 1 {
		t.Fatalf("len(legs) = %d, want 1", len(legs))
	}
	if legs[0].Flight != "BA123" {
		t.Errorf("Flight = %q, want BA123", legs[0].Flight)
	}
	if legs[0].Airline != "British Airways" {
		t.Errorf("Airline = %q, want British Airways", legs[0].Airline)
	}
}

func TestExtractRepeatedDepartureRestartsLeg(t *testing.T) {
	p := &Parser{}

	// A second departure line for the same airport replaces the first
	// instead of closing a zero-length leg.
	text := "LHR:Fri 11:00 13 Mar,2026London, London Heathrow Arpt\n" +
		"LHR:Fri 13:00 13 Mar,2026London, London Heathrow Arpt\n" +
		"SGN:Sat 06:25 14 Mar,2026Ho Chi Minh City, Tan Son Nhat Intl Arpt\n"

	legs := p.Extract(text)
	if len(legs) != 1 {
		t.Fatalf("len(legs) = %d, want 1", len(legs))
	}
	if legs[0].From != "LHR" || legs[0].To != "SGN" {
		t.Errorf("route = %s-%s, want LHR-SGN", legs[0].From, legs[0].To)
	}
	if legs[0].Dep != "13:00" {
		t.Errorf("Dep = %q, want the restarted departure 13:00", legs[0].Dep)
	}
}

func TestExtractDropsTrailingDeparture(t *testing.T) {
	p := &Parser{}

	text := "LHR:Fri 11:00 13 Mar,2026London, London Heathrow Arpt\n"

	legs := p.Extract(text)
	if len(legs) != 0 {
		t.Fatalf("len(legs) = %d, want 0: a departure with no arrival is incomplete", len(legs))
	}
}

func TestSignature(t *testing.T) {
	p := &Parser{}

	if !p.Signature(sampleEmail) {
		t.Error("Signature(sample) = false, want true")
	}
	if p.Signature("Outbound:\nBritish Airways\n21:35") {
		t.Error("Signature(booking text) = true, want false")
	}
}
