package itinerary

import "testing"

func TestDetectGDS(t *testing.T) {
	legs, format := Detect("1. AI  128 U  28JAN LHRBOM AK1  1330  #0410   WE")
	if format != "gds" {
		t.Errorf("format = %q, want %q", format, "gds")
	}
	if len(legs) != 1 || legs[0].Flight != "AI128" {
		t.Errorf("legs = %+v", legs)
	}
}

func TestDetectPriorityOverlap(t *testing.T) {
	// A GDS row above a booking section label: the more rigid format wins.
	text := "1. AI  128 U  28JAN LHRBOM AK1  1330  #0410   WE\nOutbound:\n10:30\nMumbai\nLondon Heathrow\n"

	_, format := Detect(text)
	if format != "gds" {
		t.Errorf("format = %q, want %q", format, "gds")
	}
}

func TestDetectBooking(t *testing.T) {
	text := "Outbound:\nBritish Airways\n21:35\n25 Nov\nLondon Heathrow\nMumbai\n23:55\n"

	legs, format := Detect(text)
	if format != "booking" {
		t.Errorf("format = %q, want %q", format, "booking")
	}
	if len(legs) != 1 || legs[0].From != "LHR" || legs[0].To != "BOM" {
		t.Errorf("legs = %+v", legs)
	}
}

func TestDetectAgent(t *testing.T) {
	text := "Vietnam Airlines\nVN - 56\n" +
		"LHR:Fri 11:00 13 Mar,2026London, London Heathrow Arpt\n" +
		"SGN:Sat 06:25 14 Mar,2026Ho Chi Minh City, Tan Son Nhat Intl Arpt\n"

	legs, format := Detect(text)
	if format != "agent" {
		t.Errorf("format = %q, want %q", format, "agent")
	}
	if len(legs) != 1 || legs[0].Flight != "VN56" {
		t.Errorf("legs = %+v", legs)
	}
}

func TestDetectFallsBackToGeneric(t *testing.T) {
	legs, format := Detect("BA123 LHR-JFK 14:30 16:20")
	if format != "generic" {
		t.Errorf("format = %q, want %q", format, "generic")
	}
	if len(legs) != 1 {
		t.Errorf("len(legs) = %d, want 1", len(legs))
	}
}

func TestParseNeverNil(t *testing.T) {
	for _, text := range []string{"", "   ", "nothing that looks like a flight"} {
		legs := Parse(text)
		if legs == nil {
			t.Fatalf("Parse(%q) returned nil slice", text)
		}
		if len(legs) != 0 {
			t.Errorf("Parse(%q) = %+v, want empty", text, legs)
		}
	}
}

func TestParseNormalizesCRLF(t *testing.T) {
	legs := Parse("Outbound:\r\n21:35\r\n25 Nov\r\nLondon Heathrow\r\nMumbai\r\n23:55\r\n")
	if len(legs) != 1 {
		t.Fatalf("len(legs) = %d, want 1", len(legs))
	}
	if legs[0].From != "LHR" || legs[0].To != "BOM" {
		t.Errorf("leg = %+v", legs[0])
	}
}

func TestFormats(t *testing.T) {
	// Four specialized extractors plus the generic fallback.
	if got := Formats(); got != 5 {
		t.Errorf("Formats() = %d, want 5", got)
	}
}

func TestAirportHelpers(t *testing.T) {
	if got := AirportName("LHR"); got != "London Heathrow" {
		t.Errorf("AirportName(LHR) = %q", got)
	}
	if got := AirportCode("Heathrow"); got != "LHR" {
		t.Errorf("AirportCode(Heathrow) = %q", got)
	}
}
