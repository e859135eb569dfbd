// Package booking parses booking-site confirmations laid out in
// Outbound:/Inbound:/Return: sections with one value per line.
package booking

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"quotemaster/internal/dates"
	"quotemaster/internal/flight"
	"quotemaster/internal/refdata"
	"quotemaster/internal/registry"
)

var (
	sectionLabelRe = regexp.MustCompile(`(?i)^(Outbound|Inbound|Return):`)

	// Line noise: detail labels, stop markers, layover durations and short
	// booking references.
	detailLabelRe = regexp.MustCompile(`(?i)^(Aircraft|Class|Baggage|Seats|Cabin):`)
	stopRe        = regexp.MustCompile(`(?i)^Stop\s+\d`)
	layoverRe     = regexp.MustCompile(`(?i)^\d+\s*h\s*\d+\s*m$`)
	bookingCodeRe = regexp.MustCompile(`(?i)^bs\d+$`)

	// Full airline names these confirmations lead with.
	airlineRe = regexp.MustCompile(`(?i)^(Air China|British Airways|Virgin Atlantic|Emirates|Qatar|Air India|Lufthansa|easyJet|Ryanair)`)

	// Bare clock line: 21:35
	clockRe = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

	// Bare date line with no year: 25 Nov
	bareDateRe = regexp.MustCompile(`(?i)^(\d{1,2})\s+(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)$`)

	airportHintRe = regexp.MustCompile(`(?i)arpt|airport`)
)

// Parser extracts one leg per Outbound:/Inbound:/Return: section.
type Parser struct{}

func init() {
	registry.Register(&Parser{})
}

func (p *Parser) Name() string  { return "booking" }
func (p *Parser) Priority() int { return 30 }

func (p *Parser) Signature(text string) bool {
	for _, line := range strings.Split(text, "\n") {
		if sectionLabelRe.MatchString(strings.TrimSpace(line)) {
			return true
		}
	}
	return false
}

func (p *Parser) Extract(text string) []flight.Leg {
	return p.extractAt(text, time.Now())
}

func (p *Parser) extractAt(text string, now time.Time) []flight.Leg {
	var legs []flight.Leg
	for _, section := range splitSections(text) {
		if leg, ok := extractSection(section, now); ok {
			legs = append(legs, leg)
		}
	}
	return legs
}

// splitSections cuts the text at each line-initial section label. Text
// before the first label is dropped.
func splitSections(text string) [][]string {
	var sections [][]string
	var current []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if sectionLabelRe.MatchString(trimmed) {
			if current != nil {
				sections = append(sections, current)
			}
			current = []string{trimmed}
			continue
		}
		if current != nil && trimmed != "" {
			current = append(current, trimmed)
		}
	}
	if current != nil {
		sections = append(sections, current)
	}
	return sections
}

// extractSection classifies the section's lines one at a time, then takes
// the first two clocks as dep/arr, the first date as the leg date and the
// first two airports as from/to.
func extractSection(lines []string, now time.Time) (flight.Leg, bool) {
	raw := strings.Join(lines, "\n")
	if len(raw) > 100 {
		raw = raw[:100]
	}
	leg := flight.Leg{Raw: raw}

	var clocks, days, airports []string

	for _, line := range lines {
		switch {
		case sectionLabelRe.MatchString(line),
			detailLabelRe.MatchString(line),
			stopRe.MatchString(line),
			layoverRe.MatchString(line),
			bookingCodeRe.MatchString(line):
			continue
		}

		if leg.Airline == "" && airlineRe.MatchString(line) {
			leg.Airline = line
			continue
		}

		if m := clockRe.FindStringSubmatch(line); m != nil {
			h := m[1]
			if len(h) == 1 {
				h = "0" + h
			}
			clocks = append(clocks, h+":"+m[2])
			continue
		}

		if m := bareDateRe.FindStringSubmatch(line); m != nil {
			day, _ := strconv.Atoi(m[1])
			month, _ := refdata.MonthIndex(m[2])
			days = append(days, dates.FormatISO(dates.RollForwardYear(month, now), month, day))
			continue
		}

		// Airport name lines, with or without an "Arpt"/"Airport" suffix.
		if airportHintRe.MatchString(line) {
			if code := refdata.AirportCode(line); code != "" {
				airports = append(airports, code)
			}
			continue
		}
		if code := refdata.AirportCode(line); code != "" {
			airports = append(airports, code)
		}
	}

	if len(clocks) >= 1 {
		leg.Dep = clocks[0]
	}
	if len(clocks) >= 2 {
		leg.Arr = clocks[1]
	}
	if len(days) >= 1 {
		leg.Date = days[0]
	}
	if len(airports) >= 1 {
		leg.From = airports[0]
	}
	if len(airports) >= 2 {
		leg.To = airports[1]
	}

	// A section with none of from/to/dep is noise, not a leg.
	if leg.From == "" && leg.To == "" && leg.Dep == "" {
		return flight.Leg{}, false
	}
	return leg, true
}
