// Package gds parses GDS terminal itinerary rows (Amadeus/Sabre/Galileo/MSC).
package gds

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
	// A line beginning with an index number, a 2-letter carrier and digits.
	signatureRe = regexp.MustCompile(`(?m)^\s*\d+\.?\s+[A-Z]{2}\s*\d+`)

	// Dotted row: 1. AI  128 U  28JAN LHRBOM AK1  1330  #0410   WE
	dottedRe = regexp.MustCompile(`(?i)^\s*\d+\.\s*([A-Z]{2})\s*(\d+)\s+\w\s+(\d{1,2})([A-Z]{3})\s+([A-Z]{3})([A-Z]{3})\s+\w+\d?\s+(\d{4})\s+#?(\d{4})`)

	// Undotted/MSC row: 1  AI 132 S 20FEB 5 LHRBLR HK1  2005 2  2105 1220+1 788 E 0
	undottedRe = regexp.MustCompile(`(?i)^\s*\d+\s+([A-Z]{2})\s*(\d+)\s+\w\s+(\d{1,2})([A-Z]{3})\s+\d\s+([A-Z]{3})([A-Z]{3})\s+\w+\d?\s+(\d{4})`)

	// Arrival clock in undotted rows: the 4-digit group (optionally +N for a
	// next-day arrival) right before the 3-digit aircraft type column. The
	// trailing column count varies, so this is a secondary scan.
	undottedArrRe = regexp.MustCompile(`(\d{4})(?:\+\d)?\s+\d{3}\s+\w`)
)

// Parser extracts legs from GDS availability/itinerary display lines.
type Parser struct{}

func init() {
	registry.Register(&Parser{})
}

func (p *Parser) Name() string  { return "gds" }
func (p *Parser) Priority() int { return 10 }

func (p *Parser) Signature(text string) bool {
	return signatureRe.MatchString(text)
}

func (p *Parser) Extract(text string) []flight.Leg {
	return p.extractAt(text, time.Now())
}

func (p *Parser) extractAt(text string, now time.Time) []flight.Leg {
	var legs []flight.Leg

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		// Operational notes between rows, not segments.
		upper := strings.ToUpper(line)
		if strings.Contains(upper, "OPERATED BY") || strings.Contains(upper, "SEE RTSVC") {
			continue
		}

		if m := dottedRe.FindStringSubmatch(line); m != nil {
			legs = append(legs, buildLeg(line, m, m[8], now))
			continue
		}

		if m := undottedRe.FindStringSubmatch(line); m != nil {
			arr := ""
			if am := undottedArrRe.FindStringSubmatch(line); am != nil {
				arr = am[1]
			}
			legs = append(legs, buildLeg(line, m, arr, now))
		}
	}

	return legs
}

// buildLeg assembles a leg from the common capture groups of both row
// shapes: carrier, number, day, month, origin, destination, departure.
func buildLeg(line string, m []string, arrClock string, now time.Time) flight.Leg {
	carrier, number := m[1], m[2]
	day, _ := strconv.Atoi(m[3])
	month, _ := refdata.MonthIndex(m[4])

	// GDS rows carry day+month but never year.
	year := dates.RollForwardYear(month, now)

	return flight.Leg{
		Date:    dates.FormatISO(year, month, day),
		From:    strings.ToUpper(m[5]),
		To:      strings.ToUpper(m[6]),
		Flight:  carrier + number,
		Dep:     splitClock(m[7]),
		Arr:     splitClock(arrClock),
		Airline: refdata.AirlineName(carrier),
		Raw:     strings.TrimSpace(line),
	}
}

// splitClock turns a 4-digit HHMM group into "HH:MM" by fixed position,
// preserving leading zeros.
func splitClock(clock string) string {
	if len(clock) != 4 {
		return ""
	}
	return clock[:2] + ":" + clock[2:]
}
