// Package generic is the best-effort fallback extractor, run when no
// specialized format matches or every matching extractor came up empty.
package generic

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"quotemaster/internal/dates"
	"quotemaster/internal/flight"
	"quotemaster/internal/refdata"
	"quotemaster/internal/registry"
)

var (
	// BA123, AI2606, EZY8706
	flightNumRe = regexp.MustCompile(`\b([A-Z]{2,3})\s*(\d{1,4})\b`)

	// LHR-ATH, LHR to ATH, LHR → ATH, LHR>ATH
	routeRe = regexp.MustCompile(`(?i)\b([A-Z]{3})\s*(?:[-–→>]|to)\s*([A-Z]{3})\b`)

	// Candidate airport codes anywhere in the line; confirmed against the
	// code table so incidental capitals are not mistaken for airports.
	codeRe = regexp.MustCompile(`\b([A-Z]{3})\b`)

	// 14:30, 2:05pm
	timeRe = regexp.MustCompile(`(?i)\b(\d{1,2}):(\d{2})(?:\s*(am|pm))?\b`)
)

// Parser extracts whatever flight fragments a line happens to contain.
type Parser struct{}

func init() {
	registry.RegisterFallback(&Parser{})
}

func (p *Parser) Name() string  { return "generic" }
func (p *Parser) Priority() int { return 100 }

// Signature always matches; the generic format is the catch-all.
func (p *Parser) Signature(string) bool { return true }

func (p *Parser) Extract(text string) []flight.Leg {
	var legs []flight.Leg

	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}

		leg := flight.Leg{Raw: line}

		if m := flightNumRe.FindStringSubmatch(line); m != nil {
			leg.Flight = m[1] + m[2]
			leg.Airline = refdata.AirlineName(m[1])
		}

		if m := routeRe.FindStringSubmatch(line); m != nil {
			leg.From = strings.ToUpper(m[1])
			leg.To = strings.ToUpper(m[2])
		} else {
			var codes []string
			for _, m := range codeRe.FindAllStringSubmatch(line, -1) {
				if _, ok := refdata.AirportCodes[m[1]]; ok {
					codes = append(codes, m[1])
				}
			}
			if len(codes) >= 2 {
				leg.From = codes[0]
				leg.To = codes[1]
			}
		}

		var clocks []string
		for _, m := range timeRe.FindAllStringSubmatch(line, -1) {
			clocks = append(clocks, to24Hour(m[1], m[2], m[3]))
		}
		if len(clocks) >= 1 {
			leg.Dep = clocks[0]
		}
		if len(clocks) >= 2 {
			leg.Arr = clocks[1]
		}

		leg.Date = dates.Normalize(line)

		if leg.From != "" || leg.To != "" || leg.Flight != "" {
			legs = append(legs, leg)
		}
	}

	return legs
}

// to24Hour converts an extracted clock to 24-hour "HH:MM". Noon stays 12,
// midnight becomes 00.
func to24Hour(hour, minute, meridiem string) string {
	h, _ := strconv.Atoi(hour)
	switch strings.ToLower(meridiem) {
	case "pm":
		if h < 12 {
			h += 12
		}
	case "am":
		if h == 12 {
			h = 0
		}
	}
	return fmt.Sprintf("%02d:%s", h, minute)
}
