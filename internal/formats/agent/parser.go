// Package agent parses travel-agent confirmation emails in the colon
// format, e.g. "LHR:Fri 11:00 13 Mar,2026London, London Heathrow Arpt".
// Departure and arrival alternate on consecutive matching lines.
package agent

import (
	"regexp"
	"strconv"
	"strings"

	"quotemaster/internal/dates"
	"quotemaster/internal/flight"
	"quotemaster/internal/refdata"
	"quotemaster/internal/registry"
)

var (
	signatureRe = regexp.MustCompile(`(?i)[A-Z]{3}:(?:Mon|Tue|Wed|Thu|Fri|Sat|Sun)\s+\d{1,2}:\d{2}\s+\d{1,2}\s+(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)`)

	// Full airline names these emails lead a segment with.
	airlineRe = regexp.MustCompile(`(?i)^(Vietnam Airlines|Air India|British Airways|Emirates|Qatar Airways|Singapore Airlines|Thai Airways|Cathay Pacific)`)

	// Flight number on its own line: VN - 56, VN-56, VN 56
	flightNumRe = regexp.MustCompile(`^([A-Z]{2})\s*[-–]?\s*(\d{1,4})$`)

	// The core event line: LHR:Fri 11:00 13 Mar,2026...
	eventRe = regexp.MustCompile(`(?i)^([A-Z]{3}):(Mon|Tue|Wed|Thu|Fri|Sat|Sun)\s+(\d{1,2}:\d{2})\s+(\d{1,2})\s+(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec),?(\d{4})`)
)

// Parser is a two-state line scanner: awaiting a departure line, then
// awaiting the arrival line that closes the leg.
type Parser struct{}

func init() {
	registry.Register(&Parser{})
}

func (p *Parser) Name() string  { return "agent" }
func (p *Parser) Priority() int { return 40 }

func (p *Parser) Signature(text string) bool {
	return signatureRe.MatchString(text)
}

func (p *Parser) Extract(text string) []flight.Leg {
	var legs []flight.Leg

	var pending *flight.Leg // nil = awaiting departure
	airline := ""
	flightNum := ""

	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}

		if airlineRe.MatchString(line) {
			airline = line
			continue
		}

		if m := flightNumRe.FindStringSubmatch(line); m != nil {
			flightNum = m[1] + m[2]
			continue
		}

		m := eventRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		code := strings.ToUpper(m[1])
		clock := m[3]

		// A repeated departure for the same code restarts the leg instead
		// of closing it: only a departure followed by a genuine arrival
		// emits.
		if pending == nil || code == pending.From {
			// Departure opens a new leg.
			day, _ := strconv.Atoi(m[4])
			month, _ := refdata.MonthIndex(m[5])
			year, _ := strconv.Atoi(m[6])

			name := airline
			if name == "" && len(flightNum) >= 2 {
				name = refdata.AirlineCodes[flightNum[:2]]
			}

			pending = &flight.Leg{
				Date:    dates.FormatISO(year, month, day),
				From:    code,
				Dep:     clock,
				Flight:  flightNum,
				Airline: name,
				Raw:     line,
			}
			continue
		}

		// Arrival closes the pending leg.
		pending.To = code
		pending.Arr = clock
		pending.Raw = pending.Raw + "\n" + line
		legs = append(legs, *pending)
		pending = nil
		flightNum = ""
	}

	// A trailing departure with no arrival is never emitted.
	return legs
}
