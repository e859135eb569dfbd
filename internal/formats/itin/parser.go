// Package itin parses labeled itineraries built from "Departing from" /
// "Arriving at" phrases, as produced by online travel agents.
package itin

import (
	"regexp"
	"strings"

	"quotemaster/internal/dates"
	"quotemaster/internal/flight"
	"quotemaster/internal/refdata"
	"quotemaster/internal/registry"
)

var (
	// Departing from London Heathrow, 13:30, 28 January 2026
	departingRe = regexp.MustCompile(`(?i)Departing from\s+([^,]+),\s*(\d{1,2}:\d{2}),\s*(\d{1,2}\s+\w+\s+\d{4})`)

	// Arriving at Mumbai, 04:10, 29 January 2026
	arrivingRe = regexp.MustCompile(`(?i)Arriving at\s+([^,]+),\s*(\d{1,2}:\d{2}),\s*(\d{1,2}\s+\w+\s+\d{4})`)

	// Flight number tokens anywhere in the text: AI2606, BA123
	flightNumRe = regexp.MustCompile(`\b([A-Z]{2})(\d{2,4})\b`)

	// Explicit code/name pairs like "TRV Thiruvananthapuram", used to
	// resolve city names without going through the alias table.
	codePairRe = regexp.MustCompile(`\b([A-Z]{3})\s+([A-Za-z ]+?)(?:\n|$|Flight|Connection|Leg)`)
)

// stop is one "Departing from"/"Arriving at" occurrence.
type stop struct {
	city string
	time string
	date string
}

// Parser extracts legs by positionally pairing departures with arrivals.
type Parser struct{}

func init() {
	registry.Register(&Parser{})
}

func (p *Parser) Name() string  { return "itinerary" }
func (p *Parser) Priority() int { return 20 }

func (p *Parser) Signature(text string) bool {
	lower := strings.ToLower(text)
	return strings.Contains(lower, "departing from") && strings.Contains(lower, "arriving at")
}

func (p *Parser) Extract(text string) []flight.Leg {
	departures := collect(departingRe, text)
	arrivals := collect(arrivingRe, text)

	var flightNums []string
	for _, m := range flightNumRe.FindAllStringSubmatch(text, -1) {
		flightNums = append(flightNums, m[1]+m[2])
	}

	codes := make(map[string]string)
	for _, m := range codePairRe.FindAllStringSubmatch(text, -1) {
		codes[strings.ToLower(strings.TrimSpace(m[2]))] = m[1]
	}

	var legs []flight.Leg
	// Pairing stops at the shorter list: a trailing departure with no
	// matching arrival is dropped.
	for i, dep := range departures {
		if i >= len(arrivals) {
			break
		}
		arr := arrivals[i]

		num := ""
		if i < len(flightNums) {
			num = flightNums[i]
		}
		airlineCode := ""
		if len(num) >= 2 {
			airlineCode = num[:2]
		}

		legs = append(legs, flight.Leg{
			Date:    dates.Normalize(dep.date),
			From:    resolveCity(dep.city, codes),
			To:      resolveCity(arr.city, codes),
			Flight:  num,
			Dep:     dep.time,
			Arr:     arr.time,
			Airline: refdata.AirlineName(airlineCode),
			Raw:     strings.TrimSpace(num + " " + dep.city + " to " + arr.city),
		})
	}

	return legs
}

func collect(re *regexp.Regexp, text string) []stop {
	var stops []stop
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		stops = append(stops, stop{
			city: strings.TrimSpace(m[1]),
			time: m[2],
			date: m[3],
		})
	}
	return stops
}

// resolveCity prefers an explicit in-text code pairing over the alias
// table, and falls back to the raw city name when neither resolves.
func resolveCity(city string, codes map[string]string) string {
	if code, ok := codes[strings.ToLower(city)]; ok {
		return code
	}
	if code := refdata.AirportCode(city); code != "" {
		return code
	}
	return city
}
