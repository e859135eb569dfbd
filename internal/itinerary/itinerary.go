// Package itinerary is the entry point for free-text flight extraction:
// paste in anything copied from a GDS terminal, a travel-agent email or a
// booking site, get back normalized legs.
package itinerary

import (
	"strings"

	"quotemaster/internal/flight"
	_ "quotemaster/internal/formats" // register all formats via init()
	"quotemaster/internal/refdata"
	"quotemaster/internal/registry"
)

// Parse extracts flight legs from pasted text. It never fails: unrecognized
// input degrades through the generic fallback to an empty (non-nil) slice.
func Parse(text string) []flight.Leg {
	registry.Default().Sort()
	return registry.Default().Parse(normalize(text))
}

// Detect is Parse plus the name of the format that produced the result.
func Detect(text string) ([]flight.Leg, string) {
	registry.Default().Sort()
	return registry.Default().Dispatch(normalize(text))
}

// Formats returns the number of registered extraction strategies,
// fallbacks included.
func Formats() int { return registry.Default().FormatCount() }

func normalize(text string) string {
	return strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n"))
}

// AirportName resolves an airport code to its display name, echoing
// unknown codes back. Exposed for UI autocomplete.
func AirportName(code string) string { return refdata.AirportName(code) }

// AirportCode resolves a free-text airport or city name to its code, or ""
// when unresolved.
func AirportCode(name string) string { return refdata.AirportCode(name) }
