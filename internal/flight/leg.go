// Package flight provides the leg record produced by the itinerary parser.
package flight

// Leg is one point-to-point flight segment extracted from pasted text.
// Source text is lossy, so every field is independently optional; consumers
// must treat any field as potentially empty.
type Leg struct {
	Date    string `json:"date"`    // ISO calendar date (YYYY-MM-DD), or empty.
	From    string `json:"from"`    // Origin airport code, or raw text when unresolved.
	To      string `json:"to"`      // Destination airport code, or raw text when unresolved.
	Flight  string `json:"flight"`  // Carrier code plus number, e.g. "BA123".
	Dep     string `json:"dep"`     // Departure clock time "HH:MM".
	Arr     string `json:"arr"`     // Arrival clock time "HH:MM".
	Airline string `json:"airline"` // Resolved airline name, or the raw carrier code.
	Raw     string `json:"raw"`     // Source fragment the leg was built from.
}
