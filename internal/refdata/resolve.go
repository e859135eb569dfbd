package refdata

import "strings"

// AirportName returns the display name for an airport code. Unknown codes
// are echoed back unchanged.
func AirportName(code string) string {
	if code == "" {
		return ""
	}
	if name, ok := AirportCodes[strings.ToUpper(code)]; ok {
		return name
	}
	return code
}

// AirportCode resolves a free-text airport or city name to its IATA code.
// Inputs that already are a known code are returned uppercased. Otherwise
// the alias table is tried exactly, then by bidirectional substring match
// in table order (first hit wins). Returns "" when nothing matches.
func AirportCode(name string) string {
	if name == "" {
		return ""
	}
	upper := strings.ToUpper(strings.TrimSpace(name))
	if _, ok := AirportCodes[upper]; ok {
		return upper
	}

	lower := strings.ToLower(strings.TrimSpace(name))
	for _, a := range airportAliases {
		if a.name == lower {
			return a.code
		}
	}

	for _, a := range airportAliases {
		if strings.Contains(lower, a.name) || strings.Contains(a.name, lower) {
			return a.code
		}
	}
	return ""
}

// AirlineName returns the airline name for a carrier code, or the code
// itself when unknown. Never fails.
func AirlineName(code string) string {
	if name, ok := AirlineCodes[strings.ToUpper(code)]; ok {
		return name
	}
	return code
}
