package citytax

import "math"

// Estimate is the computed tax band for one stay.
type Estimate struct {
	City            string  `json:"city"`
	Min             float64 `json:"min"`
	Max             float64 `json:"max"`
	Currency        string  `json:"currency"`
	IsPercentage    bool    `json:"isPercentage"`
	PercentRate     float64 `json:"percentRate,omitempty"`
	Basis           Basis   `json:"basis"`
	Notes           string  `json:"notes,omitempty"`
	EffectiveNights int     `json:"effectiveNights"`
	CappedAt        int     `json:"cappedAt,omitempty"`
}

// Calculate works out the payable band for a stay. Percentage-based rules
// cannot be totalled without a room rate, so they come back flagged with
// the rate instead of amounts.
func (r Rule) Calculate(nights, persons, rooms int) Estimate {
	if nights < 1 {
		nights = 1
	}
	if persons < 1 {
		persons = 1
	}
	if rooms < 1 {
		rooms = 1
	}

	est := Estimate{
		City:            r.City,
		Basis:           r.Basis,
		Notes:           r.Notes,
		EffectiveNights: nights,
	}

	if r.CapNights > 0 && nights > r.CapNights {
		est.EffectiveNights = r.CapNights
		est.CappedAt = r.CapNights
	}

	if r.Basis == PercentOfRoomRate {
		est.IsPercentage = true
		if r.Percent != nil {
			est.PercentRate = r.Percent.Rate
		}
		return est
	}

	units := persons
	if r.Basis == PerRoomPerNight {
		units = rooms
	}
	multiplier := float64(units * est.EffectiveNights)

	switch {
	case r.Fixed != nil:
		est.Min = round2(r.Fixed.Amount * multiplier)
		est.Max = est.Min
		est.Currency = r.Fixed.Currency
	case r.Range != nil:
		est.Min = round2(r.Range.Min * multiplier)
		est.Max = round2(r.Range.Max * multiplier)
		est.Currency = r.Range.Currency
	}
	return est
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
