// Package citytax estimates the local tourist taxes payable at destination
// cities, from a static rule table with admin-editable overrides.
package citytax

// Basis describes how a city levies its tax.
type Basis string

const (
	PerPersonPerNight Basis = "per_person_per_night"
	PerRoomPerNight   Basis = "per_room_per_night"
	PercentOfRoomRate Basis = "percent_of_room_rate"
)

// Amount is a fixed charge in a local currency.
type Amount struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// Range is a charge band in a local currency, typically varying by hotel
// category or season.
type Range struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Currency string  `json:"currency"`
}

// Percent is a room-rate percentage levy.
type Percent struct {
	Rate      float64 `json:"rate"`
	AppliesTo string  `json:"appliesTo"`
}

// Rule is one city's tax rule. Exactly one of Fixed, Range or Percent is
// set, matching Basis.
type Rule struct {
	City           string   `json:"city"`
	CountryCode    string   `json:"countryCode"`
	PayableLocally bool     `json:"payableLocally"`
	Basis          Basis    `json:"basis"`
	Fixed          *Amount  `json:"fixed,omitempty"`
	Range          *Range   `json:"range,omitempty"`
	Percent        *Percent `json:"percent,omitempty"`
	CapNights      int      `json:"capNights,omitempty"`
	Exemptions     []string `json:"exemptions,omitempty"`
	Notes          string   `json:"notes,omitempty"`
}

// builtinRules is the 2024/2025 known-rate table, keyed by country-prefixed
// identifiers.
var builtinRules = map[string]Rule{
	// Austria
	"AT_VIENNA": {
		City: "Vienna", CountryCode: "AT", PayableLocally: true,
		Basis:   PercentOfRoomRate,
		Percent: &Percent{Rate: 5, AppliesTo: "net_room_rate"},
		Notes:   "5% of room rate collected locally.",
	},

	// Italy
	"IT_VENICE": {
		City: "Venice", CountryCode: "IT", PayableLocally: true,
		Basis: PerPersonPerNight,
		Range: &Range{Min: 1, Max: 5, Currency: "EUR"},
		Notes: "€1-€5 per person/night depending on season and accommodation category.",
	},
	"IT_FLORENCE": {
		City: "Florence", CountryCode: "IT", PayableLocally: true,
		Basis: PerPersonPerNight,
		Range: &Range{Min: 3.5, Max: 8, Currency: "EUR"}, CapNights: 7,
		Notes: "€3.50-€8 per person/night depending on hotel category. Max 7 nights.",
	},
	"IT_ROME": {
		City: "Rome", CountryCode: "IT", PayableLocally: true,
		Basis: PerPersonPerNight,
		Range: &Range{Min: 4, Max: 10, Currency: "EUR"}, CapNights: 10,
		Notes: "€4-€10 per person/night depending on hotel category. Max 10 nights.",
	},
	"IT_SORRENTO": {
		City: "Sorrento", CountryCode: "IT", PayableLocally: true,
		Basis: PerPersonPerNight,
		Range: &Range{Min: 2, Max: 5, Currency: "EUR"}, CapNights: 7,
		Notes: "€2-€5 per person/night. Max 7 nights.",
	},
	"IT_PALERMO": {
		City: "Palermo", CountryCode: "IT", PayableLocally: true,
		Basis: PerPersonPerNight,
		Range: &Range{Min: 1.5, Max: 3, Currency: "EUR"}, CapNights: 4,
		Notes: "€1.50-€3 per person/night. Max 4 nights.",
	},
	"IT_CATANIA": {
		City: "Catania", CountryCode: "IT", PayableLocally: true,
		Basis: PerPersonPerNight,
		Range: &Range{Min: 2, Max: 5, Currency: "EUR"}, CapNights: 4,
		Notes: "€2-€5 per person/night. Max 4 nights.",
	},
	"IT_SYRACUSE": {
		City: "Syracuse", CountryCode: "IT", PayableLocally: true,
		Basis: PerPersonPerNight,
		Range: &Range{Min: 1, Max: 5, Currency: "EUR"}, CapNights: 7,
		Notes: "Up to €5 per person/night. Max 7 nights.",
	},
	"IT_VERONA": {
		City: "Verona", CountryCode: "IT", PayableLocally: true,
		Basis: PerPersonPerNight,
		Range: &Range{Min: 2, Max: 5, Currency: "EUR"}, CapNights: 5,
		Notes: "€2-€5 per person/night. Max 5 nights.",
	},
	"IT_LAKE_GARDA": {
		City: "Lake Garda", CountryCode: "IT", PayableLocally: true,
		Basis: PerPersonPerNight,
		Range: &Range{Min: 1, Max: 4.2, Currency: "EUR"}, CapNights: 7,
		Notes: "€1-€4.20 per person/night (varies by municipality). Max 7 nights.",
	},
	"IT_MILAN": {
		City: "Milan", CountryCode: "IT", PayableLocally: true,
		Basis: PerPersonPerNight,
		Range: &Range{Min: 2, Max: 5, Currency: "EUR"}, CapNights: 14,
		Notes: "€2-€5 per person/night. Max 14 nights.",
	},
	"IT_NAPLES": {
		City: "Naples", CountryCode: "IT", PayableLocally: true,
		Basis: PerPersonPerNight,
		Range: &Range{Min: 1, Max: 5, Currency: "EUR"}, CapNights: 14,
		Notes: "€1-€5 per person/night. Max 14 nights.",
	},
	"IT_AMALFI": {
		City: "Amalfi", CountryCode: "IT", PayableLocally: true,
		Basis: PerPersonPerNight,
		Range: &Range{Min: 2, Max: 5, Currency: "EUR"}, CapNights: 7,
		Notes: "€2-€5 per person/night. Max 7 nights.",
	},
	"IT_POSITANO": {
		City: "Positano", CountryCode: "IT", PayableLocally: true,
		Basis: PerPersonPerNight,
		Range: &Range{Min: 2, Max: 5, Currency: "EUR"}, CapNights: 7,
		Notes: "€2-€5 per person/night. Max 7 nights.",
	},

	// Portugal
	"PT_LISBON": {
		City: "Lisbon", CountryCode: "PT", PayableLocally: true,
		Basis: PerPersonPerNight,
		Fixed: &Amount{Amount: 4, Currency: "EUR"}, CapNights: 7,
		Exemptions: []string{"Children under 13"},
		Notes:      "€4 per person/night. Max 7 nights. Children under 13 exempt.",
	},
	"PT_PORTO": {
		City: "Porto", CountryCode: "PT", PayableLocally: true,
		Basis: PerPersonPerNight,
		Fixed: &Amount{Amount: 3, Currency: "EUR"}, CapNights: 7,
		Notes: "€3 per person/night. Max 7 nights.",
	},

	// Netherlands
	"NL_AMSTERDAM": {
		City: "Amsterdam", CountryCode: "NL", PayableLocally: true,
		Basis:   PercentOfRoomRate,
		Percent: &Percent{Rate: 12.5, AppliesTo: "net_room_rate"},
		Notes:   "12.5% of room rate collected locally.",
	},

	// Spain
	"ES_BARCELONA": {
		City: "Barcelona", CountryCode: "ES", PayableLocally: true,
		Basis: PerPersonPerNight,
		Range: &Range{Min: 2.75, Max: 6.75, Currency: "EUR"},
		Notes: "€2.75-€6.75 per person/night depending on hotel category.",
	},
	"ES_MADRID": {
		City: "Madrid", CountryCode: "ES", PayableLocally: true,
		Basis: PerPersonPerNight,
		Range: &Range{Min: 1, Max: 3, Currency: "EUR"},
		Notes: "€1-€3 per person/night depending on hotel category.",
	},

	// France
	"FR_PARIS": {
		City: "Paris", CountryCode: "FR", PayableLocally: true,
		Basis: PerPersonPerNight,
		Range: &Range{Min: 1, Max: 5, Currency: "EUR"},
		Notes: "€1-€5 per person/night depending on hotel category.",
	},
	"FR_NICE": {
		City: "Nice", CountryCode: "FR", PayableLocally: true,
		Basis: PerPersonPerNight,
		Range: &Range{Min: 0.9, Max: 4, Currency: "EUR"},
		Notes: "€0.90-€4 per person/night depending on hotel category.",
	},

	// Germany
	"DE_BERLIN": {
		City: "Berlin", CountryCode: "DE", PayableLocally: true,
		Basis:   PercentOfRoomRate,
		Percent: &Percent{Rate: 5, AppliesTo: "net_room_rate"},
		Notes:   "5% of room rate (City Tax) collected locally.",
	},
	"DE_MUNICH": {
		City: "Munich", CountryCode: "DE", PayableLocally: true,
		Basis: PerPersonPerNight,
		Fixed: &Amount{Amount: 3.5, Currency: "EUR"},
		Notes: "€3.50 per person/night collected locally.",
	},

	// Czech Republic
	"CZ_PRAGUE": {
		City: "Prague", CountryCode: "CZ", PayableLocally: true,
		Basis: PerPersonPerNight,
		Fixed: &Amount{Amount: 50, Currency: "CZK"}, CapNights: 60,
		Notes: "50 CZK (~€2) per person/night. Max 60 nights.",
	},

	// Switzerland
	"CH_ZURICH": {
		City: "Zurich", CountryCode: "CH", PayableLocally: true,
		Basis: PerPersonPerNight,
		Fixed: &Amount{Amount: 2.5, Currency: "CHF"},
		Notes: "2.50 CHF per person/night collected locally.",
	},
	"CH_GENEVA": {
		City: "Geneva", CountryCode: "CH", PayableLocally: true,
		Basis: PerPersonPerNight,
		Range: &Range{Min: 1, Max: 3, Currency: "CHF"},
		Notes: "1-3 CHF per person/night depending on accommodation type.",
	},

	// UAE
	"AE_DUBAI": {
		City: "Dubai", CountryCode: "AE", PayableLocally: true,
		Basis: PerRoomPerNight,
		Range: &Range{Min: 7, Max: 20, Currency: "AED"}, CapNights: 30,
		Notes: "7-20 AED per room/night depending on hotel category. Max 30 nights.",
	},
	"AE_ABU_DHABI": {
		City: "Abu Dhabi", CountryCode: "AE", PayableLocally: true,
		Basis:   PercentOfRoomRate,
		Percent: &Percent{Rate: 6, AppliesTo: "room_rate"},
		Notes:   "6% tourism fee collected locally.",
	},

	// USA
	"US_NEW_YORK": {
		City: "New York", CountryCode: "US", PayableLocally: true,
		Basis:   PercentOfRoomRate,
		Percent: &Percent{Rate: 14.75, AppliesTo: "room_rate"},
		Notes:   "~14.75% in taxes and fees (varies). Usually included in quoted rate.",
	},

	// Japan
	"JP_TOKYO": {
		City: "Tokyo", CountryCode: "JP", PayableLocally: true,
		Basis: PerPersonPerNight,
		Range: &Range{Min: 100, Max: 200, Currency: "JPY"},
		Notes: "100-200 JPY per person/night for rooms over 10,000 JPY.",
	},
	"JP_OSAKA": {
		City: "Osaka", CountryCode: "JP", PayableLocally: true,
		Basis: PerPersonPerNight,
		Range: &Range{Min: 100, Max: 300, Currency: "JPY"},
		Notes: "100-300 JPY per person/night depending on room rate.",
	},
	"JP_KYOTO": {
		City: "Kyoto", CountryCode: "JP", PayableLocally: true,
		Basis: PerPersonPerNight,
		Range: &Range{Min: 200, Max: 1000, Currency: "JPY"},
		Notes: "200-1000 JPY per person/night depending on room rate.",
	},

	// Croatia
	"HR_DUBROVNIK": {
		City: "Dubrovnik", CountryCode: "HR", PayableLocally: true,
		Basis: PerPersonPerNight,
		Fixed: &Amount{Amount: 1.86, Currency: "EUR"},
		Notes: "€1.86 per person/night (seasonal variation possible).",
	},
	"HR_SPLIT": {
		City: "Split", CountryCode: "HR", PayableLocally: true,
		Basis: PerPersonPerNight,
		Fixed: &Amount{Amount: 1.33, Currency: "EUR"},
		Notes: "€1.33 per person/night.",
	},

	// Greece
	"GR_ATHENS": {
		City: "Athens", CountryCode: "GR", PayableLocally: true,
		Basis: PerRoomPerNight,
		Range: &Range{Min: 1.5, Max: 4, Currency: "EUR"},
		Notes: "€1.50-€4 per room/night depending on hotel category.",
	},
	"GR_SANTORINI": {
		City: "Santorini", CountryCode: "GR", PayableLocally: true,
		Basis: PerRoomPerNight,
		Range: &Range{Min: 1.5, Max: 4, Currency: "EUR"},
		Notes: "€1.50-€4 per room/night depending on hotel category.",
	},

	// Hungary
	"HU_BUDAPEST": {
		City: "Budapest", CountryCode: "HU", PayableLocally: true,
		Basis:   PercentOfRoomRate,
		Percent: &Percent{Rate: 4, AppliesTo: "net_room_rate"},
		Notes:   "4% of room rate collected locally.",
	},

	// Belgium
	"BE_BRUSSELS": {
		City: "Brussels", CountryCode: "BE", PayableLocally: true,
		Basis: PerPersonPerNight,
		Range: &Range{Min: 4.24, Max: 7.5, Currency: "EUR"},
		Notes: "€4.24-€7.50 per person/night depending on hotel category.",
	},
	"BE_BRUGES": {
		City: "Bruges", CountryCode: "BE", PayableLocally: true,
		Basis: PerPersonPerNight,
		Fixed: &Amount{Amount: 3.68, Currency: "EUR"},
		Notes: "€3.68 per person/night.",
	},
}

// cityAlias maps one lowercase name variant to a rule key. Ordered slice so
// the substring fallback scans deterministically, same as the airport
// aliases.
type cityAlias struct {
	name string
	key  string
}

var cityAliases = []cityAlias{
	// Italian variations
	{"venezia", "IT_VENICE"}, {"venice", "IT_VENICE"},
	{"firenze", "IT_FLORENCE"}, {"florence", "IT_FLORENCE"},
	{"roma", "IT_ROME"}, {"rome", "IT_ROME"},
	{"napoli", "IT_NAPLES"}, {"naples", "IT_NAPLES"},
	{"milano", "IT_MILAN"}, {"milan", "IT_MILAN"},
	{"siracusa", "IT_SYRACUSE"}, {"syracuse", "IT_SYRACUSE"},
	{"lake garda", "IT_LAKE_GARDA"}, {"garda", "IT_LAKE_GARDA"},
	{"sirmione", "IT_LAKE_GARDA"}, {"riva del garda", "IT_LAKE_GARDA"},
	{"amalfi coast", "IT_AMALFI"}, {"amalfi", "IT_AMALFI"},
	{"positano", "IT_POSITANO"}, {"sorrento", "IT_SORRENTO"},
	{"palermo", "IT_PALERMO"}, {"catania", "IT_CATANIA"},
	{"verona", "IT_VERONA"},

	// Portuguese variations
	{"lisbon", "PT_LISBON"}, {"lisboa", "PT_LISBON"},
	{"porto", "PT_PORTO"}, {"oporto", "PT_PORTO"},

	// Dutch variations
	{"amsterdam", "NL_AMSTERDAM"},

	// Austrian variations
	{"vienna", "AT_VIENNA"}, {"wien", "AT_VIENNA"},

	// Spanish variations
	{"barcelona", "ES_BARCELONA"}, {"madrid", "ES_MADRID"},

	// French variations
	{"paris", "FR_PARIS"}, {"nice", "FR_NICE"},

	// German variations
	{"berlin", "DE_BERLIN"}, {"munich", "DE_MUNICH"},
	{"münchen", "DE_MUNICH"}, {"munchen", "DE_MUNICH"},

	// Czech variations
	{"prague", "CZ_PRAGUE"}, {"praha", "CZ_PRAGUE"},

	// Swiss variations
	{"zurich", "CH_ZURICH"}, {"zürich", "CH_ZURICH"},
	{"geneva", "CH_GENEVA"}, {"genève", "CH_GENEVA"}, {"geneve", "CH_GENEVA"},

	// UAE variations
	{"dubai", "AE_DUBAI"}, {"abu dhabi", "AE_ABU_DHABI"},

	// USA variations
	{"new york", "US_NEW_YORK"}, {"new york city", "US_NEW_YORK"}, {"nyc", "US_NEW_YORK"},

	// Japan variations
	{"tokyo", "JP_TOKYO"}, {"osaka", "JP_OSAKA"}, {"kyoto", "JP_KYOTO"},

	// Croatian variations
	{"dubrovnik", "HR_DUBROVNIK"}, {"split", "HR_SPLIT"},

	// Greek variations
	{"athens", "GR_ATHENS"}, {"athina", "GR_ATHENS"},
	{"santorini", "GR_SANTORINI"}, {"thira", "GR_SANTORINI"},

	// Hungarian variations
	{"budapest", "HU_BUDAPEST"},

	// Belgian variations
	{"brussels", "BE_BRUSSELS"}, {"bruxelles", "BE_BRUSSELS"},
	{"bruges", "BE_BRUGES"}, {"brugge", "BE_BRUGES"},
}
