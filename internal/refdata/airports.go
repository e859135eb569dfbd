// Package refdata holds the static airport, airline, alias and month tables
// used by every extraction strategy, plus the code resolver built on them.
// All tables are read-only after process start.
package refdata

// AirportCodes maps IATA airport codes to display names. Exposed read-only
// for UI autocomplete.
var AirportCodes = map[string]string{
	// UK
	"LHR": "London Heathrow", "LGW": "London Gatwick", "STN": "London Stansted",
	"LTN": "London Luton", "MAN": "Manchester", "BHX": "Birmingham",
	"EDI": "Edinburgh", "GLA": "Glasgow", "BRS": "Bristol", "NCL": "Newcastle",
	"LBA": "Leeds Bradford", "EMA": "East Midlands", "LPL": "Liverpool",
	// Europe
	"CDG": "Paris CDG", "ORY": "Paris Orly", "AMS": "Amsterdam", "FRA": "Frankfurt",
	"MUC": "Munich", "BCN": "Barcelona", "MAD": "Madrid", "FCO": "Rome",
	"ATH": "Athens", "IST": "Istanbul", "SAW": "Istanbul Sabiha",
	"VIE": "Vienna", "ZRH": "Zurich", "BRU": "Brussels", "CPH": "Copenhagen",
	"OSL": "Oslo", "ARN": "Stockholm", "HEL": "Helsinki", "LIS": "Lisbon",
	"DUB": "Dublin", "PRG": "Prague", "BUD": "Budapest", "WAW": "Warsaw",
	// Asia
	"DEL": "Delhi", "BOM": "Mumbai", "DXB": "Dubai", "DOH": "Doha",
	"SIN": "Singapore", "BKK": "Bangkok", "HKG": "Hong Kong",
	"NRT": "Tokyo Narita", "HND": "Tokyo Haneda", "KIX": "Osaka Kansai",
	"ICN": "Seoul Incheon", "PEK": "Beijing", "PVG": "Shanghai Pudong",
	"TPE": "Taipei", "MNL": "Manila", "KUL": "Kuala Lumpur",
	"CGK": "Jakarta", "BLR": "Bangalore", "MAA": "Chennai", "HYD": "Hyderabad",
	"CCU": "Kolkata", "COK": "Kochi", "GOI": "Goa", "AMD": "Ahmedabad",
	"TRV": "Thiruvananthapuram", "IXE": "Mangalore", "VTZ": "Visakhapatnam",
	"JAI": "Jaipur", "LKO": "Lucknow", "PAT": "Patna", "SXR": "Srinagar",
	"IXC": "Chandigarh", "PNQ": "Pune", "NAG": "Nagpur", "IDR": "Indore",
	"BBI": "Bhubaneswar", "GAU": "Guwahati", "IXB": "Bagdogra",
	"HAN": "Hanoi", "SGN": "Ho Chi Minh City", "DAD": "Da Nang",
	"REP": "Siem Reap", "SAI": "Siem Reap", "PNH": "Phnom Penh",
	// Middle East
	"AUH": "Abu Dhabi", "BAH": "Bahrain", "KWI": "Kuwait", "MCT": "Muscat",
	"RUH": "Riyadh", "JED": "Jeddah", "AMM": "Amman", "CAI": "Cairo",
	// Americas
	"JFK": "New York JFK", "EWR": "Newark", "LAX": "Los Angeles", "MIA": "Miami",
	"ORD": "Chicago", "SFO": "San Francisco", "BOS": "Boston", "DFW": "Dallas",
	"ATL": "Atlanta", "SEA": "Seattle", "DEN": "Denver", "LAS": "Las Vegas",
	"YYZ": "Toronto", "YVR": "Vancouver", "MEX": "Mexico City",
	"GRU": "Sao Paulo", "EZE": "Buenos Aires", "SCL": "Santiago", "BOG": "Bogota",
	// Africa
	"JNB": "Johannesburg", "CPT": "Cape Town", "NBO": "Nairobi", "ADD": "Addis Ababa",
	"CMN": "Casablanca", "LOS": "Lagos", "ACC": "Accra",
	// Oceania
	"SYD": "Sydney", "MEL": "Melbourne", "BNE": "Brisbane", "PER": "Perth",
	"AKL": "Auckland", "CHC": "Christchurch",
}

// airportAlias is one free-text name mapped to its airport code.
type airportAlias struct {
	name string // lowercase
	code string
}

// airportAliases maps common free-text airport and city names to codes.
// Stored as an ordered slice, not a map: the substring fallback in
// AirportCode scans these in order and the first hit wins, so iteration
// order must be deterministic.
var airportAliases = []airportAlias{
	{"london heathrow", "LHR"}, {"heathrow", "LHR"}, {"london heathrow arpt", "LHR"},
	{"london gatwick", "LGW"}, {"gatwick", "LGW"}, {"london gatwick arpt", "LGW"},
	{"narita", "NRT"}, {"tokyo narita", "NRT"}, {"tokyo", "NRT"},
	{"kansai", "KIX"}, {"osaka kansai", "KIX"}, {"kansai international arpt", "KIX"}, {"osaka", "KIX"},
	{"mumbai", "BOM"}, {"bombay", "BOM"},
	{"delhi", "DEL"}, {"new delhi", "DEL"},
	{"thiruvananthapuram", "TRV"}, {"trivandrum", "TRV"},
	{"bangalore", "BLR"}, {"bengaluru", "BLR"},
	{"chennai", "MAA"}, {"madras", "MAA"},
	{"kolkata", "CCU"}, {"calcutta", "CCU"},
	{"goa", "GOI"}, {"hyderabad", "HYD"}, {"kochi", "COK"}, {"cochin", "COK"},
}
