package refdata

// AirlineCodes maps IATA carrier prefixes to airline names. Exposed
// read-only for UI autocomplete.
var AirlineCodes = map[string]string{
	"BA": "British Airways", "EZY": "easyJet", "U2": "easyJet",
	"FR": "Ryanair", "VS": "Virgin Atlantic", "AA": "American Airlines",
	"UA": "United", "DL": "Delta", "LH": "Lufthansa", "AF": "Air France",
	"KL": "KLM", "EK": "Emirates", "QR": "Qatar Airways", "TK": "Turkish Airlines",
	"W9": "Wizz Air", "W6": "Wizz Air", "LS": "Jet2", "TOM": "TUI",
	"AI": "Air India", "6E": "IndiGo", "SQ": "Singapore Airlines",
	"CA": "Air China", "CX": "Cathay Pacific", "MU": "China Eastern",
	"CZ": "China Southern", "NH": "ANA", "JL": "Japan Airlines",
	"KE": "Korean Air", "OZ": "Asiana", "TG": "Thai Airways",
	"MH": "Malaysia Airlines", "GA": "Garuda Indonesia", "PR": "Philippine Airlines",
	"VN": "Vietnam Airlines",
	"ET": "Ethiopian", "SA": "South African", "MS": "EgyptAir",
	"QF": "Qantas", "NZ": "Air New Zealand", "AC": "Air Canada",
	"AV": "Avianca", "LA": "LATAM", "AM": "Aeromexico",
	"IB": "Iberia", "AZ": "ITA Airways", "TP": "TAP Portugal",
	"SK": "SAS", "AY": "Finnair", "LX": "Swiss",
	"OS": "Austrian", "SN": "Brussels Airlines", "LO": "LOT Polish",
}
