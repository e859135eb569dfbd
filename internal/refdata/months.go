package refdata

import "strings"

// months maps lowercase month tokens (full and 3-letter) to zero-based
// month indices. Date extraction goes through this table instead of
// locale-dependent time parsing.
var months = map[string]int{
	"jan": 0, "january": 0, "feb": 1, "february": 1, "mar": 2, "march": 2,
	"apr": 3, "april": 3, "may": 4, "jun": 5, "june": 5, "jul": 6, "july": 6,
	"aug": 7, "august": 7, "sep": 8, "september": 8, "oct": 9, "october": 9,
	"nov": 10, "november": 10, "dec": 11, "december": 11,
}

// MonthIndex resolves a month name token ("MAR", "March", "march") to its
// zero-based index. Unknown tokens report ok=false.
func MonthIndex(token string) (int, bool) {
	t := strings.ToLower(strings.TrimSpace(token))
	if i, ok := months[t]; ok {
		return i, true
	}
	if len(t) > 3 {
		if i, ok := months[t[:3]]; ok {
			return i, true
		}
	}
	return 0, false
}
