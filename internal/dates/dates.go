// Package dates normalizes the date shapes found in pasted itineraries to
// ISO calendar strings.
package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"quotemaster/internal/refdata"
)

const monthNames = `Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|Aug(?:ust)?|Sep(?:tember)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?`

var (
	// 2026-03-15
	isoRe = regexp.MustCompile(`(\d{4})-(\d{2})-(\d{2})`)

	// 15 March 2026, 15th March 2026
	dayMonthYearRe = regexp.MustCompile(`(?i)(\d{1,2})(?:st|nd|rd|th)?\s+(` + monthNames + `)\s+(\d{4})`)

	// March 15, 2026 or Mar 15 (year optional)
	monthDayRe = regexp.MustCompile(`(?i)(` + monthNames + `)\s+(\d{1,2})(?:st|nd|rd|th)?(?:,?\s+(\d{4}))?`)

	// 15/03/2026 or 15-03-2026 (day first)
	numericRe = regexp.MustCompile(`(\d{1,2})[/\-](\d{1,2})[/\-](\d{4})`)
)

// FormatISO renders a calendar date as YYYY-MM-DD. The month is zero-based,
// matching the refdata month table.
func FormatISO(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month+1, day)
}

// Normalize converts any recognized date shape inside text to YYYY-MM-DD.
// The first matching pattern wins. Returns "" when nothing matches; never
// fails.
func Normalize(text string) string {
	return NormalizeAt(text, time.Now())
}

// NormalizeAt is Normalize with an explicit reference time for the
// year-omitted month-day form.
func NormalizeAt(text string, now time.Time) string {
	if m := isoRe.FindStringSubmatch(text); m != nil {
		return m[1] + "-" + m[2] + "-" + m[3]
	}

	if m := dayMonthYearRe.FindStringSubmatch(text); m != nil {
		month, _ := refdata.MonthIndex(m[2])
		year, _ := strconv.Atoi(m[3])
		day, _ := strconv.Atoi(m[1])
		return FormatISO(year, month, day)
	}

	if m := monthDayRe.FindStringSubmatch(text); m != nil {
		month, _ := refdata.MonthIndex(m[1])
		day, _ := strconv.Atoi(m[2])
		year := now.Year()
		if m[3] != "" {
			year, _ = strconv.Atoi(m[3])
		}
		return FormatISO(year, month, day)
	}

	if m := numericRe.FindStringSubmatch(text); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		return FormatISO(year, month-1, day)
	}

	return ""
}

// RollForwardYear picks the year for a day+month with no year in the
// source. Itinerary dates are assumed upcoming, never past: a month earlier
// than the current one rolls to next year.
func RollForwardYear(month int, now time.Time) int {
	if month < int(now.Month())-1 {
		return now.Year() + 1
	}
	return now.Year()
}
