// Package scrape pulls package details (title, price, what's included,
// day-by-day itinerary) from the holiday site's package pages, preferring
// JSON-LD structured data over raw HTML.
package scrape

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// ItineraryDay is one numbered day of a package itinerary.
type ItineraryDay struct {
	Day         int    `json:"day"`
	Description string `json:"description"`
}

// PackageData is everything extracted from one package page.
type PackageData struct {
	Title         string         `json:"title"`
	Price         string         `json:"price"`
	Duration      string         `json:"duration"`
	Included      []string       `json:"included"`
	Itinerary     []ItineraryDay `json:"itinerary"`
	Highlights    []string       `json:"highlights"`
	Accommodation []string       `json:"accommodation"`
}

// Scraper fetches and parses package pages from a single allowed host.
type Scraper struct {
	client      *http.Client
	allowedHost string
}

// New returns a Scraper restricted to URLs on allowedHost.
func New(allowedHost string) *Scraper {
	return &Scraper{
		client:      &http.Client{Timeout: 30 * time.Second},
		allowedHost: allowedHost,
	}
}

// Fetch downloads and parses one package page. The URL must be on the
// allowed host.
func (s *Scraper) Fetch(ctx context.Context, pageURL string) (*PackageData, error) {
	u, err := url.Parse(pageURL)
	if err != nil || !strings.Contains(u.Host, s.allowedHost) {
		return nil, fmt.Errorf("invalid URL, must be from %s", s.allowedHost)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch page: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch: %d", resp.StatusCode)
	}

	return ParseHTML(resp.Body)
}

var (
	includesRe = regexp.MustCompile(`(?i)includes?:?\s*(.+)`)
	priceRe    = regexp.MustCompile(`(?i)(?:from\s*)?£(\d{1,3},?\d*)`)
	durationRe = regexp.MustCompile(`(?i)(\d+)\s*(?:days?|nights?)`)
	dayRe      = regexp.MustCompile(`(?i)day\s*(\d+)[:\s-]*`)
	spaceRe    = regexp.MustCompile(`\s+`)
	nightsRe   = regexp.MustCompile(`(?i)(\d+)\s*nights?`)
	mealsRe    = regexp.MustCompile(`(?i)(\d+)\s*(Breakfasts?|Lunches?|Dinners?)`)
	headingTag = map[string]bool{"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true}
)

// junkRes filters navigation links, cross-sold packages and other noise
// out of the included list.
var junkRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^home$`),
	regexp.MustCompile(`(?i)^packages?$`),
	regexp.MustCompile(`(?i)^about(\s+us)?$`),
	regexp.MustCompile(`(?i)^contact(\s+us)?$`),
	regexp.MustCompile(`(?i)^faq$`),
	regexp.MustCompile(`(?i)holidays?$`),
	regexp.MustCompile(`(?i)^from\s*£`),
	regexp.MustCompile(`(?i)- from £`),
	regexp.MustCompile(`(?i)^\d+\s*nights?.*(?:from\s*£|holiday|package|trip)`),
	regexp.MustCompile(`(?i)^\d+\s*night\s+trip`),
	regexp.MustCompile(`(?i)solo\s+trip`),
	regexp.MustCompile(`(?i)^we strongly recommend`),
	regexp.MustCompile(`(?i)travel insurance`),
	regexp.MustCompile(`(?i)nature lovers?$`),
	regexp.MustCompile(`(?i)photography enthusiasts?$`),
	regexp.MustCompile(`(?i)beach lovers?$`),
	regexp.MustCompile(`(?i)relaxation seekers?$`),
	regexp.MustCompile(`(?i)^\.\.\.and \d+ more`),
}

// ParseHTML extracts package data from a page.
func ParseHTML(r io.Reader) (*PackageData, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	pkg := &PackageData{
		Included:      []string{},
		Itinerary:     []ItineraryDay{},
		Highlights:    []string{},
		Accommodation: []string{},
	}

	// Structured data first, it is the most complete.
	for _, raw := range findJSONLD(root) {
		applyJSONLD(pkg, raw)
	}

	if pkg.Title == "" {
		pkg.Title = fallbackTitle(root)
	}

	bodyText := collapse(nodeText(findElement(root, "body")))

	if m := priceRe.FindStringSubmatch(bodyText); m != nil {
		pkg.Price = "£" + m[1]
	}
	if m := durationRe.FindString(bodyText); m != "" && pkg.Duration == "" {
		pkg.Duration = m
	}

	if len(pkg.Included) == 0 {
		pkg.Included = includedFromHeadings(root)
	}

	pkg.Itinerary = extractItinerary(bodyText)
	pkg.Included = cleanIncluded(pkg.Included, pkg.Title)

	return pkg, nil
}

// faqPage and touristTrip mirror the schema.org shapes the site publishes.
type faqPage struct {
	Type       string `json:"@type"`
	MainEntity []struct {
		Name           string `json:"name"`
		AcceptedAnswer struct {
			Text string `json:"text"`
		} `json:"acceptedAnswer"`
	} `json:"mainEntity"`
}

type touristTrip struct {
	Type     string `json:"@type"`
	Name     string `json:"name"`
	Duration string `json:"duration"`
	Offers   struct {
		// Sites publish the price as either a JSON string or a number.
		Price any `json:"price"`
	} `json:"offers"`
}

func applyJSONLD(pkg *PackageData, raw string) {
	var probe struct {
		Type string `json:"@type"`
	}
	if json.Unmarshal([]byte(raw), &probe) != nil {
		return
	}

	switch probe.Type {
	case "FAQPage":
		var page faqPage
		if json.Unmarshal([]byte(raw), &page) != nil {
			return
		}
		for _, faq := range page.MainEntity {
			name := strings.ToLower(faq.Name)
			if !strings.Contains(name, "included") || strings.Contains(name, "not included") {
				continue
			}
			answer := decodeEntities(collapse(faq.AcceptedAnswer.Text))
			m := includesRe.FindStringSubmatch(answer)
			if m == nil {
				continue
			}
			for _, item := range parseIncludedText(m[1]) {
				appendUnique(&pkg.Included, item)
			}
		}
	case "TouristTrip":
		var trip touristTrip
		if json.Unmarshal([]byte(raw), &trip) != nil {
			return
		}
		if trip.Name != "" && pkg.Title == "" {
			pkg.Title = trip.Name
		}
		if trip.Duration != "" {
			// ISO 8601 "P10D" -> "10 Days"
			d := strings.TrimPrefix(trip.Duration, "P")
			pkg.Duration = strings.Replace(d, "D", " Days", 1)
		}
		switch v := trip.Offers.Price.(type) {
		case string:
			if v != "" {
				pkg.Price = "£" + v
			}
		case float64:
			pkg.Price = "£" + strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
}

// sectionHeaders are the labels the site's "what is included" answer uses
// in its structured variant.
var sectionHeaders = []string{"TOUR GUIDE:", "ACCOMMODATION:", "MEALS:", "TRANSPORT:", "ENTRANCE FEES", "TRANSFERS:"}

var sectionHeaderRe = regexp.MustCompile(`(?i)TOUR GUIDE:|ACCOMMODATION:|MEALS:|TRANSPORT:|ENTRANCE FEES|TRANSFERS:`)

// parseIncludedText splits an "includes" answer into display items. Two
// formats exist: uppercase section headers, or a plain comma list.
func parseIncludedText(content string) []string {
	hasHeaders := false
	for _, h := range sectionHeaders {
		if strings.Contains(content, h) {
			hasHeaders = true
			break
		}
	}

	if !hasHeaders {
		var items []string
		for _, part := range strings.Split(content, ",") {
			if cleaned := strings.TrimSuffix(strings.TrimSpace(part), "."); len(cleaned) > 2 {
				items = append(items, cleaned)
			}
		}
		return items
	}

	var items []string
	for _, section := range splitBefore(content, sectionHeaderRe) {
		section = strings.TrimSpace(section)
		if section == "" {
			continue
		}
		upper := strings.ToUpper(section)
		switch {
		case strings.HasPrefix(upper, "TOUR GUIDE:"):
			body := strings.TrimSpace(section[len("TOUR GUIDE:"):])
			if body != "" {
				items = append(items, "Tour Guide: "+body)
			}
		case strings.HasPrefix(upper, "ACCOMMODATION:"):
			if m := nightsRe.FindString(section); m != "" {
				items = append(items, m+" accommodation")
			}
		case strings.HasPrefix(upper, "MEALS:"):
			body := strings.TrimSpace(section[len("MEALS:"):])
			// "7 Breakfasts3 Dinners" -> "7 Breakfasts, 3 Dinners"
			meals := mealsRe.ReplaceAllString(body, "$1 $2,")
			meals = strings.TrimRight(strings.TrimSpace(meals), ",")
			meals = strings.ReplaceAll(meals, ",", ", ")
			meals = collapse(meals)
			if meals != "" {
				items = append(items, "Meals: "+meals)
			}
		case strings.HasPrefix(upper, "TRANSPORT:"):
			items = append(items, "Airport transfers and transportation throughout")
		case strings.HasPrefix(upper, "ENTRANCE FEES"):
			items = append(items, "All entrance fees and activities as per itinerary")
		default:
			// Plain items before the first header, e.g. "Flights Included".
			for _, part := range strings.Split(section, ",") {
				cleaned := strings.TrimSpace(part)
				if len(cleaned) > 2 && strings.ToUpper(cleaned) != cleaned {
					items = append(items, cleaned)
				}
			}
		}
	}
	return items
}

// splitBefore splits s at the start of each match, keeping the match with
// the following section.
func splitBefore(s string, re *regexp.Regexp) []string {
	locs := re.FindAllStringIndex(s, -1)
	if len(locs) == 0 {
		return []string{s}
	}
	var parts []string
	prev := 0
	for _, loc := range locs {
		if loc[0] > prev {
			parts = append(parts, s[prev:loc[0]])
		}
		prev = loc[0]
	}
	parts = append(parts, s[prev:])
	return parts
}

// extractItinerary scans body text for "Day N ..." runs, each day's text
// ending where the next begins.
func extractItinerary(bodyText string) []ItineraryDay {
	locs := dayRe.FindAllStringSubmatchIndex(bodyText, -1)
	byDay := make(map[int]string)
	for i, loc := range locs {
		day, err := strconv.Atoi(bodyText[loc[2]:loc[3]])
		if err != nil {
			continue
		}
		end := len(bodyText)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		desc := strings.TrimSpace(bodyText[loc[1]:end])
		if len(desc) > 300 {
			desc = desc[:300]
		}
		desc = collapse(desc)
		if len(desc) > 10 {
			if _, seen := byDay[day]; !seen {
				byDay[day] = desc
			}
		}
	}

	days := make([]ItineraryDay, 0, len(byDay))
	for day, desc := range byDay {
		days = append(days, ItineraryDay{Day: day, Description: desc})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Day < days[j].Day })
	return days
}

// cleanIncluded drops junk and duplicates from the included list.
func cleanIncluded(items []string, title string) []string {
	out := []string{}
	seen := make(map[string]bool)
	for _, item := range items {
		if isJunk(item, title) {
			continue
		}
		lower := strings.ToLower(item)
		if seen[lower] {
			continue
		}
		seen[lower] = true
		out = append(out, item)
	}
	return out
}

func isJunk(item, title string) bool {
	for _, re := range junkRes {
		if re.MatchString(item) {
			return true
		}
	}
	if strings.EqualFold(item, title) {
		return true
	}
	if len(item) < 10 {
		return true
	}
	// Cross-sold package cards: "7 Nights Bali from £899".
	if strings.Contains(item, "£") && strings.Contains(item, "Night") {
		return true
	}
	return false
}

// --- HTML traversal helpers ---

// findJSONLD collects the text of every <script type="application/ld+json">.
func findJSONLD(root *html.Node) []string {
	var scripts []string
	walk(root, func(n *html.Node) {
		if n.Type != html.ElementNode || n.Data != "script" {
			return
		}
		for _, attr := range n.Attr {
			if attr.Key == "type" && attr.Val == "application/ld+json" {
				scripts = append(scripts, nodeText(n))
				return
			}
		}
	})
	return scripts
}

// fallbackTitle tries the first h1, then any class*="title" element, then
// the <title> tag split on "|".
func fallbackTitle(root *html.Node) string {
	if h1 := findElement(root, "h1"); h1 != nil {
		if t := collapse(nodeText(h1)); t != "" {
			return t
		}
	}

	var byClass string
	walk(root, func(n *html.Node) {
		if byClass != "" || n.Type != html.ElementNode {
			return
		}
		for _, attr := range n.Attr {
			if attr.Key == "class" && strings.Contains(strings.ToLower(attr.Val), "title") {
				byClass = collapse(nodeText(n))
				return
			}
		}
	})
	if byClass != "" {
		return byClass
	}

	if titleEl := findElement(root, "title"); titleEl != nil {
		parts := strings.Split(nodeText(titleEl), "|")
		return strings.TrimSpace(parts[0])
	}
	return ""
}

// includedFromHeadings is the HTML fallback: list items following a
// "What's Included" heading, up to the next heading.
func includedFromHeadings(root *html.Node) []string {
	var items []string
	walk(root, func(n *html.Node) {
		if n.Type != html.ElementNode || !headingTag[n.Data] {
			return
		}
		text := strings.ToLower(collapse(nodeText(n)))
		if !strings.Contains(text, "what's included") && !strings.Contains(text, "whats included") {
			return
		}

		remaining := 5
		for next := n.NextSibling; next != nil && remaining > 0; next = next.NextSibling {
			if next.Type != html.ElementNode {
				continue
			}
			if headingTag[next.Data] {
				break
			}
			for _, li := range findAllElements(next, "li") {
				item := collapse(nodeText(li))
				if len(item) > 3 {
					appendUnique(&items, item)
				}
			}
			remaining--
		}
	})
	return items
}

func walk(n *html.Node, fn func(*html.Node)) {
	fn(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func findElement(root *html.Node, tag string) *html.Node {
	var found *html.Node
	walk(root, func(n *html.Node) {
		if found == nil && n.Type == html.ElementNode && n.Data == tag {
			found = n
		}
	})
	return found
}

func findAllElements(root *html.Node, tag string) []*html.Node {
	var found []*html.Node
	walk(root, func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			found = append(found, n)
		}
	})
	return found
}

// nodeText concatenates all text under a node, skipping script and style
// bodies (except when the node itself is the script).
func nodeText(n *html.Node) string {
	if n == nil {
		return ""
	}
	var sb strings.Builder
	var collect func(*html.Node, bool)
	collect = func(node *html.Node, top bool) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
			sb.WriteString(" ")
			return
		}
		if !top && node.Type == html.ElementNode && (node.Data == "script" || node.Data == "style") {
			return
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			collect(c, false)
		}
	}
	collect(n, true)
	return sb.String()
}

func collapse(s string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}

func decodeEntities(s string) string {
	s = strings.ReplaceAll(s, "&#61;", "=")
	s = strings.ReplaceAll(s, "&#39;", "'")
	return s
}

func appendUnique(items *[]string, item string) {
	for _, existing := range *items {
		if strings.EqualFold(existing, item) {
			return
		}
	}
	*items = append(*items, item)
}
