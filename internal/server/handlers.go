package server

import (
	"encoding/json"
	"log"
	"math"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"quotemaster/internal/citytax"
	"quotemaster/internal/flight"
	"quotemaster/internal/itinerary"
	"quotemaster/internal/refdata"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// ParseRequest is the body of POST /api/parse.
type ParseRequest struct {
	Text string `json:"text"`
}

// ParseResponse carries the extracted legs and the format that matched.
type ParseResponse struct {
	Format string       `json:"format"`
	Legs   []flight.Leg `json:"legs"`
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}

	legs, format := itinerary.Detect(req.Text)

	// Archival and events are best effort; a parse never fails because a
	// backend is down.
	if s.archive != nil {
		if err := s.archive.Record(r.Context(), format, req.Text, legs); err != nil {
			log.Printf("archive parse request: %v", err)
		}
	}
	if s.publisher != nil {
		if err := s.publisher.PublishParsed(format, legs); err != nil {
			log.Printf("publish parse event: %v", err)
		}
	}

	writeJSON(w, http.StatusOK, ParseResponse{Format: format, Legs: legs})
}

func (s *Server) handleAirports(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]map[string]string{
		"airports": refdata.AirportCodes,
		"airlines": refdata.AirlineCodes,
	})
}

// CityTaxRequest is the body of POST /api/city-tax.
type CityTaxRequest struct {
	Cities  []string `json:"cities"`
	Nights  int      `json:"nights"`
	Persons int      `json:"persons"`
	Rooms   int      `json:"rooms"`
}

// CityTaxResult is one city's entry in the response: either an estimate
// or a not-found marker.
type CityTaxResult struct {
	citytax.Estimate
	NotFound bool `json:"notFound,omitempty"`
}

// CityTaxTotals sums the fixed-amount estimates. Percentage-based cities
// cannot be totalled without room rates and are flagged instead.
type CityTaxTotals struct {
	Min           float64  `json:"min"`
	Max           float64  `json:"max"`
	Currencies    []string `json:"currencies"`
	HasPercentage bool     `json:"hasPercentage"`
	Note          string   `json:"note,omitempty"`
}

// CityTaxResponse is the body of the city tax reply.
type CityTaxResponse struct {
	Cities []CityTaxResult `json:"cities"`
	Totals CityTaxTotals   `json:"totals"`
}

func (s *Server) handleCityTax(w http.ResponseWriter, r *http.Request) {
	var req CityTaxRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}
	if len(req.Cities) == 0 {
		writeError(w, http.StatusBadRequest, "Cities array is required")
		return
	}

	resp := CityTaxResponse{Cities: []CityTaxResult{}}
	seenCurrency := make(map[string]bool)

	for _, city := range req.Cities {
		_, rule, ok := s.taxes.Find(city)
		if !ok {
			resp.Cities = append(resp.Cities, CityTaxResult{
				Estimate: citytax.Estimate{
					City:  city,
					Notes: "City tax information not available - please check locally.",
				},
				NotFound: true,
			})
			continue
		}

		est := rule.Calculate(req.Nights, req.Persons, req.Rooms)
		resp.Cities = append(resp.Cities, CityTaxResult{Estimate: est})

		if est.IsPercentage {
			resp.Totals.HasPercentage = true
			continue
		}
		resp.Totals.Min += est.Min
		resp.Totals.Max += est.Max
		if est.Currency != "" && !seenCurrency[est.Currency] {
			seenCurrency[est.Currency] = true
			resp.Totals.Currencies = append(resp.Totals.Currencies, est.Currency)
		}
	}

	resp.Totals.Min = math.Round(resp.Totals.Min*100) / 100
	resp.Totals.Max = math.Round(resp.Totals.Max*100) / 100
	if resp.Totals.Currencies == nil {
		resp.Totals.Currencies = []string{}
	}
	if resp.Totals.HasPercentage {
		resp.Totals.Note = "Some cities charge a percentage of room rate - exact amount depends on accommodation cost."
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.taxes.Cities())
}

// ScrapeRequest is the body of POST /api/scrape.
type ScrapeRequest struct {
	URL string `json:"url"`
}

func (s *Server) handleScrape(w http.ResponseWriter, r *http.Request) {
	var req ScrapeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	pkg, err := s.scraper.Fetch(r.Context(), req.URL)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, pkg)
}

// LoginRequest is the body of POST /api/admin/login.
type LoginRequest struct {
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	if req.Password != s.adminPassword {
		writeError(w, http.StatusUnauthorized, "Invalid password")
		return
	}

	token, err := s.sessions.Create()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create session")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "token": token})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if token := r.Header.Get("X-Admin-Token"); token != "" {
		s.sessions.Delete(token)
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (s *Server) handleListTaxes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.taxes.All())
}

// TaxEntryRequest is the body for creating a tax rule.
type TaxEntryRequest struct {
	ID    string        `json:"id"`
	Entry *citytax.Rule `json:"entry"`
}

func validEntry(e *citytax.Rule) bool {
	return e != nil && e.City != "" && e.CountryCode != "" && e.Basis != ""
}

func (s *Server) handleCreateTax(w http.ResponseWriter, r *http.Request) {
	var req TaxEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}
	if req.ID == "" || !validEntry(req.Entry) {
		writeError(w, http.StatusBadRequest, "Missing required fields: id, entry.city, entry.countryCode, entry.basis")
		return
	}

	s.saveTax(w, r, req.ID, *req.Entry)
}

func (s *Server) handleUpdateTax(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req TaxEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}
	if !validEntry(req.Entry) {
		writeError(w, http.StatusBadRequest, "Missing required fields: entry.city, entry.countryCode, entry.basis")
		return
	}

	s.saveTax(w, r, id, *req.Entry)
}

// saveTax writes a rule to the live table and through to the store.
func (s *Server) saveTax(w http.ResponseWriter, r *http.Request, id string, entry citytax.Rule) {
	s.taxes.Set(id, entry)

	if s.store != nil {
		if err := s.store.Put(r.Context(), id, entry); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to save tax entry")
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "id": id, "entry": entry})
}

func (s *Server) handleDeleteTax(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if !s.taxes.Delete(id) {
		writeError(w, http.StatusNotFound, "Tax entry not found")
		return
	}
	if s.store != nil {
		if err := s.store.Delete(r.Context(), id); err != nil {
			log.Printf("delete tax entry %s from store: %v", id, err)
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "id": id})
}

// Helper functions.

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
