package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"quotemaster/internal/citytax"
)

func newTestServer() *Server {
	return New(citytax.NewTable(), Config{
		Port:          0,
		AdminPassword: "test-password",
		ScrapeHost:    "holidays.example.com",
	})
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleParse(t *testing.T) {
	router := newTestServer().Router()

	rec := doJSON(t, router, http.MethodPost, "/api/parse", map[string]string{
		"text": "BA123 LHR-JFK 14:30 16:20",
	}, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var resp ParseResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Format != "generic" {
		t.Errorf("Format = %q, want %q", resp.Format, "generic")
	}
	if len(resp.Legs) != 1 {
		t.Fatalf("len(Legs) = %d, want 1", len(resp.Legs))
	}
	if resp.Legs[0].Flight != "BA123" || resp.Legs[0].From != "LHR" || resp.Legs[0].To != "JFK" {
		t.Errorf("leg = %+v", resp.Legs[0])
	}
}

func TestHandleParseEmptyText(t *testing.T) {
	router := newTestServer().Router()

	rec := doJSON(t, router, http.MethodPost, "/api/parse", map[string]string{"text": ""}, nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleCityTax(t *testing.T) {
	router := newTestServer().Router()

	rec := doJSON(t, router, http.MethodPost, "/api/city-tax", map[string]any{
		"cities":  []string{"Lisbon", "Atlantis"},
		"nights":  3,
		"persons": 2,
	}, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var resp CityTaxResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Cities) != 2 {
		t.Fatalf("len(Cities) = %d, want 2", len(resp.Cities))
	}

	// Lisbon: €4 x 2 people x 3 nights = 24.
	if resp.Cities[0].Min != 24 || resp.Cities[0].NotFound {
		t.Errorf("Lisbon = %+v, want Min 24", resp.Cities[0])
	}
	if !resp.Cities[1].NotFound {
		t.Errorf("Atlantis = %+v, want notFound", resp.Cities[1])
	}
	if resp.Totals.Min != 24 || resp.Totals.Max != 24 {
		t.Errorf("Totals = %+v, want 24-24", resp.Totals)
	}
	if len(resp.Totals.Currencies) != 1 || resp.Totals.Currencies[0] != "EUR" {
		t.Errorf("Currencies = %v, want [EUR]", resp.Totals.Currencies)
	}
}

func TestHandleCityTaxNoCities(t *testing.T) {
	router := newTestServer().Router()

	rec := doJSON(t, router, http.MethodPost, "/api/city-tax", map[string]any{
		"cities": []string{},
	}, nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestAdminLoginFlow(t *testing.T) {
	router := newTestServer().Router()

	// Wrong password.
	rec := doJSON(t, router, http.MethodPost, "/api/admin/login", map[string]string{"password": "nope"}, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad login status = %d, want 401", rec.Code)
	}

	// Correct password mints a token.
	rec = doJSON(t, router, http.MethodPost, "/api/admin/login", map[string]string{"password": "test-password"}, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var login struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &login); err != nil {
		t.Fatalf("decode login: %v", err)
	}
	if !login.Success || login.Token == "" {
		t.Fatalf("login = %+v", login)
	}

	// Protected route rejects a missing token.
	rec = doJSON(t, router, http.MethodGet, "/api/admin/taxes", nil, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("unauthenticated status = %d, want 401", rec.Code)
	}

	auth := map[string]string{"X-Admin-Token": login.Token}

	// And accepts the minted one.
	rec = doJSON(t, router, http.MethodGet, "/api/admin/taxes", nil, auth)
	if rec.Code != http.StatusOK {
		t.Errorf("authenticated status = %d, want 200", rec.Code)
	}

	// Logout revokes the token.
	rec = doJSON(t, router, http.MethodPost, "/api/admin/logout", nil, auth)
	if rec.Code != http.StatusOK {
		t.Fatalf("logout status = %d, want 200", rec.Code)
	}
	rec = doJSON(t, router, http.MethodGet, "/api/admin/taxes", nil, auth)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("post-logout status = %d, want 401", rec.Code)
	}
}

func TestAdminTaxCRUD(t *testing.T) {
	srv := newTestServer()
	router := srv.Router()

	rec := doJSON(t, router, http.MethodPost, "/api/admin/login", map[string]string{"password": "test-password"}, nil)
	var login struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &login); err != nil {
		t.Fatalf("decode login: %v", err)
	}
	auth := map[string]string{"X-Admin-Token": login.Token}

	// Missing fields rejected.
	rec = doJSON(t, router, http.MethodPost, "/api/admin/taxes", map[string]any{
		"id":    "GB_EDINBURGH",
		"entry": map[string]any{"city": "Edinburgh"},
	}, auth)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("incomplete entry status = %d, want 400", rec.Code)
	}

	// Create.
	entry := map[string]any{
		"city": "Edinburgh", "countryCode": "GB", "payableLocally": true,
		"basis": "per_person_per_night",
		"fixed": map[string]any{"amount": 2, "currency": "GBP"},
	}
	rec = doJSON(t, router, http.MethodPost, "/api/admin/taxes", map[string]any{
		"id": "GB_EDINBURGH", "entry": entry,
	}, auth)
	if rec.Code != http.StatusOK {
		t.Fatalf("create status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	// The rule is live immediately.
	if _, rule, ok := srv.taxes.Find("edinburgh"); !ok || rule.CountryCode != "GB" {
		t.Errorf("Find(edinburgh) after create = %+v, %v", rule, ok)
	}

	// Update.
	entry["fixed"] = map[string]any{"amount": 2.5, "currency": "GBP"}
	rec = doJSON(t, router, http.MethodPut, "/api/admin/taxes/GB_EDINBURGH", map[string]any{"entry": entry}, auth)
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if rule, _ := srv.taxes.Get("GB_EDINBURGH"); rule.Fixed == nil || rule.Fixed.Amount != 2.5 {
		t.Errorf("rule after update = %+v", rule)
	}

	// Delete.
	rec = doJSON(t, router, http.MethodDelete, "/api/admin/taxes/GB_EDINBURGH", nil, auth)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d, want 200", rec.Code)
	}
	rec = doJSON(t, router, http.MethodDelete, "/api/admin/taxes/GB_EDINBURGH", nil, auth)
	if rec.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", rec.Code)
	}
}

func TestHandleCities(t *testing.T) {
	router := newTestServer().Router()

	rec := doJSON(t, router, http.MethodGet, "/api/cities", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var cities []string
	if err := json.Unmarshal(rec.Body.Bytes(), &cities); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	have := make(map[string]bool, len(cities))
	for _, c := range cities {
		have[c] = true
	}
	// Autocomplete serves alias spellings too.
	if !have["Rome"] || !have["Roma"] {
		t.Errorf("cities = %v, want Rome and Roma present", cities)
	}
}

func TestHandleScrapeRejectsForeignHost(t *testing.T) {
	router := newTestServer().Router()

	rec := doJSON(t, router, http.MethodPost, "/api/scrape", map[string]string{
		"url": "https://evil.example.net/page",
	}, nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
