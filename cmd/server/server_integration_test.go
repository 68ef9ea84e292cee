package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jakovjj/tycooner/internal/config"
	"github.com/jakovjj/tycooner/internal/serverapp"
)

func TestServer_StateAndSummary(t *testing.T) {
	app := newTestApp(t)

	res := app.request(http.MethodGet, "/api/state", nil, "")
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200 for /api/state, got %d", res.Code)
	}
	st := decodeBodyMap(t, res)
	if st["money"].(float64) != 50000 {
		t.Fatalf("expected starting money 50000, got %v", st["money"])
	}

	sumRes := app.request(http.MethodGet, "/api/state/summary", nil, "")
	if sumRes.Code != http.StatusOK {
		t.Fatalf("expected 200 for summary, got %d", sumRes.Code)
	}
	sum := decodeBodyMap(t, sumRes)
	if sum["day"].(float64) != 0 {
		t.Fatalf("expected day 0, got %v", sum["day"])
	}
}

func TestServer_UnlockBuildTickSellFlow(t *testing.T) {
	app := newTestApp(t)

	res := app.json(http.MethodPost, "/api/unlock", map[string]any{"countryId": "DE"})
	if res.Code != http.StatusOK {
		t.Fatalf("unlock expected 200, got %d body=%s", res.Code, res.Body.String())
	}
	sum := decodeBodyMap(t, res)
	ch := sum["challenge"].(map[string]any)
	if ch["status"] != "active" {
		t.Fatalf("expected active challenge after first unlock, got %v", ch["status"])
	}

	res = app.json(http.MethodPost, "/api/warehouses", map[string]any{"countryId": "DE"})
	if res.Code != http.StatusOK {
		t.Fatalf("build warehouse expected 200, got %d body=%s", res.Code, res.Body.String())
	}
	wh := decodeBodyMap(t, res)
	if wh["capacity"].(float64) != 60 {
		t.Fatalf("expected capacity 60, got %v", wh["capacity"])
	}

	res = app.json(http.MethodPost, "/api/facilities", map[string]any{"countryId": "DE", "type": "farm"})
	if res.Code != http.StatusOK {
		t.Fatalf("build facility expected 200, got %d body=%s", res.Code, res.Body.String())
	}

	res = app.request(http.MethodPost, "/api/ops/tick", strings.NewReader("{}"), "application/json")
	if res.Code != http.StatusOK {
		t.Fatalf("tick expected 200, got %d body=%s", res.Code, res.Body.String())
	}
	tick := decodeBodyMap(t, res)
	report := tick["report"].(map[string]any)
	if report["units_produced"].(float64) != 1 {
		t.Fatalf("expected one unit produced, got %v", report["units_produced"])
	}

	res = app.json(http.MethodPost, "/api/sell", map[string]any{"countryId": "DE", "goodId": "grain"})
	if res.Code != http.StatusOK {
		t.Fatalf("sell expected 200, got %d body=%s", res.Code, res.Body.String())
	}
}

func TestServer_TransactionErrorStatuses(t *testing.T) {
	app := newTestApp(t)

	// Locked country: 422.
	res := app.json(http.MethodPost, "/api/warehouses", map[string]any{"countryId": "DE"})
	if res.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for locked country, got %d", res.Code)
	}

	app.json(http.MethodPost, "/api/unlock", map[string]any{"countryId": "DE"})

	// Facility warning: unlocking again without any facility.
	res = app.json(http.MethodPost, "/api/unlock", map[string]any{"countryId": "FR"})
	if res.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 facility warning, got %d", res.Code)
	}
	body := decodeBodyMap(t, res)
	if body["warning"] != "facility" {
		t.Fatalf("expected facility warning marker, got %v", body)
	}

	// Non-neighbor road: 422 and no state change.
	app.json(http.MethodPost, "/api/warehouses", map[string]any{"countryId": "DE"})
	app.json(http.MethodPost, "/api/facilities", map[string]any{"countryId": "DE", "type": "farm"})
	app.json(http.MethodPost, "/api/unlock", map[string]any{"countryId": "PT", "free": true})
	res = app.json(http.MethodPost, "/api/roads", map[string]any{"from": "DE", "to": "PT"})
	if res.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for non-neighbor road, got %d", res.Code)
	}

	// Nothing to sell: 422.
	res = app.json(http.MethodPost, "/api/sell", map[string]any{"countryId": "DE", "goodId": "meat"})
	if res.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for empty sell, got %d", res.Code)
	}

	// Drain the balance with facility builds until one fails with 402.
	for i := 0; i < 50; i++ {
		res = app.json(http.MethodPost, "/api/facilities", map[string]any{"countryId": "DE", "type": "ranch"})
		if res.Code == http.StatusPaymentRequired {
			return
		}
		if res.Code == http.StatusConflict {
			// Limit reached before money ran out; upgrade warehouses instead.
			break
		}
	}
	for i := 0; i < 50; i++ {
		res = app.json(http.MethodPost, "/api/warehouses/upgrade", map[string]any{"countryId": "DE"})
		if res.Code == http.StatusPaymentRequired {
			return
		}
	}
	t.Fatalf("never hit 402, last status %d body=%s", res.Code, res.Body.String())
}

func TestServer_RestartResets(t *testing.T) {
	app := newTestApp(t)

	app.json(http.MethodPost, "/api/unlock", map[string]any{"countryId": "DE"})
	res := app.request(http.MethodPost, "/api/restart", strings.NewReader("{}"), "application/json")
	if res.Code != http.StatusOK {
		t.Fatalf("restart expected 200, got %d", res.Code)
	}
	sum := decodeBodyMap(t, res)
	if sum["unlockedCount"].(float64) != 0 {
		t.Fatalf("expected empty territory after restart, got %v", sum["unlockedCount"])
	}
	if sum["money"].(float64) != 50000 {
		t.Fatalf("expected fresh balance after restart, got %v", sum["money"])
	}
}

func TestServer_CountriesMarketsAndAdmin(t *testing.T) {
	app := newTestApp(t)

	res := app.request(http.MethodGet, "/api/countries", nil, "")
	if res.Code != http.StatusOK {
		t.Fatalf("countries expected 200, got %d", res.Code)
	}
	var rows []map[string]any
	if err := json.Unmarshal(res.Body.Bytes(), &rows); err != nil {
		t.Fatalf("decode countries: %v", err)
	}
	if len(rows) == 0 {
		t.Fatal("expected a non-empty country list")
	}

	res = app.request(http.MethodGet, "/api/markets/DE", nil, "")
	if res.Code != http.StatusOK {
		t.Fatalf("markets expected 200, got %d", res.Code)
	}
	res = app.request(http.MethodGet, "/api/markets/XX", nil, "")
	if res.Code != http.StatusNotFound {
		t.Fatalf("unknown country markets expected 404, got %d", res.Code)
	}

	res = app.request(http.MethodGet, "/_/admin/routes.json", nil, "")
	if res.Code != http.StatusOK {
		t.Fatalf("routes.json expected 200, got %d", res.Code)
	}
	res = app.request(http.MethodGet, "/_/admin", nil, "")
	if res.Code != http.StatusOK {
		t.Fatalf("admin page expected 200, got %d", res.Code)
	}

	res = app.request(http.MethodGet, "/", nil, "")
	if res.Code != http.StatusOK {
		t.Fatalf("index expected 200, got %d", res.Code)
	}
	if ct := res.Header().Get("Content-Type"); !strings.Contains(ct, "text/html") {
		t.Fatalf("expected html index, got %q", ct)
	}

	res = app.request(http.MethodGet, "/api/health", nil, "")
	if res.Code != http.StatusOK {
		t.Fatalf("health expected 200, got %d", res.Code)
	}
}

type testApp struct {
	handler http.Handler
	logs    *bytes.Buffer
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	var logs bytes.Buffer
	logger := log.New(&logs, "", 0)

	cfg := &config.Config{}
	cfg.ApplyDefaults()
	cfg.Simulation.Seed = 1

	app, err := serverapp.New(serverapp.Options{
		Config: cfg,
		Logger: logger,
	})
	if err != nil {
		t.Fatalf("serverapp.New: %v", err)
	}
	go app.Hub.Run()

	return &testApp{handler: app.Handler, logs: &logs}
}

func (a *testApp) json(method, path string, body any) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	return a.request(method, path, bytes.NewReader(b), "application/json")
}

func (a *testApp) request(method, path string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

func decodeBodyMap(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode json body failed: %v body=%s", err, rec.Body.String())
	}
	return out
}
