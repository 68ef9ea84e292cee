package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/jakovjj/tycooner/internal/challenge"
	"github.com/jakovjj/tycooner/internal/econ"
	"github.com/jakovjj/tycooner/internal/game"
	"github.com/jakovjj/tycooner/internal/state"
	"github.com/jakovjj/tycooner/internal/telemetry"
)

// App holds what the handlers depend on.
type App struct {
	Store     *state.Store
	Actions   *game.Actions
	Loop      *game.Loop
	Telemetry telemetry.Repository
	Hub       *Hub

	BootNow time.Time
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeTxError maps the transaction error taxonomy onto HTTP statuses:
// affordability 402, capacity/limit 409, preconditions and the facility
// advisory 422.
func writeTxError(w http.ResponseWriter, err error) {
	body := map[string]any{"error": err.Error()}
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, game.ErrInsufficientFunds):
		code = http.StatusPaymentRequired
	case errors.Is(err, game.ErrCapacity):
		code = http.StatusConflict
	case errors.Is(err, game.ErrFacilityWarning):
		code = http.StatusUnprocessableEntity
		body["warning"] = "facility"
	case errors.Is(err, game.ErrPrecondition):
		code = http.StatusUnprocessableEntity
	}
	writeJSON(w, code, body)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid json body"})
		return false
	}
	return true
}

// summary is the lightweight polling payload for the HUD.
type summary struct {
	Day             int              `json:"day"`
	Money           float64          `json:"money"`
	UnlockedCount   int              `json:"unlockedCount"`
	CountryCount    int              `json:"countryCount"`
	TotalFacilities int              `json:"totalFacilities"`
	GameOver        bool             `json:"gameOver"`
	Challenge       challengePayload `json:"challenge"`
}

type challengePayload struct {
	Status   challenge.Status `json:"status"`
	TargetID string           `json:"targetCountryId,omitempty"`
	Deadline *time.Time       `json:"deadline,omitempty"`
}

func summarize(s state.GameState) summary {
	return summary{
		Day:             s.CurrentDay,
		Money:           s.Money,
		UnlockedCount:   len(s.UnlockedCountries),
		CountryCount:    len(s.Countries),
		TotalFacilities: s.TotalFacilities(),
		GameOver:        s.GameOver,
		Challenge: challengePayload{
			Status:   challenge.StatusOf(s),
			TargetID: s.ChallengeTargetCountryID,
			Deadline: s.ChallengeDeadline,
		},
	}
}

func RegisterAPIRoutes(mux *http.ServeMux, rr *RouteRegistry, app *App) {
	actions := app.Actions

	record := func(t telemetry.EventType, meta telemetry.EventMetadata) {
		if app.Telemetry != nil {
			_ = app.Telemetry.RecordEvent(t, meta)
		}
	}

	Handle(mux, rr, "GET /api/state", "Full game snapshot", "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, app.Store.Get())
	})

	Handle(mux, rr, "GET /api/state/summary", "Money, day, challenge status", "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, summarize(app.Store.Get()))
	})

	Handle(mux, rr, "GET /api/countries", "Countries with unlock flags", "", func(w http.ResponseWriter, r *http.Request) {
		s := app.Store.Get()
		type countryRow struct {
			econ.Country
			Unlocked     bool `json:"unlocked"`
			HasWarehouse bool `json:"hasWarehouse"`
		}
		rows := make([]countryRow, 0, len(s.Countries))
		for _, c := range s.Countries {
			_, hasWh := s.Warehouses[c.ID]
			rows = append(rows, countryRow{Country: c, Unlocked: s.IsUnlocked(c.ID), HasWarehouse: hasWh})
		}
		sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })
		writeJSON(w, http.StatusOK, rows)
	})

	Handle(mux, rr, "GET /api/markets/{countryId}", "Market records for one country", "", func(w http.ResponseWriter, r *http.Request) {
		countryID := r.PathValue("countryId")
		s := app.Store.Get()
		if _, ok := s.Countries[countryID]; !ok {
			writeJSON(w, http.StatusNotFound, map[string]any{"error": "unknown country"})
			return
		}
		rows := make([]econ.Market, 0, len(s.Goods))
		for _, m := range s.Markets {
			if m.CountryID == countryID {
				rows = append(rows, m)
			}
		}
		sort.Slice(rows, func(i, j int) bool { return rows[i].GoodID < rows[j].GoodID })
		writeJSON(w, http.StatusOK, rows)
	})

	Handle(mux, rr, "GET /api/challenge", "Current challenge state", "", func(w http.ResponseWriter, r *http.Request) {
		s := app.Store.Get()
		writeJSON(w, http.StatusOK, challengePayload{
			Status:   challenge.StatusOf(s),
			TargetID: s.ChallengeTargetCountryID,
			Deadline: s.ChallengeDeadline,
		})
	})

	Handle(mux, rr, "GET /api/telemetry/stats", "Aggregated session stats", "", func(w http.ResponseWriter, r *http.Request) {
		if app.Telemetry == nil {
			writeJSON(w, http.StatusOK, telemetry.Stats{})
			return
		}
		since := app.BootNow
		events, err := app.Telemetry.GetEvents(since, nil)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
			return
		}
		stats, err := telemetry.CalculateStats(events, since)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, stats)
	})

	Handle(mux, rr, "POST /api/warehouses", "Build warehouse", `{"countryId":"DE"}`, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			CountryID string `json:"countryId"`
		}
		if !decodeBody(w, r, &body) {
			return
		}
		s, err := actions.BuildWarehouse(body.CountryID)
		if err != nil {
			writeTxError(w, err)
			return
		}
		record(telemetry.EventWarehouseBuilt, telemetry.EventMetadata{"country_id": body.CountryID})
		writeJSON(w, http.StatusOK, s.Warehouses[body.CountryID])
	})

	Handle(mux, rr, "POST /api/warehouses/upgrade", "Upgrade warehouse", `{"countryId":"DE"}`, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			CountryID string `json:"countryId"`
		}
		if !decodeBody(w, r, &body) {
			return
		}
		s, err := actions.UpgradeWarehouse(body.CountryID)
		if err != nil {
			writeTxError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, s.Warehouses[body.CountryID])
	})

	Handle(mux, rr, "POST /api/facilities", "Build production facility", `{"countryId":"DE","type":"farm"}`, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			CountryID string `json:"countryId"`
			Type      string `json:"type"`
		}
		if !decodeBody(w, r, &body) {
			return
		}
		s, err := actions.BuildFacility(body.CountryID, state.FacilityType(body.Type))
		if err != nil {
			writeTxError(w, err)
			return
		}
		record(telemetry.EventFacilityBuilt, telemetry.EventMetadata{"country_id": body.CountryID, "type": body.Type})
		writeJSON(w, http.StatusOK, s.Production[body.CountryID])
	})

	Handle(mux, rr, "POST /api/facilities/destroy", "Destroy newest facility of a type", `{"countryId":"DE","type":"farm"}`, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			CountryID string `json:"countryId"`
			Type      string `json:"type"`
		}
		if !decodeBody(w, r, &body) {
			return
		}
		s, err := actions.DestroyFacility(body.CountryID, state.FacilityType(body.Type))
		if err != nil {
			writeTxError(w, err)
			return
		}
		record(telemetry.EventFacilityDestroyed, telemetry.EventMetadata{"country_id": body.CountryID, "type": body.Type})
		writeJSON(w, http.StatusOK, s.Production[body.CountryID])
	})

	Handle(mux, rr, "POST /api/factories", "Build legacy factory", `{"countryId":"DE","goodId":"electronics"}`, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			CountryID string `json:"countryId"`
			GoodID    string `json:"goodId"`
		}
		if !decodeBody(w, r, &body) {
			return
		}
		s, err := actions.BuildFactory(body.CountryID, body.GoodID)
		if err != nil {
			writeTxError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, factoriesOf(s, body.CountryID))
	})

	Handle(mux, rr, "POST /api/factories/upgrade", "Upgrade legacy factory", `{"factoryId":"..."}`, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			FactoryID string `json:"factoryId"`
		}
		if !decodeBody(w, r, &body) {
			return
		}
		s, err := actions.UpgradeFactory(body.FactoryID)
		if err != nil {
			writeTxError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, s.Factories[body.FactoryID])
	})

	Handle(mux, rr, "POST /api/roads", "Build road between neighbors", `{"from":"DE","to":"FR"}`, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			From string `json:"from"`
			To   string `json:"to"`
		}
		if !decodeBody(w, r, &body) {
			return
		}
		s, err := actions.BuildRoad(body.From, body.To)
		if err != nil {
			writeTxError(w, err)
			return
		}
		record(telemetry.EventRoadBuilt, telemetry.EventMetadata{"country_id": body.From, "to": body.To})
		writeJSON(w, http.StatusOK, s.Roads[state.RoadID(body.From, body.To)])
	})

	Handle(mux, rr, "POST /api/truck-lines", "Assign trucks to a road", `{"from":"DE","to":"FR","goodId":"grain","trucks":2}`, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			From   string `json:"from"`
			To     string `json:"to"`
			GoodID string `json:"goodId"`
			Trucks int    `json:"trucks"`
		}
		if !decodeBody(w, r, &body) {
			return
		}
		s, err := actions.CreateTruckLine(body.From, body.To, body.GoodID, body.Trucks)
		if err != nil {
			writeTxError(w, err)
			return
		}
		record(telemetry.EventTruckLineCreated, telemetry.EventMetadata{"from": body.From, "to": body.To, "good_id": body.GoodID})
		writeJSON(w, http.StatusOK, truckLinesOf(s))
	})

	Handle(mux, rr, "POST /api/truck-lines/update", "Change truck count (0 removes)", `{"id":"...","trucks":3}`, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			ID     string `json:"id"`
			Trucks int    `json:"trucks"`
		}
		if !decodeBody(w, r, &body) {
			return
		}
		s, err := actions.UpdateTruckLine(body.ID, body.Trucks)
		if err != nil {
			writeTxError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, truckLinesOf(s))
	})

	Handle(mux, rr, "POST /api/transfers", "Instant road-gated transfer", `{"from":"DE","to":"FR","goodId":"grain","amount":10}`, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			From   string `json:"from"`
			To     string `json:"to"`
			GoodID string `json:"goodId"`
			Amount int    `json:"amount"`
		}
		if !decodeBody(w, r, &body) {
			return
		}
		s, err := actions.TransferGoods(body.From, body.To, body.GoodID, body.Amount)
		if err != nil {
			writeTxError(w, err)
			return
		}
		record(telemetry.EventGoodsTransferred, telemetry.EventMetadata{"from": body.From, "to": body.To, "good_id": body.GoodID, "amount": body.Amount})
		writeJSON(w, http.StatusOK, map[string]any{
			"from": s.Warehouses[body.From],
			"to":   s.Warehouses[body.To],
		})
	})

	Handle(mux, rr, "POST /api/sell", "Sell full stock of a good", `{"countryId":"DE","goodId":"grain"}`, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			CountryID string `json:"countryId"`
			GoodID    string `json:"goodId"`
		}
		if !decodeBody(w, r, &body) {
			return
		}
		before := app.Store.Get()
		sold := before.Warehouses[body.CountryID].Storage[body.GoodID]

		s, err := actions.SellGood(body.CountryID, body.GoodID)
		if err != nil {
			writeTxError(w, err)
			return
		}
		record(telemetry.EventGoodsSold, telemetry.EventMetadata{
			"country_id": body.CountryID,
			"good_id":    body.GoodID,
			"amount":     sold,
			"revenue":    s.Money - before.Money,
		})
		writeJSON(w, http.StatusOK, summarize(s))
	})

	Handle(mux, rr, "POST /api/unlock", "Unlock a country", `{"countryId":"FR"}`, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			CountryID string `json:"countryId"`
			Free      bool   `json:"free"`
		}
		if !decodeBody(w, r, &body) {
			return
		}
		s, err := actions.UnlockCountry(body.CountryID, body.Free)
		if err != nil {
			writeTxError(w, err)
			return
		}
		record(telemetry.EventCountryUnlocked, telemetry.EventMetadata{"country_id": body.CountryID})
		if s.ChallengeTargetCountryID != "" {
			record(telemetry.EventChallengeAssigned, telemetry.EventMetadata{"target": s.ChallengeTargetCountryID})
		}
		app.broadcastState(s)
		writeJSON(w, http.StatusOK, summarize(s))
	})

	Handle(mux, rr, "POST /api/restart", "Reset to a fresh game", "", func(w http.ResponseWriter, r *http.Request) {
		s := actions.Restart()
		record(telemetry.EventRestart, nil)
		app.broadcastState(s)
		writeJSON(w, http.StatusOK, summarize(s))
	})

	Handle(mux, rr, "POST /api/ops/tick", "Manually advance one day", "", func(w http.ResponseWriter, r *http.Request) {
		if app.Loop == nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{"error": "loop not running"})
			return
		}
		s, rep := app.Loop.Tick()
		writeJSON(w, http.StatusOK, map[string]any{
			"summary": summarize(s),
			"report":  rep,
		})
	})

	Handle(mux, rr, "GET /api/health", "Liveness probe", "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"service": "tycooner",
			"uptime":  time.Since(app.BootNow).Truncate(time.Second).String(),
		})
	})
}

func (app *App) broadcastState(s state.GameState) {
	if app.Hub == nil {
		return
	}
	app.Hub.BroadcastState(s)
}

func factoriesOf(s state.GameState, countryID string) []state.Factory {
	out := make([]state.Factory, 0)
	for _, f := range s.Factories {
		if f.CountryID == countryID {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func truckLinesOf(s state.GameState) []state.TruckLine {
	out := make([]state.TruckLine, 0, len(s.TruckLines))
	for _, l := range s.TruckLines {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// RegisterStatic serves the embedded map UI assets.
func RegisterStatic(mux *http.ServeMux, assets http.FileSystem) {
	fileServer := http.FileServer(assets)
	mux.Handle("GET /static/{file...}", http.StripPrefix("/static/", fileServer))

	mux.HandleFunc("GET /{rest...}", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" && !strings.HasPrefix(r.URL.Path, "/index") {
			http.NotFound(w, r)
			return
		}
		f, err := assets.Open("index.html")
		if err != nil {
			http.NotFound(w, r)
			return
		}
		defer f.Close()
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		st, err := f.Stat()
		if err != nil {
			http.NotFound(w, r)
			return
		}
		http.ServeContent(w, r, "index.html", st.ModTime(), f)
	})
}
