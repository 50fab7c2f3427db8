package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mgrosjean/fightcard/go/internal/generation"
	"github.com/mgrosjean/fightcard/go/internal/models"
	"github.com/mgrosjean/fightcard/go/internal/schedule"
)

func setupServer(services *Services, config *Config) *http.Server {
	mux := http.NewServeMux()
	registerRoutes(mux, services)
	setupHealthCheck(mux)

	return &http.Server{
		Addr:         fmt.Sprintf(":%s", config.Server.Port),
		Handler:      mux,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
}

func registerRoutes(mux *http.ServeMux, services *Services) {
	app := services.Generation

	mux.HandleFunc("GET /competitions/{id}/generation/settings", func(w http.ResponseWriter, r *http.Request) {
		compID, ok := pathID(w, r)
		if !ok {
			return
		}
		settings, err := app.GetSettings(r.Context(), compID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, settings)
	})

	mux.HandleFunc("PUT /competitions/{id}/generation/settings", func(w http.ResponseWriter, r *http.Request) {
		compID, ok := pathID(w, r)
		if !ok {
			return
		}
		var settings models.GenerationSettings
		if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		settings.CompetitionID = compID
		writeResult(w, app.SaveSettings(r.Context(), settings))
	})

	mux.HandleFunc("GET /competitions/{id}/generation/counters", func(w http.ResponseWriter, r *http.Request) {
		compID, ok := pathID(w, r)
		if !ok {
			return
		}
		counters, err := app.GetGenerationCounters(r.Context(), compID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, counters)
	})

	mux.HandleFunc("GET /competitions/{id}/weight-classes", func(w http.ResponseWriter, r *http.Request) {
		compID, ok := pathID(w, r)
		if !ok {
			return
		}
		suggestions, err := app.SuggestWeightClasses(r.Context(), compID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, suggestions)
	})

	mux.HandleFunc("POST /competitions/{id}/draft/generate", func(w http.ResponseWriter, r *http.Request) {
		compID, ok := pathID(w, r)
		if !ok {
			return
		}
		result := app.GenerateDraft(r.Context(), compID, r.Header.Get("X-Operator"))
		status := http.StatusOK
		if !result.OK {
			status = http.StatusConflict
		}
		writeJSON(w, status, result)
	})

	mux.HandleFunc("GET /competitions/{id}/draft", func(w http.ResponseWriter, r *http.Request) {
		compID, ok := pathID(w, r)
		if !ok {
			return
		}
		draft, err := app.GetDraft(r.Context(), compID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		if draft == nil {
			writeError(w, http.StatusNotFound, fmt.Errorf("no draft for competition %s", compID))
			return
		}
		writeJSON(w, http.StatusOK, draft)
	})

	mux.HandleFunc("DELETE /competitions/{id}/draft", func(w http.ResponseWriter, r *http.Request) {
		compID, ok := pathID(w, r)
		if !ok {
			return
		}
		writeResult(w, app.ClearDraft(r.Context(), compID))
	})

	mux.HandleFunc("POST /competitions/{id}/draft/recalc", func(w http.ResponseWriter, r *http.Request) {
		compID, ok := pathID(w, r)
		if !ok {
			return
		}
		writeResult(w, app.RecalcDraftSchedule(r.Context(), compID))
	})

	mux.HandleFunc("POST /competitions/{id}/draft/reorder", func(w http.ResponseWriter, r *http.Request) {
		compID, ok := pathID(w, r)
		if !ok {
			return
		}
		mode := generation.ReorderMode(r.URL.Query().Get("mode"))
		writeResult(w, app.ReorderFights(r.Context(), compID, mode))
	})

	mux.HandleFunc("PUT /competitions/{id}/draft/order", func(w http.ResponseWriter, r *http.Request) {
		compID, ok := pathID(w, r)
		if !ok {
			return
		}
		var body struct {
			FightNos []int `json:"fight_nos"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		writeResult(w, app.UpdateDraftOrder(r.Context(), compID, body.FightNos))
	})

	mux.HandleFunc("POST /competitions/{id}/draft/swap", func(w http.ResponseWriter, r *http.Request) {
		compID, ok := pathID(w, r)
		if !ok {
			return
		}
		var body struct {
			FightNo int `json:"fight_no"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		writeResult(w, app.SwapDraftCorners(r.Context(), compID, body.FightNo))
	})

	mux.HandleFunc("POST /competitions/{id}/draft/commit", func(w http.ResponseWriter, r *http.Request) {
		compID, ok := pathID(w, r)
		if !ok {
			return
		}
		writeResult(w, app.ValidateAndApplyDraft(r.Context(), compID))
	})

	mux.HandleFunc("GET /competitions/{id}/schedule/estimate", func(w http.ResponseWriter, r *http.Request) {
		compID, ok := pathID(w, r)
		if !ok {
			return
		}
		source := schedule.Source(r.URL.Query().Get("source"))
		if source == "" {
			source = schedule.SourceDraft
		}
		slots, err := parseDaySlots(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		estimate, err := services.Estimator.Estimate(r.Context(), compID, slots, 1, source)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		writeJSON(w, http.StatusOK, estimate)
	})
}

// parseDaySlots reads an optional day window from day_start/day_end query
// parameters in RFC 3339 form. No parameters means no overflow check.
func parseDaySlots(r *http.Request) ([]schedule.DaySlot, error) {
	startRaw := r.URL.Query().Get("day_start")
	endRaw := r.URL.Query().Get("day_end")
	if startRaw == "" && endRaw == "" {
		return nil, nil
	}
	start, err := time.Parse(time.RFC3339, startRaw)
	if err != nil {
		return nil, fmt.Errorf("invalid day_start: %w", err)
	}
	end, err := time.Parse(time.RFC3339, endRaw)
	if err != nil {
		return nil, fmt.Errorf("invalid day_end: %w", err)
	}
	return []schedule.DaySlot{{Start: start, End: end}}, nil
}

func setupHealthCheck(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
}

func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid competition id: %w", err))
		return uuid.Nil, false
	}
	return id, true
}

func writeResult(w http.ResponseWriter, result generation.Result) {
	status := http.StatusOK
	if !result.OK {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, result)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}
