package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/courtsignal/services/lineup-engine/internal/engine"
	"github.com/courtsignal/services/lineup-engine/pkg/models"
)

// Handler contains dependencies for HTTP handlers
type Handler struct {
	engine *engine.Engine
}

// NewHandler creates a new handler
func NewHandler(eng *engine.Engine) *Handler {
	return &Handler{engine: eng}
}

// HealthCheck returns service health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "lineup-engine",
	})
}

// ComputeAdjustment returns the composite lineup adjustment for an injured
// teammate set, or a null adjustment when none could be made.
func (h *Handler) ComputeAdjustment(w http.ResponseWriter, r *http.Request) {
	var req models.AdjustmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}

	window, err := h.validate(req)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	composite := h.engine.ComputeLineupAdjustment(
		r.Context(), req.PlayerName, req.Team, req.StatType, req.InjuredTeammates, window)

	respondJSON(w, http.StatusOK, models.AdjustmentResponse{Adjustment: composite})
}

// ApplyFeatures folds the lineup adjustment into the supplied feature map.
// The response always carries a usable map; on any internal degradation it
// is the base map as supplied.
func (h *Handler) ApplyFeatures(w http.ResponseWriter, r *http.Request) {
	var req models.ApplyFeaturesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}

	window, err := h.validate(req.AdjustmentRequest)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.BaseFeatures == nil {
		req.BaseFeatures = map[string]float64{}
	}

	features := h.engine.ApplyLineupAdjustments(
		r.Context(), req.PlayerName, req.Team, req.StatType, req.InjuredTeammates, req.BaseFeatures, window)

	respondJSON(w, http.StatusOK, models.ApplyFeaturesResponse{Features: features})
}

// validate checks required fields and resolves the query window.
func (h *Handler) validate(req models.AdjustmentRequest) (models.Window, error) {
	if req.PlayerName == "" {
		return models.Window{}, fmt.Errorf("player_name is required")
	}
	if req.Team == "" {
		return models.Window{}, fmt.Errorf("team is required")
	}
	if !req.StatType.Valid() {
		return models.Window{}, fmt.Errorf("unknown stat_type: %s", req.StatType)
	}
	return parseWindow(req.WindowStart, req.WindowEnd)
}

// parseWindow resolves optional YYYY-MM-DD bounds, defaulting to the
// current season.
func parseWindow(start, end string) (models.Window, error) {
	if start == "" && end == "" {
		return models.SeasonWindow(time.Now().UTC()), nil
	}

	startDate, err := time.Parse("2006-01-02", start)
	if err != nil {
		return models.Window{}, fmt.Errorf("invalid window_start: %s", start)
	}
	endDate, err := time.Parse("2006-01-02", end)
	if err != nil {
		return models.Window{}, fmt.Errorf("invalid window_end: %s", end)
	}
	if endDate.Before(startDate) {
		return models.Window{}, fmt.Errorf("window_end before window_start")
	}
	return models.Window{Start: startDate, End: endDate}, nil
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		fmt.Printf("error encoding response: %v\n", err)
	}
}

// respondError writes a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
