package engine

import (
	"context"
	"log"

	"github.com/courtsignal/services/lineup-engine/pkg/contracts"
	"github.com/courtsignal/services/lineup-engine/pkg/models"
)

const (
	// FullConfidenceGames is the absence-window size at which a measured
	// adjustment reaches full confidence.
	FullConfidenceGames = 10

	// FallbackConfidence is the fixed weight of a heuristic adjustment,
	// strictly below any measured contribution with 10+ games.
	FallbackConfidence = 0.3

	// DefaultConfidenceThreshold gates whether a composite is applied to
	// the feature map at all.
	DefaultConfidenceThreshold = 0.6

	// shiftDampening bounds how far the lineup-shift multiplier can move
	// away from 1.0.
	shiftDampening = 0.5
)

// Engine estimates how a player's production rates shift when teammates
// are unavailable. It holds no mutable state; every call re-reads the
// store, so it is safe for concurrent use.
type Engine struct {
	store               contracts.GameLogStore
	confidenceThreshold float64
}

// New creates an engine over the given game-log store. A threshold <= 0
// falls back to the default.
func New(store contracts.GameLogStore, confidenceThreshold float64) *Engine {
	if confidenceThreshold <= 0 {
		confidenceThreshold = DefaultConfidenceThreshold
	}
	return &Engine{store: store, confidenceThreshold: confidenceThreshold}
}

// ComputeLineupAdjustment estimates the composite effect of the injured
// teammates' absences on the subject's projection for statType. It returns
// nil when there is nothing to adjust (no injured teammates). Store
// failures degrade individual teammates to the heuristic fallback rather
// than aborting the aggregation.
func (e *Engine) ComputeLineupAdjustment(ctx context.Context, playerName, team string, statType models.StatType, injuredTeammates []string, window models.Window) *models.CompositeAdjustment {
	if len(injuredTeammates) == 0 {
		return nil
	}
	statType = normalizeStat(statType)

	// One team-wide fetch serves both the baseline and the per-teammate
	// appearance index; a second fetch covers the subject. Absence windows
	// are then pure set arithmetic in memory.
	teamRows, err := e.store.QueryByTeamAndWindow(ctx, team, window)
	if err != nil {
		log.Printf("lineup engine: team query failed for %s: %v", team, err)
		teamRows = nil
	}

	subjectRows, err := e.store.QueryByPlayerAndWindow(ctx, playerName, team, window)
	if err != nil {
		log.Printf("lineup engine: player query failed for %s: %v", playerName, err)
		subjectRows = nil
	}

	baseline := ComputeBaseline(teamRows, playerName)
	appearances := AppearanceIndex(teamRows)

	var sumShooting, sumRebounding, sumAssists, sumConfidence float64
	resolved := 0

	for _, teammate := range injuredTeammates {
		adjustment, confidence := e.resolveTeammate(subjectRows, appearances[teammate], baseline, statType)
		sumShooting += adjustment.ShootingBoost
		sumRebounding += adjustment.ReboundingBoost
		sumAssists += adjustment.AssistBoost
		sumConfidence += confidence
		resolved++
	}

	if resolved == 0 {
		return nil
	}

	n := float64(resolved)
	avg := metricTriple{
		Shooting:   sumShooting / n,
		Rebounding: sumRebounding / n,
		Assists:    sumAssists / n,
	}

	weights := statWeights[statType]
	weightedSum := weights.Shooting*avg.Shooting +
		weights.Rebounding*avg.Rebounding +
		weights.Assists*avg.Assists

	return &models.CompositeAdjustment{
		AdjustedShootingEfficiency: baseline.ShootingEfficiency * (1 + avg.Shooting),
		AdjustedReboundingRate:     baseline.ReboundingRatePer40 * (1 + avg.Rebounding),
		AdjustedAssistRate:         baseline.AssistRatePer40 * (1 + avg.Assists),
		LineupShiftMultiplier:      1 + weightedSum*shiftDampening,
		Confidence:                 clamp01(sumConfidence / n),
	}
}

// resolveTeammate produces a measured adjustment when the absence window
// supports one, and the heuristic fallback otherwise. A teammate with no
// rows in the window is treated as data-unavailable, matching what a
// per-teammate query returning empty would have produced.
func (e *Engine) resolveTeammate(subjectRows []models.GameLogRecord, teammateDates map[string]bool, baseline models.BaselineMetrics, statType models.StatType) (models.PerTeammateAdjustment, float64) {
	if len(teammateDates) == 0 {
		return FallbackAdjustment(statType), FallbackConfidence
	}

	absence := AbsenceWindow(subjectRows, teammateDates)
	adjustment, err := MeasureAdjustment(absence, baseline)
	if err != nil {
		return FallbackAdjustment(statType), FallbackConfidence
	}

	confidence := float64(adjustment.GamesAnalyzed) / FullConfidenceGames
	if confidence > 1 {
		confidence = 1
	}
	return adjustment, confidence
}

// ApplyLineupAdjustments folds the composite for the injured set into the
// caller's feature map. It is a total function: on any degradation it
// returns the base features unmodified, so the downstream model always
// receives a complete vector.
func (e *Engine) ApplyLineupAdjustments(ctx context.Context, playerName, team string, statType models.StatType, injuredTeammates []string, baseFeatures map[string]float64, window models.Window) map[string]float64 {
	composite := e.ComputeLineupAdjustment(ctx, playerName, team, statType, injuredTeammates, window)
	return ApplyComposite(baseFeatures, composite, e.confidenceThreshold)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
