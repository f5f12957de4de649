package engine

import (
	"errors"

	"github.com/courtsignal/services/lineup-engine/pkg/models"
)

// MinGamesForLineupAnalysis is the smallest absence window a measured
// adjustment may be built from.
const MinGamesForLineupAnalysis = 3

// ErrInsufficientSample indicates an absence window too small to measure.
// Callers recover by substituting the generic fallback; it is never
// surfaced past the aggregator.
var ErrInsufficientSample = errors.New("absence window below minimum sample size")

// MeasureAdjustment computes the subject's rates restricted to the absence
// window and expresses each as a relative boost over baseline. Boosts are
// clamped at 0: absence is assumed to help or be neutral, never hurt.
func MeasureAdjustment(absenceRows []models.GameLogRecord, baseline models.BaselineMetrics) (models.PerTeammateAdjustment, error) {
	if len(absenceRows) < MinGamesForLineupAnalysis {
		return models.PerTeammateAdjustment{}, ErrInsufficientSample
	}

	var fgm, fga, rebounds, assists, minutes float64
	for _, r := range absenceRows {
		fgm += r.FGM
		fga += r.FGA
		rebounds += r.Rebounds
		assists += r.Assists
		minutes += r.Minutes
	}

	// A zero denominator inside the window falls back to the baseline
	// itself, which yields a neutral boost of 0.
	shooting := rateOrDefault(fgm, fga, baseline.ShootingEfficiency)
	rebounding := per40OrDefault(rebounds, minutes, baseline.ReboundingRatePer40)
	assistRate := per40OrDefault(assists, minutes, baseline.AssistRatePer40)

	return models.PerTeammateAdjustment{
		ShootingBoost:   boostOverBaseline(shooting, baseline.ShootingEfficiency),
		ReboundingBoost: boostOverBaseline(rebounding, baseline.ReboundingRatePer40),
		AssistBoost:     boostOverBaseline(assistRate, baseline.AssistRatePer40),
		GamesAnalyzed:   len(absenceRows),
	}, nil
}

func boostOverBaseline(metric, baseline float64) float64 {
	if baseline <= 0 {
		return 0
	}
	boost := (metric - baseline) / baseline
	if boost < 0 {
		return 0
	}
	return boost
}
