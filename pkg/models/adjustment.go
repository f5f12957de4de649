package models

// StatType identifies which projection the adjustment feeds.
type StatType string

const (
	StatPoints   StatType = "points"
	StatRebounds StatType = "rebounds"
	StatAssists  StatType = "assists"
)

// Valid reports whether s is one of the recognized stat types.
func (s StatType) Valid() bool {
	switch s {
	case StatPoints, StatRebounds, StatAssists:
		return true
	}
	return false
}

// BaselineMetrics holds team-wide rate-normalized production over a window.
// Rebounding and assist rates are per 40 minutes to remove playing-time
// confounds.
type BaselineMetrics struct {
	ShootingEfficiency  float64 `json:"shooting_efficiency"`
	ReboundingRatePer40 float64 `json:"rebounding_rate_per40"`
	AssistRatePer40     float64 `json:"assist_rate_per40"`
}

// PerTeammateAdjustment is the measured (or fallback) effect of one
// teammate's absence on the subject's rates. Boosts are relative deltas
// over baseline, floor-clamped at 0.
type PerTeammateAdjustment struct {
	ShootingBoost   float64 `json:"shooting_boost"`
	ReboundingBoost float64 `json:"rebounding_boost"`
	AssistBoost     float64 `json:"assist_boost"`
	GamesAnalyzed   int     `json:"games_analyzed"`
}

// CompositeAdjustment combines per-teammate adjustments for one injured set
// into adjusted rates, a single lineup-shift scalar, and a confidence score
// in [0,1]. It is produced per call and never persisted.
type CompositeAdjustment struct {
	AdjustedShootingEfficiency float64 `json:"adjusted_shooting_efficiency"`
	AdjustedReboundingRate     float64 `json:"adjusted_rebounding_rate"`
	AdjustedAssistRate         float64 `json:"adjusted_assist_rate"`
	LineupShiftMultiplier      float64 `json:"lineup_shift_multiplier"`
	Confidence                 float64 `json:"confidence"`
}

// Feature keys the engine is allowed to touch. Any other key in a feature
// map passes through untouched.
const (
	FeatureShootingEfficiency = "teammate_shooting_efficiency"
	FeatureReboundingStrength = "teammate_rebounding_strength"
	FeatureAssistDependency   = "teammate_assist_dependency"
	FeatureLineupShift        = "lineup_shift_multiplier"
)
