package engine

import "github.com/courtsignal/services/lineup-engine/pkg/models"

// metricTriple holds one value per tracked metric. It doubles as a row in
// the fallback-boost table and in the stat weighting table.
type metricTriple struct {
	Shooting   float64
	Rebounding float64
	Assists    float64
}

// fallbackBoosts are the heuristic per-metric boosts substituted when a
// teammate has no usable absence history. Each row is keyed by the
// statistic being projected.
var fallbackBoosts = map[models.StatType]metricTriple{
	models.StatPoints:   {Shooting: 0.20, Rebounding: 0.10, Assists: 0.10},
	models.StatRebounds: {Shooting: 0.10, Rebounding: 0.50, Assists: 0.20},
	models.StatAssists:  {Shooting: 0.30, Rebounding: 0.10, Assists: 0.40},
}

// statWeights folds the three averaged boosts into one scalar per stat
// type. Each stat weights its own metric highest.
var statWeights = map[models.StatType]metricTriple{
	models.StatPoints:   {Shooting: 0.6, Rebounding: 0.2, Assists: 0.2},
	models.StatRebounds: {Shooting: 0.2, Rebounding: 0.6, Assists: 0.2},
	models.StatAssists:  {Shooting: 0.2, Rebounding: 0.2, Assists: 0.6},
}

// normalizeStat maps unknown stat types to points so the engine stays a
// total function; the HTTP layer rejects unknown types before they get here.
func normalizeStat(stat models.StatType) models.StatType {
	if !stat.Valid() {
		return models.StatPoints
	}
	return stat
}

// FallbackAdjustment returns the heuristic adjustment for a teammate whose
// absence history is missing or too thin. GamesAnalyzed is 0 because no
// games backed it.
func FallbackAdjustment(stat models.StatType) models.PerTeammateAdjustment {
	row := fallbackBoosts[normalizeStat(stat)]
	return models.PerTeammateAdjustment{
		ShootingBoost:   row.Shooting,
		ReboundingBoost: row.Rebounding,
		AssistBoost:     row.Assists,
	}
}
