package engine

import "github.com/courtsignal/services/lineup-engine/pkg/models"

// Neutral priors used whenever a denominator is empty. They keep a thin or
// missing window from propagating NaN into the feature vector.
const (
	DefaultShootingEfficiency  = 0.45
	DefaultReboundingRatePer40 = 0.35
	DefaultAssistRatePer40     = 0.25
)

// ComputeBaseline derives team-wide production rates from every qualifying
// row except the subject's own. Rebounding and assists are normalized per
// 40 minutes.
func ComputeBaseline(teamRows []models.GameLogRecord, subject string) models.BaselineMetrics {
	var fgm, fga, rebounds, assists, minutes float64

	for _, r := range teamRows {
		if r.PlayerName == subject || !r.Qualifying() {
			continue
		}
		fgm += r.FGM
		fga += r.FGA
		rebounds += r.Rebounds
		assists += r.Assists
		minutes += r.Minutes
	}

	return models.BaselineMetrics{
		ShootingEfficiency:  rateOrDefault(fgm, fga, DefaultShootingEfficiency),
		ReboundingRatePer40: per40OrDefault(rebounds, minutes, DefaultReboundingRatePer40),
		AssistRatePer40:     per40OrDefault(assists, minutes, DefaultAssistRatePer40),
	}
}

func rateOrDefault(numerator, denominator, fallback float64) float64 {
	if denominator <= 0 {
		return fallback
	}
	return numerator / denominator
}

func per40OrDefault(total, minutes, fallback float64) float64 {
	if minutes <= 0 {
		return fallback
	}
	return total / minutes * 40
}
