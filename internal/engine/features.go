package engine

import "github.com/courtsignal/services/lineup-engine/pkg/models"

// ApplyComposite merges a composite adjustment into a feature map. It never
// introduces new keys: only the recognized teammate-impact keys already
// present in the base map are overwritten. A nil composite, or one below
// the confidence threshold, returns the base map as supplied, keeping
// low-sample estimates away from the downstream model.
func ApplyComposite(baseFeatures map[string]float64, composite *models.CompositeAdjustment, confidenceThreshold float64) map[string]float64 {
	if composite == nil || composite.Confidence < confidenceThreshold {
		return baseFeatures
	}

	adjusted := make(map[string]float64, len(baseFeatures))
	for k, v := range baseFeatures {
		adjusted[k] = v
	}

	setIfPresent(adjusted, models.FeatureShootingEfficiency, composite.AdjustedShootingEfficiency)
	setIfPresent(adjusted, models.FeatureReboundingStrength, composite.AdjustedReboundingRate)
	setIfPresent(adjusted, models.FeatureAssistDependency, composite.AdjustedAssistRate)
	setIfPresent(adjusted, models.FeatureLineupShift, composite.LineupShiftMultiplier)

	return adjusted
}

func setIfPresent(features map[string]float64, key string, value float64) {
	if _, ok := features[key]; ok {
		features[key] = value
	}
}
