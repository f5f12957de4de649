package models

// AdjustmentRequest asks for the composite lineup adjustment for one
// player/stat/injured-set tuple. Window dates are optional YYYY-MM-DD
// strings; both empty means the current season.
type AdjustmentRequest struct {
	PlayerName       string   `json:"player_name"`
	Team             string   `json:"team"`
	StatType         StatType `json:"stat_type"`
	InjuredTeammates []string `json:"injured_teammates"`
	WindowStart      string   `json:"window_start,omitempty"`
	WindowEnd        string   `json:"window_end,omitempty"`
}

// AdjustmentResponse wraps a composite that may be null when no
// adjustment could be made.
type AdjustmentResponse struct {
	Adjustment *CompositeAdjustment `json:"adjustment"`
}

// ApplyFeaturesRequest asks for a base feature map with the lineup
// adjustment folded in.
type ApplyFeaturesRequest struct {
	AdjustmentRequest
	BaseFeatures map[string]float64 `json:"base_features"`
}

// ApplyFeaturesResponse carries the (possibly unchanged) feature map.
type ApplyFeaturesResponse struct {
	Features map[string]float64 `json:"features"`
}
