package engine_test

import (
	"errors"
	"math"
	"testing"

	"github.com/courtsignal/services/lineup-engine/internal/engine"
	"github.com/courtsignal/services/lineup-engine/pkg/models"
)

var testBaseline = models.BaselineMetrics{
	ShootingEfficiency:  0.45,
	ReboundingRatePer40: 0.35,
	AssistRatePer40:     0.25,
}

// absenceRows builds n qualifying rows with identical per-game stats.
func absenceRows(n int, minutes, fgm, fga, rebounds, assists float64) []models.GameLogRecord {
	rows := make([]models.GameLogRecord, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, models.GameLogRecord{
			PlayerName: "Subject Player",
			GameDate:   gameDate(i + 1),
			Minutes:    minutes,
			FGM:        fgm,
			FGA:        fga,
			Rebounds:   rebounds,
			Assists:    assists,
		})
	}
	return rows
}

func TestMeasureAdjustmentShootingBoost(t *testing.T) {
	// 5 absence games at 0.50 shooting vs a 0.45 baseline.
	rows := absenceRows(5, 30, 5, 10, 0.2625, 0.1875)

	adj, err := engine.MeasureAdjustment(rows, testBaseline)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(adj.ShootingBoost-0.1111) > 0.001 {
		t.Errorf("ShootingBoost = %f, want ~0.111", adj.ShootingBoost)
	}
	if adj.GamesAnalyzed != 5 {
		t.Errorf("GamesAnalyzed = %d, want 5", adj.GamesAnalyzed)
	}
	// Per-game rebounds/assists match the baseline rates exactly.
	if math.Abs(adj.ReboundingBoost) > 0.0001 {
		t.Errorf("ReboundingBoost = %f, want 0", adj.ReboundingBoost)
	}
	if math.Abs(adj.AssistBoost) > 0.0001 {
		t.Errorf("AssistBoost = %f, want 0", adj.AssistBoost)
	}
}

func TestMeasureAdjustmentFloorClamp(t *testing.T) {
	// Subject shoots far below baseline during the absence window.
	rows := absenceRows(6, 30, 1, 10, 0, 0)

	adj, err := engine.MeasureAdjustment(rows, testBaseline)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if adj.ShootingBoost < 0 || adj.ReboundingBoost < 0 || adj.AssistBoost < 0 {
		t.Errorf("boosts must never go negative, got %+v", adj)
	}
	if adj.ShootingBoost != 0 {
		t.Errorf("ShootingBoost = %f, want 0 (worse-than-baseline clamps to 0)", adj.ShootingBoost)
	}
}

func TestMeasureAdjustmentInsufficientSample(t *testing.T) {
	rows := absenceRows(2, 30, 5, 10, 3, 2)

	_, err := engine.MeasureAdjustment(rows, testBaseline)
	if !errors.Is(err, engine.ErrInsufficientSample) {
		t.Errorf("err = %v, want ErrInsufficientSample for a 2-game window", err)
	}
}

func TestMeasureAdjustmentZeroAttemptsNeutral(t *testing.T) {
	// No field-goal attempts inside the window: shooting stays neutral.
	rows := absenceRows(4, 30, 0, 0, 0.2625, 0.1875)

	adj, err := engine.MeasureAdjustment(rows, testBaseline)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if adj.ShootingBoost != 0 {
		t.Errorf("ShootingBoost = %f, want 0 when the window has no attempts", adj.ShootingBoost)
	}
}

func TestFallbackAdjustmentTable(t *testing.T) {
	tests := []struct {
		stat           models.StatType
		wantShooting   float64
		wantRebounding float64
		wantAssists    float64
	}{
		{models.StatPoints, 0.20, 0.10, 0.10},
		{models.StatRebounds, 0.10, 0.50, 0.20},
		{models.StatAssists, 0.30, 0.10, 0.40},
		{"steals", 0.20, 0.10, 0.10}, // unknown stat defaults to the points row
	}

	for _, tt := range tests {
		t.Run(string(tt.stat), func(t *testing.T) {
			adj := engine.FallbackAdjustment(tt.stat)
			if adj.ShootingBoost != tt.wantShooting ||
				adj.ReboundingBoost != tt.wantRebounding ||
				adj.AssistBoost != tt.wantAssists {
				t.Errorf("FallbackAdjustment(%s) = %+v, want %v/%v/%v",
					tt.stat, adj, tt.wantShooting, tt.wantRebounding, tt.wantAssists)
			}
			if adj.GamesAnalyzed != 0 {
				t.Errorf("fallback GamesAnalyzed = %d, want 0", adj.GamesAnalyzed)
			}
		})
	}
}
