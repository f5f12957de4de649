package engine_test

import (
	"math"
	"testing"
	"time"

	"github.com/courtsignal/services/lineup-engine/internal/engine"
	"github.com/courtsignal/services/lineup-engine/pkg/models"
)

func gameDate(day int) time.Time {
	return time.Date(2025, time.January, day, 0, 0, 0, 0, time.UTC)
}

func TestComputeBaseline(t *testing.T) {
	rows := []models.GameLogRecord{
		{PlayerName: "Teammate One", Team: "LVA", GameDate: gameDate(1), Minutes: 30, FGM: 9, FGA: 20, Rebounds: 5, Assists: 3},
		{PlayerName: "Teammate One", Team: "LVA", GameDate: gameDate(2), Minutes: 30, FGM: 9, FGA: 20, Rebounds: 5, Assists: 3},
		{PlayerName: "Teammate Two", Team: "LVA", GameDate: gameDate(1), Minutes: 20, FGM: 9, FGA: 20, Rebounds: 4, Assists: 2},
	}

	baseline := engine.ComputeBaseline(rows, "Subject Player")

	// 27 FGM on 60 FGA
	if math.Abs(baseline.ShootingEfficiency-0.45) > 0.0001 {
		t.Errorf("ShootingEfficiency = %f, want 0.45", baseline.ShootingEfficiency)
	}
	// 14 rebounds over 80 minutes, per 40
	if math.Abs(baseline.ReboundingRatePer40-7.0) > 0.0001 {
		t.Errorf("ReboundingRatePer40 = %f, want 7.0", baseline.ReboundingRatePer40)
	}
	// 8 assists over 80 minutes, per 40
	if math.Abs(baseline.AssistRatePer40-4.0) > 0.0001 {
		t.Errorf("AssistRatePer40 = %f, want 4.0", baseline.AssistRatePer40)
	}
}

func TestComputeBaselineExcludesSubject(t *testing.T) {
	rows := []models.GameLogRecord{
		{PlayerName: "Subject Player", Team: "LVA", GameDate: gameDate(1), Minutes: 30, FGM: 10, FGA: 10, Rebounds: 10, Assists: 10},
		{PlayerName: "Teammate One", Team: "LVA", GameDate: gameDate(1), Minutes: 40, FGM: 5, FGA: 10, Rebounds: 4, Assists: 2},
	}

	baseline := engine.ComputeBaseline(rows, "Subject Player")

	if math.Abs(baseline.ShootingEfficiency-0.5) > 0.0001 {
		t.Errorf("ShootingEfficiency = %f, want 0.5 (subject rows must be excluded)", baseline.ShootingEfficiency)
	}
}

func TestComputeBaselineSkipsNonQualifyingRows(t *testing.T) {
	rows := []models.GameLogRecord{
		{PlayerName: "Teammate One", Team: "LVA", GameDate: gameDate(1), Minutes: 10, FGM: 0, FGA: 10},
		{PlayerName: "Teammate One", Team: "LVA", GameDate: gameDate(2), Minutes: 30, FGM: 6, FGA: 10},
	}

	baseline := engine.ComputeBaseline(rows, "Subject Player")

	if math.Abs(baseline.ShootingEfficiency-0.6) > 0.0001 {
		t.Errorf("ShootingEfficiency = %f, want 0.6 (sub-15-minute rows must be excluded)", baseline.ShootingEfficiency)
	}
}

func TestComputeBaselineDefaults(t *testing.T) {
	tests := []struct {
		name string
		rows []models.GameLogRecord
	}{
		{"no rows at all", nil},
		{"only subject rows", []models.GameLogRecord{
			{PlayerName: "Subject Player", Team: "LVA", GameDate: gameDate(1), Minutes: 30, FGM: 5, FGA: 10},
		}},
		{"zero recorded attempts", []models.GameLogRecord{
			{PlayerName: "Teammate One", Team: "LVA", GameDate: gameDate(1), Minutes: 0, FGA: 0},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			baseline := engine.ComputeBaseline(tt.rows, "Subject Player")

			if baseline.ShootingEfficiency != 0.45 {
				t.Errorf("ShootingEfficiency = %f, want exactly 0.45", baseline.ShootingEfficiency)
			}
			if baseline.ReboundingRatePer40 != 0.35 {
				t.Errorf("ReboundingRatePer40 = %f, want exactly 0.35", baseline.ReboundingRatePer40)
			}
			if baseline.AssistRatePer40 != 0.25 {
				t.Errorf("AssistRatePer40 = %f, want exactly 0.25", baseline.AssistRatePer40)
			}
			if math.IsNaN(baseline.ShootingEfficiency) || math.IsInf(baseline.ShootingEfficiency, 0) {
				t.Error("ShootingEfficiency must never be NaN or Inf")
			}
		})
	}
}
