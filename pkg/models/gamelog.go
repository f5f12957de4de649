package models

import "time"

// MinQualifyingMinutes filters out garbage-time appearances. A row below
// this threshold still marks the player as present for absence detection,
// but is excluded from rate calculations.
const MinQualifyingMinutes = 15.0

// GameLogRecord is one player's line from one game. Numeric fields absent
// in the source data are stored as 0.
type GameLogRecord struct {
	PlayerName string    `json:"player_name"`
	Team       string    `json:"team"`
	GameDate   time.Time `json:"game_date"`
	Minutes    float64   `json:"minutes"`
	FGM        float64   `json:"fgm"`
	FGA        float64   `json:"fga"`
	Rebounds   float64   `json:"rebounds"`
	Assists    float64   `json:"assists"`
	Points     float64   `json:"points"`
}

// DateKey collapses the game date to day granularity. All presence/absence
// set operations compare these keys, never raw timestamps.
func (r GameLogRecord) DateKey() string {
	return r.GameDate.Format("2006-01-02")
}

// Qualifying reports whether the row carries enough minutes to be used in
// rate calculations.
func (r GameLogRecord) Qualifying() bool {
	return r.Minutes >= MinQualifyingMinutes
}

// Window bounds a game-log query, inclusive on both ends.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// SeasonWindow returns the NBA season window containing t: Oct 1 through
// the following Jun 30.
func SeasonWindow(t time.Time) Window {
	year := t.Year()
	if t.Month() < time.July {
		year--
	}
	return Window{
		Start: time.Date(year, time.October, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(year+1, time.June, 30, 0, 0, 0, 0, time.UTC),
	}
}
