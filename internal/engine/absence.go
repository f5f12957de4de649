package engine

import "github.com/courtsignal/services/lineup-engine/pkg/models"

// AppearanceIndex maps each player in the team rows to the set of date keys
// on which they have any row at all, qualifying or not. A player who dressed
// and logged 0 minutes still counts as present on that date; the logs carry
// no authoritative injury status, so row existence is the only signal.
func AppearanceIndex(teamRows []models.GameLogRecord) map[string]map[string]bool {
	index := make(map[string]map[string]bool)
	for _, r := range teamRows {
		dates, ok := index[r.PlayerName]
		if !ok {
			dates = make(map[string]bool)
			index[r.PlayerName] = dates
		}
		dates[r.DateKey()] = true
	}
	return index
}

// AbsenceWindow returns the subject's qualifying rows on dates the teammate
// has no row: the set-difference of the subject's qualifying dates and the
// teammate's appearance dates.
func AbsenceWindow(subjectRows []models.GameLogRecord, teammateDates map[string]bool) []models.GameLogRecord {
	window := make([]models.GameLogRecord, 0, len(subjectRows))
	for _, r := range subjectRows {
		if !r.Qualifying() {
			continue
		}
		if teammateDates[r.DateKey()] {
			continue
		}
		window = append(window, r)
	}
	return window
}
