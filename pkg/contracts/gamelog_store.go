package contracts

import (
	"context"

	"github.com/courtsignal/services/lineup-engine/pkg/models"
)

// GameLogStore is the engine's only collaborator: a read-only view of
// per-game player statistics. Implementations must treat absent numeric
// fields as 0.
type GameLogStore interface {
	// QueryByPlayerAndWindow returns one player's game logs for a team
	// within the window, ordered by game date ascending.
	QueryByPlayerAndWindow(ctx context.Context, playerName, team string, window models.Window) ([]models.GameLogRecord, error)

	// QueryByTeamAndWindow returns game logs for every rostered player on
	// the team within the window.
	QueryByTeamAndWindow(ctx context.Context, team string, window models.Window) ([]models.GameLogRecord, error)
}
