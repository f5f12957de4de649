package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/courtsignal/services/lineup-engine/pkg/models"
	_ "github.com/lib/pq"
)

// Client reads player game logs from Postgres. It implements
// contracts.GameLogStore.
type Client struct {
	db *sql.DB
}

// NewClient opens a pooled connection to the game-log database and verifies
// it with a ping.
func NewClient(dsn string) (*Client, error) {
	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Client{db: sqlDB}, nil
}

// Close closes the underlying connection pool.
func (c *Client) Close() error {
	return c.db.Close()
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

const gameLogColumns = `
	player_name, team, game_date,
	COALESCE(minutes, 0), COALESCE(fgm, 0), COALESCE(fga, 0),
	COALESCE(rebounds, 0), COALESCE(assists, 0), COALESCE(points, 0)
`

// QueryByPlayerAndWindow returns one player's game logs for a team within
// the window, ordered by game date ascending.
func (c *Client) QueryByPlayerAndWindow(ctx context.Context, playerName, team string, window models.Window) ([]models.GameLogRecord, error) {
	query := `
		SELECT ` + gameLogColumns + `
		FROM player_game_logs
		WHERE player_name = $1 AND team = $2
		  AND game_date BETWEEN $3 AND $4
		ORDER BY game_date ASC
	`

	rows, err := c.db.QueryContext(ctx, query, playerName, team, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("failed to query player game logs: %w", err)
	}
	defer rows.Close()

	return scanGameLogs(rows)
}

// QueryByTeamAndWindow returns game logs for every rostered player on the
// team within the window.
func (c *Client) QueryByTeamAndWindow(ctx context.Context, team string, window models.Window) ([]models.GameLogRecord, error) {
	query := `
		SELECT ` + gameLogColumns + `
		FROM player_game_logs
		WHERE team = $1
		  AND game_date BETWEEN $2 AND $3
		ORDER BY game_date ASC, player_name ASC
	`

	rows, err := c.db.QueryContext(ctx, query, team, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("failed to query team game logs: %w", err)
	}
	defer rows.Close()

	return scanGameLogs(rows)
}

func scanGameLogs(rows *sql.Rows) ([]models.GameLogRecord, error) {
	logs := make([]models.GameLogRecord, 0)

	for rows.Next() {
		var r models.GameLogRecord
		if err := rows.Scan(
			&r.PlayerName,
			&r.Team,
			&r.GameDate,
			&r.Minutes,
			&r.FGM,
			&r.FGA,
			&r.Rebounds,
			&r.Assists,
			&r.Points,
		); err != nil {
			return nil, fmt.Errorf("failed to scan game log row: %w", err)
		}
		logs = append(logs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating game log rows: %w", err)
	}

	return logs, nil
}
