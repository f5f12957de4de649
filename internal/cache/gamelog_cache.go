package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/courtsignal/services/lineup-engine/pkg/contracts"
	"github.com/courtsignal/services/lineup-engine/pkg/models"
	"github.com/redis/go-redis/v9"
)

// TTL constants
const (
	TeamWindowTTL   = 15 * time.Minute
	PlayerWindowTTL = 15 * time.Minute
)

// GameLogCache is a read-through Redis cache in front of a GameLogStore.
// Cache failures are logged and degrade to the backing store, so callers
// see the same behavior with or without Redis available.
type GameLogCache struct {
	client *redis.Client
	store  contracts.GameLogStore
}

// New creates a read-through cache over the given store.
func New(client *redis.Client, store contracts.GameLogStore) *GameLogCache {
	return &GameLogCache{
		client: client,
		store:  store,
	}
}

// QueryByPlayerAndWindow serves a player's window from cache when possible.
func (c *GameLogCache) QueryByPlayerAndWindow(ctx context.Context, playerName, team string, window models.Window) ([]models.GameLogRecord, error) {
	key := fmt.Sprintf("gamelogs:player:%s:%s:%s:%s",
		team, playerName, window.Start.Format("2006-01-02"), window.End.Format("2006-01-02"))

	if logs, ok := c.read(ctx, key); ok {
		return logs, nil
	}

	logs, err := c.store.QueryByPlayerAndWindow(ctx, playerName, team, window)
	if err != nil {
		return nil, err
	}

	c.write(ctx, key, logs, PlayerWindowTTL)
	return logs, nil
}

// QueryByTeamAndWindow serves a team's window from cache when possible.
func (c *GameLogCache) QueryByTeamAndWindow(ctx context.Context, team string, window models.Window) ([]models.GameLogRecord, error) {
	key := fmt.Sprintf("gamelogs:team:%s:%s:%s",
		team, window.Start.Format("2006-01-02"), window.End.Format("2006-01-02"))

	if logs, ok := c.read(ctx, key); ok {
		return logs, nil
	}

	logs, err := c.store.QueryByTeamAndWindow(ctx, team, window)
	if err != nil {
		return nil, err
	}

	c.write(ctx, key, logs, TeamWindowTTL)
	return logs, nil
}

func (c *GameLogCache) read(ctx context.Context, key string) ([]models.GameLogRecord, bool) {
	data, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		log.Printf("gamelog cache: read %s failed: %v", key, err)
		return nil, false
	}

	var logs []models.GameLogRecord
	if err := json.Unmarshal([]byte(data), &logs); err != nil {
		log.Printf("gamelog cache: unmarshal %s failed: %v", key, err)
		return nil, false
	}
	return logs, true
}

func (c *GameLogCache) write(ctx context.Context, key string, logs []models.GameLogRecord, ttl time.Duration) {
	data, err := json.Marshal(logs)
	if err != nil {
		log.Printf("gamelog cache: marshal %s failed: %v", key, err)
		return
	}

	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		log.Printf("gamelog cache: write %s failed: %v", key, err)
	}
}
