package match

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/parlorbot/parlor/internal/models"
)

const (
	// Key prefixes for Redis
	matchKeyPrefix   = "match:"
	historyKeyPrefix = "match_history:"
)

// ErrMatchNotFound is returned when a match is not found
var ErrMatchNotFound = errors.New("match not found")

// Config holds configuration for the Redis match repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed match repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func matchKey(matchID string) string {
	return matchKeyPrefix + matchID
}

func historyKey(guildID, playerID string) string {
	return fmt.Sprintf("%s%s:%s", historyKeyPrefix, guildID, playerID)
}

// RecordMatch persists a match and pushes it onto every participant's
// history list in one transaction
func (r *redisRepository) RecordMatch(ctx context.Context, input *RecordMatchInput) error {
	if input == nil || input.Match == nil {
		return errors.New("input and match cannot be nil")
	}

	m := input.Match
	if m.ID == "" {
		return errors.New("match ID cannot be empty")
	}
	if m.GuildID == "" {
		return errors.New("match guild ID cannot be empty")
	}
	if len(m.Participants) == 0 {
		return errors.New("match must have participants")
	}

	matchJSON, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal match: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, matchKey(m.ID), matchJSON, 0)
	for _, participant := range m.Participants {
		pipe.LPush(ctx, historyKey(m.GuildID, participant.PlayerID), m.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record match: %w", err)
	}

	return nil
}

// GetMatch retrieves a match by ID
func (r *redisRepository) GetMatch(ctx context.Context, input *GetMatchInput) (*models.Match, error) {
	if input == nil || input.MatchID == "" {
		return nil, errors.New("input and match ID cannot be empty")
	}

	matchJSON, err := r.client.Get(ctx, matchKey(input.MatchID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	var m models.Match
	if err := json.Unmarshal([]byte(matchJSON), &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match: %w", err)
	}

	return &m, nil
}

// GetMatchHistory retrieves a player's matches, most recent first
func (r *redisRepository) GetMatchHistory(ctx context.Context, input *GetMatchHistoryInput) (*GetMatchHistoryOutput, error) {
	if input == nil || input.GuildID == "" || input.PlayerID == "" {
		return nil, errors.New("input, guild ID and player ID cannot be empty")
	}

	stop := int64(-1)
	if input.Limit > 0 {
		stop = int64(input.Limit) - 1
	}

	matchIDs, err := r.client.LRange(ctx, historyKey(input.GuildID, input.PlayerID), 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get match history: %w", err)
	}

	output := &GetMatchHistoryOutput{
		Matches: make([]*models.Match, 0, len(matchIDs)),
	}
	if len(matchIDs) == 0 {
		return output, nil
	}

	pipe := r.client.Pipeline()
	commands := make([]*redis.StringCmd, len(matchIDs))
	for i, matchID := range matchIDs {
		commands[i] = pipe.Get(ctx, matchKey(matchID))
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get match history entries: %w", err)
	}

	for i, cmd := range commands {
		matchJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Match record expired or was deleted; skip the dangling ID
				continue
			}
			return nil, fmt.Errorf("failed to get match %s: %w", matchIDs[i], err)
		}

		var m models.Match
		if err := json.Unmarshal([]byte(matchJSON), &m); err != nil {
			return nil, fmt.Errorf("failed to unmarshal match %s: %w", matchIDs[i], err)
		}
		output.Matches = append(output.Matches, &m)
	}

	return output, nil
}
