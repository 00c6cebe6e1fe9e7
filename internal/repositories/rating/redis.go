package rating

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
	ratingKeyPrefix      = "rating:"
	leaderboardKeyPrefix = "leaderboard:"
)

// ErrRatingNotFound is returned when a player has no rating record for the
// guild and game type
var ErrRatingNotFound = errors.New("rating not found")

// Config holds configuration for the Redis rating repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed rating repository
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

func ratingKey(guildID, gameType, playerID string) string {
	return fmt.Sprintf("%s%s:%s:%s", ratingKeyPrefix, guildID, gameType, playerID)
}

func leaderboardKey(guildID, gameType string) string {
	return fmt.Sprintf("%s%s:%s", leaderboardKeyPrefix, guildID, gameType)
}

// GetRating retrieves one rating record from Redis
func (r *redisRepository) GetRating(ctx context.Context, input *GetRatingInput) (*models.RatingRecord, error) {
	if input == nil || input.GuildID == "" || input.GameType == "" || input.PlayerID == "" {
		return nil, errors.New("input, guild ID, game type and player ID cannot be empty")
	}

	ratingJSON, err := r.client.Get(ctx, ratingKey(input.GuildID, input.GameType, input.PlayerID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrRatingNotFound
		}
		return nil, fmt.Errorf("failed to get rating: %w", err)
	}

	var record models.RatingRecord
	if err := json.Unmarshal([]byte(ratingJSON), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal rating: %w", err)
	}

	return &record, nil
}

// GetRatings retrieves several rating records using a pipeline. Players
// without a record are simply absent from the output map.
func (r *redisRepository) GetRatings(ctx context.Context, input *GetRatingsInput) (*GetRatingsOutput, error) {
	if input == nil || input.GuildID == "" || input.GameType == "" {
		return nil, errors.New("input, guild ID and game type cannot be empty")
	}

	output := &GetRatingsOutput{
		Ratings: make(map[string]*models.RatingRecord, len(input.PlayerIDs)),
	}
	if len(input.PlayerIDs) == 0 {
		return output, nil
	}

	pipe := r.client.Pipeline()
	commands := make(map[string]*redis.StringCmd, len(input.PlayerIDs))
	for _, playerID := range input.PlayerIDs {
		commands[playerID] = pipe.Get(ctx, ratingKey(input.GuildID, input.GameType, playerID))
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get ratings: %w", err)
	}

	for playerID, cmd := range commands {
		ratingJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get rating for %s: %w", playerID, err)
		}

		var record models.RatingRecord
		if err := json.Unmarshal([]byte(ratingJSON), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal rating for %s: %w", playerID, err)
		}
		output.Ratings[playerID] = &record
	}

	return output, nil
}

// UpsertRating saves a rating record and its leaderboard score in one
// transaction
func (r *redisRepository) UpsertRating(ctx context.Context, input *UpsertRatingInput) error {
	if input == nil || input.Rating == nil {
		return errors.New("input and rating cannot be nil")
	}

	record := input.Rating
	if record.GuildID == "" || record.GameType == "" || record.PlayerID == "" {
		return errors.New("rating guild ID, game type and player ID cannot be empty")
	}
	if record.Sigma < 0 {
		return errors.New("rating sigma cannot be negative")
	}

	ratingJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal rating: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, ratingKey(record.GuildID, record.GameType, record.PlayerID), ratingJSON, 0)
	pipe.ZAdd(ctx, leaderboardKey(record.GuildID, record.GameType), redis.Z{
		Score:  record.Conservative(),
		Member: record.PlayerID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to upsert rating: %w", err)
	}

	return nil
}

// GetLeaderboard retrieves the top rating records ordered by conservative
// rating, best first
func (r *redisRepository) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	if input == nil || input.GuildID == "" || input.GameType == "" {
		return nil, errors.New("input, guild ID and game type cannot be empty")
	}

	stop := int64(-1)
	if input.Limit > 0 {
		stop = int64(input.Limit) - 1
	}

	playerIDs, err := r.client.ZRevRange(ctx, leaderboardKey(input.GuildID, input.GameType), 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	output := &GetLeaderboardOutput{
		Entries: make([]*models.RatingRecord, 0, len(playerIDs)),
	}
	if len(playerIDs) == 0 {
		return output, nil
	}

	pipe := r.client.Pipeline()
	commands := make([]*redis.StringCmd, len(playerIDs))
	for i, playerID := range playerIDs {
		commands[i] = pipe.Get(ctx, ratingKey(input.GuildID, input.GameType, playerID))
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get leaderboard entries: %w", err)
	}

	for i, cmd := range commands {
		ratingJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Record deleted between the range and the fetch
				continue
			}
			return nil, fmt.Errorf("failed to get leaderboard entry %s: %w", playerIDs[i], err)
		}

		var record models.RatingRecord
		if err := json.Unmarshal([]byte(ratingJSON), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal leaderboard entry %s: %w", playerIDs[i], err)
		}
		output.Entries = append(output.Entries, &record)
	}

	return output, nil
}

// ResetRating removes a rating record and its leaderboard entry
func (r *redisRepository) ResetRating(ctx context.Context, input *ResetRatingInput) error {
	if input == nil || input.GuildID == "" || input.GameType == "" || input.PlayerID == "" {
		return errors.New("input, guild ID, game type and player ID cannot be empty")
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, ratingKey(input.GuildID, input.GameType, input.PlayerID))
	pipe.ZRem(ctx, leaderboardKey(input.GuildID, input.GameType), input.PlayerID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to reset rating: %w", err)
	}

	return nil
}
