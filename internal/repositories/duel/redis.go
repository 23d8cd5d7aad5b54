package duel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/siguint/ayabot/internal/models"
)

const (
	// Redis keys for the duel record snapshot
	recordsKey = "duel:records"
	metaKey    = "duel:meta"

	metaFieldSnapshotID = "snapshot_id"
	metaFieldSavedAt    = "saved_at"
)

// Config holds configuration for the Redis duel repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed duel repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
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

// SaveRecords replaces the stored snapshot with the given records
func (r *redisRepository) SaveRecords(ctx context.Context, input *SaveRecordsInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	// Marshal every record before touching Redis so a bad record cannot
	// leave a half-written snapshot
	recordsJSON := make(map[string]string, len(input.Records))
	for playerID, record := range input.Records {
		if playerID == "" || record == nil {
			return errors.New("duel records cannot have empty IDs or nil values")
		}

		recordJSON, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("failed to marshal duel record %s: %w", playerID, err)
		}
		recordsJSON[playerID] = string(recordJSON)
	}

	// Replace the snapshot in a single pipeline
	pipe := r.client.Pipeline()
	pipe.Del(ctx, recordsKey)

	for playerID, recordJSON := range recordsJSON {
		pipe.HSet(ctx, recordsKey, playerID, recordJSON)
	}

	pipe.HSet(ctx, metaKey,
		metaFieldSnapshotID, uuid.New().String(),
		metaFieldSavedAt, time.Now().UTC().Format(time.RFC3339Nano),
	)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save duel record snapshot: %w", err)
	}

	return nil
}

// LoadRecords retrieves the most recent snapshot. A missing snapshot is
// not an error; it yields an empty record set.
func (r *redisRepository) LoadRecords(ctx context.Context, input *LoadRecordsInput) (*LoadRecordsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	recordsJSON, err := r.client.HGetAll(ctx, recordsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load duel record snapshot: %w", err)
	}

	records := make(map[string]*models.DuelRecord, len(recordsJSON))
	for playerID, recordJSON := range recordsJSON {
		var record models.DuelRecord
		if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal duel record %s: %w", playerID, err)
		}

		records[playerID] = &record
	}

	output := &LoadRecordsOutput{
		Records: records,
	}

	meta, err := r.client.HGetAll(ctx, metaKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load duel record snapshot metadata: %w", err)
	}

	output.SnapshotID = meta[metaFieldSnapshotID]
	if savedAt, ok := meta[metaFieldSavedAt]; ok {
		if parsed, err := time.Parse(time.RFC3339Nano, savedAt); err == nil {
			output.SavedAt = parsed
		}
	}

	return output, nil
}
