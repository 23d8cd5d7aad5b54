package casino

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
	// Redis keys for the ledger snapshot
	ledgerKey = "casino:ledger"
	metaKey   = "casino:meta"

	metaFieldSnapshotID = "snapshot_id"
	metaFieldSavedAt    = "saved_at"
)

// Config holds configuration for the Redis casino repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed casino repository
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

// SaveLedger replaces the stored snapshot with the given entries
func (r *redisRepository) SaveLedger(ctx context.Context, input *SaveLedgerInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	// Marshal every entry before touching Redis so a bad entry cannot
	// leave a half-written snapshot
	entriesJSON := make(map[string]string, len(input.Entries))
	for playerID, entry := range input.Entries {
		if playerID == "" || entry == nil {
			return errors.New("ledger entries cannot have empty IDs or nil values")
		}

		entryJSON, err := json.Marshal(entry)
		if err != nil {
			return fmt.Errorf("failed to marshal ledger entry %s: %w", playerID, err)
		}
		entriesJSON[playerID] = string(entryJSON)
	}

	// Replace the snapshot in a single pipeline
	pipe := r.client.Pipeline()
	pipe.Del(ctx, ledgerKey)

	for playerID, entryJSON := range entriesJSON {
		pipe.HSet(ctx, ledgerKey, playerID, entryJSON)
	}

	pipe.HSet(ctx, metaKey,
		metaFieldSnapshotID, uuid.New().String(),
		metaFieldSavedAt, time.Now().UTC().Format(time.RFC3339Nano),
	)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save ledger snapshot: %w", err)
	}

	return nil
}

// LoadLedger retrieves the most recent snapshot. A missing snapshot is
// not an error; it yields an empty ledger.
func (r *redisRepository) LoadLedger(ctx context.Context, input *LoadLedgerInput) (*LoadLedgerOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	entriesJSON, err := r.client.HGetAll(ctx, ledgerKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger snapshot: %w", err)
	}

	entries := make(map[string]*models.LedgerEntry, len(entriesJSON))
	for playerID, entryJSON := range entriesJSON {
		var entry models.LedgerEntry
		if err := json.Unmarshal([]byte(entryJSON), &entry); err != nil {
			return nil, fmt.Errorf("failed to unmarshal ledger entry %s: %w", playerID, err)
		}

		entries[playerID] = &entry
	}

	output := &LoadLedgerOutput{
		Entries: entries,
	}

	meta, err := r.client.HGetAll(ctx, metaKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger snapshot metadata: %w", err)
	}

	output.SnapshotID = meta[metaFieldSnapshotID]
	if savedAt, ok := meta[metaFieldSavedAt]; ok {
		if parsed, err := time.Parse(time.RFC3339Nano, savedAt); err == nil {
			output.SavedAt = parsed
		}
	}

	return output, nil
}
