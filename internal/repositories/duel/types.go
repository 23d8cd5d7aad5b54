package duel

import (
	"time"

	"github.com/siguint/ayabot/internal/models"
)

// SaveRecordsInput contains the full set of duel records to snapshot
type SaveRecordsInput struct {
	// Records maps player ID to lifetime duel record
	Records map[string]*models.DuelRecord
}

// LoadRecordsInput contains parameters for loading a snapshot
type LoadRecordsInput struct{}

// LoadRecordsOutput contains the restored duel records
type LoadRecordsOutput struct {
	// Records maps player ID to lifetime duel record; empty when no
	// snapshot exists
	Records map[string]*models.DuelRecord

	// SnapshotID identifies the snapshot that was loaded
	SnapshotID string

	// SavedAt is when the snapshot was written
	SavedAt time.Time
}
