package casino

import (
	"time"

	"github.com/siguint/ayabot/internal/models"
)

// SaveLedgerInput contains the full ledger to snapshot
type SaveLedgerInput struct {
	// Entries maps player ID to ledger entry
	Entries map[string]*models.LedgerEntry
}

// LoadLedgerInput contains parameters for loading a snapshot
type LoadLedgerInput struct{}

// LoadLedgerOutput contains the restored ledger
type LoadLedgerOutput struct {
	// Entries maps player ID to ledger entry; empty when no snapshot exists
	Entries map[string]*models.LedgerEntry

	// SnapshotID identifies the snapshot that was loaded
	SnapshotID string

	// SavedAt is when the snapshot was written
	SavedAt time.Time
}
