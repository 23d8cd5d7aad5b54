package models

import (
	"time"
)

// Participant identifies one side of a duel. The display name is
// snapshotted when the duel opens so duel text stays stable even if the
// player renames themselves mid-duel.
type Participant struct {
	// PlayerID is the Discord user ID of the participant
	PlayerID string

	// Name is the display name captured when the duel opened
	Name string
}

// Duel represents an in-flight duel, keyed by the ID of the announcement
// message that represents it
type Duel struct {
	// Key is the announcement message ID
	Key string

	// First is the challenger
	First Participant

	// Second is the challenged player
	Second Participant

	// FirstThrow is the challenger's throw value, nil until they act
	FirstThrow *int

	// SecondThrow is the challenged player's throw value, nil until they act
	SecondThrow *int

	// PenaltyMinutes is the mute duration staked on the duel
	PenaltyMinutes int

	// CreatedAt is when the duel was opened
	CreatedAt time.Time

	// RollMessageIDs are auxiliary roll messages to clean up after resolution
	RollMessageIDs []string
}

// Clone returns an independent copy of the duel
func (d *Duel) Clone() *Duel {
	if d == nil {
		return nil
	}

	clone := *d
	if d.FirstThrow != nil {
		v := *d.FirstThrow
		clone.FirstThrow = &v
	}
	if d.SecondThrow != nil {
		v := *d.SecondThrow
		clone.SecondThrow = &v
	}
	clone.RollMessageIDs = append([]string(nil), d.RollMessageIDs...)

	return &clone
}

// DuelRecord tracks a player's lifetime duel results
type DuelRecord struct {
	// PlayerID is the Discord user ID of the player
	PlayerID string

	// Name is the display name captured the last time the player
	// opened or was challenged to a duel
	Name string

	// Wins is the number of duels the player has won
	Wins int

	// Losses is the number of duels the player has lost
	Losses int
}

// Clone returns an independent copy of the record
func (r *DuelRecord) Clone() *DuelRecord {
	if r == nil {
		return nil
	}

	clone := *r
	return &clone
}
