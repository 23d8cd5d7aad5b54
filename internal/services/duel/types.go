package duel

import (
	"github.com/siguint/ayabot/internal/models"
)

// VerdictKind classifies the result of registering a throw
type VerdictKind string

const (
	// VerdictNone means the throw was ignored: unknown duel, player not
	// a participant, or their slot was already filled
	VerdictNone VerdictKind = "none"

	// VerdictPending means the throw was recorded and the duel waits
	// for the other participant
	VerdictPending VerdictKind = "pending"

	// VerdictDraw means both throws were equal; nobody's record changed
	VerdictDraw VerdictKind = "draw"

	// VerdictDecisive means one participant won and the records were
	// updated
	VerdictDecisive VerdictKind = "decisive"
)

// Verdict carries everything needed to render the result of a throw.
// It is computed in the same critical section that resolves the duel,
// so the caller never has to look the duel up again.
type Verdict struct {
	// Kind classifies the verdict
	Kind VerdictKind

	// WinnerID and WinnerName identify the winner on a decisive verdict
	WinnerID   string
	WinnerName string

	// LoserID and LoserName identify the loser on a decisive verdict
	LoserID   string
	LoserName string

	// WinnerThrow and LoserThrow are the resolved throw values. On a
	// draw both hold the tied value.
	WinnerThrow int
	LoserThrow  int

	// PenaltyMinutes is the mute duration recorded when the duel opened
	PenaltyMinutes int

	// RollMessageIDs are the auxiliary roll messages to delete once the
	// duel is resolved
	RollMessageIDs []string
}

// OpenInput contains parameters for opening a duel
type OpenInput struct {
	// Key is the announcement message ID; reusing a key silently
	// replaces the prior duel
	Key string

	// FirstID and FirstName identify the challenger
	FirstID   string
	FirstName string

	// SecondID and SecondName identify the challenged player
	SecondID   string
	SecondName string

	// PenaltyMinutes is the mute duration staked on the duel; the
	// caller clamps it before it gets here
	PenaltyMinutes int
}

// OpenOutput contains the result of opening a duel
type OpenOutput struct {
	// Duel is a copy of the newly opened duel
	Duel *models.Duel

	// Replaced is true when the key was already in use
	Replaced bool
}

// RegisterThrowInput contains parameters for registering a throw
type RegisterThrowInput struct {
	// Key is the announcement message ID of the duel
	Key string

	// PlayerID is the throwing player
	PlayerID string

	// Value is the throw value
	Value int

	// RollMessageID is the ID of the message showing this roll, kept
	// for post-resolution cleanup
	RollMessageID string
}

// RegisterThrowOutput contains the verdict for a registered throw
type RegisterThrowOutput struct {
	Verdict *Verdict
}

// CanActInput contains parameters for the can-act check
type CanActInput struct {
	// Key is the announcement message ID of the duel
	Key string

	// PlayerID is the player asking to throw
	PlayerID string
}

// CanActOutput contains the result of the can-act check
type CanActOutput struct {
	// CanAct is true when the duel exists, the player is a participant,
	// and their slot is still empty
	CanAct bool
}

// GetStandingsInput contains parameters for retrieving duel standings
type GetStandingsInput struct{}

// GetStandingsOutput contains the ordered duel standings
type GetStandingsOutput struct {
	// Records is sorted by wins descending; ties keep the order players
	// first appeared in a duel
	Records []*models.DuelRecord
}

// SaveInput contains parameters for saving the duel records
type SaveInput struct{}

// SaveOutput contains the result of a save
type SaveOutput struct {
	// PlayersSaved is the number of records written
	PlayersSaved int
}

// LoadInput contains parameters for loading the duel records
type LoadInput struct{}

// LoadOutput contains the result of a load
type LoadOutput struct {
	// PlayersLoaded is the number of records restored
	PlayersLoaded int
}
