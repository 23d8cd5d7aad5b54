package duel

// DuelError is a custom error type for duel-related errors
type DuelError string

// Error implements the error interface
func (e DuelError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig       DuelError = "config cannot be nil"
	ErrNilRepo         DuelError = "duel repository cannot be nil"
	ErrNilClock        DuelError = "clock cannot be nil"
	ErrNilInput        DuelError = "input cannot be nil"
	ErrMissingKey      DuelError = "duel key is required"
	ErrMissingPlayerID DuelError = "player ID is required"
)
