package casino

// CasinoError is a custom error type for casino-related errors
type CasinoError string

// Error implements the error interface
func (e CasinoError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig       CasinoError = "config cannot be nil"
	ErrNilRepo         CasinoError = "casino repository cannot be nil"
	ErrNilInput        CasinoError = "input cannot be nil"
	ErrMissingPlayerID CasinoError = "player ID is required"
)
