package engine

// EngineError is a custom error type for engine-related errors
type EngineError string

// Error implements the error interface
func (e EngineError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig EngineError = "config cannot be nil"
	ErrNilCasino EngineError = "casino service cannot be nil"
	ErrNilDuel   EngineError = "duel service cannot be nil"
	ErrNilInput  EngineError = "input cannot be nil"
)
