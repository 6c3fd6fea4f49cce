package i

import (
	"time"
)

// Tokenizer defines methods for issuing and checking API tokens.
type Tokenizer interface {
	// Generate creates a signed token for subject that expires after expTime.
	Generate(subject string, expTime time.Duration) (string, error)

	// Decode validates a token and returns the subject it was issued to.
	Decode(token string) (string, error)
}
