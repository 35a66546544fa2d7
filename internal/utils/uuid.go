package utils

import "github.com/google/uuid"

// NewTraceID returns a time-ordered identifier for request tracing. It
// prefers UUIDv7 and falls back to a random UUIDv4.
func NewTraceID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
