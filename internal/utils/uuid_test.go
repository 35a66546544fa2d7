package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTraceID_IsUUIDv7(t *testing.T) {
	id, err := uuid.Parse(NewTraceID())

	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
}

func TestNewTraceID_Unique(t *testing.T) {
	assert.NotEqual(t, NewTraceID(), NewTraceID())
}
