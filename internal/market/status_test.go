package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusTransitions(t *testing.T) {
	assert.True(t, CanTransition(StatusPending, StatusAccepted))
	assert.True(t, CanTransition(StatusPending, StatusRejected))
	assert.True(t, CanTransition(StatusAccepted, StatusCompleted))

	assert.False(t, CanTransition(StatusPending, StatusCompleted))
	assert.False(t, CanTransition(StatusAccepted, StatusRejected))
	assert.False(t, CanTransition(StatusRejected, StatusAccepted))
	assert.False(t, CanTransition(StatusCompleted, StatusPending))
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusAccepted))
	assert.False(t, ValidStatus(Status("shipped")))
}
