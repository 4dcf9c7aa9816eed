package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecomputeCompletion(t *testing.T) {
	goal := Goal{TargetValue: 100, CurrentValue: 50}
	goal.RecomputeCompletion()
	assert.False(t, goal.IsCompleted)

	goal.CurrentValue = 100
	goal.RecomputeCompletion()
	assert.True(t, goal.IsCompleted)

	goal.CurrentValue = 150
	goal.RecomputeCompletion()
	assert.True(t, goal.IsCompleted)
}

func TestRecomputeCompletionTargetLowered(t *testing.T) {
	goal := Goal{TargetValue: 100, CurrentValue: 80}
	goal.RecomputeCompletion()
	assert.False(t, goal.IsCompleted)

	// lowering the target below the current value completes the goal
	goal.TargetValue = 50
	goal.RecomputeCompletion()
	assert.True(t, goal.IsCompleted)

	// raising it back un-completes it: the flag always mirrors the values
	goal.TargetValue = 200
	goal.RecomputeCompletion()
	assert.False(t, goal.IsCompleted)
}
