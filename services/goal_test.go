package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateDeadline(t *testing.T) {
	now := time.Now()

	assert.Error(t, ValidateDeadline(now.Add(-time.Hour), now))
	assert.Error(t, ValidateDeadline(now, now), "deadline equal to now is rejected")
	assert.NoError(t, ValidateDeadline(now.Add(time.Second), now))
}
