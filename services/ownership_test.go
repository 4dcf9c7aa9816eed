package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/wassim-hamila/back-end/models"
)

func TestCanAccess(t *testing.T) {
	owner := primitive.NewObjectID()
	stranger := primitive.NewObjectID()

	workout := models.Workout{UserID: owner}
	goal := models.Goal{UserID: owner}
	meal := models.Meal{UserID: owner}

	assert.True(t, CanAccess(owner, workout))
	assert.True(t, CanAccess(owner, goal))
	assert.True(t, CanAccess(owner, meal))

	assert.False(t, CanAccess(stranger, workout))
	assert.False(t, CanAccess(stranger, goal))
	assert.False(t, CanAccess(stranger, meal))
}
