package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Goal categories accepted by the API.
var GoalTypes = []string{"Weight", "TrainingHours", "CaloriesBurned", "Distance", "Other"}

type Goal struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID       primitive.ObjectID `bson:"user" json:"user"`
	Type         string             `bson:"type" json:"type"`
	TargetValue  float64            `bson:"targetValue" json:"targetValue"`
	CurrentValue float64            `bson:"currentValue" json:"currentValue"`
	Deadline     time.Time          `bson:"deadline" json:"deadline"`
	IsCompleted  bool               `bson:"isCompleted" json:"isCompleted"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (g Goal) OwnerID() primitive.ObjectID { return g.UserID }

// RecomputeCompletion derives isCompleted from the final field values.
// Runs once, right before every persist; the stored flag always satisfies
// isCompleted == (currentValue >= targetValue).
func (g *Goal) RecomputeCompletion() {
	g.IsCompleted = g.CurrentValue >= g.TargetValue
}
