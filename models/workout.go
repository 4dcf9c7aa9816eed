package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Workout categories accepted by the API.
var WorkoutTypes = []string{"Cardio", "Strength", "Yoga", "Running", "Swimming", "Cycling", "Other"}

type Workout struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID         primitive.ObjectID `bson:"user" json:"user"`
	Type           string             `bson:"type" json:"type"`
	Duration       int                `bson:"duration" json:"duration"`
	CaloriesBurned int                `bson:"caloriesBurned" json:"caloriesBurned"`
	Date           time.Time          `bson:"date" json:"date"`
	Notes          string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (w Workout) OwnerID() primitive.ObjectID { return w.UserID }
