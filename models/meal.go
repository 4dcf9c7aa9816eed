package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var MealTypes = []string{"Breakfast", "Lunch", "Dinner", "Snack"}

type FoodItem struct {
	Name     string  `bson:"name" json:"name"`
	Quantity float64 `bson:"quantity" json:"quantity"`
	Calories int     `bson:"calories" json:"calories"`
}

type Meal struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID        primitive.ObjectID `bson:"user" json:"user"`
	MealType      string             `bson:"mealType" json:"mealType"`
	Foods         []FoodItem         `bson:"foods" json:"foods"`
	TotalCalories int                `bson:"totalCalories" json:"totalCalories"`
	Date          time.Time          `bson:"date" json:"date"`
	Notes         string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (m Meal) OwnerID() primitive.ObjectID { return m.UserID }

// RecalculateTotal derives totalCalories from the food entries. Runs right
// before every persist so the stored total never drifts from the list.
func (m *Meal) RecalculateTotal() {
	total := 0
	for _, f := range m.Foods {
		total += f.Calories
	}
	m.TotalCalories = total
}
