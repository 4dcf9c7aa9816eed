package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecalculateTotal(t *testing.T) {
	meal := Meal{
		Foods: []FoodItem{
			{Name: "Oats", Quantity: 80, Calories: 300},
			{Name: "Banana", Quantity: 1, Calories: 90},
		},
		TotalCalories: 9999, // stale value must be overwritten
	}
	meal.RecalculateTotal()
	assert.Equal(t, 390, meal.TotalCalories)

	meal.Foods = nil
	meal.RecalculateTotal()
	assert.Equal(t, 0, meal.TotalCalories)
}
