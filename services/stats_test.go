package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/wassim-hamila/back-end/models"
)

func TestSummarizeWorkouts(t *testing.T) {
	now := time.Now()
	workouts := []models.Workout{
		{Type: "Cardio", CaloriesBurned: 100, Duration: 10, Date: now},
		{Type: "Running", CaloriesBurned: 200, Duration: 20, Date: now},
		{Type: "Cardio", CaloriesBurned: 300, Duration: 30, Date: now},
	}

	totals := SummarizeWorkouts(workouts)
	assert.Equal(t, 600, totals.TotalCalories)
	assert.Equal(t, 60, totals.TotalDuration)
	assert.Equal(t, 200.0, totals.AvgCalories)
	assert.Equal(t, 20.0, totals.AvgDuration)
}

func TestSummarizeWorkoutsEmpty(t *testing.T) {
	totals := SummarizeWorkouts(nil)
	assert.Equal(t, 0, totals.TotalCalories)
	assert.Equal(t, 0, totals.TotalDuration)
	assert.Equal(t, 0.0, totals.AvgCalories)
	assert.Equal(t, 0.0, totals.AvgDuration)
}

func TestBreakdownByTypeOrdering(t *testing.T) {
	workouts := []models.Workout{
		{Type: "Yoga", CaloriesBurned: 50, Duration: 30},
		{Type: "Cardio", CaloriesBurned: 100, Duration: 20},
		{Type: "Cardio", CaloriesBurned: 150, Duration: 25},
		{Type: "Running", CaloriesBurned: 200, Duration: 40},
	}

	breakdown := BreakdownByType(workouts)
	assert.Len(t, breakdown, 3)
	assert.Equal(t, "Cardio", breakdown[0].Type)
	assert.Equal(t, 2, breakdown[0].Count)
	assert.Equal(t, 250, breakdown[0].TotalCalories)
	assert.Equal(t, 45, breakdown[0].TotalDuration)

	// tie between Yoga and Running keeps first-seen order
	assert.Equal(t, "Yoga", breakdown[1].Type)
	assert.Equal(t, "Running", breakdown[2].Type)
}

func TestBreakdownByTypeEmpty(t *testing.T) {
	assert.Empty(t, BreakdownByType(nil))
}

func TestRecentDailyActivity(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	workouts := []models.Workout{
		{CaloriesBurned: 100, Duration: 10, Date: now.AddDate(0, 0, -1)},
		{CaloriesBurned: 200, Duration: 20, Date: now.AddDate(0, 0, -1)},
		{CaloriesBurned: 300, Duration: 30, Date: now},
		// outside the trailing window, must be excluded
		{CaloriesBurned: 999, Duration: 99, Date: now.AddDate(0, 0, -8)},
	}

	days := RecentDailyActivity(workouts, now)
	assert.Len(t, days, 2)

	assert.Equal(t, "2024-06-14", days[0].Day)
	assert.Equal(t, 2, days[0].Count)
	assert.Equal(t, 300, days[0].Calories)
	assert.Equal(t, 30, days[0].Duration)

	assert.Equal(t, "2024-06-15", days[1].Day)
	assert.Equal(t, 1, days[1].Count)
}

func TestRecentDailyActivityWindowInclusive(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	onBoundary := models.Workout{CaloriesBurned: 10, Duration: 5, Date: now.AddDate(0, 0, -7)}

	days := RecentDailyActivity([]models.Workout{onBoundary}, now)
	assert.Len(t, days, 1)
	assert.Equal(t, "2024-06-08", days[0].Day)
}

func TestSummarizeGoals(t *testing.T) {
	goals := []models.Goal{
		{IsCompleted: true},
		{IsCompleted: false},
		{IsCompleted: false},
	}

	totals := SummarizeGoals(goals)
	assert.Equal(t, 3, totals.Total)
	assert.Equal(t, 1, totals.Completed)
	assert.Equal(t, 2, totals.Active)
	assert.Equal(t, 33.33, totals.CompletionRate)
}

func TestSummarizeGoalsEmpty(t *testing.T) {
	totals := SummarizeGoals(nil)
	assert.Equal(t, 0, totals.Total)
	assert.Equal(t, 0, totals.Active)
	assert.Equal(t, 0.0, totals.CompletionRate)
}
