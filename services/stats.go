package services

import (
	"math"
	"sort"
	"time"

	"github.com/wassim-hamila/back-end/models"
)

// The stats endpoint scans the requester's own records fetched in one pass
// each; everything below is pure computation over those slices.

type WorkoutTotals struct {
	TotalCalories int     `json:"totalCalories"`
	TotalDuration int     `json:"totalDuration"`
	AvgCalories   float64 `json:"avgCalories"`
	AvgDuration   float64 `json:"avgDuration"`
}

type TypeBreakdown struct {
	Type          string `json:"type"`
	Count         int    `json:"count"`
	TotalCalories int    `json:"totalCalories"`
	TotalDuration int    `json:"totalDuration"`
}

type DayActivity struct {
	Day      string `json:"day"`
	Count    int    `json:"count"`
	Calories int    `json:"calories"`
	Duration int    `json:"duration"`
}

type GoalTotals struct {
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	Active         int     `json:"active"`
	CompletionRate float64 `json:"completionRate"`
}

// SummarizeWorkouts folds calories and duration in a single pass.
// Zero workouts yields the zero struct, never NaN.
func SummarizeWorkouts(workouts []models.Workout) WorkoutTotals {
	var totals WorkoutTotals
	if len(workouts) == 0 {
		return totals
	}
	for _, w := range workouts {
		totals.TotalCalories += w.CaloriesBurned
		totals.TotalDuration += w.Duration
	}
	n := float64(len(workouts))
	totals.AvgCalories = float64(totals.TotalCalories) / n
	totals.AvgDuration = float64(totals.TotalDuration) / n
	return totals
}

// BreakdownByType groups workouts by type, ordered by descending count.
// Ties keep first-seen order.
func BreakdownByType(workouts []models.Workout) []TypeBreakdown {
	index := map[string]int{}
	breakdown := []TypeBreakdown{}
	for _, w := range workouts {
		i, seen := index[w.Type]
		if !seen {
			i = len(breakdown)
			index[w.Type] = i
			breakdown = append(breakdown, TypeBreakdown{Type: w.Type})
		}
		breakdown[i].Count++
		breakdown[i].TotalCalories += w.CaloriesBurned
		breakdown[i].TotalDuration += w.Duration
	}
	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Count > breakdown[j].Count
	})
	return breakdown
}

// RecentDailyActivity buckets the trailing seven days of workouts
// (inclusive, measured from now) by UTC calendar day, ascending.
func RecentDailyActivity(workouts []models.Workout, now time.Time) []DayActivity {
	cutoff := now.AddDate(0, 0, -7)
	index := map[string]int{}
	days := []DayActivity{}
	for _, w := range workouts {
		if w.Date.Before(cutoff) {
			continue
		}
		day := w.Date.UTC().Format("2006-01-02")
		i, seen := index[day]
		if !seen {
			i = len(days)
			index[day] = i
			days = append(days, DayActivity{Day: day})
		}
		days[i].Count++
		days[i].Calories += w.CaloriesBurned
		days[i].Duration += w.Duration
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Day < days[j].Day })
	return days
}

// SummarizeGoals counts completions and derives the completion rate as a
// percentage rounded to two decimals; zero goals means a rate of exactly 0.
func SummarizeGoals(goals []models.Goal) GoalTotals {
	totals := GoalTotals{Total: len(goals)}
	for _, g := range goals {
		if g.IsCompleted {
			totals.Completed++
		}
	}
	totals.Active = totals.Total - totals.Completed
	if totals.Total > 0 {
		rate := float64(totals.Completed) / float64(totals.Total) * 100
		totals.CompletionRate = math.Round(rate*100) / 100
	}
	return totals
}
