package model

import "time"

type GoalType string

const (
	GoalBooksRead GoalType = "books read"
	GoalPagesRead GoalType = "pages read"
	GoalHoursRead GoalType = "hours read"
)

type GoalDuration string

const (
	DurationThisWeek  GoalDuration = "this week"
	DurationThisMonth GoalDuration = "this month"
	DurationThisYear  GoalDuration = "this year"
	DurationNextWeek  GoalDuration = "next week"
	DurationNextMonth GoalDuration = "next month"
	DurationNextYear  GoalDuration = "next year"
)

type Goal struct {
	ID          int          `json:"id"`
	Description string       `json:"description"`
	Type        GoalType     `json:"type"`
	Duration    GoalDuration `json:"duration"`
	// Progress is the raw stored value and may exceed Total.
	Progress int    `json:"progress"`
	Total    int    `json:"total"`
	DueDate  string `json:"due_date"`
}

// PercentComplete clamps progress into [0, total] for display, the raw
// value is kept as-is.
func (g *Goal) PercentComplete() int {
	if g.Total <= 0 {
		return 0
	}
	p := g.Progress
	if p < 0 {
		p = 0
	}
	if p > g.Total {
		p = g.Total
	}
	return p * 100 / g.Total
}

func (g *Goal) Complete() bool {
	return g.Total > 0 && g.Progress >= g.Total
}

// Overdue reports whether the due date has passed without the goal being
// met. A complete goal is never overdue.
func (g *Goal) Overdue(now time.Time) bool {
	if g.Complete() {
		return false
	}
	due, err := time.Parse(time.RFC3339, g.DueDate)
	if err != nil {
		// The backend also emits bare dates.
		due, err = time.Parse("2006-01-02", g.DueDate)
		if err != nil {
			return false
		}
	}
	return now.After(due)
}

type GoalsResponse struct {
	Goals []Goal `json:"goals"`
}

type CreateGoalRequest struct {
	Amount   int          `json:"amount"`
	Type     GoalType     `json:"type"`
	Duration GoalDuration `json:"duration"`
}

type UpdateGoalRequest struct {
	Progress int `json:"progress"`
}
