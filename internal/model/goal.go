package model

import (
	"time"
)

const (
	GoalStatusNotStarted = "Not Started"
	GoalStatusInProgress = "In Progress"
	GoalStatusCompleted  = "Completed"
)

// ValidGoalStatus reports whether status is one of the closed set of
// goal statuses.
func ValidGoalStatus(status string) bool {
	switch status {
	case GoalStatusNotStarted, GoalStatusInProgress, GoalStatusCompleted:
		return true
	}
	return false
}

type Goal struct {
	ID          string     `db:"id" json:"id"`
	UserID      string     `db:"user_id" json:"userId"`
	Title       string     `db:"title" json:"title"`
	Description *string    `db:"description" json:"description"`
	StartDate   time.Time  `db:"start_date" json:"startDate"`
	EndDate     *time.Time `db:"end_date" json:"endDate"`
	Status      string     `db:"status" json:"status"`
	Roadmap     *string    `db:"roadmap" json:"roadmap"`
	CreatedAt   time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updatedAt"`
}

// GoalPatch is a partial update for a goal. Each field distinguishes
// "absent" (leave untouched) from "explicit null" (clear a nullable field).
// The record identifier and owning user are never patchable.
type GoalPatch struct {
	Title       Optional[string] `json:"title"`
	Description Optional[string] `json:"description"`
	StartDate   Optional[Date]   `json:"startDate"`
	EndDate     Optional[Date]   `json:"endDate"`
	Status      Optional[string] `json:"status"`
	Roadmap     Optional[string] `json:"roadmap"`
}

// Apply merges the patch over goal and refreshes the update timestamp.
// Both store backends share this so patch semantics cannot drift.
func (p *GoalPatch) Apply(goal *Goal, now time.Time) {
	if v, ok := p.Title.Get(); ok {
		goal.Title = v
	}
	if p.Description.IsSet() {
		goal.Description = p.Description.Ptr()
	}
	if v, ok := p.StartDate.Get(); ok {
		goal.StartDate = v.Time
	}
	if p.EndDate.IsSet() {
		if v, ok := p.EndDate.Get(); ok {
			t := v.Time
			goal.EndDate = &t
		} else {
			goal.EndDate = nil
		}
	}
	if v, ok := p.Status.Get(); ok {
		goal.Status = v
	}
	if p.Roadmap.IsSet() {
		goal.Roadmap = p.Roadmap.Ptr()
	}
	goal.UpdatedAt = now
}
