package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestValidGoalStatus(t *testing.T) {
	require.True(t, ValidGoalStatus(GoalStatusNotStarted))
	require.True(t, ValidGoalStatus(GoalStatusInProgress))
	require.True(t, ValidGoalStatus(GoalStatusCompleted))

	require.False(t, ValidGoalStatus(""))
	require.False(t, ValidGoalStatus("completed")) // statuses are case-sensitive
	require.False(t, ValidGoalStatus("Done"))
}

func TestGoalPatchApply(t *testing.T) {
	desc := "original description"
	end := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	created := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	base := func() *Goal {
		return &Goal{
			ID:          "g1",
			UserID:      "u1",
			Title:       "original",
			Description: &desc,
			StartDate:   time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
			EndDate:     &end,
			Status:      GoalStatusNotStarted,
			CreatedAt:   created,
			UpdatedAt:   created,
		}
	}

	now := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	t.Run("empty patch only refreshes update timestamp", func(t *testing.T) {
		goal := base()
		patch := &GoalPatch{}
		patch.Apply(goal, now)

		expected := base()
		expected.UpdatedAt = now
		require.Equal(t, expected, goal)
	})

	t.Run("set fields overwrite", func(t *testing.T) {
		goal := base()
		patch := &GoalPatch{
			Title:  Set("renamed"),
			Status: Set(GoalStatusInProgress),
		}
		patch.Apply(goal, now)

		require.Equal(t, "renamed", goal.Title)
		require.Equal(t, GoalStatusInProgress, goal.Status)
		require.Equal(t, &desc, goal.Description)
	})

	t.Run("null clears nullable fields", func(t *testing.T) {
		goal := base()
		patch := &GoalPatch{
			Description: Null[string](),
			EndDate:     Null[Date](),
			Roadmap:     Null[string](),
		}
		patch.Apply(goal, now)

		require.Nil(t, goal.Description)
		require.Nil(t, goal.EndDate)
		require.Nil(t, goal.Roadmap)
	})

	t.Run("owner and id never change", func(t *testing.T) {
		goal := base()
		patch := &GoalPatch{Title: Set("still mine")}
		patch.Apply(goal, now)

		require.Equal(t, "g1", goal.ID)
		require.Equal(t, "u1", goal.UserID)
		require.Equal(t, created, goal.CreatedAt)
	})
}
