package mock_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gitpichardo/self-starter/internal/model"
	"github.com/gitpichardo/self-starter/internal/repository/mock"
)

func testStorePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "mock-database.json")
}

func strPtr(s string) *string {
	return &s
}

func newGoal(userID, title string, created time.Time) *model.Goal {
	return &model.Goal{
		ID:        "goal-" + title,
		UserID:    userID,
		Title:     title,
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Status:    model.GoalStatusNotStarted,
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func TestOpenSeedsSampleDataWhenSnapshotMissing(t *testing.T) {
	store := mock.Open(testStorePath(t))

	user, err := store.Users().ByID(mock.SampleUserID)
	require.NoError(t, err)
	require.Equal(t, "demo@example.com", user.Email)

	goals, err := store.Goals().ByUserID(mock.SampleUserID)
	require.NoError(t, err)
	require.Len(t, goals, 1)
	require.Equal(t, mock.SampleGoalID, goals[0].ID)
	require.Equal(t, "Run a 30 k", goals[0].Title)
	require.Equal(t, model.GoalStatusNotStarted, goals[0].Status)

	roadmaps, err := store.Roadmaps().ByUserID(mock.SampleUserID)
	require.NoError(t, err)
	require.Empty(t, roadmaps)
}

func TestOpenSeedsSampleDataWhenSnapshotMalformed(t *testing.T) {
	path := testStorePath(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store := mock.Open(path)

	_, err := store.Users().ByID(mock.SampleUserID)
	require.NoError(t, err)
}

func TestOpenSeedsSampleDataOnVersionMismatch(t *testing.T) {
	path := testStorePath(t)
	snap := map[string]any{
		"version": 99,
		"users":   []any{},
		"goals":   []any{},
	}
	b, err := json.Marshal(snap)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o644))

	store := mock.Open(path)

	_, err = store.Users().ByID(mock.SampleUserID)
	require.NoError(t, err)
}

func TestSnapshotRoundTrip(t *testing.T) {
	path := testStorePath(t)
	store := mock.Open(path)

	created := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)
	end := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	user := &model.User{
		ID:           "u1",
		Email:        "a@b.com",
		Name:         strPtr("A"),
		PasswordHash: strPtr("$2a$12$opaquecredential"),
		CreatedAt:    created,
		UpdatedAt:    created,
	}
	require.NoError(t, store.Users().Create(user))

	goal := newGoal("u1", "Learn Go", created)
	goal.Description = strPtr("standard library first")
	goal.EndDate = &end
	require.NoError(t, store.Goals().Create(goal))

	roadmap := &model.Roadmap{
		ID:     "r1",
		UserID: "u1",
		GoalID: goal.ID,
		Content: model.RoadmapContent{
			Roadmap:    "Read, write, repeat.",
			Milestones: []string{"tour of go", "first CLI", "first service"},
		},
		CreatedAt: created,
		UpdatedAt: created,
	}
	require.NoError(t, store.Roadmaps().Create(roadmap))

	// A fresh store instance must revive the exact state, dates included
	reopened := mock.Open(path)

	gotUser, err := reopened.Users().ByEmail("a@b.com")
	require.NoError(t, err)
	require.Equal(t, user, gotUser)

	gotGoal, err := reopened.Goals().ByID(goal.ID)
	require.NoError(t, err)
	require.Equal(t, goal, gotGoal)
	require.True(t, gotGoal.StartDate.Equal(goal.StartDate))
	require.NotNil(t, gotGoal.EndDate)
	require.True(t, gotGoal.EndDate.Equal(end))

	gotRoadmap, err := reopened.Roadmaps().ByGoalID("u1", goal.ID)
	require.NoError(t, err)
	require.Equal(t, roadmap, gotRoadmap)
}

func TestSaveNeverTriggeredByReads(t *testing.T) {
	path := testStorePath(t)
	store := mock.Open(path)

	// The seeded store has not been mutated, so no snapshot exists yet
	_, err := os.Stat(path)
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = store.Goals().ByUserID(mock.SampleUserID)
	require.NoError(t, err)
	_, err = store.Users().ByID(mock.SampleUserID)
	require.NoError(t, err)

	_, err = os.Stat(path)
	require.ErrorIs(t, err, os.ErrNotExist)

	// First mutation writes the file
	require.NoError(t, store.Goals().Create(newGoal(mock.SampleUserID, "write snapshot", time.Now())))
	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestSaveFailurePropagates(t *testing.T) {
	dir := t.TempDir()
	store := mock.Open(filepath.Join(dir, "missing-dir", "snapshot.json"))

	err := store.Goals().Create(newGoal("u1", "unwritable", time.Now()))
	require.Error(t, err)
}
