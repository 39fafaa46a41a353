package mock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gitpichardo/self-starter/internal/model"
	"github.com/gitpichardo/self-starter/internal/repository"
	"github.com/gitpichardo/self-starter/internal/repository/mock"
)

func newRoadmap(id, userID, goalID string) *model.Roadmap {
	now := time.Date(2024, 4, 4, 4, 0, 0, 0, time.UTC)
	return &model.Roadmap{
		ID:     id,
		UserID: userID,
		GoalID: goalID,
		Content: model.RoadmapContent{
			Roadmap:    "narrative for " + id,
			Milestones: []string{"one", "two"},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestRoadmapCreateAlwaysAppends(t *testing.T) {
	store := mock.Open(testStorePath(t))

	require.NoError(t, store.Roadmaps().Create(newRoadmap("r1", "u1", "g1")))
	require.NoError(t, store.Roadmaps().Create(newRoadmap("r2", "u1", "g1")))

	roadmaps, err := store.Roadmaps().ByUserID("u1")
	require.NoError(t, err)
	require.Len(t, roadmaps, 2)

	// Lookup returns the first match
	got, err := store.Roadmaps().ByGoalID("u1", "g1")
	require.NoError(t, err)
	require.Equal(t, "r1", got.ID)
}

func TestRoadmapByGoalIDMatchesBothFields(t *testing.T) {
	store := mock.Open(testStorePath(t))

	require.NoError(t, store.Roadmaps().Create(newRoadmap("r1", "u1", "g1")))

	_, err := store.Roadmaps().ByGoalID("u2", "g1")
	require.ErrorIs(t, err, repository.ErrRoadmapNotFound)
	_, err = store.Roadmaps().ByGoalID("u1", "g2")
	require.ErrorIs(t, err, repository.ErrRoadmapNotFound)
}

func TestRoadmapUpdateContentMergesSubObjectOnly(t *testing.T) {
	store := mock.Open(testStorePath(t))

	rm := newRoadmap("r1", "u1", "g1")
	require.NoError(t, store.Roadmaps().Create(rm))

	patch := &model.RoadmapContentPatch{
		Roadmap: model.Set("rewritten narrative"),
	}
	updated, err := store.Roadmaps().UpdateContent("u1", "g1", patch)
	require.NoError(t, err)

	require.Equal(t, "rewritten narrative", updated.Content.Roadmap)
	require.Equal(t, rm.Content.Milestones, updated.Content.Milestones)
	require.True(t, updated.UpdatedAt.After(rm.UpdatedAt))

	// Top-level fields untouched
	require.Equal(t, rm.ID, updated.ID)
	require.Equal(t, rm.UserID, updated.UserID)
	require.Equal(t, rm.GoalID, updated.GoalID)
	require.True(t, updated.CreatedAt.Equal(rm.CreatedAt))
}

func TestRoadmapUpdateContentDoesNotUpsert(t *testing.T) {
	store := mock.Open(testStorePath(t))

	patch := &model.RoadmapContentPatch{Roadmap: model.Set("anything")}
	_, err := store.Roadmaps().UpdateContent("u1", "g1", patch)
	require.ErrorIs(t, err, repository.ErrRoadmapNotFound)

	roadmaps, err := store.Roadmaps().ByUserID("u1")
	require.NoError(t, err)
	require.Empty(t, roadmaps)
}

func TestRoadmapDeleteRemovesAllMatches(t *testing.T) {
	store := mock.Open(testStorePath(t))

	require.NoError(t, store.Roadmaps().Create(newRoadmap("r1", "u1", "g1")))
	require.NoError(t, store.Roadmaps().Create(newRoadmap("r2", "u1", "g1")))
	require.NoError(t, store.Roadmaps().Create(newRoadmap("r3", "u1", "g2")))

	require.NoError(t, store.Roadmaps().Delete("u1", "g1"))

	roadmaps, err := store.Roadmaps().ByUserID("u1")
	require.NoError(t, err)
	require.Len(t, roadmaps, 1)
	require.Equal(t, "r3", roadmaps[0].ID)

	require.ErrorIs(t, store.Roadmaps().Delete("u1", "g1"), repository.ErrRoadmapNotFound)
}
