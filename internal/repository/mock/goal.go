package mock

import (
	"time"

	"github.com/gitpichardo/self-starter/internal/model"
	"github.com/gitpichardo/self-starter/internal/repository"
)

type goalStore struct {
	store *Store
}

func (g *goalStore) Create(goal *model.Goal) error {
	g.store.mu.Lock()
	defer g.store.mu.Unlock()

	g.store.data.Goals = append(g.store.data.Goals, cloneGoal(goal))
	return g.store.save()
}

func (g *goalStore) ByID(id string) (*model.Goal, error) {
	g.store.mu.Lock()
	defer g.store.mu.Unlock()

	for _, goal := range g.store.data.Goals {
		if goal.ID == id {
			return cloneGoal(goal), nil
		}
	}
	return nil, repository.ErrGoalNotFound
}

// ByUserID returns the user's goals in insertion order.
func (g *goalStore) ByUserID(userID string) ([]*model.Goal, error) {
	g.store.mu.Lock()
	defer g.store.mu.Unlock()

	goals := []*model.Goal{}
	for _, goal := range g.store.data.Goals {
		if goal.UserID == userID {
			goals = append(goals, cloneGoal(goal))
		}
	}
	return goals, nil
}

func (g *goalStore) Update(id string, patch *model.GoalPatch) (*model.Goal, error) {
	g.store.mu.Lock()
	defer g.store.mu.Unlock()

	for _, goal := range g.store.data.Goals {
		if goal.ID != id {
			continue
		}

		patch.Apply(goal, time.Now())

		err := g.store.save()
		if err != nil {
			return nil, err
		}
		return cloneGoal(goal), nil
	}

	return nil, repository.ErrGoalNotFound
}

// Delete removes the goal and checkpoints only when a record was actually
// removed, so a repeated delete neither rewrites the snapshot nor shrinks
// the collection further.
func (g *goalStore) Delete(id string) error {
	g.store.mu.Lock()
	defer g.store.mu.Unlock()

	for i, goal := range g.store.data.Goals {
		if goal.ID == id {
			g.store.data.Goals = append(g.store.data.Goals[:i], g.store.data.Goals[i+1:]...)
			return g.store.save()
		}
	}
	return repository.ErrGoalNotFound
}

func cloneGoal(g *model.Goal) *model.Goal {
	c := *g
	if g.Description != nil {
		v := *g.Description
		c.Description = &v
	}
	if g.EndDate != nil {
		v := *g.EndDate
		c.EndDate = &v
	}
	if g.Roadmap != nil {
		v := *g.Roadmap
		c.Roadmap = &v
	}
	return &c
}
