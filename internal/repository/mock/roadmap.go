package mock

import (
	"time"

	"github.com/gitpichardo/self-starter/internal/model"
	"github.com/gitpichardo/self-starter/internal/repository"
)

type roadmapStore struct {
	store *Store
}

// Create always appends; there is no upsert at this layer.
func (r *roadmapStore) Create(roadmap *model.Roadmap) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.data.Roadmaps = append(r.store.data.Roadmaps, cloneRoadmap(roadmap))
	return r.store.save()
}

func (r *roadmapStore) ByGoalID(userID, goalID string) (*model.Roadmap, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, rm := range r.store.data.Roadmaps {
		if rm.UserID == userID && rm.GoalID == goalID {
			return cloneRoadmap(rm), nil
		}
	}
	return nil, repository.ErrRoadmapNotFound
}

func (r *roadmapStore) ByUserID(userID string) ([]*model.Roadmap, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	roadmaps := []*model.Roadmap{}
	for _, rm := range r.store.data.Roadmaps {
		if rm.UserID == userID {
			roadmaps = append(roadmaps, cloneRoadmap(rm))
		}
	}
	return roadmaps, nil
}

// UpdateContent patches the content sub-object of the first matching
// record. It never creates one.
func (r *roadmapStore) UpdateContent(userID, goalID string, patch *model.RoadmapContentPatch) (*model.Roadmap, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, rm := range r.store.data.Roadmaps {
		if rm.UserID != userID || rm.GoalID != goalID {
			continue
		}

		patch.Apply(rm, time.Now())

		err := r.store.save()
		if err != nil {
			return nil, err
		}
		return cloneRoadmap(rm), nil
	}

	return nil, repository.ErrRoadmapNotFound
}

// Delete removes every roadmap for the (user, goal) pair, not just the
// first match.
func (r *roadmapStore) Delete(userID, goalID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	kept := r.store.data.Roadmaps[:0]
	removed := false
	for _, rm := range r.store.data.Roadmaps {
		if rm.UserID == userID && rm.GoalID == goalID {
			removed = true
			continue
		}
		kept = append(kept, rm)
	}

	if !removed {
		return repository.ErrRoadmapNotFound
	}

	r.store.data.Roadmaps = kept
	return r.store.save()
}

func cloneRoadmap(r *model.Roadmap) *model.Roadmap {
	c := *r
	if r.Content.Milestones != nil {
		c.Content.Milestones = append([]string(nil), r.Content.Milestones...)
	}
	return &c
}
