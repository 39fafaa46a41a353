package repository

import (
	"errors"

	"github.com/gitpichardo/self-starter/internal/model"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrDuplicateEmail  = errors.New("email already exists")
	ErrGoalNotFound    = errors.New("goal not found")
	ErrRoadmapNotFound = errors.New("roadmap not found")
)

// UserRepository persists user records. Email uniqueness is a caller
// responsibility: callers check ByEmail before Create. The relational
// backend additionally enforces it with a UNIQUE constraint and reports
// violations as ErrDuplicateEmail.
type UserRepository interface {
	Create(user *model.User) error
	ByID(id string) (*model.User, error)
	ByEmail(email string) (*model.User, error)
}

// GoalRepository persists goal records. Ownership is not enforced here;
// every method operates on whatever record matches the identifier, and the
// service layer verifies the owner before exposing or mutating anything.
type GoalRepository interface {
	Create(goal *model.Goal) error
	ByID(id string) (*model.Goal, error)
	// ByUserID returns the user's goals in creation order.
	ByUserID(userID string) ([]*model.Goal, error)
	// Update merges the patch over the stored record, refreshes the update
	// timestamp and returns the merged record. ErrGoalNotFound if the
	// identifier does not exist.
	Update(id string, patch *model.GoalPatch) (*model.Goal, error)
	Delete(id string) error
}

// RoadmapRepository persists roadmap records. Create always appends; the
// update-existing-else-append policy for generated roadmaps lives in the
// service layer.
type RoadmapRepository interface {
	Create(roadmap *model.Roadmap) error
	// ByGoalID returns the first roadmap matching both identifiers.
	ByGoalID(userID, goalID string) (*model.Roadmap, error)
	ByUserID(userID string) ([]*model.Roadmap, error)
	// UpdateContent merges the patch into the content sub-object of the
	// first matching record. It never creates a record.
	UpdateContent(userID, goalID string, patch *model.RoadmapContentPatch) (*model.Roadmap, error)
	// Delete removes every roadmap for the (user, goal) pair.
	// ErrRoadmapNotFound if there were none.
	Delete(userID, goalID string) error
}
