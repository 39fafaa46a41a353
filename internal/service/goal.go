package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gitpichardo/self-starter/internal/model"
	"github.com/gitpichardo/self-starter/internal/repository"
)

var (
	ErrTitleRequired = errors.New("title is required")
	ErrInvalidStatus = errors.New("invalid status")
)

// CreateGoalInput carries the caller-supplied fields for a new goal.
// Dates arrive as strings and are normalized here; malformed input is a
// validation failure, not a store error.
type CreateGoalInput struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	StartDate   string  `json:"startDate"`
	EndDate     *string `json:"endDate"`
	Status      string  `json:"status"`
	Roadmap     *string `json:"roadmap"`
}

type GoalService struct {
	repo repository.GoalRepository
}

func NewGoalService(repo repository.GoalRepository) *GoalService {
	return &GoalService{repo: repo}
}

func (s *GoalService) Create(userID string, in CreateGoalInput) (*model.Goal, error) {
	if in.Title == "" {
		return nil, ErrTitleRequired
	}
	if !model.ValidGoalStatus(in.Status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, in.Status)
	}

	startDate, err := model.ParseDate(in.StartDate)
	if err != nil {
		return nil, err
	}

	var endDate *time.Time
	if in.EndDate != nil {
		t, err := model.ParseDate(*in.EndDate)
		if err != nil {
			return nil, err
		}
		endDate = &t
	}

	now := time.Now()
	goal := &model.Goal{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		StartDate:   startDate,
		EndDate:     endDate,
		Status:      in.Status,
		Roadmap:     in.Roadmap,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.repo.Create(goal)
	if err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return goal, nil
}

// ByID fetches a goal and verifies ownership. A goal belonging to someone
// else is reported as not found so record existence never leaks.
func (s *GoalService) ByID(userID, goalID string) (*model.Goal, error) {
	goal, err := s.repo.ByID(goalID)
	if err != nil {
		return nil, err
	}
	if goal.UserID != userID {
		return nil, repository.ErrGoalNotFound
	}
	return goal, nil
}

func (s *GoalService) Goals(userID string) ([]*model.Goal, error) {
	return s.repo.ByUserID(userID)
}

func (s *GoalService) Update(userID, goalID string, patch *model.GoalPatch) (*model.Goal, error) {
	// Verify ownership
	_, err := s.ByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	if v, ok := patch.Title.Get(); ok && v == "" {
		return nil, ErrTitleRequired
	}
	if patch.Title.IsNull() {
		return nil, ErrTitleRequired
	}
	if v, ok := patch.Status.Get(); ok && !model.ValidGoalStatus(v) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, v)
	}
	if patch.Status.IsNull() {
		return nil, fmt.Errorf("%w: null", ErrInvalidStatus)
	}
	if patch.StartDate.IsNull() {
		return nil, fmt.Errorf("%w: start date cannot be null", model.ErrInvalidDate)
	}

	return s.repo.Update(goalID, patch)
}

func (s *GoalService) Delete(userID, goalID string) error {
	// Verify ownership
	_, err := s.ByID(userID, goalID)
	if err != nil {
		return err
	}

	return s.repo.Delete(goalID)
}
