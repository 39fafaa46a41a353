package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gitpichardo/self-starter/internal/model"
	"github.com/gitpichardo/self-starter/internal/repository"
)

type RoadmapService struct {
	repo     repository.RoadmapRepository
	goals    *GoalService
	prompter *PromptService
}

func NewRoadmapService(repo repository.RoadmapRepository, goals *GoalService, prompter *PromptService) *RoadmapService {
	return &RoadmapService{
		repo:     repo,
		goals:    goals,
		prompter: prompter,
	}
}

// Generate asks the prompt service for a roadmap and stores the result.
// A goal keeps at most one generated roadmap: regeneration replaces the
// existing record's content instead of appending a second one.
func (s *RoadmapService) Generate(ctx context.Context, userID, goalID, timeframe, experience string) (*model.Roadmap, error) {
	// Verify ownership before spending a prompt call
	goal, err := s.goals.ByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	content, err := s.prompter.Generate(ctx, goal.Title, timeframe, experience)
	if err != nil {
		return nil, fmt.Errorf("failed to generate roadmap: %w", err)
	}

	existing, err := s.repo.ByGoalID(userID, goalID)
	if err == nil {
		patch := &model.RoadmapContentPatch{
			Roadmap:    model.Set(content.Roadmap),
			Milestones: model.Set(content.Milestones),
		}
		return s.repo.UpdateContent(existing.UserID, existing.GoalID, patch)
	}
	if !errors.Is(err, repository.ErrRoadmapNotFound) {
		return nil, err
	}

	now := time.Now()
	roadmap := &model.Roadmap{
		ID:        uuid.New().String(),
		UserID:    userID,
		GoalID:    goalID,
		Content:   *content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.repo.Create(roadmap)
	if err != nil {
		return nil, fmt.Errorf("failed to save roadmap: %w", err)
	}

	return roadmap, nil
}

func (s *RoadmapService) ByGoalID(userID, goalID string) (*model.Roadmap, error) {
	return s.repo.ByGoalID(userID, goalID)
}

func (s *RoadmapService) ByUserID(userID string) ([]*model.Roadmap, error) {
	return s.repo.ByUserID(userID)
}

// Update patches the content of an existing roadmap. It never creates
// one; a missing roadmap surfaces as ErrRoadmapNotFound.
func (s *RoadmapService) Update(userID, goalID string, patch *model.RoadmapContentPatch) (*model.Roadmap, error) {
	return s.repo.UpdateContent(userID, goalID, patch)
}

func (s *RoadmapService) Delete(userID, goalID string) error {
	return s.repo.Delete(userID, goalID)
}
