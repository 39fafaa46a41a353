package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gitpichardo/self-starter/internal/model"
)

var ErrMissingPromptFields = errors.New("goal, timeframe and experience are required")

// PromptService talks to the JigsawStack prompt engine. Generation is a
// two-step protocol: create a prompt engine from a template, then run it
// with the input values. In development without an API key it returns a
// stubbed roadmap so the rest of the app stays usable offline.
type PromptService struct {
	client *http.Client
	apiURL string
	apiKey string
	isDev  bool
}

func NewPromptService(apiKey, apiURL string, isDev bool) *PromptService {
	return &PromptService{
		client: &http.Client{Timeout: 60 * time.Second},
		apiURL: apiURL,
		apiKey: apiKey,
		isDev:  isDev,
	}
}

const roadmapPromptTemplate = "Generate a detailed roadmap for achieving the following goal: {goal}. " +
	"The timeframe is {timeframe} and the person's experience level is {experience}. " +
	"Include major milestones and actionable steps."

type promptInput struct {
	Key      string `json:"key"`
	Optional bool   `json:"optional"`
}

type createEngineRequest struct {
	Prompt       string         `json:"prompt"`
	Inputs       []promptInput  `json:"inputs"`
	ReturnPrompt map[string]any `json:"return_prompt"`
}

type createEngineResponse struct {
	Success        bool   `json:"success"`
	PromptEngineID string `json:"prompt_engine_id"`
}

type runEngineRequest struct {
	InputValues map[string]string `json:"input_values"`
}

type runEngineResponse struct {
	Success bool                 `json:"success"`
	Result  model.RoadmapContent `json:"result"`
}

func (s *PromptService) Generate(ctx context.Context, goal, timeframe, experience string) (*model.RoadmapContent, error) {
	if goal == "" || timeframe == "" || experience == "" {
		return nil, ErrMissingPromptFields
	}

	if s.apiKey == "" {
		if !s.isDev {
			return nil, fmt.Errorf("prompt service not configured (missing PROMPT_API_KEY)")
		}
		slog.Info("roadmap generated (dev mode stub)", "goal", goal, "timeframe", timeframe)
		return &model.RoadmapContent{
			Roadmap: fmt.Sprintf("Work towards %q over %s, starting from a %s level.", goal, timeframe, experience),
			Milestones: []string{
				"Establish a baseline and set weekly targets",
				"Review progress at the halfway point",
				"Complete the goal and reflect on the result",
			},
		}, nil
	}

	engineID, err := s.createEngine(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create prompt engine: %w", err)
	}

	content, err := s.runEngine(ctx, engineID, map[string]string{
		"goal":       goal,
		"timeframe":  timeframe,
		"experience": experience,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to run prompt engine: %w", err)
	}

	return content, nil
}

func (s *PromptService) createEngine(ctx context.Context) (string, error) {
	reqBody := createEngineRequest{
		Prompt: roadmapPromptTemplate,
		Inputs: []promptInput{
			{Key: "goal"},
			{Key: "timeframe"},
			{Key: "experience"},
		},
		ReturnPrompt: map[string]any{
			"roadmap":    "A detailed step-by-step roadmap to achieve the goal",
			"milestones": "An array of key milestones in the roadmap",
		},
	}

	var resp createEngineResponse
	err := s.post(ctx, s.apiURL, reqBody, &resp)
	if err != nil {
		return "", err
	}
	if !resp.Success || resp.PromptEngineID == "" {
		return "", fmt.Errorf("prompt engine creation rejected")
	}

	return resp.PromptEngineID, nil
}

func (s *PromptService) runEngine(ctx context.Context, engineID string, inputs map[string]string) (*model.RoadmapContent, error) {
	var resp runEngineResponse
	err := s.post(ctx, s.apiURL+"/"+engineID, runEngineRequest{InputValues: inputs}, &resp)
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("prompt engine run rejected")
	}

	return &resp.Result, nil
}

func (s *PromptService) post(ctx context.Context, url string, body, out any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("prompt api returned %d: %s", resp.StatusCode, msg)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
