package service_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gitpichardo/self-starter/internal/service"
)

func TestPromptServiceTwoStepProtocol(t *testing.T) {
	var createBody map[string]any
	var runBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "test-key", r.Header.Get("x-api-key"))

		switch r.URL.Path {
		case "/":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&createBody))
			json.NewEncoder(w).Encode(map[string]any{
				"success":          true,
				"prompt_engine_id": "engine-123",
			})
		case "/engine-123":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&runBody))
			json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"result": map[string]any{
					"roadmap":    "the plan",
					"milestones": []string{"m1", "m2"},
				},
			})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	prompter := service.NewPromptService("test-key", srv.URL, false)

	content, err := prompter.Generate(t.Context(), "Run a 30 k", "3 months", "beginner")
	require.NoError(t, err)
	require.Equal(t, "the plan", content.Roadmap)
	require.Equal(t, []string{"m1", "m2"}, content.Milestones)

	// Create step declares the template inputs
	inputs, ok := createBody["inputs"].([]any)
	require.True(t, ok)
	require.Len(t, inputs, 3)

	// Run step passes the actual values
	values, ok := runBody["input_values"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "Run a 30 k", values["goal"])
	require.Equal(t, "3 months", values["timeframe"])
	require.Equal(t, "beginner", values["experience"])
}

func TestPromptServiceSurfacesAPIErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	prompter := service.NewPromptService("test-key", srv.URL, false)

	_, err := prompter.Generate(t.Context(), "goal", "timeframe", "experience")
	require.Error(t, err)
	require.Contains(t, err.Error(), "429")
}

func TestPromptServiceRequiresAllFields(t *testing.T) {
	prompter := service.NewPromptService("test-key", "http://unused", false)

	_, err := prompter.Generate(t.Context(), "", "3 months", "beginner")
	require.ErrorIs(t, err, service.ErrMissingPromptFields)
}

func TestPromptServiceDevStubWithoutKey(t *testing.T) {
	prompter := service.NewPromptService("", "http://unused", true)

	content, err := prompter.Generate(t.Context(), "Run a 30 k", "3 months", "beginner")
	require.NoError(t, err)
	require.NotEmpty(t, content.Roadmap)
	require.NotEmpty(t, content.Milestones)
}

func TestPromptServiceWithoutKeyFailsOutsideDev(t *testing.T) {
	prompter := service.NewPromptService("", "http://unused", false)

	_, err := prompter.Generate(t.Context(), "goal", "timeframe", "experience")
	require.Error(t, err)
}
