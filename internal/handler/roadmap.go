package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gitpichardo/self-starter/internal/ctxkeys"
	"github.com/gitpichardo/self-starter/internal/httputil"
	"github.com/gitpichardo/self-starter/internal/model"
	"github.com/gitpichardo/self-starter/internal/repository"
	"github.com/gitpichardo/self-starter/internal/service"
)

type RoadmapHandler struct {
	roadmapService *service.RoadmapService
}

func NewRoadmapHandler(roadmapService *service.RoadmapService) *RoadmapHandler {
	return &RoadmapHandler{
		roadmapService: roadmapService,
	}
}

type generateRoadmapRequest struct {
	Timeframe  string `json:"timeframe"`
	Experience string `json:"experience"`
}

func (h *RoadmapHandler) Generate(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("id")

	var req generateRoadmapRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		httputil.RespondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	roadmap, err := h.roadmapService.Generate(r.Context(), user.ID, goalID, req.Timeframe, req.Experience)
	if err != nil {
		if errors.Is(err, repository.ErrGoalNotFound) {
			httputil.RespondError(w, "Goal not found", http.StatusNotFound)
			return
		}
		if errors.Is(err, service.ErrMissingPromptFields) {
			httputil.RespondError(w, "Missing required fields", http.StatusBadRequest)
			return
		}
		slog.Error("failed to generate roadmap", "error", err, "user_id", user.ID, "goal_id", goalID)
		httputil.RespondError(w, "An error occurred while generating the roadmap", http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, roadmap, http.StatusCreated)
}

func (h *RoadmapHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("id")

	roadmap, err := h.roadmapService.ByGoalID(user.ID, goalID)
	if err != nil {
		if errors.Is(err, repository.ErrRoadmapNotFound) {
			httputil.RespondError(w, "Roadmap not found", http.StatusNotFound)
			return
		}
		slog.Error("failed to get roadmap", "error", err, "user_id", user.ID, "goal_id", goalID)
		httputil.RespondError(w, "Failed to fetch roadmap", http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, roadmap, http.StatusOK)
}

func (h *RoadmapHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	roadmaps, err := h.roadmapService.ByUserID(user.ID)
	if err != nil {
		slog.Error("failed to list roadmaps", "error", err, "user_id", user.ID)
		httputil.RespondError(w, "Failed to fetch roadmaps", http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, roadmaps, http.StatusOK)
}

func (h *RoadmapHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("id")

	var patch model.RoadmapContentPatch
	err := json.NewDecoder(r.Body).Decode(&patch)
	if err != nil {
		httputil.RespondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	roadmap, err := h.roadmapService.Update(user.ID, goalID, &patch)
	if err != nil {
		if errors.Is(err, repository.ErrRoadmapNotFound) {
			httputil.RespondError(w, "Roadmap not found", http.StatusNotFound)
			return
		}
		slog.Error("failed to update roadmap", "error", err, "user_id", user.ID, "goal_id", goalID)
		httputil.RespondError(w, "Failed to update roadmap", http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, roadmap, http.StatusOK)
}

func (h *RoadmapHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("id")

	err := h.roadmapService.Delete(user.ID, goalID)
	if err != nil {
		if errors.Is(err, repository.ErrRoadmapNotFound) {
			httputil.RespondError(w, "Roadmap not found", http.StatusNotFound)
			return
		}
		slog.Error("failed to delete roadmap", "error", err, "user_id", user.ID, "goal_id", goalID)
		httputil.RespondError(w, "Failed to delete roadmap", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
