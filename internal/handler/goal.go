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

type GoalHandler struct {
	goalService *service.GoalService
}

func NewGoalHandler(goalService *service.GoalService) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
	}
}

func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var in service.CreateGoalInput
	err := json.NewDecoder(r.Body).Decode(&in)
	if err != nil {
		httputil.RespondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	goal, err := h.goalService.Create(user.ID, in)
	if err != nil {
		if isGoalValidationError(err) {
			httputil.RespondError(w, err.Error(), http.StatusBadRequest)
			return
		}
		slog.Error("failed to create goal", "error", err, "user_id", user.ID)
		httputil.RespondError(w, "Failed to create goal", http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, goal, http.StatusCreated)
}

func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	goals, err := h.goalService.Goals(user.ID)
	if err != nil {
		slog.Error("failed to get goals", "error", err, "user_id", user.ID)
		httputil.RespondError(w, "Failed to fetch goals", http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, goals, http.StatusOK)
}

func (h *GoalHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("id")

	goal, err := h.goalService.ByID(user.ID, goalID)
	if err != nil {
		if errors.Is(err, repository.ErrGoalNotFound) {
			httputil.RespondError(w, "Goal not found", http.StatusNotFound)
			return
		}
		slog.Error("failed to get goal", "error", err, "user_id", user.ID, "goal_id", goalID)
		httputil.RespondError(w, "Failed to fetch goal", http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, goal, http.StatusOK)
}

func (h *GoalHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("id")

	var patch model.GoalPatch
	err := json.NewDecoder(r.Body).Decode(&patch)
	if err != nil {
		if errors.Is(err, model.ErrInvalidDate) {
			httputil.RespondError(w, err.Error(), http.StatusBadRequest)
			return
		}
		httputil.RespondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	goal, err := h.goalService.Update(user.ID, goalID, &patch)
	if err != nil {
		if errors.Is(err, repository.ErrGoalNotFound) {
			httputil.RespondError(w, "Goal not found", http.StatusNotFound)
			return
		}
		if isGoalValidationError(err) {
			httputil.RespondError(w, err.Error(), http.StatusBadRequest)
			return
		}
		slog.Error("failed to update goal", "error", err, "user_id", user.ID, "goal_id", goalID)
		httputil.RespondError(w, "Failed to update goal", http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, goal, http.StatusOK)
}

func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("id")

	err := h.goalService.Delete(user.ID, goalID)
	if err != nil {
		if errors.Is(err, repository.ErrGoalNotFound) {
			httputil.RespondError(w, "Goal not found", http.StatusNotFound)
			return
		}
		slog.Error("failed to delete goal", "error", err, "user_id", user.ID, "goal_id", goalID)
		httputil.RespondError(w, "Failed to delete goal", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func isGoalValidationError(err error) bool {
	return errors.Is(err, service.ErrTitleRequired) ||
		errors.Is(err, service.ErrInvalidStatus) ||
		errors.Is(err, model.ErrInvalidDate)
}
