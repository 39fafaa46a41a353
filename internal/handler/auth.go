package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gitpichardo/self-starter/internal/ctxkeys"
	"github.com/gitpichardo/self-starter/internal/httputil"
	"github.com/gitpichardo/self-starter/internal/model"
	"github.com/gitpichardo/self-starter/internal/service"
	"github.com/gitpichardo/self-starter/internal/validation"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		httputil.RespondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.authService.Register(req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailAlreadyExists) {
			httputil.RespondError(w, "Email already in use", http.StatusConflict)
			return
		}
		// Validation errors carry user-facing messages
		var vErr validation.Error
		if errors.As(err, &vErr) {
			httputil.RespondError(w, vErr.Error(), http.StatusBadRequest)
			return
		}
		slog.Error("failed to register user", "error", err)
		httputil.RespondError(w, "An unexpected error occurred", http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, registerResponse{
		Message: "User registered successfully",
		UserID:  user.ID,
	}, http.StatusCreated)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID    string  `json:"id"`
	Email string  `json:"email"`
	Name  *string `json:"name"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		httputil.RespondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			httputil.RespondError(w, "Invalid email or password", http.StatusUnauthorized)
			return
		}
		slog.Error("failed to log in user", "error", err)
		httputil.RespondError(w, "An unexpected error occurred", http.StatusInternalServerError)
		return
	}

	token, err := h.authService.GenerateJWT(user)
	if err != nil {
		slog.Error("failed to generate session token", "error", err, "user_id", user.ID)
		httputil.RespondError(w, "An unexpected error occurred", http.StatusInternalServerError)
		return
	}

	h.authService.SetJWTCookie(w, token, time.Now().Add(h.authService.JWTExpiry()))
	httputil.RespondJSON(w, sanitizeUser(user), http.StatusOK)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.authService.ClearJWTCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	httputil.RespondJSON(w, sanitizeUser(user), http.StatusOK)
}

func sanitizeUser(user *model.User) userResponse {
	return userResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	}
}
