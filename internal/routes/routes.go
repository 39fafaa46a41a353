package routes

import (
	"net/http"
	"time"

	"github.com/gitpichardo/self-starter/internal/app"
	"github.com/gitpichardo/self-starter/internal/handler"
	"github.com/gitpichardo/self-starter/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	health := handler.NewHealthHandler()
	auth := handler.NewAuthHandler(app.AuthService)
	goal := handler.NewGoalHandler(app.GoalService)
	roadmap := handler.NewRoadmapHandler(app.RoadmapService)

	mux := http.NewServeMux()

	// Health
	mux.HandleFunc("GET /healthz", health.Healthz)

	// Auth (rate limited: 5 requests per 15 minutes per IP)
	authLimiter := middleware.RateLimit(5, 15*time.Minute)
	mux.HandleFunc("POST /api/register", authLimiter(auth.Register))
	mux.HandleFunc("POST /api/login", authLimiter(auth.Login))
	mux.HandleFunc("POST /api/logout", auth.Logout)
	mux.HandleFunc("GET /api/me", middleware.RequireAuth(auth.Me))

	// Goals
	mux.HandleFunc("POST /api/goals", middleware.RequireAuth(goal.Create))
	mux.HandleFunc("GET /api/goals", middleware.RequireAuth(goal.List))
	mux.HandleFunc("GET /api/goals/{id}", middleware.RequireAuth(goal.Get))
	mux.HandleFunc("PUT /api/goals/{id}", middleware.RequireAuth(goal.Update))
	mux.HandleFunc("DELETE /api/goals/{id}", middleware.RequireAuth(goal.Delete))

	// Roadmaps (generation rate limited: prompt calls are expensive)
	generateLimiter := middleware.RateLimit(10, time.Hour)
	mux.HandleFunc("POST /api/goals/{id}/roadmap", generateLimiter(middleware.RequireAuth(roadmap.Generate)))
	mux.HandleFunc("GET /api/goals/{id}/roadmap", middleware.RequireAuth(roadmap.Get))
	mux.HandleFunc("PATCH /api/goals/{id}/roadmap", middleware.RequireAuth(roadmap.Update))
	mux.HandleFunc("DELETE /api/goals/{id}/roadmap", middleware.RequireAuth(roadmap.Delete))
	mux.HandleFunc("GET /api/roadmaps", middleware.RequireAuth(roadmap.List))

	// Global middleware - executed in order (top to bottom)
	return middleware.Chain(
		mux,
		middleware.RequestLogging,
		middleware.AuthMiddleware(app.AuthService),
	)
}
