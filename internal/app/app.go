package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gitpichardo/self-starter/internal/config"
	"github.com/gitpichardo/self-starter/internal/db"
	"github.com/gitpichardo/self-starter/internal/repository"
	"github.com/gitpichardo/self-starter/internal/repository/mock"
	"github.com/gitpichardo/self-starter/internal/service"
)

type App struct {
	Cfg            *config.Config
	DB             *sqlx.DB
	AuthService    *service.AuthService
	GoalService    *service.GoalService
	RoadmapService *service.RoadmapService
	EmailService   *service.EmailService
	PromptService  *service.PromptService
}

func New(cfg *config.Config) (*App, error) {
	// Repositories: the store backend is chosen here and nothing
	// downstream knows which one it got.
	var (
		database    *sqlx.DB
		userRepo    repository.UserRepository
		goalRepo    repository.GoalRepository
		roadmapRepo repository.RoadmapRepository
	)

	switch cfg.StoreBackend {
	case "mock":
		store := mock.Open(cfg.MockStorePath)
		userRepo = store.Users()
		goalRepo = store.Goals()
		roadmapRepo = store.Roadmaps()

	case "database":
		var err error
		database, err = db.Init(cfg.DBDriver, cfg.DBConnection)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %v", err)
		}

		err = db.RunMigrations(database.DB, cfg.DBDriver)
		if err != nil {
			return nil, fmt.Errorf("failed to run migrations: %v", err)
		}

		userRepo = repository.NewUserRepository(database)
		goalRepo = repository.NewGoalRepository(database)
		roadmapRepo = repository.NewRoadmapRepository(database)

	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}

	// Services
	emailService := service.NewEmailService(
		cfg.ResendAPIKey,
		cfg.EmailFrom,
		cfg.AppURL,
		cfg.AppName,
		cfg.IsDevelopment(),
	)
	promptService := service.NewPromptService(cfg.PromptAPIKey, cfg.PromptAPIURL, cfg.IsDevelopment())
	authService := service.NewAuthService(
		userRepo,
		emailService,
		cfg.JWTSecret,
		cfg.IsProduction(),
		cfg.JWTExpiry,
	)
	goalService := service.NewGoalService(goalRepo)
	roadmapService := service.NewRoadmapService(roadmapRepo, goalService, promptService)

	return &App{
		Cfg:            cfg,
		DB:             database,
		AuthService:    authService,
		GoalService:    goalService,
		RoadmapService: roadmapService,
		EmailService:   emailService,
		PromptService:  promptService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
