package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"careerpilot-backend/internal/analysis"
	"careerpilot-backend/internal/applications"
	"careerpilot-backend/internal/jobsearch"
	"careerpilot-backend/internal/llm"
	"careerpilot-backend/internal/llm/gemini"
	"careerpilot-backend/internal/resumes"
	"careerpilot-backend/internal/roles"
	"careerpilot-backend/internal/shared/config"
	"careerpilot-backend/internal/shared/server"
	"careerpilot-backend/internal/shared/storage/db"
	"careerpilot-backend/internal/shared/storage/object"
	objectlocal "careerpilot-backend/internal/shared/storage/object/local"
	objects3 "careerpilot-backend/internal/shared/storage/object/s3"
	"careerpilot-backend/internal/shared/telemetry"
	"careerpilot-backend/internal/users"
)

// App holds the assembled application.
type App struct {
	Router *gin.Engine
	DB     *sql.DB
}

// Build wires configuration into a runnable application: storage, repos,
// the generative client, services, and the HTTP router. Without a
// DATABASE_URL it falls back to in-memory repositories, which suits local
// development and tests.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	app := &App{}

	var (
		resumeRepo resumes.Repo
		roleRepo   roles.Repo
		userRepo   users.Repo
		appRepo    applications.Repo
	)
	if cfg.DatabaseURL != "" {
		conn, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			return nil, fmt.Errorf("connect database: %w", err)
		}
		app.DB = conn
		resumeRepo = &resumes.PGRepo{DB: conn}
		roleRepo = &roles.PGRepo{DB: conn}
		userRepo = &users.PGRepo{DB: conn}
		appRepo = &applications.PGRepo{DB: conn}
	} else {
		telemetry.Info("bootstrap.memory_repos", map[string]any{"reason": "DATABASE_URL not set"})
		resumeRepo = resumes.NewMemoryRepo()
		roleRepo = roles.NewMemoryRepo()
		userRepo = users.NewMemoryRepo()
		appRepo = applications.NewMemoryRepo()
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	llmClient, err := buildLLM(ctx, cfg)
	if err != nil {
		return nil, err
	}

	locator := &resumes.Locator{Store: store}

	resumeSvc := &resumes.Service{Store: store, Repo: resumeRepo, Locator: locator}
	analysisSvc := &analysis.Service{
		Resumes: resumeRepo,
		Locator: locator,
		Store:   store,
		Roles:   roleRepo,
		LLM:     llmClient,
	}
	userSvc := &users.Service{Repo: userRepo}
	appSvc := &applications.Service{Repo: appRepo}

	app.Router = server.NewRouter(server.RouterDeps{
		Config: cfg,
		Handlers: []server.RouteRegistrar{
			users.NewHandler(userSvc),
			resumes.NewHandler(resumeSvc),
			analysis.NewHandler(analysisSvc),
			roles.NewHandler(roleRepo),
			applications.NewHandler(appSvc),
			jobsearch.NewHandler(jobsearch.NewClient(cfg.JSearchAPIKey)),
		},
	})

	return app, nil
}

// Close releases resources held by the app.
func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		store, err := objects3.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
		if err != nil {
			return nil, fmt.Errorf("init s3 store: %w", err)
		}
		return store, nil
	default:
		return objectlocal.New(cfg.LocalStoreDir), nil
	}
}

func buildLLM(ctx context.Context, cfg config.Config) (llm.Client, error) {
	if cfg.GeminiAPIKey == "" {
		telemetry.Info("bootstrap.llm_placeholder", map[string]any{"reason": "GEMINI_API_KEY not set"})
		return llm.PlaceholderClient{}, nil
	}
	client, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.LLMModel, time.Duration(cfg.LLMTimeoutSecs)*time.Second)
	if err != nil {
		return nil, fmt.Errorf("init gemini client: %w", err)
	}
	return client, nil
}
