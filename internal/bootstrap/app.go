package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	googleauth "growthplan-backend/internal/auth"
	"growthplan-backend/internal/plans"
	"growthplan-backend/internal/profiles"
	"growthplan-backend/internal/queue"
	"growthplan-backend/internal/shared/config"
	"growthplan-backend/internal/shared/server"
	"growthplan-backend/internal/shared/storage/db"
	"growthplan-backend/internal/shared/storage/object"
	localstore "growthplan-backend/internal/shared/storage/object/local"
	s3store "growthplan-backend/internal/shared/storage/object/s3"
	"growthplan-backend/internal/users"
	"growthplan-backend/plan/refdata"
)

// App holds shared dependencies.
type App struct {
	Config          config.Config
	Router          *gin.Engine
	DB              *sql.DB
	Store           object.ObjectStore
	Queue           queue.Client
	ProfilesRepo    profiles.Repo
	PlansRepo       plans.Repo
	UsersRepo       users.Repo
	ProfilesService *profiles.Service
	PlansService    *plans.Service
	PlanProcessor   PlanProcessor
	UsersService    *users.Service
	ProfilesHandler *profiles.Handler
	PlansHandler    *plans.Handler
	UsersHandler    *users.Handler
	GoogleAuth      *googleauth.GoogleService
}

// PlanProcessor allows callers to override plan processing for tests.
type PlanProcessor interface {
	ProcessPlan(ctx context.Context, planID string) error
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	queueClient, err := buildQueue(ctx)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
		Queue:  queueClient,
	}

	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          app.Config,
		ProfilesHandler: app.ProfilesHandler,
		PlansHandler:    app.PlansHandler,
		UsersHandler:    app.UsersHandler,
		GoogleAuth:      app.GoogleAuth,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildQueue(ctx context.Context) (queue.Client, error) {
	if strings.TrimSpace(os.Getenv("GP_SQS_QUEUE_URL")) == "" {
		return nil, nil
	}
	return queue.NewSQSClient(ctx)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func buildServices(app *App) error {
	var profileRepo profiles.Repo
	var planRepo plans.Repo
	var userRepo users.Repo

	if app.DB != nil {
		profileRepo = &profiles.PGRepo{DB: app.DB}
		planRepo = &plans.PGRepo{DB: app.DB}
		userRepo = &users.PGRepo{DB: app.DB}
	} else {
		profileRepo = profiles.NewMemoryRepo()
		planRepo = plans.NewMemoryRepo()
		userRepo = users.NewMemoryRepo()
	}

	profileSvc := &profiles.Service{Repo: profileRepo}

	planSvc := &plans.Service{
		Repo:        planRepo,
		ProfileRepo: profileRepo,
		Store:       app.Store,
		JobQueue:    app.Queue,
		Tables:      refdata.Default(),
		PlanVersion: app.Config.PlanVersion,
	}

	userSvc := users.NewService(userRepo)
	googleAuthSvc := googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
		userSvc,
	)

	app.ProfilesRepo = profileRepo
	app.PlansRepo = planRepo
	app.UsersRepo = userRepo
	app.ProfilesService = profileSvc
	app.PlansService = planSvc
	app.PlanProcessor = planSvc
	app.UsersService = userSvc
	app.ProfilesHandler = profiles.NewHandler(profileSvc)
	app.PlansHandler = plans.NewHandler(planSvc, profileRepo)
	app.UsersHandler = users.NewHandler(userSvc)
	app.GoogleAuth = googleAuthSvc

	if app.ProfilesHandler == nil || app.PlansHandler == nil {
		return errors.New("failed to initialize handlers")
	}

	return nil
}
