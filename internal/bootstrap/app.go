package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	googleauth "resume-parser-api/internal/auth"
	openaiembed "resume-parser-api/internal/embedding/openai"
	"resume-parser-api/internal/matching"
	"resume-parser-api/internal/parser"
	"resume-parser-api/internal/resumes"
	"resume-parser-api/internal/shared/config"
	"resume-parser-api/internal/shared/server"
	"resume-parser-api/internal/shared/storage/db"
	"resume-parser-api/internal/shared/storage/object"
	localstore "resume-parser-api/internal/shared/storage/object/local"
	s3store "resume-parser-api/internal/shared/storage/object/s3"
	"resume-parser-api/internal/users"
)

// App holds the wired application dependencies.
type App struct {
	Config         config.Config
	Router         *gin.Engine
	DB             *sql.DB
	Store          object.ObjectStore
	ResumesRepo    resumes.ResumesRepo
	UsersRepo      users.Repo
	ResumesService *resumes.Service
	UsersService   *users.Service
	ResumesHandler *resumes.Handler
	UsersHandler   *users.Handler
	GoogleAuth     *googleauth.GoogleService
}

// Build prepares all dependencies and wires the router.
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

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
	}

	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:         app.Config,
		ResumesHandler: app.ResumesHandler,
		UsersHandler:   app.UsersHandler,
		GoogleAuth:     app.GoogleAuth,
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

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory repositories: %v", err)
			_ = sqlDB.Close()
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.AWSRegion) == "" || strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("OBJECT_STORE=s3 requires AWS_REGION and S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

// buildMatcher returns the scoring engine, with the OpenAI embedder attached
// when the provider is configured and a key is present. Without it the engine
// runs on heuristics alone.
func buildMatcher(cfg config.Config) (*matching.Engine, error) {
	if cfg.EmbeddingProvider != "openai" {
		return matching.NewEngine(), nil
	}
	apiKey := strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	if apiKey == "" {
		log.Printf("bootstrap: OPENAI_API_KEY empty; semantic scoring disabled")
		return matching.NewEngine(), nil
	}
	embedder, err := openaiembed.NewClient(apiKey, cfg.EmbeddingModel)
	if err != nil {
		return nil, err
	}
	return matching.NewEngineWithEmbedder(embedder), nil
}

func buildServices(app *App) error {
	var resumesRepo resumes.ResumesRepo
	var usersRepo users.Repo
	if app.DB != nil {
		resumesRepo = &resumes.PGRepo{DB: app.DB}
		usersRepo = &users.PGRepo{DB: app.DB}
	} else {
		resumesRepo = resumes.NewMemoryRepo()
		usersRepo = users.NewMemoryRepo()
	}

	matcher, err := buildMatcher(app.Config)
	if err != nil {
		return err
	}

	resumesSvc := &resumes.Service{
		Store:   app.Store,
		Repo:    resumesRepo,
		Parser:  parser.NewEngine(),
		Matcher: matcher,
	}
	usersSvc := users.NewService(usersRepo)

	app.ResumesRepo = resumesRepo
	app.UsersRepo = usersRepo
	app.ResumesService = resumesSvc
	app.UsersService = usersSvc
	app.ResumesHandler = resumes.NewHandler(resumesSvc)
	app.UsersHandler = users.NewHandler(usersSvc)
	app.GoogleAuth = googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
		usersSvc,
	)

	return nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
