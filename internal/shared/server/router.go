package server

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"jumpshot-backend/internal/catalog"
	"jumpshot-backend/internal/plans"
	"jumpshot-backend/internal/shared/config"
	"jumpshot-backend/internal/shared/metrics"
	"jumpshot-backend/internal/shared/server/middleware"
	"jumpshot-backend/internal/shared/server/respond"
	"jumpshot-backend/internal/shared/storage/db"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	cat, err := catalog.Default()
	if err != nil {
		return nil, err
	}

	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
		} else {
			if err := db.RunMigrations(context.Background(), dbConn); err != nil {
				log.Printf("failed to run migrations, falling back to memory: %v", err)
				dbConn = nil
			}
		}
		sqlDB = dbConn
	}

	var planRepo plans.Repo
	if sqlDB != nil {
		planRepo = &plans.PGRepo{DB: sqlDB}
	} else {
		planRepo = plans.NewMemoryRepo()
	}
	planSvc := plans.NewService(planRepo, plans.NewGenerator(cat, cfg.IncludeRelatedIssues))
	planHandler := plans.NewHandler(planSvc)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"PLAN_GENERATE": {Rate: 1, Burst: 5},
		},
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodPost {
				return "PLAN_GENERATE"
			}
			return ""
		},
	}))
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true, "catalogVersion": cat.Version()})
	})
	planHandler.RegisterRoutes(api)

	return r, nil
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
