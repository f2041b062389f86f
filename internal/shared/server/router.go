package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	googleauth "resume-parser-api/internal/auth"
	"resume-parser-api/internal/resumes"
	"resume-parser-api/internal/shared/config"
	"resume-parser-api/internal/shared/metrics"
	"resume-parser-api/internal/shared/server/middleware"
	"resume-parser-api/internal/shared/server/respond"
	"resume-parser-api/internal/users"
)

// RouterDeps carries the wired handlers the router mounts.
type RouterDeps struct {
	Config         config.Config
	ResumesHandler *resumes.Handler
	UsersHandler   *users.Handler
	GoogleAuth     *googleauth.GoogleService
}

const (
	rateGroupUpload = "UPLOAD"
	rateGroupMatch  = "MATCH"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Registered before the middleware chain so probes and scrapes skip auth.
	r.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/metrics", metrics.Handler())

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(deps.Config.Env),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				rateGroupUpload: {Rate: 1, Burst: 10},
				rateGroupMatch:  {Rate: 2, Burst: 20},
			},
			GroupFor: rateGroup,
		}),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	if deps.UsersHandler != nil {
		deps.UsersHandler.RegisterRoutes(api)
	}
	if deps.ResumesHandler != nil {
		deps.ResumesHandler.RegisterRoutes(api)
	}

	return r
}

// rateGroup classifies a request for rate limiting. Only the expensive
// endpoints are limited; everything else passes through.
func rateGroup(c *gin.Context) string {
	path := c.Request.URL.Path
	if c.Request.Method == http.MethodPost {
		if strings.HasSuffix(path, "/resumes") {
			return rateGroupUpload
		}
		if strings.HasSuffix(path, "/match") {
			return rateGroupMatch
		}
	}
	return ""
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
