package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	googleauth "growthplan-backend/internal/auth"
	"growthplan-backend/internal/plans"
	"growthplan-backend/internal/profiles"
	"growthplan-backend/internal/shared/config"
	"growthplan-backend/internal/shared/metrics"
	"growthplan-backend/internal/shared/server/middleware"
	"growthplan-backend/internal/shared/server/respond"
	"growthplan-backend/internal/users"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config          config.Config
	ProfilesHandler *profiles.Handler
	PlansHandler    *plans.Handler
	UsersHandler    *users.Handler
	GoogleAuth      *googleauth.GoogleService
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(deps.Config.Env, deps.Config.RenderCallbackKey),
		middleware.RateLimit(planRateLimits()),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())

	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	if deps.UsersHandler != nil {
		deps.UsersHandler.RegisterRoutes(api)
	}
	if deps.ProfilesHandler != nil {
		deps.ProfilesHandler.RegisterRoutes(api)
	}
	if deps.PlansHandler != nil {
		deps.PlansHandler.RegisterRoutes(api)
	}

	return r
}

// planRateLimits throttles plan generation per principal; reads are not limited.
func planRateLimits() middleware.RateLimitConfig {
	return middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"PLAN_CREATE": {Rate: 0.2, Burst: 3},
		},
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodPost && strings.HasSuffix(c.Request.URL.Path, "/plans") {
				return "PLAN_CREATE"
			}
			return ""
		},
	}
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
