package router

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"golang.org/x/time/rate"

	"github.com/mediflow/mediflow-api/internal/handler"
	"github.com/mediflow/mediflow-api/internal/handler/health"
	"github.com/mediflow/mediflow-api/internal/handler/prometheus"
	"github.com/mediflow/mediflow-api/internal/middleware"
	apperrors "github.com/mediflow/mediflow-api/pkg/errors"
	pkgvalidator "github.com/mediflow/mediflow-api/pkg/validator"
)

// Handler is an API handler mounting its routes under /api/v1.
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, guard handler.Guard)
}

type RouterConfig struct {
	Mode           string
	RateLimit      rate.Limit
	RateBurst      int
	RateLimitOn    bool
	RateIdleTTL    time.Duration
	AllowedOrigins []string
	MaxBodyBytes   int64
}

type Router struct {
	engine   *gin.Engine
	auth     *middleware.AuthMiddleware
	health   *health.Handler
	metrics  *prometheus.Handler
	handlers []Handler
}

func NewRouter(
	config RouterConfig,
	auth *middleware.AuthMiddleware,
	healthH *health.Handler,
	metricsH *prometheus.Handler,
	handlers ...Handler,
) (*Router, error) {
	if config.Mode != "" {
		gin.SetMode(config.Mode)
	}

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := pkgvalidator.Register(v); err != nil {
			return nil, fmt.Errorf("failed to register validators: %w", err)
		}
	}

	engine := gin.New()
	engine.HandleMethodNotAllowed = true
	engine.NoRoute(func(c *gin.Context) {
		handler.RespondError(c, apperrors.NotFound("Resource", nil))
	})
	engine.NoMethod(func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusMethodNotAllowed, handler.ErrorResponse{
			Status:  handler.StatusError,
			Message: "Method not allowed",
			Code:    "method_not_allowed",
		})
	})

	engine.Use(
		middleware.RequestID(),
		middleware.Logger(),
		metricsH.Middleware(),
		middleware.Recovery(),
		middleware.SecurityHeaders(middleware.DefaultSecurityConfig()),
		middleware.CORS(middleware.DefaultCORSConfig(config.AllowedOrigins)),
	)

	if config.RateLimitOn {
		engine.Use(middleware.NewRateLimiter(middleware.RateLimiterConfig{
			Rate:    config.RateLimit,
			Burst:   config.RateBurst,
			IdleTTL: config.RateIdleTTL,
		}).RateLimit())
	}

	r := &Router{
		engine:   engine,
		auth:     auth,
		health:   healthH,
		metrics:  metricsH,
		handlers: handlers,
	}
	r.setup(config)
	return r, nil
}

func (r *Router) setup(config RouterConfig) {
	r.health.RegisterRoutes(r.engine)
	r.engine.GET("/metrics", r.metrics.Handler())

	api := r.engine.Group("/api/v1")
	api.Use(middleware.SizeLimit(config.MaxBodyBytes))

	guard := r.auth.Guard()
	for _, h := range r.handlers {
		h.RegisterRoutes(api, guard)
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
