package handler

import (
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/noah-isme/nextstop-api/internal/middleware"
	"github.com/noah-isme/nextstop-api/internal/service"
	"github.com/noah-isme/nextstop-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/nextstop-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/nextstop-api/pkg/middleware/requestid"
)

// RouterConfig carries everything needed to mount the HTTP surface.
type RouterConfig struct {
	APIPrefix        string
	AllowedOrigins   []string
	EnableDocs       bool
	EnableMetrics    bool
	LeadsRequireAuth bool
	Logger           *zap.Logger
	Catalog          *service.CatalogService
	Inquiries        *service.InquiryService
	Auth             *service.AuthService
	Metrics          *service.MetricsService
	ReadinessChecks  []ReadinessCheck
}

// NewRouter builds the gin engine with middleware and every route mounted.
func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	prefix := "/" + strings.Trim(cfg.APIPrefix, "/")
	if prefix == "/" {
		prefix = ""
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(cfg.Logger, logger.WithRouteTag(prefix+"/inquiries", "leads")))
	r.Use(corsmiddleware.New(cfg.AllowedOrigins))
	r.Use(middleware.Metrics(cfg.Metrics))

	metricsHandler := NewMetricsHandler(cfg.Metrics, cfg.ReadinessChecks...)
	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	if cfg.EnableMetrics {
		r.GET("/metrics", metricsHandler.Prometheus)
	}
	if cfg.EnableDocs {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(prefix)

	universities := NewUniversityHandler(cfg.Catalog)
	api.GET("/universities", universities.List)
	api.GET("/universities/:id", universities.Get)
	api.GET("/universities/:id/verification", universities.Verification)

	programs := NewProgramHandler(cfg.Catalog)
	api.GET("/programs", programs.List)
	api.GET("/programs/:id", programs.Get)

	testimonials := NewTestimonialHandler(cfg.Catalog)
	api.GET("/testimonials", testimonials.List)

	inquiries := NewInquiryHandler(cfg.Inquiries)
	api.POST("/inquiries", inquiries.Submit)
	leads := api.Group("/inquiries", middleware.LeadAccess(cfg.LeadsRequireAuth, cfg.Auth))
	leads.GET("", inquiries.List)
	leads.GET("/export", inquiries.Export)

	if cfg.Auth != nil {
		authHandler := NewAuthHandler(cfg.Auth)
		api.POST("/auth/token", authHandler.Token)
	}

	return r
}
