package logger

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/noah-isme/nextstop-api/pkg/config"
	"github.com/noah-isme/nextstop-api/pkg/middleware/requestid"
)

func New(cfg *config.Config) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.Env == config.EnvProduction {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	switch cfg.Log.Format {
	case "console":
		zapCfg.Encoding = "console"
	default:
		zapCfg.Encoding = "json"
	}

	if cfg.Log.Level != "" {
		if err := zapCfg.Level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		}
	}

	zapCfg.EncoderConfig.TimeKey = "timestamp"
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := zapCfg.Build()
	if err != nil {
		return nil, err
	}
	return l.With(zap.String("service", "nextstop-api")), nil
}

// Option adjusts the access log middleware.
type Option func(*accessLog)

// WithRouteTag adds an area field to entries whose route starts with prefix,
// so lead traffic can be filtered out of the general access log.
func WithRouteTag(prefix, area string) Option {
	return func(a *accessLog) {
		a.tags = append(a.tags, routeTag{prefix: prefix, area: area})
	}
}

type routeTag struct {
	prefix string
	area   string
}

type accessLog struct {
	tags []routeTag
}

func (a *accessLog) area(route string) string {
	for _, t := range a.tags {
		if strings.HasPrefix(route, t.prefix) {
			return t.area
		}
	}
	return ""
}

// GinMiddleware writes one access log line per request, keyed by route
// template. Server errors log at error level and rejected requests that
// carry handler errors at warn, so failed submissions surface without the
// response leaking details.
func GinMiddleware(l *zap.Logger, opts ...Option) gin.HandlerFunc {
	cfg := &accessLog{}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("route", route),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.ClientIP()),
		}
		if reqID := requestid.Value(c); reqID != "" {
			fields = append(fields, zap.String("request_id", reqID))
		}
		if area := cfg.area(route); area != "" {
			fields = append(fields, zap.String("area", area))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch {
		case status >= 500:
			l.Error("http_request", fields...)
		case status >= 400 && len(c.Errors) > 0:
			l.Warn("http_request", fields...)
		default:
			l.Info("http_request", fields...)
		}
	}
}
