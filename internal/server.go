package internal

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewServer assembles the gin engine: middleware, the diagnostic
// routes, and JSON bodies for unknown routes and wrong methods.
func NewServer(cfg Config, log *zap.Logger, h *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(log))

	if cfg.CORSEnabled {
		cc := cors.DefaultConfig()
		cc.AllowAllOrigins = true
		cc.AllowMethods = []string{http.MethodGet, http.MethodHead, http.MethodOptions}
		r.Use(cors.New(cc))
	}

	r.GET("/", h.Index)
	r.GET("/json", h.JSON)
	r.GET("/health", h.Health)
	r.GET("/request-info", h.RequestInfo)
	r.GET("/metrics", h.Metrics)
	r.GET("/config", h.Config)
	r.GET("/all", h.All)

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, ErrorResponse{
			Error:     "method not allowed",
			Path:      c.Request.URL.Path,
			Timestamp: nowISO(),
		})
	})
	r.NoRoute(func(c *gin.Context) {
		log.Warn("route not found", zap.String("path", c.Request.URL.Path))
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:     "not found",
			Path:      c.Request.URL.Path,
			Timestamp: nowISO(),
		})
	})

	return r
}

// requestLogger logs one line per request after it completes.
func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("remote", c.ClientIP()),
			zap.Int("status", c.Writer.Status()),
		)
	}
}
