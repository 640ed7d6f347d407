package internal

import (
	"net"
	"net/http"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler exposes the diagnostic HTTP endpoints. All collaborators are
// injected; handlers share no mutable state.
type Handler struct {
	cfg       Config
	log       *zap.Logger
	resolver  *Resolver
	collector *Collector
}

func NewHandler(cfg Config, log *zap.Logger, resolver *Resolver, collector *Collector) *Handler {
	return &Handler{cfg: cfg, log: log, resolver: resolver, collector: collector}
}

func nowISO() string {
	return time.Now().Format(time.RFC3339)
}

func hostname() string {
	name, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return name
}

// GET /
// Space-joined address list, mirroring `hostname -I`. Empty body when
// nothing survives the loopback filter.
func (h *Handler) Index(c *gin.Context) {
	ips := h.resolver.Addresses()
	body := strings.Join(ips, " ")
	if body != "" {
		body += "\n"
	}
	c.String(http.StatusOK, "%s", body)
}

// GET /json
func (h *Handler) JSON(c *gin.Context) {
	c.JSON(http.StatusOK, IPInfoResponse{
		Hostname:    hostname(),
		IPAddresses: h.resolver.Addresses(),
		Timestamp:   nowISO(),
		Version:     Version,
	})
}

// GET /health
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: nowISO(),
		AppName:   h.cfg.AppName,
		Version:   Version,
	})
}

// GET /request-info
// Reflects the request exactly as received; nothing here can fail.
func (h *Handler) RequestInfo(c *gin.Context) {
	r := c.Request

	headers := make(map[string]string, len(r.Header)+1)
	for name, values := range r.Header {
		headers[name] = strings.Join(values, ", ")
	}
	// Go hoists the Host header out of the header map.
	headers["Host"] = r.Host

	remoteIP, remotePort, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP, remotePort = r.RemoteAddr, ""
	}

	c.JSON(http.StatusOK, RequestInfoResponse{
		RemoteAddr: remoteIP,
		RemotePort: remotePort,
		UserAgent:  r.UserAgent(),
		Method:     r.Method,
		Path:       r.URL.Path,
		Headers:    headers,
		Timestamp:  nowISO(),
	})
}

// GET /metrics
func (h *Handler) Metrics(c *gin.Context) {
	snap, err := h.collector.Snapshot()
	if err != nil {
		h.log.Error("metrics collection failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:     err.Error(),
			Timestamp: nowISO(),
		})
		return
	}
	c.JSON(http.StatusOK, MetricsResponse{Timestamp: nowISO(), Metrics: snap})
}

// GET /config
func (h *Handler) Config(c *gin.Context) {
	c.JSON(http.StatusOK, ConfigResponse{
		AppName:          h.cfg.AppName,
		Version:          Version,
		Port:             h.cfg.Port,
		LogLevel:         string(h.cfg.LogLevel),
		CORSEnabled:      h.cfg.CORSEnabled,
		ShowLocalhostIPs: h.cfg.ShowLocalhostIPs,
		GoVersion:        runtime.Version(),
		Hostname:         hostname(),
	})
}

// GET /all
// One-stop aggregate of the other endpoints. Metrics are best-effort:
// on a collector failure the key is omitted rather than failing the
// whole response.
func (h *Handler) All(c *gin.Context) {
	r := c.Request

	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	resp := AllResponse{
		Hostname:    hostname(),
		IPAddresses: h.resolver.Addresses(),
		Request: RequestSummary{
			RemoteAddr: remoteIP,
			UserAgent:  r.UserAgent(),
			Method:     r.Method,
		},
		Config: ConfigSummary{
			AppName: h.cfg.AppName,
			Version: Version,
			Port:    h.cfg.Port,
		},
		Timestamp: nowISO(),
		Version:   Version,
	}

	if snap, err := h.collector.Snapshot(); err != nil {
		h.log.Warn("metrics omitted from /all", zap.Error(err))
	} else {
		resp.Metrics = &snap
	}

	c.JSON(http.StatusOK, resp)
}
