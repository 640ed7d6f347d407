package internal

// IPInfoResponse is the body of /json.
type IPInfoResponse struct {
	Hostname    string   `json:"hostname"`
	IPAddresses []string `json:"ip_addresses"`
	Timestamp   string   `json:"timestamp"`
	Version     string   `json:"version"`
}

// HealthResponse is the body of /health.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	AppName   string `json:"app_name"`
	Version   string `json:"version"`
}

// RequestInfoResponse echoes the incoming request on /request-info.
type RequestInfoResponse struct {
	RemoteAddr string            `json:"remote_addr"`
	RemotePort string            `json:"remote_port"`
	UserAgent  string            `json:"user_agent"`
	Method     string            `json:"method"`
	Path       string            `json:"path"`
	Headers    map[string]string `json:"headers"`
	Timestamp  string            `json:"timestamp"`
}

// MetricsSnapshot holds one read of the OS resource counters.
// Memory values are MB, disk values GB, both rounded to two decimals.
type MetricsSnapshot struct {
	CPUPercent        float64 `json:"cpu_percent"`
	CPUCount          int     `json:"cpu_count"`
	MemoryPercent     float64 `json:"memory_percent"`
	MemoryUsedMB      float64 `json:"memory_used_mb"`
	MemoryTotalMB     float64 `json:"memory_total_mb"`
	MemoryAvailableMB float64 `json:"memory_available_mb"`
	DiskPercent       float64 `json:"disk_percent"`
	DiskUsedGB        float64 `json:"disk_used_gb"`
	DiskFreeGB        float64 `json:"disk_free_gb"`
	DiskTotalGB       float64 `json:"disk_total_gb"`
	UptimeSeconds     int64   `json:"uptime_seconds"`
}

// MetricsResponse is the body of /metrics.
type MetricsResponse struct {
	Timestamp string          `json:"timestamp"`
	Metrics   MetricsSnapshot `json:"metrics"`
}

// ConfigResponse is the body of /config. There are no secrets to
// redact; every field is safe to expose.
type ConfigResponse struct {
	AppName          string `json:"app_name"`
	Version          string `json:"version"`
	Port             int    `json:"port"`
	LogLevel         string `json:"log_level"`
	CORSEnabled      bool   `json:"cors_enabled"`
	ShowLocalhostIPs bool   `json:"show_localhost_ips"`
	GoVersion        string `json:"go_version"`
	Hostname         string `json:"hostname"`
}

// RequestSummary is the abbreviated request block inside /all.
type RequestSummary struct {
	RemoteAddr string `json:"remote_addr"`
	UserAgent  string `json:"user_agent"`
	Method     string `json:"method"`
}

// ConfigSummary is the abbreviated config block inside /all.
type ConfigSummary struct {
	AppName string `json:"app_name"`
	Version string `json:"version"`
	Port    int    `json:"port"`
}

// AllResponse aggregates every diagnostic on /all. Metrics is omitted
// when the counters cannot be read.
type AllResponse struct {
	Hostname    string           `json:"hostname"`
	IPAddresses []string         `json:"ip_addresses"`
	Request     RequestSummary   `json:"request"`
	Metrics     *MetricsSnapshot `json:"metrics,omitempty"`
	Config      ConfigSummary    `json:"config"`
	Timestamp   string           `json:"timestamp"`
	Version     string           `json:"version"`
}

// ErrorResponse is the uniform JSON error body.
type ErrorResponse struct {
	Error     string `json:"error"`
	Path      string `json:"path,omitempty"`
	Timestamp string `json:"timestamp"`
}
