package api

import (
	"fmt"
	"net/http"
	"time"
)

// HealthStatus represents the health of the service.
type HealthStatus struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}

// HealthChecker reports process liveness.
type HealthChecker struct {
	startTime time.Time
	now       func() time.Time
}

// NewHealthChecker creates a new HealthChecker.
func NewHealthChecker() *HealthChecker {
	return &HealthChecker{startTime: time.Now(), now: time.Now}
}

const healthVersion = "1.0.0"

// HandleHealth returns the service status inside the api envelope.
//
//	GET /health
func (hc *HealthChecker) HandleHealth(r *http.Request) (any, error) {
	return HealthStatus{
		Status:  "healthy",
		Version: healthVersion,
		Uptime:  formatUptime(hc.now().Sub(hc.startTime)),
	}, nil
}

func formatUptime(d time.Duration) string {
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, seconds)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	}
	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}
	return fmt.Sprintf("%ds", seconds)
}
