package heartbeat

import (
	"context"
	"net/http"
	"time"

	"skyhunt-service/pkg/logger"

	"github.com/go-resty/resty/v2"
)

// Heartbeat pings an external URL on an interval so the hosting platform
// does not idle the process. It shares no state with the core.
type Heartbeat struct {
	url      string
	interval time.Duration
	client   *resty.Client
	logger   logger.Logger
}

// New creates a heartbeat pinger. An empty URL disables it.
func New(url string, interval time.Duration, logger logger.Logger) *Heartbeat {
	return &Heartbeat{
		url:      url,
		interval: interval,
		client:   resty.New().SetTimeout(15 * time.Second),
		logger:   logger,
	}
}

// Start runs the ping loop until the context is cancelled
func (h *Heartbeat) Start(ctx context.Context) {
	if h.url == "" {
		h.logger.Warn("No heartbeat URL configured, self-ping inactive")
		return
	}

	h.logger.Info("Heartbeat active", "url", h.url, "interval", h.interval)
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			h.logger.Info("Heartbeat stopped")
			return
		case <-ticker.C:
			resp, err := h.client.R().SetContext(ctx).Get(h.url)
			if err != nil {
				h.logger.Error("Heartbeat error", "error", err)
				continue
			}
			if resp.StatusCode() != http.StatusOK {
				h.logger.Warn("Heartbeat warning", "status", resp.StatusCode())
			}
		}
	}
}
