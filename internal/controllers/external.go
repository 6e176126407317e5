package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/wurt83ow/maintracker/internal/models"
	"go.uber.org/zap"
)

// ExtController delivers preventive alerts to the outside world.
// Every alert is logged; it is also posted as JSON when a webhook is configured.
type ExtController struct {
	log     Log
	extAddr func() string
	client  *http.Client
}

func NewExtController(extAddr func() string, log Log) *ExtController {
	return &ExtController{
		log:     log,
		extAddr: extAddr,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func (c *ExtController) Notify(ctx context.Context, alert models.PreventiveAlert) error {
	c.log.Info("preventive maintenance alert",
		zap.String("machine", alert.Machine),
		zap.String("next_due", alert.NextDue),
		zap.Int("days_remaining", alert.DaysRemaining),
		zap.String("status", alert.Status),
	)

	addr := strings.TrimSpace(c.extAddr())
	if addr == "" {
		return nil
	}

	// add the http scheme if it is missing
	if !strings.HasPrefix(addr, "http://") && !strings.HasPrefix(addr, "https://") {
		addr = "http://" + addr
	}

	body, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("failed to encode alert: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, addr, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Info("unable to access notification webhook, check that it is running: ", zap.Error(err))
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Info("status code error: ", zap.String("status", resp.Status))
		return fmt.Errorf("status code error: %s", resp.Status)
	}

	return nil
}
