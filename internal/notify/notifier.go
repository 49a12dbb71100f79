// Package notify delivers crisis alerts to a pre-registered emergency
// contact through an HTTP mail relay.
//
// Delivery is best effort by contract: a failed or misconfigured relay is
// logged and swallowed, and must never surface as an entry-save failure to
// the journaling user.
package notify

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/reenu-kutty/dear-diary/internal/config"
	"github.com/reenu-kutty/dear-diary/internal/logger"
)

// ErrRelayRejected is returned when the relay answers with a non-2xx status.
var ErrRelayRejected = errors.New("alert relay rejected the request")

// Notifier sends one crisis alert per call.
type Notifier interface {
	NotifyEmergencyContact(ctx context.Context, alert Alert) error
}

// Alert is the payload delivered to the relay.
type Alert struct {
	ContactEmail       string   `json:"contact_email"`
	FromAddress        string   `json:"from_address"`
	EntryTitle         string   `json:"entry_title"`
	EntryContent       string   `json:"entry_content"`
	DetectedIndicators []string `json:"detected_indicators"`
}

// relayNotifier is the production [Notifier] posting alerts to the
// configured relay endpoint.
type relayNotifier struct {
	client      *resty.Client
	fromAddress string
	logger      *logger.Logger
}

// NewRelayNotifier constructs a [Notifier] from the Notify config section.
// An empty relay URL yields a disabled notifier that reports every send as
// failed without performing network I/O; callers already treat notification
// failure as non-fatal, so a disabled relay degrades silently.
func NewRelayNotifier(cfg config.Notify, log *logger.Logger) Notifier {
	if cfg.RelayURL == "" {
		log.Warn().Msg("alert relay is not configured; crisis notifications disabled")
		return &disabledNotifier{logger: log}
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.RelayURL, "/")).
		SetTimeout(timeout)
	if cfg.AuthToken != "" {
		cli.SetAuthToken(cfg.AuthToken)
	}

	return &relayNotifier{
		client:      cli,
		fromAddress: cfg.FromAddress,
		logger:      log,
	}
}

// NotifyEmergencyContact posts the alert to the relay.
func (n *relayNotifier) NotifyEmergencyContact(ctx context.Context, alert Alert) error {
	log := logger.FromContext(ctx)

	alert.FromAddress = n.fromAddress

	resp, err := n.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(alert).
		Post("/")
	if err != nil {
		log.Err(err).Str("func", "*relayNotifier.NotifyEmergencyContact").Msg("alert relay request failed")
		return fmt.Errorf("alert relay request: %w", err)
	}

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		log.Error().
			Int("status", resp.StatusCode()).
			Str("func", "*relayNotifier.NotifyEmergencyContact").
			Msg("alert relay rejected the request")
		return fmt.Errorf("%w: status %d", ErrRelayRejected, resp.StatusCode())
	}

	return nil
}

type disabledNotifier struct {
	logger *logger.Logger
}

func (n *disabledNotifier) NotifyEmergencyContact(ctx context.Context, alert Alert) error {
	logger.FromContext(ctx).Warn().Msg("crisis alert dropped: relay not configured")
	return errors.New("alert relay not configured")
}
