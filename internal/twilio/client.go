package twilio

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"safewalk/internal/config"
)

// Client delivers WhatsApp messages through the Twilio Messages API. When
// credentials are missing or the integration is disabled, deliveries are
// logged locally instead so the rest of the pipeline keeps working.
type Client struct {
	logger *slog.Logger
	cfg    config.TwilioConfig
	http   *http.Client
}

func NewClient(logger *slog.Logger, cfg config.TwilioConfig) *Client {
	return &Client{
		logger: logger,
		cfg:    cfg,
		http:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) enabled() bool {
	return !c.cfg.Disabled && c.cfg.AccountSID != "" && c.cfg.AuthToken != ""
}

// Deliver sends one message. The returned error covers transport and API
// failures; in fallback mode delivery always succeeds.
func (c *Client) Deliver(ctx context.Context, phone, message string) error {
	if !c.enabled() {
		c.logger.Info("twilio disabled, message logged",
			slog.String("phone", phone),
			slog.String("message", message),
		)
		return nil
	}

	endpoint := fmt.Sprintf("https://api.twilio.com/2010-04-01/Accounts/%s/Messages.json", c.cfg.AccountSID)

	form := url.Values{}
	form.Set("From", c.cfg.FromNumber)
	form.Set("To", whatsappNumber(phone))
	form.Set("Body", message)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.SetBasicAuth(c.cfg.AccountSID, c.cfg.AuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("twilio: %s: %s", resp.Status, string(body))
	}
	return nil
}

// whatsappNumber prefixes the channel the way the Twilio sandbox expects.
func whatsappNumber(phone string) string {
	if strings.HasPrefix(phone, "whatsapp:") {
		return phone
	}
	return "whatsapp:" + phone
}
