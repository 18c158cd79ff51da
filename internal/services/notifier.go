package services

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/smtp"
	"strings"
	"time"

	"github.com/cloudsentry/cloudsentry/internal/config"
	"github.com/cloudsentry/cloudsentry/internal/domain/alert"
	"github.com/cloudsentry/cloudsentry/internal/domain/resource"
	"github.com/cloudsentry/cloudsentry/internal/pkg/logger"
	"github.com/cloudsentry/cloudsentry/internal/pkg/metrics"
)

// Notification channel names as recorded in delivered_via
const (
	ChannelEmail = "email"
	ChannelSlack = "slack"
	ChannelTeams = "teams"
)

// Notifier delivers an alert over the configured channels and returns
// the names of the channels that succeeded, in a fixed order.
type Notifier interface {
	Deliver(ctx context.Context, a *alert.Alert, res *resource.Resource) []string
}

// ChannelNotifier implements Notifier over SMTP email and Slack/Teams
// incoming webhooks. Channels with no configuration are skipped; a
// channel failure is logged and does not affect the others.
type ChannelNotifier struct {
	email      config.EmailConfig
	webhooks   config.WebhookConfig
	logger     *logger.Logger
	httpClient *http.Client

	// sendMail is swappable for tests
	sendMail func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error
}

// NewChannelNotifier creates a notifier for the configured channels
func NewChannelNotifier(email config.EmailConfig, webhooks config.WebhookConfig, log *logger.Logger) *ChannelNotifier {
	n := &ChannelNotifier{
		email:    email,
		webhooks: webhooks,
		logger:   log,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
	n.sendMail = n.smtpSend
	return n
}

// Deliver fans the alert out to email, Slack and Teams in that order.
// The returned slice lists the channels that accepted the message.
func (n *ChannelNotifier) Deliver(ctx context.Context, a *alert.Alert, res *resource.Resource) []string {
	subject := fmt.Sprintf("[%s] Alert for Resource %s (%s)", strings.ToUpper(a.Severity), res.Name, res.ResourceID)
	body := fmt.Sprintf(
		"Alert Message: %s\nSeverity: %s\nStatus: %s\nResource: %s (%s)\nTriggered At: %s\n",
		a.Message, a.Severity, a.Status, res.Name, res.ResourceID, a.TriggeredAt.Format(time.RFC3339),
	)

	delivered := []string{}

	if len(n.email.Recipients) > 0 {
		if err := n.deliverEmail(subject, body); err != nil {
			n.logger.WithError(err).Error("email alert delivery failed")
			metrics.RecordDelivery(ChannelEmail, false)
		} else {
			delivered = append(delivered, ChannelEmail)
			metrics.RecordDelivery(ChannelEmail, true)
		}
	}

	if n.webhooks.SlackURL != "" {
		if err := n.deliverWebhook(ctx, n.webhooks.SlackURL, body); err != nil {
			n.logger.WithError(err).Error("slack alert delivery failed")
			metrics.RecordDelivery(ChannelSlack, false)
		} else {
			delivered = append(delivered, ChannelSlack)
			metrics.RecordDelivery(ChannelSlack, true)
		}
	}

	if n.webhooks.TeamsURL != "" {
		if err := n.deliverWebhook(ctx, n.webhooks.TeamsURL, body); err != nil {
			n.logger.WithError(err).Error("teams alert delivery failed")
			metrics.RecordDelivery(ChannelTeams, false)
		} else {
			delivered = append(delivered, ChannelTeams)
			metrics.RecordDelivery(ChannelTeams, true)
		}
	}

	return delivered
}

func (n *ChannelNotifier) deliverEmail(subject, body string) error {
	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s\r\n", n.email.From)
	fmt.Fprintf(&msg, "To: %s\r\n", strings.Join(n.email.Recipients, ", "))
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("\r\n")
	msg.WriteString(body)

	var auth smtp.Auth
	if n.email.Username != "" && n.email.Password != "" {
		auth = smtp.PlainAuth("", n.email.Username, n.email.Password, n.email.SMTPServer)
	}

	addr := fmt.Sprintf("%s:%d", n.email.SMTPServer, n.email.SMTPPort)
	if err := n.sendMail(addr, auth, n.email.From, n.email.Recipients, msg.Bytes()); err != nil {
		return fmt.Errorf("smtp send failed: %w", err)
	}

	n.logger.Infof("alert email sent to %v", n.email.Recipients)
	return nil
}

// smtpSend runs the SMTP session by hand so the TLS upgrade can be
// gated on SMTP_USE_TLS. smtp.SendMail upgrades opportunistically,
// which ignores the setting in both directions: with the flag on it
// must refuse a server that cannot do STARTTLS, and with it off the
// session stays plain.
func (n *ChannelNotifier) smtpSend(addr string, auth smtp.Auth, from string, to []string, msg []byte) error {
	c, err := smtp.Dial(addr)
	if err != nil {
		return err
	}
	defer c.Close()

	if n.email.UseTLS {
		if ok, _ := c.Extension("STARTTLS"); !ok {
			return fmt.Errorf("server %s does not support STARTTLS", addr)
		}
		host, _, err := net.SplitHostPort(addr)
		if err != nil {
			return err
		}
		if err := c.StartTLS(&tls.Config{ServerName: host}); err != nil {
			return err
		}
	}

	if auth != nil {
		if err := c.Auth(auth); err != nil {
			return err
		}
	}

	if err := c.Mail(from); err != nil {
		return err
	}
	for _, rcpt := range to {
		if err := c.Rcpt(rcpt); err != nil {
			return err
		}
	}

	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	return c.Quit()
}

// deliverWebhook posts a Slack-compatible text payload; Teams incoming
// webhooks accept the same shape.
func (n *ChannelNotifier) deliverWebhook(ctx context.Context, url, message string) error {
	payload, err := json.Marshal(map[string]string{"text": message})
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to post webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("webhook returned status %d: %s", resp.StatusCode, string(respBody))
	}

	return nil
}
