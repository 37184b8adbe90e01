package notification

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	appordering "github.com/dyqani/backend/internal/application/ordering"
	"github.com/dyqani/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// SMTPNotifier delivers order notifications over plain SMTP
type SMTPNotifier struct {
	cfg    config.SMTPConfig
	logger *zap.Logger
	send   func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPNotifier creates a new SMTP notifier
func NewSMTPNotifier(cfg config.SMTPConfig, logger *zap.Logger) *SMTPNotifier {
	return &SMTPNotifier{
		cfg:    cfg,
		logger: logger,
		send:   smtp.SendMail,
	}
}

// Send delivers one notification email
func (n *SMTPNotifier) Send(_ context.Context, notification appordering.OrderNotification) error {
	if notification.Recipient == "" {
		return nil
	}

	addr := fmt.Sprintf("%s:%d", n.cfg.Host, n.cfg.Port)
	var auth smtp.Auth
	if n.cfg.Username != "" {
		auth = smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)
	}

	msg := buildMessage(n.cfg.From, notification)
	if err := n.send(addr, auth, n.cfg.From, []string{notification.Recipient}, msg); err != nil {
		return fmt.Errorf("failed to send notification email: %w", err)
	}

	n.logger.Debug("notification email sent",
		zap.String("recipient", notification.Recipient),
		zap.String("kind", notification.Kind),
	)
	return nil
}

func buildMessage(from string, notification appordering.OrderNotification) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", notification.Recipient)
	fmt.Fprintf(&b, "Subject: %s\r\n", notification.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(notification.Body)
	b.WriteString("\r\n")
	return []byte(b.String())
}

// Ensure SMTPNotifier implements OrderNotifier
var _ appordering.OrderNotifier = (*SMTPNotifier)(nil)

// LogNotifier writes notifications to the log instead of sending them.
// Used in development and as the fallback when SMTP is not configured.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a new log-only notifier
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Send logs the notification
func (n *LogNotifier) Send(_ context.Context, notification appordering.OrderNotification) error {
	n.logger.Info("order notification",
		zap.String("recipient", notification.Recipient),
		zap.String("kind", notification.Kind),
		zap.String("subject", notification.Subject),
		zap.Int("order_count", notification.OrderCount),
		zap.String("total_amount", notification.TotalAmount.String()),
	)
	return nil
}

// Ensure LogNotifier implements OrderNotifier
var _ appordering.OrderNotifier = (*LogNotifier)(nil)
