package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"

	"github.com/a2sh3r/creator-wallet/internal/logger"
)

const sendTimeout = 30 * time.Second

type SendgridConfig struct {
	APIKey   string
	From     string
	FromName string
}

type SendgridSender struct {
	cfg      SendgridConfig
	client   *sendgrid.Client
	mockMode bool
}

// NewSendgridSender builds the sender. Without an API key it runs in
// mock mode and only logs, which is what local development wants.
func NewSendgridSender(cfg SendgridConfig) *SendgridSender {
	mockMode := cfg.APIKey == ""

	var client *sendgrid.Client
	if !mockMode {
		client = sendgrid.NewSendClient(cfg.APIKey)
	}

	return &SendgridSender{
		cfg:      cfg,
		client:   client,
		mockMode: mockMode,
	}
}

func (s *SendgridSender) Send(ctx context.Context, to []string, subject, htmlBody string) error {
	if s.mockMode {
		logger.Log.Info("email sent (mock)",
			zap.Strings("to", to),
			zap.String("subject", subject))
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	from := mail.NewEmail(s.cfg.FromName, s.cfg.From)
	for _, recipient := range to {
		message := mail.NewSingleEmail(from, subject, mail.NewEmail("", recipient), "", htmlBody)

		resp, err := s.client.SendWithContext(ctx, message)
		if err != nil {
			return fmt.Errorf("failed to send email to %s: %w", recipient, err)
		}
		if resp.StatusCode >= 400 {
			return fmt.Errorf("email service error: status %d, body: %s", resp.StatusCode, resp.Body)
		}
	}

	logger.Log.Info("email sent",
		zap.Strings("to", to),
		zap.String("subject", subject))
	return nil
}
