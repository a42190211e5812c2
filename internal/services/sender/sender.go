// Package sender emails new-lead notifications to the site
// administrator.
package sender

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mentesana/landing-api/internal/lib/sl"
	"github.com/mentesana/landing-api/internal/lib/smtp"
	"github.com/mentesana/landing-api/internal/models"
)

type SenderService struct {
	transport  Transport
	adminEmail string
	log        *slog.Logger
}

type Transport interface {
	Connect() (smtp.Client, error)
	GetSMTPUser() string
}

func NewSenderService(transport Transport, adminEmail string, log *slog.Logger) *SenderService {
	return &SenderService{
		transport:  transport,
		adminEmail: adminEmail,
		log:        log,
	}
}

// SendLeadNotification handles a lead-created event from the broker
// and emails the administrator the form contents.
func (s *SenderService) SendLeadNotification(body []byte) error {
	var lead models.NewLead
	if err := json.Unmarshal(body, &lead); err != nil {
		s.log.Error("failed to unmarshal message body", sl.Err(err))
		return fmt.Errorf("error unmarshalling message: %w", err)
	}

	to := []string{s.adminEmail}
	subject := "Nueva inscripción en la página"

	lines := []string{
		fmt.Sprintf("Nombre: %s", lead.Name),
		fmt.Sprintf("Correo: %s", lead.Email),
	}
	if lead.Phone != "" {
		lines = append(lines, fmt.Sprintf("Teléfono: %s", lead.Phone))
	}
	if lead.Message != "" {
		lines = append(lines, "", lead.Message)
	}
	bodyText := strings.Join(lines, "\n")

	return s.sendEmail(to, subject, bodyText)
}

func (s *SenderService) sendEmail(to []string, subject, bodyText string) error {
	msg := strings.Join([]string{
		"From: " + s.transport.GetSMTPUser(),
		"To: " + strings.Join(to, ";"),
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		bodyText,
	}, "\r\n")

	client, err := s.transport.Connect()
	if err != nil {
		s.log.Error("failed to connect to SMTP server", sl.Err(err))
		return err
	}
	defer client.Close()

	if err := client.Mail(s.transport.GetSMTPUser()); err != nil {
		s.log.Error("failed to set MAIL FROM", slog.String("from", s.transport.GetSMTPUser()), sl.Err(err))
		return err
	}

	for _, addr := range to {
		if err := client.Rcpt(addr); err != nil {
			s.log.Error("failed to set RCPT TO", slog.String("recipient", addr), sl.Err(err))
			return err
		}
	}

	wc, err := client.Data()
	if err != nil {
		s.log.Error("failed to get data writer", sl.Err(err))
		return err
	}

	if _, err = wc.Write([]byte(msg)); err != nil {
		s.log.Error("failed to write email body", sl.Err(err))
		return err
	}

	if err = wc.Close(); err != nil {
		s.log.Error("failed to close data writer", sl.Err(err))
		return err
	}

	if err = client.Quit(); err != nil {
		s.log.Error("failed to quit SMTP client", sl.Err(err))
		return err
	}

	s.log.Info("lead notification sent", slog.Any("to", to))
	return nil
}
