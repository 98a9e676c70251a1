// Package notify delivers reservation notices over SMTP.
package notify

import (
	"context"
	"fmt"
	"net"
	"net/smtp"

	"github.com/morice333/workstation-queue-dashboard/internal/core/domain"
)

// Config holds the SMTP transport settings plus the fixed sender and
// recipient of every notice.
type Config struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	To       string
}

// SMTPSender implements ports.NotificationSender over plain SMTP. Auth is
// used only when a username is configured.
type SMTPSender struct {
	cfg Config
}

func NewSMTPSender(cfg Config) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

// Send delivers a single notice. The context is honoured only up to the
// point of dialing; net/smtp has no per-command cancellation.
func (s *SMTPSender) Send(ctx context.Context, notice domain.Notice) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	addr := net.JoinHostPort(s.cfg.Host, s.cfg.Port)

	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	msg := s.message(notice)
	if err := smtp.SendMail(addr, auth, s.cfg.From, []string{s.cfg.To}, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

func (s *SMTPSender) message(notice domain.Notice) []byte {
	body := fmt.Sprintf(
		"A new workstation request has been submitted:\r\n"+
			"Name: %s\r\n"+
			"Role: %s\r\n"+
			"Start Time: %s\r\n"+
			"End Time: %s\r\n"+
			"Status: %s\r\n",
		notice.Name, notice.Role, notice.StartDate, notice.EndDate, notice.Status,
	)

	return []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: New Workstation Request Submitted\r\n\r\n%s",
		s.cfg.From, s.cfg.To, body,
	))
}
