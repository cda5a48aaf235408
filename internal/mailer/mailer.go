// Package mailer sends transactional email for password resets.
package mailer

import (
	"fmt"
	"net/smtp"

	"github.com/maxwellkiplagat/Movie-clubb/internal/config"
	"github.com/maxwellkiplagat/Movie-clubb/internal/middleware"
)

// Mailer delivers transactional mail.
type Mailer interface {
	SendPasswordReset(to, resetLink string) error
}

// SMTPMailer delivers mail over SMTP with plain auth.
type SMTPMailer struct {
	host     string
	port     string
	username string
	password string
	sender   string
}

// NewSMTPMailer builds a mailer from config.
func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		host:     cfg.MailHost,
		port:     cfg.MailPort,
		username: cfg.MailUsername,
		password: cfg.MailPassword,
		sender:   cfg.MailSender,
	}
}

// SendPasswordReset emails a reset link to the user.
func (m *SMTPMailer) SendPasswordReset(to, resetLink string) error {
	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: Reset your password\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n"+
			"We received a request to reset your password.\r\n\r\n"+
			"Open the link below to choose a new one. The link expires in one hour.\r\n\r\n%s\r\n\r\n"+
			"If you did not request a reset, you can ignore this email.\r\n",
		m.sender, to, resetLink,
	)

	addr := fmt.Sprintf("%s:%s", m.host, m.port)
	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	if err := smtp.SendMail(addr, auth, m.sender, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send reset email: %w", err)
	}
	return nil
}

// LogMailer logs instead of sending. Used in development and tests where no
// SMTP server is configured.
type LogMailer struct{}

// SendPasswordReset logs the reset link.
func (LogMailer) SendPasswordReset(to, resetLink string) error {
	middleware.Logger.Info("password reset email (not sent)", "to", to, "reset_link", resetLink)
	return nil
}

// FromConfig returns an SMTP mailer when mail settings are present and a log
// mailer otherwise.
func FromConfig(cfg *config.Config) Mailer {
	if cfg.MailHost == "" {
		return LogMailer{}
	}
	return NewSMTPMailer(cfg)
}
