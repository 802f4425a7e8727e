// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package email delivers verification codes over SMTP.
package email

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"codeberg.org/oliverandrich/nobias/internal/config"
	"codeberg.org/oliverandrich/nobias/internal/i18n"
	"github.com/wneessen/go-mail"
)

// Service sends verification code emails. Without an SMTP host configured it
// runs in dev mode and only logs the code.
type Service struct {
	cfg    *config.SMTPConfig
	otpTTL time.Duration
}

// NewService creates a new email service.
func NewService(cfg *config.SMTPConfig, otpTTL time.Duration) (*Service, error) {
	if cfg.Host != "" && cfg.From == "" {
		return nil, fmt.Errorf("SMTP from address is required")
	}
	return &Service{cfg: cfg, otpTTL: otpTTL}, nil
}

// SendOTP delivers a verification code to the given address.
func (s *Service) SendOTP(ctx context.Context, toEmail, code string) error {
	subject := i18n.T(ctx, "otp_email_subject")
	body := i18n.TData(ctx, "otp_email_body", map[string]any{
		"Code":    code,
		"Minutes": int(s.otpTTL.Minutes()),
	})

	if s.cfg.Host == "" {
		slog.Info("otp_email_skipped", "to", toEmail, "code", code, "reason", "no SMTP host configured")
		return nil
	}

	return s.send(toEmail, subject, body)
}

// send sends an email via SMTP using go-mail.
func (s *Service) send(to, subject, body string) error {
	msg := mail.NewMsg()

	if s.cfg.FromName != "" {
		if err := msg.FromFormat(s.cfg.FromName, s.cfg.From); err != nil {
			return fmt.Errorf("setting from address: %w", err)
		}
	} else {
		if err := msg.From(s.cfg.From); err != nil {
			return fmt.Errorf("setting from address: %w", err)
		}
	}

	if err := msg.To(to); err != nil {
		return fmt.Errorf("setting to address: %w", err)
	}

	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	opts := []mail.Option{
		mail.WithPort(s.cfg.Port),
	}

	// Implicit TLS (SSL) for port 465, STARTTLS otherwise
	if s.cfg.TLS {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
		if s.cfg.Port == 465 {
			opts = append(opts, mail.WithSSL())
		}
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.NoTLS))
	}

	if s.cfg.Username != "" && s.cfg.Password != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.cfg.Username),
			mail.WithPassword(s.cfg.Password),
		)
	}

	client, err := mail.NewClient(s.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("creating mail client: %w", err)
	}

	if err := client.DialAndSend(msg); err != nil {
		return fmt.Errorf("sending email: %w", err)
	}

	return nil
}
