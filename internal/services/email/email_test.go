// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package email_test

import (
	"context"
	"testing"
	"time"

	"codeberg.org/oliverandrich/nobias/internal/config"
	"codeberg.org/oliverandrich/nobias/internal/i18n"
	"codeberg.org/oliverandrich/nobias/internal/services/email"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSMTPConfig() *config.SMTPConfig {
	return &config.SMTPConfig{
		Host:     "smtp.example.com",
		Port:     587,
		Username: "testuser",
		Password: "testpass",
		From:     "noreply@example.com",
		FromName: "NoBias",
		TLS:      true,
	}
}

func TestNewService(t *testing.T) {
	svc, err := email.NewService(validSMTPConfig(), 10*time.Minute)

	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestNewService_MissingFrom(t *testing.T) {
	cfg := validSMTPConfig()
	cfg.From = ""

	_, err := email.NewService(cfg, 10*time.Minute)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "from address is required")
}

func TestSendOTP_DevModeWithoutHost(t *testing.T) {
	require.NoError(t, i18n.Init())
	svc, err := email.NewService(&config.SMTPConfig{}, 10*time.Minute)
	require.NoError(t, err)

	// Without an SMTP host the code is only logged, never an error.
	err = svc.SendOTP(context.Background(), "alice@example.com", "123456")

	assert.NoError(t, err)
}
