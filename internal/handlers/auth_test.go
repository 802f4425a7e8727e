// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"codeberg.org/oliverandrich/nobias/internal/handlers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerUser(t *testing.T, h *handlers.Handlers, email string) {
	t.Helper()
	code, _ := jsonRequest(t, h.Register, http.MethodPost, "/api/auth/register",
		fmt.Sprintf(`{"email":%q,"password":"secret123"}`, email))
	require.Equal(t, http.StatusCreated, code)
}

func TestRegisterHandler(t *testing.T) {
	h, repo, mailer := newTestHandlers(t)

	code, body := jsonRequest(t, h.Register, http.MethodPost, "/api/auth/register",
		`{"email":"alice@example.com","password":"secret123","first_name":"Alice"}`)

	assert.Equal(t, http.StatusCreated, code)
	assert.Contains(t, body, "Registration successful")
	assert.Equal(t, "alice@example.com", mailer.lastEmail)
	assert.NotContains(t, body, "password_hash")
	assert.NotContains(t, body, mailer.lastCode)

	stored, err := repo.GetUserByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Alice", stored.FirstName)
}

func TestRegisterHandler_Duplicate(t *testing.T) {
	h, _, _ := newTestHandlers(t)
	registerUser(t, h, "alice@example.com")

	code, body := jsonRequest(t, h.Register, http.MethodPost, "/api/auth/register",
		`{"email":"alice@example.com","password":"secret123"}`)

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, body, "already registered")
}

func TestRegisterHandler_Validation(t *testing.T) {
	h, _, _ := newTestHandlers(t)

	code, _ := jsonRequest(t, h.Register, http.MethodPost, "/api/auth/register",
		`{"email":"not-an-email","password":"secret123"}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = jsonRequest(t, h.Register, http.MethodPost, "/api/auth/register",
		`{"email":"alice@example.com","password":"short"}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = jsonRequest(t, h.Register, http.MethodPost, "/api/auth/register",
		`{"email":"alice@example.com","password":"secret123","role":"superuser"}`)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestRegisterHandler_MailerFailure(t *testing.T) {
	h, repo, mailer := newTestHandlers(t)
	mailer.err = errors.New("smtp unreachable")

	code, _ := jsonRequest(t, h.Register, http.MethodPost, "/api/auth/register",
		`{"email":"alice@example.com","password":"secret123"}`)

	assert.Equal(t, http.StatusBadGateway, code)

	// The account is retained for a later resend.
	_, err := repo.GetUserByEmail(context.Background(), "alice@example.com")
	assert.NoError(t, err)
}

func TestSendOTPHandler(t *testing.T) {
	h, _, mailer := newTestHandlers(t)
	registerUser(t, h, "alice@example.com")

	code, body := jsonRequest(t, h.SendOTP, http.MethodPost, "/api/auth/send-otp",
		`{"email":"alice@example.com"}`)

	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "verification code has been sent")
	assert.NotEmpty(t, mailer.lastCode)
}

func TestSendOTPHandler_UnknownAccount(t *testing.T) {
	h, _, _ := newTestHandlers(t)

	code, body := jsonRequest(t, h.SendOTP, http.MethodPost, "/api/auth/send-otp",
		`{"email":"nobody@example.com"}`)

	assert.Equal(t, http.StatusNotFound, code)
	assert.Contains(t, body, "not found")
}

func TestVerifyOTPHandler(t *testing.T) {
	h, repo, mailer := newTestHandlers(t)
	registerUser(t, h, "alice@example.com")

	code, body := jsonRequest(t, h.VerifyOTP, http.MethodPost, "/api/auth/verify-otp",
		fmt.Sprintf(`{"email":"alice@example.com","otp":%q}`, mailer.lastCode))

	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "verified successfully")

	stored, err := repo.GetUserByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.True(t, stored.IsVerified)
}

func TestVerifyOTPHandler_Failures(t *testing.T) {
	h, _, mailer := newTestHandlers(t)
	registerUser(t, h, "alice@example.com")

	code, body := jsonRequest(t, h.VerifyOTP, http.MethodPost, "/api/auth/verify-otp",
		`{"email":"nobody@example.com","otp":"123456"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, body, `"success":false`)

	code, _ = jsonRequest(t, h.VerifyOTP, http.MethodPost, "/api/auth/verify-otp",
		`{"email":"alice@example.com","otp":"000000"}`)
	assert.Equal(t, http.StatusBadRequest, code)

	// Verify, then try again: already verified.
	code, _ = jsonRequest(t, h.VerifyOTP, http.MethodPost, "/api/auth/verify-otp",
		fmt.Sprintf(`{"email":"alice@example.com","otp":%q}`, mailer.lastCode))
	require.Equal(t, http.StatusOK, code)

	code, body = jsonRequest(t, h.VerifyOTP, http.MethodPost, "/api/auth/verify-otp",
		fmt.Sprintf(`{"email":"alice@example.com","otp":%q}`, mailer.lastCode))
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, body, "already verified")
}

func TestLoginHandler(t *testing.T) {
	h, _, mailer := newTestHandlers(t)
	registerUser(t, h, "alice@example.com")
	code, _ := jsonRequest(t, h.VerifyOTP, http.MethodPost, "/api/auth/verify-otp",
		fmt.Sprintf(`{"email":"alice@example.com","otp":%q}`, mailer.lastCode))
	require.Equal(t, http.StatusOK, code)

	code, body := jsonRequest(t, h.Login, http.MethodPost, "/api/auth/login",
		`{"email":"alice@example.com","password":"secret123"}`)

	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, `"token"`)
	assert.Contains(t, body, "alice@example.com")
	assert.NotContains(t, body, "password_hash")
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	h, _, mailer := newTestHandlers(t)
	registerUser(t, h, "alice@example.com")
	code, _ := jsonRequest(t, h.VerifyOTP, http.MethodPost, "/api/auth/verify-otp",
		fmt.Sprintf(`{"email":"alice@example.com","otp":%q}`, mailer.lastCode))
	require.Equal(t, http.StatusOK, code)

	code, unknownBody := jsonRequest(t, h.Login, http.MethodPost, "/api/auth/login",
		`{"email":"nobody@example.com","password":"secret123"}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, wrongBody := jsonRequest(t, h.Login, http.MethodPost, "/api/auth/login",
		`{"email":"alice@example.com","password":"wrong-password"}`)
	assert.Equal(t, http.StatusBadRequest, code)

	// Unknown email and wrong password are indistinguishable.
	assert.Equal(t, unknownBody, wrongBody)
}

func TestLoginHandler_Unverified(t *testing.T) {
	h, _, _ := newTestHandlers(t)
	registerUser(t, h, "alice@example.com")

	code, body := jsonRequest(t, h.Login, http.MethodPost, "/api/auth/login",
		`{"email":"alice@example.com","password":"secret123"}`)

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, body, "verify your email")
}
