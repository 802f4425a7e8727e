// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers

import (
	"errors"
	"net/http"

	"codeberg.org/oliverandrich/nobias/internal/services/auth"
	"github.com/labstack/echo/v4"
)

type registerRequest struct { //nolint:govet // fieldalignment: order follows the request body
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Gender    string `json:"gender"`
	Mobile    string `json:"mobile"`
	CountryID *int64 `json:"country_id"`
	StateID   *int64 `json:"state_id"`
	CityID    *int64 `json:"city_id"`
}

// Register creates a new account and dispatches a verification code to the
// given email address.
func (h *Handlers) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return message(c, http.StatusBadRequest, "Invalid request body.")
	}

	user, err := h.auth.Register(c.Request().Context(), auth.RegisterParams{
		Email:     req.Email,
		Password:  req.Password,
		Role:      req.Role,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Gender:    req.Gender,
		Mobile:    req.Mobile,
		CountryID: req.CountryID,
		StateID:   req.StateID,
		CityID:    req.CityID,
	})
	switch {
	case errors.Is(err, auth.ErrDuplicateAccount):
		return message(c, http.StatusBadRequest, "Email already registered.")
	case errors.Is(err, auth.ErrInvalidEmail):
		return message(c, http.StatusBadRequest, "Invalid email address.")
	case errors.Is(err, auth.ErrWeakPassword):
		return message(c, http.StatusBadRequest, "Password must be at least 6 characters long.")
	case errors.Is(err, auth.ErrInvalidRole):
		return message(c, http.StatusBadRequest, "Invalid role.")
	case errors.Is(err, auth.ErrOTPDelivery):
		// The account exists at this point. The client recovers by
		// requesting a fresh code via the resend endpoint.
		return message(c, http.StatusBadGateway, "Account created, but the verification code could not be sent. Please request a new one.")
	case err != nil:
		return message(c, http.StatusInternalServerError, "Server error during registration.")
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"success": true,
		"message": "Registration successful. A verification code has been sent to your email.",
		"user":    user,
	})
}

type emailRequest struct {
	Email string `json:"email"`
}

// SendOTP issues a fresh verification code for an existing account.
func (h *Handlers) SendOTP(c echo.Context) error {
	var req emailRequest
	if err := c.Bind(&req); err != nil {
		return message(c, http.StatusBadRequest, "Invalid request body.")
	}

	err := h.auth.SendOTP(c.Request().Context(), req.Email)
	switch {
	case errors.Is(err, auth.ErrAccountNotFound):
		return message(c, http.StatusNotFound, "User not found.")
	case errors.Is(err, auth.ErrOTPDelivery):
		return message(c, http.StatusBadGateway, "The verification code could not be sent. Please try again later.")
	case err != nil:
		return message(c, http.StatusInternalServerError, "Server error while sending the verification code.")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "A verification code has been sent to your email.",
	})
}

type verifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// VerifyOTP checks the submitted code and marks the account as verified.
func (h *Handlers) VerifyOTP(c echo.Context) error {
	var req verifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return failure(c, http.StatusBadRequest, "Invalid request body.")
	}

	err := h.auth.VerifyOTP(c.Request().Context(), req.Email, req.OTP)
	switch {
	case errors.Is(err, auth.ErrAccountNotFound):
		return failure(c, http.StatusBadRequest, "User not found.")
	case errors.Is(err, auth.ErrAlreadyVerified):
		return failure(c, http.StatusBadRequest, "Email is already verified.")
	case errors.Is(err, auth.ErrIncorrectOTP):
		return failure(c, http.StatusBadRequest, "Incorrect verification code.")
	case errors.Is(err, auth.ErrOTPExpired):
		return failure(c, http.StatusBadRequest, "Verification code has expired. Please request a new one.")
	case err != nil:
		return failure(c, http.StatusInternalServerError, "Server error during verification.")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Email verified successfully.",
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates a verified account and returns a session token.
func (h *Handlers) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return message(c, http.StatusBadRequest, "Invalid request body.")
	}

	token, user, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return message(c, http.StatusBadRequest, "Invalid credentials.")
	case errors.Is(err, auth.ErrUnverifiedAccount):
		return message(c, http.StatusBadRequest, "Please verify your email before logging in.")
	case err != nil:
		return message(c, http.StatusInternalServerError, "Server error during login.")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"token": token,
		"user":  user,
	})
}
