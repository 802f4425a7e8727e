// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package auth implements the account lifecycle: registration, verification
// code issuance, email verification, and login.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"codeberg.org/oliverandrich/nobias/internal/config"
	"codeberg.org/oliverandrich/nobias/internal/models"
	"codeberg.org/oliverandrich/nobias/internal/repository"
	"codeberg.org/oliverandrich/nobias/internal/services/token"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrDuplicateAccount   = errors.New("email already registered")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrWeakPassword       = errors.New("password does not meet requirements")
	ErrInvalidRole        = errors.New("unknown role")
	ErrAccountNotFound    = errors.New("account not found")
	ErrAlreadyVerified    = errors.New("account already verified")
	ErrIncorrectOTP       = errors.New("incorrect verification code")
	ErrOTPExpired         = errors.New("verification code expired")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnverifiedAccount  = errors.New("email not verified")
	ErrOTPDelivery        = errors.New("verification code could not be sent")
)

// minPasswordLength is deliberately lax; the platform favors accessibility
// over password policy.
const minPasswordLength = 6

// dummyHash is used for constant-time login to prevent timing attacks
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("dummy-password-for-timing"), bcrypt.DefaultCost)

// Mailer delivers verification codes. A failed send is surfaced to the
// caller, never swallowed.
type Mailer interface {
	SendOTP(ctx context.Context, toEmail, code string) error
}

// Service orchestrates the account lifecycle against the repository, the
// mailer, and the token issuer.
type Service struct {
	repo       *repository.Repository
	mailer     Mailer
	tokens     *token.Service
	otpTTL     time.Duration
	bcryptCost int
	now        func() time.Time
}

// NewService creates a new auth service.
func NewService(repo *repository.Repository, mailer Mailer, tokens *token.Service, cfg *config.AuthConfig) *Service {
	otpTTL := cfg.OTPTTL
	if otpTTL <= 0 {
		otpTTL = 10 * time.Minute
	}
	cost := cfg.BcryptCost
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &Service{
		repo:       repo,
		mailer:     mailer,
		tokens:     tokens,
		otpTTL:     otpTTL,
		bcryptCost: cost,
		now:        time.Now,
	}
}

// RegisterParams holds the parameters for account registration.
type RegisterParams struct { //nolint:govet // fieldalignment: readability over optimization
	Email     string
	Password  string
	Role      string
	FirstName string
	LastName  string
	Gender    string
	Mobile    string
	CountryID *int64
	StateID   *int64
	CityID    *int64
}

// NormalizeEmail lowercases and trims an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new unverified account and dispatches a verification
// code. The account is kept even when dispatch fails; the caller sees the
// failure as ErrOTPDelivery and the user recovers via SendOTP.
func (s *Service) Register(ctx context.Context, params RegisterParams) (*models.User, error) {
	email := NormalizeEmail(params.Email)
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, ErrInvalidEmail
	}
	if len(params.Password) < minPasswordLength {
		return nil, ErrWeakPassword
	}

	role := params.Role
	if role == "" {
		role = models.RoleUser
	}
	if role != models.RoleUser && role != models.RoleAdmin {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRole, params.Role)
	}

	_, err := s.repo.GetUserByEmail(ctx, email)
	if err == nil {
		return nil, ErrDuplicateAccount
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(params.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	code, err := GenerateOTP()
	if err != nil {
		return nil, err
	}
	expiresAt := s.now().Add(s.otpTTL)

	user := &models.User{
		Email:        email,
		PasswordHash: string(passwordHash),
		FirstName:    params.FirstName,
		LastName:     params.LastName,
		Gender:       params.Gender,
		Mobile:       params.Mobile,
		CountryID:    params.CountryID,
		StateID:      params.StateID,
		CityID:       params.CityID,
		Role:         role,
		OTPCode:      &code,
		OTPExpiresAt: &expiresAt,
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	slog.Info("register_success", "user_id", user.ID, "email", email)

	if err := s.mailer.SendOTP(ctx, email, code); err != nil {
		slog.Warn("otp_delivery_failed", "email", email, "error", err)
		return user, fmt.Errorf("%w: %w", ErrOTPDelivery, err)
	}

	return user, nil
}

// SendOTP issues a fresh verification code, invalidating any previous one
// immediately. Resending to an already verified account is permitted; the
// code is simply useless.
func (s *Service) SendOTP(ctx context.Context, email string) error {
	email = NormalizeEmail(email)

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("failed to get account: %w", err)
	}

	code, err := GenerateOTP()
	if err != nil {
		return err
	}
	if err := s.repo.SetUserOTP(ctx, user.ID, code, s.now().Add(s.otpTTL)); err != nil {
		return fmt.Errorf("failed to store verification code: %w", err)
	}

	slog.Info("otp_issued", "user_id", user.ID, "email", email)

	if err := s.mailer.SendOTP(ctx, email, code); err != nil {
		slog.Warn("otp_delivery_failed", "email", email, "error", err)
		return fmt.Errorf("%w: %w", ErrOTPDelivery, err)
	}

	return nil
}

// VerifyOTP checks a submitted code and marks the account verified. The
// precondition chain is evaluated in order; the first failure wins.
func (s *Service) VerifyOTP(ctx context.Context, email, submittedCode string) error {
	email = NormalizeEmail(email)

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("failed to get account: %w", err)
	}

	if user.IsVerified {
		return ErrAlreadyVerified
	}

	if user.OTPCode == nil || *user.OTPCode != strings.TrimSpace(submittedCode) {
		slog.Warn("otp_verify_failed", "email", email, "reason", "incorrect_code")
		return ErrIncorrectOTP
	}

	// Expiry is evaluated here, at verification time, not pre-filtered.
	if user.OTPExpiresAt != nil && s.now().After(*user.OTPExpiresAt) {
		slog.Warn("otp_verify_failed", "email", email, "reason", "expired")
		return ErrOTPExpired
	}

	if err := s.repo.MarkUserVerified(ctx, user.ID); err != nil {
		return fmt.Errorf("failed to mark account verified: %w", err)
	}

	slog.Info("otp_verified", "user_id", user.ID, "email", email)
	return nil
}

// Login authenticates an account and issues a session token. Unknown email
// and wrong password report the same error so account existence does not
// leak; the unverified case is distinct because at that point the caller has
// already proven the credentials.
func (s *Service) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	email = NormalizeEmail(email)

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Constant-time: always perform bcrypt comparison to prevent timing attacks
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			slog.Warn("login_failed", "email", email, "reason", "account_not_found")
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to get account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		slog.Warn("login_failed", "email", email, "reason", "invalid_password")
		return "", nil, ErrInvalidCredentials
	}

	if !user.IsVerified {
		slog.Warn("login_failed", "email", email, "reason", "unverified")
		return "", nil, ErrUnverifiedAccount
	}

	tok, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	slog.Info("login_success", "user_id", user.ID, "email", email)
	return tok, user, nil
}
