// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package testutil provides test helpers and fixtures.
package testutil

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"codeberg.org/oliverandrich/nobias/internal/database"
	"codeberg.org/oliverandrich/nobias/internal/models"
	"codeberg.org/oliverandrich/nobias/internal/repository"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"github.com/vinovest/sqlx"
	"golang.org/x/crypto/bcrypt"
)

// NewTestDB creates an in-memory SQLite database for tests.
// Returns both the database connection and the repository for convenience.
func NewTestDB(t *testing.T) (*sqlx.DB, *repository.Repository) {
	t.Helper()
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	repo := repository.New(db)
	return db, repo
}

// NewTestUser creates a verified user with the password "password123".
func NewTestUser(t *testing.T, repo *repository.Repository, email string) *models.User {
	t.Helper()
	user := newUser(t, repo, email, models.RoleUser)
	require.NoError(t, repo.MarkUserVerified(context.Background(), user.ID))
	user.IsVerified = true
	user.OTPCode = nil
	user.OTPExpiresAt = nil
	return user
}

// NewTestAdmin creates a verified admin with the password "password123".
func NewTestAdmin(t *testing.T, repo *repository.Repository, email string) *models.User {
	t.Helper()
	user := newUser(t, repo, email, models.RoleAdmin)
	require.NoError(t, repo.MarkUserVerified(context.Background(), user.ID))
	user.IsVerified = true
	user.OTPCode = nil
	user.OTPExpiresAt = nil
	return user
}

// NewUnverifiedUser creates an unverified user with the given pending code.
func NewUnverifiedUser(t *testing.T, repo *repository.Repository, email, code string, expiresAt time.Time) *models.User {
	t.Helper()
	user := newUser(t, repo, email, models.RoleUser)
	require.NoError(t, repo.SetUserOTP(context.Background(), user.ID, code, expiresAt))
	user.OTPCode = &code
	user.OTPExpiresAt = &expiresAt
	return user
}

func newUser(t *testing.T, repo *repository.Repository, email, role string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    "Test",
		LastName:     "User",
		Role:         role,
	}
	require.NoError(t, repo.CreateUser(context.Background(), user))
	return user
}

// NewTestCountry creates a country node.
func NewTestCountry(t *testing.T, repo *repository.Repository, name string) *models.Location {
	t.Helper()
	loc := &models.Location{Name: name, Kind: models.LocationCountry}
	require.NoError(t, repo.CreateLocation(context.Background(), loc))
	return loc
}

// NewTestState creates a state node under a country.
func NewTestState(t *testing.T, repo *repository.Repository, name string, countryID int64) *models.Location {
	t.Helper()
	loc := &models.Location{Name: name, Kind: models.LocationState, CountryID: &countryID}
	require.NoError(t, repo.CreateLocation(context.Background(), loc))
	return loc
}

// NewTestCity creates a city node under a state.
func NewTestCity(t *testing.T, repo *repository.Repository, name string, stateID int64) *models.Location {
	t.Helper()
	loc := &models.Location{Name: name, Kind: models.LocationCity, StateID: &stateID}
	require.NoError(t, repo.CreateLocation(context.Background(), loc))
	return loc
}

// NewTestDiscrimination creates a discrimination type and one discrimination
// under it.
func NewTestDiscrimination(t *testing.T, repo *repository.Repository, typeName, name string) (*models.DiscriminationType, *models.Discrimination) {
	t.Helper()
	ctx := context.Background()
	dt := &models.DiscriminationType{Name: typeName}
	require.NoError(t, repo.CreateDiscriminationType(ctx, dt))
	d := &models.Discrimination{Name: name, TypeID: dt.ID, Description: "test discrimination"}
	require.NoError(t, repo.CreateDiscrimination(ctx, d))
	return dt, d
}

// NewTestReport files a report for the given user into the given places.
func NewTestReport(t *testing.T, repo *repository.Repository, userID, discriminationID, countryID, stateID, cityID int64) *models.Report {
	t.Helper()
	report := &models.Report{
		UserID:           userID,
		DiscriminationID: discriminationID,
		Name:             "Incident",
		CountryID:        countryID,
		StateID:          stateID,
		CityID:           cityID,
		Info:             "Something happened.",
		Media:            models.MediaList{},
		Status:           models.ReportPending,
	}
	require.NoError(t, repo.CreateReport(context.Background(), report))
	return report
}

// NewEchoContext creates an Echo context for handler tests.
func NewEchoContext(e *echo.Echo, method, path string, body io.Reader) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return c, rec
}
