// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package repository

import (
	"context"
	"time"

	"codeberg.org/oliverandrich/nobias/internal/models"
)

// CreateUser inserts a new user and sets its ID.
func (r *Repository) CreateUser(ctx context.Context, user *models.User) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (email, password_hash, first_name, last_name, gender, mobile,
		                    country_id, state_id, city_id, role, otp_code, otp_expires_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		user.Email, user.PasswordHash, user.FirstName, user.LastName, user.Gender, user.Mobile,
		user.CountryID, user.StateID, user.CityID, user.Role, user.OTPCode, user.OTPExpiresAt)
	if err != nil {
		return err
	}
	user.ID, err = res.LastInsertId()
	return err
}

// GetUserByEmail retrieves a user by email address.
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user, `SELECT * FROM users WHERE email = ?`, email)
	if err != nil {
		return nil, wrapErr(err)
	}
	return &user, nil
}

// GetUserByID retrieves a user by ID.
func (r *Repository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user, `SELECT * FROM users WHERE id = ?`, id)
	if err != nil {
		return nil, wrapErr(err)
	}
	return &user, nil
}

// SetUserOTP stores a fresh OTP pair, replacing any previous one.
func (r *Repository) SetUserOTP(ctx context.Context, id int64, code string, expiresAt time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET otp_code = ?, otp_expires_at = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		code, expiresAt, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkUserVerified flips the verification flag and clears the OTP pair in a
// single update.
func (r *Repository) MarkUserVerified(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET is_verified = 1, otp_code = NULL, otp_expires_at = NULL,
		        updated_at = CURRENT_TIMESTAMP WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ProfileUpdate holds the profile fields written by UpdateUserProfile.
type ProfileUpdate struct {
	FirstName string
	LastName  string
	Gender    string
	Mobile    string
	CountryID int64
	StateID   int64
	CityID    int64
}

// UpdateUserProfile writes profile fields and marks the profile completed.
func (r *Repository) UpdateUserProfile(ctx context.Context, id int64, p ProfileUpdate) (*models.User, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET first_name = ?, last_name = ?, gender = ?, mobile = ?,
		        country_id = ?, state_id = ?, city_id = ?, profile_completed = 1,
		        updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		p.FirstName, p.LastName, p.Gender, p.Mobile, p.CountryID, p.StateID, p.CityID, id)
	if err != nil {
		return nil, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrNotFound
	}
	return r.GetUserByID(ctx, id)
}

// CountUsers returns the total number of users.
func (r *Repository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM users`)
	return count, err
}

// ListUsers returns all non-admin users with populated location names,
// newest first.
func (r *Repository) ListUsers(ctx context.Context) ([]models.UserSummary, error) {
	var users []models.UserSummary
	err := r.db.SelectContext(ctx, &users,
		`SELECT u.id, u.email, u.first_name, u.last_name, u.gender, u.mobile,
		        c.name AS country_name, s.name AS state_name, ci.name AS city_name,
		        u.is_verified, u.profile_completed, u.created_at
		 FROM users u
		 LEFT JOIN locations c ON c.id = u.country_id
		 LEFT JOIN locations s ON s.id = u.state_id
		 LEFT JOIN locations ci ON ci.id = u.city_id
		 WHERE u.role = ?
		 ORDER BY u.created_at DESC`, models.RoleUser)
	return users, err
}
