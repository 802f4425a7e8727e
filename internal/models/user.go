// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package models

import "time"

// User roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is the persisted account record. The password hash and the OTP pair
// never serialize to JSON.
type User struct { //nolint:govet // fieldalignment: readability over optimization
	ID               int64      `db:"id" json:"id"`
	Email            string     `db:"email" json:"email"`
	PasswordHash     string     `db:"password_hash" json:"-"`
	FirstName        string     `db:"first_name" json:"first_name"`
	LastName         string     `db:"last_name" json:"last_name"`
	Gender           string     `db:"gender" json:"gender"`
	Mobile           string     `db:"mobile" json:"mobile"`
	CountryID        *int64     `db:"country_id" json:"country_id,omitempty"`
	StateID          *int64     `db:"state_id" json:"state_id,omitempty"`
	CityID           *int64     `db:"city_id" json:"city_id,omitempty"`
	Role             string     `db:"role" json:"role"`
	IsVerified       bool       `db:"is_verified" json:"is_verified"`
	ProfileCompleted bool       `db:"profile_completed" json:"profile_completed"`
	OTPCode          *string    `db:"otp_code" json:"-"`
	OTPExpiresAt     *time.Time `db:"otp_expires_at" json:"-"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at" json:"updated_at"`
}

// IsAdmin returns true if the user has the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// LocationRef is a populated location reference used in profile responses.
type LocationRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Profile is the user projection returned by the profile endpoints, with
// location references resolved to names.
type Profile struct { //nolint:govet // fieldalignment: readability over optimization
	ID               int64        `json:"id"`
	Email            string       `json:"email"`
	FirstName        string       `json:"first_name"`
	LastName         string       `json:"last_name"`
	Gender           string       `json:"gender"`
	Mobile           string       `json:"mobile"`
	Country          *LocationRef `json:"country"`
	State            *LocationRef `json:"state"`
	City             *LocationRef `json:"city"`
	Role             string       `json:"role"`
	ProfileCompleted bool         `json:"profile_completed"`
}

// UserSummary is the admin listing projection with populated location names.
type UserSummary struct { //nolint:govet // fieldalignment: readability over optimization
	ID               int64     `db:"id" json:"id"`
	Email            string    `db:"email" json:"email"`
	FirstName        string    `db:"first_name" json:"first_name"`
	LastName         string    `db:"last_name" json:"last_name"`
	Gender           string    `db:"gender" json:"gender"`
	Mobile           string    `db:"mobile" json:"mobile"`
	CountryName      *string   `db:"country_name" json:"country_name"`
	StateName        *string   `db:"state_name" json:"state_name"`
	CityName         *string   `db:"city_name" json:"city_name"`
	IsVerified       bool      `db:"is_verified" json:"is_verified"`
	ProfileCompleted bool      `db:"profile_completed" json:"profile_completed"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
}
