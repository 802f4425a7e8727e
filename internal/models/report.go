// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Report moderation states.
const (
	ReportPending  = "pending"
	ReportApproved = "approved"
	ReportRejected = "rejected"
)

// MediaList is a list of stored media file names, persisted as a JSON array.
type MediaList []string

// Value implements driver.Valuer.
func (m MediaList) Value() (driver.Value, error) {
	if m == nil {
		m = MediaList{}
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (m *MediaList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*m = MediaList{}
		return nil
	case string:
		return json.Unmarshal([]byte(v), m)
	case []byte:
		return json.Unmarshal(v, m)
	default:
		return fmt.Errorf("cannot scan %T into MediaList", src)
	}
}

// Report is a submitted discrimination report.
type Report struct { //nolint:govet // fieldalignment: readability over optimization
	ID               int64     `db:"id" json:"id"`
	UserID           int64     `db:"user_id" json:"user_id"`
	DiscriminationID int64     `db:"discrimination_id" json:"discrimination_id"`
	Name             string    `db:"name" json:"name"`
	CountryID        int64     `db:"country_id" json:"country_id"`
	StateID          int64     `db:"state_id" json:"state_id"`
	CityID           int64     `db:"city_id" json:"city_id"`
	Info             string    `db:"info" json:"info"`
	Media            MediaList `db:"media" json:"media"`
	Status           string    `db:"status" json:"status"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}

// ReportDetail is a report with its references populated for responses.
type ReportDetail struct {
	Report
	DiscriminationName string `db:"discrimination_name" json:"discrimination_name"`
	ReporterFirstName  string `db:"reporter_first_name" json:"reporter_first_name"`
	ReporterLastName   string `db:"reporter_last_name" json:"reporter_last_name"`
	ReporterEmail      string `db:"reporter_email" json:"reporter_email"`
	CountryName        string `db:"country_name" json:"country_name"`
	StateName          string `db:"state_name" json:"state_name"`
	CityName           string `db:"city_name" json:"city_name"`
}

// ReportFilter narrows report listings. Zero values mean "no constraint".
type ReportFilter struct {
	Status           string
	CountryID        int64
	StateID          int64
	CityID           int64
	DiscriminationID int64
}
