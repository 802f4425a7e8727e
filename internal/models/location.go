// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package models

// Location kinds. States reference a country, cities reference a state.
const (
	LocationCountry = "country"
	LocationState   = "state"
	LocationCity    = "city"
)

// Location is a node in the country/state/city hierarchy.
type Location struct { //nolint:govet // fieldalignment: readability over optimization
	ID        int64  `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	Kind      string `db:"kind" json:"kind"`
	CountryID *int64 `db:"country_id" json:"country_id,omitempty"`
	StateID   *int64 `db:"state_id" json:"state_id,omitempty"`
}

// StateSummary is a state with its country name populated, used by the
// report filter data.
type StateSummary struct {
	ID          int64  `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	CountryID   int64  `db:"country_id" json:"country_id"`
	CountryName string `db:"country_name" json:"country_name"`
}
