// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package models

import "time"

// DiscriminationType is a top-level report category (e.g. "Workplace").
type DiscriminationType struct { //nolint:govet // fieldalignment: readability over optimization
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Discrimination is a named form of discrimination under a type.
type Discrimination struct { //nolint:govet // fieldalignment: readability over optimization
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	TypeID      int64     `db:"type_id" json:"type_id"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// DiscriminationWithType carries the populated type name for listings.
type DiscriminationWithType struct {
	Discrimination
	TypeName string `db:"type_name" json:"type_name"`
}

// GenderType is an admin-managed gender option offered on the profile form.
type GenderType struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}
