// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package repository

import (
	"context"

	"codeberg.org/oliverandrich/nobias/internal/models"
)

// CreateLocation inserts a location node and sets its ID.
func (r *Repository) CreateLocation(ctx context.Context, loc *models.Location) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO locations (name, kind, country_id, state_id) VALUES (?, ?, ?, ?)`,
		loc.Name, loc.Kind, loc.CountryID, loc.StateID)
	if err != nil {
		return err
	}
	loc.ID, err = res.LastInsertId()
	return err
}

// GetLocation retrieves a location by ID.
func (r *Repository) GetLocation(ctx context.Context, id int64) (*models.Location, error) {
	var loc models.Location
	err := r.db.GetContext(ctx, &loc, `SELECT * FROM locations WHERE id = ?`, id)
	if err != nil {
		return nil, wrapErr(err)
	}
	return &loc, nil
}

// FindLocation looks up a location by name and kind.
func (r *Repository) FindLocation(ctx context.Context, name, kind string) (*models.Location, error) {
	var loc models.Location
	err := r.db.GetContext(ctx, &loc, `SELECT * FROM locations WHERE name = ? AND kind = ?`, name, kind)
	if err != nil {
		return nil, wrapErr(err)
	}
	return &loc, nil
}

// ListCountries returns all countries ordered by name.
func (r *Repository) ListCountries(ctx context.Context) ([]models.Location, error) {
	var locs []models.Location
	err := r.db.SelectContext(ctx, &locs,
		`SELECT * FROM locations WHERE kind = ? ORDER BY name`, models.LocationCountry)
	return locs, err
}

// ListStates returns all states with their country names, used by the
// report filter data endpoint.
func (r *Repository) ListStates(ctx context.Context) ([]models.StateSummary, error) {
	var states []models.StateSummary
	err := r.db.SelectContext(ctx, &states,
		`SELECT s.id, s.name, s.country_id, c.name AS country_name
		 FROM locations s
		 JOIN locations c ON c.id = s.country_id
		 WHERE s.kind = ?
		 ORDER BY s.name`, models.LocationState)
	return states, err
}

// ListStatesByCountry returns the states under a country.
func (r *Repository) ListStatesByCountry(ctx context.Context, countryID int64) ([]models.Location, error) {
	var locs []models.Location
	err := r.db.SelectContext(ctx, &locs,
		`SELECT * FROM locations WHERE kind = ? AND country_id = ? ORDER BY name`,
		models.LocationState, countryID)
	return locs, err
}

// ListCitiesByState returns the cities under a state.
func (r *Repository) ListCitiesByState(ctx context.Context, stateID int64) ([]models.Location, error) {
	var locs []models.Location
	err := r.db.SelectContext(ctx, &locs,
		`SELECT * FROM locations WHERE kind = ? AND state_id = ? ORDER BY name`,
		models.LocationCity, stateID)
	return locs, err
}

// DeleteLocation removes a location node. Children cascade at the schema level.
func (r *Repository) DeleteLocation(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM locations WHERE id = ?`, id)
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

// StateBelongsToCountry checks the linkage used by profile validation.
func (r *Repository) StateBelongsToCountry(ctx context.Context, stateID, countryID int64) (bool, error) {
	var count int64
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM locations WHERE id = ? AND kind = ? AND country_id = ?`,
		stateID, models.LocationState, countryID)
	return count > 0, err
}

// CityBelongsToState checks the linkage used by profile validation.
func (r *Repository) CityBelongsToState(ctx context.Context, cityID, stateID int64) (bool, error) {
	var count int64
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM locations WHERE id = ? AND kind = ? AND state_id = ?`,
		cityID, models.LocationCity, stateID)
	return count > 0, err
}
