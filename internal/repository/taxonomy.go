// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package repository

import (
	"context"

	"codeberg.org/oliverandrich/nobias/internal/models"
)

// ===== Discrimination types =====

// CreateDiscriminationType inserts a new type and sets its ID.
func (r *Repository) CreateDiscriminationType(ctx context.Context, t *models.DiscriminationType) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO discrimination_types (name) VALUES (?)`, t.Name)
	if err != nil {
		return err
	}
	t.ID, err = res.LastInsertId()
	return err
}

// GetDiscriminationType retrieves a type by ID.
func (r *Repository) GetDiscriminationType(ctx context.Context, id int64) (*models.DiscriminationType, error) {
	var t models.DiscriminationType
	err := r.db.GetContext(ctx, &t, `SELECT * FROM discrimination_types WHERE id = ?`, id)
	if err != nil {
		return nil, wrapErr(err)
	}
	return &t, nil
}

// FindDiscriminationTypeByName looks up a type by exact name.
func (r *Repository) FindDiscriminationTypeByName(ctx context.Context, name string) (*models.DiscriminationType, error) {
	var t models.DiscriminationType
	err := r.db.GetContext(ctx, &t, `SELECT * FROM discrimination_types WHERE name = ?`, name)
	if err != nil {
		return nil, wrapErr(err)
	}
	return &t, nil
}

// ListDiscriminationTypes returns all types ordered by name.
func (r *Repository) ListDiscriminationTypes(ctx context.Context) ([]models.DiscriminationType, error) {
	var types []models.DiscriminationType
	err := r.db.SelectContext(ctx, &types, `SELECT * FROM discrimination_types ORDER BY name`)
	return types, err
}

// UpdateDiscriminationType renames a type.
func (r *Repository) UpdateDiscriminationType(ctx context.Context, id int64, name string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE discrimination_types SET name = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`, name, id)
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

// DeleteDiscriminationType removes a type. Discriminations cascade.
func (r *Repository) DeleteDiscriminationType(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM discrimination_types WHERE id = ?`, id)
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

// ===== Discriminations =====

// CreateDiscrimination inserts a discrimination under a type and sets its ID.
func (r *Repository) CreateDiscrimination(ctx context.Context, d *models.Discrimination) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO discriminations (name, type_id, description) VALUES (?, ?, ?)`,
		d.Name, d.TypeID, d.Description)
	if err != nil {
		return err
	}
	d.ID, err = res.LastInsertId()
	return err
}

// GetDiscrimination retrieves a discrimination by ID.
func (r *Repository) GetDiscrimination(ctx context.Context, id int64) (*models.Discrimination, error) {
	var d models.Discrimination
	err := r.db.GetContext(ctx, &d, `SELECT * FROM discriminations WHERE id = ?`, id)
	if err != nil {
		return nil, wrapErr(err)
	}
	return &d, nil
}

// FindDiscrimination looks up a discrimination by name under a type.
func (r *Repository) FindDiscrimination(ctx context.Context, name string, typeID int64) (*models.Discrimination, error) {
	var d models.Discrimination
	err := r.db.GetContext(ctx, &d,
		`SELECT * FROM discriminations WHERE name = ? AND type_id = ?`, name, typeID)
	if err != nil {
		return nil, wrapErr(err)
	}
	return &d, nil
}

// ListDiscriminations returns all discriminations with populated type names.
func (r *Repository) ListDiscriminations(ctx context.Context) ([]models.DiscriminationWithType, error) {
	var ds []models.DiscriminationWithType
	err := r.db.SelectContext(ctx, &ds,
		`SELECT d.*, t.name AS type_name
		 FROM discriminations d
		 JOIN discrimination_types t ON t.id = d.type_id
		 ORDER BY d.name`)
	return ds, err
}

// ListDiscriminationsByType returns the discriminations under a type.
func (r *Repository) ListDiscriminationsByType(ctx context.Context, typeID int64) ([]models.Discrimination, error) {
	var ds []models.Discrimination
	err := r.db.SelectContext(ctx, &ds,
		`SELECT * FROM discriminations WHERE type_id = ? ORDER BY name`, typeID)
	return ds, err
}

// ===== Gender types =====

// CreateGenderType inserts a gender option and sets its ID.
func (r *Repository) CreateGenderType(ctx context.Context, g *models.GenderType) error {
	res, err := r.db.ExecContext(ctx, `INSERT INTO gender_types (name) VALUES (?)`, g.Name)
	if err != nil {
		return err
	}
	g.ID, err = res.LastInsertId()
	return err
}

// FindGenderTypeByName looks up a gender option by exact name.
func (r *Repository) FindGenderTypeByName(ctx context.Context, name string) (*models.GenderType, error) {
	var g models.GenderType
	err := r.db.GetContext(ctx, &g, `SELECT * FROM gender_types WHERE name = ?`, name)
	if err != nil {
		return nil, wrapErr(err)
	}
	return &g, nil
}

// ListGenderTypes returns all gender options ordered by name.
func (r *Repository) ListGenderTypes(ctx context.Context) ([]models.GenderType, error) {
	var gs []models.GenderType
	err := r.db.SelectContext(ctx, &gs, `SELECT * FROM gender_types ORDER BY name`)
	return gs, err
}

// UpdateGenderType renames a gender option.
func (r *Repository) UpdateGenderType(ctx context.Context, id int64, name string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE gender_types SET name = ? WHERE id = ?`, name, id)
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

// DeleteGenderType removes a gender option.
func (r *Repository) DeleteGenderType(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM gender_types WHERE id = ?`, id)
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
