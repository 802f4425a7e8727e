// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package repository

import (
	"context"
	"strings"

	"codeberg.org/oliverandrich/nobias/internal/models"
)

const reportDetailSelect = `
	SELECT r.*,
	       d.name AS discrimination_name,
	       u.first_name AS reporter_first_name,
	       u.last_name AS reporter_last_name,
	       u.email AS reporter_email,
	       c.name AS country_name,
	       s.name AS state_name,
	       ci.name AS city_name
	FROM reports r
	JOIN discriminations d ON d.id = r.discrimination_id
	JOIN users u ON u.id = r.user_id
	JOIN locations c ON c.id = r.country_id
	JOIN locations s ON s.id = r.state_id
	JOIN locations ci ON ci.id = r.city_id`

// CreateReport inserts a new report in the pending state and sets its ID.
func (r *Repository) CreateReport(ctx context.Context, report *models.Report) error {
	if report.Status == "" {
		report.Status = models.ReportPending
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO reports (user_id, discrimination_id, name, country_id, state_id, city_id, info, media, status)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		report.UserID, report.DiscriminationID, report.Name,
		report.CountryID, report.StateID, report.CityID,
		report.Info, report.Media, report.Status)
	if err != nil {
		return err
	}
	report.ID, err = res.LastInsertId()
	return err
}

// GetReportDetail retrieves a report with populated references.
func (r *Repository) GetReportDetail(ctx context.Context, id int64) (*models.ReportDetail, error) {
	var detail models.ReportDetail
	err := r.db.GetContext(ctx, &detail, reportDetailSelect+` WHERE r.id = ?`, id)
	if err != nil {
		return nil, wrapErr(err)
	}
	return &detail, nil
}

// ListReports returns reports matching the filter with populated references,
// newest first.
func (r *Repository) ListReports(ctx context.Context, filter models.ReportFilter) ([]models.ReportDetail, error) {
	var conds []string
	var args []any

	if filter.Status != "" {
		conds = append(conds, "r.status = ?")
		args = append(args, filter.Status)
	}
	if filter.CountryID != 0 {
		conds = append(conds, "r.country_id = ?")
		args = append(args, filter.CountryID)
	}
	if filter.StateID != 0 {
		conds = append(conds, "r.state_id = ?")
		args = append(args, filter.StateID)
	}
	if filter.CityID != 0 {
		conds = append(conds, "r.city_id = ?")
		args = append(args, filter.CityID)
	}
	if filter.DiscriminationID != 0 {
		conds = append(conds, "r.discrimination_id = ?")
		args = append(args, filter.DiscriminationID)
	}

	query := reportDetailSelect
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY r.created_at DESC"

	var reports []models.ReportDetail
	err := r.db.SelectContext(ctx, &reports, query, args...)
	return reports, err
}

// SetReportStatus transitions a report to the given moderation state.
func (r *Repository) SetReportStatus(ctx context.Context, id int64, status string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE reports SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`, status, id)
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
