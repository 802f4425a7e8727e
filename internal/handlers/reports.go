// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers

import (
	"errors"
	"net/http"
	"path"
	"strconv"
	"strings"

	"codeberg.org/oliverandrich/nobias/internal/middleware"
	"codeberg.org/oliverandrich/nobias/internal/models"
	"codeberg.org/oliverandrich/nobias/internal/repository"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type createReportRequest struct { //nolint:govet // fieldalignment: order follows the request body
	DiscriminationID int64    `json:"discrimination_id"`
	Name             string   `json:"name"`
	CountryID        int64    `json:"country_id"`
	StateID          int64    `json:"state_id"`
	CityID           int64    `json:"city_id"`
	Info             string   `json:"info"`
	Media            []string `json:"media"`
}

// CreateReport files a new discrimination report for the authenticated
// user. Reports start in the pending state and become publicly visible only
// after an admin approves them.
func (h *Handlers) CreateReport(c echo.Context) error {
	user := middleware.CurrentUser(c)

	var req createReportRequest
	if err := c.Bind(&req); err != nil {
		return message(c, http.StatusBadRequest, "Invalid request body.")
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Info = strings.TrimSpace(req.Info)
	if req.DiscriminationID == 0 || req.Name == "" || req.Info == "" {
		return message(c, http.StatusBadRequest, "Discrimination, name, and description are required.")
	}
	if req.CountryID == 0 || req.StateID == 0 || req.CityID == 0 {
		return message(c, http.StatusBadRequest, "Country, state, and city are required.")
	}

	ctx := c.Request().Context()

	if _, err := h.repo.GetDiscrimination(ctx, req.DiscriminationID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return message(c, http.StatusBadRequest, "Discrimination not found.")
		}
		return message(c, http.StatusInternalServerError, "Server error while creating the report.")
	}

	report := &models.Report{
		UserID:           user.ID,
		DiscriminationID: req.DiscriminationID,
		Name:             req.Name,
		CountryID:        req.CountryID,
		StateID:          req.StateID,
		CityID:           req.CityID,
		Info:             req.Info,
		Media:            storedMediaNames(req.Media),
		Status:           models.ReportPending,
	}
	if err := h.repo.CreateReport(ctx, report); err != nil {
		return message(c, http.StatusInternalServerError, "Server error while creating the report.")
	}

	detail, err := h.repo.GetReportDetail(ctx, report.ID)
	if err != nil {
		return message(c, http.StatusInternalServerError, "Server error while loading the report.")
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"message": "Report submitted successfully.",
		"report":  detail,
	})
}

// storedMediaNames assigns server-side names to uploaded media files,
// keeping only the original extension.
func storedMediaNames(uploads []string) models.MediaList {
	if len(uploads) == 0 {
		return models.MediaList{}
	}
	names := make(models.MediaList, 0, len(uploads))
	for _, original := range uploads {
		names = append(names, uuid.New().String()+path.Ext(original))
	}
	return names
}

// ApprovedReports lists approved reports, optionally narrowed by country,
// state, and discrimination.
func (h *Handlers) ApprovedReports(c echo.Context) error {
	filter := models.ReportFilter{Status: models.ReportApproved}

	for _, q := range []struct {
		name string
		dst  *int64
	}{
		{"country", &filter.CountryID},
		{"state", &filter.StateID},
		{"type", &filter.DiscriminationID},
	} {
		raw := c.QueryParam(q.name)
		if raw == "" {
			continue
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return message(c, http.StatusBadRequest, "Invalid filter value for "+q.name+".")
		}
		*q.dst = id
	}

	reports, err := h.repo.ListReports(c.Request().Context(), filter)
	if err != nil {
		return message(c, http.StatusInternalServerError, "Server error while listing reports.")
	}

	return c.JSON(http.StatusOK, reports)
}

// PublicReports lists approved reports for the public landing page,
// newest first.
func (h *Handlers) PublicReports(c echo.Context) error {
	reports, err := h.repo.ListReports(c.Request().Context(), models.ReportFilter{Status: models.ReportApproved})
	if err != nil {
		return message(c, http.StatusInternalServerError, "Server error while listing reports.")
	}
	return c.JSON(http.StatusOK, reports)
}

// ReportByID returns a single report with populated references.
func (h *Handlers) ReportByID(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return message(c, http.StatusBadRequest, "Invalid report id.")
	}

	report, err := h.repo.GetReportDetail(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return message(c, http.StatusNotFound, "Report not found.")
		}
		return message(c, http.StatusInternalServerError, "Server error while loading the report.")
	}

	return c.JSON(http.StatusOK, report)
}
