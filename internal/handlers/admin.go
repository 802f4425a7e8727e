// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"codeberg.org/oliverandrich/nobias/internal/models"
	"codeberg.org/oliverandrich/nobias/internal/repository"
	"github.com/labstack/echo/v4"
)

// AllReports lists every report regardless of status, newest first.
func (h *Handlers) AllReports(c echo.Context) error {
	reports, err := h.repo.ListReports(c.Request().Context(), models.ReportFilter{})
	if err != nil {
		return message(c, http.StatusInternalServerError, "Server error while listing reports.")
	}
	return c.JSON(http.StatusOK, reports)
}

// PendingReports lists reports awaiting moderation.
func (h *Handlers) PendingReports(c echo.Context) error {
	reports, err := h.repo.ListReports(c.Request().Context(), models.ReportFilter{Status: models.ReportPending})
	if err != nil {
		return message(c, http.StatusInternalServerError, "Server error while listing reports.")
	}
	return c.JSON(http.StatusOK, reports)
}

// ApproveReport marks a report as approved, making it publicly visible.
func (h *Handlers) ApproveReport(c echo.Context) error {
	return h.setReportStatus(c, models.ReportApproved, "Report approved.")
}

// RejectReport marks a report as rejected.
func (h *Handlers) RejectReport(c echo.Context) error {
	return h.setReportStatus(c, models.ReportRejected, "Report rejected.")
}

func (h *Handlers) setReportStatus(c echo.Context, status, okMessage string) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return message(c, http.StatusBadRequest, "Invalid report id.")
	}

	ctx := c.Request().Context()
	if err := h.repo.SetReportStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return message(c, http.StatusNotFound, "Report not found.")
		}
		return message(c, http.StatusInternalServerError, "Server error while updating the report.")
	}

	report, err := h.repo.GetReportDetail(ctx, id)
	if err != nil {
		return message(c, http.StatusInternalServerError, "Server error while loading the report.")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message": okMessage,
		"report":  report,
	})
}

// Users lists all regular accounts with populated location names.
func (h *Handlers) Users(c echo.Context) error {
	users, err := h.repo.ListUsers(c.Request().Context())
	if err != nil {
		return message(c, http.StatusInternalServerError, "Server error while listing users.")
	}
	return c.JSON(http.StatusOK, users)
}

// TotalUsers returns the total number of accounts.
func (h *Handlers) TotalUsers(c echo.Context) error {
	count, err := h.repo.CountUsers(c.Request().Context())
	if err != nil {
		return message(c, http.StatusInternalServerError, "Server error while counting users.")
	}
	return c.JSON(http.StatusOK, map[string]int64{
		"totalUsers": count,
	})
}

// FilterData returns the reference data used to build report filters:
// all countries, all states, and all discriminations with their types.
func (h *Handlers) FilterData(c echo.Context) error {
	ctx := c.Request().Context()

	countries, err := h.repo.ListCountries(ctx)
	if err != nil {
		return message(c, http.StatusInternalServerError, "Server error while loading filter data.")
	}
	states, err := h.repo.ListStates(ctx)
	if err != nil {
		return message(c, http.StatusInternalServerError, "Server error while loading filter data.")
	}
	discriminations, err := h.repo.ListDiscriminations(ctx)
	if err != nil {
		return message(c, http.StatusInternalServerError, "Server error while loading filter data.")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"countries":       countries,
		"states":          states,
		"discriminations": discriminations,
	})
}
