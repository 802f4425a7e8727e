// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"codeberg.org/oliverandrich/nobias/internal/models"
	"codeberg.org/oliverandrich/nobias/internal/repository"
	"github.com/labstack/echo/v4"
)

type nameRequest struct {
	Name string `json:"name"`
}

// CreateDiscriminationType adds a new report category.
func (h *Handlers) CreateDiscriminationType(c echo.Context) error {
	var req nameRequest
	if err := c.Bind(&req); err != nil {
		return message(c, http.StatusBadRequest, "Invalid request body.")
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return message(c, http.StatusBadRequest, "Name is required.")
	}

	ctx := c.Request().Context()
	if _, err := h.repo.FindDiscriminationTypeByName(ctx, req.Name); err == nil {
		return message(c, http.StatusConflict, "Discrimination type already exists.")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return message(c, http.StatusInternalServerError, "Server error while creating the discrimination type.")
	}

	t := &models.DiscriminationType{Name: req.Name}
	if err := h.repo.CreateDiscriminationType(ctx, t); err != nil {
		return message(c, http.StatusInternalServerError, "Server error while creating the discrimination type.")
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"message": "Discrimination type created successfully.",
		"type":    t,
	})
}

// DiscriminationTypes lists all report categories.
func (h *Handlers) DiscriminationTypes(c echo.Context) error {
	types, err := h.repo.ListDiscriminationTypes(c.Request().Context())
	if err != nil {
		return message(c, http.StatusInternalServerError, "Server error while listing discrimination types.")
	}
	return c.JSON(http.StatusOK, types)
}

// UpdateDiscriminationType renames a report category.
func (h *Handlers) UpdateDiscriminationType(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return message(c, http.StatusBadRequest, "Invalid discrimination type id.")
	}

	var req nameRequest
	if err := c.Bind(&req); err != nil {
		return message(c, http.StatusBadRequest, "Invalid request body.")
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return message(c, http.StatusBadRequest, "Name is required.")
	}

	ctx := c.Request().Context()
	if existing, err := h.repo.FindDiscriminationTypeByName(ctx, req.Name); err == nil && existing.ID != id {
		return message(c, http.StatusConflict, "Discrimination type already exists.")
	} else if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return message(c, http.StatusInternalServerError, "Server error while updating the discrimination type.")
	}

	if err := h.repo.UpdateDiscriminationType(ctx, id, req.Name); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return message(c, http.StatusNotFound, "Discrimination type not found.")
		}
		return message(c, http.StatusInternalServerError, "Server error while updating the discrimination type.")
	}

	t, err := h.repo.GetDiscriminationType(ctx, id)
	if err != nil {
		return message(c, http.StatusInternalServerError, "Server error while loading the discrimination type.")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message": "Discrimination type updated successfully.",
		"type":    t,
	})
}

// DeleteDiscriminationType removes a report category. Its discriminations
// are removed by the schema's cascade rules.
func (h *Handlers) DeleteDiscriminationType(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return message(c, http.StatusBadRequest, "Invalid discrimination type id.")
	}

	if err := h.repo.DeleteDiscriminationType(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return message(c, http.StatusNotFound, "Discrimination type not found.")
		}
		return message(c, http.StatusInternalServerError, "Server error while deleting the discrimination type.")
	}

	return message(c, http.StatusOK, "Discrimination type deleted successfully.")
}

type createDiscriminationRequest struct { //nolint:govet // fieldalignment: order follows the request body
	Name        string `json:"name"`
	TypeID      int64  `json:"type_id"`
	Description string `json:"description"`
}

// CreateDiscrimination adds a named form of discrimination under a type.
func (h *Handlers) CreateDiscrimination(c echo.Context) error {
	var req createDiscriminationRequest
	if err := c.Bind(&req); err != nil {
		return message(c, http.StatusBadRequest, "Invalid request body.")
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.TypeID == 0 {
		return message(c, http.StatusBadRequest, "Name and type are required.")
	}

	ctx := c.Request().Context()

	if _, err := h.repo.GetDiscriminationType(ctx, req.TypeID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return message(c, http.StatusBadRequest, "Discrimination type not found.")
		}
		return message(c, http.StatusInternalServerError, "Server error while creating the discrimination.")
	}

	if _, err := h.repo.FindDiscrimination(ctx, req.Name, req.TypeID); err == nil {
		return message(c, http.StatusConflict, "Discrimination already exists for this type.")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return message(c, http.StatusInternalServerError, "Server error while creating the discrimination.")
	}

	d := &models.Discrimination{Name: req.Name, TypeID: req.TypeID, Description: req.Description}
	if err := h.repo.CreateDiscrimination(ctx, d); err != nil {
		return message(c, http.StatusInternalServerError, "Server error while creating the discrimination.")
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"message":        "Discrimination created successfully.",
		"discrimination": d,
	})
}

// Discriminations lists all discriminations with their type names.
func (h *Handlers) Discriminations(c echo.Context) error {
	ds, err := h.repo.ListDiscriminations(c.Request().Context())
	if err != nil {
		return message(c, http.StatusInternalServerError, "Server error while listing discriminations.")
	}
	return c.JSON(http.StatusOK, ds)
}

// DiscriminationsByType lists the discriminations under a type.
func (h *Handlers) DiscriminationsByType(c echo.Context) error {
	typeID, err := strconv.ParseInt(c.Param("typeId"), 10, 64)
	if err != nil {
		return message(c, http.StatusBadRequest, "Invalid discrimination type id.")
	}

	ds, err := h.repo.ListDiscriminationsByType(c.Request().Context(), typeID)
	if err != nil {
		return message(c, http.StatusInternalServerError, "Server error while listing discriminations.")
	}
	return c.JSON(http.StatusOK, ds)
}

// CreateGenderType adds a gender option for the profile form.
func (h *Handlers) CreateGenderType(c echo.Context) error {
	var req nameRequest
	if err := c.Bind(&req); err != nil {
		return message(c, http.StatusBadRequest, "Invalid request body.")
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return message(c, http.StatusBadRequest, "Name is required.")
	}

	ctx := c.Request().Context()
	if _, err := h.repo.FindGenderTypeByName(ctx, req.Name); err == nil {
		return message(c, http.StatusConflict, "Gender type already exists.")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return message(c, http.StatusInternalServerError, "Server error while creating the gender type.")
	}

	g := &models.GenderType{Name: req.Name}
	if err := h.repo.CreateGenderType(ctx, g); err != nil {
		return message(c, http.StatusInternalServerError, "Server error while creating the gender type.")
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"message": "Gender type created successfully.",
		"gender":  g,
	})
}

// GenderTypes lists all gender options.
func (h *Handlers) GenderTypes(c echo.Context) error {
	gs, err := h.repo.ListGenderTypes(c.Request().Context())
	if err != nil {
		return message(c, http.StatusInternalServerError, "Server error while listing gender types.")
	}
	return c.JSON(http.StatusOK, gs)
}

// UpdateGenderType renames a gender option.
func (h *Handlers) UpdateGenderType(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return message(c, http.StatusBadRequest, "Invalid gender type id.")
	}

	var req nameRequest
	if err := c.Bind(&req); err != nil {
		return message(c, http.StatusBadRequest, "Invalid request body.")
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return message(c, http.StatusBadRequest, "Name is required.")
	}

	ctx := c.Request().Context()
	if existing, err := h.repo.FindGenderTypeByName(ctx, req.Name); err == nil && existing.ID != id {
		return message(c, http.StatusConflict, "Gender type already exists.")
	} else if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return message(c, http.StatusInternalServerError, "Server error while updating the gender type.")
	}

	if err := h.repo.UpdateGenderType(ctx, id, req.Name); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return message(c, http.StatusNotFound, "Gender type not found.")
		}
		return message(c, http.StatusInternalServerError, "Server error while updating the gender type.")
	}

	return message(c, http.StatusOK, "Gender type updated successfully.")
}

// DeleteGenderType removes a gender option.
func (h *Handlers) DeleteGenderType(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return message(c, http.StatusBadRequest, "Invalid gender type id.")
	}

	if err := h.repo.DeleteGenderType(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return message(c, http.StatusNotFound, "Gender type not found.")
		}
		return message(c, http.StatusInternalServerError, "Server error while deleting the gender type.")
	}

	return message(c, http.StatusOK, "Gender type deleted successfully.")
}
