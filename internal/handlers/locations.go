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

type createLocationRequest struct { //nolint:govet // fieldalignment: order follows the request body
	Name      string `json:"name"`
	CountryID int64  `json:"country_id"`
	StateID   int64  `json:"state_id"`
}

// CreateCountry adds a country to the location hierarchy.
func (h *Handlers) CreateCountry(c echo.Context) error {
	var req createLocationRequest
	if err := c.Bind(&req); err != nil {
		return message(c, http.StatusBadRequest, "Invalid request body.")
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return message(c, http.StatusBadRequest, "Name is required.")
	}

	ctx := c.Request().Context()
	if _, err := h.repo.FindLocation(ctx, req.Name, models.LocationCountry); err == nil {
		return message(c, http.StatusConflict, "Country already exists.")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return message(c, http.StatusInternalServerError, "Server error while creating the country.")
	}

	loc := &models.Location{Name: req.Name, Kind: models.LocationCountry}
	if err := h.repo.CreateLocation(ctx, loc); err != nil {
		return message(c, http.StatusInternalServerError, "Server error while creating the country.")
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"message":  "Country created successfully.",
		"location": loc,
	})
}

// CreateState adds a state under an existing country.
func (h *Handlers) CreateState(c echo.Context) error {
	var req createLocationRequest
	if err := c.Bind(&req); err != nil {
		return message(c, http.StatusBadRequest, "Invalid request body.")
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.CountryID == 0 {
		return message(c, http.StatusBadRequest, "Name and country are required.")
	}

	ctx := c.Request().Context()

	parent, err := h.repo.GetLocation(ctx, req.CountryID)
	if err != nil || parent.Kind != models.LocationCountry {
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return message(c, http.StatusInternalServerError, "Server error while creating the state.")
		}
		return message(c, http.StatusBadRequest, "Country not found.")
	}

	loc := &models.Location{Name: req.Name, Kind: models.LocationState, CountryID: &req.CountryID}
	if err := h.repo.CreateLocation(ctx, loc); err != nil {
		return message(c, http.StatusInternalServerError, "Server error while creating the state.")
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"message":  "State created successfully.",
		"location": loc,
	})
}

// CreateCity adds a city under an existing state.
func (h *Handlers) CreateCity(c echo.Context) error {
	var req createLocationRequest
	if err := c.Bind(&req); err != nil {
		return message(c, http.StatusBadRequest, "Invalid request body.")
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.StateID == 0 {
		return message(c, http.StatusBadRequest, "Name and state are required.")
	}

	ctx := c.Request().Context()

	parent, err := h.repo.GetLocation(ctx, req.StateID)
	if err != nil || parent.Kind != models.LocationState {
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return message(c, http.StatusInternalServerError, "Server error while creating the city.")
		}
		return message(c, http.StatusBadRequest, "State not found.")
	}

	loc := &models.Location{Name: req.Name, Kind: models.LocationCity, StateID: &req.StateID}
	if err := h.repo.CreateLocation(ctx, loc); err != nil {
		return message(c, http.StatusInternalServerError, "Server error while creating the city.")
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"message":  "City created successfully.",
		"location": loc,
	})
}

// Countries lists all countries.
func (h *Handlers) Countries(c echo.Context) error {
	countries, err := h.repo.ListCountries(c.Request().Context())
	if err != nil {
		return message(c, http.StatusInternalServerError, "Server error while listing countries.")
	}
	return c.JSON(http.StatusOK, countries)
}

// StatesByCountry lists the states of a country.
func (h *Handlers) StatesByCountry(c echo.Context) error {
	countryID, err := strconv.ParseInt(c.Param("countryId"), 10, 64)
	if err != nil {
		return message(c, http.StatusBadRequest, "Invalid country id.")
	}

	states, err := h.repo.ListStatesByCountry(c.Request().Context(), countryID)
	if err != nil {
		return message(c, http.StatusInternalServerError, "Server error while listing states.")
	}
	return c.JSON(http.StatusOK, states)
}

// CitiesByState lists the cities of a state.
func (h *Handlers) CitiesByState(c echo.Context) error {
	stateID, err := strconv.ParseInt(c.Param("stateId"), 10, 64)
	if err != nil {
		return message(c, http.StatusBadRequest, "Invalid state id.")
	}

	cities, err := h.repo.ListCitiesByState(c.Request().Context(), stateID)
	if err != nil {
		return message(c, http.StatusInternalServerError, "Server error while listing cities.")
	}
	return c.JSON(http.StatusOK, cities)
}

// DeleteLocation removes a location. Children are removed by the schema's
// cascade rules.
func (h *Handlers) DeleteLocation(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return message(c, http.StatusBadRequest, "Invalid location id.")
	}

	if err := h.repo.DeleteLocation(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return message(c, http.StatusNotFound, "Location not found.")
		}
		return message(c, http.StatusInternalServerError, "Server error while deleting the location.")
	}

	return message(c, http.StatusOK, "Location deleted successfully.")
}
