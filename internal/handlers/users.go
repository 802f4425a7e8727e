// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"codeberg.org/oliverandrich/nobias/internal/middleware"
	"codeberg.org/oliverandrich/nobias/internal/models"
	"codeberg.org/oliverandrich/nobias/internal/repository"
	"github.com/labstack/echo/v4"
)

// Profile returns the profile of the authenticated user with the location
// references resolved to names.
func (h *Handlers) Profile(c echo.Context) error {
	user := middleware.CurrentUser(c)

	profile, err := h.buildProfile(c.Request().Context(), user)
	if err != nil {
		return message(c, http.StatusInternalServerError, "Server error while loading the profile.")
	}

	return c.JSON(http.StatusOK, profile)
}

type updateProfileRequest struct { //nolint:govet // fieldalignment: order follows the request body
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Gender    string `json:"gender"`
	Mobile    string `json:"mobile"`
	CountryID int64  `json:"country_id"`
	StateID   int64  `json:"state_id"`
	CityID    int64  `json:"city_id"`
}

// UpdateProfile completes the profile of the authenticated user. The
// location hierarchy is validated top-down: the state must belong to the
// chosen country and the city to the chosen state.
func (h *Handlers) UpdateProfile(c echo.Context) error {
	user := middleware.CurrentUser(c)

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return message(c, http.StatusBadRequest, "Invalid request body.")
	}

	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	if req.FirstName == "" || req.LastName == "" {
		return message(c, http.StatusBadRequest, "First name and last name are required.")
	}
	if req.CountryID == 0 || req.StateID == 0 || req.CityID == 0 {
		return message(c, http.StatusBadRequest, "Country, state, and city are required.")
	}

	ctx := c.Request().Context()

	country, err := h.repo.GetLocation(ctx, req.CountryID)
	if err != nil || country.Kind != models.LocationCountry {
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return message(c, http.StatusInternalServerError, "Server error while updating the profile.")
		}
		return message(c, http.StatusBadRequest, "Country not found.")
	}

	ok, err := h.repo.StateBelongsToCountry(ctx, req.StateID, req.CountryID)
	if err != nil {
		return message(c, http.StatusInternalServerError, "Server error while updating the profile.")
	}
	if !ok {
		return message(c, http.StatusBadRequest, "State not found in the selected country.")
	}

	ok, err = h.repo.CityBelongsToState(ctx, req.CityID, req.StateID)
	if err != nil {
		return message(c, http.StatusInternalServerError, "Server error while updating the profile.")
	}
	if !ok {
		return message(c, http.StatusBadRequest, "City not found in the selected state.")
	}

	updated, err := h.repo.UpdateUserProfile(ctx, user.ID, repository.ProfileUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Gender:    req.Gender,
		Mobile:    req.Mobile,
		CountryID: req.CountryID,
		StateID:   req.StateID,
		CityID:    req.CityID,
	})
	if err != nil {
		return message(c, http.StatusInternalServerError, "Server error while updating the profile.")
	}

	profile, err := h.buildProfile(ctx, updated)
	if err != nil {
		return message(c, http.StatusInternalServerError, "Server error while loading the profile.")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message": "Profile updated successfully.",
		"profile": profile,
	})
}

// buildProfile resolves the user's location references to names. Dangling
// references render as null instead of failing the whole response.
func (h *Handlers) buildProfile(ctx context.Context, user *models.User) (*models.Profile, error) {
	profile := &models.Profile{
		ID:               user.ID,
		Email:            user.Email,
		FirstName:        user.FirstName,
		LastName:         user.LastName,
		Gender:           user.Gender,
		Mobile:           user.Mobile,
		Role:             user.Role,
		ProfileCompleted: user.ProfileCompleted,
	}

	for _, ref := range []struct {
		id  *int64
		dst **models.LocationRef
	}{
		{user.CountryID, &profile.Country},
		{user.StateID, &profile.State},
		{user.CityID, &profile.City},
	} {
		if ref.id == nil {
			continue
		}
		loc, err := h.repo.GetLocation(ctx, *ref.id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				continue
			}
			return nil, err
		}
		*ref.dst = &models.LocationRef{ID: loc.ID, Name: loc.Name}
	}

	return profile, nil
}
