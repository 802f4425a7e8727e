// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers

import (
	"github.com/labstack/echo/v4"
)

// message renders the common error/info payload used across the API.
func message(c echo.Context, status int, msg string) error {
	return c.JSON(status, map[string]string{
		"message": msg,
	})
}

// failure renders an error payload carrying an explicit success flag, as
// used by the verification endpoints.
func failure(c echo.Context, status int, msg string) error {
	return c.JSON(status, map[string]any{
		"success": false,
		"message": msg,
	})
}
