// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package server

import (
	"codeberg.org/oliverandrich/nobias/internal/handlers"
	appmw "codeberg.org/oliverandrich/nobias/internal/middleware"
	"codeberg.org/oliverandrich/nobias/internal/repository"
	"codeberg.org/oliverandrich/nobias/internal/services/auth"
	"codeberg.org/oliverandrich/nobias/internal/services/token"
	"github.com/labstack/echo/v4"
)

func setupRoutes(e *echo.Echo, repo *repository.Repository, authService *auth.Service, tokens *token.Service) {
	h := handlers.New(repo, authService)

	requireAuth := appmw.RequireAuth(tokens, repo)
	requireAdmin := appmw.RequireAdmin()

	e.GET("/health", h.Health)

	api := e.Group("/api")

	// Account lifecycle
	authGroup := api.Group("/auth")
	authGroup.POST("/register", h.Register)
	authGroup.POST("/send-otp", h.SendOTP)
	authGroup.POST("/verify-otp", h.VerifyOTP)
	authGroup.POST("/login", h.Login)

	// Public read surface
	api.GET("/public/reports", h.PublicReports)
	api.GET("/reports/approved", h.ApprovedReports)
	api.GET("/locations/countries", h.Countries)
	api.GET("/locations/states/:countryId", h.StatesByCountry)
	api.GET("/locations/cities/:stateId", h.CitiesByState)
	api.GET("/discrimination-types", h.DiscriminationTypes)
	api.GET("/discrimination-types/:typeId/discriminations", h.DiscriminationsByType)
	api.GET("/discriminations", h.Discriminations)
	api.GET("/gender-types", h.GenderTypes)

	// Authenticated surface
	users := api.Group("/users", requireAuth)
	users.GET("/profile", h.Profile)
	users.PUT("/profile", h.UpdateProfile)

	reports := api.Group("/reports", requireAuth)
	reports.POST("", h.CreateReport)
	reports.GET("/:id", h.ReportByID)

	// Admin surface
	admin := api.Group("/admin", requireAuth, requireAdmin)
	admin.GET("/reports", h.AllReports)
	admin.GET("/reports/pending", h.PendingReports)
	admin.PUT("/reports/:id/approve", h.ApproveReport)
	admin.PUT("/reports/:id/reject", h.RejectReport)
	admin.GET("/users", h.Users)
	admin.GET("/users/total", h.TotalUsers)
	admin.GET("/filters", h.FilterData)

	admin.POST("/discrimination-types", h.CreateDiscriminationType)
	admin.PUT("/discrimination-types/:id", h.UpdateDiscriminationType)
	admin.DELETE("/discrimination-types/:id", h.DeleteDiscriminationType)
	admin.POST("/discriminations", h.CreateDiscrimination)
	admin.POST("/gender-types", h.CreateGenderType)
	admin.PUT("/gender-types/:id", h.UpdateGenderType)
	admin.DELETE("/gender-types/:id", h.DeleteGenderType)

	admin.POST("/locations/countries", h.CreateCountry)
	admin.POST("/locations/states", h.CreateState)
	admin.POST("/locations/cities", h.CreateCity)
	admin.DELETE("/locations/:id", h.DeleteLocation)
}
