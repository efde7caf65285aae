package api

import (
	"log"
	stdhttp "net/http"

	intconfig "fleetops/internal/config"
	h "fleetops/internal/http/handlers"
	"fleetops/internal/http/middleware"
	"fleetops/internal/services"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.SetJWTSecret(env.JWTSecret)
	h.SetEngineConfig(services.EngineConfig(env))

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	authed := middleware.RequireAuth(h.JWTSecret())
	manage := middleware.RequireRoles("admin", "manager")

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck(env))

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)

		// Users (admin only)
		users := api.Group("/users", authed, middleware.RequireRoles("admin"))
		users.GET("", h.GetUsers)
		users.GET("/:id", h.GetUserByID)
		users.POST("", h.CreateUser)
		users.PUT("/:id", h.UpdateUser)
		users.DELETE("/:id", h.DeleteUser)

		// Vehicles
		vehicles := api.Group("/vehicles")
		vehicles.GET("", h.GetVehicles)
		vehicles.GET("/:id", h.GetVehicleByID)
		vehicles.POST("", authed, manage, h.CreateVehicle)
		vehicles.PUT("/:id", authed, manage, h.UpdateVehicle)
		vehicles.DELETE("/:id", authed, manage, h.DeleteVehicle)

		// Rentals
		rentals := api.Group("/rentals")
		rentals.POST("/quote", h.QuoteRental)
		rentals.POST("", authed, h.CreateRental)
		rentals.GET("", h.GetRentals)
		rentals.GET("/:id/agreement", h.GetRentalAgreementPDF)

		// Invoices
		invoices := api.Group("/invoices")
		invoices.GET("", h.GetInvoices)
		invoices.GET("/portfolio", h.GetPortfolioSummary)
		invoices.GET("/pages", h.GetInvoicePages)
		invoices.GET("/:id", h.GetInvoiceByID)
		invoices.GET("/:id/pdf", h.GetInvoicePDF)
		invoices.POST("", authed, h.CreateInvoice)
		invoices.POST("/:id/payments", authed, h.RecordInvoicePayment)

		// Finance
		api.GET("/reports/finance", h.GetFinanceReport)
		api.POST("/transactions", authed, h.CreateTransaction)
	}

	return r
}
