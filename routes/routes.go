package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Milaston7/ARRENDAKI-sub001/controllers"
	"github.com/Milaston7/ARRENDAKI-sub001/middlewares"
)

// Register wires all HTTP routes.
func Register(app *fiber.App) {
	api := app.Group("/api")

	// Public endpoints
	api.Post("/registration", controllers.Register)
	api.Post("/login", controllers.Login)
	api.Post("/logout", controllers.Logout)
	api.Get("/health", controllers.Health)
	api.Get("/ready", controllers.Ready)

	// Navigation works with or without a token
	api.Get("/navigation", middlewares.OptionalAuth(), controllers.GetNavigation)

	// Protected endpoints (JWT auth)
	protected := api.Group("")
	protected.Use(middlewares.IsAuthenticatedHeader())

	// Idempotency guard FIRST (not tied to request TX)
	protected.Use(middlewares.Idempotency())

	// Then per-request agency transaction (pins search_path and commits/rolls back)
	protected.Use(middlewares.TenantTx())

	// Parties (document counterparties, property owners)
	protected.Post("/party", controllers.CreateParty)
	protected.Get("/parties", controllers.GetParties)
	protected.Get("/party/:id", controllers.GetParty)
	protected.Put("/party/:id", controllers.UpdateParty)

	// Properties
	protected.Post("/property", controllers.CreateProperty)
	protected.Get("/properties", controllers.GetProperties)
	protected.Get("/property/:id", controllers.GetProperty)
	protected.Put("/property/:id", controllers.UpdateProperty)

	// Transactions
	protected.Post("/transaction", controllers.CreateTransaction)
	protected.Get("/transactions", controllers.GetTransactions)

	// Documents (render, issue, reprint/export)
	protected.Post("/documents/render", controllers.RenderDocument)
	protected.Post("/documents", controllers.IssueDocument)
	protected.Get("/documents", controllers.GetDocuments)
	protected.Get("/document/:id", controllers.GetDocument)
	protected.Get("/document/:id/print", controllers.PrintDocument)
	protected.Get("/document/:id/export", controllers.ExportDocument)
}
