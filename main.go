package main

import (
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"fieldops/collections"
	"fieldops/handlers"
)

func main() {
	app := pocketbase.New()

	// Create collections, seed data, and refresh derived values on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		if err := collections.RecalculateDerivedValues(app); err != nil {
			log.Printf("Warning: derived value refresh failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// ── Qualification catalog ────────────────────────────────
		se.Router.GET("/api/catalog", handlers.HandleCatalog(app))

		// ── Employees ────────────────────────────────────────────
		se.Router.GET("/api/employees", handlers.HandleEmployeeList(app))
		se.Router.POST("/api/employees", handlers.HandleEmployeeCreate(app))
		se.Router.GET("/api/employees/{id}", handlers.HandleEmployeeView(app))
		se.Router.PATCH("/api/employees/{id}", handlers.HandleEmployeeEdit(app))
		se.Router.DELETE("/api/employees/{id}", handlers.HandleEmployeeDelete(app))
		se.Router.GET("/api/employees/{id}/activities", handlers.HandleEmployeeActivities(app))

		// ── Equipment (defaults before {id} so "defaults" is not an ID) ──
		se.Router.GET("/api/equipment/defaults", handlers.HandleEquipmentDefaults(app))
		se.Router.GET("/api/equipment", handlers.HandleEquipmentList(app))
		se.Router.POST("/api/equipment", handlers.HandleEquipmentCreate(app))
		se.Router.GET("/api/equipment/{id}", handlers.HandleEquipmentView(app))
		se.Router.PATCH("/api/equipment/{id}", handlers.HandleEquipmentEdit(app))
		se.Router.DELETE("/api/equipment/{id}", handlers.HandleEquipmentDelete(app))

		// ── Loadouts ─────────────────────────────────────────────
		se.Router.POST("/api/loadouts/estimate", handlers.HandleLoadoutEstimate(app))
		se.Router.GET("/api/loadouts", handlers.HandleLoadoutList(app))
		se.Router.POST("/api/loadouts", handlers.HandleLoadoutCreate(app))
		se.Router.GET("/api/loadouts/{id}", handlers.HandleLoadoutView(app))
		se.Router.PATCH("/api/loadouts/{id}", handlers.HandleLoadoutEdit(app))
		se.Router.DELETE("/api/loadouts/{id}", handlers.HandleLoadoutDelete(app))
		se.Router.GET("/api/loadouts/{id}/export/pdf", handlers.HandleLoadoutExportPDF(app))

		// ── Roster export ────────────────────────────────────────
		se.Router.GET("/api/roster/export/excel", handlers.HandleRosterExportExcel(app))

		// ── Customers ────────────────────────────────────────────
		se.Router.GET("/api/customers", handlers.HandleCustomerList(app))
		se.Router.POST("/api/customers", handlers.HandleCustomerCreate(app))
		se.Router.PATCH("/api/customers/{id}", handlers.HandleCustomerEdit(app))
		se.Router.DELETE("/api/customers/{id}", handlers.HandleCustomerDelete(app))

		// ── Invoices ─────────────────────────────────────────────
		se.Router.GET("/api/invoices", handlers.HandleInvoiceList(app))
		se.Router.POST("/api/invoices", handlers.HandleInvoiceCreate(app))
		se.Router.PATCH("/api/invoices/{id}/status", handlers.HandleInvoiceStatus(app))

		// ── Time tracking ────────────────────────────────────────
		se.Router.GET("/api/time-entries", handlers.HandleTimeEntryList(app))
		se.Router.POST("/api/time-entries", handlers.HandleTimeEntryCreate(app))
		se.Router.POST("/api/time-entries/{id}/stop", handlers.HandleTimeEntryStop(app))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
