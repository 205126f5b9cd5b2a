// Package collections programmatically ensures the application's
// PocketBase schema and seeds it with starter data.
package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"fieldops/services"
)

// Setup programmatically creates/ensures the customers, employees,
// equipment, loadouts, invoices and time_entries collections exist.
func Setup(app *pocketbase.PocketBase) {
	customers := ensureCollection(app, "customers", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "contact_person", Required: false})
		c.Fields.Add(&core.EmailField{Name: "email", Required: false})
		c.Fields.Add(&core.TextField{Name: "phone", Required: false})
		c.Fields.Add(&core.TextField{Name: "address", Required: false})
		c.Fields.Add(&core.TextField{Name: "notes", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	employees := ensureCollection(app, "employees", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.EmailField{Name: "email", Required: false})
		c.Fields.Add(&core.TextField{Name: "phone", Required: false})
		c.Fields.Add(&core.DateField{Name: "hire_date", Required: false})
		c.Fields.Add(&core.BoolField{Name: "active"})

		// qualification attributes
		c.Fields.Add(&core.SelectField{
			Name:      "role",
			Required:  true,
			Values:    roleValues(),
			MaxSelect: 1,
		})
		c.Fields.Add(&core.NumberField{Name: "tier", Required: true})
		c.Fields.Add(&core.SelectField{
			Name:      "leadership",
			Required:  false,
			Values:    leadershipValues(),
			MaxSelect: 1,
		})
		c.Fields.Add(&core.SelectField{
			Name:      "equipment_certs",
			Required:  false,
			Values:    equipmentLevelValues(),
			MaxSelect: len(services.AllEquipmentLevels),
		})
		c.Fields.Add(&core.SelectField{
			Name:      "driver",
			Required:  false,
			Values:    driverClassValues(),
			MaxSelect: 1,
		})
		c.Fields.Add(&core.SelectField{
			Name:      "certifications",
			Required:  false,
			Values:    certificationValues(),
			MaxSelect: len(services.AllCertifications),
		})
		c.Fields.Add(&core.JSONField{Name: "cross_training", Required: false})
		c.Fields.Add(&core.JSONField{Name: "specializations", Required: false})

		// compensation
		c.Fields.Add(&core.NumberField{Name: "base_hourly_rate", Required: true})
		c.Fields.Add(&core.NumberField{Name: "overtime_multiplier", Required: false})
		c.Fields.Add(&core.NumberField{Name: "benefits_rate", Required: false})
		c.Fields.Add(&core.NumberField{Name: "workers_comp_rate", Required: false})
		c.Fields.Add(&core.NumberField{Name: "payroll_tax_rate", Required: false})

		// derived, recomputed on every write
		c.Fields.Add(&core.TextField{Name: "qualification_code", Required: false})
		c.Fields.Add(&core.NumberField{Name: "true_hourly_cost", Required: false})
		c.Fields.Add(&core.NumberField{Name: "billing_rate", Required: false})
		c.Fields.Add(&core.NumberField{Name: "profit_margin", Required: false})

		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	equipment := ensureCollection(app, "equipment", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "make_model", Required: false})
		c.Fields.Add(&core.TextField{Name: "serial_number", Required: false})
		c.Fields.Add(&core.BoolField{Name: "active"})

		// financial inputs
		c.Fields.Add(&core.NumberField{Name: "purchase_price", Required: true})
		c.Fields.Add(&core.NumberField{Name: "years_of_service", Required: true})
		c.Fields.Add(&core.NumberField{Name: "estimated_resale_value", Required: false})
		c.Fields.Add(&core.NumberField{Name: "daily_fuel_cost", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "maintenance_level",
			Required:  true,
			Values:    maintenanceLevelValues(),
			MaxSelect: 1,
		})
		c.Fields.Add(&core.NumberField{Name: "custom_maintenance_cost", Required: false})
		c.Fields.Add(&core.NumberField{Name: "annual_insurance_cost", Required: false})

		// usage profile
		c.Fields.Add(&core.SelectField{
			Name:      "usage_pattern",
			Required:  true,
			Values:    usagePatternValues(),
			MaxSelect: 1,
		})
		c.Fields.Add(&core.NumberField{Name: "days_per_year", Required: true})
		c.Fields.Add(&core.NumberField{Name: "hours_per_day", Required: true})

		// derived, recomputed on every write
		c.Fields.Add(&core.NumberField{Name: "hourly_cost", Required: false})
		c.Fields.Add(&core.NumberField{Name: "recommended_rate", Required: false})

		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	loadouts := ensureCollection(app, "loadouts", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "description", Required: false})
		c.Fields.Add(&core.RelationField{
			Name:         "employees",
			Required:     false,
			CollectionId: employees.Id,
			MaxSelect:    50,
		})
		c.Fields.Add(&core.RelationField{
			Name:         "equipment",
			Required:     false,
			CollectionId: equipment.Id,
			MaxSelect:    50,
		})
		c.Fields.Add(&core.NumberField{Name: "markup_multiplier", Required: true})
		c.Fields.Add(&core.NumberField{Name: "custom_rate_override", Required: false})
		c.Fields.Add(&core.TextField{Name: "notes", Required: false})

		// derived, recomputed on every write
		c.Fields.Add(&core.NumberField{Name: "total_operating_cost", Required: false})
		c.Fields.Add(&core.NumberField{Name: "billing_rate", Required: false})
		c.Fields.Add(&core.NumberField{Name: "profit_margin", Required: false})

		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "invoices", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "invoice_number", Required: true})
		c.Fields.Add(&core.RelationField{
			Name:          "customer",
			Required:      true,
			CollectionId:  customers.Id,
			CascadeDelete: false,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.RelationField{
			Name:         "loadout",
			Required:     false,
			CollectionId: loadouts.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.DateField{Name: "issue_date", Required: true})
		c.Fields.Add(&core.DateField{Name: "due_date", Required: false})
		c.Fields.Add(&core.NumberField{Name: "hours", Required: true})
		c.Fields.Add(&core.NumberField{Name: "hourly_rate", Required: true})
		c.Fields.Add(&core.NumberField{Name: "amount", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  true,
			Values:    []string{"draft", "sent", "paid", "void"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "notes", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "time_entries", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "employee",
			Required:      true,
			CollectionId:  employees.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.TextField{Name: "activity_name", Required: true})
		c.Fields.Add(&core.TextField{Name: "activity_category", Required: false})
		c.Fields.Add(&core.BoolField{Name: "billable"})
		c.Fields.Add(&core.DateField{Name: "started_at", Required: true})
		c.Fields.Add(&core.DateField{Name: "ended_at", Required: false})
		c.Fields.Add(&core.NumberField{Name: "hours", Required: false})
		c.Fields.Add(&core.TextField{Name: "location", Required: false})
		c.Fields.Add(&core.RelationField{
			Name:         "equipment",
			Required:     false,
			CollectionId: equipment.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.TextField{Name: "notes", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}

// Select field values come from the services catalogs so the schema and
// the engines can never drift apart.

func roleValues() []string {
	vals := make([]string, len(services.AllRoles))
	for i, r := range services.AllRoles {
		vals[i] = string(r)
	}
	return vals
}

func leadershipValues() []string {
	vals := make([]string, len(services.AllLeadershipLevels))
	for i, l := range services.AllLeadershipLevels {
		vals[i] = string(l)
	}
	return vals
}

func equipmentLevelValues() []string {
	vals := make([]string, len(services.AllEquipmentLevels))
	for i, e := range services.AllEquipmentLevels {
		vals[i] = string(e)
	}
	return vals
}

func driverClassValues() []string {
	vals := make([]string, len(services.AllDriverClasses))
	for i, d := range services.AllDriverClasses {
		vals[i] = string(d)
	}
	return vals
}

func certificationValues() []string {
	vals := make([]string, len(services.AllCertifications))
	for i, c := range services.AllCertifications {
		vals[i] = string(c)
	}
	return vals
}

func maintenanceLevelValues() []string {
	vals := make([]string, len(services.AllMaintenanceLevels))
	for i, m := range services.AllMaintenanceLevels {
		vals[i] = string(m)
	}
	return vals
}

func usagePatternValues() []string {
	vals := make([]string, len(services.AllUsagePatterns))
	for i, u := range services.AllUsagePatterns {
		vals[i] = string(u)
	}
	return vals
}
