// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"fieldops/collections"
	"fieldops/services"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestEmployee creates an employee record with the given name,
// role and tier, computes its derived values, and returns it.
func CreateTestEmployee(t *testing.T, app *pocketbase.PocketBase, name string, role services.Role, tier int) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("employees")
	if err != nil {
		t.Fatalf("failed to find employees collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("active", true)
	record.Set("role", string(role))
	record.Set("tier", tier)
	record.Set("leadership", string(services.LeadershipNone))
	record.Set("base_hourly_rate", 25.0)
	record.Set("overtime_multiplier", 1.5)

	if err := services.ApplyEmployeeDerived(record); err != nil {
		t.Fatalf("failed to derive test employee values: %v", err)
	}
	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test employee: %v", err)
	}

	return record
}

// CreateTestEquipment creates an equipment record with moderate usage
// defaults, computes its derived values, and returns it.
func CreateTestEquipment(t *testing.T, app *pocketbase.PocketBase, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("equipment")
	if err != nil {
		t.Fatalf("failed to find equipment collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("active", true)
	record.Set("purchase_price", 65000.0)
	record.Set("years_of_service", 7)
	record.Set("estimated_resale_value", 13000.0)
	record.Set("daily_fuel_cost", 150.0)
	record.Set("maintenance_level", string(services.MaintenanceStandard))
	record.Set("usage_pattern", string(services.UsageModerate))
	record.Set("days_per_year", 200)
	record.Set("hours_per_day", 6.0)

	if err := services.ApplyEquipmentDerived(record); err != nil {
		t.Fatalf("failed to derive test equipment values: %v", err)
	}
	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test equipment: %v", err)
	}

	return record
}

// CreateTestCustomer creates a customer record with the given name.
func CreateTestCustomer(t *testing.T, app *pocketbase.PocketBase, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("customers")
	if err != nil {
		t.Fatalf("failed to find customers collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("contact_person", "Test Contact")
	record.Set("phone", "352-555-0100")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test customer: %v", err)
	}

	return record
}

// CreateTestLoadout creates a loadout record referencing the given
// employee and equipment IDs, computes its derived values, and returns it.
func CreateTestLoadout(t *testing.T, app *pocketbase.PocketBase, name string, employeeIDs, equipmentIDs []string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("loadouts")
	if err != nil {
		t.Fatalf("failed to find loadouts collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("employees", employeeIDs)
	record.Set("equipment", equipmentIDs)
	record.Set("markup_multiplier", 2.5)

	services.ApplyLoadoutDerived(record, collections.ResolveLoadoutCost(app, record))

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test loadout: %v", err)
	}

	return record
}

// AssertJSONContains checks that body contains all specified fragments.
func AssertJSONContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected response to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
