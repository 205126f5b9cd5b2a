package collections

import (
	"fmt"
	"log"
	"math"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"fieldops/services"
)

// RecalculateDerivedValues recomputes every stored derived value from
// the current engine constants. Premium tables and markups can change
// between releases; a startup pass keeps stored records from drifting.
// Safe to call on every startup -- records whose values already match
// are left untouched.
func RecalculateDerivedValues(app *pocketbase.PocketBase) error {
	changed := 0

	employees, err := app.FindAllRecords("employees")
	if err != nil {
		return fmt.Errorf("recalc: could not query employees: %w", err)
	}
	for _, r := range employees {
		prevCode := r.GetString("qualification_code")
		prevCost := r.GetFloat("true_hourly_cost")

		if err := services.ApplyEmployeeDerived(r); err != nil {
			log.Printf("recalc: skipping employee %s: %v\n", r.Id, err)
			continue
		}
		if r.GetString("qualification_code") == prevCode && floatsEqual(r.GetFloat("true_hourly_cost"), prevCost) {
			continue
		}
		if err := app.Save(r); err != nil {
			return fmt.Errorf("recalc: save employee %s: %w", r.Id, err)
		}
		changed++
	}

	machines, err := app.FindAllRecords("equipment")
	if err != nil {
		return fmt.Errorf("recalc: could not query equipment: %w", err)
	}
	for _, r := range machines {
		prev := r.GetFloat("hourly_cost")

		if err := services.ApplyEquipmentDerived(r); err != nil {
			log.Printf("recalc: skipping equipment %s: %v\n", r.Id, err)
			continue
		}
		if floatsEqual(r.GetFloat("hourly_cost"), prev) {
			continue
		}
		if err := app.Save(r); err != nil {
			return fmt.Errorf("recalc: save equipment %s: %w", r.Id, err)
		}
		changed++
	}

	loadouts, err := app.FindAllRecords("loadouts")
	if err != nil {
		return fmt.Errorf("recalc: could not query loadouts: %w", err)
	}
	for _, r := range loadouts {
		prev := r.GetFloat("billing_rate")

		services.ApplyLoadoutDerived(r, ResolveLoadoutCost(app, r))
		if floatsEqual(r.GetFloat("billing_rate"), prev) {
			continue
		}
		if err := app.Save(r); err != nil {
			return fmt.Errorf("recalc: save loadout %s: %w", r.Id, err)
		}
		changed++
	}

	if changed > 0 {
		log.Printf("recalc: refreshed derived values on %d record(s)\n", changed)
	}
	return nil
}

// ResolveLoadoutCost prices a loadout from its current member records.
// Members that no longer resolve are priced at the placeholder rates, so
// a loadout with dangling references still gets a defensible estimate.
func ResolveLoadoutCost(app *pocketbase.PocketBase, loadout *core.Record) services.LoadoutCost {
	var employeeCosts []float64
	for _, id := range loadout.GetStringSlice("employees") {
		member, err := app.FindRecordById("employees", id)
		if err != nil {
			employeeCosts = append(employeeCosts, services.PlaceholderEmployeeRate)
			continue
		}
		employeeCosts = append(employeeCosts, member.GetFloat("true_hourly_cost"))
	}

	var equipmentCosts []float64
	for _, id := range loadout.GetStringSlice("equipment") {
		machine, err := app.FindRecordById("equipment", id)
		if err != nil {
			equipmentCosts = append(equipmentCosts, services.PlaceholderEquipmentRate)
			continue
		}
		equipmentCosts = append(equipmentCosts, machine.GetFloat("hourly_cost"))
	}

	return services.CalcLoadoutCost(employeeCosts, equipmentCosts, services.PricingFromRecord(loadout))
}

func floatsEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.0001
}
