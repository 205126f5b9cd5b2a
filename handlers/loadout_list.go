package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"fieldops/collections"
	"fieldops/services"
)

// HandleLoadoutList returns all loadouts with their stored pricing.
func HandleLoadoutList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("loadouts", "", "name", 0, 0, map[string]any{})
		if err != nil {
			log.Printf("loadout_list: query failed: %v", err)
			return apiError(e, http.StatusInternalServerError, "Could not load loadouts")
		}

		return e.JSON(http.StatusOK, map[string]any{
			"loadouts": records,
			"total":    len(records),
		})
	}
}

// HandleLoadoutView returns one loadout with a freshly resolved cost
// calculation, revenue projections and profitability figures.
func HandleLoadoutView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return apiError(e, http.StatusBadRequest, "Missing loadout ID")
		}

		record, err := app.FindRecordById("loadouts", id)
		if err != nil {
			log.Printf("loadout_view: could not find loadout %s: %v", id, err)
			return apiError(e, http.StatusNotFound, "Loadout not found")
		}

		cost := collections.ResolveLoadoutCost(app, record)

		return e.JSON(http.StatusOK, map[string]any{
			"loadout":          record,
			"cost":             cost,
			"hourly_profit":    cost.HourlyProfit(),
			"efficiency_ratio": cost.CostEfficiencyRatio(),
		})
	}
}

// loadoutEstimateForm asks for a quick head-count estimate before any
// employee or equipment records exist.
type loadoutEstimateForm struct {
	EmployeeCount      int     `json:"employee_count"`
	EquipmentCount     int     `json:"equipment_count"`
	MarkupMultiplier   float64 `json:"markup_multiplier"`
	CustomRateOverride float64 `json:"custom_rate_override"`
}

// HandleLoadoutEstimate prices a hypothetical crew from head counts at
// the placeholder rates. Used for quick quoting before a loadout is
// saved.
func HandleLoadoutEstimate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var form loadoutEstimateForm
		if err := e.BindBody(&form); err != nil {
			return apiError(e, http.StatusBadRequest, "Invalid request body")
		}
		if form.EmployeeCount < 0 || form.EquipmentCount < 0 {
			return apiError(e, http.StatusBadRequest, "Member counts cannot be negative")
		}

		pricing := services.LoadoutPricing{
			MarkupMultiplier:   form.MarkupMultiplier,
			CustomRateOverride: form.CustomRateOverride,
		}
		if pricing.MarkupMultiplier == 0 && !pricing.HasCustomPricing() {
			pricing.MarkupMultiplier = services.LaborMarkup
		}

		cost := services.CalcLoadoutCostMock(form.EmployeeCount, form.EquipmentCount, pricing)

		return e.JSON(http.StatusOK, map[string]any{
			"cost":             cost,
			"hourly_profit":    cost.HourlyProfit(),
			"efficiency_ratio": cost.CostEfficiencyRatio(),
		})
	}
}
