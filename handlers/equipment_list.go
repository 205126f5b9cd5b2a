package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"fieldops/services"
)

// HandleEquipmentList returns all equipment records.
func HandleEquipmentList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		filter := ""
		if e.Request.URL.Query().Get("active") == "true" {
			filter = "active = true"
		}

		records, err := app.FindRecordsByFilter("equipment", filter, "-active,name", 0, 0, map[string]any{})
		if err != nil {
			log.Printf("equipment_list: query failed: %v", err)
			return apiError(e, http.StatusInternalServerError, "Could not load equipment")
		}

		return e.JSON(http.StatusOK, map[string]any{
			"equipment": records,
			"total":     len(records),
		})
	}
}

// HandleEquipmentView returns one machine with the full cost breakdown
// at daily, monthly and annual granularity.
func HandleEquipmentView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return apiError(e, http.StatusBadRequest, "Missing equipment ID")
		}

		record, err := app.FindRecordById("equipment", id)
		if err != nil {
			log.Printf("equipment_view: could not find equipment %s: %v", id, err)
			return apiError(e, http.StatusNotFound, "Equipment not found")
		}

		cost, err := services.CalcEquipmentCost(
			services.UsageFromRecord(record),
			services.FinancialFromRecord(record),
		)
		if err != nil {
			log.Printf("equipment_view: bad stored cost inputs on %s: %v", id, err)
			return apiError(e, http.StatusInternalServerError, "Stored equipment data is invalid")
		}

		return e.JSON(http.StatusOK, map[string]any{
			"equipment":      record,
			"cost_breakdown": cost,
			"daily_cost":     cost.DailyOperatingCost(),
			"monthly_cost":   cost.MonthlyOperatingCost(),
			"profit_margin":  cost.ProfitMargin(),
		})
	}
}

// HandleEquipmentDefaults returns form prefill values: the resale
// estimate for a purchase price and the usage figures for a pattern.
// Everything here is a suggestion; submitted values always win.
func HandleEquipmentDefaults(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		q := e.Request.URL.Query()

		pattern := services.UsagePattern(q.Get("pattern"))
		if q.Get("pattern") == "" {
			pattern = services.UsageModerate
		}

		resp := map[string]any{
			"usage_pattern": pattern,
			"days_per_year": pattern.DefaultDaysPerYear(),
			"hours_per_day": pattern.DefaultHoursPerDay(),
		}

		if raw := q.Get("purchase_price"); raw != "" {
			price, err := strconv.ParseFloat(raw, 64)
			if err != nil || price < 0 {
				return apiError(e, http.StatusBadRequest, "Invalid purchase price")
			}
			resp["estimated_resale_value"] = services.EstimateResaleValue(price)
		}

		return e.JSON(http.StatusOK, resp)
	}
}
