package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"fieldops/services"
)

// HandleEmployeeList returns all employees, active ones first unless
// ?active=true narrows the list to the current roster.
func HandleEmployeeList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		filter := ""
		params := map[string]any{}
		if e.Request.URL.Query().Get("active") == "true" {
			filter = "active = true"
		}

		records, err := app.FindRecordsByFilter("employees", filter, "-active,name", 0, 0, params)
		if err != nil {
			log.Printf("employee_list: query failed: %v", err)
			return apiError(e, http.StatusInternalServerError, "Could not load employees")
		}

		return e.JSON(http.StatusOK, map[string]any{
			"employees": records,
			"total":     len(records),
		})
	}
}

// HandleEmployeeView returns one employee together with the itemized
// cost breakdown, so clients can show where the true hourly cost comes
// from without reimplementing the premium tables.
func HandleEmployeeView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return apiError(e, http.StatusBadRequest, "Missing employee ID")
		}

		record, err := app.FindRecordById("employees", id)
		if err != nil {
			log.Printf("employee_view: could not find employee %s: %v", id, err)
			return apiError(e, http.StatusNotFound, "Employee not found")
		}

		attrs, err := services.AttributesFromRecord(record)
		if err != nil {
			log.Printf("employee_view: bad stored attributes on %s: %v", id, err)
			return apiError(e, http.StatusInternalServerError, "Stored employee data is invalid")
		}

		cost := services.CalcLaborCost(attrs, services.CompensationFromRecord(record))

		return e.JSON(http.StatusOK, map[string]any{
			"employee":             record,
			"qualification_code":   services.BuildQualificationCode(attrs),
			"cost_breakdown":       cost,
			"annual_cost":          cost.AnnualCost(),
			"overtime_hourly_cost": cost.OvertimeCost(),
			"total_certifications": attrs.TotalCertifications(),
		})
	}
}
