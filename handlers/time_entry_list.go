package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleTimeEntryList returns time entries, newest first, optionally
// filtered by ?employee=. Totals split billable from non-billable hours.
func HandleTimeEntryList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		filter := ""
		params := map[string]any{}
		if employee := e.Request.URL.Query().Get("employee"); employee != "" {
			filter = "employee = {:employee}"
			params["employee"] = employee
		}

		records, err := app.FindRecordsByFilter("time_entries", filter, "-started_at", 0, 0, params)
		if err != nil {
			log.Printf("time_entry_list: query failed: %v", err)
			return apiError(e, http.StatusInternalServerError, "Could not load time entries")
		}

		var billableHours, totalHours float64
		for _, r := range records {
			h := r.GetFloat("hours")
			totalHours += h
			if r.GetBool("billable") {
				billableHours += h
			}
		}

		return e.JSON(http.StatusOK, map[string]any{
			"entries":        records,
			"total":          len(records),
			"total_hours":    totalHours,
			"billable_hours": billableHours,
		})
	}
}
