package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"fieldops/services"
)

// HandleEmployeeActivities returns the catalog of activities the
// employee's current qualifications allow time to be logged against.
func HandleEmployeeActivities(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return apiError(e, http.StatusBadRequest, "Missing employee ID")
		}

		record, err := app.FindRecordById("employees", id)
		if err != nil {
			log.Printf("employee_activities: could not find employee %s: %v", id, err)
			return apiError(e, http.StatusNotFound, "Employee not found")
		}

		attrs, err := services.AttributesFromRecord(record)
		if err != nil {
			log.Printf("employee_activities: bad stored attributes on %s: %v", id, err)
			return apiError(e, http.StatusInternalServerError, "Stored employee data is invalid")
		}

		activities := services.EligibleActivities(attrs)

		return e.JSON(http.StatusOK, map[string]any{
			"employee_id": record.Id,
			"activities":  activities,
			"total":       len(activities),
		})
	}
}
