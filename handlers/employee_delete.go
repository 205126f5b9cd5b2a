package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

func HandleEmployeeDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return apiError(e, http.StatusBadRequest, "Missing employee ID")
		}

		record, err := app.FindRecordById("employees", id)
		if err != nil {
			log.Printf("employee_delete: could not find employee %s: %v", id, err)
			return apiError(e, http.StatusNotFound, "Employee not found")
		}

		// Loadout membership blocks deletion; the crew composition would
		// silently change otherwise.
		loadouts, err := app.FindRecordsByFilter(
			"loadouts",
			"employees ~ {:employeeId}",
			"", 1, 0,
			map[string]any{"employeeId": id},
		)
		if err == nil && len(loadouts) > 0 {
			return apiError(e, http.StatusConflict, "Cannot delete employee assigned to a loadout")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("employee_delete: failed to delete employee %s: %v", id, err)
			return apiError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		log.Printf("employee_delete: deleted employee %s\n", id)
		return e.JSON(http.StatusOK, map[string]string{"status": "deleted"})
	}
}
