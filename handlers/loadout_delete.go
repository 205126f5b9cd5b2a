package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

func HandleLoadoutDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return apiError(e, http.StatusBadRequest, "Missing loadout ID")
		}

		record, err := app.FindRecordById("loadouts", id)
		if err != nil {
			log.Printf("loadout_delete: could not find loadout %s: %v", id, err)
			return apiError(e, http.StatusNotFound, "Loadout not found")
		}

		invoices, err := app.FindRecordsByFilter(
			"invoices",
			"loadout = {:loadoutId}",
			"", 1, 0,
			map[string]any{"loadoutId": id},
		)
		if err == nil && len(invoices) > 0 {
			return apiError(e, http.StatusConflict, "Cannot delete loadout referenced by invoices")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("loadout_delete: failed to delete loadout %s: %v", id, err)
			return apiError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		log.Printf("loadout_delete: deleted loadout %s\n", id)
		return e.JSON(http.StatusOK, map[string]string{"status": "deleted"})
	}
}
