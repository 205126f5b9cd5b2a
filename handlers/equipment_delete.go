package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

func HandleEquipmentDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return apiError(e, http.StatusBadRequest, "Missing equipment ID")
		}

		record, err := app.FindRecordById("equipment", id)
		if err != nil {
			log.Printf("equipment_delete: could not find equipment %s: %v", id, err)
			return apiError(e, http.StatusNotFound, "Equipment not found")
		}

		loadouts, err := app.FindRecordsByFilter(
			"loadouts",
			"equipment ~ {:equipmentId}",
			"", 1, 0,
			map[string]any{"equipmentId": id},
		)
		if err == nil && len(loadouts) > 0 {
			return apiError(e, http.StatusConflict, "Cannot delete equipment assigned to a loadout")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("equipment_delete: failed to delete equipment %s: %v", id, err)
			return apiError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		log.Printf("equipment_delete: deleted equipment %s\n", id)
		return e.JSON(http.StatusOK, map[string]string{"status": "deleted"})
	}
}
