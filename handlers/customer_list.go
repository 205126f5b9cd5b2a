package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

func HandleCustomerList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("customers", "", "name", 0, 0, map[string]any{})
		if err != nil {
			log.Printf("customer_list: query failed: %v", err)
			return apiError(e, http.StatusInternalServerError, "Could not load customers")
		}

		return e.JSON(http.StatusOK, map[string]any{
			"customers": records,
			"total":     len(records),
		})
	}
}
