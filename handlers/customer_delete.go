package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

func HandleCustomerDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return apiError(e, http.StatusBadRequest, "Missing customer ID")
		}

		record, err := app.FindRecordById("customers", id)
		if err != nil {
			log.Printf("customer_delete: could not find customer %s: %v", id, err)
			return apiError(e, http.StatusNotFound, "Customer not found")
		}

		invoices, err := app.FindRecordsByFilter(
			"invoices",
			"customer = {:customerId}",
			"", 1, 0,
			map[string]any{"customerId": id},
		)
		if err == nil && len(invoices) > 0 {
			return apiError(e, http.StatusConflict, "Cannot delete customer with existing invoices")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("customer_delete: failed to delete customer %s: %v", id, err)
			return apiError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		log.Printf("customer_delete: deleted customer %s\n", id)
		return e.JSON(http.StatusOK, map[string]string{"status": "deleted"})
	}
}
