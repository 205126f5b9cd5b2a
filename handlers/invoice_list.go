package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleInvoiceList returns invoices, newest first, optionally filtered
// by ?status= or ?customer=.
func HandleInvoiceList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		q := e.Request.URL.Query()

		filter := ""
		params := map[string]any{}
		if status := q.Get("status"); status != "" {
			filter = "status = {:status}"
			params["status"] = status
		}
		if customer := q.Get("customer"); customer != "" {
			if filter != "" {
				filter += " && "
			}
			filter += "customer = {:customer}"
			params["customer"] = customer
		}

		records, err := app.FindRecordsByFilter("invoices", filter, "-issue_date", 0, 0, params)
		if err != nil {
			log.Printf("invoice_list: query failed: %v", err)
			return apiError(e, http.StatusInternalServerError, "Could not load invoices")
		}

		var outstanding float64
		for _, r := range records {
			if s := r.GetString("status"); s == "draft" || s == "sent" {
				outstanding += r.GetFloat("amount")
			}
		}

		return e.JSON(http.StatusOK, map[string]any{
			"invoices":    records,
			"total":       len(records),
			"outstanding": outstanding,
		})
	}
}
