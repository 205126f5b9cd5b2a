package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"fieldops/services"
)

type invoiceForm struct {
	Customer   string  `json:"customer"`
	Loadout    string  `json:"loadout"`
	IssueDate  string  `json:"issue_date"`
	DueDate    string  `json:"due_date"`
	Hours      float64 `json:"hours"`
	HourlyRate float64 `json:"hourly_rate"`
	Notes      string  `json:"notes"`
}

func (f *invoiceForm) validate() map[string]string {
	errs := make(map[string]string)
	if f.Customer == "" {
		errs["customer"] = "Customer is required"
	}
	if f.Hours <= 0 {
		errs["hours"] = "Hours must be positive"
	}
	if f.HourlyRate < 0 {
		errs["hourly_rate"] = "Hourly rate cannot be negative"
	}
	return errs
}

// HandleInvoiceCreate creates a draft invoice with a generated
// sequential invoice number. When a loadout is referenced and no rate
// is given, the loadout's billing rate is used.
func HandleInvoiceCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var form invoiceForm
		if err := e.BindBody(&form); err != nil {
			return apiError(e, http.StatusBadRequest, "Invalid request body")
		}
		if errs := form.validate(); len(errs) > 0 {
			return e.JSON(http.StatusBadRequest, map[string]any{"errors": errs})
		}

		if _, err := app.FindRecordById("customers", form.Customer); err != nil {
			return apiError(e, http.StatusBadRequest, "Unknown customer")
		}

		if form.Loadout != "" {
			loadout, err := app.FindRecordById("loadouts", form.Loadout)
			if err != nil {
				return apiError(e, http.StatusBadRequest, "Unknown loadout")
			}
			if form.HourlyRate == 0 {
				form.HourlyRate = loadout.GetFloat("billing_rate")
			}
		}

		number, err := services.GenerateInvoiceNumber(app, time.Now())
		if err != nil {
			log.Printf("invoice_create: could not generate invoice number: %v", err)
			return apiError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		col, err := app.FindCollectionByNameOrId("invoices")
		if err != nil {
			log.Printf("invoice_create: could not find invoices collection: %v", err)
			return apiError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		issueDate := form.IssueDate
		if issueDate == "" {
			issueDate = time.Now().Format("2006-01-02")
		}

		record := core.NewRecord(col)
		record.Set("invoice_number", number)
		record.Set("customer", form.Customer)
		record.Set("loadout", form.Loadout)
		record.Set("issue_date", issueDate)
		record.Set("due_date", form.DueDate)
		record.Set("hours", form.Hours)
		record.Set("hourly_rate", form.HourlyRate)
		record.Set("amount", form.Hours*form.HourlyRate)
		record.Set("status", "draft")
		record.Set("notes", strings.TrimSpace(form.Notes))

		if err := app.Save(record); err != nil {
			log.Printf("invoice_create: could not save invoice: %v", err)
			return apiError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		return e.JSON(http.StatusCreated, record)
	}
}

var invoiceStatusTransitions = map[string][]string{
	"draft": {"sent", "void"},
	"sent":  {"paid", "void"},
	"paid":  {},
	"void":  {},
}

// HandleInvoiceStatus advances an invoice through its lifecycle.
// Paid and void are terminal.
func HandleInvoiceStatus(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return apiError(e, http.StatusBadRequest, "Missing invoice ID")
		}

		record, err := app.FindRecordById("invoices", id)
		if err != nil {
			log.Printf("invoice_status: could not find invoice %s: %v", id, err)
			return apiError(e, http.StatusNotFound, "Invoice not found")
		}

		var form struct {
			Status string `json:"status"`
		}
		if err := e.BindBody(&form); err != nil {
			return apiError(e, http.StatusBadRequest, "Invalid request body")
		}

		current := record.GetString("status")
		allowed := false
		for _, next := range invoiceStatusTransitions[current] {
			if next == form.Status {
				allowed = true
				break
			}
		}
		if !allowed {
			return apiError(e, http.StatusConflict,
				"Cannot change invoice status from "+current+" to "+form.Status)
		}

		record.Set("status", form.Status)
		if err := app.Save(record); err != nil {
			log.Printf("invoice_status: could not save invoice %s: %v", id, err)
			return apiError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		return e.JSON(http.StatusOK, record)
	}
}
