package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

type customerForm struct {
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Notes         string `json:"notes"`
}

func setCustomerFields(record *core.Record, f customerForm) {
	record.Set("name", strings.TrimSpace(f.Name))
	record.Set("contact_person", strings.TrimSpace(f.ContactPerson))
	record.Set("email", strings.TrimSpace(f.Email))
	record.Set("phone", strings.TrimSpace(f.Phone))
	record.Set("address", strings.TrimSpace(f.Address))
	record.Set("notes", strings.TrimSpace(f.Notes))
}

func HandleCustomerCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var form customerForm
		if err := e.BindBody(&form); err != nil {
			return apiError(e, http.StatusBadRequest, "Invalid request body")
		}
		if strings.TrimSpace(form.Name) == "" {
			return e.JSON(http.StatusBadRequest, map[string]any{
				"errors": map[string]string{"name": "Name is required"},
			})
		}

		col, err := app.FindCollectionByNameOrId("customers")
		if err != nil {
			log.Printf("customer_create: could not find customers collection: %v", err)
			return apiError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(col)
		setCustomerFields(record, form)

		if err := app.Save(record); err != nil {
			log.Printf("customer_create: could not save customer: %v", err)
			return apiError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		return e.JSON(http.StatusCreated, record)
	}
}

func HandleCustomerEdit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return apiError(e, http.StatusBadRequest, "Missing customer ID")
		}

		record, err := app.FindRecordById("customers", id)
		if err != nil {
			log.Printf("customer_edit: could not find customer %s: %v", id, err)
			return apiError(e, http.StatusNotFound, "Customer not found")
		}

		var form customerForm
		if err := e.BindBody(&form); err != nil {
			return apiError(e, http.StatusBadRequest, "Invalid request body")
		}
		if strings.TrimSpace(form.Name) == "" {
			return e.JSON(http.StatusBadRequest, map[string]any{
				"errors": map[string]string{"name": "Name is required"},
			})
		}

		setCustomerFields(record, form)

		if err := app.Save(record); err != nil {
			log.Printf("customer_edit: could not save customer %s: %v", id, err)
			return apiError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		return e.JSON(http.StatusOK, record)
	}
}
