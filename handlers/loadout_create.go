package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"fieldops/collections"
	"fieldops/services"
)

// loadoutForm is the JSON payload for creating or editing a loadout.
type loadoutForm struct {
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	Employees          []string `json:"employees"`
	Equipment          []string `json:"equipment"`
	MarkupMultiplier   float64  `json:"markup_multiplier"`
	CustomRateOverride float64  `json:"custom_rate_override"`
	Notes              string   `json:"notes"`
}

func (f *loadoutForm) validate() map[string]string {
	errs := make(map[string]string)
	f.Name = strings.TrimSpace(f.Name)
	if f.Name == "" {
		errs["name"] = "Name is required"
	}
	if f.MarkupMultiplier < 0 {
		errs["markup_multiplier"] = "Markup multiplier cannot be negative"
	}
	if f.CustomRateOverride < 0 {
		errs["custom_rate_override"] = "Custom rate cannot be negative"
	}
	return errs
}

func setLoadoutFields(record *core.Record, f loadoutForm) {
	record.Set("name", f.Name)
	record.Set("description", strings.TrimSpace(f.Description))
	record.Set("employees", f.Employees)
	record.Set("equipment", f.Equipment)
	if f.MarkupMultiplier == 0 && f.CustomRateOverride == 0 {
		f.MarkupMultiplier = services.LaborMarkup
	}
	record.Set("markup_multiplier", f.MarkupMultiplier)
	record.Set("custom_rate_override", f.CustomRateOverride)
	record.Set("notes", strings.TrimSpace(f.Notes))
}

// HandleLoadoutCreate creates a loadout priced from its resolved member
// records.
func HandleLoadoutCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var form loadoutForm
		if err := e.BindBody(&form); err != nil {
			return apiError(e, http.StatusBadRequest, "Invalid request body")
		}
		if errs := form.validate(); len(errs) > 0 {
			return e.JSON(http.StatusBadRequest, map[string]any{"errors": errs})
		}

		col, err := app.FindCollectionByNameOrId("loadouts")
		if err != nil {
			log.Printf("loadout_create: could not find loadouts collection: %v", err)
			return apiError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(col)
		setLoadoutFields(record, form)

		cost := collections.ResolveLoadoutCost(app, record)
		services.ApplyLoadoutDerived(record, cost)

		if err := app.Save(record); err != nil {
			log.Printf("loadout_create: could not save loadout: %v", err)
			return apiError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		return e.JSON(http.StatusCreated, map[string]any{
			"loadout": record,
			"cost":    cost,
		})
	}
}

// HandleLoadoutEdit updates a loadout and reprices it from the new
// member set and pricing policy.
func HandleLoadoutEdit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return apiError(e, http.StatusBadRequest, "Missing loadout ID")
		}

		record, err := app.FindRecordById("loadouts", id)
		if err != nil {
			log.Printf("loadout_edit: could not find loadout %s: %v", id, err)
			return apiError(e, http.StatusNotFound, "Loadout not found")
		}

		var form loadoutForm
		if err := e.BindBody(&form); err != nil {
			return apiError(e, http.StatusBadRequest, "Invalid request body")
		}
		if errs := form.validate(); len(errs) > 0 {
			return e.JSON(http.StatusBadRequest, map[string]any{"errors": errs})
		}

		setLoadoutFields(record, form)

		cost := collections.ResolveLoadoutCost(app, record)
		services.ApplyLoadoutDerived(record, cost)

		if err := app.Save(record); err != nil {
			log.Printf("loadout_edit: could not save loadout %s: %v", id, err)
			return apiError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		return e.JSON(http.StatusOK, map[string]any{
			"loadout": record,
			"cost":    cost,
		})
	}
}
