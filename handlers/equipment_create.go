package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"fieldops/services"
)

// equipmentForm is the JSON payload for creating or editing equipment.
type equipmentForm struct {
	Name         string `json:"name"`
	MakeModel    string `json:"make_model"`
	SerialNumber string `json:"serial_number"`
	Active       *bool  `json:"active"`

	PurchasePrice         float64 `json:"purchase_price"`
	YearsOfService        int     `json:"years_of_service"`
	EstimatedResaleValue  float64 `json:"estimated_resale_value"`
	DailyFuelCost         float64 `json:"daily_fuel_cost"`
	MaintenanceLevel      string  `json:"maintenance_level"`
	CustomMaintenanceCost float64 `json:"custom_maintenance_cost"`
	AnnualInsuranceCost   float64 `json:"annual_insurance_cost"`

	UsagePattern string  `json:"usage_pattern"`
	DaysPerYear  int     `json:"days_per_year"`
	HoursPerDay  float64 `json:"hours_per_day"`
}

func (f *equipmentForm) validate() map[string]string {
	errs := make(map[string]string)
	f.Name = strings.TrimSpace(f.Name)
	if f.Name == "" {
		errs["name"] = "Name is required"
	}
	if f.PurchasePrice <= 0 {
		errs["purchase_price"] = "Purchase price must be positive"
	}
	if f.YearsOfService <= 0 {
		errs["years_of_service"] = "Years of service must be positive"
	}
	if !services.MaintenanceLevel(f.MaintenanceLevel).Valid() {
		errs["maintenance_level"] = "Unknown maintenance level"
	}
	return errs
}

// setEquipmentFields sets all equipment fields on a record from form
// data. Unset resale value and usage figures are filled from the
// standard defaults so the cost calculation always has full inputs.
func setEquipmentFields(record *core.Record, f equipmentForm) {
	record.Set("name", f.Name)
	record.Set("make_model", strings.TrimSpace(f.MakeModel))
	record.Set("serial_number", strings.TrimSpace(f.SerialNumber))
	if f.Active != nil {
		record.Set("active", *f.Active)
	} else {
		record.Set("active", true)
	}

	if f.EstimatedResaleValue <= 0 {
		f.EstimatedResaleValue = services.EstimateResaleValue(f.PurchasePrice)
	}
	record.Set("purchase_price", f.PurchasePrice)
	record.Set("years_of_service", f.YearsOfService)
	record.Set("estimated_resale_value", f.EstimatedResaleValue)
	record.Set("daily_fuel_cost", f.DailyFuelCost)
	record.Set("maintenance_level", f.MaintenanceLevel)
	record.Set("custom_maintenance_cost", f.CustomMaintenanceCost)
	record.Set("annual_insurance_cost", f.AnnualInsuranceCost)

	pattern := services.UsagePattern(f.UsagePattern)
	if f.UsagePattern == "" {
		pattern = services.UsageModerate
	}
	if f.DaysPerYear <= 0 {
		f.DaysPerYear = pattern.DefaultDaysPerYear()
	}
	if f.HoursPerDay <= 0 {
		f.HoursPerDay = pattern.DefaultHoursPerDay()
	}
	record.Set("usage_pattern", string(pattern))
	record.Set("days_per_year", f.DaysPerYear)
	record.Set("hours_per_day", f.HoursPerDay)
}

// HandleEquipmentCreate creates an equipment record and computes its
// derived hourly cost and recommended rate.
func HandleEquipmentCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var form equipmentForm
		if err := e.BindBody(&form); err != nil {
			return apiError(e, http.StatusBadRequest, "Invalid request body")
		}
		if errs := form.validate(); len(errs) > 0 {
			return e.JSON(http.StatusBadRequest, map[string]any{"errors": errs})
		}

		col, err := app.FindCollectionByNameOrId("equipment")
		if err != nil {
			log.Printf("equipment_create: could not find equipment collection: %v", err)
			return apiError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(col)
		setEquipmentFields(record, form)

		if err := services.ApplyEquipmentDerived(record); err != nil {
			log.Printf("equipment_create: invalid cost inputs: %v", err)
			return apiError(e, http.StatusBadRequest, "Invalid cost inputs: "+err.Error())
		}
		if err := app.Save(record); err != nil {
			log.Printf("equipment_create: could not save equipment: %v", err)
			return apiError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		return e.JSON(http.StatusCreated, record)
	}
}

// HandleEquipmentEdit updates an equipment record and recomputes its
// derived cost values.
func HandleEquipmentEdit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return apiError(e, http.StatusBadRequest, "Missing equipment ID")
		}

		record, err := app.FindRecordById("equipment", id)
		if err != nil {
			log.Printf("equipment_edit: could not find equipment %s: %v", id, err)
			return apiError(e, http.StatusNotFound, "Equipment not found")
		}

		var form equipmentForm
		if err := e.BindBody(&form); err != nil {
			return apiError(e, http.StatusBadRequest, "Invalid request body")
		}
		if errs := form.validate(); len(errs) > 0 {
			return e.JSON(http.StatusBadRequest, map[string]any{"errors": errs})
		}

		setEquipmentFields(record, form)

		if err := services.ApplyEquipmentDerived(record); err != nil {
			log.Printf("equipment_edit: invalid cost inputs: %v", err)
			return apiError(e, http.StatusBadRequest, "Invalid cost inputs: "+err.Error())
		}
		if err := app.Save(record); err != nil {
			log.Printf("equipment_edit: could not save equipment %s: %v", id, err)
			return apiError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		return e.JSON(http.StatusOK, record)
	}
}
