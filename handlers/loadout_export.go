package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"fieldops/collections"
	"fieldops/services"
)

const companyName = "Ridgeline Land Services"

// buildLoadoutExportData fetches a loadout and its members, returning
// the rate sheet data for PDF generation. Members that no longer
// resolve appear as placeholder rows at the standard rates.
func buildLoadoutExportData(app *pocketbase.PocketBase, loadoutID string) (*services.LoadoutExportData, error) {
	loadout, err := app.FindRecordById("loadouts", loadoutID)
	if err != nil {
		return nil, fmt.Errorf("loadout not found: %w", err)
	}

	resolved := true

	var employees []services.LoadoutMemberRow
	for _, id := range loadout.GetStringSlice("employees") {
		member, err := app.FindRecordById("employees", id)
		if err != nil {
			resolved = false
			employees = append(employees, services.LoadoutMemberRow{
				Name:       "Unassigned crew member",
				Detail:     "standard rate",
				HourlyCost: services.PlaceholderEmployeeRate,
			})
			continue
		}
		employees = append(employees, services.LoadoutMemberRow{
			Name:       member.GetString("name"),
			Detail:     member.GetString("qualification_code"),
			HourlyCost: member.GetFloat("true_hourly_cost"),
		})
	}

	var equipment []services.LoadoutMemberRow
	for _, id := range loadout.GetStringSlice("equipment") {
		machine, err := app.FindRecordById("equipment", id)
		if err != nil {
			resolved = false
			equipment = append(equipment, services.LoadoutMemberRow{
				Name:       "Unassigned machine",
				Detail:     "standard rate",
				HourlyCost: services.PlaceholderEquipmentRate,
			})
			continue
		}
		equipment = append(equipment, services.LoadoutMemberRow{
			Name:       machine.GetString("name"),
			Detail:     machine.GetString("make_model"),
			HourlyCost: machine.GetFloat("hourly_cost"),
		})
	}

	return &services.LoadoutExportData{
		CompanyName:   companyName,
		LoadoutName:   loadout.GetString("name"),
		GeneratedDate: time.Now().Format("02 Jan 2006"),
		Resolved:      resolved,
		Employees:     employees,
		Equipment:     equipment,
		Cost:          collections.ResolveLoadoutCost(app, loadout),
		Pricing:       services.PricingFromRecord(loadout),
		Notes:         loadout.GetString("notes"),
	}, nil
}

// HandleLoadoutExportPDF returns a handler that generates and downloads
// a crew rate sheet PDF for a loadout.
func HandleLoadoutExportPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return apiError(e, http.StatusBadRequest, "Missing loadout ID")
		}

		data, err := buildLoadoutExportData(app, id)
		if err != nil {
			log.Printf("loadout_export: failed to build data: %v", err)
			return apiError(e, http.StatusNotFound, "Loadout not found")
		}

		pdfBytes, err := services.GenerateLoadoutPDF(data)
		if err != nil {
			log.Printf("loadout_export: failed to generate PDF: %v", err)
			return apiError(e, http.StatusInternalServerError, "Failed to generate PDF")
		}

		filename := fmt.Sprintf("RateSheet_%s.pdf", sanitizeFilename(data.LoadoutName))

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}
