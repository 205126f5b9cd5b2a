package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"fieldops/services"
)

// buildRosterExportData assembles the full-roster cost report from the
// active employee records.
func buildRosterExportData(app *pocketbase.PocketBase) (services.RosterExportData, error) {
	records, err := app.FindRecordsByFilter("employees", "active = true", "name", 0, 0, map[string]any{})
	if err != nil {
		return services.RosterExportData{}, fmt.Errorf("could not query employees: %w", err)
	}

	var rows []services.RosterRow
	var totalHourly, totalBilling float64

	for _, r := range records {
		attrs, err := services.AttributesFromRecord(r)
		if err != nil {
			log.Printf("roster_export: skipping employee %s: %v", r.Id, err)
			continue
		}
		cost := services.CalcLaborCost(attrs, services.CompensationFromRecord(r))

		rows = append(rows, services.RosterRow{
			Name:              r.GetString("name"),
			QualificationCode: services.BuildQualificationCode(attrs),
			RoleName:          attrs.Role.Name(),
			Tier:              attrs.Tier,
			Leadership:        attrs.Leadership.Name(),
			BaseHourlyRate:    r.GetFloat("base_hourly_rate"),
			TrueHourlyCost:    cost.TrueHourlyCost,
			BillingRate:       cost.BillingRate,
			ProfitMargin:      cost.ProfitMargin,
			AnnualCost:        cost.AnnualCost(),
		})
		totalHourly += cost.TrueHourlyCost
		totalBilling += cost.BillingRate
	}

	return services.RosterExportData{
		Title:            companyName + " Crew Roster",
		GeneratedDate:    time.Now().Format("02 Jan 2006"),
		Rows:             rows,
		TotalHourlyCost:  totalHourly,
		TotalBillingRate: totalBilling,
	}, nil
}

// HandleRosterExportExcel returns a handler that generates and downloads
// the roster cost report as an Excel workbook.
func HandleRosterExportExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, err := buildRosterExportData(app)
		if err != nil {
			log.Printf("roster_export: %v", err)
			return apiError(e, http.StatusInternalServerError, "Failed to build roster data")
		}

		xlsxBytes, err := services.GenerateRosterExcel(data)
		if err != nil {
			log.Printf("roster_export: failed to generate: %v", err)
			return apiError(e, http.StatusInternalServerError, "Failed to generate Excel file")
		}

		filename := fmt.Sprintf("Roster_%d.xlsx", time.Now().Year())

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}
