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

type timeEntryForm struct {
	Employee     string `json:"employee"`
	ActivityName string `json:"activity_name"`
	StartedAt    string `json:"started_at"`
	EndedAt      string `json:"ended_at"`
	Location     string `json:"location"`
	Equipment    string `json:"equipment"`
	Notes        string `json:"notes"`
}

// HandleTimeEntryCreate logs time against an activity. The activity must
// be in the employee's eligible catalog; category, billable flag and the
// location/equipment requirements come from the catalog entry rather
// than the client.
func HandleTimeEntryCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var form timeEntryForm
		if err := e.BindBody(&form); err != nil {
			return apiError(e, http.StatusBadRequest, "Invalid request body")
		}
		if form.Employee == "" {
			return apiError(e, http.StatusBadRequest, "Employee is required")
		}
		if form.ActivityName == "" {
			return apiError(e, http.StatusBadRequest, "Activity name is required")
		}
		if form.StartedAt == "" {
			return apiError(e, http.StatusBadRequest, "Start time is required")
		}

		employee, err := app.FindRecordById("employees", form.Employee)
		if err != nil {
			log.Printf("time_entry_create: could not find employee %s: %v", form.Employee, err)
			return apiError(e, http.StatusNotFound, "Employee not found")
		}

		attrs, err := services.AttributesFromRecord(employee)
		if err != nil {
			log.Printf("time_entry_create: bad stored attributes on %s: %v", form.Employee, err)
			return apiError(e, http.StatusInternalServerError, "Stored employee data is invalid")
		}

		var activity *services.Activity
		for _, a := range services.EligibleActivities(attrs) {
			if a.Name == form.ActivityName {
				activity = &a
				break
			}
		}
		if activity == nil {
			return apiError(e, http.StatusConflict,
				"Employee is not qualified to log time against "+form.ActivityName)
		}

		if activity.RequiresLocation && strings.TrimSpace(form.Location) == "" {
			return apiError(e, http.StatusBadRequest, "This activity requires a location")
		}
		if activity.RequiresEquipment && form.Equipment == "" {
			return apiError(e, http.StatusBadRequest, "This activity requires equipment")
		}
		if form.Equipment != "" {
			if _, err := app.FindRecordById("equipment", form.Equipment); err != nil {
				return apiError(e, http.StatusBadRequest, "Unknown equipment")
			}
		}

		startedAt, err := time.Parse(time.RFC3339, form.StartedAt)
		if err != nil {
			return apiError(e, http.StatusBadRequest, "Invalid start time")
		}

		var hours float64
		if form.EndedAt != "" {
			endedAt, err := time.Parse(time.RFC3339, form.EndedAt)
			if err != nil {
				return apiError(e, http.StatusBadRequest, "Invalid end time")
			}
			if !endedAt.After(startedAt) {
				return apiError(e, http.StatusBadRequest, "End time must be after start time")
			}
			hours = endedAt.Sub(startedAt).Hours()
		}

		col, err := app.FindCollectionByNameOrId("time_entries")
		if err != nil {
			log.Printf("time_entry_create: could not find time_entries collection: %v", err)
			return apiError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(col)
		record.Set("employee", form.Employee)
		record.Set("activity_name", activity.Name)
		record.Set("activity_category", string(activity.Category))
		record.Set("billable", activity.Billable)
		record.Set("started_at", form.StartedAt)
		record.Set("ended_at", form.EndedAt)
		record.Set("hours", hours)
		record.Set("location", strings.TrimSpace(form.Location))
		record.Set("equipment", form.Equipment)
		record.Set("notes", strings.TrimSpace(form.Notes))

		if err := app.Save(record); err != nil {
			log.Printf("time_entry_create: could not save time entry: %v", err)
			return apiError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		return e.JSON(http.StatusCreated, record)
	}
}

// HandleTimeEntryStop closes an open time entry and computes its hours.
func HandleTimeEntryStop(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return apiError(e, http.StatusBadRequest, "Missing time entry ID")
		}

		record, err := app.FindRecordById("time_entries", id)
		if err != nil {
			log.Printf("time_entry_stop: could not find time entry %s: %v", id, err)
			return apiError(e, http.StatusNotFound, "Time entry not found")
		}
		if !record.GetDateTime("ended_at").IsZero() {
			return apiError(e, http.StatusConflict, "Time entry is already closed")
		}

		startedAt := record.GetDateTime("started_at").Time()
		if startedAt.IsZero() {
			log.Printf("time_entry_stop: missing started_at on %s", id)
			return apiError(e, http.StatusInternalServerError, "Stored time entry is invalid")
		}

		endedAt := time.Now()
		if !endedAt.After(startedAt) {
			return apiError(e, http.StatusConflict, "Time entry starts in the future")
		}

		record.Set("ended_at", endedAt.Format(time.RFC3339))
		record.Set("hours", endedAt.Sub(startedAt).Hours())

		if err := app.Save(record); err != nil {
			log.Printf("time_entry_stop: could not save time entry %s: %v", id, err)
			return apiError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		return e.JSON(http.StatusOK, record)
	}
}
