package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"fieldops/services"
)

// employeeForm is the JSON payload for creating or editing an employee.
type employeeForm struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	HireDate string `json:"hire_date"`
	Active   *bool  `json:"active"`

	Role            string                   `json:"role"`
	Tier            int                      `json:"tier"`
	Leadership      string                   `json:"leadership"`
	EquipmentCerts  []string                 `json:"equipment_certs"`
	Driver          string                   `json:"driver"`
	Certifications  []string                 `json:"certifications"`
	CrossTraining   []services.CrossTraining `json:"cross_training"`
	Specializations []string                 `json:"specializations"`

	BaseHourlyRate     float64 `json:"base_hourly_rate"`
	OvertimeMultiplier float64 `json:"overtime_multiplier"`
	BenefitsRate       float64 `json:"benefits_rate"`
	WorkersCompRate    float64 `json:"workers_comp_rate"`
	PayrollTaxRate     float64 `json:"payroll_tax_rate"`
}

func (f *employeeForm) validate() map[string]string {
	errs := make(map[string]string)
	f.Name = strings.TrimSpace(f.Name)
	if f.Name == "" {
		errs["name"] = "Name is required"
	}
	if !services.Role(f.Role).Valid() {
		errs["role"] = "Unknown role"
	}
	if f.Tier < services.MinTier || f.Tier > services.MaxTier {
		errs["tier"] = "Tier must be between 1 and 5"
	}
	if f.BaseHourlyRate <= 0 {
		errs["base_hourly_rate"] = "Base hourly rate must be positive"
	}
	return errs
}

// setEmployeeFields sets all employee fields on a record from form data.
func setEmployeeFields(record *core.Record, f employeeForm) {
	record.Set("name", f.Name)
	record.Set("email", strings.TrimSpace(f.Email))
	record.Set("phone", strings.TrimSpace(f.Phone))
	record.Set("hire_date", f.HireDate)
	if f.Active != nil {
		record.Set("active", *f.Active)
	} else {
		record.Set("active", true)
	}

	record.Set("role", f.Role)
	record.Set("tier", f.Tier)
	if f.Leadership == "" {
		f.Leadership = string(services.LeadershipNone)
	}
	record.Set("leadership", f.Leadership)
	record.Set("equipment_certs", f.EquipmentCerts)
	record.Set("driver", f.Driver)
	record.Set("certifications", f.Certifications)
	record.Set("cross_training", f.CrossTraining)
	record.Set("specializations", f.Specializations)

	record.Set("base_hourly_rate", f.BaseHourlyRate)
	if f.OvertimeMultiplier <= 0 {
		f.OvertimeMultiplier = 1.5
	}
	record.Set("overtime_multiplier", f.OvertimeMultiplier)
	record.Set("benefits_rate", f.BenefitsRate)
	record.Set("workers_comp_rate", f.WorkersCompRate)
	record.Set("payroll_tax_rate", f.PayrollTaxRate)
}

// HandleEmployeeCreate creates an employee and computes its derived
// values. The saved record, including qualification code and rates, is
// returned so clients can display the result without a second fetch.
func HandleEmployeeCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var form employeeForm
		if err := e.BindBody(&form); err != nil {
			return apiError(e, http.StatusBadRequest, "Invalid request body")
		}
		if errs := form.validate(); len(errs) > 0 {
			return e.JSON(http.StatusBadRequest, map[string]any{"errors": errs})
		}

		col, err := app.FindCollectionByNameOrId("employees")
		if err != nil {
			log.Printf("employee_create: could not find employees collection: %v", err)
			return apiError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(col)
		setEmployeeFields(record, form)

		if err := services.ApplyEmployeeDerived(record); err != nil {
			log.Printf("employee_create: invalid attributes: %v", err)
			return apiError(e, http.StatusBadRequest, "Invalid qualification attributes: "+err.Error())
		}
		if err := app.Save(record); err != nil {
			log.Printf("employee_create: could not save employee: %v", err)
			return apiError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		return e.JSON(http.StatusCreated, record)
	}
}

// HandleEmployeeEdit updates an employee and recomputes its derived
// values from the new attributes.
func HandleEmployeeEdit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return apiError(e, http.StatusBadRequest, "Missing employee ID")
		}

		record, err := app.FindRecordById("employees", id)
		if err != nil {
			log.Printf("employee_edit: could not find employee %s: %v", id, err)
			return apiError(e, http.StatusNotFound, "Employee not found")
		}

		var form employeeForm
		if err := e.BindBody(&form); err != nil {
			return apiError(e, http.StatusBadRequest, "Invalid request body")
		}
		if errs := form.validate(); len(errs) > 0 {
			return e.JSON(http.StatusBadRequest, map[string]any{"errors": errs})
		}

		setEmployeeFields(record, form)

		if err := services.ApplyEmployeeDerived(record); err != nil {
			log.Printf("employee_edit: invalid attributes: %v", err)
			return apiError(e, http.StatusBadRequest, "Invalid qualification attributes: "+err.Error())
		}
		if err := app.Save(record); err != nil {
			log.Printf("employee_edit: could not save employee %s: %v", id, err)
			return apiError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		return e.JSON(http.StatusOK, record)
	}
}
