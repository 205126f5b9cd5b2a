package services

import (
	"fmt"

	"github.com/pocketbase/pocketbase/core"
)

// Mapping between PocketBase records and the engine input/output structs.
// Handlers, seeding and the startup recalculation all go through these so
// the stored derived values can never be produced two different ways.

// AttributesFromRecord reads an employee record's qualification fields.
func AttributesFromRecord(r *core.Record) (AttributeSet, error) {
	attrs := AttributeSet{
		Role:       Role(r.GetString("role")),
		Tier:       r.GetInt("tier"),
		Leadership: LeadershipLevel(r.GetString("leadership")),
		Driver:     DriverClass(r.GetString("driver")),
	}
	if attrs.Leadership == "" {
		attrs.Leadership = LeadershipNone
	}

	for _, v := range r.GetStringSlice("equipment_certs") {
		attrs.EquipmentCerts = append(attrs.EquipmentCerts, EquipmentLevel(v))
	}
	for _, v := range r.GetStringSlice("certifications") {
		attrs.Certifications = append(attrs.Certifications, Certification(v))
	}

	if raw := r.GetString("cross_training"); raw != "" && raw != "null" {
		if err := r.UnmarshalJSONField("cross_training", &attrs.CrossTraining); err != nil {
			return AttributeSet{}, fmt.Errorf("employee %s: bad cross_training: %w", r.Id, err)
		}
	}
	if raw := r.GetString("specializations"); raw != "" && raw != "null" {
		if err := r.UnmarshalJSONField("specializations", &attrs.Specializations); err != nil {
			return AttributeSet{}, fmt.Errorf("employee %s: bad specializations: %w", r.Id, err)
		}
	}

	return attrs, nil
}

// CompensationFromRecord reads an employee record's compensation fields.
func CompensationFromRecord(r *core.Record) Compensation {
	return Compensation{
		BaseHourlyRate:     r.GetFloat("base_hourly_rate"),
		OvertimeMultiplier: r.GetFloat("overtime_multiplier"),
		BenefitsRate:       r.GetFloat("benefits_rate"),
		WorkersCompRate:    r.GetFloat("workers_comp_rate"),
		PayrollTaxRate:     r.GetFloat("payroll_tax_rate"),
	}
}

// ApplyEmployeeDerived recomputes and stores every derived employee
// value from the record's current attributes.
func ApplyEmployeeDerived(r *core.Record) error {
	attrs, err := AttributesFromRecord(r)
	if err != nil {
		return err
	}
	if err := attrs.Validate(); err != nil {
		return err
	}

	cost := CalcLaborCost(attrs, CompensationFromRecord(r))
	r.Set("qualification_code", BuildQualificationCode(attrs))
	r.Set("true_hourly_cost", cost.TrueHourlyCost)
	r.Set("billing_rate", cost.BillingRate)
	r.Set("profit_margin", cost.ProfitMargin)
	return nil
}

// UsageFromRecord reads an equipment record's usage profile fields.
func UsageFromRecord(r *core.Record) UsageProfile {
	return UsageProfile{
		DaysPerYear: r.GetInt("days_per_year"),
		HoursPerDay: r.GetFloat("hours_per_day"),
		Pattern:     UsagePattern(r.GetString("usage_pattern")),
	}
}

// FinancialFromRecord reads an equipment record's financial input fields.
func FinancialFromRecord(r *core.Record) EquipmentFinancial {
	return EquipmentFinancial{
		PurchasePrice:         r.GetFloat("purchase_price"),
		YearsOfService:        r.GetInt("years_of_service"),
		EstimatedResaleValue:  r.GetFloat("estimated_resale_value"),
		DailyFuelCost:         r.GetFloat("daily_fuel_cost"),
		MaintenanceLevel:      MaintenanceLevel(r.GetString("maintenance_level")),
		CustomMaintenanceCost: r.GetFloat("custom_maintenance_cost"),
		AnnualInsuranceCost:   r.GetFloat("annual_insurance_cost"),
	}
}

// ApplyEquipmentDerived recomputes and stores the derived equipment cost
// values from the record's current inputs.
func ApplyEquipmentDerived(r *core.Record) error {
	usage := UsageFromRecord(r)
	financial := FinancialFromRecord(r)
	if !financial.MaintenanceLevel.Valid() {
		return fmt.Errorf("unknown maintenance level %q", financial.MaintenanceLevel)
	}

	cost, err := CalcEquipmentCost(usage, financial)
	if err != nil {
		return err
	}
	r.Set("hourly_cost", cost.HourlyCost)
	r.Set("recommended_rate", cost.RecommendedRate)
	return nil
}

// PricingFromRecord reads a loadout record's pricing policy fields.
func PricingFromRecord(r *core.Record) LoadoutPricing {
	return LoadoutPricing{
		MarkupMultiplier:   r.GetFloat("markup_multiplier"),
		CustomRateOverride: r.GetFloat("custom_rate_override"),
	}
}

// ApplyLoadoutDerived stores a computed loadout cost on the record.
func ApplyLoadoutDerived(r *core.Record, cost LoadoutCost) {
	r.Set("total_operating_cost", cost.TotalOperatingCost)
	r.Set("billing_rate", cost.BillingRate)
	r.Set("profit_margin", cost.ProfitMargin)
}
