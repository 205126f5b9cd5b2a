package services

// LaborMarkup is the standard billing markup applied to fully-loaded
// labor cost.
const LaborMarkup = 2.5

// Compensation holds the financial inputs for a labor cost calculation.
// Benefits, workers comp, and payroll tax rates are carried for display
// and payroll export; the hourly cost formula is driven by the base rate
// and the attribute premiums.
type Compensation struct {
	BaseHourlyRate     float64 `json:"base_hourly_rate"`
	OvertimeMultiplier float64 `json:"overtime_multiplier"`
	BenefitsRate       float64 `json:"benefits_rate"`
	WorkersCompRate    float64 `json:"workers_comp_rate"`
	PayrollTaxRate     float64 `json:"payroll_tax_rate"`
}

// LaborCost is the itemized result of a labor cost calculation. It is a
// value object: produced fresh from one AttributeSet + one Compensation,
// never updated incrementally.
type LaborCost struct {
	BaseMultiplier       float64 `json:"base_multiplier"`
	BaseCost             float64 `json:"base_cost"`
	LeadershipPremium    float64 `json:"leadership_premium"`
	EquipmentPremium     float64 `json:"equipment_premium"`
	DriverPremium        float64 `json:"driver_premium"`
	CertPremium          float64 `json:"cert_premium"`
	CrossTrainingPremium float64 `json:"cross_training_premium"`
	TrueHourlyCost       float64 `json:"true_hourly_cost"`
	BillingRate          float64 `json:"billing_rate"`
	ProfitMargin         float64 `json:"profit_margin"`
}

// AnnualCost projects the fully-loaded cost over a 2080-hour year.
func (lc LaborCost) AnnualCost() float64 {
	return lc.TrueHourlyCost * 2080
}

// OvertimeCost is the time-and-a-half hourly cost.
func (lc LaborCost) OvertimeCost() float64 {
	return lc.TrueHourlyCost * 1.5
}

// CalcLaborCost derives the fully-loaded hourly cost and recommended
// billing rate for an employee. Every premium is itemized in the result
// for breakdown display. Missing optional attributes contribute zero;
// there is no error path.
func CalcLaborCost(attrs AttributeSet, comp Compensation) LaborCost {
	baseMultiplier := attrs.Role.BaseMultiplier() + TierMultiplier(attrs.Tier)
	baseCost := comp.BaseHourlyRate * baseMultiplier

	leadershipPremium := attrs.Leadership.Premium()

	var equipmentPremium float64
	for _, e := range attrs.EquipmentCerts {
		equipmentPremium += e.Premium()
	}

	var driverPremium float64
	if attrs.Driver != "" {
		driverPremium = attrs.Driver.Premium()
	}

	var certPremium float64
	for _, c := range attrs.Certifications {
		certPremium += c.Premium()
	}

	var crossTrainingPremium float64
	for _, ct := range attrs.CrossTraining {
		crossTrainingPremium += ct.Premium()
	}

	trueHourlyCost := baseCost + leadershipPremium + equipmentPremium +
		driverPremium + certPremium + crossTrainingPremium

	billingRate := trueHourlyCost * LaborMarkup

	var profitMargin float64
	if billingRate > 0 {
		profitMargin = (billingRate - trueHourlyCost) / billingRate * 100
	}

	return LaborCost{
		BaseMultiplier:       baseMultiplier,
		BaseCost:             baseCost,
		LeadershipPremium:    leadershipPremium,
		EquipmentPremium:     equipmentPremium,
		DriverPremium:        driverPremium,
		CertPremium:          certPremium,
		CrossTrainingPremium: crossTrainingPremium,
		TrueHourlyCost:       trueHourlyCost,
		BillingRate:          billingRate,
		ProfitMargin:         profitMargin,
	}
}
