package services

// Placeholder hourly rates used when loadout members have not been
// resolved to employee/equipment records yet. Business constants, kept
// named so they can move into configuration if pricing policy changes.
const (
	PlaceholderEmployeeRate  = 45.0
	PlaceholderEquipmentRate = 85.0
)

// Fixed hour counts for the revenue projection rows.
const (
	dayHours   = 8
	weekHours  = 40
	monthHours = 160
)

// LoadoutPricing is a loadout's pricing policy: a markup multiplier, or a
// flat custom rate that overrides it.
type LoadoutPricing struct {
	MarkupMultiplier   float64 `json:"markup_multiplier"`
	CustomRateOverride float64 `json:"custom_rate_override,omitempty"`
}

// HasCustomPricing reports whether a custom rate override is in effect.
func (p LoadoutPricing) HasCustomPricing() bool {
	return p.CustomRateOverride > 0
}

// LoadoutCost is the result of a crew cost calculation. Mock and resolved
// calculations produce the same shape so callers can swap modes
// transparently.
type LoadoutCost struct {
	TotalEmployeeCost  float64 `json:"total_employee_cost"`
	TotalEquipmentCost float64 `json:"total_equipment_cost"`
	TotalOperatingCost float64 `json:"total_operating_cost"`
	BillingRate        float64 `json:"billing_rate"`
	ProfitMargin       float64 `json:"profit_margin"`
	DailyRevenue       float64 `json:"daily_revenue"`
	WeeklyRevenue      float64 `json:"weekly_revenue"`
	MonthlyRevenue     float64 `json:"monthly_revenue"`
}

// HourlyProfit is the spread between billing rate and operating cost.
func (lc LoadoutCost) HourlyProfit() float64 {
	return lc.BillingRate - lc.TotalOperatingCost
}

// CostEfficiencyRatio is billing rate over operating cost.
func (lc LoadoutCost) CostEfficiencyRatio() float64 {
	if lc.TotalOperatingCost <= 0 {
		return 0
	}
	return lc.BillingRate / lc.TotalOperatingCost
}

// CalcLoadoutCost prices a crew from per-member hourly costs. Pass the
// actual computed member costs for a resolved calculation; pass
// placeholder-derived costs (see CalcLoadoutCostMock) when member detail
// is unavailable.
func CalcLoadoutCost(employeeCosts, equipmentCosts []float64, pricing LoadoutPricing) LoadoutCost {
	var totalEmployee float64
	for _, c := range employeeCosts {
		totalEmployee += c
	}
	var totalEquipment float64
	for _, c := range equipmentCosts {
		totalEquipment += c
	}
	totalOperating := totalEmployee + totalEquipment

	billingRate := totalOperating * pricing.MarkupMultiplier
	if pricing.HasCustomPricing() {
		billingRate = pricing.CustomRateOverride
	}

	var profitMargin float64
	if billingRate > 0 && totalOperating > 0 {
		profitMargin = (billingRate - totalOperating) / billingRate * 100
	}

	return LoadoutCost{
		TotalEmployeeCost:  totalEmployee,
		TotalEquipmentCost: totalEquipment,
		TotalOperatingCost: totalOperating,
		BillingRate:        billingRate,
		ProfitMargin:       profitMargin,
		DailyRevenue:       billingRate * dayHours,
		WeeklyRevenue:      billingRate * weekHours,
		MonthlyRevenue:     billingRate * monthHours,
	}
}

// CalcLoadoutCostMock prices a crew by head count only, using flat
// placeholder rates per member. Used while a loadout references members
// that have not been resolved to records yet.
func CalcLoadoutCostMock(employeeCount, equipmentCount int, pricing LoadoutPricing) LoadoutCost {
	employeeCosts := make([]float64, employeeCount)
	for i := range employeeCosts {
		employeeCosts[i] = PlaceholderEmployeeRate
	}
	equipmentCosts := make([]float64, equipmentCount)
	for i := range equipmentCosts {
		equipmentCosts[i] = PlaceholderEquipmentRate
	}
	return CalcLoadoutCost(employeeCosts, equipmentCosts, pricing)
}
