package services

import "fmt"

// EquipmentMarkup matches the labor billing convention so both rate
// recommendations read consistently in the client.
const EquipmentMarkup = 2.5

// DefaultResalePercentage is the share of purchase price used to pre-fill
// the estimated resale value on forms.
const DefaultResalePercentage = 0.2

// MaintenanceLevel tags how intensively a machine is serviced. The annual
// maintenance budget is the level's percentage of purchase price unless a
// custom cost overrides it.
type MaintenanceLevel string

const (
	MaintenanceBasic      MaintenanceLevel = "basic"
	MaintenancePreventive MaintenanceLevel = "preventive"
	MaintenanceStandard   MaintenanceLevel = "standard"
	MaintenanceIntensive  MaintenanceLevel = "intensive"
	MaintenanceExtreme    MaintenanceLevel = "extreme"
)

var AllMaintenanceLevels = []MaintenanceLevel{
	MaintenanceBasic, MaintenancePreventive, MaintenanceStandard,
	MaintenanceIntensive, MaintenanceExtreme,
}

var maintenancePercentages = map[MaintenanceLevel]float64{
	MaintenanceBasic:      0.02,
	MaintenancePreventive: 0.04,
	MaintenanceStandard:   0.06,
	MaintenanceIntensive:  0.08,
	MaintenanceExtreme:    0.12,
}

func (m MaintenanceLevel) Valid() bool {
	_, ok := maintenancePercentages[m]
	return ok
}

// Percentage returns the level's annual maintenance cost as a fraction of
// purchase price.
func (m MaintenanceLevel) Percentage() float64 {
	return maintenancePercentages[m]
}

// UsagePattern tags how hard a machine is expected to run. Patterns carry
// form pre-fill defaults; the calculation itself only uses the concrete
// days and hours.
type UsagePattern string

const (
	UsageLight    UsagePattern = "light"
	UsageModerate UsagePattern = "moderate"
	UsageHeavy    UsagePattern = "heavy"
	UsageCustom   UsagePattern = "custom"
)

var AllUsagePatterns = []UsagePattern{UsageLight, UsageModerate, UsageHeavy, UsageCustom}

var usagePatternDefaults = map[UsagePattern]struct {
	HoursPerDay float64
	DaysPerYear int
}{
	UsageLight:    {3.0, 150},
	UsageModerate: {6.0, 200},
	UsageHeavy:    {10.0, 250},
	UsageCustom:   {6.0, 200},
}

// DefaultHoursPerDay returns the pattern's form pre-fill hours.
func (u UsagePattern) DefaultHoursPerDay() float64 {
	return usagePatternDefaults[u].HoursPerDay
}

// DefaultDaysPerYear returns the pattern's form pre-fill days.
func (u UsagePattern) DefaultDaysPerYear() int {
	return usagePatternDefaults[u].DaysPerYear
}

// UsageProfile describes the planned annual utilization of a machine.
type UsageProfile struct {
	DaysPerYear int          `json:"days_per_year"`
	HoursPerDay float64      `json:"hours_per_day"`
	Pattern     UsagePattern `json:"pattern"`
}

// AnnualHours derives the yearly operating hours.
func (u UsageProfile) AnnualHours() float64 {
	return float64(u.DaysPerYear) * u.HoursPerDay
}

// EquipmentFinancial holds the financial inputs for an equipment cost
// calculation.
type EquipmentFinancial struct {
	PurchasePrice         float64          `json:"purchase_price"`
	YearsOfService        int              `json:"years_of_service"`
	EstimatedResaleValue  float64          `json:"estimated_resale_value"`
	DailyFuelCost         float64          `json:"daily_fuel_cost"`
	MaintenanceLevel      MaintenanceLevel `json:"maintenance_level"`
	CustomMaintenanceCost float64          `json:"custom_maintenance_cost,omitempty"`
	AnnualInsuranceCost   float64          `json:"annual_insurance_cost"`
}

// AnnualMaintenance is the maintenance budget: the custom cost when set
// above zero, otherwise the maintenance level's percentage of purchase
// price.
func (f EquipmentFinancial) AnnualMaintenance() float64 {
	if f.CustomMaintenanceCost > 0 {
		return f.CustomMaintenanceCost
	}
	return f.PurchasePrice * f.MaintenanceLevel.Percentage()
}

// EquipmentCost is the itemized result of an equipment cost calculation.
type EquipmentCost struct {
	AnnualHours        float64 `json:"annual_hours"`
	AnnualDepreciation float64 `json:"annual_depreciation"`
	AnnualFuel         float64 `json:"annual_fuel"`
	AnnualMaintenance  float64 `json:"annual_maintenance"`
	TotalAnnualCost    float64 `json:"total_annual_cost"`
	HourlyCost         float64 `json:"hourly_cost"`
	RecommendedRate    float64 `json:"recommended_rate"`
}

// MonthlyOperatingCost spreads the annual cost over twelve months.
func (ec EquipmentCost) MonthlyOperatingCost() float64 {
	return ec.TotalAnnualCost / 12
}

// DailyOperatingCost assumes an 8-hour workday.
func (ec EquipmentCost) DailyOperatingCost() float64 {
	return ec.HourlyCost * 8
}

// ProfitMargin is the margin at the recommended rate, as a percentage.
func (ec EquipmentCost) ProfitMargin() float64 {
	if ec.RecommendedRate <= 0 {
		return 0
	}
	return (ec.RecommendedRate - ec.HourlyCost) / ec.RecommendedRate * 100
}

// CalcEquipmentCost derives the hourly operating cost and recommended
// billing rate for a machine. Zero service years or zero annual hours are
// contract violations by the caller; they are rejected with an explicit
// error rather than dividing by zero.
func CalcEquipmentCost(usage UsageProfile, financial EquipmentFinancial) (EquipmentCost, error) {
	if financial.YearsOfService < 1 {
		return EquipmentCost{}, fmt.Errorf("years of service must be >= 1, got %d", financial.YearsOfService)
	}
	annualHours := usage.AnnualHours()
	if annualHours <= 0 {
		return EquipmentCost{}, fmt.Errorf("annual hours must be > 0, got %v", annualHours)
	}

	annualDepreciation := (financial.PurchasePrice - financial.EstimatedResaleValue) / float64(financial.YearsOfService)
	if annualDepreciation < 0 {
		annualDepreciation = 0
	}
	annualFuel := financial.DailyFuelCost * float64(usage.DaysPerYear)
	annualMaintenance := financial.AnnualMaintenance()
	totalAnnualCost := annualDepreciation + annualFuel + annualMaintenance + financial.AnnualInsuranceCost
	hourlyCost := totalAnnualCost / annualHours

	return EquipmentCost{
		AnnualHours:        annualHours,
		AnnualDepreciation: annualDepreciation,
		AnnualFuel:         annualFuel,
		AnnualMaintenance:  annualMaintenance,
		TotalAnnualCost:    totalAnnualCost,
		HourlyCost:         hourlyCost,
		RecommendedRate:    hourlyCost * EquipmentMarkup,
	}, nil
}

// EstimateResaleValue pre-fills the resale field from purchase price
// alone. Both the add-equipment form and the calculation preview call
// this, so the two paths always agree.
func EstimateResaleValue(purchasePrice float64) float64 {
	return purchasePrice * DefaultResalePercentage
}
