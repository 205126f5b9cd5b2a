package services

// RosterRow represents a single employee row in the roster export.
type RosterRow struct {
	Name              string
	QualificationCode string
	RoleName          string
	Tier              int
	Leadership        string
	BaseHourlyRate    float64
	TrueHourlyCost    float64
	BillingRate       float64
	ProfitMargin      float64
	AnnualCost        float64
}

// RosterExportData holds all data needed for the roster export.
type RosterExportData struct {
	Title            string
	GeneratedDate    string
	Rows             []RosterRow
	TotalHourlyCost  float64
	TotalBillingRate float64
}
