package services

// LoadoutMemberRow is one crew member (employee or machine) on the rate
// sheet.
type LoadoutMemberRow struct {
	Name       string
	Detail     string // qualification code or equipment summary
	HourlyCost float64
}

// LoadoutExportData holds all data needed for the crew rate sheet PDF.
type LoadoutExportData struct {
	CompanyName   string
	LoadoutName   string
	GeneratedDate string
	Resolved      bool // false when placeholder rates were used

	Employees []LoadoutMemberRow
	Equipment []LoadoutMemberRow

	Cost    LoadoutCost
	Pricing LoadoutPricing
	Notes   string
}
