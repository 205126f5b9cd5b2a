package services

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

func rosterTestData() RosterExportData {
	return RosterExportData{
		Title:         "Crew Roster",
		GeneratedDate: "2026-01-15",
		Rows: []RosterRow{
			{
				Name: "Alex Rivera", QualificationCode: "TRS3+L+E2",
				RoleName: "Tree Removal Specialist", Tier: 3, Leadership: "Team Leader",
				BaseHourlyRate: 25, TrueHourlyCost: 54, BillingRate: 135, ProfitMargin: 60,
				AnnualCost: 112320,
			},
			{
				Name: "Sam Osei", QualificationCode: "ATC2+ISA",
				RoleName: "Arborist Tree Care", Tier: 2, Leadership: "No Leadership Role",
				BaseHourlyRate: 22, TrueHourlyCost: 44.8, BillingRate: 112, ProfitMargin: 60,
				AnnualCost: 93184,
			},
		},
		TotalHourlyCost:  98.8,
		TotalBillingRate: 247,
	}
}

func TestGenerateRosterExcel_Basic(t *testing.T) {
	result, err := GenerateRosterExcel(rosterTestData())
	if err != nil {
		t.Fatalf("GenerateRosterExcel() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateRosterExcel() returned empty bytes")
	}

	// Verify it's a valid Excel file
	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	// Check sheet name
	sheets := f.GetSheetList()
	if len(sheets) == 0 || sheets[0] != "Crew Roster" {
		t.Errorf("expected sheet name 'Crew Roster', got %v", sheets)
	}

	// Check title cell
	title, _ := f.GetCellValue(sheets[0], "A1")
	if title != "Crew Roster" {
		t.Errorf("expected title 'Crew Roster', got %q", title)
	}

	// Row 5 = first data row
	name, _ := f.GetCellValue(sheets[0], "A5")
	if name != "Alex Rivera" {
		t.Errorf("first row name = %q, want 'Alex Rivera'", name)
	}
	code, _ := f.GetCellValue(sheets[0], "B5")
	if code != "TRS3+L+E2" {
		t.Errorf("first row qualification = %q, want 'TRS3+L+E2'", code)
	}
	rate, _ := f.GetCellValue(sheets[0], "H5")
	if rate != "$135.00" {
		t.Errorf("first row billing rate = %q, want '$135.00'", rate)
	}
}

func TestGenerateRosterExcel_EmptyRoster(t *testing.T) {
	data := RosterExportData{
		Title:         "Empty Roster",
		GeneratedDate: "2026-01-15",
	}

	result, err := GenerateRosterExcel(data)
	if err != nil {
		t.Fatalf("GenerateRosterExcel() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateRosterExcel() returned empty bytes")
	}
}

func TestGenerateRosterExcel_LongTitle(t *testing.T) {
	data := RosterExportData{
		Title:         "This is a very long roster title that exceeds thirty one characters",
		GeneratedDate: "2026-01-15",
	}

	result, err := GenerateRosterExcel(data)
	if err != nil {
		t.Fatalf("GenerateRosterExcel() error = %v", err)
	}

	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets[0]) > 31 {
		t.Errorf("sheet name exceeds 31 chars: %d", len(sheets[0]))
	}
}

func TestGenerateRosterExcel_EmptyTitle(t *testing.T) {
	data := RosterExportData{GeneratedDate: "2026-01-15"}

	result, err := GenerateRosterExcel(data)
	if err != nil {
		t.Fatalf("GenerateRosterExcel() error = %v", err)
	}

	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	if sheets := f.GetSheetList(); sheets[0] != "Roster" {
		t.Errorf("expected default sheet name 'Roster', got %q", sheets[0])
	}
}

func TestSanitizeExcelCell(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty string", "", ""},
		{"normal text", "Hello", "Hello"},
		{"starts with equals", "=SUM(A1:A10)", "'=SUM(A1:A10)"},
		{"starts with plus", "+E1+E2", "'+E1+E2"},
		{"starts with minus", "-100", "'-100"},
		{"starts with at", "@import", "'@import"},
		{"starts with tab", "\tdata", "'\tdata"},
		{"starts with pipe", "|command", "'|command"},
		{"starts with carriage return", "\rdata", "'\rdata"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizeExcelCell(tt.input)
			if got != tt.want {
				t.Errorf("sanitizeExcelCell(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestThinBorders(t *testing.T) {
	borders := thinBorders()
	if len(borders) != 4 {
		t.Errorf("thinBorders() returned %d borders, want 4", len(borders))
	}

	sides := map[string]bool{"left": false, "top": false, "bottom": false, "right": false}
	for _, b := range borders {
		sides[b.Type] = true
		if b.Style != 1 {
			t.Errorf("border %s style = %d, want 1 (thin)", b.Type, b.Style)
		}
	}
	for side, found := range sides {
		if !found {
			t.Errorf("missing border side: %s", side)
		}
	}
}
