package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateRosterExcel creates an Excel workbook from the given
// RosterExportData and returns the file contents as a byte slice.
func GenerateRosterExcel(data RosterExportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// Determine sheet name (max 31 chars).
	sheetName := data.Title
	if len(sheetName) > 31 {
		sheetName = sheetName[:31]
	}
	if sheetName == "" {
		sheetName = "Roster"
	}

	// Rename default sheet.
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	// Column references (A through I).
	columns := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I"}
	lastCol := columns[len(columns)-1] // "I"

	// Set column widths.
	widths := []float64{26, 28, 22, 6, 14, 16, 16, 10, 16}
	for i, col := range columns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	// ── Styles ──────────────────────────────────────────────────────────

	// Title style: bold, 16pt.
	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 16,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	// Subtitle style (date).
	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Size: 11,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}

	// Column header style: bold, white text, charcoal background, centered.
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Color: "#FFFFFF",
			Size:  11,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#333333"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	// Data row style: normal with borders.
	rowStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Size: 10,
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create row style: %w", err)
	}

	// Summary label style: bold, right-aligned.
	summaryLabelStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 11,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "right",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary label style: %w", err)
	}

	// Summary value style: bold.
	summaryValueStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 11,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary value style: %w", err)
	}

	// ── Header Rows (1-2) ───────────────────────────────────────────────

	// Row 1: Title merged across all columns.
	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", sanitizeExcelCell(data.Title))
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	// Row 2: Date.
	if err := f.MergeCell(sheetName, "A2", lastCol+"2"); err != nil {
		return nil, fmt.Errorf("merge date: %w", err)
	}
	f.SetCellValue(sheetName, "A2", "Generated: "+data.GeneratedDate)
	f.SetCellStyle(sheetName, "A2", lastCol+"2", subtitleStyle)

	// ── Row 4: Column Headers ───────────────────────────────────────────

	headers := []string{
		"Name", "Qualification", "Role", "Tier", "Leadership",
		"Base Rate", "True Cost/hr", "Bill Rate", "Annual Cost",
	}
	for i, h := range headers {
		cell := fmt.Sprintf("%s4", columns[i])
		f.SetCellValue(sheetName, cell, h)
	}
	f.SetCellStyle(sheetName, "A4", lastCol+"4", headerStyle)

	// ── Data Rows (starting row 5) ──────────────────────────────────────

	row := 5
	for _, r := range data.Rows {
		rowStr := fmt.Sprintf("%d", row)

		f.SetCellValue(sheetName, "A"+rowStr, sanitizeExcelCell(r.Name))
		f.SetCellValue(sheetName, "B"+rowStr, sanitizeExcelCell(r.QualificationCode))
		f.SetCellValue(sheetName, "C"+rowStr, sanitizeExcelCell(r.RoleName))
		f.SetCellValue(sheetName, "D"+rowStr, r.Tier)
		f.SetCellValue(sheetName, "E"+rowStr, sanitizeExcelCell(r.Leadership))
		f.SetCellValue(sheetName, "F"+rowStr, FormatUSD(r.BaseHourlyRate))
		f.SetCellValue(sheetName, "G"+rowStr, FormatUSD(r.TrueHourlyCost))
		f.SetCellValue(sheetName, "H"+rowStr, FormatUSD(r.BillingRate))
		f.SetCellValue(sheetName, "I"+rowStr, FormatUSD(r.AnnualCost))

		f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, rowStyle)

		row++
	}

	// ── Summary Rows ────────────────────────────────────────────────────

	// Skip a blank row.
	row++

	summaryRow := fmt.Sprintf("%d", row)
	f.SetCellValue(sheetName, "F"+summaryRow, "Total Hourly Cost:")
	f.SetCellStyle(sheetName, "F"+summaryRow, "F"+summaryRow, summaryLabelStyle)
	f.SetCellValue(sheetName, "G"+summaryRow, FormatUSD(data.TotalHourlyCost))
	f.SetCellStyle(sheetName, "G"+summaryRow, "G"+summaryRow, summaryValueStyle)
	row++

	summaryRow = fmt.Sprintf("%d", row)
	f.SetCellValue(sheetName, "F"+summaryRow, "Total Billing Rate:")
	f.SetCellStyle(sheetName, "F"+summaryRow, "F"+summaryRow, summaryLabelStyle)
	f.SetCellValue(sheetName, "H"+summaryRow, FormatUSD(data.TotalBillingRate))
	f.SetCellStyle(sheetName, "H"+summaryRow, "H"+summaryRow, summaryValueStyle)

	// ── Write to buffer ─────────────────────────────────────────────────

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas, which can be abused for code execution or data theft.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
