package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateLoadoutPDF creates a crew rate sheet PDF using maroto/v2.
// It returns the raw PDF bytes or an error.
func GenerateLoadoutPDF(data *LoadoutExportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addLoadoutHeader(m, data)
	addLoadoutMembersTable(m, "CREW", data.Employees)
	addLoadoutMembersTable(m, "EQUIPMENT", data.Equipment)
	addLoadoutCostSummary(m, data)
	addLoadoutRevenueProjection(m, data)
	addLoadoutNotes(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate loadout PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addLoadoutHeader adds company name, "CREW RATE SHEET" title, loadout
// name, and generation date.
func addLoadoutHeader(m core.Maroto, data *LoadoutExportData) {
	// Row 1: Company name (left) + CREW RATE SHEET title (right)
	m.AddRows(
		row.New(10).Add(
			col.New(6).Add(
				text.New(data.CompanyName, props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
			col.New(6).Add(
				text.New("CREW RATE SHEET", props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Right,
					Color: &props.Color{Red: 33, Green: 37, Blue: 41},
				}),
			),
		),
	)

	// Row 2: Loadout name (left) + date (right)
	mode := "Resolved rates"
	if !data.Resolved {
		mode = "Estimated rates"
	}
	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("%s | %s", data.LoadoutName, mode), props.Text{
					Size:  8,
					Align: align.Left,
					Color: &props.Color{Red: 100, Green: 100, Blue: 100},
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Date: %s", data.GeneratedDate), props.Text{
					Size:  10,
					Style: fontstyle.Bold,
					Align: align.Right,
				}),
			),
		),
	)

	// Divider spacer
	m.AddRows(row.New(3))
}

// addLoadoutMembersTable adds a member table (crew or equipment) with a
// header row and alternating body rows.
func addLoadoutMembersTable(m core.Maroto, label string, rows []LoadoutMemberRow) {
	if len(rows) == 0 {
		return
	}

	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextRight := headerText
	headerTextRight.Align = align.Right
	headerCell := props.Cell{BackgroundColor: headerBg}

	// Table header
	m.AddRows(
		row.New(8).Add(
			col.New(4).Add(text.New(label, headerText)).WithStyle(&headerCell),
			col.New(5).Add(text.New("Detail", headerText)).WithStyle(&headerCell),
			col.New(3).Add(text.New("Cost/hr", headerTextRight)).WithStyle(&headerCell),
		),
	)

	// Table body with alternating backgrounds
	altBg := &props.Color{Red: 248, Green: 249, Blue: 250}

	for i, r := range rows {
		bodyText := props.Text{Size: 7, Align: align.Left}
		bodyTextRight := props.Text{Size: 7, Align: align.Right}

		var cellStyle *props.Cell
		if i%2 == 1 {
			cellStyle = &props.Cell{BackgroundColor: altBg}
		}

		colName := col.New(4).Add(text.New(r.Name, bodyText))
		colDetail := col.New(5).Add(text.New(r.Detail, bodyText))
		colCost := col.New(3).Add(text.New(FormatUSD(r.HourlyCost), bodyTextRight))

		if cellStyle != nil {
			colName = colName.WithStyle(cellStyle)
			colDetail = colDetail.WithStyle(cellStyle)
			colCost = colCost.WithStyle(cellStyle)
		}

		m.AddRows(row.New(7).Add(colName, colDetail, colCost))
	}

	m.AddRows(row.New(2))
}

// addLoadoutCostSummary adds right-aligned cost rows and the billing
// rate grand row.
func addLoadoutCostSummary(m core.Maroto, data *LoadoutExportData) {
	summaryBg := &props.Color{Red: 245, Green: 245, Blue: 245}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}

	labelStyle := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Right,
	}
	valueStyle := props.Text{
		Size:  8,
		Align: align.Right,
	}

	summaryRows := []struct {
		label string
		value float64
	}{
		{"Crew Cost / hr", data.Cost.TotalEmployeeCost},
		{"Equipment Cost / hr", data.Cost.TotalEquipmentCost},
		{"Total Operating Cost / hr", data.Cost.TotalOperatingCost},
	}
	for _, sr := range summaryRows {
		m.AddRows(
			row.New(7).Add(
				col.New(9).Add(text.New(sr.label, labelStyle)).WithStyle(summaryCell),
				col.New(3).Add(text.New(FormatUSD(sr.value), valueStyle)).WithStyle(summaryCell),
			),
		)
	}

	// Billing rate grand row
	grandBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	grandCell := &props.Cell{BackgroundColor: grandBg}
	grandLabelStyle := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	grandValueStyle := grandLabelStyle

	rateLabel := fmt.Sprintf("Billing Rate / hr (%sx markup)", formatQty(data.Pricing.MarkupMultiplier))
	if data.Pricing.HasCustomPricing() {
		rateLabel = "Billing Rate / hr (custom)"
	}

	m.AddRows(
		row.New(8).Add(
			col.New(9).Add(text.New(rateLabel, grandLabelStyle)).WithStyle(grandCell),
			col.New(3).Add(text.New(FormatUSD(data.Cost.BillingRate), grandValueStyle)).WithStyle(grandCell),
		),
	)

	// Margin note
	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Profit margin: %s", FormatPercent(data.Cost.ProfitMargin)), props.Text{
					Size:  8,
					Style: fontstyle.BoldItalic,
					Align: align.Right,
				}),
			),
		),
	)

	m.AddRows(row.New(3))
}

// addLoadoutRevenueProjection adds the daily/weekly/monthly revenue rows.
func addLoadoutRevenueProjection(m core.Maroto, data *LoadoutExportData) {
	sectionLabel := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 33, Green: 37, Blue: 41},
	}
	fieldLabel := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}
	fieldValue := props.Text{
		Size:  8,
		Align: align.Left,
	}

	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(text.New("REVENUE PROJECTION", sectionLabel)),
		),
	)

	projRows := []struct {
		label string
		value float64
	}{
		{fmt.Sprintf("Daily (%d hrs)", dayHours), data.Cost.DailyRevenue},
		{fmt.Sprintf("Weekly (%d hrs)", weekHours), data.Cost.WeeklyRevenue},
		{fmt.Sprintf("Monthly (%d hrs)", monthHours), data.Cost.MonthlyRevenue},
	}

	for _, pr := range projRows {
		m.AddRows(
			row.New(7).Add(
				col.New(3).Add(text.New(pr.label, fieldLabel)),
				col.New(9).Add(text.New(FormatUSD(pr.value), fieldValue)),
			),
		)
	}

	m.AddRows(row.New(3))
}

// addLoadoutNotes adds the notes section if non-empty.
func addLoadoutNotes(m core.Maroto, data *LoadoutExportData) {
	if data.Notes == "" {
		return
	}

	sectionLabel := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}

	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(text.New("NOTES", sectionLabel)),
		),
	)
	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(text.New(data.Notes, props.Text{
				Size:  8,
				Align: align.Left,
			})),
		),
	)

	m.AddRows(row.New(3))
}
