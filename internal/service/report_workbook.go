package service

import (
	"fmt"
	"time"

	"gradeyour401k/internal/domain"

	"github.com/xuri/excelize/v2"
)

const (
	summarySheet     = "Summary"
	holdingsSheet    = "Holdings"
	gradeSheet       = "Grade"
	recommendedSheet = "Recommended model"
)

type ReportInput struct {
	Submission  domain.GradeSubmission
	Recommended *domain.Snapshot
	Commentary  string
	GeneratedAt time.Time
}

func headerStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Font: &excelize.Font{
			Bold: true,
			Size: 11,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Pattern: 1,
			Color:   []string{"#cfe2f3"},
		},
	})
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

// writeTable writes a header row at row 1 and one row per entry below it.
func writeTable(f *excelize.File, sheet string, style int, headers []string, rows [][]interface{}) error {
	for i, h := range headers {
		name, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStr(sheet, name, h); err != nil {
			return err
		}
	}
	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return fmt.Errorf("failed to style %s header: %w", sheet, err)
	}

	for r, row := range rows {
		for c, v := range row {
			name, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, name, v); err != nil {
				return err
			}
		}
	}
	return nil
}

// BuildReportWorkbook renders a graded submission as an xlsx workbook.
func BuildReportWorkbook(in ReportInput) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	for _, sheet := range []string{summarySheet, holdingsSheet, gradeSheet} {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, fmt.Errorf("failed to create sheet %s: %w", sheet, err)
		}
	}
	if in.Recommended != nil {
		if _, err := f.NewSheet(recommendedSheet); err != nil {
			return nil, fmt.Errorf("failed to create sheet %s: %w", recommendedSheet, err)
		}
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to delete default sheet: %w", err)
	}

	style, err := headerStyle(f)
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	s := in.Submission
	provider := ""
	if s.Provider != nil {
		provider = s.Provider.DisplayName()
	}
	summary := [][]interface{}{
		{"Submission", s.ID.String()},
		{"Profile", string(s.Profile)},
		{"Provider", provider},
		{"Grade", s.Breakdown.Grade},
		{"Generated at", in.GeneratedAt.Format(time.RFC3339)},
	}
	if in.Commentary != "" {
		summary = append(summary, []interface{}{"Commentary", in.Commentary})
	}
	if err := writeTable(f, summarySheet, style, []string{"Field", "Value"}, summary); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(summarySheet, "A", "A", 16); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(summarySheet, "B", "B", 80); err != nil {
		return nil, err
	}

	holdings := [][]interface{}{}
	for _, h := range s.Holdings {
		label := ""
		if h.Label != nil {
			label = *h.Label
		}
		holdings = append(holdings, []interface{}{h.Symbol, label, h.Weight})
	}
	if err := writeTable(f, holdingsSheet, style, []string{"Symbol", "Name", "Weight (%)"}, holdings); err != nil {
		return nil, err
	}

	grade := [][]interface{}{{"base", s.Breakdown.Base}}
	for _, a := range s.Breakdown.Adjustments {
		grade = append(grade, []interface{}{a.Name, a.Delta})
	}
	grade = append(grade,
		[]interface{}{"raw", s.Breakdown.Raw},
		[]interface{}{"grade", s.Breakdown.Grade},
	)
	if err := writeTable(f, gradeSheet, style, []string{"Step", "Value"}, grade); err != nil {
		return nil, err
	}

	if in.Recommended != nil {
		lines := [][]interface{}{}
		for _, l := range in.Recommended.Lines {
			lines = append(lines, []interface{}{l.Rank, l.Symbol, string(l.Role), l.Weight * 100})
		}
		if err := writeTable(f, recommendedSheet, style, []string{"Rank", "Symbol", "Role", "Weight (%)"}, lines); err != nil {
			return nil, err
		}
		notesRow := len(lines) + 3
		if err := f.SetCellStr(recommendedSheet, cell("A", notesRow), "Notes"); err != nil {
			return nil, err
		}
		if err := f.SetCellStr(recommendedSheet, cell("B", notesRow), in.Recommended.Notes); err != nil {
			return nil, err
		}
		if err := f.MergeCell(recommendedSheet, cell("B", notesRow), cell("D", notesRow)); err != nil {
			return nil, err
		}
	}

	idx, err := f.GetSheetIndex(summarySheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	return buf.Bytes(), nil
}
