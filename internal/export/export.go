// Package export writes practice progress to an Excel workbook.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/abhisek/morsely/internal/tracker"
)

// Sheet names in the exported workbook.
const (
	StatsSheet   = "Stats"
	HistorySheet = "History"
)

var (
	statsHeader   = []any{"Character", "Attempts", "Successes", "Accuracy"}
	historyHeader = []any{"Timestamp", "Character", "Success"}
)

// WriteWorkbook writes an xlsx workbook with a Stats sheet and a History
// sheet to w.
func WriteWorkbook(w io.Writer, stats []tracker.Stat, history []tracker.AttemptEvent) error {
	f := excelize.NewFile()
	defer f.Close()

	// NewFile starts with "Sheet1"; rename it rather than leave it empty.
	if err := f.SetSheetName("Sheet1", StatsSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(HistorySheet); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}
	pct, err := f.NewStyle(&excelize.Style{NumFmt: 2}) // 0.00
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}

	if err := writeRow(f, StatsSheet, 1, statsHeader); err != nil {
		return err
	}
	for i, s := range stats {
		row := []any{s.Character, s.Attempts, s.Successes, s.Accuracy}
		if err := writeRow(f, StatsSheet, i+2, row); err != nil {
			return err
		}
	}
	if len(stats) > 0 {
		end := fmt.Sprintf("D%d", len(stats)+1)
		if err := f.SetCellStyle(StatsSheet, "D2", end, pct); err != nil {
			return fmt.Errorf("style accuracy: %w", err)
		}
	}

	if err := writeRow(f, HistorySheet, 1, historyHeader); err != nil {
		return err
	}
	for i, e := range history {
		row := []any{e.Timestamp.UTC().Format(time.RFC3339), e.Character, e.Success}
		if err := writeRow(f, HistorySheet, i+2, row); err != nil {
			return err
		}
	}

	for sheet, last := range map[string]string{StatsSheet: "D1", HistorySheet: "C1"} {
		if err := f.SetCellStyle(sheet, "A1", last, bold); err != nil {
			return fmt.Errorf("style header: %w", err)
		}
	}
	if err := f.SetColWidth(HistorySheet, "A", "A", 22); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write %s row %d: %w", sheet, row, err)
	}
	return nil
}
