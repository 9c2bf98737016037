package xlsxexport

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

type sheet struct {
	name    string
	headers []string
	rows    [][]any
	totals  map[int]float64 // column index -> total; empty means no totals row
	widths  []float64
}

// write renders sheets into one workbook; the first sheet replaces the
// default "Sheet1".
func write(w io.Writer, sheets []sheet) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	totalStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("total style: %w", err)
	}

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), s.name); err != nil {
				return fmt.Errorf("rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(s.name); err != nil {
			return fmt.Errorf("new sheet %q: %w", s.name, err)
		}
		if err := s.render(f, headerStyle, totalStyle); err != nil {
			return fmt.Errorf("sheet %q: %w", s.name, err)
		}
	}
	f.SetActiveSheet(0)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func (s sheet) render(f *excelize.File, headerStyle, totalStyle int) error {
	header := make([]any, len(s.headers))
	for i, h := range s.headers {
		header[i] = h
	}
	if err := f.SetSheetRow(s.name, "A1", &header); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(s.headers), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(s.name, "A1", last, headerStyle); err != nil {
		return err
	}

	for i, row := range s.rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(s.name, cell, &row); err != nil {
			return err
		}
	}

	if len(s.totals) > 0 {
		r := len(s.rows) + 2
		if err := f.SetCellValue(s.name, fmt.Sprintf("A%d", r), "Total"); err != nil {
			return err
		}
		for col, v := range s.totals {
			cell, err := excelize.CoordinatesToCellName(col+1, r)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(s.name, cell, v); err != nil {
				return err
			}
		}
		end, _ := excelize.CoordinatesToCellName(len(s.headers), r)
		if err := f.SetCellStyle(s.name, fmt.Sprintf("A%d", r), end, totalStyle); err != nil {
			return err
		}
	}

	for i, wd := range s.widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(s.name, col, col, wd); err != nil {
			return err
		}
	}
	return nil
}
