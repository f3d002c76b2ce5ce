package excel

import (
	"fmt"
	"log"

	"roikit/domain/inequality"
	"roikit/domain/sample"

	"github.com/xuri/excelize/v2"
)

// Writer saves decomposition results as an Excel workbook with one sheet
// of index decompositions and one sheet of per-group summaries.
type Writer struct {
	filePath string
}

func NewWriter(filePath string) *Writer {
	return &Writer{filePath: filePath}
}

func (w *Writer) Write(decomps []inequality.Decomposition, grouped *sample.Grouped) error {
	f := excelize.NewFile()
	defer f.Close()

	const decompSheet = "Decompositions"
	f.SetSheetName(f.GetSheetName(0), decompSheet)

	headers := []string{"index", "within", "between", "overall", "ratio", "residual"}
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(decompSheet, cell, h)
	}
	for i, d := range decomps {
		row := i + 2
		values := []interface{}{string(d.Index), d.Within, d.Between, d.Overall, d.Ratio, d.Residual}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(decompSheet, cell, v)
		}
	}

	if grouped != nil {
		if err := w.writeGroupSheet(f, grouped); err != nil {
			return err
		}
	}

	if err := f.SaveAs(w.filePath); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	log.Printf("[Writer] Results workbook saved: %s (%d decompositions)", w.filePath, len(decomps))
	return nil
}

func (w *Writer) writeGroupSheet(f *excelize.File, grouped *sample.Grouped) error {
	const groupSheet = "Groups"
	if _, err := f.NewSheet(groupSheet); err != nil {
		return fmt.Errorf("failed to add group sheet: %w", err)
	}

	headers := []string{"group", "count", "observed", "mean", "sum"}
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(groupSheet, cell, h)
	}

	observed := grouped.Observed()
	for i, name := range grouped.Groups() {
		row := i + 2
		values := []interface{}{
			name,
			len(grouped.Values()[i]),
			len(observed[i]),
			sample.Mean(observed[i]),
			sample.Sum(observed[i]),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(groupSheet, cell, v)
		}
	}
	return nil
}
