// Package excel reads microdata tables from Excel and CSV files and
// writes decomposition results back out as workbooks.
package excel

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"roikit/domain/sample"

	"github.com/xuri/excelize/v2"
)

// Reader loads microdata from an Excel or CSV file. It implements
// ports.MicrodataSource.
type Reader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

func NewReader(filePath string) *Reader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &Reader{filePath: filePath, fileType: fileType}
}

// LoadTable reads the file into a column-ordered table. The first row is
// the header; cells are kept as strings so the sample layer decides what
// counts as missing.
func (r *Reader) LoadTable(ctx context.Context) (sample.Table, error) {
	log.Printf("[Reader] Reading %s file: %s", r.fileType, r.filePath)

	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return sample.Table{}, fmt.Errorf("%s file not found: %s", strings.ToUpper(r.fileType), r.filePath)
	}
	if err := ctx.Err(); err != nil {
		return sample.Table{}, err
	}

	var (
		rows [][]string
		err  error
	)
	switch r.fileType {
	case "csv":
		rows, err = r.readCSVRows()
	case "xlsx":
		rows, err = r.readExcelRows()
	default:
		return sample.Table{}, fmt.Errorf("unsupported file type: %s", r.fileType)
	}
	if err != nil {
		return sample.Table{}, err
	}
	if len(rows) < 2 {
		return sample.Table{}, fmt.Errorf("%s file must have at least a header row and one data row", strings.ToUpper(r.fileType))
	}

	return r.buildTable(rows), nil
}

func (r *Reader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("failed to read first sheet: %w", err)
	}
	return rows, nil
}

func (r *Reader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	return rows, nil
}

func (r *Reader) buildTable(rows [][]string) sample.Table {
	headers := make([]string, len(rows[0]))
	for i, header := range rows[0] {
		headers[i] = strings.TrimSpace(header)
	}

	table := sample.Table{Columns: headers, Rows: make([]sample.Row, 0, len(rows)-1)}
	for _, raw := range rows[1:] {
		row := make(sample.Row, len(headers))
		for j, cell := range raw {
			if j < len(headers) {
				row[headers[j]] = strings.TrimSpace(cell)
			}
		}
		// short rows leave trailing columns absent; treated as missing downstream
		table.Rows = append(table.Rows, row)
	}

	log.Printf("[Reader] %s file processed (%d columns, %d rows)",
		strings.ToUpper(r.fileType), len(headers), len(table.Rows))
	return table
}
