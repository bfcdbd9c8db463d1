package services

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"holidayapi/constants"
	"holidayapi/errors"

	"github.com/xuri/excelize/v2"
)

// Column order of every tabular source: code, country name, date, name.
const dateColumn = 2

// ReadRows parses one uploaded tabular file into its data rows, independent
// of source format. The first row is always a header and is skipped, every
// cell is trimmed, and rows that are entirely blank are dropped.
func ReadRows(fileName string, r io.Reader) ([][]string, error) {
	name := strings.ToLower(fileName)
	switch {
	case strings.HasSuffix(name, constants.ExtCSV):
		return readCSVRows(r)
	case strings.HasSuffix(name, constants.ExtXLSX):
		return readXLSXRows(r)
	default:
		return nil, errors.NewAppError(errors.ErrCodeUnsupportedFormat,
			"Unsupported file format. Only CSV and Excel files are allowed.", nil)
	}
}

func readCSVRows(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) <= 1 {
		return nil, nil
	}

	var rows [][]string
	for _, record := range records[1:] {
		row := trimRow(record)
		if isEmptyRow(row) {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func readXLSXRows(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// First sheet only.
	records, err := f.GetRows(f.GetSheetName(0), excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	if len(records) <= 1 {
		return nil, nil
	}

	var rows [][]string
	for _, record := range records[1:] {
		row := trimRow(record)
		if isEmptyRow(row) {
			continue
		}
		if len(row) > dateColumn {
			row[dateColumn] = normalizeExcelDate(row[dateColumn])
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// normalizeExcelDate converts a native date cell, which surfaces as an Excel
// serial number in raw mode, to the YYYY-MM-DD text form. Text cells pass
// through untouched.
func normalizeExcelDate(cell string) string {
	serial, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return cell
	}
	date, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return cell
	}
	return date.Format(constants.DateLayout)
}

func trimRow(record []string) []string {
	row := make([]string, len(record))
	for i, cell := range record {
		row[i] = strings.TrimSpace(cell)
	}
	return row
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
