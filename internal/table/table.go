// Package table provides loading and persistence of delimited tabular data.
//
// A Table is the raw boundary representation: an ordered header row plus
// ordered data rows of string cells. Parsing cells into numbers is the
// caller's concern, so the same Table can be inspected by validation before
// any numeric conversion happens.
package table

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "topsiscli/internal/errors"
)

// DefaultDelimiter is the field separator used when none is configured.
const DefaultDelimiter = ','

// Table represents a delimited tabular file held in memory.
// Row order is significant and preserved through load and write.
type Table struct {
	Header []string
	Rows   [][]string
}

// Columns returns the number of columns in the table header.
func (t *Table) Columns() int {
	return len(t.Header)
}

// AppendColumn adds a trailing column with the given header name.
// The number of values must match the number of rows.
func (t *Table) AppendColumn(name string, values []string) error {
	if len(values) != len(t.Rows) {
		return fmt.Errorf("append column %q: %d values for %d rows", name, len(values), len(t.Rows))
	}
	t.Header = append(t.Header, name)
	for i := range t.Rows {
		t.Rows[i] = append(t.Rows[i], values[i])
	}
	return nil
}

// Load reads a tabular file from path. Excel workbooks (.xlsx, .xlsm, .xls)
// are read from their first sheet; everything else is parsed as a delimited
// text file using delim. The first row becomes the header.
func Load(path string, delim rune) (*Table, error) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil, apperrors.NewMissingFileError(
			"the input file does not exist, please provide a valid file path", err).
			WithContext("path", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm", ".xls":
		return loadExcel(path)
	default:
		return loadDelimited(path, delim)
	}
}

// loadDelimited reads a CSV-style file with the given field separator.
func loadDelimited(path string, delim rune) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewMissingFileError(
			"the input file could not be opened", err).WithContext("path", path)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = delim

	records, err := reader.ReadAll()
	if err != nil {
		return nil, apperrors.NewParsingError("parse delimited file", err).
			WithContext("path", path)
	}
	if len(records) == 0 {
		return nil, apperrors.NewParsingError("file contains no header row", nil).
			WithContext("path", path)
	}

	return &Table{Header: records[0], Rows: records[1:]}, nil
}

// loadExcel reads the first sheet of an Excel workbook.
func loadExcel(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.NewParsingError("open workbook", err).
			WithContext("path", path)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.NewParsingError("workbook contains no sheets", nil).
			WithContext("path", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, apperrors.NewParsingError("read sheet rows", err).
			WithContext("path", path).
			WithContext("sheet", sheets[0])
	}
	if len(rows) == 0 {
		return nil, apperrors.NewParsingError("sheet contains no header row", nil).
			WithContext("path", path).
			WithContext("sheet", sheets[0])
	}

	// Excel rows may come back ragged when trailing cells are empty;
	// pad short rows to the header width so downstream indexing is uniform.
	// Rows wider than the header are malformed, same as a ragged CSV row.
	width := len(rows[0])
	data := make([][]string, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) > width {
			return nil, apperrors.NewParsingError("row has more cells than the header", nil).
				WithContext("path", path).
				WithContext("sheet", sheets[0]).
				WithContext("row", i+1).
				WithContext("cells", len(row)).
				WithContext("columns", width)
		}
		for len(row) < width {
			row = append(row, "")
		}
		data = append(data, row)
	}

	return &Table{Header: rows[0], Rows: data}, nil
}

// WriteCSV persists the table to path as a delimited text file.
// The parent directory is created if it does not exist.
func WriteCSV(t *Table, path string, delim rune) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return apperrors.NewStorageError("create output directory", err).
				WithContext("path", path)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return apperrors.NewStorageError("create output file", err).
			WithContext("path", path)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	writer.Comma = delim
	defer writer.Flush()

	if err := writer.Write(t.Header); err != nil {
		return apperrors.NewStorageError("write header", err).WithContext("path", path)
	}
	for i, row := range t.Rows {
		if err := writer.Write(row); err != nil {
			return apperrors.NewStorageError("write row", err).
				WithContext("path", path).
				WithContext("row", i)
		}
	}
	writer.Flush()

	if err := writer.Error(); err != nil {
		return apperrors.NewStorageError("flush output file", err).WithContext("path", path)
	}
	return nil
}

// FormatFloat formats a float64 value for CSV output with specified precision
func FormatFloat(value float64, precision int) string {
	return strconv.FormatFloat(value, 'f', precision, 64)
}
