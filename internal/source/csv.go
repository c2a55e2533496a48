// Package source reads the semicolon-delimited CSV files yield tables
// ship as. It knows nothing about the domain model beyond which columns
// are structural; parsing into typed rows happens in the domain package.
package source

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// Record is one parsed CSV row: field values keyed by header name, plus
// the 1-based line number for error reporting.
type Record struct {
	Line   int
	Fields map[string]string
}

// Source locates the two CSV files. Paths are fixed at construction so
// tests can point at temporary fixtures instead of the deployed data dir.
type Source struct {
	MetaPath   string
	TablesPath string
}

// New creates a Source reading metadata from metaPath and table data from
// tablesPath.
func New(metaPath, tablesPath string) Source {
	return Source{MetaPath: metaPath, TablesPath: tablesPath}
}

// ReadMeta reads every metadata row in file order.
func (s Source) ReadMeta() ([]string, []Record, error) {
	return readSemicolonCSV(s.MetaPath)
}

// ReadTables reads every data row in file order.
func (s Source) ReadTables() ([]string, []Record, error) {
	return readSemicolonCSV(s.TablesPath)
}

// FindAvailableColumns scans the data source for rows whose keyColumn cell
// equals keyValue and returns the column names for which at least one
// matching row has a non-empty value. The structural columns come first,
// the rest follow in header order.
func (s Source) FindAvailableColumns(keyColumn, keyValue string, structural []string) ([]string, error) {
	header, records, err := s.ReadTables()
	if err != nil {
		return nil, err
	}

	isStructural := make(map[string]bool, len(structural))
	for _, col := range structural {
		isStructural[col] = true
	}

	populated := make(map[string]bool, len(header))
	for _, rec := range records {
		if rec.Fields[keyColumn] != keyValue {
			continue
		}
		for col, val := range rec.Fields {
			if val != "" {
				populated[col] = true
			}
		}
	}

	available := make([]string, 0, len(header))
	available = append(available, structural...)
	for _, col := range header {
		if !isStructural[col] && populated[col] {
			available = append(available, col)
		}
	}
	return available, nil
}

// readSemicolonCSV parses a semicolon-delimited UTF-8 CSV file with a
// header row. Rows shorter than the header leave the trailing columns
// empty; cell values are whitespace-trimmed.
func readSemicolonCSV(path string) ([]string, []Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open csv source: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = ';'
	r.FieldsPerRecord = -1

	all, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read csv source %s: %w", path, err)
	}
	if len(all) == 0 {
		return nil, nil, fmt.Errorf("csv source %s has no header row", path)
	}

	header := make([]string, len(all[0]))
	for i, h := range all[0] {
		header[i] = strings.TrimSpace(h)
	}

	records := make([]Record, 0, len(all)-1)
	for i, row := range all[1:] {
		fields := make(map[string]string, len(header))
		for j, col := range header {
			if j < len(row) {
				fields[col] = strings.TrimSpace(row[j])
			} else {
				fields[col] = ""
			}
		}
		records = append(records, Record{Line: i + 2, Fields: fields})
	}
	return header, records, nil
}
