package vocab

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// LoadFile reads vocabulary records from a delimited file. Tab-separated by
// default; a .csv extension switches to commas. Expected columns are
// term, weight, synonyms where synonyms is a comma-separated list and may be
// empty. A leading header row naming the first column "term" is skipped.
func LoadFile(path string) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vocabulary file: %w", err)
	}
	defer file.Close()

	delimiter := '\t'
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		delimiter = ','
	}
	records, err := Parse(file, delimiter)
	if err != nil {
		return nil, fmt.Errorf("parse vocabulary file %s: %w", path, err)
	}
	return records, nil
}

// Parse reads delimited vocabulary rows from r.
func Parse(r io.Reader, delimiter rune) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var records []Record
	line := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++

		if len(row) == 1 && strings.TrimSpace(row[0]) == "" {
			continue
		}
		if line == 1 && strings.EqualFold(strings.TrimSpace(row[0]), "term") {
			continue
		}
		if len(row) < 2 {
			return nil, fmt.Errorf("line %d: expected at least term and weight columns, got %d", line, len(row))
		}

		weight, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: parse weight %q: %w", line, row[1], err)
		}

		record := Record{
			Term:   strings.TrimSpace(row[0]),
			Weight: weight,
		}
		if len(row) > 2 {
			record.Synonyms = splitSynonyms(row[2])
		}
		records = append(records, record)
	}
	return records, nil
}
