// Package ingest adapts external activity data into engine raw records.
//
// The CSV adapter owns wire parsing and the ingestion-boundary contract:
// case-insensitive header matching, hard rejection when required columns
// are missing, and per-row default substitution for malformed quantities
// and dates.
package ingest

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/ecoledger/ecoledger/internal/engine"
	"github.com/ecoledger/ecoledger/internal/logging"
)

// DefaultUnit is substituted when a row carries no unit value.
const DefaultUnit = "items"

// dateLayout is the expected date format for the optional date column.
const dateLayout = "2006-01-02"

// CSVReader parses activity CSV input into raw records.
type CSVReader struct {
	// Now supplies the ingestion timestamp used when a row has no date or
	// an unparseable one. Defaults to time.Now.
	Now func() time.Time
}

// Result is the outcome of parsing one CSV input.
type Result struct {
	Records []engine.RawRecord

	// Skipped counts rows dropped for structural defects. Rows with
	// merely malformed quantity or date values are not skipped; they get
	// defaults instead.
	Skipped int
}

// Read parses CSV from r. Required semantic columns are description,
// quantity, and unit, matched case-insensitively with surrounding
// whitespace ignored; a date column is optional.
//
// Missing required columns or an input without data rows is a hard
// rejection (engine.ErrMissingFields / engine.ErrEmptyInput). Within a
// row, an unparseable quantity defaults to 0, a missing or unparseable
// date defaults to the ingestion time, and an empty unit defaults to
// "items". Structurally broken rows are skipped with a warning and the
// rest of the input continues to parse.
func (c CSVReader) Read(ctx context.Context, r io.Reader) (Result, error) {
	log := logging.FromContext(ctx)
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return Result{}, fmt.Errorf("%w: input has no header row", engine.ErrEmptyInput)
	}

	cols, err := mapHeader(header)
	if err != nil {
		return Result{}, err
	}

	var result Result
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Warn().
				Str("component", "ingest").
				Err(err).
				Msg("skipping unreadable row")
			result.Skipped++
			continue
		}

		rec, ok := c.parseRow(ctx, row, cols, now)
		if !ok {
			result.Skipped++
			continue
		}
		result.Records = append(result.Records, rec)
	}

	if len(result.Records) == 0 && result.Skipped == 0 {
		return Result{}, engine.ErrEmptyInput
	}
	return result, nil
}

// columns holds resolved header indexes. date is -1 when absent.
type columns struct {
	description int
	quantity    int
	unit        int
	date        int
}

// mapHeader resolves required and optional columns from the header row.
func mapHeader(header []string) (columns, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}

	cols := columns{date: -1}
	var missing []string

	lookup := func(name string, dst *int) {
		if i, ok := index[name]; ok {
			*dst = i
		} else {
			missing = append(missing, name)
		}
	}
	lookup("description", &cols.description)
	lookup("quantity", &cols.quantity)
	lookup("unit", &cols.unit)

	if i, ok := index["date"]; ok {
		cols.date = i
	}

	if len(missing) > 0 {
		sort.Strings(missing)
		return columns{}, fmt.Errorf("%w: %s", engine.ErrMissingFields, strings.Join(missing, ", "))
	}
	return cols, nil
}

// parseRow converts one data row into a raw record, substituting defaults
// for malformed quantity and date values. It reports false for rows too
// short to carry the required columns.
func (c CSVReader) parseRow(
	ctx context.Context,
	row []string,
	cols columns,
	now func() time.Time,
) (engine.RawRecord, bool) {
	log := logging.FromContext(ctx)

	max := cols.description
	if cols.quantity > max {
		max = cols.quantity
	}
	if cols.unit > max {
		max = cols.unit
	}
	if len(row) <= max {
		log.Warn().
			Str("component", "ingest").
			Int("columns", len(row)).
			Msg("skipping short row")
		return engine.RawRecord{}, false
	}

	quantity := 0.0
	if raw := strings.TrimSpace(row[cols.quantity]); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			log.Warn().
				Str("component", "ingest").
				Str("quantity", raw).
				Msg("unparseable quantity, defaulting to 0")
		} else {
			quantity = parsed
		}
	}

	date := now()
	if cols.date >= 0 && cols.date < len(row) {
		raw := strings.TrimSpace(row[cols.date])
		if raw != "" {
			parsed, err := time.Parse(dateLayout, raw)
			if err != nil {
				log.Warn().
					Str("component", "ingest").
					Str("date", raw).
					Msg("unparseable date, defaulting to ingestion date")
			} else {
				date = parsed
			}
		}
	}

	unit := strings.TrimSpace(row[cols.unit])
	if unit == "" {
		unit = DefaultUnit
	}

	return engine.RawRecord{
		Description: strings.TrimSpace(row[cols.description]),
		Quantity:    quantity,
		Unit:        unit,
		Date:        date,
	}, true
}
