package digest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadCSV parses an edge list from r. The first row is a header that must
// contain ColInit and ColTerm (matched case-insensitively after trimming);
// remaining columns become Record.Attrs keyed by their header name.
//
// Returns ErrNoHeader, ErrMissingColumn, or ErrBadEndpoint (wrapped with the
// offending row) on malformed input.
func ReadCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("digest: reading header: %w", err)
	}

	initIdx, termIdx := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case ColInit:
			initIdx = i
		case ColTerm:
			termIdx = i
		}
	}
	if initIdx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, ColInit)
	}
	if termIdx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, ColTerm)
	}

	var records []Record
	for row := 1; ; row++ {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("digest: row %d: %w", row, err)
		}

		init, err := strconv.Atoi(strings.TrimSpace(fields[initIdx]))
		if err != nil {
			return nil, fmt.Errorf("%w: row %d, %s=%q", ErrBadEndpoint, row, ColInit, fields[initIdx])
		}
		term, err := strconv.Atoi(strings.TrimSpace(fields[termIdx]))
		if err != nil {
			return nil, fmt.Errorf("%w: row %d, %s=%q", ErrBadEndpoint, row, ColTerm, fields[termIdx])
		}

		var attrs map[string]string
		if len(fields) > 2 {
			attrs = make(map[string]string, len(fields)-2)
			for i, val := range fields {
				if i == initIdx || i == termIdx || i >= len(header) {
					continue
				}
				attrs[strings.TrimSpace(header[i])] = strings.TrimSpace(val)
			}
		}
		records = append(records, Record{Init: init, Term: term, Attrs: attrs})
	}
	return records, nil
}
