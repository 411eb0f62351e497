package combibuild

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
)

// Columns names the three design-table columns the core consumes. Names are
// configurable because design files from different platforms disagree on them
type Columns struct {
	Gene  string
	Guide string
	Rank  string
}

// DelimiterFor guesses a table's delimiter from its file extension:
// comma for .csv, tab for everything else (.txt, .tsv)
func DelimiterFor(path string) rune {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return ','
	}
	return '\t'
}

// headerIndex finds each wanted column in the header row, erroring on the
// first one missing
func headerIndex(header []string, wanted ...string) (map[string]int, error) {
	pos := map[string]int{}
	for i, h := range header {
		pos[strings.TrimSpace(h)] = i
	}
	idx := map[string]int{}
	for _, w := range wanted {
		i, ok := pos[w]
		if !ok {
			return nil, fmt.Errorf("%w: input table is missing column %q", ErrData, w)
		}
		idx[w] = i
	}
	return idx, nil
}

// ReadDesignTable parses a single-gene design table into guide records.
// The gene and guide cells must be non-empty; an empty rank cell becomes a
// nil rank, a non-integer one is an error
func ReadDesignTable(r io.Reader, comma rune, cols Columns) ([]GuideRecord, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: design table is empty", ErrData)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read design table header: %w", err)
	}
	idx, err := headerIndex(header, cols.Gene, cols.Guide, cols.Rank)
	if err != nil {
		return nil, err
	}

	var records []GuideRecord
	for row := 2; ; row++ {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read design table row %d: %w", row, err)
		}

		rec := GuideRecord{
			Gene:  strings.TrimSpace(fields[idx[cols.Gene]]),
			Guide: strings.TrimSpace(fields[idx[cols.Guide]]),
		}
		if rec.Gene == "" {
			return nil, fmt.Errorf("%w: row %d has an empty %q value", ErrData, row, cols.Gene)
		}
		if rec.Guide == "" {
			return nil, fmt.Errorf("%w: row %d has an empty %q value", ErrData, row, cols.Guide)
		}
		if raw := strings.TrimSpace(fields[idx[cols.Rank]]); raw != "" {
			rank, err := strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d has a non-integer %q value %q", ErrData, row, cols.Rank, raw)
			}
			rec.Rank = &rank
		}
		records = append(records, rec)
	}
	return records, nil
}

// ReadPairList parses an explicit gene-pair table: a header row (column
// names are ignored) followed by two-column rows, first column gene_x
func ReadPairList(r io.Reader, comma rune) ([]GenePair, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	if _, err := cr.Read(); err == io.EOF {
		return nil, fmt.Errorf("%w: gene pair table is empty", ErrData)
	} else if err != nil {
		return nil, fmt.Errorf("failed to read gene pair header: %w", err)
	}

	var pairs []GenePair
	for row := 2; ; row++ {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read gene pair row %d: %w", row, err)
		}
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: gene pair row %d needs two columns", ErrData, row)
		}
		p := GenePair{
			GeneX: strings.TrimSpace(fields[0]),
			GeneY: strings.TrimSpace(fields[1]),
		}
		if p.GeneX == "" || p.GeneY == "" {
			return nil, fmt.Errorf("%w: gene pair row %d has an empty gene", ErrData, row)
		}
		pairs = append(pairs, p)
	}
	return pairs, nil
}

// ReadLibrary parses a previously written library table back into guide
// pairs, for re-shuffling. Columns are located by name so extra columns
// are tolerated. Empty guides are allowed, they are no-guide placeholders
func ReadLibrary(r io.Reader, comma rune) ([]GuidePair, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: library table is empty", ErrData)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read library header: %w", err)
	}
	idx, err := headerIndex(header, "gene_x", "gene_y", "guide_x", "guide_y")
	if err != nil {
		return nil, err
	}

	var pairs []GuidePair
	for row := 2; ; row++ {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read library row %d: %w", row, err)
		}
		p := GuidePair{
			GeneX:  strings.TrimSpace(fields[idx["gene_x"]]),
			GeneY:  strings.TrimSpace(fields[idx["gene_y"]]),
			GuideX: strings.TrimSpace(fields[idx["guide_x"]]),
			GuideY: strings.TrimSpace(fields[idx["guide_y"]]),
		}
		if p.GeneX == "" || p.GeneY == "" {
			return nil, fmt.Errorf("%w: library row %d has an empty gene", ErrData, row)
		}
		pairs = append(pairs, p)
	}
	return pairs, nil
}
