package loader

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/upbringing/recommender/internal/domain"
)

// CSVSource reads catalog records from a CSV file. The first row is the
// header; duplicate column names keep the first occurrence and later
// duplicates are dropped, deterministically and order-preservingly.
type CSVSource struct {
	Path string
}

func NewCSVSource(path string) *CSVSource {
	return &CSVSource{Path: path}
}

func (s *CSVSource) Records(ctx context.Context) ([]domain.RawRecord, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open catalog file %q: %w", s.Path, err)
	}
	defer f.Close()

	return readCSV(ctx, f)
}

func readCSV(ctx context.Context, r io.Reader) ([]domain.RawRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // tolerate ragged rows

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: csv has no header row", domain.ErrEmptyCatalog)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading csv header: %v", domain.ErrInvalidInput, err)
	}

	// Columns whose name already appeared are dropped. A separate drop
	// marker keeps a genuinely empty-named column distinct from a dropped
	// duplicate.
	keep := make([]string, len(header))
	drop := make([]bool, len(header))
	seen := make(map[string]bool, len(header))
	for i, name := range header {
		if seen[name] {
			drop[i] = true
			continue
		}
		seen[name] = true
		keep[i] = name
	}

	var records []domain.RawRecord
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: reading csv row: %v", domain.ErrInvalidInput, err)
		}

		rec := make(domain.RawRecord, len(keep))
		for i, value := range row {
			if i >= len(keep) || drop[i] {
				continue
			}
			rec[keep[i]] = value
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: csv has no data rows", domain.ErrEmptyCatalog)
	}
	return records, nil
}
