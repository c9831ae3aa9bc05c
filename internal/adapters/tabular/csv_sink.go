package tabular

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"delivery-assignment-service/internal/ports"
)

// CSV-file implementation of the RecordSink port. Each write replaces
// the file's prior contents: the route sheet reflects exactly one run.
type CSVSink struct {
	Path string
}

func NewCSVSink(path string) *CSVSink {
	return &CSVSink{Path: path}
}

func (s *CSVSink) WriteRecords(ctx context.Context, recs []ports.Record) error {
	f, err := os.Create(s.Path)
	if err != nil {
		return fmt.Errorf("csv sink: create %q: %w", s.Path, err)
	}
	defer f.Close()

	header := ports.UnionColumns(recs)

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("csv sink: write header: %w", err)
	}

	row := make([]string, len(header))
	for _, rec := range recs {
		for i, col := range header {
			row[i] = rec.Get(col)
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("csv sink: write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("csv sink: flush %q: %w", s.Path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("csv sink: close %q: %w", s.Path, err)
	}

	return nil
}
