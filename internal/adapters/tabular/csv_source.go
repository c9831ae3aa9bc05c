package tabular

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"delivery-assignment-service/internal/ports"
)

// CSV-file implementation of the RecordSource port. The first row
// names the columns; entirely blank rows are skipped. Ragged rows are
// tolerated: short rows read as empty cells, extra cells are dropped.
type CSVSource struct {
	Path string
}

func NewCSVSource(path string) *CSVSource {
	return &CSVSource{Path: path}
}

func (s *CSVSource) ReadRecords(ctx context.Context) ([]ports.Record, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("csv source: read %q: %w", s.Path, err)
	}

	// Strip a UTF-8 BOM so it cannot leak into the first column name.
	if len(data) >= 3 && bytes.Equal(data[:3], []byte{0xEF, 0xBB, 0xBF}) {
		data = data[3:]
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv source: parse %q: %w", s.Path, err)
	}

	if len(rows) == 0 {
		return []ports.Record{}, nil
	}

	header := rows[0]
	recs := make([]ports.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := ports.NewRecord()
		for i, col := range header {
			val := ""
			if i < len(row) {
				val = row[i]
			}
			rec.Set(col, val)
		}

		if rec.Blank() {
			continue
		}
		recs = append(recs, rec)
	}

	return recs, nil
}
