package ports

import "context"

// Port: a boundary for reading one logical table of rows.
type RecordSource interface {
	// Return all non-blank rows, in table order. Column names come
	// from the table's header row.
	ReadRecords(ctx context.Context) ([]Record, error)
}

// Port: a boundary for writing one logical table of rows.
type RecordSink interface {
	// Replace the destination's contents with the given rows. The
	// header is the union of all record columns in first-seen order;
	// a missing key is written as an empty value.
	WriteRecords(ctx context.Context, recs []Record) error
}
