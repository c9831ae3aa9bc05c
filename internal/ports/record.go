package ports

import "strings"

// Record is one sheet row: an ordered mapping from column name to a
// scalar cell value. Column order is insertion order of first-seen
// columns, so rows render in the same shape they were built in.
// Typed conversion happens once at ingestion; everything at the I/O
// boundary stays a string.
type Record struct {
	cols []string
	vals map[string]string
}

func NewRecord() Record {
	return Record{vals: map[string]string{}}
}

// Set stores a cell value, registering the column on first use.
func (r *Record) Set(col, val string) {
	if r.vals == nil {
		r.vals = map[string]string{}
	}
	if _, ok := r.vals[col]; !ok {
		r.cols = append(r.cols, col)
	}
	r.vals[col] = val
}

func (r Record) Get(col string) string { return r.vals[col] }

func (r Record) Has(col string) bool {
	_, ok := r.vals[col]
	return ok
}

// Columns returns the record's column names in first-seen order.
func (r Record) Columns() []string { return r.cols }

// Blank reports whether every cell is empty or whitespace.
func (r Record) Blank() bool {
	for _, v := range r.vals {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// UnionColumns computes the header for a set of heterogeneous records:
// the union of all column names, in first-seen order across records.
func UnionColumns(recs []Record) []string {
	seen := map[string]struct{}{}
	cols := make([]string, 0, 8)
	for _, rec := range recs {
		for _, c := range rec.Columns() {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			cols = append(cols, c)
		}
	}
	return cols
}
