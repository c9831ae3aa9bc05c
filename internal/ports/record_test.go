package ports

import (
	"reflect"
	"testing"
)

func TestRecordColumnOrder(t *testing.T) {
	rec := NewRecord()
	rec.Set("B", "1")
	rec.Set("A", "2")
	rec.Set("B", "3")

	if got := rec.Columns(); !reflect.DeepEqual(got, []string{"B", "A"}) {
		t.Errorf("columns = %v, want first-seen order [B A]", got)
	}
	if rec.Get("B") != "3" {
		t.Errorf("Get(B) = %q, want overwritten value 3", rec.Get("B"))
	}
	if rec.Has("C") {
		t.Error("Has(C) = true for an unset column")
	}
}

func TestRecordBlank(t *testing.T) {
	rec := NewRecord()
	rec.Set("A", "  ")
	rec.Set("B", "")
	if !rec.Blank() {
		t.Error("whitespace-only record should be blank")
	}

	rec.Set("B", "x")
	if rec.Blank() {
		t.Error("record with a value should not be blank")
	}
}

func TestUnionColumns(t *testing.T) {
	a := NewRecord()
	a.Set("Route", "1")
	a.Set("Driver", "Ana")

	b := NewRecord()
	b.Set("Route", "unassigned-delivery")
	b.Set("Client", "M. Alvarez")

	got := UnionColumns([]Record{a, b})
	want := []string{"Route", "Driver", "Client"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("union = %v, want %v", got, want)
	}
}
