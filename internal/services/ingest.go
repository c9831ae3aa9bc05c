package services

import (
	"strconv"
	"strings"

	"delivery-assignment-service/internal/domain"
	"delivery-assignment-service/internal/ports"
)

// ParseDrivers converts roster records to typed drivers, one per row,
// preserving sheet order. Conversion never fails: this is the single
// point where loosely-typed sheet cells become typed fields, and sheet
// data is taken as it comes. Validity filtering (blank names) is the
// allocator's job, not ingestion's.
func ParseDrivers(recs []ports.Record) []domain.Driver {
	drivers := make([]domain.Driver, 0, len(recs))
	for _, rec := range recs {
		drivers = append(drivers, domain.Driver{
			Name:       strings.TrimSpace(rec.Get(domain.ColDriver)),
			Email:      strings.TrimSpace(rec.Get(domain.ColEmail)),
			TotalBoxes: parseBoxes(rec.Get(domain.ColBoxes)),
		})
	}
	return drivers
}

// ParseDeliveries converts delivery records to typed deliveries, one
// per row, preserving sheet order.
func ParseDeliveries(recs []ports.Record) []domain.Delivery {
	deliveries := make([]domain.Delivery, 0, len(recs))
	for _, rec := range recs {
		deliveries = append(deliveries, domain.Delivery{
			Client:  strings.TrimSpace(rec.Get(domain.ColClient)),
			Address: strings.TrimSpace(rec.Get(domain.ColAddress)),
			Phone:   strings.TrimSpace(rec.Get(domain.ColPhone)),
			Boxes:   parseBoxes(rec.Get(domain.ColBoxes)),
			Order:   strings.TrimSpace(rec.Get(domain.ColOrder)),
			Notes:   strings.TrimSpace(rec.Get(domain.ColNotes)),
		})
	}
	return deliveries
}

// parseBoxes reads a box-count cell the way a spreadsheet user wrote it.
// Blank or unparseable cells coerce to zero, negatives clamp to zero.
func parseBoxes(cell string) int {
	n, err := strconv.Atoi(strings.TrimSpace(cell))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
