package services

import (
	"strconv"

	"delivery-assignment-service/internal/domain"
	"delivery-assignment-service/internal/ports"
)

// RouteRecords renders an allocation result as output sheet rows:
// one row per assigned stop (grouped by route number, stops in
// assignment order), then one row per unassignable delivery, then one
// row per driver left without a route. Marker rows carry only the
// columns that make sense for them; the sink fills the rest with
// empty cells via its union header.
func RouteRecords(res *domain.AllocationResult) []ports.Record {
	recs := make([]ports.Record, 0, len(res.Routes)*2)

	for _, route := range res.Routes {
		for _, stop := range route.Stops {
			rec := ports.NewRecord()
			rec.Set(domain.ColRoute, strconv.Itoa(route.Number))
			rec.Set(domain.ColDriver, route.Driver.Name)
			rec.Set(domain.ColEmail, route.Driver.Email)
			rec.Set(domain.ColClient, stop.Delivery.Client)
			rec.Set(domain.ColAddress, stop.Delivery.Address)
			rec.Set(domain.ColPhone, stop.Delivery.Phone)
			rec.Set(domain.ColBoxes, strconv.Itoa(stop.Delivery.Boxes))
			rec.Set(domain.ColBoxesRemaining, strconv.Itoa(stop.BoxesRemaining))
			rec.Set(domain.ColOrder, stop.Delivery.Order)
			rec.Set(domain.ColNotes, stop.Delivery.Notes)
			recs = append(recs, rec)
		}
	}

	for _, d := range res.UnassignedDeliveries {
		rec := ports.NewRecord()
		rec.Set(domain.ColRoute, domain.RouteMarkerUnassignedDelivery)
		rec.Set(domain.ColClient, d.Client)
		rec.Set(domain.ColAddress, d.Address)
		rec.Set(domain.ColBoxes, strconv.Itoa(d.Boxes))
		rec.Set(domain.ColNotes, d.Notes)
		recs = append(recs, rec)
	}

	for _, d := range res.UnassignedDrivers {
		rec := ports.NewRecord()
		rec.Set(domain.ColRoute, domain.RouteMarkerUnassignedDriver)
		rec.Set(domain.ColDriver, d.Name)
		rec.Set(domain.ColEmail, d.Email)
		rec.Set(domain.ColBoxesRemaining, strconv.Itoa(d.TotalBoxes))
		recs = append(recs, rec)
	}

	return recs
}
