package response

import (
	"website-rentals/internal/usecase/queries"
)

type CanRentResponse struct {
	CanRent bool `json:"can_rent"`
}

type AvailableQtyResponse struct {
	AvailableQty float64 `json:"available_qty"`
}

// TimeslotsResponse reports the bookable hourly pickup and return times.
// Applicable is false when the product is not rented by the hour.
type TimeslotsResponse struct {
	Applicable bool     `json:"applicable"`
	Start      []string `json:"start"`
	Stop       []string `json:"stop"`
}

func FromTimeslotsView(view *queries.TimeslotsView) TimeslotsResponse {
	if view == nil {
		return TimeslotsResponse{Applicable: false, Start: []string{}, Stop: []string{}}
	}
	resp := TimeslotsResponse{
		Applicable: true,
		Start:      view.Start,
		Stop:       view.Stop,
	}
	if resp.Start == nil {
		resp.Start = []string{}
	}
	if resp.Stop == nil {
		resp.Stop = []string{}
	}
	return resp
}
