package ctdf

import (
	"strings"

	"golang.org/x/exp/slices"
)

type Route struct {
	Destination string `json:"destination" groups:"file"`
	Number      string `json:"number" groups:"file"`
	Time        string `json:"time" groups:"file"`
}

func (r *Route) GetDepartureTime() (DepartureTime, error) {
	return ParseDepartureTime(r.Time)
}

// SortRoutesByDestination orders routes by destination, keeping the relative
// order of routes sharing a destination.
func SortRoutesByDestination(routes []*Route) {
	slices.SortStableFunc(routes, func(a, b *Route) int {
		return strings.Compare(a.Destination, b.Destination)
	})
}

func IsSortedByDestination(routes []*Route) bool {
	return slices.IsSortedFunc(routes, func(a, b *Route) int {
		return strings.Compare(a.Destination, b.Destination)
	})
}

// FilterRoutesDepartingAfter returns the routes departing strictly later than
// cutoff, in their original order. A route whose own time cannot be parsed
// fails the whole filter.
func FilterRoutesDepartingAfter(routes []*Route, cutoff DepartureTime) ([]*Route, error) {
	filtered := []*Route{}

	for _, route := range routes {
		departureTime, err := route.GetDepartureTime()
		if err != nil {
			return nil, err
		}

		if departureTime.After(cutoff) {
			filtered = append(filtered, route)
		}
	}

	return filtered, nil
}
