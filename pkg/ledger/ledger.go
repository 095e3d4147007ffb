package ledger

import (
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/travigo/routeledger/pkg/ctdf"
)

// Ledger is the ordered collection of routes for a session. Everything it
// hands out is a copy.
type Ledger struct {
	routes []*ctdf.Route
}

func NewLedger() *Ledger {
	return &Ledger{}
}

func (l *Ledger) Len() int {
	return len(l.routes)
}

// Add validates the departure time before appending, so a rejected route
// leaves the ledger untouched.
func (l *Ledger) Add(route ctdf.Route) error {
	if _, err := route.GetDepartureTime(); err != nil {
		return err
	}

	l.routes = append(l.routes, &route)

	if len(l.routes) > 1 {
		ctdf.SortRoutesByDestination(l.routes)
	}

	return nil
}

func (l *Ledger) Routes() []*ctdf.Route {
	return copyRoutes(l.routes)
}

func (l *Ledger) Select(cutoff ctdf.DepartureTime) ([]*ctdf.Route, error) {
	selected, err := ctdf.FilterRoutesDepartingAfter(l.routes, cutoff)
	if err != nil {
		return nil, err
	}

	return copyRoutes(selected), nil
}

// Replace swaps in a whole new set of routes, kept in the order given.
func (l *Ledger) Replace(routes []*ctdf.Route) {
	l.routes = copyRoutes(routes)
}

func copyRoutes(routes []*ctdf.Route) []*ctdf.Route {
	copied := []*ctdf.Route{}
	if len(routes) == 0 {
		return copied
	}

	err := copier.CopyWithOption(&copied, routes, copier.Option{DeepCopy: true})
	if err != nil {
		// copier only fails on mismatched types, which cannot happen here
		log.Error().Err(err).Msg("Failed to copy routes")
		return nil
	}

	return copied
}
