package domain

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Train struct {
	ID          uuid.UUID
	Name        string
	Source      string
	Destination string
	TotalSeats  int
	CreatedAt   time.Time
}

// Stop is one station on a train's itinerary. StopOrder is 1-based and
// unique per train; the train's source is order 1 and its destination
// is the highest order.
type Stop struct {
	ID                 uuid.UUID
	TrainID            uuid.UUID
	StationName        string
	DistanceFromSource int
	StopOrder          int
}

// Route indexes a train's stops by station name so segment requests can
// be checked for direction before any seat work happens. Station name
// lookups are case-insensitive.
type Route struct {
	stops []Stop
	order map[string]int
}

func NewRoute(stops []Stop) *Route {
	sorted := make([]Stop, len(stops))
	copy(sorted, stops)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].StopOrder < sorted[j].StopOrder
	})

	order := make(map[string]int, len(sorted))
	for _, s := range sorted {
		order[strings.ToLower(s.StationName)] = s.StopOrder
	}

	return &Route{stops: sorted, order: order}
}

func (r *Route) Stops() []Stop {
	return r.stops
}

// StopOrder reports the 1-based position of station on the route.
func (r *Route) StopOrder(station string) (int, bool) {
	pos, ok := r.order[strings.ToLower(station)]
	return pos, ok
}

// Precedes reports whether both stations are stops on the route and a
// comes strictly before b in travel direction.
func (r *Route) Precedes(a, b string) bool {
	pa, ok := r.StopOrder(a)
	if !ok {
		return false
	}

	pb, ok := r.StopOrder(b)
	if !ok {
		return false
	}

	return pa < pb
}
