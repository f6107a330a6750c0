package domain

import "strings"

// OverlapPolicy decides whether a requested segment can share a seat
// with the segment the seat currently holds.
type OverlapPolicy interface {
	CanShare(seat *Seat, reqFrom, reqTo string) bool
}

// LexicalOverlap compares station names case-insensitively and
// lexicographically, not by route order: a booked seat is shareable
// only when bookedTo sorts before reqFrom or bookedFrom sorts after
// reqTo. Two segments that are disjoint on the route but out of that
// lexical relation get rejected, and the converse mis-acceptance is
// possible too. This matches the deployed behavior and is the default;
// RouteOrderOverlap is the corrected variant.
type LexicalOverlap struct{}

func (LexicalOverlap) CanShare(seat *Seat, reqFrom, reqTo string) bool {
	if seat.IsFree() {
		return true
	}

	// A seat flagged booked without a recorded interval can't be
	// proven disjoint, so it is never shareable.
	if seat.BookedFrom == nil || seat.BookedTo == nil {
		return false
	}

	bf := strings.ToLower(*seat.BookedFrom)
	bt := strings.ToLower(*seat.BookedTo)
	rf := strings.ToLower(reqFrom)
	rt := strings.ToLower(reqTo)

	return bt < rf || bf > rt
}

// RouteOrderOverlap resolves both intervals to stop orders on the
// train's route and allows sharing only when they occupy disjoint
// spans. Segments touching at a single station do not conflict: the
// seat is vacated at the shared stop.
type RouteOrderOverlap struct {
	Route *Route
}

func (p RouteOrderOverlap) CanShare(seat *Seat, reqFrom, reqTo string) bool {
	if seat.IsFree() {
		return true
	}

	if seat.BookedFrom == nil || seat.BookedTo == nil {
		return false
	}

	bf, ok := p.Route.StopOrder(*seat.BookedFrom)
	if !ok {
		return false
	}

	bt, ok := p.Route.StopOrder(*seat.BookedTo)
	if !ok {
		return false
	}

	rf, ok := p.Route.StopOrder(reqFrom)
	if !ok {
		return false
	}

	rt, ok := p.Route.StopOrder(reqTo)
	if !ok {
		return false
	}

	return bt <= rf || rt <= bf
}
