package domain

import (
	"fmt"
	"strconv"
)

// Coach layout: ten coaches A through J, fifty seats each. Labels run
// A1..A50, B1..B50, and so on; capacity growth continues from the
// highest assigned label and wraps to the next coach after seat 50.
const (
	CoachCount    = 10
	SeatsPerCoach = 50
	MaxSeats      = CoachCount * SeatsPerCoach
)

var coaches = [CoachCount]byte{'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J'}

// seatLabelAt maps a 0-based position in the layout to its label.
func seatLabelAt(pos int) string {
	coach := coaches[pos/SeatsPerCoach]
	seq := pos%SeatsPerCoach + 1
	return string(coach) + strconv.Itoa(seq)
}

// ParseLabel splits a seat label into its 0-based layout position.
func ParseLabel(label string) (int, error) {
	if len(label) < 2 {
		return 0, fmt.Errorf("%w: malformed seat label %q", ErrInvalidInput, label)
	}

	coachIdx := -1
	for i, c := range coaches {
		if label[0] == c {
			coachIdx = i
			break
		}
	}

	if coachIdx < 0 {
		return 0, fmt.Errorf("%w: unknown coach in seat label %q", ErrInvalidInput, label)
	}

	seq, err := strconv.Atoi(label[1:])
	if err != nil || seq < 1 || seq > SeatsPerCoach {
		return 0, fmt.Errorf("%w: bad sequence in seat label %q", ErrInvalidInput, label)
	}

	return coachIdx*SeatsPerCoach + seq - 1, nil
}

// InitialLabels returns the labels for a fresh train of total seats,
// filling coach A first.
func InitialLabels(total int) ([]string, error) {
	if total <= 0 {
		return nil, ErrInvalidSeatCount
	}

	if total > MaxSeats {
		return nil, fmt.Errorf("%w: %d seats requested, layout holds %d", ErrLayoutExhausted, total, MaxSeats)
	}

	labels := make([]string, total)
	for i := range labels {
		labels[i] = seatLabelAt(i)
	}

	return labels, nil
}

// NextLabels returns count labels continuing after last, the highest
// label already assigned on the train. An empty last starts at A1.
func NextLabels(last string, count int) ([]string, error) {
	if count <= 0 {
		return nil, ErrInvalidSeatCount
	}

	start := 0
	if last != "" {
		pos, err := ParseLabel(last)
		if err != nil {
			return nil, err
		}
		start = pos + 1
	}

	if start+count > MaxSeats {
		return nil, fmt.Errorf("%w: %d more seats after %q exceed layout capacity", ErrLayoutExhausted, count, last)
	}

	labels := make([]string, count)
	for i := range labels {
		labels[i] = seatLabelAt(start + i)
	}

	return labels, nil
}
