package inspection

import (
	"fmt"
	"time"
)

// AllowTransition is the directed graph of legal status transitions.
var AllowTransition = map[Status][]Status{
	StatusOpen:    {StatusPhotos, StatusClosed},
	StatusPhotos:  {StatusPrinted, StatusClosed},
	StatusPrinted: {StatusClosed},
	// cerrada is terminal
	StatusClosed: {},
}

// CanTransition reports whether from -> to is a legal status transition.
func CanTransition(from, to Status) bool {
	if from == to {
		return true
	}
	for _, s := range AllowTransition[from] {
		if s == to {
			return true
		}
	}
	return false
}

// ApplyTransition moves the inspection to the target status and maintains the
// closing timestamp.
func ApplyTransition(in *Inspection, to Status, now time.Time) error {
	if in == nil {
		return fmt.Errorf("inspection is nil")
	}
	if !CanTransition(in.Status, to) {
		return fmt.Errorf("invalid inspection status transition: %s -> %s", in.Status, to)
	}
	in.Status = to
	if to == StatusClosed && in.ClosedAt == nil {
		t := now
		in.ClosedAt = &t
	}
	return nil
}
