package inspection

import (
	"testing"
	"time"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to Status
		want     bool
	}{
		{StatusOpen, StatusPhotos, true},
		{StatusOpen, StatusClosed, true},
		{StatusOpen, StatusPrinted, false},
		{StatusPhotos, StatusPrinted, true},
		{StatusPrinted, StatusClosed, true},
		{StatusClosed, StatusOpen, false},
		{StatusClosed, StatusPhotos, false},
		{StatusPhotos, StatusPhotos, true},
	}
	for _, c := range cases {
		if got := CanTransition(c.from, c.to); got != c.want {
			t.Fatalf("CanTransition(%s, %s) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestApplyTransitionStampsClosedAt(t *testing.T) {
	now := time.Now()
	in := &Inspection{Folio: "F1", Status: StatusPrinted}
	if err := ApplyTransition(in, StatusClosed, now); err != nil {
		t.Fatalf("apply transition: %v", err)
	}
	if in.ClosedAt == nil || !in.ClosedAt.Equal(now) {
		t.Fatalf("expected ClosedAt to be stamped, got %v", in.ClosedAt)
	}

	if err := ApplyTransition(in, StatusOpen, now); err == nil {
		t.Fatalf("expected error reopening a closed inspection")
	}
}
