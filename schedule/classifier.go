package schedule

import (
	"sort"
	"time"

	"github.com/ralfmy/itv-roombot/rooms"
)

// Status is a room's derived availability within a queried window.
type Status int

const (
	AvailableNow Status = iota
	AvailableAt
	Booked
)

// Availability pairs a status with the instant the room becomes available,
// meaningful only for AvailableAt.
type Availability struct {
	Status Status
	At     time.Time
}

// SortIntervals orders busy intervals by full start instant. A single
// provider call returns them chronologically already, but merged results from
// several calls may interleave; comparing complete timestamps also keeps
// windows spanning midnight ordered correctly.
func SortIntervals(intervals []BusyInterval) []BusyInterval {
	sorted := make([]BusyInterval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})
	return sorted
}

// Classify decides a room's availability from its busy intervals within the
// window. Every (window, busy) pair maps to exactly one status.
func Classify(window TimeWindow, busy []BusyInterval) Availability {
	if len(busy) == 0 {
		if window.Mode == ModeAllDay {
			return Availability{Status: AvailableNow}
		}
		return Availability{Status: AvailableAt, At: window.Start}
	}

	first := SortIntervals(busy)[0]
	if window.Start.Before(first.Start) {
		if window.Mode == ModeAllDay {
			return Availability{Status: AvailableNow}
		}
		return Availability{Status: AvailableAt, At: window.Start}
	}
	return Availability{Status: Booked}
}

// PassesStatus applies the FREE/BUSY filter over a classification. FREE and
// BUSY partition the room set: a room is FREE exactly when it is not Booked.
func PassesStatus(filter rooms.StatusFilter, a Availability) bool {
	switch filter {
	case rooms.StatusFree:
		return a.Status != Booked
	case rooms.StatusBusy:
		return a.Status == Booked
	default:
		return true
	}
}
