package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ralfmy/itv-roombot/rooms"
)

func exactWindow(startHour int) TimeWindow {
	start := time.Date(2024, 6, 10, startHour, 0, 0, 0, london)
	return TimeWindow{
		Date:  "2024-06-10",
		Start: start,
		End:   time.Date(2024, 6, 10, 23, 59, 59, 0, london),
		Mode:  ModeExact,
	}
}

func allDayWindow() TimeWindow {
	return TimeWindow{
		Date:  "2024-06-10",
		Start: time.Date(2024, 6, 10, 0, 0, 0, 0, london),
		End:   time.Date(2024, 6, 10, 23, 59, 59, 0, london),
		Mode:  ModeAllDay,
	}
}

func busyAt(startHour, endHour int) BusyInterval {
	return BusyInterval{
		Start: time.Date(2024, 6, 10, startHour, 0, 0, 0, london),
		End:   time.Date(2024, 6, 10, endHour, 0, 0, 0, london),
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		window     TimeWindow
		busy       []BusyInterval
		expected   Status
		expectedAt time.Time
	}{
		{
			name:     "NoBookingsAllDay",
			window:   allDayWindow(),
			busy:     nil,
			expected: AvailableNow,
		},
		{
			name:       "NoBookingsExact",
			window:     exactWindow(12),
			busy:       nil,
			expected:   AvailableAt,
			expectedAt: time.Date(2024, 6, 10, 12, 0, 0, 0, london),
		},
		{
			name:       "FreeBeforeFirstBooking",
			window:     exactWindow(12),
			busy:       []BusyInterval{busyAt(13, 14)},
			expected:   AvailableAt,
			expectedAt: time.Date(2024, 6, 10, 12, 0, 0, 0, london),
		},
		{
			name: "QueryInsideBooking",
			window: TimeWindow{
				Date:  "2024-06-10",
				Start: time.Date(2024, 6, 10, 13, 30, 0, 0, london),
				End:   time.Date(2024, 6, 10, 23, 59, 59, 0, london),
				Mode:  ModeExact,
			},
			busy:     []BusyInterval{busyAt(13, 14)},
			expected: Booked,
		},
		{
			name:     "AllDayWithMorningBooking",
			window:   allDayWindow(),
			busy:     []BusyInterval{busyAt(9, 10)},
			expected: AvailableNow,
		},
		{
			name:     "UnsortedBusyUsesEarliest",
			window:   exactWindow(12),
			busy:     []BusyInterval{busyAt(15, 16), busyAt(11, 13)},
			expected: Booked,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Classify(tt.window, tt.busy)
			assert.Equal(t, tt.expected, a.Status)
			if tt.expected == AvailableAt {
				assert.True(t, a.At.Equal(tt.expectedAt), "at %s", a.At)
			}
		})
	}
}

func TestSortIntervals_FullInstantComparison(t *testing.T) {
	// An event just after midnight sorts before a late-evening event from the
	// previous day, even though its hour-of-day is smaller.
	late := BusyInterval{
		Start: time.Date(2024, 6, 10, 23, 0, 0, 0, london),
		End:   time.Date(2024, 6, 10, 23, 30, 0, 0, london),
	}
	afterMidnight := BusyInterval{
		Start: time.Date(2024, 6, 11, 0, 15, 0, 0, london),
		End:   time.Date(2024, 6, 11, 1, 0, 0, 0, london),
	}

	sorted := SortIntervals([]BusyInterval{afterMidnight, late})
	assert.True(t, sorted[0].Start.Equal(late.Start))
	assert.True(t, sorted[1].Start.Equal(afterMidnight.Start))
}

func TestPassesStatus_Partition(t *testing.T) {
	windows := []TimeWindow{allDayWindow(), exactWindow(12), exactWindow(14)}
	busySets := [][]BusyInterval{nil, {busyAt(13, 14)}, {busyAt(9, 18)}}

	for _, window := range windows {
		for _, busy := range busySets {
			a := Classify(window, busy)

			free := PassesStatus(rooms.StatusFree, a)
			booked := PassesStatus(rooms.StatusBusy, a)

			// Every room falls into exactly one of FREE/BUSY, and ALL always
			// passes.
			assert.NotEqual(t, free, booked)
			assert.True(t, PassesStatus(rooms.StatusAll, a))
		}
	}
}
