package schedule

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidInput is returned when a supplied date or time cannot be parsed.
var ErrInvalidInput = errors.New("invalid date or time input")

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02T15:04:05"
)

// Mode distinguishes a query for a specific instant from a whole-day query.
type Mode int

const (
	// ModeExact means a time of day was given or implied ("now", "3pm",
	// "from 3-4pm").
	ModeExact Mode = iota
	// ModeAllDay means only a date was given ("today", "tomorrow") and the
	// window spans the whole day.
	ModeAllDay
)

// TimeWindow is a resolved query window. Start and End carry the fixed
// deployment offset; Start never exceeds End.
type TimeWindow struct {
	Date  string
	Start time.Time
	End   time.Time
	Mode  Mode
}

// Period is a user-supplied time range within a single day, as clock times.
type Period struct {
	Start string
	End   string
}

// Resolve turns the date/time slots handed over by the dialogue platform into
// a concrete window. It is a pure function of its arguments; now supplies both
// the default date and the deployment timezone.
//
// A date with no time resolves to the full day from midnight, regardless of
// the current clock. See DESIGN.md for the policy choice.
func Resolve(date, clockTime string, period *Period, now time.Time) (TimeWindow, error) {
	loc := now.Location()
	if date == "" {
		date = now.In(loc).Format(dateLayout)
	}
	if _, err := time.ParseInLocation(dateLayout, date, loc); err != nil {
		return TimeWindow{}, fmt.Errorf("%w: date %q", ErrInvalidInput, date)
	}

	switch {
	case period != nil:
		start, err := at(date, period.Start, loc)
		if err != nil {
			return TimeWindow{}, err
		}
		end, err := at(date, period.End, loc)
		if err != nil {
			return TimeWindow{}, err
		}
		if end.Before(start) {
			return TimeWindow{}, fmt.Errorf("%w: period ends before it starts", ErrInvalidInput)
		}
		return TimeWindow{Date: date, Start: start, End: end, Mode: ModeExact}, nil

	case clockTime != "":
		start, err := at(date, clockTime, loc)
		if err != nil {
			return TimeWindow{}, err
		}
		end, err := at(date, "23:59:59", loc)
		if err != nil {
			return TimeWindow{}, err
		}
		return TimeWindow{Date: date, Start: start, End: end, Mode: ModeExact}, nil

	default:
		start, err := at(date, "00:00:00", loc)
		if err != nil {
			return TimeWindow{}, err
		}
		end, err := at(date, "23:59:59", loc)
		if err != nil {
			return TimeWindow{}, err
		}
		return TimeWindow{Date: date, Start: start, End: end, Mode: ModeAllDay}, nil
	}
}

func at(date, clock string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(dateTimeLayout, date+"T"+clock, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q %q", ErrInvalidInput, date, clock)
	}
	return t, nil
}
