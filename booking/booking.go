// Package booking assembles a room booking across dialogue turns and turns it
// into a conflict-checked calendar event.
package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ralfmy/itv-roombot/rooms"
	"github.com/ralfmy/itv-roombot/schedule"
	"github.com/ralfmy/itv-roombot/workspace"
)

var (
	// ErrConflict means the room is already booked in the requested slot.
	// A normal branch, not a defect.
	ErrConflict = errors.New("room already booked")
	// ErrInvalidInput marks a request field that cannot be interpreted.
	ErrInvalidInput = errors.New("invalid booking input")
)

// Duration units accepted from the dialogue platform.
const (
	UnitMinutes = "min"
	UnitHours   = "h"
)

// Duration is a booking length as supplied by the NLU slot.
type Duration struct {
	Amount float64
	Unit   string
}

// Request is a booking assembled incrementally across a multi-turn dialogue.
// It round-trips through the caller's session context between turns and is
// discarded after insertion.
type Request struct {
	RoomName       string
	Date           string
	Time           string
	Duration       *Duration
	Title          string
	OrganizerName  string
	OrganizerEmail string
}

// Field completion order for prompting: room, date, time, duration, title.
const (
	PromptRoom     = "room"
	PromptDate     = "date"
	PromptTime     = "time"
	PromptDuration = "duration"
	PromptTitle    = "title"
)

// NextPrompt names the first missing field, or "" when the request is ready.
func (r *Request) NextPrompt() string {
	switch {
	case r.RoomName == "":
		return PromptRoom
	case r.Date == "":
		return PromptDate
	case r.Time == "":
		return PromptTime
	case r.Duration == nil:
		return PromptDuration
	case r.Title == "":
		return PromptTitle
	default:
		return ""
	}
}

// Ready is the terminal predicate: all fields collected, safe to validate and
// insert.
func (r *Request) Ready() bool {
	return r.NextPrompt() == ""
}

// Slot computes the booking's [start, end) from date, time and duration.
// Only minute and hour units are supported.
func (r *Request) Slot(loc *time.Location) (start, end time.Time, err error) {
	start, err = time.ParseInLocation("2006-01-02T15:04:05", r.Date+"T"+r.Time, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: date %q time %q", ErrInvalidInput, r.Date, r.Time)
	}
	if r.Duration == nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: missing duration", ErrInvalidInput)
	}

	switch r.Duration.Unit {
	case UnitMinutes:
		end = start.Add(time.Duration(r.Duration.Amount * float64(time.Minute)))
	case UnitHours:
		end = start.Add(time.Duration(r.Duration.Amount * float64(time.Hour)))
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("%w: duration unit %q", ErrInvalidInput, r.Duration.Unit)
	}
	return start, end, nil
}

// ProbeFunc re-checks free/busy for a single room over [start, end).
type ProbeFunc func(ctx context.Context, start, end time.Time, email string) ([]schedule.BusyInterval, error)

// InsertFunc creates the calendar event and returns its id.
type InsertFunc func(ctx context.Context, event workspace.Event) (string, error)

// Book validates the request against a fresh free/busy probe and inserts the
// event. The probe is mandatory: availability may have changed since the
// dialogue started. Check-then-insert is best effort - the provider offers no
// reservation lock, so a booking landing between the two calls can still
// double-book.
func Book(ctx context.Context, req *Request, room rooms.Room, loc *time.Location, probe ProbeFunc, insert InsertFunc) (string, error) {
	if !req.Ready() {
		return "", fmt.Errorf("%w: missing %s", ErrInvalidInput, req.NextPrompt())
	}

	start, end, err := req.Slot(loc)
	if err != nil {
		return "", err
	}

	busy, err := probe(ctx, start, end, room.Email)
	if err != nil {
		return "", err
	}
	if len(busy) > 0 {
		return "", fmt.Errorf("%w: %s from %s to %s", ErrConflict, room.Name,
			start.Format("15:04"), end.Format("15:04"))
	}

	return insert(ctx, BuildEvent(req, room, start, end))
}

// BuildEvent constructs the calendar event payload: requester as organizer,
// room as an accepted resource attendee.
func BuildEvent(req *Request, room rooms.Room, start, end time.Time) workspace.Event {
	return workspace.Event{
		Summary:   req.Title,
		Location:  room.GeneratedName,
		Start:     start,
		End:       end,
		Creator:   workspace.Person{Email: req.OrganizerEmail},
		Organizer: workspace.Person{Email: req.OrganizerEmail},
		Attendees: []workspace.Attendee{
			{
				Email:          req.OrganizerEmail,
				Organizer:      true,
				ResponseStatus: "accepted",
			},
			{
				Email:          room.Email,
				DisplayName:    room.GeneratedName,
				Resource:       true,
				ResponseStatus: "accepted",
			},
		},
	}
}
