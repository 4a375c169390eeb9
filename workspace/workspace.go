// Package workspace wraps the Google Admin Directory and Calendar APIs behind
// interfaces the fulfillment layer can depend on. All upstream failures are
// wrapped with ErrProvider; the caller decides the user-facing message.
package workspace

import (
	"context"
	"errors"
	"time"

	"github.com/ralfmy/itv-roombot/rooms"
	"github.com/ralfmy/itv-roombot/schedule"
)

// ErrProvider marks any upstream Workspace API failure (network, auth,
// quota). Calls are not retried.
var ErrProvider = errors.New("workspace provider error")

// Person is an event participant reference.
type Person struct {
	Email       string
	DisplayName string
}

// Attendee is an event attendee entry, covering both people and room
// resources.
type Attendee struct {
	Email          string
	DisplayName    string
	Organizer      bool
	Resource       bool
	ResponseStatus string
}

// Event is the platform-neutral calendar event shape used across the
// fulfillment handlers.
type Event struct {
	ID        string
	Summary   string
	Location  string
	Status    string
	ColorID   string
	Start     time.Time
	End       time.Time
	Organizer Person
	Creator   Person
	Attendees []Attendee
}

// DirectoryService lists meeting rooms from the resource directory.
//
//go:generate mockgen -source=workspace.go -destination=../tests/mocks/workspace.go -package=mocks
type DirectoryService interface {
	// ListRooms returns the rooms of the building matching the query, as an
	// immutable per-request snapshot.
	ListRooms(ctx context.Context, building string) ([]rooms.Room, error)
}

// CalendarService exposes the calendar operations the assistant needs.
type CalendarService interface {
	// FreeBusy queries busy intervals for at most schedule.FreeBusyMaxItems
	// calendar identifiers.
	FreeBusy(ctx context.Context, start, end time.Time, emails []string) (map[string][]schedule.BusyInterval, error)
	// ListEvents returns the events of a calendar within [start, end].
	ListEvents(ctx context.Context, calendarID string, start, end time.Time) ([]Event, error)
	// InsertEvent creates an event on the given calendar and returns its id.
	InsertEvent(ctx context.Context, calendarID string, event Event) (string, error)
	// UpdateEventColor sets the color of an existing event.
	UpdateEventColor(ctx context.Context, calendarID, eventID, colorID string) error
}
