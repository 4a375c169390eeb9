package rooms

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when a room name has no match in the directory
// snapshot.
var ErrNotFound = errors.New("room not found")

// Room is a bookable meeting room as described by the resource directory.
// Snapshots are fetched per request and never persisted.
type Room struct {
	// ResourceName is the short identifier users refer to, e.g. "3.2".
	ResourceName string
	// Name is the user-visible description shown in replies.
	Name string
	// GeneratedName is the fully qualified resource name used as the event
	// location string.
	GeneratedName string
	// Email is the calendar identifier of the room.
	Email string

	Capacity int64
	Floor    string
	Section  string
	Features []string
}

// FindByName returns the room whose resource name or display name matches,
// ignoring case. Spoken names arrive with arbitrary capitalisation.
func FindByName(list []Room, name string) (Room, error) {
	for _, r := range list {
		if strings.EqualFold(r.ResourceName, name) || strings.EqualFold(r.Name, name) {
			return r, nil
		}
	}
	return Room{}, ErrNotFound
}

// Emails returns the calendar identifiers of all rooms, in input order.
func Emails(list []Room) []string {
	emails := make([]string, 0, len(list))
	for _, r := range list {
		emails = append(emails, r.Email)
	}
	return emails
}
