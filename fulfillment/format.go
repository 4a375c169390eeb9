package fulfillment

import (
	"fmt"
	"strings"
	"time"

	"github.com/ralfmy/itv-roombot/schedule"
	"github.com/ralfmy/itv-roombot/workspace"
)

// timeToString renders a wall-clock time the British way, 24 hour.
func timeToString(t time.Time) string {
	return t.Format("15:04")
}

// dateToString renders "2024-06-10" as "Monday, 10 June".
func dateToString(date string) string {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return d.Format("Monday, 2 January")
}

// windowToString phrases the queried window for a sentence like
// "Fawlty Towers is free <window>".
func windowToString(w schedule.TimeWindow) string {
	day := dateToString(w.Date)
	if w.Mode == schedule.ModeAllDay {
		return fmt.Sprintf("on %s", day)
	}
	if w.End.Hour() == 23 && w.End.Minute() == 59 {
		return fmt.Sprintf("at %s on %s", timeToString(w.Start), day)
	}
	return fmt.Sprintf("between %s and %s on %s", timeToString(w.Start), timeToString(w.End), day)
}

// availabilityToString phrases an availability verdict as a verb clause. The
// queried time itself is phrased by windowToString, so both free statuses read
// the same here.
func availabilityToString(a schedule.Availability) string {
	if a.Status == schedule.Booked {
		return "is booked"
	}
	return "is free"
}

// formatFeatures joins feature names into a spoken list, "a TV, a Whiteboard
// and a Conference Phone".
func formatFeatures(features []string) string {
	named := make([]string, len(features))
	for i, f := range features {
		named[i] = "a " + f
	}
	if len(named) == 1 {
		return named[0]
	}
	return strings.Join(named[:len(named)-1], ", ") + " and " + named[len(named)-1]
}

// NameFromEmail recovers a display name from a first.last company address.
func NameFromEmail(email string) string {
	local, _, found := strings.Cut(email, "@")
	if !found || local == "" {
		return email
	}
	parts := strings.Split(local, ".")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

// confirmedOnly drops cancelled and tentative calendar entries.
func confirmedOnly(events []workspace.Event) []workspace.Event {
	var out []workspace.Event
	for _, e := range events {
		if e.Status == "confirmed" {
			out = append(out, e)
		}
	}
	return out
}
