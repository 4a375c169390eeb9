package occupancy

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/ralfmy/itv-roombot/rooms"
	"github.com/ralfmy/itv-roombot/workspace"
)

// Calendar colors used to mark the current event.
const (
	ColorOccupied = "6"
	ColorEmpty    = "2"
)

// LookbackWindow is how far back sensor samples are considered when judging
// the current occupancy of a room.
const LookbackWindow = 15 * time.Minute

// Recolorer marks the current event of a room with a color reflecting the
// sensor-inferred occupancy, so a glance at the calendar shows whether a
// booked room is actually in use.
type Recolorer struct {
	Directory workspace.DirectoryService
	Calendar  workspace.CalendarService
	Sensors   SensorStore
	// CalendarID is the calendar the event is updated on (the admin account
	// owns the room events).
	CalendarID string
}

// Recolor finds the in-progress confirmed event of the named room and sets
// its color from the latest sensor readings. No current event is not an
// error; there is simply nothing to mark.
func (rc *Recolorer) Recolor(ctx context.Context, building, roomName string, now time.Time) error {
	list, err := rc.Directory.ListRooms(ctx, building)
	if err != nil {
		return err
	}
	room, err := rooms.FindByName(list, roomName)
	if err != nil {
		return err
	}

	since := now.Add(-LookbackWindow)
	events, err := rc.Calendar.ListEvents(ctx, room.Email, since, now)
	if err != nil {
		return err
	}

	current := currentEvent(events, now)
	if current == nil {
		return nil
	}

	readings, err := rc.Sensors.ReadingsSince(ctx, roomName, since)
	if err != nil {
		return err
	}
	if len(readings) == 0 {
		return fmt.Errorf("no sensor data for room %s", roomName)
	}

	color := ColorEmpty
	if occupied(readings, recolorMotionThreshold) {
		color = ColorOccupied
	}
	return rc.Calendar.UpdateEventColor(ctx, rc.CalendarID, current.ID, color)
}

// currentEvent returns the latest confirmed event still in progress at now.
func currentEvent(events []workspace.Event, now time.Time) *workspace.Event {
	confirmed := make([]workspace.Event, 0, len(events))
	for _, e := range events {
		if e.Status == "confirmed" {
			confirmed = append(confirmed, e)
		}
	}
	if len(confirmed) == 0 {
		return nil
	}

	sort.Slice(confirmed, func(i, j int) bool {
		return confirmed[i].Start.After(confirmed[j].Start)
	})
	if confirmed[0].End.After(now) {
		return &confirmed[0]
	}
	return nil
}
