package occupancy_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/ralfmy/itv-roombot/occupancy"
	"github.com/ralfmy/itv-roombot/rooms"
	"github.com/ralfmy/itv-roombot/tests/mocks"
	"github.com/ralfmy/itv-roombot/workspace"
)

var now = time.Date(2024, 6, 10, 14, 10, 0, 0, time.FixedZone("UTC+01:00", 3600))

func newRecolorer(ctrl *gomock.Controller) (*occupancy.Recolorer, *mocks.MockDirectoryService, *mocks.MockCalendarService, *mocks.MockSensorStore) {
	dir := mocks.NewMockDirectoryService(ctrl)
	cal := mocks.NewMockCalendarService(ctrl)
	sensors := mocks.NewMockSensorStore(ctrl)
	rc := &occupancy.Recolorer{
		Directory:  dir,
		Calendar:   cal,
		Sensors:    sensors,
		CalendarID: "admin@example.com",
	}
	return rc, dir, cal, sensors
}

func roomList() []rooms.Room {
	return []rooms.Room{{ResourceName: "7.1", Name: "Fawlty Towers", Email: "fawlty@resource.calendar.google.com"}}
}

func inProgressEvent() workspace.Event {
	return workspace.Event{
		ID:     "evt1",
		Status: "confirmed",
		Start:  now.Add(-10 * time.Minute),
		End:    now.Add(20 * time.Minute),
	}
}

func TestRecolor_MarksOccupied(t *testing.T) {
	ctrl := gomock.NewController(t)
	rc, dir, cal, sensors := newRecolorer(ctrl)

	dir.EXPECT().ListRooms(gomock.Any(), "London Gray's Inn Road").Return(roomList(), nil)
	cal.EXPECT().ListEvents(gomock.Any(), "fawlty@resource.calendar.google.com", gomock.Any(), gomock.Any()).
		Return([]workspace.Event{inProgressEvent()}, nil)
	sensors.EXPECT().ReadingsSince(gomock.Any(), "Fawlty Towers", gomock.Any()).
		Return([]occupancy.Reading{
			{Room: "Fawlty Towers", Temperature: 21, Humidity: 30, Motion: 0},
			{Room: "Fawlty Towers", Temperature: 21, Humidity: 45, Motion: 0},
		}, nil)
	cal.EXPECT().UpdateEventColor(gomock.Any(), "admin@example.com", "evt1", occupancy.ColorOccupied).
		Return(nil)

	err := rc.Recolor(context.Background(), "London Gray's Inn Road", "Fawlty Towers", now)
	assert.NoError(t, err)
}

func TestRecolor_MarksEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	rc, dir, cal, sensors := newRecolorer(ctrl)

	dir.EXPECT().ListRooms(gomock.Any(), gomock.Any()).Return(roomList(), nil)
	cal.EXPECT().ListEvents(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]workspace.Event{inProgressEvent()}, nil)
	sensors.EXPECT().ReadingsSince(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]occupancy.Reading{
			{Room: "Fawlty Towers", Temperature: 21, Humidity: 40, Motion: 0},
			{Room: "Fawlty Towers", Temperature: 21, Humidity: 40, Motion: 1},
		}, nil)
	cal.EXPECT().UpdateEventColor(gomock.Any(), gomock.Any(), "evt1", occupancy.ColorEmpty).
		Return(nil)

	err := rc.Recolor(context.Background(), "London Gray's Inn Road", "Fawlty Towers", now)
	assert.NoError(t, err)
}

func TestRecolor_FewMotionHitsStayEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	rc, dir, cal, sensors := newRecolorer(ctrl)

	// Four motion hits with mild spreads answer an occupancy question as
	// occupied, but recoloring demands more than five.
	readings := []occupancy.Reading{
		{Room: "Fawlty Towers", Temperature: 20, Humidity: 40, Motion: 0},
		{Room: "Fawlty Towers", Temperature: 23, Humidity: 46, Motion: 0},
		{Room: "Fawlty Towers", Temperature: 21, Humidity: 42, Motion: 1},
		{Room: "Fawlty Towers", Temperature: 22, Humidity: 43, Motion: 1},
		{Room: "Fawlty Towers", Temperature: 21, Humidity: 44, Motion: 1},
		{Room: "Fawlty Towers", Temperature: 22, Humidity: 41, Motion: 1},
	}
	assert.True(t, occupancy.Occupied(readings))

	dir.EXPECT().ListRooms(gomock.Any(), gomock.Any()).Return(roomList(), nil)
	cal.EXPECT().ListEvents(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]workspace.Event{inProgressEvent()}, nil)
	sensors.EXPECT().ReadingsSince(gomock.Any(), gomock.Any(), gomock.Any()).Return(readings, nil)
	cal.EXPECT().UpdateEventColor(gomock.Any(), gomock.Any(), "evt1", occupancy.ColorEmpty).
		Return(nil)

	err := rc.Recolor(context.Background(), "London Gray's Inn Road", "Fawlty Towers", now)
	assert.NoError(t, err)
}

func TestRecolor_NoCurrentEventIsNotAnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	rc, dir, cal, _ := newRecolorer(ctrl)

	finished := inProgressEvent()
	finished.Start = now.Add(-2 * time.Hour)
	finished.End = now.Add(-time.Hour)

	dir.EXPECT().ListRooms(gomock.Any(), gomock.Any()).Return(roomList(), nil)
	cal.EXPECT().ListEvents(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]workspace.Event{finished}, nil)

	err := rc.Recolor(context.Background(), "London Gray's Inn Road", "Fawlty Towers", now)
	assert.NoError(t, err)
}

func TestRecolor_NoSensorData(t *testing.T) {
	ctrl := gomock.NewController(t)
	rc, dir, cal, sensors := newRecolorer(ctrl)

	dir.EXPECT().ListRooms(gomock.Any(), gomock.Any()).Return(roomList(), nil)
	cal.EXPECT().ListEvents(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]workspace.Event{inProgressEvent()}, nil)
	sensors.EXPECT().ReadingsSince(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	err := rc.Recolor(context.Background(), "London Gray's Inn Road", "Fawlty Towers", now)
	assert.ErrorContains(t, err, "no sensor data")
}

func TestRecolor_UnknownRoom(t *testing.T) {
	ctrl := gomock.NewController(t)
	rc, dir, _, _ := newRecolorer(ctrl)

	dir.EXPECT().ListRooms(gomock.Any(), gomock.Any()).Return(roomList(), nil)

	err := rc.Recolor(context.Background(), "London Gray's Inn Road", "Narnia", now)
	assert.ErrorIs(t, err, rooms.ErrNotFound)
}
