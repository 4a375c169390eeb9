package workspace

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/oauth2/google"
	admin "google.golang.org/api/admin/directory/v1"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/ralfmy/itv-roombot/config"
	"github.com/ralfmy/itv-roombot/logger"
	"github.com/ralfmy/itv-roombot/otel"
	"github.com/ralfmy/itv-roombot/rooms"
	"github.com/ralfmy/itv-roombot/schedule"
)

var scopes = []string{
	calendar.CalendarScope,
	admin.AdminDirectoryResourceCalendarScope,
}

type googleDirectory struct {
	service    *admin.Service
	customerID string
	logger     logger.Logger
	telemetry  otel.OpenTelemetry
}

type googleCalendar struct {
	service   *calendar.Service
	logger    logger.Logger
	telemetry otel.OpenTelemetry
}

// NewServices builds the Directory and Calendar clients from a service
// account key with domain-wide delegation, impersonating the configured
// admin. telemetry may be nil.
func NewServices(ctx context.Context, cfg *config.WorkspaceConfig, log logger.Logger, telemetry otel.OpenTelemetry) (DirectoryService, CalendarService, error) {
	jwtConfig, err := google.JWTConfigFromJSON([]byte(cfg.CredentialsJSON), scopes...)
	if err != nil {
		return nil, nil, fmt.Errorf("parse service account key: %w", err)
	}
	jwtConfig.Subject = cfg.AdminEmail
	client := jwtConfig.Client(ctx)

	adminService, err := admin.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, nil, fmt.Errorf("create directory service: %w", err)
	}
	calendarService, err := calendar.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, nil, fmt.Errorf("create calendar service: %w", err)
	}

	dir := &googleDirectory{
		service:    adminService,
		customerID: cfg.CustomerID,
		logger:     log,
		telemetry:  telemetry,
	}
	cal := &googleCalendar{
		service:   calendarService,
		logger:    log,
		telemetry: telemetry,
	}
	return dir, cal, nil
}

func (d *googleDirectory) ListRooms(ctx context.Context, building string) ([]rooms.Room, error) {
	d.logger.Debug("listing rooms", "building", building)
	if d.telemetry != nil {
		d.telemetry.RecordWorkspaceCall(ctx, "directory", "resources.calendars.list")
	}

	res, err := d.service.Resources.Calendars.List(d.customerID).
		Query(fmt.Sprintf("buildingId=%q", building)).
		Context(ctx).
		Do()
	if err != nil {
		d.logger.Error("failed to list rooms", err, "building", building)
		return nil, fmt.Errorf("%w: list rooms: %v", ErrProvider, err)
	}

	list := make([]rooms.Room, 0, len(res.Items))
	for _, item := range res.Items {
		list = append(list, rooms.Room{
			ResourceName:  item.ResourceName,
			Name:          item.UserVisibleDescription,
			GeneratedName: item.GeneratedResourceName,
			Email:         item.ResourceEmail,
			Capacity:      item.Capacity,
			Floor:         item.FloorName,
			Section:       item.FloorSection,
			Features:      featureNames(item.FeatureInstances),
		})
	}

	d.logger.Debug("rooms listed", "building", building, "count", len(list))
	return list, nil
}

// featureNames extracts feature names from the untyped featureInstances blob
// the directory API returns.
func featureNames(instances interface{}) []string {
	if instances == nil {
		return nil
	}
	raw, err := json.Marshal(instances)
	if err != nil {
		return nil
	}
	var decoded []struct {
		Feature struct {
			Name string `json:"name"`
		} `json:"feature"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil
	}
	names := make([]string, 0, len(decoded))
	for _, instance := range decoded {
		if instance.Feature.Name != "" {
			names = append(names, instance.Feature.Name)
		}
	}
	return names
}

func (c *googleCalendar) FreeBusy(ctx context.Context, start, end time.Time, emails []string) (map[string][]schedule.BusyInterval, error) {
	c.logger.Debug("free/busy query", "items", len(emails), "start", start, "end", end)
	if c.telemetry != nil {
		c.telemetry.RecordWorkspaceCall(ctx, "calendar", "freebusy.query")
	}

	items := make([]*calendar.FreeBusyRequestItem, 0, len(emails))
	for _, email := range emails {
		items = append(items, &calendar.FreeBusyRequestItem{Id: email})
	}

	res, err := c.service.Freebusy.Query(&calendar.FreeBusyRequest{
		TimeMin:              start.Format(time.RFC3339),
		TimeMax:              end.Format(time.RFC3339),
		CalendarExpansionMax: 50,
		Items:                items,
	}).Context(ctx).Do()
	if err != nil {
		c.logger.Error("free/busy query failed", err)
		return nil, fmt.Errorf("%w: freebusy: %v", ErrProvider, err)
	}

	busy := make(map[string][]schedule.BusyInterval, len(res.Calendars))
	for email, cal := range res.Calendars {
		intervals := make([]schedule.BusyInterval, 0, len(cal.Busy))
		for _, period := range cal.Busy {
			intervalStart, err := time.Parse(time.RFC3339, period.Start)
			if err != nil {
				return nil, fmt.Errorf("%w: busy start %q: %v", ErrProvider, period.Start, err)
			}
			intervalEnd, err := time.Parse(time.RFC3339, period.End)
			if err != nil {
				return nil, fmt.Errorf("%w: busy end %q: %v", ErrProvider, period.End, err)
			}
			intervals = append(intervals, schedule.BusyInterval{Start: intervalStart, End: intervalEnd})
		}
		busy[email] = intervals
	}
	return busy, nil
}

func (c *googleCalendar) ListEvents(ctx context.Context, calendarID string, start, end time.Time) ([]Event, error) {
	c.logger.Debug("listing events", "calendarID", calendarID, "start", start, "end", end)
	if c.telemetry != nil {
		c.telemetry.RecordWorkspaceCall(ctx, "calendar", "events.list")
	}

	res, err := c.service.Events.List(calendarID).
		TimeMin(start.Format(time.RFC3339)).
		TimeMax(end.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		c.logger.Error("failed to list events", err, "calendarID", calendarID)
		return nil, fmt.Errorf("%w: list events: %v", ErrProvider, err)
	}

	events := make([]Event, 0, len(res.Items))
	for _, item := range res.Items {
		event, err := fromAPIEvent(item)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, nil
}

func (c *googleCalendar) InsertEvent(ctx context.Context, calendarID string, event Event) (string, error) {
	c.logger.Debug("inserting event", "calendarID", calendarID, "summary", event.Summary)
	if c.telemetry != nil {
		c.telemetry.RecordWorkspaceCall(ctx, "calendar", "events.insert")
	}

	attendees := make([]*calendar.EventAttendee, 0, len(event.Attendees))
	for _, a := range event.Attendees {
		attendees = append(attendees, &calendar.EventAttendee{
			Email:          a.Email,
			DisplayName:    a.DisplayName,
			Organizer:      a.Organizer,
			Resource:       a.Resource,
			ResponseStatus: a.ResponseStatus,
		})
	}

	inserted, err := c.service.Events.Insert(calendarID, &calendar.Event{
		Summary:   event.Summary,
		Location:  event.Location,
		Start:     &calendar.EventDateTime{DateTime: event.Start.Format(time.RFC3339)},
		End:       &calendar.EventDateTime{DateTime: event.End.Format(time.RFC3339)},
		Creator:   &calendar.EventCreator{Email: event.Creator.Email},
		Organizer: &calendar.EventOrganizer{Email: event.Organizer.Email},
		Attendees: attendees,
	}).Context(ctx).Do()
	if err != nil {
		c.logger.Error("failed to insert event", err, "calendarID", calendarID, "summary", event.Summary)
		return "", fmt.Errorf("%w: insert event: %v", ErrProvider, err)
	}

	c.logger.Info("event created", "calendarID", calendarID, "eventID", inserted.Id)
	return inserted.Id, nil
}

func (c *googleCalendar) UpdateEventColor(ctx context.Context, calendarID, eventID, colorID string) error {
	c.logger.Debug("updating event color", "calendarID", calendarID, "eventID", eventID, "colorID", colorID)
	if c.telemetry != nil {
		c.telemetry.RecordWorkspaceCall(ctx, "calendar", "events.patch")
	}

	_, err := c.service.Events.Patch(calendarID, eventID, &calendar.Event{ColorId: colorID}).
		Context(ctx).
		Do()
	if err != nil {
		c.logger.Error("failed to update event color", err, "eventID", eventID)
		return fmt.Errorf("%w: update event color: %v", ErrProvider, err)
	}
	return nil
}

func fromAPIEvent(item *calendar.Event) (Event, error) {
	event := Event{
		ID:      item.Id,
		Summary: item.Summary,
		Status:  item.Status,
		ColorID: item.ColorId,
	}
	if item.Location != "" {
		event.Location = item.Location
	}
	if item.Organizer != nil {
		event.Organizer = Person{Email: item.Organizer.Email, DisplayName: item.Organizer.DisplayName}
	}
	if item.Creator != nil {
		event.Creator = Person{Email: item.Creator.Email, DisplayName: item.Creator.DisplayName}
	}
	if item.Start != nil && item.Start.DateTime != "" {
		start, err := time.Parse(time.RFC3339, item.Start.DateTime)
		if err != nil {
			return Event{}, fmt.Errorf("%w: event start %q: %v", ErrProvider, item.Start.DateTime, err)
		}
		event.Start = start
	}
	if item.End != nil && item.End.DateTime != "" {
		end, err := time.Parse(time.RFC3339, item.End.DateTime)
		if err != nil {
			return Event{}, fmt.Errorf("%w: event end %q: %v", ErrProvider, item.End.DateTime, err)
		}
		event.End = end
	}
	return event, nil
}
