// Package fulfillment implements the intent handlers behind the webhook. Each
// handler produces a platform-neutral Result that the front-end renderers turn
// into Actions, Hangouts or Slack payloads.
package fulfillment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ralfmy/itv-roombot/config"
	"github.com/ralfmy/itv-roombot/dialogflow"
	"github.com/ralfmy/itv-roombot/giphy"
	"github.com/ralfmy/itv-roombot/logger"
	"github.com/ralfmy/itv-roombot/occupancy"
	"github.com/ralfmy/itv-roombot/otel"
	"github.com/ralfmy/itv-roombot/rooms"
	"github.com/ralfmy/itv-roombot/schedule"
	"github.com/ralfmy/itv-roombot/workspace"
)

// Kind tells the renderers which shape of Result they are looking at.
type Kind string

const (
	KindText           Kind = "text"
	KindWelcome        Kind = "welcome"
	KindHelp           Kind = "help"
	KindRooms          Kind = "rooms"
	KindRoomStatus     Kind = "room_status"
	KindBookingPrompt  Kind = "booking_prompt"
	KindBookingConfirm Kind = "booking_confirm"
	KindBookingDone    Kind = "booking_done"
	KindGif            Kind = "gif"
)

// RoomSummary pairs a room with its availability over the queried window.
type RoomSummary struct {
	Room         rooms.Room
	Availability schedule.Availability
	Window       schedule.TimeWindow
	Events       []workspace.Event
}

// Result is the platform-neutral outcome of an intent.
type Result struct {
	Kind        Kind
	Text        string
	Rooms       []RoomSummary
	Room        *RoomSummary
	GifURL      string
	Suggestions []string
	Contexts    []dialogflow.Context
	HasMore     bool
}

// Caller identifies the person talking to the bot. The webhook layer fills it
// from the front-end payload before dispatching.
type Caller struct {
	Name  string
	Email string
}

// Service holds the dependencies shared by every intent handler.
type Service struct {
	cfg     *config.Config
	log     logger.Logger
	tel     otel.OpenTelemetry
	dir     workspace.DirectoryService
	cal     workspace.CalendarService
	sensors occupancy.SensorStore
	gifs    *giphy.Client
	prober  *schedule.Prober
	loc     *time.Location
	now     func() time.Time
}

// NewService wires the intent handlers. Telemetry may be nil when disabled;
// the clock is injectable for tests.
func NewService(
	cfg *config.Config,
	log logger.Logger,
	tel otel.OpenTelemetry,
	dir workspace.DirectoryService,
	cal workspace.CalendarService,
	sensors occupancy.SensorStore,
	gifs *giphy.Client,
) (*Service, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	return &Service{
		cfg:     cfg,
		log:     log,
		tel:     tel,
		dir:     dir,
		cal:     cal,
		sensors: sensors,
		gifs:    gifs,
		prober: schedule.NewProber(func(ctx context.Context, start, end time.Time, emails []string) (map[string][]schedule.BusyInterval, error) {
			return cal.FreeBusy(ctx, start, end, emails)
		}),
		loc: loc,
		now: time.Now,
	}, nil
}

// Handle dispatches the request to the handler for its intent.
func (s *Service) Handle(ctx context.Context, req *dialogflow.WebhookRequest, caller Caller) (*Result, error) {
	intent := req.QueryResult.Intent.DisplayName
	s.log.Debug("handling intent", "intent", intent, "source", req.Source())

	switch intent {
	case dialogflow.IntentWelcome:
		return s.Welcome(), nil
	case dialogflow.IntentHelp:
		return s.Help(), nil
	case dialogflow.IntentDog:
		return s.Dog(ctx)
	case dialogflow.IntentSearchRooms:
		return s.SearchRooms(ctx, req)
	case dialogflow.IntentSearchRoomsMore:
		return s.SearchRoomsMore(ctx, req)
	case dialogflow.IntentRoomStatus:
		return s.RoomStatus(ctx, req)
	case dialogflow.IntentRoomStatusBook:
		return s.RoomStatusBook(ctx, req)
	case dialogflow.IntentRoomFeature:
		return s.RoomFeature(ctx, req)
	case dialogflow.IntentRoomCapacity:
		return s.RoomCapacity(ctx, req)
	case dialogflow.IntentRoomOccupancy:
		return s.RoomOccupancy(ctx, req)
	case dialogflow.IntentBookRoom:
		return s.BookRoom(ctx, req)
	case dialogflow.IntentBookRoomConfirm:
		return s.BookRoomConfirm(ctx, req, caller)
	case dialogflow.IntentBookRoomPermission:
		return s.BookRoomPermission(), nil
	case dialogflow.IntentFallback:
		return s.Fallback(), nil
	default:
		s.log.Warn("unknown intent", "intent", intent)
		return s.Fallback(), nil
	}
}

func (s *Service) Welcome() *Result {
	return &Result{
		Kind: KindWelcome,
		Text: "Hi, I'm RoomBot! I can tell you about meeting rooms in the office, find you a free one, and book it for you. What can I do for you?",
		Suggestions: []string{
			"Find me a free room",
			"Help",
		},
	}
}

func (s *Service) Help() *Result {
	return &Result{
		Kind: KindHelp,
		Text: strings.Join([]string{
			"Here's what I can do:",
			"• Find rooms - \"find me a free room with a TV for 6 people\"",
			"• Room status - \"is Fawlty Towers free at 2pm?\"",
			"• Room details - \"what's in Abbey Road?\", \"how big is Batcave?\"",
			"• Occupancy - \"is anyone in Walford East right now?\"",
			"• Booking - \"book Fawlty Towers tomorrow at 10 for 30 minutes\"",
		}, "\n"),
		Suggestions: []string{"Find me a free room", "Is Fawlty Towers free?"},
	}
}

func (s *Service) Fallback() *Result {
	return &Result{
		Kind:        KindText,
		Text:        "Sorry, I didn't get that. Try asking for help to see what I can do.",
		Suggestions: []string{"Help"},
	}
}

func (s *Service) Dog(ctx context.Context) (*Result, error) {
	url, err := s.gifs.Random(ctx)
	if err != nil {
		s.log.Error("fetching gif", err)
		return &Result{Kind: KindText, Text: "The dogs are asleep right now. Try again later!"}, nil
	}
	return &Result{Kind: KindGif, Text: "Woof!", GifURL: url}, nil
}

func (s *Service) BookRoomPermission() *Result {
	return &Result{
		Kind: KindText,
		Text: "To book a room on your behalf I need your name and email address. Is that okay?",
		Suggestions: []string{
			"Yes",
			"No",
		},
	}
}

// RoomFeature answers "what's in <room>".
func (s *Service) RoomFeature(ctx context.Context, req *dialogflow.WebhookRequest) (*Result, error) {
	p := req.QueryResult.Parameters
	room, err := s.findRoom(ctx, s.building(p), p.String("room"))
	if err != nil {
		return s.roomNotFound(p.String("room")), nil
	}
	text := fmt.Sprintf("%s has no special features.", room.Name)
	if len(room.Features) > 0 {
		text = fmt.Sprintf("%s has %s.", room.Name, formatFeatures(room.Features))
	}
	return &Result{
		Kind: KindRoomStatus,
		Text: text,
		Room: &RoomSummary{Room: *room},
	}, nil
}

// RoomCapacity answers "how big is <room>".
func (s *Service) RoomCapacity(ctx context.Context, req *dialogflow.WebhookRequest) (*Result, error) {
	p := req.QueryResult.Parameters
	room, err := s.findRoom(ctx, s.building(p), p.String("room"))
	if err != nil {
		return s.roomNotFound(p.String("room")), nil
	}
	return &Result{
		Kind: KindRoomStatus,
		Text: fmt.Sprintf("%s seats %d people.", room.Name, room.Capacity),
		Room: &RoomSummary{Room: *room},
	}, nil
}

// RoomOccupancy answers "is anyone in <room>" from recent sensor readings.
func (s *Service) RoomOccupancy(ctx context.Context, req *dialogflow.WebhookRequest) (*Result, error) {
	name := req.QueryResult.Parameters.String("room")
	room, err := s.findRoom(ctx, s.building(req.QueryResult.Parameters), name)
	if err != nil {
		return s.roomNotFound(name), nil
	}

	since := s.now().In(s.loc).Add(-occupancy.LookbackWindow)
	readings, err := s.sensors.ReadingsSince(ctx, room.Name, since)
	if err != nil {
		s.log.Error("reading sensors", err, "room", room.Name)
		return &Result{Kind: KindText, Text: fmt.Sprintf("I can't reach the sensors in %s right now.", room.Name)}, nil
	}

	text := fmt.Sprintf("%s looks empty right now.", room.Name)
	if occupancy.Occupied(readings) {
		text = fmt.Sprintf("It looks like there's someone in %s right now.", room.Name)
	}
	return &Result{
		Kind: KindRoomStatus,
		Text: text,
		Room: &RoomSummary{Room: *room},
	}, nil
}

// building resolves the optional office slot to a directory building query.
// Office 0 is the default site.
func (s *Service) building(p dialogflow.Params) string {
	if n, ok := p.Number("office"); ok {
		return s.cfg.Building(int(n))
	}
	return s.cfg.Workspace.PrimaryBuilding
}

// findRoom resolves a spoken room name against a building's directory
// listing.
func (s *Service) findRoom(ctx context.Context, building, name string) (*rooms.Room, error) {
	if name == "" {
		return nil, rooms.ErrNotFound
	}
	all, err := s.dir.ListRooms(ctx, building)
	if err != nil {
		return nil, err
	}
	room, err := rooms.FindByName(all, name)
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (s *Service) roomNotFound(name string) *Result {
	text := "Which room do you mean?"
	if name != "" {
		text = fmt.Sprintf("I don't know a room called %s. Which room do you mean?", name)
	}
	return &Result{Kind: KindText, Text: text}
}
