package fulfillment

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/ralfmy/itv-roombot/dialogflow"
	"github.com/ralfmy/itv-roombot/rooms"
	"github.com/ralfmy/itv-roombot/schedule"
)

// Context names round-tripped through the dialogue platform.
const (
	ctxSearch     = "searchrooms-followup"
	ctxRoomStatus = "roomstatus-followup"
	ctxBooking    = "bookroom-followup"
)

// pageSize caps how many rooms a single reply lists.
const pageSize = 20

// SearchRooms finds rooms matching the spoken criteria over the requested
// time window and returns the first page.
func (s *Service) SearchRooms(ctx context.Context, req *dialogflow.WebhookRequest) (*Result, error) {
	p := req.QueryResult.Parameters

	window, err := schedule.Resolve(p.Date("date"), p.Time("time"), p.Period("time-period"), s.now().In(s.loc))
	if err != nil {
		s.log.Warn("unusable time window", "error", err.Error())
		return &Result{Kind: KindText, Text: "I couldn't make sense of that time. Try something like \"between 2pm and 3pm\"."}, nil
	}

	criteria := rooms.FilterCriteria{
		Status:   statusFromParam(p.String("room-status")),
		Features: p.StringList("feature"),
		Floor:    p.String("floor"),
	}
	if n, ok := p.Number("number"); ok {
		criteria.MinCapacity = int64(n)
	}

	return s.searchPage(ctx, req, s.building(p), window, criteria, 0)
}

// SearchRoomsMore returns the next page of an earlier search. The criteria
// and window travel in an output context rather than a server-side session,
// so the search is re-run against fresh availability.
func (s *Service) SearchRoomsMore(ctx context.Context, req *dialogflow.WebhookRequest) (*Result, error) {
	c := req.Context(ctxSearch)
	if c == nil {
		return &Result{Kind: KindText, Text: "I've lost track of that search. What kind of room are you after?"}, nil
	}

	building, window, criteria, offset, err := decodeSearch(c.Parameters)
	if err != nil {
		s.log.Warn("decoding search context", "error", err.Error())
		return &Result{Kind: KindText, Text: "I've lost track of that search. What kind of room are you after?"}, nil
	}

	return s.searchPage(ctx, req, building, window, criteria, offset)
}

func (s *Service) searchPage(ctx context.Context, req *dialogflow.WebhookRequest, building string, window schedule.TimeWindow, criteria rooms.FilterCriteria, offset int) (*Result, error) {
	all, err := s.dir.ListRooms(ctx, building)
	if err != nil {
		return nil, err
	}

	busy, err := s.prober.Probe(ctx, window, all)
	if err != nil {
		return nil, err
	}

	var matches []RoomSummary
	for _, room := range all {
		if !rooms.Matches(room, criteria) {
			continue
		}
		avail := schedule.Classify(window, busy[room.Email])
		if !schedule.PassesStatus(criteria.Status, avail) {
			continue
		}
		matches = append(matches, RoomSummary{Room: room, Availability: avail, Window: window})
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].Room.Name < matches[j].Room.Name })

	if len(matches) == 0 {
		return &Result{
			Kind:        KindText,
			Text:        "I couldn't find any rooms matching that. Try loosening the requirements?",
			Suggestions: []string{"Find me a free room"},
		}, nil
	}
	if offset >= len(matches) {
		return &Result{Kind: KindText, Text: "That's all the rooms I have."}, nil
	}

	end := offset + pageSize
	if end > len(matches) {
		end = len(matches)
	}
	page := matches[offset:end]
	hasMore := end < len(matches)

	result := &Result{
		Kind:    KindRooms,
		Rooms:   page,
		Text:    searchText(matches, page, window, offset),
		HasMore: hasMore,
	}
	if hasMore {
		result.Text += fmt.Sprintf("\nThere are %d more. Want to see them?", len(matches)-end)
		result.Suggestions = []string{"Yes", "No"}
		result.Contexts = append(result.Contexts, req.NewContext(ctxSearch, 2, encodeSearch(building, window, criteria, end)))
	}
	return result, nil
}

func searchText(matches, page []RoomSummary, window schedule.TimeWindow, offset int) string {
	var b strings.Builder
	if offset == 0 {
		fmt.Fprintf(&b, "I found %d %s %s:", len(matches), pluralRooms(len(matches)), windowToString(window))
	} else {
		b.WriteString("Here are some more:")
	}
	for _, m := range page {
		fmt.Fprintf(&b, "\n• %s %s", m.Room.Name, availabilityToString(m.Availability))
	}
	return b.String()
}

func pluralRooms(n int) string {
	if n == 1 {
		return "room"
	}
	return "rooms"
}

// RoomStatus answers "is <room> free <when>" and remembers the room so a
// follow-up "yes" can book it.
func (s *Service) RoomStatus(ctx context.Context, req *dialogflow.WebhookRequest) (*Result, error) {
	p := req.QueryResult.Parameters
	name := p.String("room")

	room, err := s.findRoom(ctx, s.building(p), name)
	if err != nil {
		return s.roomNotFound(name), nil
	}

	window, err := schedule.Resolve(p.Date("date"), p.Time("time"), p.Period("time-period"), s.now().In(s.loc))
	if err != nil {
		s.log.Warn("unusable time window", "error", err.Error())
		return &Result{Kind: KindText, Text: "I couldn't make sense of that time. Try something like \"at 2pm\" or \"tomorrow\"."}, nil
	}

	busy, err := s.prober.Probe(ctx, window, []rooms.Room{*room})
	if err != nil {
		return nil, err
	}
	avail := schedule.Classify(window, busy[room.Email])

	events, err := s.cal.ListEvents(ctx, room.Email, window.Start, window.End)
	if err != nil {
		s.log.Error("listing events", err, "room", room.Name)
		events = nil
	}

	summary := &RoomSummary{Room: *room, Availability: avail, Window: window, Events: confirmedOnly(events)}
	result := &Result{
		Kind: KindRoomStatus,
		Text: fmt.Sprintf("%s %s %s.", room.Name, availabilityToString(avail), windowToString(window)),
		Room: summary,
	}

	if avail.Status != schedule.Booked {
		result.Text += " Would you like to book it?"
		result.Suggestions = []string{"Yes", "No"}
		result.Contexts = append(result.Contexts, req.NewContext(ctxRoomStatus, 2, dialogflow.Params{
			"room": room.Name,
			"date": window.Date,
		}))
	}
	return result, nil
}

// RoomStatusBook handles "yes" after a status answer by seeding the booking
// flow with the remembered room and date.
func (s *Service) RoomStatusBook(ctx context.Context, req *dialogflow.WebhookRequest) (*Result, error) {
	c := req.Context(ctxRoomStatus)
	if c == nil {
		return &Result{Kind: KindText, Text: "Which room would you like to book?"}, nil
	}

	breq := bookingFromParams(c.Parameters)
	return s.promptOrConfirm(req, breq), nil
}

func statusFromParam(v string) rooms.StatusFilter {
	switch strings.ToLower(v) {
	case "free", "available", "empty":
		return rooms.StatusFree
	case "busy", "booked", "taken", "occupied":
		return rooms.StatusBusy
	default:
		return rooms.StatusAll
	}
}

// encodeSearch flattens the building, window, criteria and paging offset into
// context parameters so the next turn can rebuild the exact same search.
func encodeSearch(building string, window schedule.TimeWindow, criteria rooms.FilterCriteria, offset int) dialogflow.Params {
	features := make([]interface{}, 0, len(criteria.Features))
	for _, f := range criteria.Features {
		features = append(features, f)
	}
	return dialogflow.Params{
		"building":    building,
		"windowDate":  window.Date,
		"windowStart": window.Start.Format(time.RFC3339),
		"windowEnd":   window.End.Format(time.RFC3339),
		"windowMode":  float64(window.Mode),
		"status":      float64(criteria.Status),
		"feature":     features,
		"capacity":    float64(criteria.MinCapacity),
		"floor":       criteria.Floor,
		"offset":      float64(offset),
	}
}

func decodeSearch(p dialogflow.Params) (string, schedule.TimeWindow, rooms.FilterCriteria, int, error) {
	start, err := time.Parse(time.RFC3339, p.String("windowStart"))
	if err != nil {
		return "", schedule.TimeWindow{}, rooms.FilterCriteria{}, 0, err
	}
	end, err := time.Parse(time.RFC3339, p.String("windowEnd"))
	if err != nil {
		return "", schedule.TimeWindow{}, rooms.FilterCriteria{}, 0, err
	}

	mode, _ := p.Number("windowMode")
	window := schedule.TimeWindow{
		Date:  p.String("windowDate"),
		Start: start,
		End:   end,
		Mode:  schedule.Mode(mode),
	}

	status, _ := p.Number("status")
	capacity, _ := p.Number("capacity")
	criteria := rooms.FilterCriteria{
		Status:      rooms.StatusFilter(status),
		Features:    p.StringList("feature"),
		MinCapacity: int64(capacity),
		Floor:       p.String("floor"),
	}

	offset, _ := p.Number("offset")
	return p.String("building"), window, criteria, int(offset), nil
}
