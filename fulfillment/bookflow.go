package fulfillment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ralfmy/itv-roombot/booking"
	"github.com/ralfmy/itv-roombot/dialogflow"
	"github.com/ralfmy/itv-roombot/schedule"
	"github.com/ralfmy/itv-roombot/workspace"
)

// Spoken prompts for each missing booking field, in collection order.
var bookingPrompts = map[string]string{
	booking.PromptRoom:     "Which room would you like to book?",
	booking.PromptDate:     "What day is the meeting?",
	booking.PromptTime:     "What time does it start?",
	booking.PromptDuration: "How long is it for?",
	booking.PromptTitle:    "What shall I call the meeting?",
}

// BookRoom collects booking slots across turns. Whatever the user supplied
// this turn is merged into the in-progress request carried by the dialogue
// context, then the next missing field is prompted for.
func (s *Service) BookRoom(ctx context.Context, req *dialogflow.WebhookRequest) (*Result, error) {
	breq := &booking.Request{}
	if c := req.Context(ctxBooking); c != nil {
		breq = bookingFromParams(c.Parameters)
	}
	mergeBookingParams(breq, req.QueryResult.Parameters)
	return s.promptOrConfirm(req, breq), nil
}

// BookRoomConfirm handles the final "yes" by re-probing availability and
// inserting the event.
func (s *Service) BookRoomConfirm(ctx context.Context, req *dialogflow.WebhookRequest, caller Caller) (*Result, error) {
	c := req.Context(ctxBooking)
	if c == nil {
		return &Result{Kind: KindText, Text: "I don't have a booking in progress. Which room would you like to book?"}, nil
	}
	breq := bookingFromParams(c.Parameters)
	if !breq.Ready() {
		return s.promptOrConfirm(req, breq), nil
	}

	if caller.Email == "" {
		return s.BookRoomPermission(), nil
	}
	breq.OrganizerName = caller.Name
	breq.OrganizerEmail = caller.Email

	room, err := s.findRoom(ctx, s.cfg.Workspace.PrimaryBuilding, breq.RoomName)
	if err != nil {
		return s.roomNotFound(breq.RoomName), nil
	}

	probe := func(ctx context.Context, start, end time.Time, email string) ([]schedule.BusyInterval, error) {
		busy, err := s.cal.FreeBusy(ctx, start, end, []string{email})
		if err != nil {
			return nil, err
		}
		return busy[email], nil
	}
	insert := func(ctx context.Context, event workspace.Event) (string, error) {
		return s.cal.InsertEvent(ctx, room.Email, event)
	}

	id, err := booking.Book(ctx, breq, *room, s.loc, probe, insert)
	if err != nil {
		if errors.Is(err, booking.ErrConflict) {
			s.log.Info("booking conflict", "room", room.Name, "date", breq.Date, "time", breq.Time)
			if s.tel != nil {
				s.tel.RecordBooking(ctx, room.Name, "conflict")
			}
			return &Result{
				Kind:     KindText,
				Text:     fmt.Sprintf("Sorry, someone grabbed %s before I could book it. Want to try another time?", room.Name),
				Contexts: []dialogflow.Context{req.NewContext(ctxBooking, 0, nil)},
			}, nil
		}
		return nil, err
	}

	s.log.Info("booked room", "room", room.Name, "event_id", id, "organizer", breq.OrganizerEmail)
	if s.tel != nil {
		s.tel.RecordBooking(ctx, room.Name, "booked")
	}
	start, end, _ := breq.Slot(s.loc)
	return &Result{
		Kind: KindBookingDone,
		Text: fmt.Sprintf("Done! %s is yours from %s to %s on %s for \"%s\".",
			room.Name, timeToString(start), timeToString(end), dateToString(breq.Date), breq.Title),
		Room:     &RoomSummary{Room: *room},
		Contexts: []dialogflow.Context{req.NewContext(ctxBooking, 0, nil)},
	}, nil
}

// promptOrConfirm asks for the next missing field, or reads the booking back
// for confirmation once everything is collected. A time slot that does not
// parse is dropped so the user is asked for it again instead of carrying an
// uninterpretable value to the insert step.
func (s *Service) promptOrConfirm(req *dialogflow.WebhookRequest, breq *booking.Request) *Result {
	var startAt time.Time
	if breq.Time != "" {
		var err error
		startAt, err = time.Parse("15:04:05", breq.Time)
		if err != nil {
			s.log.Warn("unusable booking time", "time", breq.Time)
			breq.Time = ""
		}
	}
	keep := req.NewContext(ctxBooking, 5, bookingToParams(breq))

	if prompt := breq.NextPrompt(); prompt != "" {
		return &Result{
			Kind:     KindBookingPrompt,
			Text:     bookingPrompts[prompt],
			Contexts: []dialogflow.Context{keep},
		}
	}

	return &Result{
		Kind: KindBookingConfirm,
		Text: fmt.Sprintf("Booking %s on %s at %s for %s, titled \"%s\". Shall I go ahead?",
			breq.RoomName, dateToString(breq.Date), timeToString(startAt), durationToString(breq.Duration), breq.Title),
		Suggestions: []string{"Yes", "No"},
		Contexts:    []dialogflow.Context{keep},
	}
}

func durationToString(d *booking.Duration) string {
	if d == nil {
		return ""
	}
	unit := "minutes"
	if d.Unit == booking.UnitHours {
		unit = "hours"
		if d.Amount == 1 {
			unit = "hour"
		}
	} else if d.Amount == 1 {
		unit = "minute"
	}
	return fmt.Sprintf("%g %s", d.Amount, unit)
}

// mergeBookingParams overlays this turn's slots onto the in-progress request.
func mergeBookingParams(breq *booking.Request, p dialogflow.Params) {
	if v := p.String("room"); v != "" {
		breq.RoomName = v
	}
	if v := p.Date("date"); v != "" {
		breq.Date = v
	}
	if v := p.Time("time"); v != "" {
		breq.Time = v
	}
	if d := p.Duration("duration"); d != nil {
		breq.Duration = d
	}
	if v := p.String("title"); v != "" {
		breq.Title = v
	}
}

func bookingToParams(breq *booking.Request) dialogflow.Params {
	p := dialogflow.Params{
		"room":  breq.RoomName,
		"date":  breq.Date,
		"time":  breq.Time,
		"title": breq.Title,
	}
	if breq.Duration != nil {
		p["durationAmount"] = breq.Duration.Amount
		p["durationUnit"] = breq.Duration.Unit
	}
	return p
}

func bookingFromParams(p dialogflow.Params) *booking.Request {
	breq := &booking.Request{
		RoomName: p.String("room"),
		Date:     p.String("date"),
		Time:     p.String("time"),
		Title:    p.String("title"),
	}
	if amount, ok := p.Number("durationAmount"); ok {
		breq.Duration = &booking.Duration{Amount: amount, Unit: p.String("durationUnit")}
	}
	return breq
}
