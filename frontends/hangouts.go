package frontends

import (
	"fmt"
	"strings"

	"github.com/ralfmy/itv-roombot/dialogflow"
	"github.com/ralfmy/itv-roombot/fulfillment"
	"github.com/ralfmy/itv-roombot/workspace"
)

// HangoutsRenderer builds Google Chat cards under the "hangouts" payload key.
// Chat has no suggestion chips, so suggestions stay in the sentence.
type HangoutsRenderer struct{}

func (r *HangoutsRenderer) Render(req *dialogflow.WebhookRequest, res *fulfillment.Result) *dialogflow.WebhookResponse {
	resp := &dialogflow.WebhookResponse{
		FulfillmentText: res.Text,
		OutputContexts:  res.Contexts,
	}

	var card map[string]interface{}
	switch res.Kind {
	case fulfillment.KindRooms:
		card = roomsCard(res)
	case fulfillment.KindRoomStatus, fulfillment.KindBookingDone:
		if res.Room != nil {
			card = roomCard(res)
		}
	case fulfillment.KindGif:
		card = map[string]interface{}{
			"sections": []interface{}{
				map[string]interface{}{
					"widgets": []interface{}{
						map[string]interface{}{
							"image": map[string]interface{}{"imageUrl": res.GifURL},
						},
					},
				},
			},
		}
	}

	if card != nil {
		resp.Payload = map[string]interface{}{
			"hangouts": map[string]interface{}{
				"cards": []interface{}{card},
			},
		}
	}
	return resp
}

func roomsCard(res *fulfillment.Result) map[string]interface{} {
	widgets := make([]interface{}, 0, len(res.Rooms))
	for _, s := range res.Rooms {
		widgets = append(widgets, map[string]interface{}{
			"keyValue": map[string]interface{}{
				"topLabel":         statusWord(s.Availability),
				"content":          s.Room.Name,
				"bottomLabel":      roomDescription(s),
				"contentMultiline": false,
			},
		})
	}
	return map[string]interface{}{
		"header": map[string]interface{}{"title": "Rooms"},
		"sections": []interface{}{
			map[string]interface{}{"widgets": widgets},
		},
	}
}

func roomCard(res *fulfillment.Result) map[string]interface{} {
	room := res.Room.Room
	widgets := []interface{}{
		map[string]interface{}{
			"keyValue": map[string]interface{}{
				"topLabel": "Status",
				"content":  res.Text,
			},
		},
		map[string]interface{}{
			"keyValue": map[string]interface{}{
				"topLabel": "Capacity",
				"content":  fmt.Sprintf("%d people", room.Capacity),
			},
		},
	}
	if len(room.Features) > 0 {
		widgets = append(widgets, map[string]interface{}{
			"keyValue": map[string]interface{}{
				"topLabel": "Features",
				"content":  strings.Join(room.Features, " ・ "),
			},
		})
	}

	sections := []interface{}{
		map[string]interface{}{"widgets": widgets},
	}
	if len(res.Room.Events) > 0 {
		sections = append(sections, map[string]interface{}{
			"header":  "Bookings",
			"widgets": eventWidgets(res.Room.Events),
		})
	}

	return map[string]interface{}{
		"header": map[string]interface{}{
			"title":    room.Name,
			"subtitle": fmt.Sprintf("Floor %s", room.Floor),
		},
		"sections": sections,
	}
}

func eventWidgets(events []workspace.Event) []interface{} {
	widgets := make([]interface{}, 0, len(events))
	for _, e := range events {
		widgets = append(widgets, map[string]interface{}{
			"keyValue": map[string]interface{}{
				"topLabel":    fmt.Sprintf("%s - %s", e.Start.Format("15:04"), e.End.Format("15:04")),
				"content":     e.Summary,
				"bottomLabel": organizerName(e),
			},
		})
	}
	return widgets
}

func organizerName(e workspace.Event) string {
	if e.Organizer.DisplayName != "" {
		return e.Organizer.DisplayName
	}
	return fulfillment.NameFromEmail(e.Organizer.Email)
}
