package frontends

import (
	"fmt"
	"strings"

	"github.com/ralfmy/itv-roombot/dialogflow"
	"github.com/ralfmy/itv-roombot/fulfillment"
	"github.com/ralfmy/itv-roombot/schedule"
)

// ActionsRenderer builds Actions on Google rich responses: simple responses
// for speech, list selects for room pages, a basic card for GIFs, and
// suggestion chips.
type ActionsRenderer struct{}

func (r *ActionsRenderer) Render(req *dialogflow.WebhookRequest, res *fulfillment.Result) *dialogflow.WebhookResponse {
	items := []map[string]interface{}{
		{
			"simpleResponse": map[string]interface{}{
				"textToSpeech": res.Text,
			},
		},
	}
	google := map[string]interface{}{
		"expectUserResponse": true,
		"richResponse": map[string]interface{}{
			"items": items,
		},
	}

	switch res.Kind {
	case fulfillment.KindRooms:
		google["systemIntent"] = map[string]interface{}{
			"intent": "actions.intent.OPTION",
			"data": map[string]interface{}{
				"@type":      "type.googleapis.com/google.actions.v2.OptionValueSpec",
				"listSelect": roomList(res.Rooms),
			},
		}
	case fulfillment.KindGif:
		items = append(items, map[string]interface{}{
			"basicCard": map[string]interface{}{
				"image": map[string]interface{}{
					"url":               res.GifURL,
					"accessibilityText": "A good dog",
				},
			},
		})
		google["richResponse"].(map[string]interface{})["items"] = items
	}

	if len(res.Suggestions) > 0 {
		suggestions := make([]map[string]interface{}, 0, len(res.Suggestions))
		for _, s := range res.Suggestions {
			suggestions = append(suggestions, map[string]interface{}{"title": s})
		}
		google["richResponse"].(map[string]interface{})["suggestions"] = suggestions
	}

	return &dialogflow.WebhookResponse{
		FulfillmentText: res.Text,
		Payload:         map[string]interface{}{"google": google},
		OutputContexts:  res.Contexts,
	}
}

// roomList renders a page of rooms as an Assistant list select.
func roomList(summaries []fulfillment.RoomSummary) map[string]interface{} {
	items := make([]map[string]interface{}, 0, len(summaries))
	for _, s := range summaries {
		items = append(items, map[string]interface{}{
			"optionInfo": map[string]interface{}{
				"key":      s.Room.Name,
				"synonyms": []string{s.Room.ResourceName},
			},
			"title":       fmt.Sprintf("%s ・ %s", s.Room.Name, statusWord(s.Availability)),
			"description": roomDescription(s),
		})
	}
	return map[string]interface{}{
		"title": "Rooms",
		"items": items,
	}
}

func roomDescription(s fulfillment.RoomSummary) string {
	desc := fmt.Sprintf("Seats %d ・ Floor %s", s.Room.Capacity, s.Room.Floor)
	if len(s.Room.Features) > 0 {
		desc += " ・ " + strings.Join(s.Room.Features, " ・ ")
	}
	return desc
}

func statusWord(a schedule.Availability) string {
	if a.Status == schedule.Booked {
		return "Booked"
	}
	return "Free"
}
