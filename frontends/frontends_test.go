package frontends

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ralfmy/itv-roombot/dialogflow"
	"github.com/ralfmy/itv-roombot/fulfillment"
	"github.com/ralfmy/itv-roombot/rooms"
	"github.com/ralfmy/itv-roombot/schedule"
	"github.com/ralfmy/itv-roombot/workspace"
)

func sampleRoomsResult() *fulfillment.Result {
	return &fulfillment.Result{
		Kind: fulfillment.KindRooms,
		Text: "I found 2 rooms on Monday, 10 June:\n• Abbey Road is free\n• Fawlty Towers is booked",
		Rooms: []fulfillment.RoomSummary{
			{
				Room:         rooms.Room{Name: "Abbey Road", ResourceName: "3.2", Capacity: 10, Floor: "3", Features: []string{"Whiteboard"}},
				Availability: schedule.Availability{Status: schedule.AvailableNow},
			},
			{
				Room:         rooms.Room{Name: "Fawlty Towers", ResourceName: "7.1", Capacity: 6, Floor: "7"},
				Availability: schedule.Availability{Status: schedule.Booked},
			},
		},
		Suggestions: []string{"Yes", "No"},
	}
}

func TestForSource(t *testing.T) {
	assert.IsType(t, &ActionsRenderer{}, ForSource(dialogflow.SourceActions))
	assert.IsType(t, &HangoutsRenderer{}, ForSource(dialogflow.SourceHangouts))
	assert.IsType(t, &SlackRenderer{}, ForSource(dialogflow.SourceSlack))
	assert.IsType(t, &TextRenderer{}, ForSource(""))
	assert.IsType(t, &TextRenderer{}, ForSource("telegram"))
}

func TestTextRenderer(t *testing.T) {
	res := &fulfillment.Result{Kind: fulfillment.KindText, Text: "Hello"}
	resp := (&TextRenderer{}).Render(&dialogflow.WebhookRequest{}, res)

	assert.Equal(t, "Hello", resp.FulfillmentText)
	assert.Nil(t, resp.Payload)
}

func TestActionsRenderer_RoomList(t *testing.T) {
	resp := (&ActionsRenderer{}).Render(&dialogflow.WebhookRequest{}, sampleRoomsResult())

	require.Contains(t, resp.Payload, "google")
	google := resp.Payload["google"].(map[string]interface{})

	intent := google["systemIntent"].(map[string]interface{})
	assert.Equal(t, "actions.intent.OPTION", intent["intent"])

	list := intent["data"].(map[string]interface{})["listSelect"].(map[string]interface{})
	items := list["items"].([]map[string]interface{})
	require.Len(t, items, 2)
	assert.Equal(t, "Abbey Road ・ Free", items[0]["title"])
	assert.Equal(t, "Fawlty Towers ・ Booked", items[1]["title"])
	assert.Equal(t, "Seats 10 ・ Floor 3 ・ Whiteboard", items[0]["description"])

	suggestions := google["richResponse"].(map[string]interface{})["suggestions"].([]map[string]interface{})
	require.Len(t, suggestions, 2)
	assert.Equal(t, "Yes", suggestions[0]["title"])
}

func TestActionsRenderer_Gif(t *testing.T) {
	res := &fulfillment.Result{Kind: fulfillment.KindGif, Text: "Woof!", GifURL: "https://giphy.test/dog.gif"}
	resp := (&ActionsRenderer{}).Render(&dialogflow.WebhookRequest{}, res)

	google := resp.Payload["google"].(map[string]interface{})
	items := google["richResponse"].(map[string]interface{})["items"].([]map[string]interface{})
	require.Len(t, items, 2)

	card := items[1]["basicCard"].(map[string]interface{})
	assert.Equal(t, "https://giphy.test/dog.gif", card["image"].(map[string]interface{})["url"])
}

func TestHangoutsRenderer_RoomStatusCard(t *testing.T) {
	loc := time.FixedZone("UTC+01:00", 3600)
	res := &fulfillment.Result{
		Kind: fulfillment.KindRoomStatus,
		Text: "Fawlty Towers is free on Monday, 10 June.",
		Room: &fulfillment.RoomSummary{
			Room: rooms.Room{Name: "Fawlty Towers", Capacity: 6, Floor: "7", Features: []string{"TV"}},
			Events: []workspace.Event{
				{
					Summary:   "Standup",
					Start:     time.Date(2024, 6, 10, 9, 30, 0, 0, loc),
					End:       time.Date(2024, 6, 10, 9, 45, 0, 0, loc),
					Organizer: workspace.Person{Email: "jo.bloggs@example.com"},
				},
			},
		},
	}

	resp := (&HangoutsRenderer{}).Render(&dialogflow.WebhookRequest{}, res)

	require.Contains(t, resp.Payload, "hangouts")
	cards := resp.Payload["hangouts"].(map[string]interface{})["cards"].([]interface{})
	require.Len(t, cards, 1)

	card := cards[0].(map[string]interface{})
	header := card["header"].(map[string]interface{})
	assert.Equal(t, "Fawlty Towers", header["title"])
	assert.Equal(t, "Floor 7", header["subtitle"])

	sections := card["sections"].([]interface{})
	require.Len(t, sections, 2, "status section plus bookings section")

	bookings := sections[1].(map[string]interface{})
	assert.Equal(t, "Bookings", bookings["header"])
	widget := bookings["widgets"].([]interface{})[0].(map[string]interface{})
	kv := widget["keyValue"].(map[string]interface{})
	assert.Equal(t, "09:30 - 09:45", kv["topLabel"])
	assert.Equal(t, "Standup", kv["content"])
	assert.Equal(t, "Jo Bloggs", kv["bottomLabel"])
}

func TestHangoutsRenderer_PlainTextHasNoCard(t *testing.T) {
	res := &fulfillment.Result{Kind: fulfillment.KindText, Text: "Sorry, I didn't get that."}
	resp := (&HangoutsRenderer{}).Render(&dialogflow.WebhookRequest{}, res)

	assert.Equal(t, "Sorry, I didn't get that.", resp.FulfillmentText)
	assert.Nil(t, resp.Payload)
}

func TestSlackRenderer_RoomListBlocks(t *testing.T) {
	resp := (&SlackRenderer{}).Render(&dialogflow.WebhookRequest{}, sampleRoomsResult())

	require.Contains(t, resp.Payload, "slack")
	payload := resp.Payload["slack"].(map[string]interface{})
	assert.Equal(t, sampleRoomsResult().Text, payload["text"])

	// Headline, two divider+room pairs, yes/no buttons.
	raw, err := json.Marshal(payload["blocks"])
	require.NoError(t, err)

	var blocks []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &blocks))
	require.Len(t, blocks, 6)
	assert.Equal(t, "section", blocks[0]["type"])
	assert.Equal(t, "divider", blocks[1]["type"])
	assert.Equal(t, "actions", blocks[5]["type"])

	first := blocks[2]["text"].(map[string]interface{})
	assert.Contains(t, first["text"], "*Abbey Road*")
	assert.Contains(t, first["text"], "Free")
}

func TestSlackRenderer_Gif(t *testing.T) {
	res := &fulfillment.Result{Kind: fulfillment.KindGif, Text: "Woof!", GifURL: "https://giphy.test/dog.gif"}
	resp := (&SlackRenderer{}).Render(&dialogflow.WebhookRequest{}, res)

	raw, err := json.Marshal(resp.Payload["slack"].(map[string]interface{})["blocks"])
	require.NoError(t, err)

	var blocks []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &blocks))
	require.Len(t, blocks, 2)
	assert.Equal(t, "image", blocks[1]["type"])
	assert.Equal(t, "https://giphy.test/dog.gif", blocks[1]["image_url"])
}
