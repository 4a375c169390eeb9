package frontends

import (
	"fmt"
	"strings"

	"github.com/slack-go/slack"

	"github.com/ralfmy/itv-roombot/dialogflow"
	"github.com/ralfmy/itv-roombot/fulfillment"
)

// SlackRenderer builds Block Kit messages under the "slack" payload key.
type SlackRenderer struct{}

func (r *SlackRenderer) Render(req *dialogflow.WebhookRequest, res *fulfillment.Result) *dialogflow.WebhookResponse {
	var blocks []slack.Block

	switch res.Kind {
	case fulfillment.KindRooms:
		blocks = append(blocks, markdownSection(headline(res.Text)))
		for _, s := range res.Rooms {
			blocks = append(blocks, slack.NewDividerBlock(), markdownSection(roomLine(s)))
		}
	case fulfillment.KindGif:
		blocks = append(blocks,
			markdownSection(res.Text),
			slack.NewImageBlock(res.GifURL, "A good dog", "", nil),
		)
	default:
		blocks = append(blocks, markdownSection(res.Text))
		if res.Kind == fulfillment.KindRoomStatus && res.Room != nil {
			if detail := roomDetail(res.Room.Room.Capacity, res.Room.Room.Floor, res.Room.Room.Features); detail != "" {
				blocks = append(blocks, slack.NewContextBlock("",
					slack.NewTextBlockObject(slack.MarkdownType, detail, false, false)))
			}
		}
	}

	if len(res.Suggestions) > 0 {
		buttons := make([]slack.BlockElement, 0, len(res.Suggestions))
		for _, s := range res.Suggestions {
			buttons = append(buttons, slack.NewButtonBlockElement("", s,
				slack.NewTextBlockObject(slack.PlainTextType, s, false, false)))
		}
		blocks = append(blocks, slack.NewActionBlock("", buttons...))
	}

	return &dialogflow.WebhookResponse{
		FulfillmentText: res.Text,
		Payload: map[string]interface{}{
			"slack": map[string]interface{}{
				"text":   res.Text,
				"blocks": blocks,
			},
		},
		OutputContexts: res.Contexts,
	}
}

func markdownSection(text string) *slack.SectionBlock {
	return slack.NewSectionBlock(
		slack.NewTextBlockObject(slack.MarkdownType, text, false, false), nil, nil)
}

// headline keeps only the first line of a multi-line summary. The room lines
// become blocks of their own.
func headline(text string) string {
	line, _, _ := strings.Cut(text, "\n")
	return line
}

func roomLine(s fulfillment.RoomSummary) string {
	return fmt.Sprintf("*%s* ・ %s\n%s", s.Room.Name, statusWord(s.Availability),
		roomDetail(s.Room.Capacity, s.Room.Floor, s.Room.Features))
}

func roomDetail(capacity int64, floor string, features []string) string {
	detail := fmt.Sprintf("Seats %d ・ Floor %s", capacity, floor)
	if len(features) > 0 {
		detail += " ・ " + strings.Join(features, " ・ ")
	}
	return detail
}
