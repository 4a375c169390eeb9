// Package frontends renders platform-neutral fulfillment results into the
// per-platform payloads Dialogflow relays to Actions on Google, Google Chat
// and Slack.
package frontends

import (
	"github.com/ralfmy/itv-roombot/dialogflow"
	"github.com/ralfmy/itv-roombot/fulfillment"
)

// Renderer turns a Result into the webhook reply for one front-end.
type Renderer interface {
	Render(req *dialogflow.WebhookRequest, res *fulfillment.Result) *dialogflow.WebhookResponse
}

// ForSource picks the renderer for a request source. Unknown sources get the
// plain-text rendering, which every integration understands.
func ForSource(source string) Renderer {
	switch source {
	case dialogflow.SourceActions:
		return &ActionsRenderer{}
	case dialogflow.SourceHangouts:
		return &HangoutsRenderer{}
	case dialogflow.SourceSlack:
		return &SlackRenderer{}
	default:
		return &TextRenderer{}
	}
}

// TextRenderer replies with the plain sentence and no rich payload.
type TextRenderer struct{}

func (r *TextRenderer) Render(req *dialogflow.WebhookRequest, res *fulfillment.Result) *dialogflow.WebhookResponse {
	return &dialogflow.WebhookResponse{
		FulfillmentText: res.Text,
		OutputContexts:  res.Contexts,
	}
}
