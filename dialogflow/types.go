// Package dialogflow holds the webhook wire types of the Dialogflow v2
// fulfillment protocol and typed accessors for the slot parameters the NLU
// platform fills in.
package dialogflow

import (
	"encoding/json"
	"strings"
)

// Intent display names configured in the dialogue agent.
const (
	IntentWelcome            = "Default Welcome Intent"
	IntentFallback           = "Default Fallback Intent"
	IntentSearchRooms        = "Search Rooms"
	IntentSearchRoomsMore    = "Search Rooms - yes"
	IntentRoomStatus         = "Room Status"
	IntentRoomStatusBook     = "Room Status - yes"
	IntentRoomFeature        = "Room Feature"
	IntentRoomCapacity       = "Room Capacity"
	IntentRoomOccupancy      = "Room Occupancy"
	IntentBookRoom           = "Book Room"
	IntentBookRoomConfirm    = "Book Room - yes"
	IntentBookRoomPermission = "Book Room Permission"
	IntentHelp               = "Help"
	IntentDog                = "Dog"
)

// Request sources as reported by originalDetectIntentRequest.
const (
	SourceActions  = "google"
	SourceHangouts = "hangouts"
	SourceSlack    = "slack"
)

// WebhookRequest is the fulfillment request Dialogflow posts to the webhook.
type WebhookRequest struct {
	ResponseID                  string          `json:"responseId"`
	Session                     string          `json:"session"`
	QueryResult                 QueryResult     `json:"queryResult"`
	OriginalDetectIntentRequest OriginalRequest `json:"originalDetectIntentRequest"`
}

type QueryResult struct {
	QueryText      string    `json:"queryText"`
	Parameters     Params    `json:"parameters"`
	Intent         Intent    `json:"intent"`
	OutputContexts []Context `json:"outputContexts"`
}

type Intent struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
}

// Context is a conversation context blob round-tripped through the platform.
// Lifespan counts down one per turn; zero removes the context.
type Context struct {
	Name          string `json:"name"`
	LifespanCount int    `json:"lifespanCount"`
	Parameters    Params `json:"parameters,omitempty"`
}

type OriginalRequest struct {
	Source  string          `json:"source"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// EventInput triggers a follow-up intent by event name.
type EventInput struct {
	Name         string `json:"name"`
	LanguageCode string `json:"languageCode,omitempty"`
}

// WebhookResponse is the fulfillment reply. Payload carries the
// platform-specific rendering (Actions rich response, Hangouts card, Slack
// blocks) keyed by platform name.
type WebhookResponse struct {
	FulfillmentText    string                 `json:"fulfillmentText,omitempty"`
	Payload            map[string]interface{} `json:"payload,omitempty"`
	OutputContexts     []Context              `json:"outputContexts,omitempty"`
	FollowupEventInput *EventInput            `json:"followupEventInput,omitempty"`
}

// Source returns the front-end that originated the conversation.
func (r *WebhookRequest) Source() string {
	return r.OriginalDetectIntentRequest.Source
}

// Context finds an active context by its short name.
func (r *WebhookRequest) Context(shortName string) *Context {
	suffix := "/contexts/" + shortName
	for i := range r.QueryResult.OutputContexts {
		c := &r.QueryResult.OutputContexts[i]
		if strings.HasSuffix(c.Name, suffix) {
			return c
		}
	}
	return nil
}

// NewContext builds a context scoped to the request's session.
func (r *WebhookRequest) NewContext(shortName string, lifespan int, params Params) Context {
	return Context{
		Name:          r.Session + "/contexts/" + shortName,
		LifespanCount: lifespan,
		Parameters:    params,
	}
}
