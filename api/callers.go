package api

import (
	"context"
	"encoding/json"

	slack "github.com/slack-go/slack"

	"github.com/ralfmy/itv-roombot/dialogflow"
	"github.com/ralfmy/itv-roombot/fulfillment"
	l "github.com/ralfmy/itv-roombot/logger"
)

// CallerResolver recovers who is talking to the bot from the front-end
// payload riding inside originalDetectIntentRequest.
type CallerResolver interface {
	Resolve(ctx context.Context, req *dialogflow.WebhookRequest) fulfillment.Caller
}

// SlackProfileAPI is the slice of the Slack client used for email lookups.
//
//go:generate mockgen -source=callers.go -destination=../tests/mocks/callers.go -package=mocks
type SlackProfileAPI interface {
	GetUserProfileContext(ctx context.Context, params *slack.GetUserProfileParameters) (*slack.UserProfile, error)
}

type CallerResolverImpl struct {
	slack  SlackProfileAPI
	logger l.Logger
}

func NewCallerResolver(slackAPI SlackProfileAPI, logger l.Logger) CallerResolver {
	return &CallerResolverImpl{
		slack:  slackAPI,
		logger: logger,
	}
}

// hangoutsPayload is the Google Chat event wrapper. Chat sends the caller's
// identity with every message.
type hangoutsPayload struct {
	Data struct {
		Event struct {
			User struct {
				Email       string `json:"email"`
				DisplayName string `json:"displayName"`
			} `json:"user"`
		} `json:"event"`
	} `json:"data"`
}

// slackPayload carries only the Slack user id; the email comes from a profile
// lookup.
type slackPayload struct {
	Data struct {
		Event struct {
			User string `json:"user"`
		} `json:"event"`
	} `json:"data"`
}

func (r *CallerResolverImpl) Resolve(ctx context.Context, req *dialogflow.WebhookRequest) fulfillment.Caller {
	raw := req.OriginalDetectIntentRequest.Payload
	if len(raw) == 0 {
		return fulfillment.Caller{}
	}

	switch req.Source() {
	case dialogflow.SourceHangouts:
		var payload hangoutsPayload
		if err := json.Unmarshal(raw, &payload); err != nil {
			r.logger.Warn("parsing hangouts payload", "error", err.Error())
			return fulfillment.Caller{}
		}
		return fulfillment.Caller{
			Name:  payload.Data.Event.User.DisplayName,
			Email: payload.Data.Event.User.Email,
		}
	case dialogflow.SourceSlack:
		return r.resolveSlack(ctx, raw)
	default:
		// Actions on Google shares no identity without an account linking
		// flow; the booking handler asks for permission instead.
		return fulfillment.Caller{}
	}
}

func (r *CallerResolverImpl) resolveSlack(ctx context.Context, raw json.RawMessage) fulfillment.Caller {
	var payload slackPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		r.logger.Warn("parsing slack payload", "error", err.Error())
		return fulfillment.Caller{}
	}
	if payload.Data.Event.User == "" || r.slack == nil {
		return fulfillment.Caller{}
	}

	profile, err := r.slack.GetUserProfileContext(ctx, &slack.GetUserProfileParameters{
		UserID: payload.Data.Event.User,
	})
	if err != nil {
		r.logger.Error("fetching slack profile", err, "user", payload.Data.Event.User)
		return fulfillment.Caller{}
	}
	return fulfillment.Caller{
		Name:  profile.RealName,
		Email: profile.Email,
	}
}
