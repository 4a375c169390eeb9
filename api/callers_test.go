package api

import (
	"context"
	"encoding/json"
	"testing"

	slack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/ralfmy/itv-roombot/dialogflow"
	"github.com/ralfmy/itv-roombot/fulfillment"
	"github.com/ralfmy/itv-roombot/logger"
	"github.com/ralfmy/itv-roombot/tests/mocks"
)

func requestWithPayload(source, payload string) *dialogflow.WebhookRequest {
	return &dialogflow.WebhookRequest{
		OriginalDetectIntentRequest: dialogflow.OriginalRequest{
			Source:  source,
			Payload: json.RawMessage(payload),
		},
	}
}

func TestResolve_Hangouts(t *testing.T) {
	resolver := NewCallerResolver(nil, logger.NewNoOpLogger())

	req := requestWithPayload(dialogflow.SourceHangouts,
		`{"data":{"event":{"user":{"email":"jo.bloggs@example.com","displayName":"Jo Bloggs"}}}}`)
	caller := resolver.Resolve(context.Background(), req)

	assert.Equal(t, fulfillment.Caller{Name: "Jo Bloggs", Email: "jo.bloggs@example.com"}, caller)
}

func TestResolve_SlackLooksUpProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	profiles := mocks.NewMockSlackProfileAPI(ctrl)
	resolver := NewCallerResolver(profiles, logger.NewNoOpLogger())

	profiles.EXPECT().
		GetUserProfileContext(gomock.Any(), &slack.GetUserProfileParameters{UserID: "U123"}).
		Return(&slack.UserProfile{RealName: "Jo Bloggs", Email: "jo.bloggs@example.com"}, nil)

	req := requestWithPayload(dialogflow.SourceSlack, `{"data":{"event":{"user":"U123"}}}`)
	caller := resolver.Resolve(context.Background(), req)

	assert.Equal(t, "jo.bloggs@example.com", caller.Email)
	assert.Equal(t, "Jo Bloggs", caller.Name)
}

func TestResolve_SlackProfileFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	profiles := mocks.NewMockSlackProfileAPI(ctrl)
	resolver := NewCallerResolver(profiles, logger.NewNoOpLogger())

	profiles.EXPECT().
		GetUserProfileContext(gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)

	req := requestWithPayload(dialogflow.SourceSlack, `{"data":{"event":{"user":"U123"}}}`)
	assert.Equal(t, fulfillment.Caller{}, resolver.Resolve(context.Background(), req))
}

func TestResolve_ActionsHasNoIdentity(t *testing.T) {
	resolver := NewCallerResolver(nil, logger.NewNoOpLogger())

	req := requestWithPayload(dialogflow.SourceActions, `{"user":{"locale":"en-GB"}}`)
	assert.Equal(t, fulfillment.Caller{}, resolver.Resolve(context.Background(), req))
}

func TestResolve_EmptyAndMalformedPayloads(t *testing.T) {
	resolver := NewCallerResolver(nil, logger.NewNoOpLogger())

	assert.Equal(t, fulfillment.Caller{},
		resolver.Resolve(context.Background(), &dialogflow.WebhookRequest{}))
	assert.Equal(t, fulfillment.Caller{},
		resolver.Resolve(context.Background(), requestWithPayload(dialogflow.SourceHangouts, `not-json`)))
}
