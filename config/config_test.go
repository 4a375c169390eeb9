package config_test

import (
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"

	"github.com/ralfmy/itv-roombot/config"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name          string
		env           map[string]string
		expectedCfg   config.Config
		expectedError string
	}{
		{
			name: "Success_Defaults",
			env:  map[string]string{},
			expectedCfg: config.Config{
				ApplicationName: "roombot",
				Environment:     "production",
				EnableTelemetry: false,
				EnableChatAuth:  false,
				TimeZoneOffset:  "+01:00",
				Server: &config.ServerConfig{
					Host:         "0.0.0.0",
					Port:         "8080",
					ReadTimeout:  30 * time.Second,
					WriteTimeout: 30 * time.Second,
					IdleTimeout:  120 * time.Second,
				},
				Workspace: &config.WorkspaceConfig{
					PrimaryBuilding: "London Gray's Inn Road",
					SecondBuilding:  "London Waterhouse Square",
				},
				Sensors: &config.SensorsConfig{
					Table:    "sensors.data",
					Location: "US",
				},
				Slack: &config.SlackConfig{},
				Giphy: &config.GiphyConfig{Tag: "dog"},
			},
		},
		{
			name: "Success_Overrides",
			env: map[string]string{
				"ENVIRONMENT":                "development",
				"TIME_ZONE_OFFSET":           "+02:00",
				"SERVER_PORT":                "9090",
				"WORKSPACE_ADMIN_EMAIL":      "admin@example.com",
				"WORKSPACE_CUSTOMER_ID":      "C012345",
				"WORKSPACE_PRIMARY_BUILDING": "HQ",
				"SENSORS_PROJECT_ID":         "sensors-project",
				"SLACK_OAUTH_TOKEN":          "xoxb-token",
				"GIPHY_API_KEY":              "giphy-key",
				"GIPHY_TAG":                  "cat",
			},
			expectedCfg: config.Config{
				ApplicationName: "roombot",
				Environment:     "development",
				TimeZoneOffset:  "+02:00",
				Server: &config.ServerConfig{
					Host:         "0.0.0.0",
					Port:         "9090",
					ReadTimeout:  30 * time.Second,
					WriteTimeout: 30 * time.Second,
					IdleTimeout:  120 * time.Second,
				},
				Workspace: &config.WorkspaceConfig{
					AdminEmail:      "admin@example.com",
					CustomerID:      "C012345",
					PrimaryBuilding: "HQ",
					SecondBuilding:  "London Waterhouse Square",
				},
				Sensors: &config.SensorsConfig{
					ProjectID: "sensors-project",
					Table:     "sensors.data",
					Location:  "US",
				},
				Slack: &config.SlackConfig{OAuthToken: "xoxb-token"},
				Giphy: &config.GiphyConfig{APIKey: "giphy-key", Tag: "cat"},
			},
		},
		{
			name: "Error_BadOffset",
			env: map[string]string{
				"TIME_ZONE_OFFSET": "BST",
			},
			expectedError: "invalid timezone offset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg config.Config
			loaded, err := cfg.Load(envconfig.MapLookuper(tt.env))

			if tt.expectedError != "" {
				assert.ErrorContains(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedCfg, loaded)
		})
	}
}

func TestLocation(t *testing.T) {
	var cfg config.Config
	loaded, err := cfg.Load(envconfig.MapLookuper(nil))
	assert.NoError(t, err)

	loc, err := loaded.Location()
	assert.NoError(t, err)

	_, offset := time.Date(2024, 6, 10, 12, 0, 0, 0, loc).Zone()
	assert.Equal(t, 3600, offset)
}

func TestBuilding(t *testing.T) {
	var cfg config.Config
	loaded, err := cfg.Load(envconfig.MapLookuper(nil))
	assert.NoError(t, err)

	assert.Equal(t, "London Gray's Inn Road", loaded.Building(0))
	assert.Equal(t, "London Waterhouse Square", loaded.Building(1))
}
