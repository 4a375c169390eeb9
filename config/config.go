package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds the configuration for the room assistant.
type Config struct {
	// General settings
	ApplicationName string `env:"APPLICATION_NAME, default=roombot" description:"The name of the application"`
	Environment     string `env:"ENVIRONMENT, default=production" description:"The environment"`
	EnableTelemetry bool   `env:"ENABLE_TELEMETRY, default=false" description:"Enable telemetry"`
	EnableChatAuth  bool   `env:"ENABLE_CHAT_AUTH, default=false" description:"Verify the bearer token Google Chat sends with webhook calls"`

	// Deployment locale. Instants handed to the calendar provider carry this
	// fixed offset, matching the office the rooms live in.
	TimeZoneOffset string `env:"TIME_ZONE_OFFSET, default=+01:00" description:"Fixed UTC offset applied to all calendar instants"`

	// Server settings
	Server *ServerConfig `env:", prefix=SERVER_" description:"Server configuration"`

	// Google Workspace settings
	Workspace *WorkspaceConfig `env:", prefix=WORKSPACE_" description:"Google Workspace configuration"`

	// Sensor warehouse settings
	Sensors *SensorsConfig `env:", prefix=SENSORS_" description:"Sensor warehouse configuration"`

	// Slack settings
	Slack *SlackConfig `env:", prefix=SLACK_" description:"Slack configuration"`

	// Giphy settings
	Giphy *GiphyConfig `env:", prefix=GIPHY_" description:"Giphy configuration"`
}

// Server configuration
type ServerConfig struct {
	Host         string        `env:"HOST, default=0.0.0.0" description:"Server host"`
	Port         string        `env:"PORT, default=8080" description:"Server port"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT, default=30s" description:"Read timeout"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT, default=30s" description:"Write timeout"`
	IdleTimeout  time.Duration `env:"IDLE_TIMEOUT, default=120s" description:"Idle timeout"`
	TLSCertPath  string        `env:"TLS_CERT_PATH" description:"TLS certificate path"`
	TLSKeyPath   string        `env:"TLS_KEY_PATH" description:"TLS key path"`
}

// Google Workspace configuration. The service account impersonates AdminEmail
// through domain-wide delegation; CustomerID scopes directory lookups.
type WorkspaceConfig struct {
	AdminEmail      string `env:"ADMIN_EMAIL" type:"secret" description:"Workspace admin the service account impersonates"`
	CustomerID      string `env:"CUSTOMER_ID" description:"Workspace customer id for directory queries"`
	CredentialsJSON string `env:"CREDENTIALS_JSON" type:"secret" description:"Service account key JSON"`
	PrimaryBuilding string `env:"PRIMARY_BUILDING, default=London Gray's Inn Road" description:"Building for office id 0"`
	SecondBuilding  string `env:"SECOND_BUILDING, default=London Waterhouse Square" description:"Building for office id 1"`
	ChatAudience    string `env:"CHAT_AUDIENCE" description:"Project number expected as the Chat token audience"`
}

// Sensor warehouse configuration
type SensorsConfig struct {
	ProjectID string `env:"PROJECT_ID" description:"BigQuery project holding sensor data"`
	Table     string `env:"TABLE, default=sensors.data" description:"Dataset-qualified sensor table"`
	Location  string `env:"LOCATION, default=US" description:"BigQuery job location"`
}

// Slack configuration
type SlackConfig struct {
	OAuthToken string `env:"OAUTH_TOKEN" type:"secret" description:"Slack OAuth token for profile lookups"`
}

// Giphy configuration
type GiphyConfig struct {
	APIKey string `env:"API_KEY" type:"secret" description:"Giphy API key"`
	Tag    string `env:"TAG, default=dog" description:"Tag for random GIF lookups"`
}

// Location returns the fixed deployment timezone as a time.Location.
func (cfg *Config) Location() (*time.Location, error) {
	var sign int
	var hh, mm int
	switch {
	case len(cfg.TimeZoneOffset) == 6 && cfg.TimeZoneOffset[0] == '+':
		sign = 1
	case len(cfg.TimeZoneOffset) == 6 && cfg.TimeZoneOffset[0] == '-':
		sign = -1
	default:
		return nil, fmt.Errorf("invalid timezone offset %q", cfg.TimeZoneOffset)
	}
	if _, err := fmt.Sscanf(cfg.TimeZoneOffset[1:], "%02d:%02d", &hh, &mm); err != nil {
		return nil, fmt.Errorf("invalid timezone offset %q: %w", cfg.TimeZoneOffset, err)
	}
	return time.FixedZone("UTC"+cfg.TimeZoneOffset, sign*(hh*3600+mm*60)), nil
}

// Building maps an office id to its directory building query.
func (cfg *Config) Building(officeID int) string {
	if officeID == 1 {
		return cfg.Workspace.SecondBuilding
	}
	return cfg.Workspace.PrimaryBuilding
}

// Load configuration
func (cfg *Config) Load(lookuper envconfig.Lookuper) (Config, error) {
	if err := envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target:   cfg,
		Lookuper: lookuper,
	}); err != nil {
		return Config{}, err
	}
	if _, err := cfg.Location(); err != nil {
		return Config{}, err
	}
	return *cfg, nil
}
