package middlewares

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ralfmy/itv-roombot/config"
	"github.com/ralfmy/itv-roombot/logger"
	"github.com/ralfmy/itv-roombot/otel"
)

type Telemetry interface {
	Middleware() gin.HandlerFunc
}

type TelemetryImpl struct {
	cfg       config.Config
	telemetry otel.OpenTelemetry
	logger    logger.Logger
}

func NewTelemetryMiddleware(cfg config.Config, telemetry otel.OpenTelemetry, logger logger.Logger) (Telemetry, error) {
	return &TelemetryImpl{
		cfg:       cfg,
		telemetry: telemetry,
		logger:    logger,
	}, nil
}

// webhookProbe is the slice of the fulfillment request the metrics need.
type webhookProbe struct {
	QueryResult struct {
		Intent struct {
			DisplayName string `json:"displayName"`
		} `json:"intent"`
	} `json:"queryResult"`
	OriginalDetectIntentRequest struct {
		Source string `json:"source"`
	} `json:"originalDetectIntentRequest"`
}

func (t *TelemetryImpl) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !strings.Contains(c.Request.URL.Path, "/webhook") {
			c.Next()
			return
		}

		var probe webhookProbe
		bodyBytes, _ := io.ReadAll(c.Request.Body)
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		_ = json.Unmarshal(bodyBytes, &probe)

		start := time.Now()
		c.Next()

		outcome := "success"
		if c.Writer.Status() != http.StatusOK {
			outcome = "error"
		}
		t.telemetry.RecordFulfillment(c.Request.Context(),
			probe.OriginalDetectIntentRequest.Source,
			probe.QueryResult.Intent.DisplayName,
			outcome,
			float64(time.Since(start).Milliseconds()),
		)
	}
}
