package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	gin "github.com/gin-gonic/gin"
	"github.com/sethvargo/go-envconfig"
	slack "github.com/slack-go/slack"

	api "github.com/ralfmy/itv-roombot/api"
	middlewares "github.com/ralfmy/itv-roombot/api/middlewares"
	config "github.com/ralfmy/itv-roombot/config"
	"github.com/ralfmy/itv-roombot/fulfillment"
	"github.com/ralfmy/itv-roombot/giphy"
	l "github.com/ralfmy/itv-roombot/logger"
	"github.com/ralfmy/itv-roombot/occupancy"
	otel "github.com/ralfmy/itv-roombot/otel"
	"github.com/ralfmy/itv-roombot/workspace"
)

func main() {
	var config config.Config
	cfg, err := config.Load(envconfig.OsLookuper())
	if err != nil {
		log.Printf("Config load error: %v", err)
		return
	}

	var logger l.Logger
	logger, err = l.NewLogger(cfg.Environment)
	if err != nil {
		log.Printf("Logger init error: %v", err)
		return
	}

	ctx := context.Background()

	loggerMiddleware := middlewares.NewLoggingMiddleware(logger)

	var otelImpl otel.OpenTelemetry
	var telemetry middlewares.Telemetry
	if cfg.EnableTelemetry {
		impl := &otel.OpenTelemetryImpl{}
		if err := impl.Init(cfg); err != nil {
			logger.Error("OpenTelemetry init error", err)
			return
		}
		otelImpl = impl

		telemetry, err = middlewares.NewTelemetryMiddleware(cfg, otelImpl, logger)
		if err != nil {
			logger.Error("Failed to initialize telemetry middleware", err)
			return
		}
	}

	chatAuth, err := middlewares.NewChatAuthMiddleware(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize chat auth middleware", err)
		return
	}

	directory, calendar, err := workspace.NewServices(ctx, cfg.Workspace, logger, otelImpl)
	if err != nil {
		logger.Error("Workspace init error", err)
		return
	}

	var sensors occupancy.SensorStore
	var recolorer *occupancy.Recolorer
	if cfg.Sensors.ProjectID != "" {
		store, err := occupancy.NewBigQueryStore(ctx, cfg.Sensors.ProjectID, cfg.Sensors.Table, cfg.Sensors.Location, logger)
		if err != nil {
			logger.Error("BigQuery init error", err)
			return
		}
		sensors = store
		recolorer = &occupancy.Recolorer{
			Directory:  directory,
			Calendar:   calendar,
			Sensors:    store,
			CalendarID: cfg.Workspace.AdminEmail,
		}
	}

	gifs := giphy.NewClient(cfg.Giphy.APIKey, cfg.Giphy.Tag)

	service, err := fulfillment.NewService(&cfg, logger, otelImpl, directory, calendar, sensors, gifs)
	if err != nil {
		logger.Error("Fulfillment init error", err)
		return
	}

	var profiles api.SlackProfileAPI
	if cfg.Slack.OAuthToken != "" {
		profiles = slack.New(cfg.Slack.OAuthToken)
	}
	callers := api.NewCallerResolver(profiles, logger)

	router := api.NewRouter(cfg, logger, service, callers, recolorer)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(loggerMiddleware.Middleware())
	if cfg.EnableTelemetry {
		r.Use(telemetry.Middleware())
	}

	r.POST("/v1/webhook", chatAuth.Middleware(), router.WebhookHandler)
	r.POST("/v1/recolor", router.RecolorHandler)
	r.GET("/health", router.HealthcheckHandler)
	if cfg.EnableTelemetry {
		r.GET("/metrics", gin.WrapH(otelImpl.MetricsHandler()))
	}
	r.NoRoute(router.NotFoundHandler)

	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	if cfg.Server.TLSCertPath != "" && cfg.Server.TLSKeyPath != "" {
		go func() {
			logger.Info("Starting RoomBot with TLS", "port", cfg.Server.Port)

			if err := server.ListenAndServeTLS(cfg.Server.TLSCertPath, cfg.Server.TLSKeyPath); err != nil && err != http.ErrServerClosed {
				logger.Error("ListenAndServeTLS error", err)
			}
		}()
	} else {
		go func() {
			logger.Info("Starting RoomBot", "port", cfg.Server.Port)

			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("ListenAndServe error", err)
			}
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Error("Server Shutdown error", err)
	} else {
		logger.Info("Server gracefully stopped")
	}
}
