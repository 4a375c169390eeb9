package otel

import (
	"context"
	"net/http"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	otel "go.opentelemetry.io/otel"
	attribute "go.opentelemetry.io/otel/attribute"
	exporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	resource "go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"

	config "github.com/ralfmy/itv-roombot/config"
)

type MeterProvider = sdkmetric.MeterProvider

type OpenTelemetry interface {
	Init(config config.Config) error
	MetricsHandler() http.Handler
	RecordFulfillment(ctx context.Context, frontend string, intent string, outcome string, durationMs float64)
	RecordWorkspaceCall(ctx context.Context, api string, method string)
	RecordBooking(ctx context.Context, room string, outcome string)
}

type OpenTelemetryImpl struct {
	meterProvider *MeterProvider
	registry      *prom.Registry

	fulfillmentCounter metric.Int64Counter
	fulfillmentLatency metric.Float64Histogram
	workspaceCounter   metric.Int64Counter
	bookingCounter     metric.Int64Counter
}

func (o *OpenTelemetryImpl) Init(config config.Config) error {
	o.registry = prom.NewRegistry()
	metricExporter, err := exporter.New(exporter.WithRegisterer(o.registry))
	if err != nil {
		return err
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(metricExporter),
		sdkmetric.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(config.ApplicationName),
		)),
	)

	otel.SetMeterProvider(mp)
	o.meterProvider = mp

	meter := mp.Meter("roombot")

	var errs []error
	var err2 error
	o.fulfillmentCounter, err2 = meter.Int64Counter(
		"roombot.fulfillment.requests",
		metric.WithDescription("Number of fulfillment requests handled"),
	)
	errs = append(errs, err2)

	o.fulfillmentLatency, err2 = meter.Float64Histogram(
		"roombot.fulfillment.latency",
		metric.WithDescription("Time spent fulfilling an intent"),
		metric.WithUnit("ms"),
	)
	errs = append(errs, err2)

	o.workspaceCounter, err2 = meter.Int64Counter(
		"roombot.workspace.calls",
		metric.WithDescription("Number of Google Workspace API calls issued"),
	)
	errs = append(errs, err2)

	o.bookingCounter, err2 = meter.Int64Counter(
		"roombot.bookings",
		metric.WithDescription("Booking attempts by outcome"),
	)
	errs = append(errs, err2)

	for _, e := range errs {
		if e != nil {
			return e
		}
	}

	return nil
}

func (o *OpenTelemetryImpl) MetricsHandler() http.Handler {
	if o.registry == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(o.registry, promhttp.HandlerOpts{})
}

func (o *OpenTelemetryImpl) RecordFulfillment(ctx context.Context, frontend string, intent string, outcome string, durationMs float64) {
	if o.fulfillmentCounter == nil || o.fulfillmentLatency == nil {
		return // Not initialized
	}

	attrs := []attribute.KeyValue{
		attribute.String("frontend", frontend),
		attribute.String("intent", intent),
		attribute.String("outcome", outcome),
	}
	o.fulfillmentCounter.Add(ctx, 1, metric.WithAttributes(attrs...))
	o.fulfillmentLatency.Record(ctx, durationMs, metric.WithAttributes(attrs...))
}

func (o *OpenTelemetryImpl) RecordWorkspaceCall(ctx context.Context, api string, method string) {
	if o.workspaceCounter == nil {
		return
	}
	o.workspaceCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("api", api),
		attribute.String("method", method),
	))
}

func (o *OpenTelemetryImpl) RecordBooking(ctx context.Context, room string, outcome string) {
	if o.bookingCounter == nil {
		return
	}
	o.bookingCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("room", room),
		attribute.String("outcome", outcome),
	))
}
