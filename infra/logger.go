package infra

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploghttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/careerlink/company-service/config"
)

// LoggerClient ships structured logs, runtime metrics and traces over OTLP
// when an endpoint is configured, and falls back to stdout logging otherwise.
type LoggerClient struct {
	logger         *slog.Logger
	loggerProvider *sdklog.LoggerProvider
	meterProvider  *sdkmetric.MeterProvider
	tracerProvider *sdktrace.TracerProvider
}

func InitLoggerClient(cfg *config.EnvConfig) *LoggerClient {
	if cfg.Otel.OTLPEndpoint == "" {
		log.Println("OTLP endpoint not configured, logging to stdout")
		return &LoggerClient{
			logger: slog.New(slog.NewJSONHandler(os.Stdout, nil)),
		}
	}

	ctx := context.Background()

	res := resource.NewSchemaless(
		attribute.String("service.name", cfg.Otel.ServiceName),
		attribute.String("deployment.environment", cfg.Environment.Mode),
		attribute.String("service.group", cfg.Environment.Group),
	)

	logExporter, err := otlploghttp.New(ctx,
		otlploghttp.WithEndpoint(cfg.Otel.OTLPEndpoint),
	)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize OTLP log exporter: %v", err))
	}

	loggerProvider := sdklog.NewLoggerProvider(
		sdklog.WithProcessor(sdklog.NewBatchProcessor(logExporter)),
		sdklog.WithResource(res),
	)

	metricExporter, err := otlpmetrichttp.New(ctx,
		otlpmetrichttp.WithEndpoint(cfg.Otel.OTLPEndpoint),
	)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize OTLP metric exporter: %v", err))
	}

	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(meterProvider)

	if err := runtime.Start(runtime.WithMeterProvider(meterProvider)); err != nil {
		log.Printf("Warning: failed to start runtime instrumentation: %v", err)
	}

	traceExporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(cfg.Otel.OTLPEndpoint),
	)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize OTLP trace exporter: %v", err))
	}

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(traceExporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tracerProvider)

	return &LoggerClient{
		logger:         otelslog.NewLogger(cfg.Otel.ServiceName, otelslog.WithLoggerProvider(loggerProvider)),
		loggerProvider: loggerProvider,
		meterProvider:  meterProvider,
		tracerProvider: tracerProvider,
	}
}

func (l *LoggerClient) InfoWithContextf(ctx context.Context, format string, args ...interface{}) {
	l.logger.InfoContext(ctx, fmt.Sprintf(format, args...))
}

func (l *LoggerClient) WarningWithContextf(ctx context.Context, format string, args ...interface{}) {
	l.logger.WarnContext(ctx, fmt.Sprintf(format, args...))
}

func (l *LoggerClient) ErrorWithContextf(ctx context.Context, err error, format string, args ...interface{}) {
	if err != nil {
		l.logger.ErrorContext(ctx, fmt.Sprintf(format, args...), slog.Any("error", err))
		return
	}
	l.logger.ErrorContext(ctx, fmt.Sprintf(format, args...))
}

// Shutdown flushes pending telemetry. Safe to call on the stdout fallback.
func (l *LoggerClient) Shutdown(ctx context.Context) {
	if l.loggerProvider != nil {
		_ = l.loggerProvider.Shutdown(ctx)
	}
	if l.meterProvider != nil {
		_ = l.meterProvider.Shutdown(ctx)
	}
	if l.tracerProvider != nil {
		_ = l.tracerProvider.Shutdown(ctx)
	}
}
