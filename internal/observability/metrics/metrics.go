package metrics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Config configures the metrics provider.
type Config struct {
	Enabled          bool
	ExporterEndpoint string
	ExporterProtocol string
	ServiceName      string
	Environment      string
}

// Metrics exposes application-level instruments.
type Metrics struct {
	reportBuilds       metric.Int64Counter
	reportBuildSeconds metric.Float64Histogram
	insightQueries     metric.Int64Counter
	snapshotLoads      metric.Int64Counter
}

// NewProvider configures and registers the meter provider.
func NewProvider(lc fx.Lifecycle, cfg Config, log *zap.Logger) (metric.MeterProvider, error) {
	if !cfg.Enabled {
		provider := noop.NewMeterProvider()
		otel.SetMeterProvider(provider)
		return provider, nil
	}

	exporter, err := newExporter(cfg.ExporterProtocol, cfg.ExporterEndpoint)
	if err != nil {
		return nil, err
	}

	reader := sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(10*time.Second))
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	otel.SetMeterProvider(provider)

	if lc != nil {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				if log != nil {
					log.Info("shutting down meter provider")
				}
				return provider.Shutdown(ctx)
			},
		})
	}

	return provider, nil
}

func newExporter(protocol, endpoint string) (sdkmetric.Exporter, error) {
	switch strings.ToLower(strings.TrimSpace(protocol)) {
	case "http", "http/protobuf":
		return otlpmetrichttp.New(context.Background(),
			otlpmetrichttp.WithEndpoint(endpoint),
			otlpmetrichttp.WithInsecure(),
		)
	case "", "grpc":
		return otlpmetricgrpc.New(context.Background(),
			otlpmetricgrpc.WithEndpoint(endpoint),
			otlpmetricgrpc.WithInsecure(),
		)
	default:
		return nil, fmt.Errorf("unsupported otlp protocol %q", protocol)
	}
}

// New builds the application instruments from the registered provider.
func New(provider metric.MeterProvider) (*Metrics, error) {
	meter := provider.Meter("salescope")

	reportBuilds, err := meter.Int64Counter("report_builds_total",
		metric.WithDescription("Number of on-demand report view rebuilds"))
	if err != nil {
		return nil, err
	}
	reportBuildSeconds, err := meter.Float64Histogram("report_build_duration_seconds",
		metric.WithDescription("Wall time of a report view rebuild"))
	if err != nil {
		return nil, err
	}
	insightQueries, err := meter.Int64Counter("insight_queries_total",
		metric.WithDescription("Number of analytical insight queries served"))
	if err != nil {
		return nil, err
	}
	snapshotLoads, err := meter.Int64Counter("snapshot_loads_total",
		metric.WithDescription("Number of warehouse snapshot loads"))
	if err != nil {
		return nil, err
	}

	return &Metrics{
		reportBuilds:       reportBuilds,
		reportBuildSeconds: reportBuildSeconds,
		insightQueries:     insightQueries,
		snapshotLoads:      snapshotLoads,
	}, nil
}

// NewNop returns metrics backed by the noop provider, for tests.
func NewNop() *Metrics {
	m, _ := New(noop.NewMeterProvider())
	return m
}

func (m *Metrics) ReportBuilt(ctx context.Context, kind string, elapsed time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("report", kind))
	m.reportBuilds.Add(ctx, 1, attrs)
	m.reportBuildSeconds.Record(ctx, elapsed.Seconds(), attrs)
}

func (m *Metrics) InsightQueried(ctx context.Context, shape string) {
	if m == nil {
		return
	}
	m.insightQueries.Add(ctx, 1, metric.WithAttributes(attribute.String("shape", shape)))
}

func (m *Metrics) SnapshotLoaded(ctx context.Context) {
	if m == nil {
		return
	}
	m.snapshotLoads.Add(ctx, 1)
}
