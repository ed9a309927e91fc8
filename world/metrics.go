package world

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"ferris-shooter/entity"
)

const instrumentationName = "ferris-shooter/world"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

type worldMetrics struct {
	spawned metric.Int64Counter
	removed metric.Int64Counter
	ticks   metric.Int64Counter
	live    metric.Int64ObservableGauge

	liveCount atomic.Int64
}

// newMetrics registers the world instruments on the global OTel meter
// (no-op if no provider is configured)
func newMetrics() (*worldMetrics, error) {
	m := meter()
	wm := &worldMetrics{}

	var err error

	wm.spawned, err = m.Int64Counter(
		"world.entities.spawned",
		metric.WithDescription("Entities added to the world"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating spawned counter: %w", err)
	}

	wm.removed, err = m.Int64Counter(
		"world.entities.removed",
		metric.WithDescription("Entities removed from the world"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating removed counter: %w", err)
	}

	wm.ticks, err = m.Int64Counter(
		"world.ticks",
		metric.WithDescription("Simulation ticks run"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating ticks counter: %w", err)
	}

	wm.live, err = m.Int64ObservableGauge(
		"world.entities.live",
		metric.WithDescription("Entities currently in the world"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating live gauge: %w", err)
	}

	_, err = m.RegisterCallback(
		func(ctx context.Context, o metric.Observer) error {
			o.ObserveInt64(wm.live, wm.liveCount.Load())
			return nil
		},
		wm.live,
	)
	if err != nil {
		return nil, fmt.Errorf("registering live callback: %w", err)
	}

	return wm, nil
}

func (wm *worldMetrics) recordSpawn(kind entity.Kind) {
	wm.spawned.Add(context.Background(), 1, metric.WithAttributes(attribute.String("kind", kind.String())))
}

func (wm *worldMetrics) recordRemove(kind entity.Kind) {
	wm.removed.Add(context.Background(), 1, metric.WithAttributes(attribute.String("kind", kind.String())))
}
