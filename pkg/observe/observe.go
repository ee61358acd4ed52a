// Package observe instruments sequences with OpenTelemetry counters.
package observe

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/johnjamespj/lazyiter/pkg/iterator"
)

const DefaultPrefix = "lazyiter"

type Config struct {
	// Prefix names the instruments <Prefix>.sessions and <Prefix>.elements.
	// Empty means DefaultPrefix.
	Prefix string
	// Attributes are attached to every measurement.
	Attributes []attribute.KeyValue
}

// Metrics holds the counters shared by every sequence measured with it.
type Metrics struct {
	sessions metric.Int64Counter
	elements metric.Int64Counter
	attrs    metric.MeasurementOption
}

func NewMetrics(meter metric.Meter, cfg Config) (*Metrics, error) {
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}

	sessions, err := meter.Int64Counter(prefix+".sessions",
		metric.WithDescription("sessions opened over a sequence"),
		metric.WithUnit("{session}"))
	if err != nil {
		return nil, fmt.Errorf("creating sessions counter: %w", err)
	}
	elements, err := meter.Int64Counter(prefix+".elements",
		metric.WithDescription("elements pulled from a sequence"),
		metric.WithUnit("{element}"))
	if err != nil {
		return nil, fmt.Errorf("creating elements counter: %w", err)
	}

	return &Metrics{
		sessions: sessions,
		elements: elements,
		attrs:    metric.WithAttributes(cfg.Attributes...),
	}, nil
}

// Measure returns s counting one session per opened iterator and one element
// per value pulled from it. Nothing is recorded until a session is opened.
func Measure[V any](ctx context.Context, s *iterator.Sequence[V], m *Metrics) *iterator.Sequence[V] {
	counted := s.Inspect(func(V) {
		m.elements.Add(ctx, 1, m.attrs)
	})
	return iterator.New(func() iterator.Iterator[V] {
		m.sessions.Add(ctx, 1, m.attrs)
		return counted.Itr()
	})
}
