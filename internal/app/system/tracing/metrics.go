package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Counters are the app's metric instruments. They report to whatever meter
// provider is installed globally.
type Counters struct {
	profileViews  metric.Int64Counter
	profileMisses metric.Int64Counter
	cardClicks    metric.Int64Counter
}

// NewCounters creates the instruments on the global meter.
func NewCounters() (*Counters, error) {
	meter := otel.Meter("freelancehub")

	views, err := meter.Int64Counter("freelancehub.profile.views",
		metric.WithDescription("Profile pages rendered for a known member"))
	if err != nil {
		return nil, err
	}
	misses, err := meter.Int64Counter("freelancehub.profile.misses",
		metric.WithDescription("Profile requests for an unknown member id"))
	if err != nil {
		return nil, err
	}
	clicks, err := meter.Int64Counter("freelancehub.card.clicks",
		metric.WithDescription("Server-side card activations by target"))
	if err != nil {
		return nil, err
	}
	return &Counters{profileViews: views, profileMisses: misses, cardClicks: clicks}, nil
}

// ProfileViewed records a successful profile lookup.
func (c *Counters) ProfileViewed(ctx context.Context) {
	if c == nil {
		return
	}
	c.profileViews.Add(ctx, 1)
}

// ProfileMissed records a lookup for an unknown id.
func (c *Counters) ProfileMissed(ctx context.Context) {
	if c == nil {
		return
	}
	c.profileMisses.Add(ctx, 1)
}

// CardClicked records a card activation on target.
func (c *Counters) CardClicked(ctx context.Context, target string) {
	if c == nil {
		return
	}
	c.cardClicks.Add(ctx, 1, metric.WithAttributes(attribute.String("target", target)))
}
