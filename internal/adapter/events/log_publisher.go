package events

import (
	"context"
	"log/slog"

	"groupbuy/internal/core/port"
)

// LogPublisher writes campaign events to the structured log. It is used
// when no broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

// NewLogPublisher returns a publisher writing to logger.
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

var _ port.EventPublisher = (*LogPublisher)(nil)

func (p *LogPublisher) Publish(_ context.Context, events ...port.CampaignEvent) error {
	for _, ev := range events {
		attrs := []any{
			slog.String("kind", string(ev.Kind)),
			slog.String("campaign_id", ev.CampaignID.String()),
			slog.String("status", string(ev.Status)),
			slog.Int("current_count", ev.Count),
			slog.Int("target_count", ev.Target),
		}
		if ev.Milestone != nil {
			attrs = append(attrs,
				slog.Int("threshold_count", ev.Milestone.ThresholdCount),
				slog.Int("discount_percent", ev.Milestone.DiscountPercent))
		}
		p.logger.Info("campaign event", attrs...)
	}
	return nil
}
