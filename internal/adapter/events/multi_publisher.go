package events

import (
	"context"
	"errors"

	"groupbuy/internal/core/port"
)

// MultiPublisher fans events out to every publisher. A failing publisher
// does not stop the others.
type MultiPublisher []port.EventPublisher

var _ port.EventPublisher = MultiPublisher(nil)

func (m MultiPublisher) Publish(ctx context.Context, events ...port.CampaignEvent) error {
	var errs []error
	for _, p := range m {
		if err := p.Publish(ctx, events...); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
