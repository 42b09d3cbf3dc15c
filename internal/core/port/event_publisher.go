package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"groupbuy/internal/core/domain"
)

// CampaignEventKind names a notable campaign change.
type CampaignEventKind string

const (
	EventMilestoneReached CampaignEventKind = "milestone_reached"
	EventStatusChanged    CampaignEventKind = "status_changed"
)

// CampaignEvent is relayed to notification collaborators.
type CampaignEvent struct {
	Kind       CampaignEventKind `json:"kind"`
	CampaignID uuid.UUID         `json:"campaign_id"`
	Status     domain.Status     `json:"status"`
	Count      int               `json:"current_count"`
	Target     int               `json:"target_count"`
	Milestone  *domain.Milestone `json:"milestone,omitempty"`
	At         time.Time         `json:"at"`
}

// EventPublisher delivers campaign events. Delivery failures never roll back
// the state change that produced the event.
//go:generate mockery --name EventPublisher --output mocks --outpkg mocks --structname MockEventPublisher --filename mock_event_publisher.go --with-expecter
type EventPublisher interface {
	Publish(ctx context.Context, events ...CampaignEvent) error
}
