package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"groupbuy/internal/core/domain"
)

// WishUseCase defines the business operations of the group-buy engine. This
// interface is the primary port into the application domain.
//go:generate mockery --name WishUseCase --output mocks --outpkg mocks --structname MockWishUseCase --filename mock_wish_use_case.go --with-expecter
type WishUseCase interface {
	// Create validates the spec, stores the campaign and auto-joins the
	// initiator as the first participant.
	Create(ctx context.Context, spec domain.CampaignSpec) (domain.Campaign, error)

	// Get returns the current campaign snapshot. Expiry and count drift are
	// settled before returning.
	Get(ctx context.Context, id uuid.UUID) (domain.Campaign, error)

	// List returns a page of campaigns.
	List(ctx context.Context, q ListQuery) (CampaignPage, error)

	// Join adds userID to the campaign. It fails with domain.ErrNotFound,
	// domain.ErrCampaignClosed, domain.ErrAlreadyJoined,
	// domain.ErrWindowClosed or domain.ErrConcurrentUpdate.
	Join(ctx context.Context, campaignID uuid.UUID, userID string, variant domain.Variant) (domain.JoinResult, error)

	// Cancel moves a non-terminal campaign to failed. Only the creator may
	// cancel.
	Cancel(ctx context.Context, campaignID uuid.UUID, actorID string) (domain.Campaign, error)

	// Revoke reverses a participation and resyncs the campaign count.
	Revoke(ctx context.Context, entryID uuid.UUID) (domain.ParticipationEntry, domain.Campaign, error)

	// Participants lists the ledger entries of a campaign.
	Participants(ctx context.Context, campaignID uuid.UUID) ([]domain.ParticipationEntry, error)

	// ExpireDue settles every campaign whose window ended before now and
	// returns how many changed status.
	ExpireDue(ctx context.Context, now time.Time) (int, error)
}

// CampaignPage is one page of a campaign listing.
type CampaignPage struct {
	Items    []domain.Campaign
	Total    int
	Page     int
	PageSize int
}
