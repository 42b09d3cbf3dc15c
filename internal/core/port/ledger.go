package port

import (
	"context"

	"github.com/google/uuid"

	"groupbuy/internal/core/domain"
)

// ParticipationLedger is the append-only record of joins and the source of
// truth for participant counts.
//go:generate mockery --name ParticipationLedger --output mocks --outpkg mocks --structname MockParticipationLedger --filename mock_participation_ledger.go --with-expecter
type ParticipationLedger interface {
	// Append stores e. It fails with domain.ErrAlreadyJoined when the user
	// already holds a non-revoked entry for the campaign.
	Append(ctx context.Context, e domain.ParticipationEntry) error
	// CountActive returns the number of non-revoked entries of a campaign.
	CountActive(ctx context.Context, campaignID uuid.UUID) (int, error)
	// Revoke marks an entry revoked and returns it. Revoking an already
	// revoked entry is a no-op.
	Revoke(ctx context.Context, entryID uuid.UUID) (domain.ParticipationEntry, error)
	// ListByCampaign returns all entries of a campaign ordered by JoinedAt.
	ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]domain.ParticipationEntry, error)
}
