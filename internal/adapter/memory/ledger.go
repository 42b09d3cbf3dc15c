package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"groupbuy/internal/core/domain"
	"groupbuy/internal/core/port"
)

type participantKey struct {
	campaignID uuid.UUID
	userID     string
}

// Ledger implements port.ParticipationLedger in process memory.
type Ledger struct {
	mu         sync.RWMutex
	entries    map[uuid.UUID]domain.ParticipationEntry
	byCampaign map[uuid.UUID][]uuid.UUID
	active     map[participantKey]uuid.UUID
	now        func() time.Time
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		entries:    make(map[uuid.UUID]domain.ParticipationEntry),
		byCampaign: make(map[uuid.UUID][]uuid.UUID),
		active:     make(map[participantKey]uuid.UUID),
		now:        time.Now,
	}
}

var _ port.ParticipationLedger = (*Ledger)(nil)

// Append is a conditional insert on (campaign, user) among active entries.
func (l *Ledger) Append(_ context.Context, e domain.ParticipationEntry) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	key := participantKey{campaignID: e.CampaignID, userID: e.UserID}
	if _, ok := l.active[key]; ok {
		return domain.ErrAlreadyJoined
	}
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	e.Revoked = false
	e.RevokedAt = nil
	l.entries[e.ID] = e
	l.byCampaign[e.CampaignID] = append(l.byCampaign[e.CampaignID], e.ID)
	l.active[key] = e.ID
	return nil
}

// CountActive counts non-revoked entries of the campaign.
func (l *Ledger) CountActive(_ context.Context, campaignID uuid.UUID) (int, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	n := 0
	for _, id := range l.byCampaign[campaignID] {
		if !l.entries[id].Revoked {
			n++
		}
	}
	return n, nil
}

// Revoke marks the entry revoked.
func (l *Ledger) Revoke(_ context.Context, entryID uuid.UUID) (domain.ParticipationEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, ok := l.entries[entryID]
	if !ok {
		return domain.ParticipationEntry{}, domain.ErrNotFound
	}
	if e.Revoked {
		return e, nil
	}
	at := l.now().UTC()
	e.Revoked = true
	e.RevokedAt = &at
	l.entries[entryID] = e
	delete(l.active, participantKey{campaignID: e.CampaignID, userID: e.UserID})
	return e, nil
}

// ListByCampaign returns entries in join order.
func (l *Ledger) ListByCampaign(_ context.Context, campaignID uuid.UUID) ([]domain.ParticipationEntry, error) {
	l.mu.RLock()
	ids := l.byCampaign[campaignID]
	out := make([]domain.ParticipationEntry, 0, len(ids))
	for _, id := range ids {
		out = append(out, l.entries[id])
	}
	l.mu.RUnlock()
	slices.SortStableFunc(out, func(a, b domain.ParticipationEntry) int {
		return a.JoinedAt.Compare(b.JoinedAt)
	})
	return out, nil
}
