// Package optimistic keeps a client-side view of campaigns that reflects a
// join before the server confirms it.
package optimistic

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"groupbuy/internal/core/domain"
)

var (
	// ErrPending is returned when a campaign already has an unconfirmed
	// optimistic change.
	ErrPending = errors.New("a join for this campaign is already pending")
	// ErrNotCached is returned for campaigns the cache has never seen.
	ErrNotCached = errors.New("campaign is not cached")
)

// Joiner performs the authoritative join.
type Joiner interface {
	Join(ctx context.Context, campaignID uuid.UUID, userID string, variant domain.Variant) (domain.JoinResult, error)
}

// JoinerFunc adapts a function to Joiner.
type JoinerFunc func(ctx context.Context, campaignID uuid.UUID, userID string, variant domain.Variant) (domain.JoinResult, error)

func (f JoinerFunc) Join(ctx context.Context, campaignID uuid.UUID, userID string, variant domain.Variant) (domain.JoinResult, error) {
	return f(ctx, campaignID, userID, variant)
}

// Snapshot is the cached state taken before an optimistic change.
type Snapshot struct {
	Campaign domain.Campaign
}

type entry struct {
	campaign domain.Campaign
	pending  bool
}

// Cache holds campaigns by id. At most one optimistic change per campaign is
// outstanding; it ends with Reconcile or Rollback. Listeners are notified of
// every change so all views of a campaign agree.
type Cache struct {
	mu        sync.Mutex
	entries   map[uuid.UUID]*entry
	listeners []func(domain.Campaign)
}

// New returns an empty cache.
func New() *Cache {
	return &Cache{entries: make(map[uuid.UUID]*entry)}
}

// Subscribe registers fn to receive every cached campaign change.
func (c *Cache) Subscribe(fn func(domain.Campaign)) {
	c.mu.Lock()
	c.listeners = append(c.listeners, fn)
	c.mu.Unlock()
}

// Put stores a server snapshot. It fails with ErrPending while an optimistic
// change is outstanding so the pre-change snapshot stays valid.
func (c *Cache) Put(camp domain.Campaign) error {
	c.mu.Lock()
	e, ok := c.entries[camp.ID]
	if ok && e.pending {
		c.mu.Unlock()
		return ErrPending
	}
	c.entries[camp.ID] = &entry{campaign: camp.Clone()}
	c.mu.Unlock()
	c.notify(camp)
	return nil
}

// Get returns the cached campaign and whether it is an unconfirmed view.
func (c *Cache) Get(id uuid.UUID) (domain.Campaign, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[id]
	if !ok {
		return domain.Campaign{}, false, ErrNotCached
	}
	return e.campaign.Clone(), e.pending, nil
}

// ApplyOptimistic increments the cached count by one, marks the campaign
// successful if that reaches the target and returns the prior state.
func (c *Cache) ApplyOptimistic(id uuid.UUID) (Snapshot, error) {
	c.mu.Lock()
	e, ok := c.entries[id]
	switch {
	case !ok:
		c.mu.Unlock()
		return Snapshot{}, ErrNotCached
	case e.pending:
		c.mu.Unlock()
		return Snapshot{}, ErrPending
	case !e.campaign.Status.AcceptsJoins():
		c.mu.Unlock()
		return Snapshot{}, domain.ErrCampaignClosed
	}

	snap := Snapshot{Campaign: e.campaign.Clone()}
	e.pending = true
	e.campaign.CurrentCount++
	if e.campaign.CurrentCount >= e.campaign.TargetCount {
		e.campaign.Status = domain.StatusSuccess
	}
	tentative := e.campaign.Clone()
	c.mu.Unlock()

	c.notify(tentative)
	return snap, nil
}

// Reconcile replaces the cached state with the server's campaign and clears
// the pending flag.
func (c *Cache) Reconcile(id uuid.UUID, authoritative domain.Campaign) {
	c.mu.Lock()
	c.entries[id] = &entry{campaign: authoritative.Clone()}
	c.mu.Unlock()
	c.notify(authoritative)
}

// Rollback restores snap and clears the pending flag.
func (c *Cache) Rollback(id uuid.UUID, snap Snapshot) {
	c.mu.Lock()
	c.entries[id] = &entry{campaign: snap.Campaign.Clone()}
	c.mu.Unlock()
	c.notify(snap.Campaign)
}

// Join applies an optimistic increment, calls j and then reconciles with
// the result or rolls back on any error.
func (c *Cache) Join(ctx context.Context, j Joiner, campaignID uuid.UUID, userID string, variant domain.Variant) (domain.JoinResult, error) {
	snap, err := c.ApplyOptimistic(campaignID)
	if err != nil {
		return domain.JoinResult{}, err
	}
	res, err := j.Join(ctx, campaignID, userID, variant)
	if err != nil {
		c.Rollback(campaignID, snap)
		return domain.JoinResult{}, err
	}
	c.Reconcile(campaignID, res.Campaign)
	return res, nil
}

func (c *Cache) notify(camp domain.Campaign) {
	c.mu.Lock()
	listeners := c.listeners
	c.mu.Unlock()
	for _, fn := range listeners {
		fn(camp.Clone())
	}
}
