package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"groupbuy/internal/core/domain"
	"groupbuy/internal/core/port"
)

// CampaignStore implements port.CampaignStore in process memory. It is used
// for development and as the fast store in tests.
type CampaignStore struct {
	mu        sync.RWMutex
	campaigns map[uuid.UUID]domain.Campaign
	now       func() time.Time
}

// NewCampaignStore returns an empty store.
func NewCampaignStore() *CampaignStore {
	return &CampaignStore{
		campaigns: make(map[uuid.UUID]domain.Campaign),
		now:       time.Now,
	}
}

var _ port.CampaignStore = (*CampaignStore)(nil)

// Get returns a copy of the stored campaign.
func (s *CampaignStore) Get(_ context.Context, id uuid.UUID) (domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.campaigns[id]
	if !ok {
		return domain.Campaign{}, domain.ErrNotFound
	}
	return c.Clone(), nil
}

// Create inserts c at version 1.
func (s *CampaignStore) Create(_ context.Context, c *domain.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if _, exists := s.campaigns[c.ID]; exists {
		return domain.ErrConflict
	}
	c.Version = 1
	s.campaigns[c.ID] = c.Clone()
	return nil
}

// Save performs a compare-and-swap on the version.
func (s *CampaignStore) Save(_ context.Context, c *domain.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.campaigns[c.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if stored.Version != c.Version {
		return domain.ErrConflict
	}
	c.Version++
	c.UpdatedAt = s.now().UTC()
	s.campaigns[c.ID] = c.Clone()
	return nil
}

// List filters, sorts and pages the stored campaigns.
func (s *CampaignStore) List(_ context.Context, q port.ListQuery) ([]domain.Campaign, int, error) {
	q = q.Normalize()

	s.mu.RLock()
	matched := make([]domain.Campaign, 0, len(s.campaigns))
	for _, c := range s.campaigns {
		if q.Status != nil && c.Status != *q.Status {
			continue
		}
		if q.Type != nil && c.Type != *q.Type {
			continue
		}
		matched = append(matched, c.Clone())
	}
	s.mu.RUnlock()

	slices.SortFunc(matched, compareBy(q.Sort))

	total := len(matched)
	from := min(q.Offset(), total)
	to := min(from+q.PageSize, total)
	return matched[from:to], total, nil
}

// ListExpirable returns non-terminal campaigns past their window end.
func (s *CampaignStore) ListExpirable(_ context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var ids []uuid.UUID
	for id, c := range s.campaigns {
		if c.Status.Terminal() || !c.WindowElapsed(now) {
			continue
		}
		ids = append(ids, id)
		if limit > 0 && len(ids) >= limit {
			break
		}
	}
	return ids, nil
}

func compareBy(key port.SortKey) func(a, b domain.Campaign) int {
	tie := func(a, b domain.Campaign) int {
		if r := b.CreatedAt.Compare(a.CreatedAt); r != 0 {
			return r
		}
		return cmp.Compare(a.ID.String(), b.ID.String())
	}
	switch key {
	case port.SortEndingSoon:
		return func(a, b domain.Campaign) int {
			if r := a.WindowEnd.Compare(b.WindowEnd); r != 0 {
				return r
			}
			return tie(a, b)
		}
	case port.SortAlmostThere:
		return func(a, b domain.Campaign) int {
			if r := cmp.Compare(b.ProgressPercent(), a.ProgressPercent()); r != 0 {
				return r
			}
			return tie(a, b)
		}
	case port.SortPopular:
		return func(a, b domain.Campaign) int {
			if r := cmp.Compare(b.CurrentCount, a.CurrentCount); r != 0 {
				return r
			}
			return tie(a, b)
		}
	default:
		return tie
	}
}
