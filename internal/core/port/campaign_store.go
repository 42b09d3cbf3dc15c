package port

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"groupbuy/internal/core/domain"
)

// CampaignStore persists campaigns with optimistic concurrency. It is an
// outbound port in hexagonal architecture. Implementations must be
// concurrency-safe.
//go:generate mockery --name CampaignStore --output mocks --outpkg mocks --structname MockCampaignStore --filename mock_campaign_store.go --with-expecter
type CampaignStore interface {
	// Get returns the campaign with its current version or domain.ErrNotFound.
	Get(ctx context.Context, id uuid.UUID) (domain.Campaign, error)
	// Create inserts a new campaign at version 1 and updates c.Version.
	Create(ctx context.Context, c *domain.Campaign) error
	// Save writes c if the stored version still equals c.Version, then bumps
	// c.Version. It fails with domain.ErrConflict when the stored version has
	// advanced and domain.ErrNotFound when the campaign is gone.
	Save(ctx context.Context, c *domain.Campaign) error
	// List returns one page of campaigns matching the filter and the total
	// number of matches.
	List(ctx context.Context, q ListQuery) ([]domain.Campaign, int, error)
	// ListExpirable returns ids of non-terminal campaigns whose window ended
	// before now.
	ListExpirable(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error)
}

// SortKey orders campaign listings.
type SortKey string

const (
	SortNewest      SortKey = "newest"
	SortEndingSoon  SortKey = "endingSoon"
	SortAlmostThere SortKey = "almostThere"
	SortPopular     SortKey = "popular"
)

// Valid reports whether k is a supported sort key.
func (k SortKey) Valid() bool {
	switch k {
	case SortNewest, SortEndingSoon, SortAlmostThere, SortPopular:
		return true
	default:
		return false
	}
}

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ListQuery selects a page of campaigns. Page is 1-based.
type ListQuery struct {
	Status   *domain.Status
	Type     *domain.CampaignType
	Sort     SortKey
	Page     int
	PageSize int
}

// Normalize fills defaults and clamps the page and page size.
func (q ListQuery) Normalize() ListQuery {
	if q.Sort == "" {
		q.Sort = SortNewest
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize <= 0 {
		q.PageSize = DefaultPageSize
	}
	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}
	// keep Offset within int
	if maxPage := math.MaxInt / q.PageSize; q.Page > maxPage {
		q.Page = maxPage
	}
	return q
}

// Offset is the number of rows to skip for the page.
func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.PageSize
}
