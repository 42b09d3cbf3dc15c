// Package api holds the JSON wire types shared by the HTTP adapter and the
// HTTP client.
package api

import (
	"time"

	"github.com/google/uuid"

	"groupbuy/internal/core/domain"
	"groupbuy/internal/core/port"
)

type Product struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url,omitempty"`
}

// Campaign is the wire form of a campaign. ProgressPercent, SavingsPercent
// and RemainingSeconds are derived on every response.
type Campaign struct {
	ID               uuid.UUID          `json:"id"`
	Product          Product            `json:"product"`
	Type             string             `json:"type"`
	Status           string             `json:"status"`
	TargetCount      int                `json:"target_count"`
	CurrentCount     int                `json:"current_count"`
	ProgressPercent  int                `json:"progress_percent"`
	OriginalPrice    int64              `json:"original_price"`
	GroupPrice       int64              `json:"group_price"`
	SavingsPercent   int                `json:"savings_percent"`
	Milestones       []domain.Milestone `json:"milestones"`
	WindowStart      time.Time          `json:"window_start"`
	WindowEnd        time.Time          `json:"window_end"`
	RemainingSeconds int64              `json:"remaining_seconds"`
	CreatedBy        string             `json:"created_by"`
	Version          int64              `json:"version"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

// FromCampaign converts a domain campaign for a response rendered at now.
func FromCampaign(c domain.Campaign, now time.Time) Campaign {
	milestones := c.Milestones
	if milestones == nil {
		milestones = []domain.Milestone{}
	}
	return Campaign{
		ID:               c.ID,
		Product:          Product{ID: c.Product.ID, Name: c.Product.Name, ImageURL: c.Product.ImageURL},
		Type:             string(c.Type),
		Status:           string(c.Status),
		TargetCount:      c.TargetCount,
		CurrentCount:     c.CurrentCount,
		ProgressPercent:  c.ProgressPercent(),
		OriginalPrice:    c.OriginalPrice,
		GroupPrice:       c.GroupPrice,
		SavingsPercent:   c.SavingsPercent(),
		Milestones:       milestones,
		WindowStart:      c.WindowStart,
		WindowEnd:        c.WindowEnd,
		RemainingSeconds: int64(c.Remaining(now).Seconds()),
		CreatedBy:        c.CreatedBy,
		Version:          c.Version,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

// Domain converts the wire form back. Derived fields are dropped.
func (c Campaign) Domain() domain.Campaign {
	return domain.Campaign{
		ID:            c.ID,
		Product:       domain.ProductRef{ID: c.Product.ID, Name: c.Product.Name, ImageURL: c.Product.ImageURL},
		Type:          domain.CampaignType(c.Type),
		Status:        domain.Status(c.Status),
		TargetCount:   c.TargetCount,
		CurrentCount:  c.CurrentCount,
		OriginalPrice: c.OriginalPrice,
		GroupPrice:    c.GroupPrice,
		Milestones:    c.Milestones,
		WindowStart:   c.WindowStart,
		WindowEnd:     c.WindowEnd,
		CreatedBy:     c.CreatedBy,
		Version:       c.Version,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

type Entry struct {
	ID          uuid.UUID      `json:"id"`
	CampaignID  uuid.UUID      `json:"campaign_id"`
	UserID      string         `json:"user_id"`
	Variant     domain.Variant `json:"variant"`
	JoinedAt    time.Time      `json:"joined_at"`
	IsInitiator bool           `json:"is_initiator"`
	Revoked     bool           `json:"revoked"`
	RevokedAt   *time.Time     `json:"revoked_at,omitempty"`
}

func FromEntry(e domain.ParticipationEntry) Entry {
	return Entry{
		ID:          e.ID,
		CampaignID:  e.CampaignID,
		UserID:      e.UserID,
		Variant:     e.Variant,
		JoinedAt:    e.JoinedAt,
		IsInitiator: e.IsInitiator,
		Revoked:     e.Revoked,
		RevokedAt:   e.RevokedAt,
	}
}

func (e Entry) Domain() domain.ParticipationEntry {
	return domain.ParticipationEntry{
		ID:          e.ID,
		CampaignID:  e.CampaignID,
		UserID:      e.UserID,
		Variant:     e.Variant,
		JoinedAt:    e.JoinedAt,
		IsInitiator: e.IsInitiator,
		Revoked:     e.Revoked,
		RevokedAt:   e.RevokedAt,
	}
}

type CreateRequest struct {
	Product       Product            `json:"product"`
	Type          string             `json:"type"`
	TargetCount   int                `json:"target_count"`
	OriginalPrice int64              `json:"original_price"`
	GroupPrice    int64              `json:"group_price"`
	Milestones    []domain.Milestone `json:"milestones,omitempty"`
	WindowStart   *time.Time         `json:"window_start,omitempty"`
	WindowEnd     *time.Time         `json:"window_end,omitempty"`
	CreatedBy     string             `json:"created_by"`
	Variant       domain.Variant     `json:"variant"`
}

// Spec converts the request into a domain.CampaignSpec.
func (r CreateRequest) Spec() domain.CampaignSpec {
	spec := domain.CampaignSpec{
		Product:          domain.ProductRef{ID: r.Product.ID, Name: r.Product.Name, ImageURL: r.Product.ImageURL},
		Type:             domain.CampaignType(r.Type),
		TargetCount:      r.TargetCount,
		OriginalPrice:    r.OriginalPrice,
		GroupPrice:       r.GroupPrice,
		Milestones:       r.Milestones,
		CreatedBy:        r.CreatedBy,
		InitiatorVariant: r.Variant,
	}
	if r.WindowStart != nil {
		spec.WindowStart = *r.WindowStart
	}
	if r.WindowEnd != nil {
		spec.WindowEnd = *r.WindowEnd
	}
	return spec
}

type JoinRequest struct {
	UserID  string         `json:"user_id"`
	Variant domain.Variant `json:"variant"`
}

type JoinResponse struct {
	Entry                  Entry              `json:"entry"`
	Campaign               Campaign           `json:"campaign"`
	NewlyReachedMilestones []domain.Milestone `json:"newly_reached_milestones"`
}

func FromJoinResult(r domain.JoinResult, now time.Time) JoinResponse {
	reached := r.NewlyReachedMilestones
	if reached == nil {
		reached = []domain.Milestone{}
	}
	return JoinResponse{
		Entry:                  FromEntry(r.Entry),
		Campaign:               FromCampaign(r.Campaign, now),
		NewlyReachedMilestones: reached,
	}
}

func (r JoinResponse) Domain() domain.JoinResult {
	return domain.JoinResult{
		Entry:                  r.Entry.Domain(),
		Campaign:               r.Campaign.Domain(),
		NewlyReachedMilestones: r.NewlyReachedMilestones,
	}
}

type CancelRequest struct {
	ActorID string `json:"actor_id"`
}

type RevokeResponse struct {
	Entry    Entry    `json:"entry"`
	Campaign Campaign `json:"campaign"`
}

type ListResponse struct {
	Items    []Campaign `json:"items"`
	Total    int        `json:"total"`
	Page     int        `json:"page"`
	PageSize int        `json:"page_size"`
}

func FromPage(p port.CampaignPage, now time.Time) ListResponse {
	items := make([]Campaign, 0, len(p.Items))
	for _, c := range p.Items {
		items = append(items, FromCampaign(c, now))
	}
	return ListResponse{Items: items, Total: p.Total, Page: p.Page, PageSize: p.PageSize}
}

type ParticipantsResponse struct {
	Items []Entry `json:"items"`
}
