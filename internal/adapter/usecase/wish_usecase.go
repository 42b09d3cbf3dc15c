package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"groupbuy/internal/core/domain"
	"groupbuy/internal/core/port"
	"groupbuy/internal/metrics"
)

// DefaultMaxAttempts bounds the optimistic retry loop of a single call.
const DefaultMaxAttempts = 3

// WishUseCase orchestrates the campaign store, the participation ledger and
// the lifecycle state machine. It implements port.WishUseCase.
type WishUseCase struct {
	campaigns port.CampaignStore
	ledger    port.ParticipationLedger
	events    port.EventPublisher
	logger    *slog.Logger
	now       func() time.Time

	// maxAttempts is the number of save attempts before a call gives up
	// with domain.ErrConcurrentUpdate.
	maxAttempts int
	// sweepBatch caps how many campaigns one ExpireDue call settles.
	sweepBatch int
}

// Option customises a WishUseCase.
type Option func(*WishUseCase)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(u *WishUseCase) { u.now = now }
}

// WithMaxAttempts sets the optimistic retry budget. Values below 1 are ignored.
func WithMaxAttempts(n int) Option {
	return func(u *WishUseCase) {
		if n > 0 {
			u.maxAttempts = n
		}
	}
}

// WithEventPublisher relays milestone and status events to p.
func WithEventPublisher(p port.EventPublisher) Option {
	return func(u *WishUseCase) { u.events = p }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(u *WishUseCase) { u.logger = l }
}

// WithSweepBatch caps the number of campaigns settled per ExpireDue call.
func WithSweepBatch(n int) Option {
	return func(u *WishUseCase) { u.sweepBatch = n }
}

// NewWishUseCase creates a use case over the given store and ledger.
func NewWishUseCase(campaigns port.CampaignStore, ledger port.ParticipationLedger, opts ...Option) *WishUseCase {
	u := &WishUseCase{
		campaigns:   campaigns,
		ledger:      ledger,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:         time.Now,
		maxAttempts: DefaultMaxAttempts,
		sweepBatch:  500,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

var _ port.WishUseCase = (*WishUseCase)(nil)

// Create stores a new campaign and auto-joins the initiator.
func (u *WishUseCase) Create(ctx context.Context, spec domain.CampaignSpec) (domain.Campaign, error) {
	now := u.now().UTC()
	c, err := spec.Build(now)
	if err != nil {
		return domain.Campaign{}, err
	}
	if err = u.campaigns.Create(ctx, &c); err != nil {
		return domain.Campaign{}, fmt.Errorf("create campaign: %w", err)
	}

	initiator := domain.ParticipationEntry{
		ID:          uuid.New(),
		CampaignID:  c.ID,
		UserID:      c.CreatedBy,
		Variant:     spec.InitiatorVariant,
		JoinedAt:    now,
		IsInitiator: true,
	}
	if err = u.ledger.Append(ctx, initiator); err != nil {
		u.abandon(ctx, c, now)
		return domain.Campaign{}, fmt.Errorf("append initiator: %w", err)
	}

	created, err := u.settle(ctx, "create", c.ID, &c, u.refreshMutation(now, nil))
	if err != nil {
		return domain.Campaign{}, err
	}
	u.logger.Info("campaign created",
		slog.String("campaign_id", created.ID.String()),
		slog.String("created_by", created.CreatedBy),
		slog.Int("target_count", created.TargetCount))
	return created, nil
}

// abandon fails a campaign whose initiator could not be recorded.
func (u *WishUseCase) abandon(ctx context.Context, c domain.Campaign, now time.Time) {
	_, err := u.settle(ctx, "create", c.ID, &c, func(c *domain.Campaign, count int) (bool, error) {
		c.CurrentCount = count
		domain.ApplyTo(c, domain.Cancelled(now))
		return true, nil
	})
	if err != nil {
		u.logger.Error("fail campaign without initiator",
			slog.String("campaign_id", c.ID.String()), slog.Any("error", err))
		return
	}
	metrics.RecordTransition(string(domain.StatusFailed))
}

// Get returns the campaign after settling count drift and expiry.
func (u *WishUseCase) Get(ctx context.Context, id uuid.UUID) (domain.Campaign, error) {
	c, _, err := u.refresh(ctx, id, nil)
	return c, err
}

// List returns a page of campaigns. Items whose window elapsed since the
// last sweep are settled before they are returned, and dropped when the
// settled status no longer matches the status filter.
func (u *WishUseCase) List(ctx context.Context, q port.ListQuery) (port.CampaignPage, error) {
	q = q.Normalize()
	if !q.Sort.Valid() {
		return port.CampaignPage{}, &domain.ValidationError{Field: "sort", Message: "unsupported sort key"}
	}
	if q.Status != nil && !q.Status.Valid() {
		return port.CampaignPage{}, &domain.ValidationError{Field: "status", Message: "unknown status"}
	}
	if q.Type != nil && !q.Type.Valid() {
		return port.CampaignPage{}, &domain.ValidationError{Field: "type", Message: "unknown campaign type"}
	}

	items, total, err := u.campaigns.List(ctx, q)
	if err != nil {
		return port.CampaignPage{}, fmt.Errorf("list campaigns: %w", err)
	}
	now := u.now()
	for i, c := range items {
		if c.Status.Terminal() || !c.WindowElapsed(now) {
			continue
		}
		fresh, _, err := u.refresh(ctx, c.ID, &items[i])
		if err != nil {
			u.logger.Warn("settle listed campaign",
				slog.String("campaign_id", c.ID.String()), slog.Any("error", err))
			continue
		}
		items[i] = fresh
	}
	if q.Status != nil {
		// settling may have moved items out of the requested status
		kept := items[:0]
		for _, c := range items {
			if c.Status == *q.Status {
				kept = append(kept, c)
			}
		}
		total -= len(items) - len(kept)
		items = kept
	}
	return port.CampaignPage{Items: items, Total: total, Page: q.Page, PageSize: q.PageSize}, nil
}

// Join adds userID to the campaign.
//
// The ledger append happens once. The campaign count is then recounted from
// the ledger, transitioned and saved with a version check; on conflict the
// campaign is re-read and the recount repeated up to maxAttempts times.
// When the budget is exhausted the ledger entry stays in place and later
// reads recount from it.
func (u *WishUseCase) Join(ctx context.Context, campaignID uuid.UUID, userID string, variant domain.Variant) (domain.JoinResult, error) {
	start := time.Now()
	res, err := u.join(ctx, campaignID, userID, variant)
	metrics.RecordJoin(joinOutcome(err), time.Since(start))
	return res, err
}

func (u *WishUseCase) join(ctx context.Context, campaignID uuid.UUID, userID string, variant domain.Variant) (domain.JoinResult, error) {
	if strings.TrimSpace(userID) == "" {
		return domain.JoinResult{}, &domain.ValidationError{Field: "user_id", Message: "is required"}
	}

	c, err := u.campaigns.Get(ctx, campaignID)
	if err != nil {
		return domain.JoinResult{}, err
	}
	now := u.now().UTC()
	if c.Status.Terminal() {
		return domain.JoinResult{}, domain.ErrCampaignClosed
	}
	if !c.InWindow(now) {
		return domain.JoinResult{}, domain.ErrWindowClosed
	}

	entry := domain.ParticipationEntry{
		ID:         uuid.New(),
		CampaignID: campaignID,
		UserID:     userID,
		Variant:    variant,
		JoinedAt:   now,
	}
	if err = u.ledger.Append(ctx, entry); err != nil {
		return domain.JoinResult{}, err
	}

	var (
		from       domain.Status
		transition domain.Transition
		closed     bool
	)
	saved, err := u.settle(ctx, "join", campaignID, &c, func(c *domain.Campaign, count int) (bool, error) {
		if c.Status == domain.StatusFailed || c.Status == domain.StatusExpired {
			closed = true
			return false, nil
		}
		if count > c.TargetCount {
			// entries appended by racing joins past the target; only the
			// first TargetCount active entries keep their place
			member, err := u.withinTarget(ctx, *c, entry.ID)
			if err != nil {
				return false, err
			}
			if !member {
				closed = true
				return false, nil
			}
			count = c.TargetCount
		}
		from = c.Status
		c.CurrentCount = count
		transition = domain.ApplyTo(c, domain.Joined(count, now))
		return true, nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrConcurrentUpdate) {
			u.logger.Warn("join retries exhausted",
				slog.String("campaign_id", campaignID.String()),
				slog.String("user_id", userID),
				slog.Int("attempts", u.maxAttempts))
		}
		return domain.JoinResult{}, err
	}
	if closed {
		// the campaign closed or filled between the first read and the save
		u.undoJoin(ctx, entry)
		return domain.JoinResult{}, domain.ErrCampaignClosed
	}

	u.afterTransition(ctx, saved, from, transition.NewlyReachedMilestones)
	u.logger.Info("participant joined",
		slog.String("campaign_id", campaignID.String()),
		slog.String("user_id", userID),
		slog.Int("current_count", saved.CurrentCount),
		slog.String("status", string(saved.Status)))

	return domain.JoinResult{
		Entry:                  entry,
		Campaign:               saved,
		NewlyReachedMilestones: transition.NewlyReachedMilestones,
	}, nil
}

// withinTarget reports whether entryID ranks among the first TargetCount
// active entries of c in join order.
func (u *WishUseCase) withinTarget(ctx context.Context, c domain.Campaign, entryID uuid.UUID) (bool, error) {
	entries, err := u.ledger.ListByCampaign(ctx, c.ID)
	if err != nil {
		return false, fmt.Errorf("list participants: %w", err)
	}
	rank := 0
	for _, e := range entries {
		if e.Revoked {
			continue
		}
		if e.ID == entryID {
			return rank < c.TargetCount, nil
		}
		rank++
	}
	return false, nil
}

func (u *WishUseCase) undoJoin(ctx context.Context, entry domain.ParticipationEntry) {
	if _, err := u.ledger.Revoke(ctx, entry.ID); err != nil {
		u.logger.Error("revoke entry of closed campaign",
			slog.String("entry_id", entry.ID.String()), slog.Any("error", err))
		return
	}
	if _, _, err := u.refresh(ctx, entry.CampaignID, nil); err != nil {
		u.logger.Warn("resync count after revoke",
			slog.String("campaign_id", entry.CampaignID.String()), slog.Any("error", err))
	}
}

// Cancel moves the campaign to failed on behalf of its creator.
func (u *WishUseCase) Cancel(ctx context.Context, campaignID uuid.UUID, actorID string) (domain.Campaign, error) {
	now := u.now().UTC()
	var from domain.Status
	c, err := u.settle(ctx, "cancel", campaignID, nil, func(c *domain.Campaign, count int) (bool, error) {
		if c.CreatedBy != actorID {
			return false, domain.ErrNotCreator
		}
		from = c.Status
		if c.Status.Terminal() {
			return false, nil
		}
		c.CurrentCount = count
		domain.ApplyTo(c, domain.Cancelled(now))
		return true, nil
	})
	if err != nil {
		return domain.Campaign{}, err
	}
	if c.Status != from {
		u.afterTransition(ctx, c, from, nil)
		u.logger.Info("campaign cancelled", slog.String("campaign_id", c.ID.String()))
	}
	return c, nil
}

// Revoke marks a participation revoked and resyncs the campaign count. The
// campaign status is left as is.
func (u *WishUseCase) Revoke(ctx context.Context, entryID uuid.UUID) (domain.ParticipationEntry, domain.Campaign, error) {
	entry, err := u.ledger.Revoke(ctx, entryID)
	if err != nil {
		return domain.ParticipationEntry{}, domain.Campaign{}, err
	}
	c, err := u.settle(ctx, "revoke", entry.CampaignID, nil, func(c *domain.Campaign, count int) (bool, error) {
		if c.CurrentCount == count {
			return false, nil
		}
		c.CurrentCount = count
		return true, nil
	})
	if err != nil {
		return entry, domain.Campaign{}, err
	}
	u.logger.Info("participation revoked",
		slog.String("entry_id", entry.ID.String()),
		slog.String("campaign_id", entry.CampaignID.String()),
		slog.Int("current_count", c.CurrentCount))
	return entry, c, nil
}

// Participants lists the ledger entries of an existing campaign.
func (u *WishUseCase) Participants(ctx context.Context, campaignID uuid.UUID) ([]domain.ParticipationEntry, error) {
	if _, err := u.campaigns.Get(ctx, campaignID); err != nil {
		return nil, err
	}
	return u.ledger.ListByCampaign(ctx, campaignID)
}

// ExpireDue settles campaigns whose window ended before now. Re-running it
// on already expired campaigns changes nothing.
func (u *WishUseCase) ExpireDue(ctx context.Context, now time.Time) (int, error) {
	ids, err := u.campaigns.ListExpirable(ctx, now, u.sweepBatch)
	if err != nil {
		return 0, fmt.Errorf("list expirable campaigns: %w", err)
	}
	changed := 0
	var errs []error
	for _, id := range ids {
		if err = ctx.Err(); err != nil {
			return changed, err
		}
		_, moved, err := u.refresh(ctx, id, nil)
		if err != nil {
			errs = append(errs, fmt.Errorf("campaign %s: %w", id, err))
			continue
		}
		if moved {
			changed++
		}
	}
	return changed, errors.Join(errs...)
}

// refresh recounts the campaign from the ledger and applies any transition
// that is due: milestones or target reached by entries whose save never
// landed, and expiry of an elapsed window. It reports whether the status
// changed.
func (u *WishUseCase) refresh(ctx context.Context, id uuid.UUID, first *domain.Campaign) (domain.Campaign, bool, error) {
	now := u.now().UTC()
	var (
		from    domain.Status
		reached []domain.Milestone
	)
	c, err := u.settle(ctx, "refresh", id, first, u.refreshMutation(now, func(status domain.Status, newly []domain.Milestone, transitioned bool) {
		from, reached = "", nil
		if transitioned {
			from, reached = status, newly
		}
	}))
	if err != nil {
		return domain.Campaign{}, false, err
	}
	if from == "" {
		return c, false, nil
	}
	u.afterTransition(ctx, c, from, reached)
	return c, c.Status != from, nil
}

// refreshMutation returns the settle step shared by reads, creation and the
// expiry sweep. observe is called on every attempt with the status before the
// step, the milestones it newly reached and whether it transitioned.
func (u *WishUseCase) refreshMutation(now time.Time, observe func(domain.Status, []domain.Milestone, bool)) func(*domain.Campaign, int) (bool, error) {
	return func(c *domain.Campaign, count int) (bool, error) {
		from := c.Status
		dirty := c.CurrentCount != count
		c.CurrentCount = count
		if c.Status.Terminal() {
			if observe != nil {
				observe(from, nil, false)
			}
			return dirty, nil
		}

		var reached []domain.Milestone
		transitioned := false
		if count >= c.TargetCount || hasReachable(c.Milestones, count) {
			reached = domain.ApplyTo(c, domain.Joined(count, now)).NewlyReachedMilestones
			transitioned = true
		}
		if !c.Status.Terminal() && c.WindowElapsed(now) {
			domain.ApplyTo(c, domain.WindowElapsed(now))
			transitioned = true
		}
		if observe != nil {
			observe(from, reached, transitioned)
		}
		return dirty || transitioned, nil
	}
}

func hasReachable(ms []domain.Milestone, count int) bool {
	for _, m := range ms {
		if !m.Reached && count >= m.ThresholdCount {
			return true
		}
	}
	return false
}

// settle runs read, recount, mutate and save until the save lands or the
// attempt budget is spent. first, when set, replaces the initial read. A
// mutation reporting no change returns the campaign without saving.
func (u *WishUseCase) settle(
	ctx context.Context,
	operation string,
	id uuid.UUID,
	first *domain.Campaign,
	mutate func(c *domain.Campaign, count int) (bool, error),
) (domain.Campaign, error) {
	for attempt := 1; attempt <= u.maxAttempts; attempt++ {
		var c domain.Campaign
		if attempt == 1 && first != nil {
			c = first.Clone()
		} else {
			var err error
			if c, err = u.campaigns.Get(ctx, id); err != nil {
				return domain.Campaign{}, err
			}
		}

		count, err := u.ledger.CountActive(ctx, id)
		if err != nil {
			return domain.Campaign{}, fmt.Errorf("count participants: %w", err)
		}
		dirty, err := mutate(&c, count)
		if err != nil {
			return domain.Campaign{}, err
		}
		if !dirty {
			return c, nil
		}

		err = u.campaigns.Save(ctx, &c)
		if err == nil {
			return c, nil
		}
		if !errors.Is(err, domain.ErrConflict) {
			return domain.Campaign{}, fmt.Errorf("save campaign: %w", err)
		}
		metrics.RecordConflict(operation)
		u.logger.Debug("campaign version conflict",
			slog.String("operation", operation),
			slog.String("campaign_id", id.String()),
			slog.Int("attempt", attempt))
	}
	return domain.Campaign{}, domain.ErrConcurrentUpdate
}

// afterTransition records metrics and relays events for a saved campaign.
func (u *WishUseCase) afterTransition(ctx context.Context, c domain.Campaign, from domain.Status, reached []domain.Milestone) {
	metrics.RecordMilestones(len(reached))
	var events []port.CampaignEvent
	for i := range reached {
		m := reached[i]
		events = append(events, port.CampaignEvent{
			Kind:       port.EventMilestoneReached,
			CampaignID: c.ID,
			Status:     c.Status,
			Count:      c.CurrentCount,
			Target:     c.TargetCount,
			Milestone:  &m,
			At:         c.UpdatedAt,
		})
	}
	if c.Status != from {
		metrics.RecordTransition(string(c.Status))
		events = append(events, port.CampaignEvent{
			Kind:       port.EventStatusChanged,
			CampaignID: c.ID,
			Status:     c.Status,
			Count:      c.CurrentCount,
			Target:     c.TargetCount,
			At:         c.UpdatedAt,
		})
	}
	if len(events) == 0 || u.events == nil {
		return
	}
	if err := u.events.Publish(ctx, events...); err != nil {
		u.logger.Error("publish campaign events",
			slog.String("campaign_id", c.ID.String()), slog.Any("error", err))
	}
}

func joinOutcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrCampaignClosed):
		return "campaign_closed"
	case errors.Is(err, domain.ErrAlreadyJoined):
		return "already_joined"
	case errors.Is(err, domain.ErrWindowClosed):
		return "window_closed"
	case errors.Is(err, domain.ErrConcurrentUpdate):
		return "concurrent_update"
	default:
		return "error"
	}
}
