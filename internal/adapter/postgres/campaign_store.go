package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"groupbuy/internal/core/domain"
	"groupbuy/internal/core/port"
)

const campaignColumns = `
            id,
            product_id,
            product_name,
            product_image_url,
            campaign_type,
            status,
            target_count,
            current_count,
            original_price,
            group_price,
            milestones,
            window_start,
            window_end,
            created_by,
            version,
            created_at,
            updated_at`

// CampaignStore implements port.CampaignStore using pgxpool for PostgreSQL.
// Writes are guarded by the version column.
type CampaignStore struct {
	pool *pgxpool.Pool
}

// NewCampaignStore returns a new store instance.
func NewCampaignStore(pool *pgxpool.Pool) *CampaignStore {
	return &CampaignStore{pool: pool}
}

var _ port.CampaignStore = (*CampaignStore)(nil)

// Get returns a campaign by id.
func (s *CampaignStore) Get(ctx context.Context, id uuid.UUID) (domain.Campaign, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	c, err := scanCampaign(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Campaign{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Campaign{}, err
	}
	return c, nil
}

// Create inserts c at version 1.
func (s *CampaignStore) Create(ctx context.Context, c *domain.Campaign) error {
	milestones, err := json.Marshal(c.Milestones)
	if err != nil {
		return fmt.Errorf("encode milestones: %w", err)
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	err = s.pool.QueryRow(ctx, `
        INSERT INTO campaigns
            (id, product_id, product_name, product_image_url, campaign_type, status,
             target_count, current_count, original_price, group_price, milestones,
             window_start, window_end, created_by, version, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,1,$15,$15)
        RETURNING version`,
		c.ID, c.Product.ID, c.Product.Name, c.Product.ImageURL, string(c.Type), string(c.Status),
		c.TargetCount, c.CurrentCount, c.OriginalPrice, c.GroupPrice, milestones,
		c.WindowStart, c.WindowEnd, c.CreatedBy, c.CreatedAt,
	).Scan(&c.Version)
	if err != nil {
		return err
	}
	c.UpdatedAt = c.CreatedAt
	return nil
}

// Save updates the mutable columns when the stored version still matches.
func (s *CampaignStore) Save(ctx context.Context, c *domain.Campaign) error {
	milestones, err := json.Marshal(c.Milestones)
	if err != nil {
		return fmt.Errorf("encode milestones: %w", err)
	}
	err = s.pool.QueryRow(ctx, `
        UPDATE campaigns
        SET status = $3,
            current_count = $4,
            milestones = $5,
            version = version + 1,
            updated_at = now()
        WHERE id = $1 AND version = $2
        RETURNING version, updated_at`,
		c.ID, c.Version, string(c.Status), c.CurrentCount, milestones,
	).Scan(&c.Version, &c.UpdatedAt)
	if err == nil {
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}
	// distinguish a stale version from a missing row
	var exists bool
	if err = s.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM campaigns WHERE id = $1)`, c.ID).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}
	return domain.ErrConflict
}

// List returns one page of campaigns and the total number of matches.
func (s *CampaignStore) List(ctx context.Context, q port.ListQuery) ([]domain.Campaign, int, error) {
	q = q.Normalize()
	var (
		conds []string
		args  []any
	)
	if q.Status != nil {
		args = append(args, string(*q.Status))
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if q.Type != nil {
		args = append(args, string(*q.Type))
		conds = append(conds, fmt.Sprintf("campaign_type = $%d", len(args)))
	}
	where := ""
	if len(conds) > 0 {
		where = "WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := s.pool.QueryRow(ctx, `SELECT count(*) FROM campaigns `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, q.PageSize, q.Offset())
	query := fmt.Sprintf(`SELECT %s FROM campaigns %s ORDER BY %s LIMIT $%d OFFSET $%d`,
		campaignColumns, where, orderBy(q.Sort), len(args)-1, len(args))
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaign(row)
	})
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// ListExpirable returns ids of non-terminal campaigns whose window ended.
func (s *CampaignStore) ListExpirable(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	if limit <= 0 {
		limit = 1000
	}
	rows, err := s.pool.Query(ctx, `
        SELECT id FROM campaigns
        WHERE status IN ('waiting', 'active') AND window_end < $1
        ORDER BY window_end
        LIMIT $2`, now, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
}

func orderBy(key port.SortKey) string {
	switch key {
	case port.SortEndingSoon:
		return "window_end ASC, created_at DESC, id"
	case port.SortAlmostThere:
		return "LEAST(100, ROUND(current_count * 100.0 / target_count)) DESC, created_at DESC, id"
	case port.SortPopular:
		return "current_count DESC, created_at DESC, id"
	default:
		return "created_at DESC, id"
	}
}

func scanCampaign(row pgx.Row) (domain.Campaign, error) {
	var (
		c          domain.Campaign
		milestones []byte
		ctype      string
		status     string
	)
	err := row.Scan(
		&c.ID,
		&c.Product.ID,
		&c.Product.Name,
		&c.Product.ImageURL,
		&ctype,
		&status,
		&c.TargetCount,
		&c.CurrentCount,
		&c.OriginalPrice,
		&c.GroupPrice,
		&milestones,
		&c.WindowStart,
		&c.WindowEnd,
		&c.CreatedBy,
		&c.Version,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return domain.Campaign{}, err
	}
	c.Type = domain.CampaignType(ctype)
	c.Status = domain.Status(status)
	if err = json.Unmarshal(milestones, &c.Milestones); err != nil {
		return domain.Campaign{}, fmt.Errorf("decode milestones: %w", err)
	}
	return c, nil
}
