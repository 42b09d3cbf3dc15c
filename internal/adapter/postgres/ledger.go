package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"groupbuy/internal/core/domain"
	"groupbuy/internal/core/port"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

const entryColumns = `id, campaign_id, user_id, variant_size, variant_color, joined_at, is_initiator, revoked, revoked_at`

// Ledger implements port.ParticipationLedger on the participations table.
// The partial unique index on (campaign_id, user_id) WHERE NOT revoked makes
// Append a conditional insert.
type Ledger struct {
	pool *pgxpool.Pool
}

// NewLedger returns a new ledger instance.
func NewLedger(pool *pgxpool.Pool) *Ledger {
	return &Ledger{pool: pool}
}

var _ port.ParticipationLedger = (*Ledger)(nil)

// Append inserts the entry.
func (l *Ledger) Append(ctx context.Context, e domain.ParticipationEntry) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	_, err := l.pool.Exec(ctx, `
        INSERT INTO participations
            (id, campaign_id, user_id, variant_size, variant_color, joined_at, is_initiator)
        VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		e.ID, e.CampaignID, e.UserID, e.Variant.Size, e.Variant.Color, e.JoinedAt, e.IsInitiator)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return domain.ErrAlreadyJoined
		case pgForeignKeyViolation:
			return domain.ErrNotFound
		}
	}
	return err
}

// CountActive counts non-revoked entries.
func (l *Ledger) CountActive(ctx context.Context, campaignID uuid.UUID) (int, error) {
	var n int
	err := l.pool.QueryRow(ctx,
		`SELECT count(*) FROM participations WHERE campaign_id = $1 AND NOT revoked`, campaignID).Scan(&n)
	return n, err
}

// Revoke marks the entry revoked. Already revoked entries are returned as is.
func (l *Ledger) Revoke(ctx context.Context, entryID uuid.UUID) (domain.ParticipationEntry, error) {
	row := l.pool.QueryRow(ctx, `
        UPDATE participations
        SET revoked = true, revoked_at = now()
        WHERE id = $1 AND NOT revoked
        RETURNING `+entryColumns, entryID)
	e, err := scanEntry(row)
	if err == nil {
		return e, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return domain.ParticipationEntry{}, err
	}
	e, err = scanEntry(l.pool.QueryRow(ctx, `SELECT `+entryColumns+` FROM participations WHERE id = $1`, entryID))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ParticipationEntry{}, domain.ErrNotFound
	}
	return e, err
}

// ListByCampaign returns the campaign's entries in join order.
func (l *Ledger) ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]domain.ParticipationEntry, error) {
	rows, err := l.pool.Query(ctx,
		`SELECT `+entryColumns+` FROM participations WHERE campaign_id = $1 ORDER BY joined_at, id`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ParticipationEntry, error) {
		return scanEntry(row)
	})
}

func scanEntry(row pgx.Row) (domain.ParticipationEntry, error) {
	var e domain.ParticipationEntry
	err := row.Scan(
		&e.ID,
		&e.CampaignID,
		&e.UserID,
		&e.Variant.Size,
		&e.Variant.Color,
		&e.JoinedAt,
		&e.IsInitiator,
		&e.Revoked,
		&e.RevokedAt,
	)
	return e, err
}
