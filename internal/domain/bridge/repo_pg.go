package bridge

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ananya-Nair20/T-Care/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const bridgeCols = `id, patient_id, donor_id, is_active, compatibility_score,
	total_donations, last_donation_date, next_transfusion_date, created_at, updated_at`

func scanBridge(row pgx.Row) (*Bridge, error) {
	var b Bridge
	err := row.Scan(&b.ID, &b.PatientID, &b.DonorID, &b.IsActive, &b.CompatibilityScore,
		&b.TotalDonations, &b.LastDonationDate, &b.NextTransfusionDate, &b.CreatedAt, &b.UpdatedAt)
	return &b, err
}

func (r *repoPG) Create(ctx context.Context, b *Bridge) error {
	b.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO bridge_relationships (id, patient_id, donor_id, is_active,
			compatibility_score, total_donations, last_donation_date, next_transfusion_date)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		b.ID, b.PatientID, b.DonorID, b.IsActive,
		b.CompatibilityScore, b.TotalDonations, b.LastDonationDate, b.NextTransfusionDate)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Bridge, error) {
	b, err := scanBridge(r.conn(ctx).QueryRow(ctx,
		`SELECT `+bridgeCols+` FROM bridge_relationships WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *repoPG) GetActiveByPair(ctx context.Context, patientID, donorID string) (*Bridge, error) {
	b, err := scanBridge(r.conn(ctx).QueryRow(ctx, `
		SELECT `+bridgeCols+` FROM bridge_relationships
		WHERE patient_id = $1 AND donor_id = $2 AND is_active`, patientID, donorID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *repoPG) Update(ctx context.Context, b *Bridge) error {
	tag, err := r.conn(ctx).Exec(ctx, `
		UPDATE bridge_relationships SET is_active=$2, compatibility_score=$3,
			total_donations=$4, last_donation_date=$5, next_transfusion_date=$6,
			updated_at=NOW()
		WHERE id = $1`,
		b.ID, b.IsActive, b.CompatibilityScore,
		b.TotalDonations, b.LastDonationDate, b.NextTransfusionDate)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID string, activeOnly bool) ([]*Bridge, error) {
	return r.list(ctx, `patient_id`, patientID, activeOnly)
}

func (r *repoPG) ListByDonor(ctx context.Context, donorID string, activeOnly bool) ([]*Bridge, error) {
	return r.list(ctx, `donor_id`, donorID, activeOnly)
}

func (r *repoPG) list(ctx context.Context, column, id string, activeOnly bool) ([]*Bridge, error) {
	query := `SELECT ` + bridgeCols + ` FROM bridge_relationships WHERE ` + column + ` = $1`
	if activeOnly {
		query += ` AND is_active`
	}
	query += ` ORDER BY created_at, id`

	rows, err := r.conn(ctx).Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Bridge
	for rows.Next() {
		b, err := scanBridge(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	return items, rows.Err()
}
