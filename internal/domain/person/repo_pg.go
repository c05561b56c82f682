package person

import (
	"context"
	"errors"
	"fmt"

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

const personCols = `id, role, blood_type, latitude, longitude,
	eligibility_status, next_eligible_date, last_donation_date,
	donations_till_date, total_calls, calls_to_donations_ratio,
	activity_status, in_bridge, created_at, updated_at`

func scanPerson(row pgx.Row) (*Person, error) {
	var p Person
	err := row.Scan(&p.ID, &p.Role, &p.BloodType, &p.Latitude, &p.Longitude,
		&p.EligibilityStatus, &p.NextEligibleDate, &p.LastDonationDate,
		&p.DonationsTillDate, &p.TotalCalls, &p.CallsToDonationsRatio,
		&p.ActivityStatus, &p.InBridge, &p.CreatedAt, &p.UpdatedAt)
	return &p, err
}

func (r *repoPG) Create(ctx context.Context, p *Person) error {
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO persons (id, role, blood_type, latitude, longitude,
			eligibility_status, next_eligible_date, last_donation_date,
			donations_till_date, total_calls, calls_to_donations_ratio,
			activity_status, in_bridge)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		p.ID, p.Role, p.BloodType, p.Latitude, p.Longitude,
		p.EligibilityStatus, p.NextEligibleDate, p.LastDonationDate,
		p.DonationsTillDate, p.TotalCalls, p.CallsToDonationsRatio,
		p.ActivityStatus, p.InBridge)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id string) (*Person, error) {
	p, err := scanPerson(r.conn(ctx).QueryRow(ctx, `SELECT `+personCols+` FROM persons WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *repoPG) Update(ctx context.Context, p *Person) error {
	tag, err := r.conn(ctx).Exec(ctx, `
		UPDATE persons SET role=$2, blood_type=$3, latitude=$4, longitude=$5,
			eligibility_status=$6, next_eligible_date=$7, last_donation_date=$8,
			donations_till_date=$9, total_calls=$10, calls_to_donations_ratio=$11,
			activity_status=$12, in_bridge=$13, updated_at=NOW()
		WHERE id = $1`,
		p.ID, p.Role, p.BloodType, p.Latitude, p.Longitude,
		p.EligibilityStatus, p.NextEligibleDate, p.LastDonationDate,
		p.DonationsTillDate, p.TotalCalls, p.CallsToDonationsRatio,
		p.ActivityStatus, p.InBridge)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) ListDonors(ctx context.Context, f DonorFilter, limit, offset int) ([]*Person, int, error) {
	query := `SELECT ` + personCols + ` FROM persons WHERE role = 'donor'`
	countQuery := `SELECT COUNT(*) FROM persons WHERE role = 'donor'`
	var args []interface{}
	idx := 1

	if len(f.BloodTypes) > 0 {
		types := make([]string, len(f.BloodTypes))
		for i, bt := range f.BloodTypes {
			types[i] = string(bt)
		}
		clause := fmt.Sprintf(` AND blood_type = ANY($%d)`, idx)
		query += clause
		countQuery += clause
		args = append(args, types)
		idx++
	}
	if f.ExcludeInactive {
		clause := fmt.Sprintf(` AND activity_status <> $%d`, idx)
		query += clause
		countQuery += clause
		args = append(args, string(Inactive))
		idx++
	}
	if f.EligibleOnly {
		clause := fmt.Sprintf(` AND eligibility_status = $%d`, idx)
		query += clause
		countQuery += clause
		args = append(args, string(Eligible))
		idx++
	}

	var total int
	if err := r.conn(ctx).QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(` ORDER BY created_at, id LIMIT $%d OFFSET $%d`, idx, idx+1)
	args = append(args, limit, offset)

	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*Person
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, p)
	}
	return items, total, rows.Err()
}
