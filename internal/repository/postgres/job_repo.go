package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"scoutline-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

const jobColumns = `id, club_id, status, country, league, club_name, club_level, contact_info,
	privacy_settings, "position", experience, age_min, age_max, height_min, height_max,
	preferred_foot, origin_continents, financial_details, views, applications,
	created_at, updated_at, expires_at`

type jobRow struct {
	contactInfo      []byte
	privacy          []byte
	experience       []byte
	financialDetails []byte
	ageMin, ageMax   int
	heightMin        *int
	heightMax        *int
	continents       []string
}

// scanJob decodes one row into a domain Job, rebuilding the nested blocks
// and the two-element range arrays from their column representation.
func scanJob(row pgx.Row) (*domain.Job, error) {
	var (
		job domain.Job
		raw jobRow
	)
	err := row.Scan(
		&job.ID, &job.ClubID, &job.Status, &job.Country, &job.League, &job.ClubName, &job.ClubLevel,
		&raw.contactInfo, &raw.privacy, &job.Position, &raw.experience,
		&raw.ageMin, &raw.ageMax, &raw.heightMin, &raw.heightMax,
		&job.PreferredFoot, pq.Array(&raw.continents), &raw.financialDetails,
		&job.Views, &job.Applications, &job.CreatedAt, &job.UpdatedAt, &job.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	if err := json.Unmarshal(raw.contactInfo, &job.ContactInfo); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw.privacy, &job.PrivacySettings); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw.experience, &job.Experience); err != nil {
		return nil, err
	}
	if len(raw.financialDetails) > 0 {
		if err := json.Unmarshal(raw.financialDetails, &job.FinancialDetails); err != nil {
			return nil, err
		}
	}

	job.AgeRange = []int{raw.ageMin, raw.ageMax}
	if raw.heightMin != nil && raw.heightMax != nil {
		job.Height = []int{*raw.heightMin, *raw.heightMax}
	}
	if len(raw.continents) > 0 {
		job.Origin = &domain.Origin{Continents: raw.continents}
	}

	return &job, nil
}

// encodeJob flattens a domain Job into the column values used by insert
// and update statements, in jobColumns order (minus counters/timestamps
// where the statement sets those itself).
func encodeJob(job *domain.Job) (contactInfo, privacy, experience, financialDetails []byte, heightMin, heightMax *int, continents []string, err error) {
	if contactInfo, err = json.Marshal(job.ContactInfo); err != nil {
		return
	}
	if privacy, err = json.Marshal(job.PrivacySettings); err != nil {
		return
	}
	if experience, err = json.Marshal(job.Experience); err != nil {
		return
	}
	if job.FinancialDetails != nil {
		if financialDetails, err = json.Marshal(job.FinancialDetails); err != nil {
			return
		}
	}
	if len(job.Height) == 2 {
		heightMin, heightMax = &job.Height[0], &job.Height[1]
	}
	if job.Origin != nil {
		continents = job.Origin.Continents
	}
	return
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	contactInfo, privacy, experience, financialDetails, heightMin, heightMax, continents, err := encodeJob(job)
	if err != nil {
		return err
	}

	query := `INSERT INTO jobs (id, club_id, status, country, league, club_name, club_level, contact_info,
                privacy_settings, "position", experience, age_min, age_max, height_min, height_max,
                preferred_foot, origin_continents, financial_details, views, applications,
                created_at, updated_at, expires_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)`
	_, err = r.db.Exec(ctx, query,
		job.ID, job.ClubID, job.Status, job.Country, job.League, job.ClubName, job.ClubLevel,
		contactInfo, privacy, job.Position, experience,
		job.AgeRange[0], job.AgeRange[1], heightMin, heightMax,
		job.PreferredFoot, pq.Array(continents), financialDetails,
		job.Views, job.Applications, job.CreatedAt, job.UpdatedAt, job.ExpiresAt,
	)
	return err
}

// GetDetails bumps the view counter in the same statement that reads the
// row, so concurrent detail fetches never under-count.
func (r *jobRepo) GetDetails(ctx context.Context, id string) (*domain.Job, error) {
	query := `UPDATE jobs SET views = views + 1 WHERE id = $1 RETURNING ` + jobColumns
	return scanJob(r.db.QueryRow(ctx, query, id))
}

// GetByIDForOwner deliberately collapses "missing" and "owned by someone
// else" into ErrNotFound so the API never leaks other clubs' postings.
func (r *jobRepo) GetByIDForOwner(ctx context.Context, id, clubID string) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1 AND club_id = $2`
	return scanJob(r.db.QueryRow(ctx, query, id, clubID))
}

func (r *jobRepo) Fetch(ctx context.Context, status string, limit, offset int) ([]domain.Job, int64, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE status = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, status, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, *job)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs WHERE status = $1`, status).Scan(&total); err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	contactInfo, privacy, experience, financialDetails, heightMin, heightMax, continents, err := encodeJob(job)
	if err != nil {
		return err
	}

	query := `UPDATE jobs SET
		status = $3,
		country = $4,
		league = $5,
		club_name = $6,
		club_level = $7,
		contact_info = $8,
		privacy_settings = $9,
		"position" = $10,
		experience = $11,
		age_min = $12,
		age_max = $13,
		height_min = $14,
		height_max = $15,
		preferred_foot = $16,
		origin_continents = $17,
		financial_details = $18,
		updated_at = $19,
		expires_at = $20
	WHERE id = $1 AND club_id = $2`
	result, err := r.db.Exec(ctx, query,
		job.ID, job.ClubID, job.Status, job.Country, job.League, job.ClubName, job.ClubLevel,
		contactInfo, privacy, job.Position, experience,
		job.AgeRange[0], job.AgeRange[1], heightMin, heightMax,
		job.PreferredFoot, pq.Array(continents), financialDetails,
		job.UpdatedAt, job.ExpiresAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) Delete(ctx context.Context, id, clubID string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1 AND club_id = $2`, id, clubID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) StatsByClub(ctx context.Context, clubID string, now time.Time) (*domain.ClubJobStats, error) {
	query := `SELECT
                COUNT(*),
                COUNT(*) FILTER (WHERE status = 'published' AND expires_at > $2),
                COALESCE(SUM(applications), 0)
              FROM jobs WHERE club_id = $1`

	var stats domain.ClubJobStats
	err := r.db.QueryRow(ctx, query, clubID, now).Scan(
		&stats.TotalJobs, &stats.ActiveJobs, &stats.TotalApplications,
	)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *jobRepo) RecentByClub(ctx context.Context, clubID string, limit int) ([]domain.JobActivity, error) {
	query := `SELECT id, status, "position", applications, created_at
              FROM jobs WHERE club_id = $1 ORDER BY created_at DESC LIMIT $2`

	rows, err := r.db.Query(ctx, query, clubID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activity []domain.JobActivity
	for rows.Next() {
		var a domain.JobActivity
		if err := rows.Scan(&a.ID, &a.Status, &a.Position, &a.Applications, &a.CreatedAt); err != nil {
			return nil, err
		}
		activity = append(activity, a)
	}
	return activity, rows.Err()
}

func (r *jobRepo) CloseExpired(ctx context.Context, now time.Time) (int64, error) {
	query := `UPDATE jobs SET status = 'closed', updated_at = $1
              WHERE status = 'published' AND expires_at <= $1`
	result, err := r.db.Exec(ctx, query, now)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
