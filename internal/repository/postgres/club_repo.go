package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"scoutline-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type clubRepo struct {
	db *pgxpool.Pool
}

func NewClubRepository(db *pgxpool.Pool) domain.ClubRepository {
	return &clubRepo{db: db}
}

const uniqueViolation = "23505"

func (r *clubRepo) Create(ctx context.Context, club *domain.Club) error {
	contactInfo, err := json.Marshal(club.ContactInfo)
	if err != nil {
		return err
	}
	privacy, err := json.Marshal(club.PrivacySettings)
	if err != nil {
		return err
	}

	query := `INSERT INTO clubs (id, clerk_user_id, name, email, country, league, club_size, verified, credits,
                premium_member, recent_achievements, contact_info, privacy_settings, active_vacancies,
                total_vacancies_posted, verification_documents, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err = r.db.Exec(ctx, query,
		club.ID, club.ClerkUserID, club.Name, club.Email, club.Country, club.League, club.ClubSize,
		club.Verified, club.Credits, club.PremiumMember, club.RecentAchievements,
		contactInfo, privacy, club.ActiveVacancies, club.TotalVacanciesPosted,
		pq.Array(club.VerificationDocuments), club.CreatedAt, club.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrDuplicate
		}
		return err
	}
	return nil
}

const clubColumns = `id, clerk_user_id, name, email, country, league, club_size, verified, credits,
	premium_member, recent_achievements, contact_info, privacy_settings, active_vacancies,
	total_vacancies_posted, verification_documents, created_at, updated_at`

func (r *clubRepo) GetByClerkUserID(ctx context.Context, clerkUserID string) (*domain.Club, error) {
	return r.getOne(ctx, `SELECT `+clubColumns+` FROM clubs WHERE clerk_user_id = $1`, clerkUserID)
}

func (r *clubRepo) getOne(ctx context.Context, query string, arg any) (*domain.Club, error) {
	var (
		club        domain.Club
		contactInfo []byte
		privacy     []byte
	)
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&club.ID, &club.ClerkUserID, &club.Name, &club.Email, &club.Country, &club.League, &club.ClubSize,
		&club.Verified, &club.Credits, &club.PremiumMember, &club.RecentAchievements,
		&contactInfo, &privacy, &club.ActiveVacancies, &club.TotalVacanciesPosted,
		pq.Array(&club.VerificationDocuments), &club.CreatedAt, &club.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(contactInfo, &club.ContactInfo); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(privacy, &club.PrivacySettings); err != nil {
		return nil, err
	}
	return &club, nil
}

func (r *clubRepo) IncrementVacanciesPosted(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx,
		`UPDATE clubs SET total_vacancies_posted = total_vacancies_posted + 1 WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *clubRepo) RefreshActiveVacancies(ctx context.Context, id string) error {
	query := `UPDATE clubs SET active_vacancies = (
                SELECT COUNT(*) FROM jobs
                WHERE jobs.club_id = clubs.id AND jobs.status = 'published' AND jobs.expires_at > NOW()
              ) WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

func (r *clubRepo) SyncAllActiveVacancies(ctx context.Context) error {
	query := `UPDATE clubs SET active_vacancies = (
                SELECT COUNT(*) FROM jobs
                WHERE jobs.club_id = clubs.id AND jobs.status = 'published' AND jobs.expires_at > NOW()
              )`
	_, err := r.db.Exec(ctx, query)
	return err
}
