package usecase

import (
	"context"
	"errors"
	"time"

	"scoutline-backend/internal/domain"
	"scoutline-backend/pkg/apperror"
	"scoutline-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type jobUsecase struct {
	jobRepo  domain.JobRepository
	clubRepo domain.ClubRepository
	validate *validator.Validate
}

func NewJobUsecase(jobRepo domain.JobRepository, clubRepo domain.ClubRepository, validate *validator.Validate) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:  jobRepo,
		clubRepo: clubRepo,
		validate: validate,
	}
}

var validStatuses = map[string]bool{
	domain.JobStatusDraft:     true,
	domain.JobStatusPublished: true,
	domain.JobStatusClosed:    true,
	domain.JobStatusFilled:    true,
}

func (u *jobUsecase) CreateJob(ctx context.Context, userID string, job *domain.Job) error {
	club, err := u.clubRepo.GetByClerkUserID(ctx, userID)
	if err != nil {
		return apperror.NotFound("Club profile not found. Please register your club first.")
	}

	now := time.Now()
	job.ID = uuid.NewString()
	job.ClubID = club.ID
	job.Views = 0
	job.Applications = 0
	job.CreatedAt = now
	job.UpdatedAt = now

	applyJobDefaults(job, now)

	if err := u.validateJob(job); err != nil {
		return err
	}

	if err := u.jobRepo.Create(ctx, job); err != nil {
		return err
	}

	if err := u.clubRepo.IncrementVacanciesPosted(ctx, club.ID); err != nil {
		return err
	}
	if job.Status == domain.JobStatusPublished {
		if err := u.clubRepo.RefreshActiveVacancies(ctx, club.ID); err != nil {
			return err
		}
	}
	return nil
}

func (u *jobUsecase) ListJobs(ctx context.Context, viewerUserID, status string, page, limit int) ([]domain.Job, int64, error) {
	if status == "" {
		status = domain.JobStatusPublished
	}
	if !validStatuses[status] {
		return nil, 0, apperror.BadRequest("Invalid status filter")
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	jobs, total, err := u.jobRepo.Fetch(ctx, status, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	viewerClubID := u.resolveViewerClub(ctx, viewerUserID)
	for i := range jobs {
		jobs[i].RedactForViewer(viewerClubID)
	}
	return jobs, total, nil
}

func (u *jobUsecase) GetJobDetails(ctx context.Context, userID, id string) (*domain.Job, error) {
	job, err := u.jobRepo.GetDetails(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, err
	}

	job.RedactForViewer(u.resolveViewerClub(ctx, userID))
	return job, nil
}

func (u *jobUsecase) UpdateJob(ctx context.Context, userID string, patch *domain.JobPatch) (*domain.Job, error) {
	club, err := u.clubRepo.GetByClerkUserID(ctx, userID)
	if err != nil {
		// Callers without a club profile own nothing. Same 404 as a miss.
		return nil, apperror.NotFound("Job not found")
	}

	job, err := u.jobRepo.GetByIDForOwner(ctx, patch.ID, club.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, err
	}

	statusChanged := patch.Status != nil && *patch.Status != job.Status
	if job.Terminal() && statusChanged {
		return nil, apperror.BadRequest("A closed or filled job can no longer change status")
	}

	applyPatch(job, patch)
	applyJobDefaults(job, time.Now())

	if err := u.validateJob(job); err != nil {
		return nil, err
	}

	job.UpdatedAt = time.Now()
	if err := u.jobRepo.Update(ctx, job); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, err
	}

	if statusChanged {
		if err := u.clubRepo.RefreshActiveVacancies(ctx, club.ID); err != nil {
			return nil, err
		}
	}
	return job, nil
}

func (u *jobUsecase) DeleteJob(ctx context.Context, userID, id string) error {
	club, err := u.clubRepo.GetByClerkUserID(ctx, userID)
	if err != nil {
		return apperror.NotFound("Job not found")
	}

	if err := u.jobRepo.Delete(ctx, id, club.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return err
	}

	return u.clubRepo.RefreshActiveVacancies(ctx, club.ID)
}

// resolveViewerClub maps an authenticated user to their club id for
// redaction checks. Anonymous viewers and users without a club profile
// resolve to "".
func (u *jobUsecase) resolveViewerClub(ctx context.Context, userID string) string {
	if userID == "" {
		return ""
	}
	club, err := u.clubRepo.GetByClerkUserID(ctx, userID)
	if err != nil {
		return ""
	}
	return club.ID
}

// applyJobDefaults fills the documented defaults: draft status, privacy
// settings, EUR salary currency, negotiable salary, empty benefits and a
// 30-day expiry.
func applyJobDefaults(job *domain.Job, now time.Time) {
	if job.Status == "" {
		job.Status = domain.JobStatusDraft
	}
	if job.PrivacySettings == nil {
		job.PrivacySettings = &domain.JobPrivacySettings{
			VisibleToVerifiedAgentsOnly: true,
		}
	}
	if job.ExpiresAt.IsZero() {
		job.ExpiresAt = now.Add(domain.DefaultJobLifetime)
	}
	if fd := job.FinancialDetails; fd != nil {
		if fd.Salary != nil {
			if fd.Salary.Currency == "" {
				fd.Salary.Currency = "EUR"
			}
			if fd.Salary.IsNegotiable == nil {
				negotiable := true
				fd.Salary.IsNegotiable = &negotiable
			}
		}
		if fd.Benefits == nil {
			fd.Benefits = []string{}
		}
	}
}

func (u *jobUsecase) validateJob(job *domain.Job) error {
	if err := u.validate.Struct(job); err != nil {
		return apperror.BadRequest(validation.FormatMessage(err))
	}
	return validateRangeOrdering(job)
}

// validateRangeOrdering enforces min <= max on the two-element range
// arrays, which tag-based validation cannot express.
func validateRangeOrdering(job *domain.Job) error {
	if len(job.AgeRange) == 2 && job.AgeRange[0] > job.AgeRange[1] {
		return apperror.BadRequest("Age range minimum cannot exceed maximum")
	}
	if len(job.Height) == 2 && job.Height[0] > job.Height[1] {
		return apperror.BadRequest("Height range minimum cannot exceed maximum")
	}
	if fd := job.FinancialDetails; fd != nil && fd.Salary != nil {
		if len(fd.Salary.Range) == 2 && fd.Salary.Range[0] > fd.Salary.Range[1] {
			return apperror.BadRequest("Salary range minimum cannot exceed maximum")
		}
	}
	return nil
}

// applyPatch merges the non-nil patch fields into the stored job.
func applyPatch(job *domain.Job, patch *domain.JobPatch) {
	if patch.Status != nil {
		job.Status = *patch.Status
	}
	if patch.Country != nil {
		job.Country = *patch.Country
	}
	if patch.League != nil {
		job.League = *patch.League
	}
	if patch.ClubName != nil {
		job.ClubName = patch.ClubName
	}
	if patch.ClubLevel != nil {
		job.ClubLevel = *patch.ClubLevel
	}
	if patch.ContactInfo != nil {
		job.ContactInfo = patch.ContactInfo
	}
	if patch.PrivacySettings != nil {
		job.PrivacySettings = patch.PrivacySettings
	}
	if patch.Position != nil {
		job.Position = *patch.Position
	}
	if patch.Experience != nil {
		job.Experience = patch.Experience
	}
	if patch.AgeRange != nil {
		job.AgeRange = patch.AgeRange
	}
	if patch.Height != nil {
		job.Height = patch.Height
	}
	if patch.PreferredFoot != nil {
		job.PreferredFoot = patch.PreferredFoot
	}
	if patch.Origin != nil {
		job.Origin = patch.Origin
	}
	if patch.FinancialDetails != nil {
		job.FinancialDetails = patch.FinancialDetails
	}
	if patch.ExpiresAt != nil {
		job.ExpiresAt = *patch.ExpiresAt
	}
}
