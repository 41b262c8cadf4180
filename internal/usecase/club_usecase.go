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

type clubUsecase struct {
	clubRepo domain.ClubRepository
	validate *validator.Validate
}

func NewClubUsecase(clubRepo domain.ClubRepository, validate *validator.Validate) domain.ClubUsecase {
	return &clubUsecase{
		clubRepo: clubRepo,
		validate: validate,
	}
}

func (u *clubUsecase) RegisterClub(ctx context.Context, club *domain.Club) error {
	now := time.Now()
	club.ID = uuid.NewString()
	club.Verified = false
	club.Credits = 0
	club.PremiumMember = false
	club.ActiveVacancies = 0
	club.TotalVacanciesPosted = 0
	club.CreatedAt = now
	club.UpdatedAt = now

	if club.PrivacySettings == nil {
		club.PrivacySettings = &domain.ClubPrivacySettings{
			VisibleToVerifiedAgentsOnly: true,
		}
	}
	if club.VerificationDocuments == nil {
		club.VerificationDocuments = []string{}
	}

	if err := u.validate.Struct(club); err != nil {
		return apperror.BadRequest(validation.FormatMessage(err))
	}

	if err := u.clubRepo.Create(ctx, club); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return apperror.BadRequest("A club with this name or email is already registered")
		}
		return err
	}
	return nil
}
