package usecase

import (
	"context"

	"scoutline-backend/internal/domain"
	"scoutline-backend/pkg/apperror"
)

type identityUsecase struct {
	provider domain.IdentityProvider
}

func NewIdentityUsecase(provider domain.IdentityProvider) domain.IdentityUsecase {
	return &identityUsecase{provider: provider}
}

func (u *identityUsecase) GetProfile(ctx context.Context, userID string) (*domain.IdentityUser, error) {
	if userID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	return u.provider.GetUser(ctx, userID)
}

// AssignRole writes the caller's role into the identity provider's user
// metadata. Users may only change their own role.
func (u *identityUsecase) AssignRole(ctx context.Context, userID, role string) error {
	if userID == "" {
		return apperror.Unauthorized("User not authenticated")
	}
	switch role {
	case domain.RoleClub, domain.RoleAgent, domain.RolePlayer:
	default:
		return apperror.BadRequest("Invalid role")
	}
	return u.provider.SetUserRole(ctx, userID, role)
}
