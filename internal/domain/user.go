package domain

import "context"

// Roles assignable through the identity provider's user metadata.
const (
	RoleClub   = "club"
	RoleAgent  = "agent"
	RolePlayer = "player"
)

// IdentityUser is the profile shape returned by the identity provider. The
// backend trusts the provider verbatim and does not store users locally.
type IdentityUser struct {
	ID             string            `json:"id"`
	Email          string            `json:"email"`
	FirstName      string            `json:"firstName,omitempty"`
	LastName       string            `json:"lastName,omitempty"`
	ImageURL       string            `json:"imageUrl,omitempty"`
	PublicMetadata map[string]string `json:"publicMetadata,omitempty"`
}

// Role returns the role recorded in the provider metadata, if any.
func (u *IdentityUser) Role() string {
	if u.PublicMetadata == nil {
		return ""
	}
	return u.PublicMetadata["role"]
}

// IdentityProvider is the external user store reached over HTTP.
type IdentityProvider interface {
	GetUser(ctx context.Context, userID string) (*IdentityUser, error)
	SetUserRole(ctx context.Context, userID, role string) error
}

type IdentityUsecase interface {
	GetProfile(ctx context.Context, userID string) (*IdentityUser, error)
	AssignRole(ctx context.Context, userID, role string) error
}
