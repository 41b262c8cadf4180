package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var (
	ErrNotFound  = errors.New("resource not found")
	ErrDuplicate = errors.New("duplicate resource")
)

// Club sizes
const (
	ClubSizeSmall  = "small"
	ClubSizeMedium = "medium"
	ClubSizeLarge  = "large"
)

// ClubContactInfo is the private contact block of a club.
type ClubContactInfo struct {
	Name  string `json:"name" validate:"required"`
	Role  string `json:"role" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required"`
}

// ClubPrivacySettings controls how a club's postings are exposed.
type ClubPrivacySettings struct {
	AllowAnonymousPosting       bool `json:"allowAnonymousPosting"`
	VisibleToVerifiedAgentsOnly bool `json:"visibleToVerifiedAgentsOnly"`
}

// Club is a recruiting organization. Name and email are globally unique.
// Clubs are never hard-deleted.
type Club struct {
	ID                    string               `json:"id"`
	ClerkUserID           string               `json:"clerkUserId"`
	Name                  string               `json:"name" validate:"required"`
	Email                 string               `json:"email" validate:"required,email"`
	Country               string               `json:"country" validate:"required"`
	League                string               `json:"league" validate:"required"`
	ClubSize              string               `json:"clubSize" validate:"required,oneof=small medium large"`
	Verified              bool                 `json:"verified"`
	Credits               int64                `json:"credits"`
	PremiumMember         bool                 `json:"premiumMember"`
	RecentAchievements    *string              `json:"recentAchievements,omitempty"`
	ContactInfo           *ClubContactInfo     `json:"contactInfo" validate:"required"`
	PrivacySettings       *ClubPrivacySettings `json:"privacySettings"`
	ActiveVacancies       int64                `json:"activeVacancies"`
	TotalVacanciesPosted  int64                `json:"totalVacanciesPosted"`
	VerificationDocuments []string             `json:"verificationDocuments,omitempty"`
	CreatedAt             time.Time            `json:"createdAt"`
	UpdatedAt             time.Time            `json:"updatedAt"`
}

type ClubRepository interface {
	// Create returns ErrDuplicate when the name or email is already taken.
	Create(ctx context.Context, club *Club) error
	GetByClerkUserID(ctx context.Context, clerkUserID string) (*Club, error)
	IncrementVacanciesPosted(ctx context.Context, id string) error
	// RefreshActiveVacancies recomputes the published-and-unexpired count
	// for one club. SyncAllActiveVacancies does the same for every club.
	RefreshActiveVacancies(ctx context.Context, id string) error
	SyncAllActiveVacancies(ctx context.Context) error
}

type ClubUsecase interface {
	RegisterClub(ctx context.Context, club *Club) error
}
