package domain

import (
	"context"
	"time"
)

// Job statuses. A job is created as draft and published explicitly by its
// owner. Closed and filled are terminal: once a job reaches either, its
// status can no longer change.
const (
	JobStatusDraft     = "draft"
	JobStatusPublished = "published"
	JobStatusClosed    = "closed"
	JobStatusFilled    = "filled"
)

// DefaultJobLifetime is applied to expiresAt when the creator omits it.
const DefaultJobLifetime = 30 * 24 * time.Hour

// JobContactInfo is the private contact block of a posting. It is withheld
// from non-owners when the posting is anonymous.
type JobContactInfo struct {
	Name             string `json:"name" validate:"required"`
	Role             string `json:"role" validate:"required"`
	Email            string `json:"email" validate:"required,email"`
	Phone            string `json:"phone" validate:"required"`
	PreferredContact string `json:"preferredContact" validate:"required,oneof=email phone"`
}

// JobPrivacySettings controls redaction of a posting for non-owners.
type JobPrivacySettings struct {
	IsAnonymous                 bool `json:"isAnonymous"`
	VisibleToVerifiedAgentsOnly bool `json:"visibleToVerifiedAgentsOnly"`
	HideFinancialDetails        bool `json:"hideFinancialDetails"`
}

// Experience describes the required playing background.
type Experience struct {
	Level               string  `json:"level" validate:"required,oneof=topLevel professional semiProfessional"`
	CompetitionLevel    *string `json:"competitionLevel,omitempty"`
	ProfessionalMatches *int    `json:"professionalMatches,omitempty" validate:"omitempty,min=0"`
}

// Origin restricts candidate provenance to a set of continents.
type Origin struct {
	Continents []string `json:"continents" validate:"dive,oneof=EU Asia Africa 'North America' 'South America' Oceania All"`
}

// Salary is a bounded range with currency and negotiability defaults.
type Salary struct {
	Range        []int  `json:"range" validate:"required,len=2,dive,min=0"`
	Currency     string `json:"currency"`
	IsNegotiable *bool  `json:"isNegotiable,omitempty"`
}

// Bonuses holds one-off and performance-linked compensation.
type Bonuses struct {
	SigningBonus       *float64 `json:"signingBonus,omitempty"`
	PerformanceBonuses *string  `json:"performanceBonuses,omitempty"`
}

// FinancialDetails is the optional compensation block of a posting. It is
// withheld from non-owners when hideFinancialDetails is set.
type FinancialDetails struct {
	Salary           *Salary  `json:"salary,omitempty"`
	ContractDuration *string  `json:"contractDuration,omitempty" validate:"omitempty,oneof=6months 1year 2years 3years 4years 5years"`
	Bonuses          *Bonuses `json:"bonuses,omitempty"`
	Benefits         []string `json:"benefits" validate:"dive,oneof=Housing Car 'Flight Tickets' 'Health Insurance' 'Language Courses'"`
	AdditionalPerks  *string  `json:"additionalPerks,omitempty"`
}

// Job is one vacancy posting, owned by exactly one club.
type Job struct {
	ID     string `json:"id"`
	ClubID string `json:"clubId"`
	Status string `json:"status" validate:"required,oneof=draft published closed filled"`

	// Public club info
	Country   string  `json:"country" validate:"required"`
	League    string  `json:"league" validate:"required"`
	ClubName  *string `json:"clubName,omitempty"`
	ClubLevel string  `json:"clubLevel" validate:"required,oneof=amateur semi-professional professional top-division"`

	// Private contact block
	ContactInfo *JobContactInfo `json:"contactInfo,omitempty" validate:"required"`

	PrivacySettings *JobPrivacySettings `json:"privacySettings"`

	// Player requirements
	Position      string      `json:"position" validate:"required,oneof=GK RB CB LB DM CM AM RW LW SS ST"`
	Experience    *Experience `json:"experience" validate:"required"`
	AgeRange      []int       `json:"ageRange" validate:"required,len=2,dive,min=15,max=45"`
	Height        []int       `json:"height,omitempty" validate:"omitempty,len=2,dive,min=150,max=210"`
	PreferredFoot *string     `json:"preferredFoot,omitempty" validate:"omitempty,oneof=left right both"`
	Origin        *Origin     `json:"origin,omitempty"`

	FinancialDetails *FinancialDetails `json:"financialDetails,omitempty"`

	Views        int64     `json:"views"`
	Applications int64     `json:"applications"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// Terminal reports whether the job status forbids further transitions.
func (j *Job) Terminal() bool {
	return j.Status == JobStatusClosed || j.Status == JobStatusFilled
}

// RedactForViewer strips private blocks when the viewer does not own the
// posting. An empty viewerClubID means an anonymous or clubless viewer.
func (j *Job) RedactForViewer(viewerClubID string) {
	if viewerClubID != "" && viewerClubID == j.ClubID {
		return
	}
	if j.PrivacySettings == nil {
		return
	}
	if j.PrivacySettings.HideFinancialDetails {
		j.FinancialDetails = nil
	}
	if j.PrivacySettings.IsAnonymous {
		j.ContactInfo = nil
		j.ClubName = nil
	}
}

// ClubJobStats aggregates a club's posting activity for the dashboard.
type ClubJobStats struct {
	TotalJobs         int64 `json:"totalJobs"`
	ActiveJobs        int64 `json:"activeJobs"`
	TotalApplications int64 `json:"totalApplications"`
}

// JobActivity is a condensed job record for the dashboard recent-activity feed.
type JobActivity struct {
	ID           string    `json:"id"`
	Status       string    `json:"status"`
	Position     string    `json:"position"`
	Applications int64     `json:"applications"`
	CreatedAt    time.Time `json:"createdAt"`
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	// GetDetails atomically increments the view counter and returns the
	// updated job. Missing ids return ErrNotFound.
	GetDetails(ctx context.Context, id string) (*Job, error)
	// GetByIDForOwner returns ErrNotFound both when the job does not exist
	// and when it is owned by another club.
	GetByIDForOwner(ctx context.Context, id, clubID string) (*Job, error)
	// Fetch returns a page of jobs with the given status plus the total count.
	Fetch(ctx context.Context, status string, limit, offset int) ([]Job, int64, error)
	Update(ctx context.Context, job *Job) error
	// Delete removes the job only when clubID matches the stored owner.
	Delete(ctx context.Context, id, clubID string) error
	StatsByClub(ctx context.Context, clubID string, now time.Time) (*ClubJobStats, error)
	RecentByClub(ctx context.Context, clubID string, limit int) ([]JobActivity, error)
	// CloseExpired transitions published jobs past their expiry to closed
	// and returns how many were affected.
	CloseExpired(ctx context.Context, now time.Time) (int64, error)
}

type JobUsecase interface {
	CreateJob(ctx context.Context, userID string, job *Job) error
	ListJobs(ctx context.Context, viewerUserID, status string, page, limit int) ([]Job, int64, error)
	GetJobDetails(ctx context.Context, userID, id string) (*Job, error)
	UpdateJob(ctx context.Context, userID string, patch *JobPatch) (*Job, error)
	DeleteJob(ctx context.Context, userID, id string) error
}

// JobPatch carries the fields of a partial update. Nil members leave the
// stored value untouched.
type JobPatch struct {
	ID               string
	Status           *string
	Country          *string
	League           *string
	ClubName         *string
	ClubLevel        *string
	ContactInfo      *JobContactInfo
	PrivacySettings  *JobPrivacySettings
	Position         *string
	Experience       *Experience
	AgeRange         []int
	Height           []int
	PreferredFoot    *string
	Origin           *Origin
	FinancialDetails *FinancialDetails
	ExpiresAt        *time.Time
}
