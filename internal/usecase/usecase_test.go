package usecase_test

import (
	"context"
	"testing"
	"time"

	"scoutline-backend/internal/domain"
	"scoutline-backend/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock Repositories
type MockClubRepo struct {
	mock.Mock
}

func (m *MockClubRepo) Create(ctx context.Context, club *domain.Club) error {
	return m.Called(ctx, club).Error(0)
}

func (m *MockClubRepo) GetByClerkUserID(ctx context.Context, clerkUserID string) (*domain.Club, error) {
	args := m.Called(ctx, clerkUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Club), args.Error(1)
}

func (m *MockClubRepo) IncrementVacanciesPosted(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockClubRepo) RefreshActiveVacancies(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockClubRepo) SyncAllActiveVacancies(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobRepo) GetDetails(ctx context.Context, id string) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobRepo) GetByIDForOwner(ctx context.Context, id, clubID string) (*domain.Job, error) {
	args := m.Called(ctx, id, clubID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobRepo) Fetch(ctx context.Context, status string, limit, offset int) ([]domain.Job, int64, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Job), args.Get(1).(int64), args.Error(2)
}

func (m *MockJobRepo) Update(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobRepo) Delete(ctx context.Context, id, clubID string) error {
	return m.Called(ctx, id, clubID).Error(0)
}

func (m *MockJobRepo) StatsByClub(ctx context.Context, clubID string, now time.Time) (*domain.ClubJobStats, error) {
	args := m.Called(ctx, clubID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClubJobStats), args.Error(1)
}

func (m *MockJobRepo) RecentByClub(ctx context.Context, clubID string, limit int) ([]domain.JobActivity, error) {
	args := m.Called(ctx, clubID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobActivity), args.Error(1)
}

func (m *MockJobRepo) CloseExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

type MockIdentityProvider struct {
	mock.Mock
}

func (m *MockIdentityProvider) GetUser(ctx context.Context, userID string) (*domain.IdentityUser, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IdentityUser), args.Error(1)
}

func (m *MockIdentityProvider) SetUserRole(ctx context.Context, userID, role string) error {
	return m.Called(ctx, userID, role).Error(0)
}

func validJob() *domain.Job {
	return &domain.Job{
		Country:   "Germany",
		League:    "Regionalliga",
		ClubLevel: "semi-professional",
		ContactInfo: &domain.JobContactInfo{
			Name:             "Max Weber",
			Role:             "Sporting Director",
			Email:            "max@example.com",
			Phone:            "+491701234567",
			PreferredContact: "email",
		},
		Position:   "ST",
		Experience: &domain.Experience{Level: "semiProfessional"},
		AgeRange:   []int{18, 28},
	}
}

func ownerClub() *domain.Club {
	return &domain.Club{ID: "club-1", ClerkUserID: "user-1"}
}

func TestCreateJobDefaults(t *testing.T) {
	ctx := context.Background()

	t.Run("Should apply defaults to a minimal job", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		clubRepo := new(MockClubRepo)
		uc := usecase.NewJobUsecase(jobRepo, clubRepo, validator.New())

		clubRepo.On("GetByClerkUserID", ctx, "user-1").Return(ownerClub(), nil)
		jobRepo.On("Create", ctx, mock.AnythingOfType("*domain.Job")).Return(nil)
		clubRepo.On("IncrementVacanciesPosted", ctx, "club-1").Return(nil)

		job := validJob()
		job.FinancialDetails = &domain.FinancialDetails{
			Salary: &domain.Salary{Range: []int{2000, 4000}},
		}

		before := time.Now()
		err := uc.CreateJob(ctx, "user-1", job)
		assert.NoError(t, err)

		assert.Equal(t, domain.JobStatusDraft, job.Status)
		assert.Equal(t, "club-1", job.ClubID)
		assert.NotEmpty(t, job.ID)
		assert.Equal(t, "EUR", job.FinancialDetails.Salary.Currency)
		if assert.NotNil(t, job.FinancialDetails.Salary.IsNegotiable) {
			assert.True(t, *job.FinancialDetails.Salary.IsNegotiable)
		}
		assert.NotNil(t, job.FinancialDetails.Benefits)
		if assert.NotNil(t, job.PrivacySettings) {
			assert.True(t, job.PrivacySettings.VisibleToVerifiedAgentsOnly)
		}

		wantExpiry := before.Add(domain.DefaultJobLifetime)
		assert.WithinDuration(t, wantExpiry, job.ExpiresAt, time.Minute)
	})

	t.Run("Should refresh active vacancies when created as published", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		clubRepo := new(MockClubRepo)
		uc := usecase.NewJobUsecase(jobRepo, clubRepo, validator.New())

		clubRepo.On("GetByClerkUserID", ctx, "user-1").Return(ownerClub(), nil)
		jobRepo.On("Create", ctx, mock.AnythingOfType("*domain.Job")).Return(nil)
		clubRepo.On("IncrementVacanciesPosted", ctx, "club-1").Return(nil)
		clubRepo.On("RefreshActiveVacancies", ctx, "club-1").Return(nil)

		job := validJob()
		job.Status = domain.JobStatusPublished

		err := uc.CreateJob(ctx, "user-1", job)
		assert.NoError(t, err)
		clubRepo.AssertCalled(t, "RefreshActiveVacancies", ctx, "club-1")
	})

	t.Run("Should fail without a club profile", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		clubRepo := new(MockClubRepo)
		uc := usecase.NewJobUsecase(jobRepo, clubRepo, validator.New())

		clubRepo.On("GetByClerkUserID", ctx, "user-1").Return(nil, domain.ErrNotFound)

		err := uc.CreateJob(ctx, "user-1", validJob())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "register your club first")
	})
}

func TestCreateJobValidation(t *testing.T) {
	ctx := context.Background()

	newUC := func() (domain.JobUsecase, *MockClubRepo) {
		jobRepo := new(MockJobRepo)
		clubRepo := new(MockClubRepo)
		clubRepo.On("GetByClerkUserID", ctx, "user-1").Return(ownerClub(), nil)
		return usecase.NewJobUsecase(jobRepo, clubRepo, validator.New()), clubRepo
	}

	t.Run("Should reject an age range that is not a pair", func(t *testing.T) {
		uc, _ := newUC()
		job := validJob()
		job.AgeRange = []int{18}
		assert.Error(t, uc.CreateJob(ctx, "user-1", job))
	})

	t.Run("Should reject age below the floor", func(t *testing.T) {
		uc, _ := newUC()
		job := validJob()
		job.AgeRange = []int{10, 20}
		assert.Error(t, uc.CreateJob(ctx, "user-1", job))
	})

	t.Run("Should reject inverted ranges", func(t *testing.T) {
		uc, _ := newUC()
		job := validJob()
		job.AgeRange = []int{30, 18}
		err := uc.CreateJob(ctx, "user-1", job)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "minimum cannot exceed maximum")
	})

	t.Run("Should reject an unknown position code", func(t *testing.T) {
		uc, _ := newUC()
		job := validJob()
		job.Position = "GOALIE"
		assert.Error(t, uc.CreateJob(ctx, "user-1", job))
	})

	t.Run("Should reject a missing contact block", func(t *testing.T) {
		uc, _ := newUC()
		job := validJob()
		job.ContactInfo = nil
		assert.Error(t, uc.CreateJob(ctx, "user-1", job))
	})
}

func TestListJobs(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject an unknown status filter", func(t *testing.T) {
		uc := usecase.NewJobUsecase(new(MockJobRepo), new(MockClubRepo), validator.New())
		_, _, err := uc.ListJobs(ctx, "", "archived", 1, 10)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid status filter")
	})

	t.Run("Should default to published and redact anonymous postings", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		clubRepo := new(MockClubRepo)
		uc := usecase.NewJobUsecase(jobRepo, clubRepo, validator.New())

		clubName := "FC Hidden"
		posted := []domain.Job{{
			ID:          "job-1",
			ClubID:      "club-1",
			Status:      domain.JobStatusPublished,
			ClubName:    &clubName,
			ContactInfo: &domain.JobContactInfo{Name: "Private"},
			PrivacySettings: &domain.JobPrivacySettings{
				IsAnonymous:          true,
				HideFinancialDetails: true,
			},
			FinancialDetails: &domain.FinancialDetails{},
		}}
		jobRepo.On("Fetch", ctx, domain.JobStatusPublished, 10, 0).Return(posted, int64(1), nil)

		jobs, total, err := uc.ListJobs(ctx, "", "", 1, 10)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Nil(t, jobs[0].ContactInfo)
		assert.Nil(t, jobs[0].ClubName)
		assert.Nil(t, jobs[0].FinancialDetails)
	})

	t.Run("Should not redact for the owning club", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		clubRepo := new(MockClubRepo)
		uc := usecase.NewJobUsecase(jobRepo, clubRepo, validator.New())

		posted := []domain.Job{{
			ID:              "job-1",
			ClubID:          "club-1",
			Status:          domain.JobStatusPublished,
			ContactInfo:     &domain.JobContactInfo{Name: "Private"},
			PrivacySettings: &domain.JobPrivacySettings{IsAnonymous: true},
		}}
		jobRepo.On("Fetch", ctx, domain.JobStatusPublished, 10, 0).Return(posted, int64(1), nil)
		clubRepo.On("GetByClerkUserID", ctx, "user-1").Return(ownerClub(), nil)

		jobs, _, err := uc.ListJobs(ctx, "user-1", "", 1, 10)
		assert.NoError(t, err)
		assert.NotNil(t, jobs[0].ContactInfo)
	})

	t.Run("Should translate page to offset", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo, new(MockClubRepo), validator.New())

		jobRepo.On("Fetch", ctx, domain.JobStatusPublished, 20, 40).Return([]domain.Job{}, int64(0), nil)

		_, _, err := uc.ListJobs(ctx, "", "", 3, 20)
		assert.NoError(t, err)
		jobRepo.AssertExpectations(t)
	})
}

func TestUpdateJob(t *testing.T) {
	ctx := context.Background()

	t.Run("Should refuse status changes on a terminal job", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		clubRepo := new(MockClubRepo)
		uc := usecase.NewJobUsecase(jobRepo, clubRepo, validator.New())

		stored := validJob()
		stored.ID = "job-1"
		stored.ClubID = "club-1"
		stored.Status = domain.JobStatusClosed

		clubRepo.On("GetByClerkUserID", ctx, "user-1").Return(ownerClub(), nil)
		jobRepo.On("GetByIDForOwner", ctx, "job-1", "club-1").Return(stored, nil)

		published := domain.JobStatusPublished
		_, err := uc.UpdateJob(ctx, "user-1", &domain.JobPatch{ID: "job-1", Status: &published})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "can no longer change status")
	})

	t.Run("Should report not found when the caller has no club profile", func(t *testing.T) {
		uc := usecase.NewJobUsecase(new(MockJobRepo), func() *MockClubRepo {
			m := new(MockClubRepo)
			m.On("GetByClerkUserID", ctx, "user-1").Return(nil, domain.ErrNotFound)
			return m
		}(), validator.New())

		_, err := uc.UpdateJob(ctx, "user-1", &domain.JobPatch{ID: "job-1"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Job not found")
	})

	t.Run("Should report not found when the job belongs to another club", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		clubRepo := new(MockClubRepo)
		uc := usecase.NewJobUsecase(jobRepo, clubRepo, validator.New())

		clubRepo.On("GetByClerkUserID", ctx, "user-1").Return(ownerClub(), nil)
		jobRepo.On("GetByIDForOwner", ctx, "job-1", "club-1").Return(nil, domain.ErrNotFound)

		_, err := uc.UpdateJob(ctx, "user-1", &domain.JobPatch{ID: "job-1"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Job not found")
	})

	t.Run("Should converge when the same patch is applied twice", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		clubRepo := new(MockClubRepo)
		uc := usecase.NewJobUsecase(jobRepo, clubRepo, validator.New())

		stored := validJob()
		stored.ID = "job-1"
		stored.ClubID = "club-1"
		stored.Status = domain.JobStatusDraft
		stored.ExpiresAt = time.Now().Add(domain.DefaultJobLifetime)

		clubRepo.On("GetByClerkUserID", ctx, "user-1").Return(ownerClub(), nil)
		jobRepo.On("GetByIDForOwner", ctx, "job-1", "club-1").Return(stored, nil)
		jobRepo.On("Update", ctx, mock.AnythingOfType("*domain.Job")).Return(nil)
		clubRepo.On("RefreshActiveVacancies", ctx, "club-1").Return(nil)

		published := domain.JobStatusPublished
		country := "Spain"
		patch := &domain.JobPatch{ID: "job-1", Status: &published, Country: &country}

		first, err := uc.UpdateJob(ctx, "user-1", patch)
		assert.NoError(t, err)
		firstState := *first

		second, err := uc.UpdateJob(ctx, "user-1", patch)
		assert.NoError(t, err)
		secondState := *second

		firstState.UpdatedAt = time.Time{}
		secondState.UpdatedAt = time.Time{}
		assert.Equal(t, firstState, secondState)
	})

	t.Run("Should merge patch fields and refresh counters on publish", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		clubRepo := new(MockClubRepo)
		uc := usecase.NewJobUsecase(jobRepo, clubRepo, validator.New())

		stored := validJob()
		stored.ID = "job-1"
		stored.ClubID = "club-1"
		stored.Status = domain.JobStatusDraft
		stored.ExpiresAt = time.Now().Add(domain.DefaultJobLifetime)

		clubRepo.On("GetByClerkUserID", ctx, "user-1").Return(ownerClub(), nil)
		jobRepo.On("GetByIDForOwner", ctx, "job-1", "club-1").Return(stored, nil)
		jobRepo.On("Update", ctx, mock.AnythingOfType("*domain.Job")).Return(nil)
		clubRepo.On("RefreshActiveVacancies", ctx, "club-1").Return(nil)

		published := domain.JobStatusPublished
		country := "Spain"
		job, err := uc.UpdateJob(ctx, "user-1", &domain.JobPatch{
			ID:      "job-1",
			Status:  &published,
			Country: &country,
		})
		assert.NoError(t, err)
		assert.Equal(t, domain.JobStatusPublished, job.Status)
		assert.Equal(t, "Spain", job.Country)
		clubRepo.AssertCalled(t, "RefreshActiveVacancies", ctx, "club-1")
	})
}

func TestDeleteJob(t *testing.T) {
	ctx := context.Background()

	t.Run("Should report not found for another club's job", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		clubRepo := new(MockClubRepo)
		uc := usecase.NewJobUsecase(jobRepo, clubRepo, validator.New())

		clubRepo.On("GetByClerkUserID", ctx, "user-1").Return(ownerClub(), nil)
		jobRepo.On("Delete", ctx, "job-1", "club-1").Return(domain.ErrNotFound)

		err := uc.DeleteJob(ctx, "user-1", "job-1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Job not found")
	})

	t.Run("Should refresh counters after delete", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		clubRepo := new(MockClubRepo)
		uc := usecase.NewJobUsecase(jobRepo, clubRepo, validator.New())

		clubRepo.On("GetByClerkUserID", ctx, "user-1").Return(ownerClub(), nil)
		jobRepo.On("Delete", ctx, "job-1", "club-1").Return(nil)
		clubRepo.On("RefreshActiveVacancies", ctx, "club-1").Return(nil)

		assert.NoError(t, uc.DeleteJob(ctx, "user-1", "job-1"))
		clubRepo.AssertCalled(t, "RefreshActiveVacancies", ctx, "club-1")
	})
}

func TestRegisterClub(t *testing.T) {
	ctx := context.Background()

	validClub := func() *domain.Club {
		return &domain.Club{
			ClerkUserID: "user-1",
			Name:        "FC Example",
			Email:       "office@example.com",
			Country:     "Germany",
			League:      "Regionalliga",
			ClubSize:    "medium",
			ContactInfo: &domain.ClubContactInfo{
				Name:  "Max Weber",
				Role:  "Sporting Director",
				Email: "max@example.com",
				Phone: "+491701234567",
			},
		}
	}

	t.Run("Should apply defaults and persist", func(t *testing.T) {
		clubRepo := new(MockClubRepo)
		uc := usecase.NewClubUsecase(clubRepo, validator.New())

		clubRepo.On("Create", ctx, mock.AnythingOfType("*domain.Club")).Return(nil)

		club := validClub()
		err := uc.RegisterClub(ctx, club)
		assert.NoError(t, err)
		assert.NotEmpty(t, club.ID)
		assert.False(t, club.Verified)
		if assert.NotNil(t, club.PrivacySettings) {
			assert.True(t, club.PrivacySettings.VisibleToVerifiedAgentsOnly)
		}
		assert.NotNil(t, club.VerificationDocuments)
	})

	t.Run("Should surface duplicates as a client error", func(t *testing.T) {
		clubRepo := new(MockClubRepo)
		uc := usecase.NewClubUsecase(clubRepo, validator.New())

		clubRepo.On("Create", ctx, mock.AnythingOfType("*domain.Club")).Return(domain.ErrDuplicate)

		err := uc.RegisterClub(ctx, validClub())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already registered")
	})

	t.Run("Should reject an invalid club size", func(t *testing.T) {
		uc := usecase.NewClubUsecase(new(MockClubRepo), validator.New())

		club := validClub()
		club.ClubSize = "gigantic"
		assert.Error(t, uc.RegisterClub(ctx, club))
	})
}

func TestDashboardStats(t *testing.T) {
	ctx := context.Background()

	t.Run("Should round the application average", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		clubRepo := new(MockClubRepo)
		uc := usecase.NewDashboardUsecase(jobRepo, clubRepo)

		clubRepo.On("GetByClerkUserID", ctx, "user-1").Return(ownerClub(), nil)
		jobRepo.On("StatsByClub", ctx, "club-1", mock.AnythingOfType("time.Time")).Return(&domain.ClubJobStats{
			TotalJobs:         3,
			ActiveJobs:        2,
			TotalApplications: 10,
		}, nil)
		jobRepo.On("RecentByClub", ctx, "club-1", 5).Return([]domain.JobActivity{}, nil)

		stats, err := uc.ClubStats(ctx, "user-1")
		assert.NoError(t, err)
		assert.Equal(t, int64(3), stats.Stats.AverageApplications)
		assert.NotNil(t, stats.RecentActivity)
	})

	t.Run("Should keep the average at zero with no jobs", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		clubRepo := new(MockClubRepo)
		uc := usecase.NewDashboardUsecase(jobRepo, clubRepo)

		clubRepo.On("GetByClerkUserID", ctx, "user-1").Return(ownerClub(), nil)
		jobRepo.On("StatsByClub", ctx, "club-1", mock.AnythingOfType("time.Time")).Return(&domain.ClubJobStats{}, nil)
		jobRepo.On("RecentByClub", ctx, "club-1", 5).Return(nil, nil)

		stats, err := uc.ClubStats(ctx, "user-1")
		assert.NoError(t, err)
		assert.Equal(t, int64(0), stats.Stats.AverageApplications)
	})
}

func TestAssignRole(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject an unknown role", func(t *testing.T) {
		uc := usecase.NewIdentityUsecase(new(MockIdentityProvider))
		err := uc.AssignRole(ctx, "user-1", "referee")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid role")
	})

	t.Run("Should forward valid roles to the provider", func(t *testing.T) {
		provider := new(MockIdentityProvider)
		uc := usecase.NewIdentityUsecase(provider)

		provider.On("SetUserRole", ctx, "user-1", domain.RoleClub).Return(nil)

		assert.NoError(t, uc.AssignRole(ctx, "user-1", domain.RoleClub))
		provider.AssertExpectations(t)
	})

	t.Run("Should fail safe without a user id", func(t *testing.T) {
		uc := usecase.NewIdentityUsecase(new(MockIdentityProvider))
		err := uc.AssignRole(ctx, "", domain.RoleClub)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "User not authenticated")
	})
}
