package domain_test

import (
	"testing"

	"scoutline-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func anonymousJob() *domain.Job {
	name := "FC Hidden"
	return &domain.Job{
		ID:          "job-1",
		ClubID:      "club-1",
		ClubName:    &name,
		ContactInfo: &domain.JobContactInfo{Name: "Private"},
		PrivacySettings: &domain.JobPrivacySettings{
			IsAnonymous:          true,
			HideFinancialDetails: true,
		},
		FinancialDetails: &domain.FinancialDetails{},
	}
}

func TestRedactForViewer(t *testing.T) {
	t.Run("Should strip private blocks for strangers", func(t *testing.T) {
		job := anonymousJob()
		job.RedactForViewer("club-2")
		assert.Nil(t, job.ContactInfo)
		assert.Nil(t, job.ClubName)
		assert.Nil(t, job.FinancialDetails)
	})

	t.Run("Should strip private blocks for anonymous viewers", func(t *testing.T) {
		job := anonymousJob()
		job.RedactForViewer("")
		assert.Nil(t, job.ContactInfo)
	})

	t.Run("Should keep everything for the owning club", func(t *testing.T) {
		job := anonymousJob()
		job.RedactForViewer("club-1")
		assert.NotNil(t, job.ContactInfo)
		assert.NotNil(t, job.ClubName)
		assert.NotNil(t, job.FinancialDetails)
	})

	t.Run("Should leave public postings untouched", func(t *testing.T) {
		job := anonymousJob()
		job.PrivacySettings = &domain.JobPrivacySettings{}
		job.RedactForViewer("club-2")
		assert.NotNil(t, job.ContactInfo)
		assert.NotNil(t, job.FinancialDetails)
	})
}

func TestTerminal(t *testing.T) {
	assert.False(t, (&domain.Job{Status: domain.JobStatusDraft}).Terminal())
	assert.False(t, (&domain.Job{Status: domain.JobStatusPublished}).Terminal())
	assert.True(t, (&domain.Job{Status: domain.JobStatusClosed}).Terminal())
	assert.True(t, (&domain.Job{Status: domain.JobStatusFilled}).Terminal())
}
