package v1

import (
	"net/http"
	"strconv"
	"time"

	"scoutline-backend/internal/delivery/http/response"
	"scoutline-backend/internal/domain"
	"scoutline-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(public *gin.RouterGroup, protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	// PUBLIC route - the job board listing needs no authentication
	public.GET("/jobs", handler.List)

	// PROTECTED routes
	protectedJobs := protected.Group("/jobs")
	{
		protectedJobs.POST("", handler.Create)
		protectedJobs.GET("/:id", handler.GetDetails)
		protectedJobs.PUT("/:id", handler.Update)
		protectedJobs.DELETE("/:id", handler.Delete)
	}
}

type CreateJobRequest struct {
	Status    string  `json:"status" binding:"omitempty,oneof=draft published closed filled"`
	Country   string  `json:"country" binding:"required"`
	League    string  `json:"league" binding:"required"`
	ClubName  *string `json:"clubName"`
	ClubLevel string  `json:"clubLevel" binding:"required"`

	ContactInfo     *domain.JobContactInfo     `json:"contactInfo" binding:"required"`
	PrivacySettings *domain.JobPrivacySettings `json:"privacySettings"`

	Position      string             `json:"position" binding:"required"`
	Experience    *domain.Experience `json:"experience" binding:"required"`
	AgeRange      []int              `json:"ageRange" binding:"required"`
	Height        []int              `json:"height"`
	PreferredFoot *string            `json:"preferredFoot"`
	Origin        *domain.Origin     `json:"origin"`

	FinancialDetails *domain.FinancialDetails `json:"financialDetails"`
	ExpiresAt        *time.Time               `json:"expiresAt"`

	// Legacy flat financial fields, folded into FinancialDetails when the
	// structured block is absent.
	Salary           []int    `json:"salary"`
	ContractDuration *string  `json:"contractDuration"`
	SigningBonus     *float64 `json:"signingBonus"`
	Bonuses          *string  `json:"bonuses"`
	Benefits         []string `json:"benefits"`
	OtherBenefits    *string  `json:"otherBenefits"`
}

// financialDetails returns the structured block, building it from the
// legacy flat fields when needed.
func (r *CreateJobRequest) financialDetails() *domain.FinancialDetails {
	if r.FinancialDetails != nil {
		return r.FinancialDetails
	}
	if r.Salary == nil && r.ContractDuration == nil && r.SigningBonus == nil &&
		r.Bonuses == nil && r.Benefits == nil && r.OtherBenefits == nil {
		return nil
	}

	fd := &domain.FinancialDetails{
		ContractDuration: r.ContractDuration,
		Benefits:         r.Benefits,
		AdditionalPerks:  r.OtherBenefits,
	}
	if r.Salary != nil {
		fd.Salary = &domain.Salary{Range: r.Salary}
	}
	if r.SigningBonus != nil || r.Bonuses != nil {
		fd.Bonuses = &domain.Bonuses{
			SigningBonus:       r.SigningBonus,
			PerformanceBonuses: r.Bonuses,
		}
	}
	return fd
}

type UpdateJobRequest struct {
	Status    *string `json:"status" binding:"omitempty,oneof=draft published closed filled"`
	Country   *string `json:"country"`
	League    *string `json:"league"`
	ClubName  *string `json:"clubName"`
	ClubLevel *string `json:"clubLevel"`

	ContactInfo     *domain.JobContactInfo     `json:"contactInfo"`
	PrivacySettings *domain.JobPrivacySettings `json:"privacySettings"`

	Position      *string            `json:"position"`
	Experience    *domain.Experience `json:"experience"`
	AgeRange      []int              `json:"ageRange"`
	Height        []int              `json:"height"`
	PreferredFoot *string            `json:"preferredFoot"`
	Origin        *domain.Origin     `json:"origin"`

	FinancialDetails *domain.FinancialDetails `json:"financialDetails"`
	ExpiresAt        *time.Time               `json:"expiresAt"`
}

// Create godoc
// @Summary      Create a job posting
// @Description  Create a new vacancy for the caller's club. New postings start as drafts unless a status is supplied.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      CreateJobRequest  true  "Job JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	if userID == "" {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}

	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job := &domain.Job{
		Status:           req.Status,
		Country:          req.Country,
		League:           req.League,
		ClubName:         req.ClubName,
		ClubLevel:        req.ClubLevel,
		ContactInfo:      req.ContactInfo,
		PrivacySettings:  req.PrivacySettings,
		Position:         req.Position,
		Experience:       req.Experience,
		AgeRange:         req.AgeRange,
		Height:           req.Height,
		PreferredFoot:    req.PreferredFoot,
		Origin:           req.Origin,
		FinancialDetails: req.financialDetails(),
	}
	if req.ExpiresAt != nil {
		job.ExpiresAt = *req.ExpiresAt
	}

	if err := h.jobUC.CreateJob(c, userID, job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job created successfully", job)
}

// List godoc
// @Summary      List job postings
// @Description  Paginated job list, filtered by status (published by default). Private blocks are redacted per the posting's privacy settings.
// @Tags         jobs
// @Produce      json
// @Param        page    query     int     false  "Page number"
// @Param        limit   query     int     false  "Page size"
// @Param        status  query     string  false  "Status filter"
// @Success      200     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	status := c.Query("status")

	viewerUserID := c.GetString(string(domain.KeyUserID))

	jobs, total, err := h.jobUC.ListJobs(c, viewerUserID, status, page, limit)
	if err != nil {
		c.Error(err)
		return
	}
	if jobs == nil {
		jobs = []domain.Job{}
	}

	response.Success(c, http.StatusOK, "Job list", gin.H{
		"jobs":  jobs,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// GetDetails godoc
// @Summary      Get job details
// @Description  Fetch one posting and increment its view counter. Non-owners get a redacted document.
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
// @Security     BearerAuth
func (h *JobHandler) GetDetails(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	job, err := h.jobUC.GetJobDetails(c, userID, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job details", job)
}

// Update godoc
// @Summary      Update a job posting
// @Description  Partial update of a posting owned by the caller's club. Closed and filled postings cannot change status.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id   path      string            true  "Job ID"
// @Param        job  body      UpdateJobRequest  true  "Partial job JSON"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [put]
// @Security     BearerAuth
func (h *JobHandler) Update(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	if userID == "" {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}

	var req UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	patch := &domain.JobPatch{
		ID:               c.Param("id"),
		Status:           req.Status,
		Country:          req.Country,
		League:           req.League,
		ClubName:         req.ClubName,
		ClubLevel:        req.ClubLevel,
		ContactInfo:      req.ContactInfo,
		PrivacySettings:  req.PrivacySettings,
		Position:         req.Position,
		Experience:       req.Experience,
		AgeRange:         req.AgeRange,
		Height:           req.Height,
		PreferredFoot:    req.PreferredFoot,
		Origin:           req.Origin,
		FinancialDetails: req.FinancialDetails,
		ExpiresAt:        req.ExpiresAt,
	}

	job, err := h.jobUC.UpdateJob(c, userID, patch)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job updated successfully", job)
}

// Delete godoc
// @Summary      Delete a job posting
// @Description  Permanently delete a posting owned by the caller's club
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [delete]
// @Security     BearerAuth
func (h *JobHandler) Delete(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	if userID == "" {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}

	if err := h.jobUC.DeleteJob(c, userID, c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job deleted successfully", nil)
}
