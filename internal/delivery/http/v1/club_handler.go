package v1

import (
	"net/http"

	"scoutline-backend/internal/delivery/http/response"
	"scoutline-backend/internal/domain"
	"scoutline-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ClubHandler struct {
	clubUC domain.ClubUsecase
}

func NewClubHandler(public *gin.RouterGroup, clubUC domain.ClubUsecase) {
	handler := &ClubHandler{clubUC: clubUC}

	// Registration is public. The club binds itself to an identity-provider
	// user via clerkUserId in the payload.
	public.POST("/clubs", handler.Register)
}

type RegisterClubRequest struct {
	ClerkUserID        string                      `json:"clerkUserId" binding:"required"`
	Name               string                      `json:"name" binding:"required"`
	Email              string                      `json:"email" binding:"required,email"`
	Country            string                      `json:"country" binding:"required"`
	League             string                      `json:"league" binding:"required"`
	ClubSize           string                      `json:"clubSize" binding:"required,oneof=small medium large"`
	RecentAchievements *string                     `json:"recentAchievements"`
	ContactInfo        *domain.ClubContactInfo     `json:"contactInfo" binding:"required"`
	PrivacySettings    *domain.ClubPrivacySettings `json:"privacySettings"`
}

// Register godoc
// @Summary      Register a club
// @Description  Create a club profile bound to an identity-provider user. Name and email must be globally unique.
// @Tags         clubs
// @Accept       json
// @Produce      json
// @Param        club  body      RegisterClubRequest  true  "Club JSON"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /clubs [post]
func (h *ClubHandler) Register(c *gin.Context) {
	var req RegisterClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	club := &domain.Club{
		ClerkUserID:        req.ClerkUserID,
		Name:               req.Name,
		Email:              req.Email,
		Country:            req.Country,
		League:             req.League,
		ClubSize:           req.ClubSize,
		RecentAchievements: req.RecentAchievements,
		ContactInfo:        req.ContactInfo,
		PrivacySettings:    req.PrivacySettings,
	}

	if err := h.clubUC.RegisterClub(c, club); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Club registered successfully", club)
}
