package v1

import (
	"net/http"

	"scoutline-backend/internal/delivery/http/response"
	"scoutline-backend/internal/domain"
	"scoutline-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	identityUC domain.IdentityUsecase
}

func NewAuthHandler(protected *gin.RouterGroup, identityUC domain.IdentityUsecase) {
	handler := &AuthHandler{identityUC: identityUC}

	auth := protected.Group("/auth")
	{
		auth.GET("/me", handler.Me)
		auth.PUT("/role", handler.SetRole)
	}
}

type SetRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// Me godoc
// @Summary      Current user profile
// @Description  Fetch the caller's profile from the identity provider
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/me [get]
// @Security     BearerAuth
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	if userID == "" {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}

	user, err := h.identityUC.GetProfile(c, userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User profile", user)
}

// SetRole godoc
// @Summary      Assign the caller's role
// @Description  Store a role (club, agent or player) in the caller's identity-provider metadata
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        role  body      SetRoleRequest  true  "Role JSON"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Router       /auth/role [put]
// @Security     BearerAuth
func (h *AuthHandler) SetRole(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	if userID == "" {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}

	var req SetRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.identityUC.AssignRole(c, userID, req.Role); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Role updated successfully", gin.H{"role": req.Role})
}
