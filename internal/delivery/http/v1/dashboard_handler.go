package v1

import (
	"net/http"

	"scoutline-backend/internal/delivery/http/response"
	"scoutline-backend/internal/domain"
	"scoutline-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardUC domain.DashboardUsecase
}

func NewDashboardHandler(protected *gin.RouterGroup, dashboardUC domain.DashboardUsecase) {
	handler := &DashboardHandler{dashboardUC: dashboardUC}

	protected.GET("/dashboard/club/stats", handler.ClubStats)
}

// ClubStats godoc
// @Summary      Club dashboard stats
// @Description  Aggregated posting stats and recent activity for the caller's club
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /dashboard/club/stats [get]
// @Security     BearerAuth
func (h *DashboardHandler) ClubStats(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	if userID == "" {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}

	stats, err := h.dashboardUC.ClubStats(c, userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Dashboard stats", stats)
}
