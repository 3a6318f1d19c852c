package handlers

import (
	"net/http"

	"pawbase-backend/internal/auth"
	"pawbase-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler handles analytics endpoints
type AnalyticsHandler struct {
	service service.AnalyticsServiceInterface
	authz   *auth.Authorizer
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(service service.AnalyticsServiceInterface, authz *auth.Authorizer) *AnalyticsHandler {
	return &AnalyticsHandler{service: service, authz: authz}
}

// GetAnalytics handles GET /api/v1/analytics
// @Summary Organization adoption analytics
// @Description Get per-shelter adoption success rates and the most adopted breeds for the caller's organization
// @Tags analytics
// @Accept json
// @Produce json
// @Success 200 {object} service.AnalyticsResponse "Successfully retrieved analytics"
// @Failure 403 {object} map[string]interface{} "Caller has no organization"
// @Security BearerAuth
// @Router /analytics [get]
func (h *AnalyticsHandler) GetAnalytics(c *gin.Context) {
	_, org, _, err := h.authz.Authorize(c)
	if err != nil {
		respondServiceError(c, err, "Failed to resolve access scope")
		return
	}

	overview, err := h.service.Overview(org)
	if err != nil {
		respondServiceError(c, err, "Failed to compute analytics")
		return
	}

	c.JSON(http.StatusOK, overview)
}
