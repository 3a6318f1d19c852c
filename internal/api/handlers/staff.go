package handlers

import (
	"net/http"

	"pawbase-backend/internal/auth"
	"pawbase-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// StaffHandler handles HTTP requests for staff memberships
type StaffHandler struct {
	service service.StaffServiceInterface
	authz   *auth.Authorizer
}

// NewStaffHandler creates a new staff handler
func NewStaffHandler(service service.StaffServiceInterface, authz *auth.Authorizer) *StaffHandler {
	return &StaffHandler{service: service, authz: authz}
}

// AssignStaff handles POST /api/v1/staff
// @Summary Assign a staff user to a shelter
// @Description Create a staff membership linking a staff user to a shelter in the caller's scope
// @Tags staff
// @Accept json
// @Produce json
// @Param membership body service.AssignStaffRequest true "Membership data"
// @Success 201 {object} service.StaffMembershipResponse "Successfully created membership"
// @Failure 400 {object} map[string]interface{} "Invalid request body or non-staff user"
// @Failure 403 {object} map[string]interface{} "Shelter not in the caller's scope"
// @Failure 404 {object} map[string]interface{} "Shelter not found"
// @Failure 409 {object} map[string]interface{} "Membership already exists"
// @Security BearerAuth
// @Router /staff [post]
func (h *StaffHandler) AssignStaff(c *gin.Context) {
	_, org, scope, err := h.authz.Authorize(c)
	if err != nil {
		respondServiceError(c, err, "Failed to resolve access scope")
		return
	}

	var req service.AssignStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	membership, err := h.service.Assign(org, scope, &req)
	if err != nil {
		respondServiceError(c, err, "Failed to assign staff")
		return
	}

	c.JSON(http.StatusCreated, membership)
}

// ListStaff handles GET /api/v1/staff
// @Summary List staff memberships
// @Description Get the staff memberships visible to the caller
// @Tags staff
// @Accept json
// @Produce json
// @Success 200 {object} service.StaffMembershipListResponse "Successfully retrieved memberships"
// @Failure 403 {object} map[string]interface{} "Caller has no organization or assignment"
// @Security BearerAuth
// @Router /staff [get]
func (h *StaffHandler) ListStaff(c *gin.Context) {
	user, _, scope, err := h.authz.Authorize(c)
	if err != nil {
		respondServiceError(c, err, "Failed to resolve access scope")
		return
	}

	memberships, err := h.service.List(user, scope)
	if err != nil {
		respondServiceError(c, err, "Failed to list staff")
		return
	}

	c.JSON(http.StatusOK, memberships)
}

// GetStaff handles GET /api/v1/staff/:id
// @Summary Get staff membership by ID
// @Description Get a staff membership in the caller's scope by its UUID
// @Tags staff
// @Accept json
// @Produce json
// @Param id path string true "Membership ID (UUID)"
// @Success 200 {object} service.StaffMembershipResponse "Successfully retrieved membership"
// @Failure 400 {object} map[string]interface{} "Invalid membership ID"
// @Failure 403 {object} map[string]interface{} "Membership not in the caller's scope"
// @Failure 404 {object} map[string]interface{} "Membership not found"
// @Security BearerAuth
// @Router /staff/{id} [get]
func (h *StaffHandler) GetStaff(c *gin.Context) {
	_, _, scope, err := h.authz.Authorize(c)
	if err != nil {
		respondServiceError(c, err, "Failed to resolve access scope")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid membership ID: invalid UUID format"})
		return
	}

	membership, err := h.service.GetByID(scope, id)
	if err != nil {
		respondServiceError(c, err, "Failed to get staff membership")
		return
	}

	c.JSON(http.StatusOK, membership)
}

// RemoveStaff handles DELETE /api/v1/staff/:id
// @Summary Remove a staff membership
// @Description Delete a staff membership in the caller's scope
// @Tags staff
// @Accept json
// @Produce json
// @Param id path string true "Membership ID (UUID)"
// @Success 204 "Successfully deleted membership"
// @Failure 400 {object} map[string]interface{} "Invalid membership ID"
// @Failure 403 {object} map[string]interface{} "Membership not in the caller's scope"
// @Failure 404 {object} map[string]interface{} "Membership not found"
// @Security BearerAuth
// @Router /staff/{id} [delete]
func (h *StaffHandler) RemoveStaff(c *gin.Context) {
	_, _, scope, err := h.authz.Authorize(c)
	if err != nil {
		respondServiceError(c, err, "Failed to resolve access scope")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid membership ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(scope, id); err != nil {
		respondServiceError(c, err, "Failed to remove staff membership")
		return
	}

	c.Status(http.StatusNoContent)
}
