package handlers

import (
	"net/http"

	"pawbase-backend/internal/auth"
	"pawbase-backend/internal/database/models"
	"pawbase-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdoptionRequestHandler handles HTTP requests for adoption requests
type AdoptionRequestHandler struct {
	service service.AdoptionRequestServiceInterface
	authz   *auth.Authorizer
}

// NewAdoptionRequestHandler creates a new adoption request handler
func NewAdoptionRequestHandler(service service.AdoptionRequestServiceInterface, authz *auth.Authorizer) *AdoptionRequestHandler {
	return &AdoptionRequestHandler{service: service, authz: authz}
}

// SubmitAdoptionRequest handles POST /api/v1/adoption-requests
// @Summary Submit an adoption request
// @Description File an adoption request for an available animal as the authenticated adopter
// @Tags adoption-requests
// @Accept json
// @Produce json
// @Param request body service.SubmitAdoptionRequest true "Adoption request data"
// @Success 201 {object} service.AdoptionRequestResponse "Successfully submitted request"
// @Failure 400 {object} map[string]interface{} "Invalid request body or animal not available"
// @Failure 404 {object} map[string]interface{} "Animal not found"
// @Security BearerAuth
// @Router /adoption-requests [post]
func (h *AdoptionRequestHandler) SubmitAdoptionRequest(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.SubmitAdoptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	request, err := h.service.Submit(user, &req)
	if err != nil {
		respondServiceError(c, err, "Failed to submit adoption request")
		return
	}

	c.JSON(http.StatusCreated, request)
}

// ListOwnAdoptionRequests handles GET /api/v1/adoption-requests/mine
// @Summary List own adoption requests
// @Description Get the authenticated adopter's own adoption requests
// @Tags adoption-requests
// @Accept json
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} service.AdoptionRequestListResponse "Successfully retrieved requests"
// @Security BearerAuth
// @Router /adoption-requests/mine [get]
func (h *AdoptionRequestHandler) ListOwnAdoptionRequests(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	page, pageSize := pagination(c)

	requests, err := h.service.ListOwn(user, page, pageSize)
	if err != nil {
		respondServiceError(c, err, "Failed to list adoption requests")
		return
	}

	c.JSON(http.StatusOK, requests)
}

// GetOwnAdoptionRequest handles GET /api/v1/adoption-requests/mine/:id
// @Summary Get one of the caller's own adoption requests
// @Description Get an adoption request submitted by the authenticated adopter
// @Tags adoption-requests
// @Accept json
// @Produce json
// @Param id path string true "Request ID (UUID)"
// @Success 200 {object} service.AdoptionRequestResponse "Successfully retrieved request"
// @Failure 400 {object} map[string]interface{} "Invalid request ID"
// @Failure 404 {object} map[string]interface{} "Request not found"
// @Security BearerAuth
// @Router /adoption-requests/mine/{id} [get]
func (h *AdoptionRequestHandler) GetOwnAdoptionRequest(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID: invalid UUID format"})
		return
	}

	request, err := h.service.GetOwnByID(user, id)
	if err != nil {
		respondServiceError(c, err, "Failed to get adoption request")
		return
	}

	c.JSON(http.StatusOK, request)
}

// ListAdoptionRequests handles GET /api/v1/adoption-requests
// @Summary List adoption requests for review
// @Description Get adoption requests for animals in the caller's accessible shelters
// @Tags adoption-requests
// @Accept json
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} service.AdoptionRequestListResponse "Successfully retrieved requests"
// @Failure 403 {object} map[string]interface{} "Caller has no organization or assignment"
// @Security BearerAuth
// @Router /adoption-requests [get]
func (h *AdoptionRequestHandler) ListAdoptionRequests(c *gin.Context) {
	_, _, scope, err := h.authz.Authorize(c)
	if err != nil {
		respondServiceError(c, err, "Failed to resolve access scope")
		return
	}

	page, pageSize := pagination(c)

	requests, err := h.service.ListForScope(scope, page, pageSize)
	if err != nil {
		respondServiceError(c, err, "Failed to list adoption requests")
		return
	}

	c.JSON(http.StatusOK, requests)
}

// GetAdoptionRequest handles GET /api/v1/adoption-requests/:id
// @Summary Get adoption request by ID
// @Description Get an adoption request for an animal in the caller's scope
// @Tags adoption-requests
// @Accept json
// @Produce json
// @Param id path string true "Request ID (UUID)"
// @Success 200 {object} service.AdoptionRequestResponse "Successfully retrieved request"
// @Failure 400 {object} map[string]interface{} "Invalid request ID"
// @Failure 403 {object} map[string]interface{} "Request not in the caller's scope"
// @Failure 404 {object} map[string]interface{} "Request not found"
// @Security BearerAuth
// @Router /adoption-requests/{id} [get]
func (h *AdoptionRequestHandler) GetAdoptionRequest(c *gin.Context) {
	_, _, scope, err := h.authz.Authorize(c)
	if err != nil {
		respondServiceError(c, err, "Failed to resolve access scope")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID: invalid UUID format"})
		return
	}

	request, err := h.service.GetByID(scope, id)
	if err != nil {
		respondServiceError(c, err, "Failed to get adoption request")
		return
	}

	c.JSON(http.StatusOK, request)
}

// DecideAdoptionRequest handles PUT /api/v1/adoption-requests/:id/decision
// @Summary Decide an adoption request
// @Description Approve or reject a submitted adoption request; approval marks the animal adopted
// @Tags adoption-requests
// @Accept json
// @Produce json
// @Param id path string true "Request ID (UUID)"
// @Param decision body service.DecideAdoptionRequest true "Decision data"
// @Success 200 {object} service.AdoptionRequestResponse "Successfully decided request"
// @Failure 400 {object} map[string]interface{} "Invalid decision or request already decided"
// @Failure 403 {object} map[string]interface{} "Request not in the caller's scope"
// @Failure 404 {object} map[string]interface{} "Request not found"
// @Security BearerAuth
// @Router /adoption-requests/{id}/decision [put]
func (h *AdoptionRequestHandler) DecideAdoptionRequest(c *gin.Context) {
	_, _, scope, err := h.authz.Authorize(c)
	if err != nil {
		respondServiceError(c, err, "Failed to resolve access scope")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID: invalid UUID format"})
		return
	}

	var req service.DecideAdoptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if req.Status != models.RequestStatusApproved && req.Status != models.RequestStatusRejected {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Decision status must be Approved or Rejected"})
		return
	}

	request, err := h.service.Decide(scope, id, &req)
	if err != nil {
		respondServiceError(c, err, "Failed to decide adoption request")
		return
	}

	c.JSON(http.StatusOK, request)
}
