package handlers

import (
	"net/http"

	"pawbase-backend/internal/auth"
	"pawbase-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ShelterHandler handles HTTP requests for shelters
type ShelterHandler struct {
	service service.ShelterServiceInterface
	authz   *auth.Authorizer
}

// NewShelterHandler creates a new shelter handler
func NewShelterHandler(service service.ShelterServiceInterface, authz *auth.Authorizer) *ShelterHandler {
	return &ShelterHandler{service: service, authz: authz}
}

// CreateShelter handles POST /api/v1/shelters
// @Summary Create a new shelter
// @Description Create a shelter in the caller's organization
// @Tags shelters
// @Accept json
// @Produce json
// @Param shelter body service.CreateShelterRequest true "Shelter data"
// @Success 201 {object} service.ShelterResponse "Successfully created shelter"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Caller has no organization"
// @Failure 409 {object} map[string]interface{} "Shelter already exists"
// @Security BearerAuth
// @Router /shelters [post]
func (h *ShelterHandler) CreateShelter(c *gin.Context) {
	_, org, _, err := h.authz.Authorize(c)
	if err != nil {
		respondServiceError(c, err, "Failed to resolve access scope")
		return
	}

	var req service.CreateShelterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	shelter, err := h.service.Create(org, &req)
	if err != nil {
		respondServiceError(c, err, "Failed to create shelter")
		return
	}

	c.JSON(http.StatusCreated, shelter)
}

// ListShelters handles GET /api/v1/shelters
// @Summary List shelters
// @Description Get the shelters visible to the caller within their organization
// @Tags shelters
// @Accept json
// @Produce json
// @Success 200 {object} service.ShelterListResponse "Successfully retrieved shelters"
// @Failure 403 {object} map[string]interface{} "Caller has no organization or assignment"
// @Security BearerAuth
// @Router /shelters [get]
func (h *ShelterHandler) ListShelters(c *gin.Context) {
	_, org, scope, err := h.authz.Authorize(c)
	if err != nil {
		respondServiceError(c, err, "Failed to resolve access scope")
		return
	}

	shelters, err := h.service.List(org, scope)
	if err != nil {
		respondServiceError(c, err, "Failed to list shelters")
		return
	}

	c.JSON(http.StatusOK, shelters)
}

// GetShelter handles GET /api/v1/shelters/:id
// @Summary Get shelter by ID
// @Description Get a shelter in the caller's scope by its UUID
// @Tags shelters
// @Accept json
// @Produce json
// @Param id path string true "Shelter ID (UUID)"
// @Success 200 {object} service.ShelterResponse "Successfully retrieved shelter"
// @Failure 400 {object} map[string]interface{} "Invalid shelter ID"
// @Failure 403 {object} map[string]interface{} "Shelter not in the caller's scope"
// @Failure 404 {object} map[string]interface{} "Shelter not found"
// @Security BearerAuth
// @Router /shelters/{id} [get]
func (h *ShelterHandler) GetShelter(c *gin.Context) {
	_, org, scope, err := h.authz.Authorize(c)
	if err != nil {
		respondServiceError(c, err, "Failed to resolve access scope")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shelter ID: invalid UUID format"})
		return
	}

	shelter, err := h.service.GetByID(org, scope, id)
	if err != nil {
		respondServiceError(c, err, "Failed to get shelter")
		return
	}

	c.JSON(http.StatusOK, shelter)
}

// UpdateShelter handles PUT /api/v1/shelters/:id
// @Summary Update shelter
// @Description Update a shelter in the caller's scope
// @Tags shelters
// @Accept json
// @Produce json
// @Param id path string true "Shelter ID (UUID)"
// @Param shelter body service.UpdateShelterRequest true "Shelter data"
// @Success 200 {object} service.ShelterResponse "Successfully updated shelter"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Shelter not in the caller's scope"
// @Failure 404 {object} map[string]interface{} "Shelter not found"
// @Security BearerAuth
// @Router /shelters/{id} [put]
func (h *ShelterHandler) UpdateShelter(c *gin.Context) {
	_, org, scope, err := h.authz.Authorize(c)
	if err != nil {
		respondServiceError(c, err, "Failed to resolve access scope")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shelter ID: invalid UUID format"})
		return
	}

	var req service.UpdateShelterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	shelter, err := h.service.Update(org, scope, id, &req)
	if err != nil {
		respondServiceError(c, err, "Failed to update shelter")
		return
	}

	c.JSON(http.StatusOK, shelter)
}

// DeleteShelter handles DELETE /api/v1/shelters/:id
// @Summary Delete shelter
// @Description Delete a shelter in the caller's scope
// @Tags shelters
// @Accept json
// @Produce json
// @Param id path string true "Shelter ID (UUID)"
// @Success 204 "Successfully deleted shelter"
// @Failure 400 {object} map[string]interface{} "Invalid shelter ID"
// @Failure 403 {object} map[string]interface{} "Shelter not in the caller's scope"
// @Failure 404 {object} map[string]interface{} "Shelter not found"
// @Security BearerAuth
// @Router /shelters/{id} [delete]
func (h *ShelterHandler) DeleteShelter(c *gin.Context) {
	_, org, scope, err := h.authz.Authorize(c)
	if err != nil {
		respondServiceError(c, err, "Failed to resolve access scope")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shelter ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(org, scope, id); err != nil {
		respondServiceError(c, err, "Failed to delete shelter")
		return
	}

	c.Status(http.StatusNoContent)
}
