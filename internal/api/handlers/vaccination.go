package handlers

import (
	"net/http"

	"pawbase-backend/internal/auth"
	"pawbase-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// VaccinationHandler handles HTTP requests for vaccinations
type VaccinationHandler struct {
	service service.VaccinationServiceInterface
	authz   *auth.Authorizer
}

// NewVaccinationHandler creates a new vaccination handler
func NewVaccinationHandler(service service.VaccinationServiceInterface, authz *auth.Authorizer) *VaccinationHandler {
	return &VaccinationHandler{service: service, authz: authz}
}

// CreateVaccination handles POST /api/v1/vaccinations
// @Summary Record a vaccination
// @Description Record a vaccination for an animal in the caller's scope, stamped with the caller as administering staff
// @Tags vaccinations
// @Accept json
// @Produce json
// @Param vaccination body service.CreateVaccinationRequest true "Vaccination data"
// @Success 201 {object} service.VaccinationResponse "Successfully created vaccination"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Animal not in the caller's scope"
// @Failure 404 {object} map[string]interface{} "Animal not found"
// @Security BearerAuth
// @Router /vaccinations [post]
func (h *VaccinationHandler) CreateVaccination(c *gin.Context) {
	user, _, scope, err := h.authz.Authorize(c)
	if err != nil {
		respondServiceError(c, err, "Failed to resolve access scope")
		return
	}

	var req service.CreateVaccinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	vaccination, err := h.service.Create(user, scope, &req)
	if err != nil {
		respondServiceError(c, err, "Failed to create vaccination")
		return
	}

	c.JSON(http.StatusCreated, vaccination)
}

// ListVaccinations handles GET /api/v1/vaccinations
// @Summary List vaccinations
// @Description Get a paginated list of vaccinations for animals in the caller's scope
// @Tags vaccinations
// @Accept json
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} service.VaccinationListResponse "Successfully retrieved vaccinations"
// @Security BearerAuth
// @Router /vaccinations [get]
func (h *VaccinationHandler) ListVaccinations(c *gin.Context) {
	_, _, scope, err := h.authz.Authorize(c)
	if err != nil {
		respondServiceError(c, err, "Failed to resolve access scope")
		return
	}

	page, pageSize := pagination(c)

	vaccinations, err := h.service.List(scope, page, pageSize)
	if err != nil {
		respondServiceError(c, err, "Failed to list vaccinations")
		return
	}

	c.JSON(http.StatusOK, vaccinations)
}

// ListAnimalVaccinations handles GET /api/v1/animals/:id/vaccinations
// @Summary List vaccinations for one animal
// @Description Get all vaccinations of an animal in the caller's scope
// @Tags vaccinations
// @Accept json
// @Produce json
// @Param id path string true "Animal ID (UUID)"
// @Success 200 {array} service.VaccinationResponse "Successfully retrieved vaccinations"
// @Failure 403 {object} map[string]interface{} "Animal not in the caller's scope"
// @Failure 404 {object} map[string]interface{} "Animal not found"
// @Security BearerAuth
// @Router /animals/{id}/vaccinations [get]
func (h *VaccinationHandler) ListAnimalVaccinations(c *gin.Context) {
	_, _, scope, err := h.authz.Authorize(c)
	if err != nil {
		respondServiceError(c, err, "Failed to resolve access scope")
		return
	}

	animalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid animal ID: invalid UUID format"})
		return
	}

	vaccinations, err := h.service.ListByAnimal(scope, animalID)
	if err != nil {
		respondServiceError(c, err, "Failed to list vaccinations")
		return
	}

	c.JSON(http.StatusOK, vaccinations)
}

// GetVaccination handles GET /api/v1/vaccinations/:id
// @Summary Get vaccination by ID
// @Description Get a vaccination in the caller's scope by its UUID
// @Tags vaccinations
// @Accept json
// @Produce json
// @Param id path string true "Vaccination ID (UUID)"
// @Success 200 {object} service.VaccinationResponse "Successfully retrieved vaccination"
// @Failure 400 {object} map[string]interface{} "Invalid vaccination ID"
// @Failure 403 {object} map[string]interface{} "Vaccination not in the caller's scope"
// @Failure 404 {object} map[string]interface{} "Vaccination not found"
// @Security BearerAuth
// @Router /vaccinations/{id} [get]
func (h *VaccinationHandler) GetVaccination(c *gin.Context) {
	_, _, scope, err := h.authz.Authorize(c)
	if err != nil {
		respondServiceError(c, err, "Failed to resolve access scope")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vaccination ID: invalid UUID format"})
		return
	}

	vaccination, err := h.service.GetByID(scope, id)
	if err != nil {
		respondServiceError(c, err, "Failed to get vaccination")
		return
	}

	c.JSON(http.StatusOK, vaccination)
}

// UpdateVaccination handles PUT /api/v1/vaccinations/:id
// @Summary Update vaccination
// @Description Update a vaccination in the caller's scope
// @Tags vaccinations
// @Accept json
// @Produce json
// @Param id path string true "Vaccination ID (UUID)"
// @Param vaccination body service.UpdateVaccinationRequest true "Vaccination data"
// @Success 200 {object} service.VaccinationResponse "Successfully updated vaccination"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Vaccination not in the caller's scope"
// @Failure 404 {object} map[string]interface{} "Vaccination not found"
// @Security BearerAuth
// @Router /vaccinations/{id} [put]
func (h *VaccinationHandler) UpdateVaccination(c *gin.Context) {
	_, _, scope, err := h.authz.Authorize(c)
	if err != nil {
		respondServiceError(c, err, "Failed to resolve access scope")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vaccination ID: invalid UUID format"})
		return
	}

	var req service.UpdateVaccinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	vaccination, err := h.service.Update(scope, id, &req)
	if err != nil {
		respondServiceError(c, err, "Failed to update vaccination")
		return
	}

	c.JSON(http.StatusOK, vaccination)
}

// DeleteVaccination handles DELETE /api/v1/vaccinations/:id
// @Summary Delete vaccination
// @Description Delete a vaccination in the caller's scope
// @Tags vaccinations
// @Accept json
// @Produce json
// @Param id path string true "Vaccination ID (UUID)"
// @Success 204 "Successfully deleted vaccination"
// @Failure 400 {object} map[string]interface{} "Invalid vaccination ID"
// @Failure 403 {object} map[string]interface{} "Vaccination not in the caller's scope"
// @Failure 404 {object} map[string]interface{} "Vaccination not found"
// @Security BearerAuth
// @Router /vaccinations/{id} [delete]
func (h *VaccinationHandler) DeleteVaccination(c *gin.Context) {
	_, _, scope, err := h.authz.Authorize(c)
	if err != nil {
		respondServiceError(c, err, "Failed to resolve access scope")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vaccination ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(scope, id); err != nil {
		respondServiceError(c, err, "Failed to delete vaccination")
		return
	}

	c.Status(http.StatusNoContent)
}
