package handlers

import (
	"net/http"

	"pawbase-backend/internal/auth"
	"pawbase-backend/internal/database/models"
	"pawbase-backend/internal/repository"
	"pawbase-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AnimalHandler handles HTTP requests for animals
type AnimalHandler struct {
	service service.AnimalServiceInterface
	authz   *auth.Authorizer
}

// NewAnimalHandler creates a new animal handler
func NewAnimalHandler(service service.AnimalServiceInterface, authz *auth.Authorizer) *AnimalHandler {
	return &AnimalHandler{service: service, authz: authz}
}

// CreateAnimal handles POST /api/v1/animals
// @Summary Create a new animal
// @Description Register an animal in a shelter within the caller's scope
// @Tags animals
// @Accept json
// @Produce json
// @Param animal body service.CreateAnimalRequest true "Animal data"
// @Success 201 {object} service.AnimalResponse "Successfully created animal"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Shelter not in the caller's scope"
// @Security BearerAuth
// @Router /animals [post]
func (h *AnimalHandler) CreateAnimal(c *gin.Context) {
	_, _, scope, err := h.authz.Authorize(c)
	if err != nil {
		respondServiceError(c, err, "Failed to resolve access scope")
		return
	}

	var req service.CreateAnimalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	animal, err := h.service.Create(scope, &req)
	if err != nil {
		respondServiceError(c, err, "Failed to create animal")
		return
	}

	c.JSON(http.StatusCreated, animal)
}

// ListAnimals handles GET /api/v1/animals
// @Summary List animals
// @Description Get a paginated list of animals in the caller's accessible shelters
// @Tags animals
// @Accept json
// @Produce json
// @Param species query string false "Filter by species"
// @Param breed query string false "Filter by breed"
// @Param status query string false "Filter by adoption status"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} service.AnimalListResponse "Successfully retrieved animals"
// @Failure 403 {object} map[string]interface{} "Caller has no organization or assignment"
// @Security BearerAuth
// @Router /animals [get]
func (h *AnimalHandler) ListAnimals(c *gin.Context) {
	_, _, scope, err := h.authz.Authorize(c)
	if err != nil {
		respondServiceError(c, err, "Failed to resolve access scope")
		return
	}

	filter := repository.AnimalFilter{
		Species: c.Query("species"),
		Breed:   c.Query("breed"),
		Status:  models.AdoptionStatus(c.Query("status")),
	}
	page, pageSize := pagination(c)

	animals, err := h.service.List(scope, filter, page, pageSize)
	if err != nil {
		respondServiceError(c, err, "Failed to list animals")
		return
	}

	c.JSON(http.StatusOK, animals)
}

// SearchPublicAnimals handles GET /api/v1/public/animals
// @Summary Search adoptable animals
// @Description Get available animals across all shelters, no authentication required
// @Tags animals
// @Accept json
// @Produce json
// @Param species query string false "Filter by species"
// @Param breed query string false "Filter by breed"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} service.AnimalListResponse "Available animals"
// @Router /public/animals [get]
func (h *AnimalHandler) SearchPublicAnimals(c *gin.Context) {
	page, pageSize := pagination(c)

	animals, err := h.service.SearchAvailable(c.Query("species"), c.Query("breed"), page, pageSize)
	if err != nil {
		respondServiceError(c, err, "Failed to search animals")
		return
	}

	c.JSON(http.StatusOK, animals)
}

// GetAnimal handles GET /api/v1/animals/:id
// @Summary Get animal by ID
// @Description Get an animal in the caller's scope by its UUID
// @Tags animals
// @Accept json
// @Produce json
// @Param id path string true "Animal ID (UUID)"
// @Success 200 {object} service.AnimalResponse "Successfully retrieved animal"
// @Failure 400 {object} map[string]interface{} "Invalid animal ID"
// @Failure 403 {object} map[string]interface{} "Animal not in the caller's scope"
// @Failure 404 {object} map[string]interface{} "Animal not found"
// @Security BearerAuth
// @Router /animals/{id} [get]
func (h *AnimalHandler) GetAnimal(c *gin.Context) {
	_, _, scope, err := h.authz.Authorize(c)
	if err != nil {
		respondServiceError(c, err, "Failed to resolve access scope")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid animal ID: invalid UUID format"})
		return
	}

	animal, err := h.service.GetByID(scope, id)
	if err != nil {
		respondServiceError(c, err, "Failed to get animal")
		return
	}

	c.JSON(http.StatusOK, animal)
}

// UpdateAnimal handles PUT /api/v1/animals/:id
// @Summary Update animal
// @Description Update an animal in the caller's scope
// @Tags animals
// @Accept json
// @Produce json
// @Param id path string true "Animal ID (UUID)"
// @Param animal body service.UpdateAnimalRequest true "Animal data"
// @Success 200 {object} service.AnimalResponse "Successfully updated animal"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Animal not in the caller's scope"
// @Failure 404 {object} map[string]interface{} "Animal not found"
// @Security BearerAuth
// @Router /animals/{id} [put]
func (h *AnimalHandler) UpdateAnimal(c *gin.Context) {
	_, _, scope, err := h.authz.Authorize(c)
	if err != nil {
		respondServiceError(c, err, "Failed to resolve access scope")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid animal ID: invalid UUID format"})
		return
	}

	var req service.UpdateAnimalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	animal, err := h.service.Update(scope, id, &req)
	if err != nil {
		respondServiceError(c, err, "Failed to update animal")
		return
	}

	c.JSON(http.StatusOK, animal)
}

// DeleteAnimal handles DELETE /api/v1/animals/:id
// @Summary Delete animal
// @Description Delete an animal in the caller's scope
// @Tags animals
// @Accept json
// @Produce json
// @Param id path string true "Animal ID (UUID)"
// @Success 204 "Successfully deleted animal"
// @Failure 400 {object} map[string]interface{} "Invalid animal ID"
// @Failure 403 {object} map[string]interface{} "Animal not in the caller's scope"
// @Failure 404 {object} map[string]interface{} "Animal not found"
// @Security BearerAuth
// @Router /animals/{id} [delete]
func (h *AnimalHandler) DeleteAnimal(c *gin.Context) {
	_, _, scope, err := h.authz.Authorize(c)
	if err != nil {
		respondServiceError(c, err, "Failed to resolve access scope")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid animal ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(scope, id); err != nil {
		respondServiceError(c, err, "Failed to delete animal")
		return
	}

	c.Status(http.StatusNoContent)
}
