package handlers

import (
	"net/http"

	"pawbase-backend/internal/auth"
	"pawbase-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MedicalRecordHandler handles HTTP requests for medical records
type MedicalRecordHandler struct {
	service service.MedicalRecordServiceInterface
	authz   *auth.Authorizer
}

// NewMedicalRecordHandler creates a new medical record handler
func NewMedicalRecordHandler(service service.MedicalRecordServiceInterface, authz *auth.Authorizer) *MedicalRecordHandler {
	return &MedicalRecordHandler{service: service, authz: authz}
}

// CreateMedicalRecord handles POST /api/v1/medical-records
// @Summary Create a medical record
// @Description Record a veterinary visit for an animal in the caller's scope
// @Tags medical-records
// @Accept json
// @Produce json
// @Param record body service.CreateMedicalRecordRequest true "Medical record data"
// @Success 201 {object} service.MedicalRecordResponse "Successfully created record"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Animal not in the caller's scope"
// @Failure 404 {object} map[string]interface{} "Animal not found"
// @Security BearerAuth
// @Router /medical-records [post]
func (h *MedicalRecordHandler) CreateMedicalRecord(c *gin.Context) {
	_, _, scope, err := h.authz.Authorize(c)
	if err != nil {
		respondServiceError(c, err, "Failed to resolve access scope")
		return
	}

	var req service.CreateMedicalRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	record, err := h.service.Create(scope, &req)
	if err != nil {
		respondServiceError(c, err, "Failed to create medical record")
		return
	}

	c.JSON(http.StatusCreated, record)
}

// ListMedicalRecords handles GET /api/v1/medical-records
// @Summary List medical records
// @Description Get a paginated list of medical records for animals in the caller's scope
// @Tags medical-records
// @Accept json
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} service.MedicalRecordListResponse "Successfully retrieved records"
// @Security BearerAuth
// @Router /medical-records [get]
func (h *MedicalRecordHandler) ListMedicalRecords(c *gin.Context) {
	_, _, scope, err := h.authz.Authorize(c)
	if err != nil {
		respondServiceError(c, err, "Failed to resolve access scope")
		return
	}

	page, pageSize := pagination(c)

	records, err := h.service.List(scope, page, pageSize)
	if err != nil {
		respondServiceError(c, err, "Failed to list medical records")
		return
	}

	c.JSON(http.StatusOK, records)
}

// ListAnimalMedicalRecords handles GET /api/v1/animals/:id/medical-records
// @Summary List medical records for one animal
// @Description Get all medical records of an animal in the caller's scope
// @Tags medical-records
// @Accept json
// @Produce json
// @Param id path string true "Animal ID (UUID)"
// @Success 200 {array} service.MedicalRecordResponse "Successfully retrieved records"
// @Failure 403 {object} map[string]interface{} "Animal not in the caller's scope"
// @Failure 404 {object} map[string]interface{} "Animal not found"
// @Security BearerAuth
// @Router /animals/{id}/medical-records [get]
func (h *MedicalRecordHandler) ListAnimalMedicalRecords(c *gin.Context) {
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

	records, err := h.service.ListByAnimal(scope, animalID)
	if err != nil {
		respondServiceError(c, err, "Failed to list medical records")
		return
	}

	c.JSON(http.StatusOK, records)
}

// GetMedicalRecord handles GET /api/v1/medical-records/:id
// @Summary Get medical record by ID
// @Description Get a medical record in the caller's scope by its UUID
// @Tags medical-records
// @Accept json
// @Produce json
// @Param id path string true "Record ID (UUID)"
// @Success 200 {object} service.MedicalRecordResponse "Successfully retrieved record"
// @Failure 400 {object} map[string]interface{} "Invalid record ID"
// @Failure 403 {object} map[string]interface{} "Record not in the caller's scope"
// @Failure 404 {object} map[string]interface{} "Record not found"
// @Security BearerAuth
// @Router /medical-records/{id} [get]
func (h *MedicalRecordHandler) GetMedicalRecord(c *gin.Context) {
	_, _, scope, err := h.authz.Authorize(c)
	if err != nil {
		respondServiceError(c, err, "Failed to resolve access scope")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid record ID: invalid UUID format"})
		return
	}

	record, err := h.service.GetByID(scope, id)
	if err != nil {
		respondServiceError(c, err, "Failed to get medical record")
		return
	}

	c.JSON(http.StatusOK, record)
}

// UpdateMedicalRecord handles PUT /api/v1/medical-records/:id
// @Summary Update medical record
// @Description Update a medical record in the caller's scope
// @Tags medical-records
// @Accept json
// @Produce json
// @Param id path string true "Record ID (UUID)"
// @Param record body service.UpdateMedicalRecordRequest true "Medical record data"
// @Success 200 {object} service.MedicalRecordResponse "Successfully updated record"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Record not in the caller's scope"
// @Failure 404 {object} map[string]interface{} "Record not found"
// @Security BearerAuth
// @Router /medical-records/{id} [put]
func (h *MedicalRecordHandler) UpdateMedicalRecord(c *gin.Context) {
	_, _, scope, err := h.authz.Authorize(c)
	if err != nil {
		respondServiceError(c, err, "Failed to resolve access scope")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid record ID: invalid UUID format"})
		return
	}

	var req service.UpdateMedicalRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	record, err := h.service.Update(scope, id, &req)
	if err != nil {
		respondServiceError(c, err, "Failed to update medical record")
		return
	}

	c.JSON(http.StatusOK, record)
}

// DeleteMedicalRecord handles DELETE /api/v1/medical-records/:id
// @Summary Delete medical record
// @Description Delete a medical record in the caller's scope
// @Tags medical-records
// @Accept json
// @Produce json
// @Param id path string true "Record ID (UUID)"
// @Success 204 "Successfully deleted record"
// @Failure 400 {object} map[string]interface{} "Invalid record ID"
// @Failure 403 {object} map[string]interface{} "Record not in the caller's scope"
// @Failure 404 {object} map[string]interface{} "Record not found"
// @Security BearerAuth
// @Router /medical-records/{id} [delete]
func (h *MedicalRecordHandler) DeleteMedicalRecord(c *gin.Context) {
	_, _, scope, err := h.authz.Authorize(c)
	if err != nil {
		respondServiceError(c, err, "Failed to resolve access scope")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid record ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(scope, id); err != nil {
		respondServiceError(c, err, "Failed to delete medical record")
		return
	}

	c.Status(http.StatusNoContent)
}
