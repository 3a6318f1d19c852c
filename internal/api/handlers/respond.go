package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "pawbase-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// respondServiceError maps service-layer errors onto HTTP statuses:
// authentication 401, authorization 403, not-found 404, duplicates 409,
// validation and business rule violations 400, everything else 500 with
// the handler's fallback message.
func respondServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err),
		isFieldValidation(err),
		errors.Is(err, apperrors.ErrInvalidStatus),
		errors.Is(err, apperrors.ErrAnimalNotAvailable),
		errors.Is(err, apperrors.ErrRequestAlreadyDecided),
		errors.Is(err, apperrors.ErrNotStaffUser):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback, "details": err.Error()})
	}
}

// isFieldValidation reports whether err wraps struct validation failures
func isFieldValidation(err error) bool {
	var fieldErrs validator.ValidationErrors
	return errors.As(err, &fieldErrs)
}

// pagination reads the page and page_size query parameters
func pagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	return page, pageSize
}
