package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/rentalworks/erp-backend/models"
	"github.com/rentalworks/erp-backend/utils"
)

func presentError(ctx context.Context, c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	switch {
	case errors.Is(err, models.BadParameterError):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, models.ForbiddenError):
		c.JSON(http.StatusForbidden, gin.H{"message": err.Error()})
	case errors.Is(err, models.NotFoundError):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case errors.Is(err, models.ConflictError):
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
	default:
		utils.LoggerFromContext(ctx).ErrorContext(ctx, fmt.Sprintf("unexpected error: %+v", err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
	}
	return true
}
