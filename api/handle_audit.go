package api

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rentalworks/erp-backend/dto"
	"github.com/rentalworks/erp-backend/models"
	"github.com/rentalworks/erp-backend/pure_utils"
	"github.com/rentalworks/erp-backend/usecases"
)

func handlePostAuditEntry(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var body dto.CreateAuditEntryBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		auditUsecase := uc.NewAuditUsecase()
		entry, err := auditUsecase.RecordAuditEntry(ctx, dto.AdaptCreateAuditEntry(body))
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"audit_entry": dto.AdaptAuditEntryDto(entry),
		})
	}
}

func handleGetEntityAuditHistory(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var filters dto.AuditHistoryFilters
		if err := c.ShouldBindQuery(&filters); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		auditUsecase := uc.NewAuditUsecase()
		entries, err := auditUsecase.GetEntityHistory(ctx,
			c.Param("entity_type"), c.Param("entity_id"), filters.LimitOrDefault())
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"audit_entries": pure_utils.Map(entries, dto.AdaptAuditEntryDto),
		})
	}
}

func handleGetActorAuditHistory(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		actorId, err := uuid.Parse(c.Param("actor_id"))
		if err != nil {
			presentError(ctx, c, errors.Wrap(models.BadParameterError, "actor_id is not a valid uuid"))
			return
		}

		var filters dto.AuditHistoryFilters
		if err := c.ShouldBindQuery(&filters); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		auditUsecase := uc.NewAuditUsecase()
		entries, err := auditUsecase.GetActorHistory(ctx, actorId, filters.LimitOrDefault())
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"audit_entries": pure_utils.Map(entries, dto.AdaptAuditEntryDto),
		})
	}
}
