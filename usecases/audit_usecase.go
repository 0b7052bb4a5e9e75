package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rentalworks/erp-backend/models"
	"github.com/rentalworks/erp-backend/repositories"
	"github.com/rentalworks/erp-backend/repositories/clock"
	"github.com/rentalworks/erp-backend/usecases/executor_factory"
	"github.com/rentalworks/erp-backend/utils"
)

type auditLogRepository interface {
	CreateAuditEntry(ctx context.Context, exec repositories.Executor,
		input models.CreateAuditEntry, createdAt time.Time) (models.AuditEntry, error)
	GetEntityAuditHistory(ctx context.Context, exec repositories.Executor,
		entityType, entityId string, limit int) ([]models.AuditEntry, error)
	GetActorAuditHistory(ctx context.Context, exec repositories.Executor,
		actorId uuid.UUID, limit int) ([]models.AuditEntry, error)
}

type AuditUsecase struct {
	executorFactory executor_factory.ExecutorFactory
	repository      auditLogRepository
	clock           clock.Clock
}

// RecordAuditEntry appends one entry to the audit log and returns it with
// its assigned id. The creation timestamp always comes from this component,
// never from the caller. Entry fields are trusted as provided (after the
// legacy-name reconciliation); persistence faults are logged and re-raised
// unchanged, with no retry.
func (usecase AuditUsecase) RecordAuditEntry(
	ctx context.Context,
	input models.CreateAuditEntry,
) (models.AuditEntry, error) {
	input = input.Reconciled()

	entry, err := usecase.repository.CreateAuditEntry(
		ctx, usecase.executorFactory.NewExecutor(), input, usecase.clock.Now())
	if err != nil {
		utils.LoggerFromContext(ctx).ErrorContext(ctx, "failed to record audit entry",
			"action", input.Action,
			"entity_type", input.EntityType,
			"entity_id", input.EntityId,
			"error", err.Error(),
		)
		return models.AuditEntry{}, err
	}
	return entry, nil
}

func (usecase AuditUsecase) GetEntityHistory(
	ctx context.Context,
	entityType, entityId string,
	limit int,
) ([]models.AuditEntry, error) {
	if err := models.ValidateAuditHistoryLimit(limit); err != nil {
		return nil, err
	}
	return usecase.repository.GetEntityAuditHistory(
		ctx, usecase.executorFactory.NewExecutor(), entityType, entityId, limit)
}

func (usecase AuditUsecase) GetActorHistory(
	ctx context.Context,
	actorId uuid.UUID,
	limit int,
) ([]models.AuditEntry, error) {
	if err := models.ValidateAuditHistoryLimit(limit); err != nil {
		return nil, err
	}
	return usecase.repository.GetActorAuditHistory(
		ctx, usecase.executorFactory.NewExecutor(), actorId, limit)
}
