package repositories

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/rentalworks/erp-backend/models"
	"github.com/rentalworks/erp-backend/pure_utils"
	"github.com/rentalworks/erp-backend/repositories/dbmodels"
)

func (repo ErpDbRepository) CreateAuditEntry(
	ctx context.Context,
	exec Executor,
	input models.CreateAuditEntry,
	createdAt time.Time,
) (models.AuditEntry, error) {
	entry := models.AuditEntry{
		Id:         uuid.New(),
		ActorId:    input.ActorId,
		Action:     input.Action,
		EntityType: input.EntityType,
		EntityId:   input.EntityId,
		Payload:    input.Payload,
		ModuleId:   input.ModuleId,
		CreatedAt:  createdAt,
	}

	_, err := ExecBuilder(ctx, exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_AUDIT_LOG).
			Columns(
				"id",
				"actor_id",
				"action",
				"entity_type",
				"entity_id",
				"payload",
				"module_id",
				"created_at",
			).
			Values(
				entry.Id,
				entry.ActorId,
				entry.Action,
				entry.EntityType,
				entry.EntityId,
				entry.Payload,
				entry.ModuleId,
				entry.CreatedAt,
			),
	)
	if err != nil {
		return models.AuditEntry{}, err
	}
	return entry, nil
}

// GetEntityAuditHistory returns up to limit entries for one entity, most
// recent first. The actor's display name and email are resolved through a
// left join: entries whose actor was deleted keep a nil actor instead of
// being dropped.
func (repo ErpDbRepository) GetEntityAuditHistory(
	ctx context.Context,
	exec Executor,
	entityType, entityId string,
	limit int,
) ([]models.AuditEntry, error) {
	query := NewQueryBuilder().
		Select(append(
			columnsNames("al", dbmodels.SelectAuditEntryColumns),
			"u.first_name || ' ' || u.last_name AS actor_name",
			"u.email AS actor_email",
		)...).
		From(dbmodels.TABLE_AUDIT_LOG+" AS al").
		LeftJoin(dbmodels.TABLE_USERS+" AS u ON u.id = al.actor_id").
		Where(squirrel.Eq{"al.entity_type": entityType}).
		Where(squirrel.Eq{"al.entity_id": entityId}).
		OrderBy("al.created_at DESC, al.id DESC").
		Limit(uint64(limit))

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptAuditEntryWithActor)
}

func (repo ErpDbRepository) GetActorAuditHistory(
	ctx context.Context,
	exec Executor,
	actorId uuid.UUID,
	limit int,
) ([]models.AuditEntry, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectAuditEntryColumns...).
		From(dbmodels.TABLE_AUDIT_LOG).
		Where(squirrel.Eq{"actor_id": actorId}).
		OrderBy("created_at DESC, id DESC").
		Limit(uint64(limit))

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptAuditEntry)
}

func columnsNames(tablename string, fields []string) []string {
	return pure_utils.Map(fields, func(f string) string {
		return tablename + "." + f
	})
}
