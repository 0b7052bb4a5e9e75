package dbmodels

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/rentalworks/erp-backend/models"
	"github.com/rentalworks/erp-backend/utils"
)

type DbAuditEntry struct {
	Id      uuid.UUID  `db:"id"`
	ActorId *uuid.UUID `db:"actor_id"`

	Action     string          `db:"action"`
	EntityType string          `db:"entity_type"`
	EntityId   string          `db:"entity_id"`
	Payload    json.RawMessage `db:"payload"`
	ModuleId   string          `db:"module_id"`

	CreatedAt time.Time `db:"created_at"`
}

type DbAuditEntryWithActor struct {
	DbAuditEntry

	ActorName  *string `db:"actor_name"`
	ActorEmail *string `db:"actor_email"`
}

const TABLE_AUDIT_LOG = "audit_log"

var SelectAuditEntryColumns = utils.ColumnList[DbAuditEntry]()

func AdaptAuditEntry(db DbAuditEntry) (models.AuditEntry, error) {
	return models.AuditEntry{
		Id:         db.Id,
		ActorId:    db.ActorId,
		Action:     db.Action,
		EntityType: db.EntityType,
		EntityId:   db.EntityId,
		Payload:    db.Payload,
		ModuleId:   db.ModuleId,
		CreatedAt:  db.CreatedAt,
	}, nil
}

func AdaptAuditEntryWithActor(db DbAuditEntryWithActor) (models.AuditEntry, error) {
	entry, _ := AdaptAuditEntry(db.DbAuditEntry)
	entry.ActorName = db.ActorName
	entry.ActorEmail = db.ActorEmail
	return entry, nil
}
