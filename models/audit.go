package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

const (
	AuditHistoryDefaultLimit = 50
	AuditHistoryMaxLimit     = 1000
)

// AuditEntry is one immutable record of an action taken against an entity.
// There is no update or delete path anywhere: the log is append-only.
type AuditEntry struct {
	Id      uuid.UUID
	ActorId *uuid.UUID

	Action     string
	EntityType string
	EntityId   string
	Payload    json.RawMessage
	ModuleId   string

	// Resolved from the users table on entity-history reads. Nil when the
	// actor is unset or has since been deleted.
	ActorName  *string
	ActorEmail *string

	CreatedAt time.Time
}

// CreateAuditEntry accepts both the legacy field names (TableName, RecordId,
// Details) and the current ones (EntityType, EntityId, Payload) for the same
// semantic fields. NewValues is the intermediate name the payload field went
// through before settling on Payload; some callers still emit it. Callers
// migrated from the old audit schema still emit the legacy shape.
type CreateAuditEntry struct {
	ActorId  *uuid.UUID
	Action   string
	ModuleId string

	EntityType string
	TableName  string

	EntityId string
	RecordId string

	Payload   json.RawMessage
	Details   json.RawMessage
	NewValues json.RawMessage
}

// Reconciled collapses the dual naming into the current field names. The
// legacy name wins when both are set; for the payload the precedence is
// Details, then NewValues, then Payload. This is a compatibility shim over a
// schema migration, kept explicit until the last legacy caller is gone.
func (c CreateAuditEntry) Reconciled() CreateAuditEntry {
	if c.TableName != "" {
		c.EntityType = c.TableName
	}
	if c.RecordId != "" {
		c.EntityId = c.RecordId
	}
	if c.Details != nil {
		c.Payload = c.Details
	} else if c.NewValues != nil {
		c.Payload = c.NewValues
	}
	c.TableName = ""
	c.RecordId = ""
	c.Details = nil
	c.NewValues = nil
	return c
}

// ValidateAuditHistoryLimit rejects out-of-range limits instead of silently
// clamping them.
func ValidateAuditHistoryLimit(limit int) error {
	if limit < 1 || limit > AuditHistoryMaxLimit {
		return errors.Wrap(BadParameterError,
			fmt.Sprintf("limit must be between 1 and %d, got %d", AuditHistoryMaxLimit, limit))
	}
	return nil
}
