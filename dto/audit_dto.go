package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/rentalworks/erp-backend/models"
)

type AuditEntry struct {
	Id      uuid.UUID  `json:"id"`
	ActorId *uuid.UUID `json:"actor_id"`

	Action     string          `json:"action"`
	EntityType string          `json:"entity_type"`
	EntityId   string          `json:"entity_id"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	ModuleId   string          `json:"module_id"`

	ActorName  *string `json:"actor_name,omitempty"`
	ActorEmail *string `json:"actor_email,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func AdaptAuditEntryDto(m models.AuditEntry) AuditEntry {
	return AuditEntry{
		Id:         m.Id,
		ActorId:    m.ActorId,
		Action:     m.Action,
		EntityType: m.EntityType,
		EntityId:   m.EntityId,
		Payload:    m.Payload,
		ModuleId:   m.ModuleId,
		ActorName:  m.ActorName,
		ActorEmail: m.ActorEmail,
		CreatedAt:  m.CreatedAt,
	}
}

// CreateAuditEntryBody accepts the legacy field names (table_name, record_id,
// details) alongside the current ones, plus new_values as the payload's
// intermediate name. Clients migrated from the old audit schema still post
// the legacy shape.
type CreateAuditEntryBody struct {
	ActorId  *uuid.UUID `json:"actor_id"`
	Action   string     `json:"action" binding:"required"`
	ModuleId string     `json:"module_id"`

	EntityType string `json:"entity_type"`
	TableName  string `json:"table_name"`

	EntityId string `json:"entity_id"`
	RecordId string `json:"record_id"`

	Payload   json.RawMessage `json:"payload"`
	Details   json.RawMessage `json:"details"`
	NewValues json.RawMessage `json:"new_values"`
}

func AdaptCreateAuditEntry(body CreateAuditEntryBody) models.CreateAuditEntry {
	return models.CreateAuditEntry{
		ActorId:    body.ActorId,
		Action:     body.Action,
		ModuleId:   body.ModuleId,
		EntityType: body.EntityType,
		TableName:  body.TableName,
		EntityId:   body.EntityId,
		RecordId:   body.RecordId,
		Payload:    body.Payload,
		Details:    body.Details,
		NewValues:  body.NewValues,
	}
}

type AuditHistoryFilters struct {
	Limit *int `form:"limit"`
}

// LimitOrDefault returns the default page size only when the parameter was
// absent. An explicit value, zero included, is passed through for the usecase
// to validate.
func (f AuditHistoryFilters) LimitOrDefault() int {
	if f.Limit == nil {
		return models.AuditHistoryDefaultLimit
	}
	return *f.Limit
}
