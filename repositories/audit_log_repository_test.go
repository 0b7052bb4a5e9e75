package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/rentalworks/erp-backend/models"
	"github.com/rentalworks/erp-backend/pure_utils"
)

func TestErpDbRepository_CreateAuditEntry(t *testing.T) {
	t.Run("nominal", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatal(err)
		}
		defer mock.Close()

		actorId := uuid.New()
		createdAt := time.Date(2025, 1, 14, 10, 0, 0, 0, time.UTC)

		mock.ExpectExec("INSERT INTO audit_log").
			WithArgs(pgxmock.AnyArg(), &actorId, "gauge_updated", "gauges", "gauge-1",
				pgxmock.AnyArg(), "rental-erp", createdAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		repo := NewErpDbRepository()
		entry, err := repo.CreateAuditEntry(context.Background(), mock, models.CreateAuditEntry{
			ActorId:    &actorId,
			Action:     "gauge_updated",
			EntityType: "gauges",
			EntityId:   "gauge-1",
			ModuleId:   "rental-erp",
		}, createdAt)

		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, entry.Id)
		assert.Equal(t, createdAt, entry.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatal(err)
		}
		defer mock.Close()

		mock.ExpectExec("INSERT INTO audit_log").
			WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
				pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnError(assert.AnError)

		repo := NewErpDbRepository()
		_, err = repo.CreateAuditEntry(context.Background(), mock, models.CreateAuditEntry{
			Action: "gauge_updated",
		}, time.Now())

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestErpDbRepository_GetEntityAuditHistory(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	defer mock.Close()

	actorId := uuid.New()
	withActorId := uuid.New()
	orphanedId := uuid.New()
	createdAt := time.Date(2025, 1, 14, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT (.+) FROM audit_log AS al LEFT JOIN users AS u (.+) ORDER BY al.created_at DESC, al.id DESC`).
		WithArgs("rentals", "r-4").
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "actor_id", "action", "entity_type", "entity_id",
			"payload", "module_id", "created_at", "actor_name", "actor_email",
		}).AddRow(withActorId, &actorId, "status_changed", "rentals", "r-4",
			nil, "rental-erp", createdAt, pure_utils.Ptr("John Doe"), pure_utils.Ptr("jdoe@x.com")).
			AddRow(orphanedId, nil, "status_changed", "rentals", "r-4",
				nil, "rental-erp", createdAt.Add(-time.Hour), nil, nil))

	repo := NewErpDbRepository()
	entries, err := repo.GetEntityAuditHistory(context.Background(), mock, "rentals", "r-4", 50)

	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, "John Doe", *entries[0].ActorName)
	assert.Equal(t, "jdoe@x.com", *entries[0].ActorEmail)

	// an entry whose actor is gone keeps a nil actor instead of being dropped
	assert.Equal(t, orphanedId, entries[1].Id)
	assert.Nil(t, entries[1].ActorId)
	assert.Nil(t, entries[1].ActorName)
	assert.Nil(t, entries[1].ActorEmail)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestErpDbRepository_GetActorAuditHistory(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	defer mock.Close()

	actorId := uuid.New()
	entryId := uuid.New()
	createdAt := time.Date(2025, 1, 14, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT (.+) FROM audit_log").
		WithArgs(actorId.String()).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "actor_id", "action", "entity_type", "entity_id",
			"payload", "module_id", "created_at",
		}).AddRow(entryId, &actorId, "user_created", "users", "user-1",
			nil, "rental-erp", createdAt))

	repo := NewErpDbRepository()
	entries, err := repo.GetActorAuditHistory(context.Background(), mock, actorId, 50)

	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, entryId, entries[0].Id)
	assert.Equal(t, "user_created", entries[0].Action)
	assert.Equal(t, createdAt, entries[0].CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}
