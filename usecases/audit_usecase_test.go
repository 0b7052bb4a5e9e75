package usecases

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/rentalworks/erp-backend/mocks"
	"github.com/rentalworks/erp-backend/models"
	"github.com/rentalworks/erp-backend/repositories"
	"github.com/rentalworks/erp-backend/repositories/clock"
	"github.com/rentalworks/erp-backend/utils"
)

type mockAuditLogRepository struct {
	mock.Mock
}

func (m *mockAuditLogRepository) CreateAuditEntry(ctx context.Context, exec repositories.Executor,
	input models.CreateAuditEntry, createdAt time.Time,
) (models.AuditEntry, error) {
	args := m.Called(ctx, exec, input, createdAt)
	return args.Get(0).(models.AuditEntry), args.Error(1)
}

func (m *mockAuditLogRepository) GetEntityAuditHistory(ctx context.Context, exec repositories.Executor,
	entityType, entityId string, limit int,
) ([]models.AuditEntry, error) {
	args := m.Called(ctx, exec, entityType, entityId, limit)
	return args.Get(0).([]models.AuditEntry), args.Error(1)
}

func (m *mockAuditLogRepository) GetActorAuditHistory(ctx context.Context, exec repositories.Executor,
	actorId uuid.UUID, limit int,
) ([]models.AuditEntry, error) {
	args := m.Called(ctx, exec, actorId, limit)
	return args.Get(0).([]models.AuditEntry), args.Error(1)
}

type AuditUsecaseTestSuite struct {
	suite.Suite
	repository      *mockAuditLogRepository
	executorFactory *mocks.ExecutorFactory
	executor        *mocks.Executor
	clock           *clock.Mock

	now time.Time
}

func (suite *AuditUsecaseTestSuite) SetupTest() {
	suite.repository = new(mockAuditLogRepository)
	suite.executorFactory = new(mocks.ExecutorFactory)
	suite.executor = new(mocks.Executor)
	suite.now = time.Date(2025, 1, 14, 10, 0, 0, 0, time.UTC)
	suite.clock = clock.NewMock(suite.now)

	suite.executorFactory.On("NewExecutor").Return(suite.executor).Maybe()
}

func (suite *AuditUsecaseTestSuite) makeUsecase() AuditUsecase {
	return AuditUsecase{
		executorFactory: suite.executorFactory,
		repository:      suite.repository,
		clock:           suite.clock,
	}
}

func (suite *AuditUsecaseTestSuite) ctx() context.Context {
	return utils.StoreLoggerInContext(context.Background(), utils.NewLogger("text"))
}

func (suite *AuditUsecaseTestSuite) Test_RecordAuditEntry_StampsCreationTime() {
	ctx := suite.ctx()
	input := models.CreateAuditEntry{
		Action:     "gauge_calibrated",
		EntityType: "gauges",
		EntityId:   "g-17",
		ModuleId:   "rental-erp",
	}
	persisted := models.AuditEntry{
		Id:         uuid.New(),
		Action:     "gauge_calibrated",
		EntityType: "gauges",
		EntityId:   "g-17",
		ModuleId:   "rental-erp",
		CreatedAt:  suite.now,
	}
	suite.repository.On("CreateAuditEntry", ctx, suite.executor, input, suite.now).
		Return(persisted, nil)

	entry, err := suite.makeUsecase().RecordAuditEntry(ctx, input)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, entry.Id)
	suite.Equal(suite.now, entry.CreatedAt)
}

func (suite *AuditUsecaseTestSuite) Test_RecordAuditEntry_AcceptsLegacyFieldNames() {
	ctx := suite.ctx()
	details := json.RawMessage(`{"status":"rented"}`)
	input := models.CreateAuditEntry{
		Action:    "status_changed",
		TableName: "rentals",
		RecordId:  "r-4",
		NewValues: details,
		ModuleId:  "rental-erp",
	}
	reconciled := models.CreateAuditEntry{
		Action:     "status_changed",
		EntityType: "rentals",
		EntityId:   "r-4",
		Payload:    details,
		ModuleId:   "rental-erp",
	}
	suite.repository.On("CreateAuditEntry", ctx, suite.executor, reconciled, suite.now).
		Return(models.AuditEntry{Id: uuid.New(), CreatedAt: suite.now}, nil)

	entry, err := suite.makeUsecase().RecordAuditEntry(ctx, input)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, entry.Id)
	suite.repository.AssertExpectations(suite.T())
}

func (suite *AuditUsecaseTestSuite) Test_RecordAuditEntry_LegacyNamesWinWhenBothPresent() {
	ctx := suite.ctx()
	input := models.CreateAuditEntry{
		Action:     "status_changed",
		TableName:  "rentals",
		EntityType: "ignored",
		RecordId:   "r-4",
		EntityId:   "ignored",
		Payload:    json.RawMessage(`{"source":"payload"}`),
		Details:    json.RawMessage(`{"source":"details"}`),
		ModuleId:   "rental-erp",
	}
	suite.repository.On("CreateAuditEntry", ctx, suite.executor,
		mock.MatchedBy(func(reconciled models.CreateAuditEntry) bool {
			return reconciled.EntityType == "rentals" && reconciled.EntityId == "r-4" &&
				string(reconciled.Payload) == `{"source":"details"}` &&
				reconciled.TableName == "" && reconciled.RecordId == ""
		}), suite.now).
		Return(models.AuditEntry{Id: uuid.New()}, nil)

	_, err := suite.makeUsecase().RecordAuditEntry(ctx, input)

	suite.NoError(err)
	suite.repository.AssertExpectations(suite.T())
}

func (suite *AuditUsecaseTestSuite) Test_RecordAuditEntry_PersistenceFaultPropagatesUnchanged() {
	ctx := suite.ctx()
	writeErr := errors.New("insert failed")
	suite.repository.On("CreateAuditEntry", ctx, suite.executor, mock.Anything, suite.now).
		Return(models.AuditEntry{}, writeErr)

	_, err := suite.makeUsecase().RecordAuditEntry(ctx, models.CreateAuditEntry{Action: "x"})

	suite.ErrorIs(err, writeErr)
}

func (suite *AuditUsecaseTestSuite) Test_GetEntityHistory_ValidatesLimit() {
	ctx := suite.ctx()

	for _, limit := range []int{0, -1, 1001} {
		_, err := suite.makeUsecase().GetEntityHistory(ctx, "gauges", "g-17", limit)
		suite.ErrorIs(err, models.BadParameterError)
		suite.ErrorContains(err, "limit")
	}
	suite.repository.AssertNotCalled(suite.T(), "GetEntityAuditHistory")
}

func (suite *AuditUsecaseTestSuite) Test_GetEntityHistory_ReturnsFewerRowsThanLimit() {
	ctx := suite.ctx()
	entries := []models.AuditEntry{
		{Id: uuid.New(), CreatedAt: suite.now},
		{Id: uuid.New(), CreatedAt: suite.now.Add(-time.Hour)},
	}
	suite.repository.On("GetEntityAuditHistory", ctx, suite.executor, "gauges", "g-17", 1000).
		Return(entries, nil)

	got, err := suite.makeUsecase().GetEntityHistory(ctx, "gauges", "g-17", 1000)

	suite.NoError(err)
	suite.Equal(entries, got)
}

func (suite *AuditUsecaseTestSuite) Test_GetActorHistory_ValidatesLimit() {
	ctx := suite.ctx()

	_, err := suite.makeUsecase().GetActorHistory(ctx, uuid.New(), 1001)

	suite.ErrorIs(err, models.BadParameterError)
	suite.repository.AssertNotCalled(suite.T(), "GetActorAuditHistory")
}

func (suite *AuditUsecaseTestSuite) Test_GetActorHistory_PassesThrough() {
	ctx := suite.ctx()
	actorId := uuid.New()
	entries := []models.AuditEntry{{Id: uuid.New(), ActorId: &actorId}}
	suite.repository.On("GetActorAuditHistory", ctx, suite.executor, actorId, 50).
		Return(entries, nil)

	got, err := suite.makeUsecase().GetActorHistory(ctx, actorId, 50)

	suite.NoError(err)
	suite.Equal(entries, got)
}

func TestAuditUsecase(t *testing.T) {
	suite.Run(t, new(AuditUsecaseTestSuite))
}
