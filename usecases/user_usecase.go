package usecases

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/avast/retry-go/v4"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/rentalworks/erp-backend/models"
	"github.com/rentalworks/erp-backend/repositories"
	"github.com/rentalworks/erp-backend/repositories/clock"
	"github.com/rentalworks/erp-backend/usecases/executor_factory"
)

// Username allocation is advisory: between the directory read and the
// insert, a concurrent signup can take the candidate. The unique index on
// users.username is the authoritative check, so a conflicting insert is
// retried with a fresh allocation a few times before giving up.
const createUserAttempts = 3

type userRepository interface {
	CreateUser(ctx context.Context, exec repositories.Executor,
		createUser models.CreateUser, username string) (uuid.UUID, error)
	UserById(ctx context.Context, exec repositories.Executor, userId uuid.UUID) (models.User, error)
	ListUsers(ctx context.Context, exec repositories.Executor) ([]models.User, error)
	DeleteUser(ctx context.Context, exec repositories.Executor, userId uuid.UUID) error
}

type UserUseCase struct {
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	userRepository     userRepository
	auditRepository    auditLogRepository
	usernameUsecase    UsernameUsecase
	clock              clock.Clock
	auditModuleId      string
}

func (usecase *UserUseCase) AddUser(ctx context.Context, createUser models.CreateUser) (models.User, error) {
	// cleanup spaces, lowercase email to maintain uniqueness
	createUser.Email = strings.ToLower(strings.TrimSpace(createUser.Email))
	if createUser.Email == "" {
		return models.User{}, errors.Wrap(models.BadParameterError, "email is required")
	}

	createdUser, err := retry.DoWithData(
		func() (models.User, error) {
			return usecase.createUserOnce(ctx, createUser)
		},
		retry.Context(ctx),
		retry.Attempts(createUserAttempts),
		retry.LastErrorOnly(true),
		retry.RetryIf(repositories.IsUniqueViolationError),
	)
	if repositories.IsUniqueViolationError(err) {
		return models.User{}, errors.Wrap(models.ConflictError, "email or username already taken")
	}
	if err != nil {
		return models.User{}, err
	}
	return createdUser, nil
}

func (usecase *UserUseCase) createUserOnce(ctx context.Context, createUser models.CreateUser) (models.User, error) {
	return executor_factory.TransactionReturnValue(
		ctx,
		usecase.transactionFactory,
		func(tx repositories.Executor) (models.User, error) {
			username, err := usecase.usernameUsecase.allocate(ctx, tx, createUser.Email, nil)
			if err != nil {
				return models.User{}, err
			}

			createdUserId, err := usecase.userRepository.CreateUser(ctx, tx, createUser, username)
			if err != nil {
				return models.User{}, err
			}
			user, err := usecase.userRepository.UserById(ctx, tx, createdUserId)
			if err != nil {
				return models.User{}, err
			}

			payload, err := json.Marshal(map[string]string{
				"email":    user.Email,
				"username": user.Username,
			})
			if err != nil {
				return models.User{}, err
			}
			_, err = usecase.auditRepository.CreateAuditEntry(ctx, tx, models.CreateAuditEntry{
				Action:     "user_created",
				EntityType: "users",
				EntityId:   user.Id.String(),
				Payload:    payload,
				ModuleId:   usecase.auditModuleId,
			}, usecase.clock.Now())
			return user, err
		},
	)
}

func (usecase *UserUseCase) GetUser(ctx context.Context, userId uuid.UUID) (models.User, error) {
	return usecase.userRepository.UserById(ctx, usecase.executorFactory.NewExecutor(), userId)
}

func (usecase *UserUseCase) ListUsers(ctx context.Context) ([]models.User, error) {
	return usecase.userRepository.ListUsers(ctx, usecase.executorFactory.NewExecutor())
}

func (usecase *UserUseCase) DeleteUser(ctx context.Context, userId uuid.UUID, actorId *uuid.UUID) error {
	return usecase.transactionFactory.Transaction(ctx, func(tx repositories.Executor) error {
		user, err := usecase.userRepository.UserById(ctx, tx, userId)
		if err != nil {
			return err
		}
		if err := usecase.userRepository.DeleteUser(ctx, tx, user.Id); err != nil {
			return err
		}
		_, err = usecase.auditRepository.CreateAuditEntry(ctx, tx, models.CreateAuditEntry{
			ActorId:    actorId,
			Action:     "user_deleted",
			EntityType: "users",
			EntityId:   user.Id.String(),
			ModuleId:   usecase.auditModuleId,
		}, usecase.clock.Now())
		return err
	})
}
