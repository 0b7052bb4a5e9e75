package usecases

import (
	"context"
	"strconv"

	"github.com/google/uuid"

	"github.com/rentalworks/erp-backend/models"
	"github.com/rentalworks/erp-backend/pure_utils"
	"github.com/rentalworks/erp-backend/repositories"
	"github.com/rentalworks/erp-backend/usecases/executor_factory"
)

// The probe stops at base+"999". Exhaustion is a soft failure asking for a
// manually chosen username, not a fault.
const maxUsernameSuffix = 999

type usernameDirectory interface {
	ListUsernames(ctx context.Context, exec repositories.Executor) ([]models.UsernameRecord, error)
}

type UsernameUsecase struct {
	executorFactory executor_factory.ExecutorFactory
	userRepository  usernameDirectory
}

// AllocateUsername derives a username from the email's local part and
// searches the user directory for the first free candidate: the base, then
// base+"2" through base+"999" in ascending order.
//
// The decision is made against a single directory snapshot and is advisory
// only: nothing is reserved. The caller persisting the username must rely on
// the unique index and treat a conflicting insert as "retry allocation".
//
// A record whose id equals excludeUserId is not counted as a collision, so
// a user being renamed cannot collide with their own current username.
func (usecase UsernameUsecase) AllocateUsername(
	ctx context.Context,
	email string,
	excludeUserId *uuid.UUID,
) (string, error) {
	return usecase.allocate(ctx, usecase.executorFactory.NewExecutor(), email, excludeUserId)
}

func (usecase UsernameUsecase) allocate(
	ctx context.Context,
	exec repositories.Executor,
	email string,
	excludeUserId *uuid.UUID,
) (string, error) {
	base, err := pure_utils.NormalizeUsername(email)
	if err != nil {
		return "", err
	}

	records, err := usecase.userRepository.ListUsernames(ctx, exec)
	if err != nil {
		return "", err
	}

	taken := make(map[string]struct{}, len(records))
	for _, record := range records {
		if excludeUserId != nil && record.Id == *excludeUserId {
			continue
		}
		taken[record.Username] = struct{}{}
	}

	if _, exists := taken[base]; !exists {
		return base, nil
	}
	for suffix := 2; suffix <= maxUsernameSuffix; suffix++ {
		candidate := base + strconv.Itoa(suffix)
		if _, exists := taken[candidate]; !exists {
			return candidate, nil
		}
	}
	return "", models.ErrUsernameSpaceExhausted
}
