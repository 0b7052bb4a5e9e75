package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/rentalworks/erp-backend/models"
	"github.com/rentalworks/erp-backend/repositories/dbmodels"
)

func (repo ErpDbRepository) CreateUser(
	ctx context.Context,
	exec Executor,
	createUser models.CreateUser,
	username string,
) (uuid.UUID, error) {
	userId := uuid.New()

	_, err := ExecBuilder(ctx, exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_USERS).
			Columns(
				"id",
				"email",
				"username",
				"first_name",
				"last_name",
			).
			Values(
				userId,
				createUser.Email,
				username,
				createUser.FirstName,
				createUser.LastName,
			),
	)
	return userId, err
}

func (repo ErpDbRepository) UserById(ctx context.Context, exec Executor, userId uuid.UUID) (models.User, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectUserColumns...).
			From(dbmodels.TABLE_USERS).
			Where(squirrel.Eq{"id": userId}).
			Where("deleted_at IS NULL"),
		dbmodels.AdaptUser,
	)
}

func (repo ErpDbRepository) ListUsers(ctx context.Context, exec Executor) ([]models.User, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectUserColumns...).
			From(dbmodels.TABLE_USERS).
			Where("deleted_at IS NULL").
			OrderBy("created_at DESC, id"),
		dbmodels.AdaptUser,
	)
}

// ListUsernames returns the current username assignment of every live user.
// This is the directory snapshot the username allocator decides against.
func (repo ErpDbRepository) ListUsernames(ctx context.Context, exec Executor) ([]models.UsernameRecord, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectUsernameRecordColumns...).
			From(dbmodels.TABLE_USERS).
			Where("deleted_at IS NULL"),
		dbmodels.AdaptUsernameRecord,
	)
}

func (repo ErpDbRepository) DeleteUser(ctx context.Context, exec Executor, userId uuid.UUID) error {
	_, err := ExecBuilder(ctx, exec,
		NewQueryBuilder().
			Update(dbmodels.TABLE_USERS).
			Where(squirrel.Eq{"id": userId}).
			Where("deleted_at IS NULL").
			Set("deleted_at", squirrel.Expr("NOW()")),
	)
	return err
}
