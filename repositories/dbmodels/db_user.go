package dbmodels

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/rentalworks/erp-backend/models"
	"github.com/rentalworks/erp-backend/utils"
)

type DbUser struct {
	Id        uuid.UUID   `db:"id"`
	Email     string      `db:"email"`
	Username  string      `db:"username"`
	FirstName pgtype.Text `db:"first_name"`
	LastName  pgtype.Text `db:"last_name"`
	CreatedAt time.Time   `db:"created_at"`
}

const TABLE_USERS = "users"

var SelectUserColumns = utils.ColumnList[DbUser]()

func AdaptUser(db DbUser) (models.User, error) {
	return models.User{
		Id:        db.Id,
		Email:     db.Email,
		Username:  db.Username,
		FirstName: db.FirstName.String,
		LastName:  db.LastName.String,
		CreatedAt: db.CreatedAt,
	}, nil
}

// DbUsernameRecord is the narrow projection used by the username allocator:
// the directory read does not need the full user row.
type DbUsernameRecord struct {
	Id       uuid.UUID `db:"id"`
	Username string    `db:"username"`
}

var SelectUsernameRecordColumns = utils.ColumnList[DbUsernameRecord]()

func AdaptUsernameRecord(db DbUsernameRecord) (models.UsernameRecord, error) {
	return models.UsernameRecord{
		Id:       db.Id,
		Username: db.Username,
	}, nil
}
