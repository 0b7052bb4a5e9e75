package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id        uuid.UUID
	Email     string
	Username  string
	FirstName string
	LastName  string
	CreatedAt time.Time
}

func (u User) DisplayName() string {
	if u.FirstName == "" && u.LastName == "" {
		return u.Username
	}
	return u.FirstName + " " + u.LastName
}

type CreateUser struct {
	Email     string
	FirstName string
	LastName  string
}

// UsernameRecord is one row of the username directory: enough to check a
// candidate for collisions and to exclude a user's own prior record.
type UsernameRecord struct {
	Id       uuid.UUID
	Username string
}
