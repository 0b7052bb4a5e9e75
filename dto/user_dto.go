package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/rentalworks/erp-backend/models"
)

type User struct {
	Id        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
}

func AdaptUserDto(m models.User) User {
	return User{
		Id:        m.Id,
		Email:     m.Email,
		Username:  m.Username,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		CreatedAt: m.CreatedAt,
	}
}

type CreateUser struct {
	Email     string `json:"email" binding:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func AdaptCreateUser(body CreateUser) models.CreateUser {
	return models.CreateUser{
		Email:     body.Email,
		FirstName: body.FirstName,
		LastName:  body.LastName,
	}
}
