package api

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rentalworks/erp-backend/dto"
	"github.com/rentalworks/erp-backend/models"
	"github.com/rentalworks/erp-backend/pure_utils"
	"github.com/rentalworks/erp-backend/usecases"
)

func handleListUsers(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		usecase := uc.NewUserUseCase()
		users, err := usecase.ListUsers(ctx)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"users": pure_utils.Map(users, dto.AdaptUserDto),
		})
	}
}

func handlePostUser(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var data dto.CreateUser
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewUserUseCase()
		createdUser, err := usecase.AddUser(ctx, dto.AdaptCreateUser(data))
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"user": dto.AdaptUserDto(createdUser),
		})
	}
}

func handleGetUser(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		userId, err := uuid.Parse(c.Param("user_id"))
		if err != nil {
			presentError(ctx, c, errors.Wrap(models.BadParameterError, "user_id is not a valid uuid"))
			return
		}

		usecase := uc.NewUserUseCase()
		user, err := usecase.GetUser(ctx, userId)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"user": dto.AdaptUserDto(user),
		})
	}
}

func handleDeleteUser(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		userId, err := uuid.Parse(c.Param("user_id"))
		if err != nil {
			presentError(ctx, c, errors.Wrap(models.BadParameterError, "user_id is not a valid uuid"))
			return
		}

		var actorId *uuid.UUID
		if raw := c.Query("actor_id"); raw != "" {
			parsed, err := uuid.Parse(raw)
			if err != nil {
				presentError(ctx, c, errors.Wrap(models.BadParameterError, "actor_id is not a valid uuid"))
				return
			}
			actorId = &parsed
		}

		usecase := uc.NewUserUseCase()
		if presentError(ctx, c, usecase.DeleteUser(ctx, userId, actorId)) {
			return
		}
		c.Status(http.StatusNoContent)
	}
}
