package api

import (
	"github.com/gin-gonic/gin"

	"github.com/rentalworks/erp-backend/usecases"
)

func addRoutes(r *gin.Engine, uc usecases.Usecases) {
	r.GET("/liveness", handleLivenessProbe)

	r.GET("/users", handleListUsers(uc))
	r.POST("/users", handlePostUser(uc))
	r.GET("/users/:user_id", handleGetUser(uc))
	r.DELETE("/users/:user_id", handleDeleteUser(uc))

	r.POST("/audit", handlePostAuditEntry(uc))
	r.GET("/audit/entity/:entity_type/:entity_id", handleGetEntityAuditHistory(uc))
	r.GET("/audit/actor/:actor_id", handleGetActorAuditHistory(uc))
}
