package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rentalworks/erp-backend/usecases"
)

func NewServer(router *gin.Engine, conf Configuration, uc usecases.Usecases) *http.Server {
	addRoutes(router, uc)

	// Add a few seconds over the handler timeout so slow requests fail in our
	// code, not at the socket.
	maxTimeout := conf.DefaultTimeout + 5*time.Second

	return &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%s", conf.Port),
		WriteTimeout: maxTimeout,
		ReadTimeout:  maxTimeout,
		IdleTimeout:  maxTimeout,
		Handler:      router,
	}
}
