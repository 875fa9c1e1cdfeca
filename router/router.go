package router

import (
	"github.com/emobies/emobies-api/controllers"
	"github.com/emobies/emobies-api/logging"
	"github.com/emobies/emobies-api/middlewares"
	"github.com/gin-gonic/gin"
)

func InitRouter(logger logging.Logger) *gin.Engine {
	r := gin.New()

	// Recovery sits inside the request logger so panics still get a log line.
	r.Use(middlewares.RequestLogger(logger))
	r.Use(middlewares.Recovery(logger))
	r.Use(middlewares.CORS())
	r.Use(middlewares.JSONBody())

	// Public health endpoint for liveness checks
	r.GET("/health", controllers.Health)
	r.HEAD("/health", controllers.Health)

	return r
}
