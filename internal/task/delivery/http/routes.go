package http

import (
	"github.com/gin-gonic/gin"

	"smart-task-manager/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Every route requires a bearer token and is rate limited per user.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	ai := rg.Group("/ai", mw.Auth(), mw.RateLimit())
	{
		ai.POST("/parse-task", h.ParseTask)
		ai.POST("/preview", h.Preview)
	}

	tasks := rg.Group("/tasks", mw.Auth(), mw.RateLimit())
	{
		tasks.GET("", h.List)
	}
}
