package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"smart-task-manager/internal/middleware"
	taskHTTP "smart-task-manager/internal/task/delivery/http"
	taskRepo "smart-task-manager/internal/task/repository/sqlite"
	taskUC "smart-task-manager/internal/task/usecase"
)

// setupTaskDomain initializes the task domain and registers its routes.
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository
	repo, err := taskRepo.New(srv.db, srv.l)
	if err != nil {
		return fmt.Errorf("task repository: %w", err)
	}

	// 2. UseCase
	uc := taskUC.New(srv.l, srv.llm, repo, srv.calendar, srv.taskOptions)

	// 3. HTTP Handler
	h := taskHTTP.New(srv.l, uc)

	// 4. Routes: /api/v1/ai/parse-task, /api/v1/ai/preview, /api/v1/tasks
	taskHTTP.RegisterRoutes(api, h, mw)

	if srv.calendar != nil {
		srv.l.Infof(ctx, "Task domain registered (llm=%s, calendar=on)", srv.llm.Name())
	} else {
		srv.l.Infof(ctx, "Task domain registered (llm=%s, calendar=off)", srv.llm.Name())
	}
	return nil
}
