package http

import (
	"github.com/gin-gonic/gin"

	"smart-task-manager/internal/middleware"
	"smart-task-manager/pkg/response"
)

// ParseTask godoc
// @Summary     Create a task from natural language
// @Description Extracts a task from free text, stores it and mirrors dated tasks to Google Calendar.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body parseTaskReq true "Free text, e.g. 'call mom tomorrow at 5, urgent'"
// @Success     200  {object} parseTaskResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Unauthorized"
// @Failure     422  {object} response.Resp "Could not understand that task"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     502  {object} response.Resp "Task parser unavailable"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/ai/parse-task [POST]
func (h *handler) ParseTask(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processParseTaskReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newParseTaskResp(output))
}

// Preview godoc
// @Summary     Preview natural-language task parsing
// @Description Extracts a task and its confirmation message without storing anything.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body parseTaskReq true "Free text"
// @Success     200  {object} previewResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Unauthorized"
// @Failure     422  {object} response.Resp "Could not understand that task"
// @Failure     502  {object} response.Resp "Task parser unavailable"
// @Router      /api/v1/ai/preview [POST]
func (h *handler) Preview(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseTaskReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ExtractAndConfirm(ctx, req.Text)
	if err != nil {
		h.l.Errorf(ctx, "uc.ExtractAndConfirm: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newPreviewResp(output))
}

// List godoc
// @Summary     List tasks
// @Description Returns the caller's tasks ordered by due date, optionally within a due-date window.
// @Tags        Tasks
// @Produce     json
// @Security    BearerAuth
// @Param       from   query string false "Window start, RFC 3339 or YYYY-MM-DD (inclusive)"
// @Param       to     query string false "Window end, RFC 3339 or YYYY-MM-DD (exclusive)"
// @Param       limit  query int    false "Page size (default: 20, max: 100)"
// @Param       offset query int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}
