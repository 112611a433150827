package http

import (
	"github.com/gin-gonic/gin"
)

// processParseTaskReq binds and validates the natural-language task request body.
func (h *handler) processParseTaskReq(c *gin.Context) (parseTaskReq, error) {
	var req parseTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errTextRequired
	}
	return req, req.validate()
}

// processListReq binds and validates the list tasks query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, errInvalidQuery
	}
	return req, req.validate()
}
