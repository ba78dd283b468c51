package http

import (
	"github.com/gin-gonic/gin"

	"collab-command-engine/internal/model"
)

// processParseReq binds and validates the parse request body.
func (h *handler) processParseReq(c *gin.Context) (parseReq, error) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// scopeFrom builds the caller scope from trusted gateway headers. The
// engine only uses it for log attribution.
func scopeFrom(c *gin.Context) model.Scope {
	return model.Scope{
		UserID:   c.GetHeader("X-User-ID"),
		Username: c.GetHeader("X-Username"),
	}
}
