package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"collab-command-engine/internal/parser"
	"collab-command-engine/pkg/response"
)

// Parse godoc
// @Summary     Extract actions from a chat message
// @Description Runs the command-extraction engine over one message and returns the proposed task/event/location actions.
// @Tags        Parser
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Message, roster, and optional reference time"
// @Success     200 {object} parseResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/messages/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ParseMessage(ctx, scopeFrom(c), req.toInput())
	if err != nil {
		if errors.Is(err, parser.ErrEmptyContent) {
			response.Error(c, err, nil)
			return
		}
		h.l.Errorf(ctx, "uc.ParseMessage: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, newParseResp(output))
}
