package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"collab-assistant/internal/command"
	"collab-assistant/pkg/response"
)

// Interpret godoc
// @Summary     Interpret a chat message
// @Description Classifies a natural-language message, executes the matching command, and returns a display-ready reply.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       X-User-ID   header string       true  "Acting user ID"
// @Param       X-User-Name header string       false "Acting user display name"
// @Param       body        body   interpretReq true  "Chat message"
// @Success     200 {object} interpretResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/messages [POST]
func (h *handler) Interpret(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processInterpretReq(c)
	if err != nil {
		if errors.Is(err, errMissingUserID) {
			response.Unauthorized(c)
			return
		}
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Interpret(ctx, sc, req.toInput())
	if err != nil {
		if err == command.ErrEmptyMessage {
			response.Error(c, err, nil)
			return
		}
		h.l.Errorf(ctx, "uc.Interpret: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newInterpretResp(output))
}
