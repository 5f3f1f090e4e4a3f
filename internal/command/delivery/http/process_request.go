package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"collab-assistant/internal/model"
)

var errMissingUserID = errors.New("X-User-ID header is required")

// processInterpretReq binds the message body and builds the acting scope
// from identity headers. The display name is optional and defaults to the
// user ID for attribution.
func (h *handler) processInterpretReq(c *gin.Context) (model.Scope, interpretReq, error) {
	var req interpretReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return model.Scope{}, req, err
	}

	userID := c.GetHeader(HeaderUserID)
	if userID == "" {
		return model.Scope{}, req, errMissingUserID
	}

	displayName := c.GetHeader(HeaderUserName)
	if displayName == "" {
		displayName = userID
	}

	return model.Scope{UserID: userID, DisplayName: displayName}, req, nil
}
