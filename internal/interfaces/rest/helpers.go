package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/dietplanner/backend/pkg/auth"
	"github.com/dietplanner/backend/pkg/constants"
	"github.com/dietplanner/backend/pkg/errors"
)

// AdminFromContext extracts the authenticated admin session stored by
// the auth middleware
func AdminFromContext(c *gin.Context) *auth.AdminSession {
	value, exists := c.Get(constants.ContextKeyAdmin)
	if !exists {
		return nil
	}
	session := value.(auth.AdminSession)
	return &session
}

// RespondAppError maps a service error onto the standard JSON error body
func RespondAppError(c *gin.Context, err error) {
	c.JSON(errors.GetHTTPStatus(err), errors.ToResponse(err))
}

// BindJSON binds the request body, answering 400 with the standard
// error body on failure
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		RespondAppError(c, errors.NewValidationError("body", err.Error()))
		return false
	}
	return true
}
