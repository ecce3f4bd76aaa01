package handlers

import (
	"MediBook/httperr"
	"MediBook/middlewares"
	"MediBook/services"
	"strconv"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps business errors to their HTTP status and
// anything else to a logged 500.
func respondServiceError(c *gin.Context, err error) {
	httperr.Respond(c, err)
}

// actorFromContext rebuilds the acting principal stored by the token
// middleware. The bool result is false when the request never passed
// authentication.
func actorFromContext(c *gin.Context) (services.Actor, bool) {
	userID, err := middlewares.ExtractUserIDFromContext(c.Request.Context())
	if err != nil {
		return services.Actor{}, false
	}
	role, err := middlewares.ExtractUserRoleFromContext(c.Request.Context())
	if err != nil {
		return services.Actor{}, false
	}
	return services.Actor{UserID: userID, Role: role}, true
}

// uintParam parses a numeric path parameter.
func uintParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
