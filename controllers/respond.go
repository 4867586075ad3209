package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-service/services"
)

// respondError is the single failure responder: every handler error ends up
// here and is emitted as {status, message, error}. The error field carries the
// platform's structured error list when there is one, otherwise a raw failure
// description.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"
	var detail interface{} = err.Error()

	if svcErr, ok := err.(*services.ServiceError); ok {
		status = svcErr.StatusCode
		message = svcErr.Message
		if len(svcErr.Upstream) > 0 {
			detail = svcErr.Upstream
		} else if svcErr.Err != nil {
			detail = svcErr.Err.Error()
		} else {
			detail = svcErr.Message
		}
	}

	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"error":   detail,
	})
}

// respondBadRequest reports a malformed request body in the uniform shape.
func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"status":  http.StatusBadRequest,
		"message": "Invalid request body",
		"error":   err.Error(),
	})
}

// NotFoundHandler is the fallback for unmatched routes.
func NotFoundHandler(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"status":  http.StatusNotFound,
		"message": "Not Found",
		"error":   "no route for " + c.Request.Method + " " + c.Request.URL.Path,
	})
}
