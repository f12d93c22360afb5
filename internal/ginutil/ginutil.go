// Package ginutil holds the response envelope shared by every handler.
package ginutil

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/96TSH/nutrimate/internal/errorsx"
)

type response struct {
	Data       any               `json:"data,omitempty"`
	Message    string            `json:"message"`
	Violations validation.Errors `json:"violations,omitempty"`
}

// JSON writes a 200 envelope.
func JSON(c *gin.Context, data any, message string) {
	c.JSON(http.StatusOK, response{Data: data, Message: message})
}

// Created writes a 201 envelope.
func Created(c *gin.Context, data any, message string) {
	c.JSON(http.StatusCreated, response{Data: data, Message: message})
}

// JSONError aborts the request with the given status and message.
func JSONError(c *gin.Context, status int, format string, args ...any) {
	c.AbortWithStatusJSON(status, response{Message: fmt.Sprintf(format, args...)})
}

// HandleError maps a service error onto its HTTP status. Validation failures
// keep their field-level violations; anything unclassified becomes an opaque
// 500 so internal detail never reaches the response body.
func HandleError(c *gin.Context, err error) {
	status := errorsx.Status(err)
	if violations := errorsx.Violations(err); violations != nil {
		c.AbortWithStatusJSON(status, response{Message: "validation failed", Violations: violations})
		return
	}
	if status == http.StatusInternalServerError {
		c.AbortWithStatusJSON(status, response{Message: "internal server error"})
		return
	}
	c.AbortWithStatusJSON(status, response{Message: err.Error()})
}
