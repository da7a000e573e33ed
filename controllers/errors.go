package controllers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// FieldError is one violated field in a request body.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"msg"`
}

// ValidationError carries every violated field of a request, not just the
// first one.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Errors))
}

type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

type InvalidActionError struct {
	Action string
}

func (e *InvalidActionError) Error() string {
	return "invalid action: " + e.Action
}

// respondError maps the error taxonomy onto HTTP responses. Store and
// downstream failures are logged with full detail and answered with a
// generic message.
func respondError(c *gin.Context, err error) {
	switch e := err.(type) {
	case *ValidationError:
		c.JSON(http.StatusBadRequest, gin.H{"errors": e.Errors})
	case *NotFoundError:
		c.JSON(http.StatusNotFound, gin.H{"error": e.Error()})
	case *InvalidActionError:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid action"})
	default:
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
