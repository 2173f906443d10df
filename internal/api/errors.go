package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/roach88/registrar/internal/store"
)

// fail writes the response for a store error. Not-found maps to 404,
// uniqueness conflicts to 409, other constraint violations to 422 and
// anything else to 500.
func (s *Server) fail(c *gin.Context, err error) {
	var se *store.Error
	if !errors.As(err, &se) {
		s.log.Error("request failed",
			"error", err,
			"path", c.Request.URL.Path,
			"request_id", c.GetString(requestIDKey),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal Server Error"})
		return
	}

	switch se.Code {
	case store.CodeNotFound:
		c.JSON(http.StatusNotFound, gin.H{"detail": fmt.Sprintf("%s not found", se.Entity)})
	case store.CodeConstraintViolation:
		status := http.StatusUnprocessableEntity
		if se.Constraint == store.ConstraintUnique {
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{
			"detail":     constraintDetail(se),
			"constraint": se.Constraint,
		})
	default:
		s.log.Error("unexpected store error code", "code", se.Code, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal Server Error"})
	}
}

func constraintDetail(se *store.Error) string {
	switch se.Constraint {
	case store.ConstraintUnique:
		return fmt.Sprintf("%s conflicts with an existing record", se.Entity)
	case store.ConstraintCheck:
		return fmt.Sprintf("%s has an invalid field value", se.Entity)
	case store.ConstraintNotNull:
		return fmt.Sprintf("%s is missing a required field", se.Entity)
	case store.ConstraintForeignKey:
		if se.Op == store.OpDelete {
			return fmt.Sprintf("%s is still referenced", se.Entity)
		}
		return fmt.Sprintf("%s references a missing record", se.Entity)
	default:
		return fmt.Sprintf("%s violates a constraint", se.Entity)
	}
}

func badRequest(c *gin.Context, detail string) {
	c.JSON(http.StatusBadRequest, gin.H{"detail": detail})
}
