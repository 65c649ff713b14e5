package http

import (
	"errors"
	"net/http"
	"strings"

	"flow-social/internal/entity"
	"flow-social/pkg/logger"

	"github.com/gin-gonic/gin"
)

// respondError is the single place repository/use-case failures become
// status codes. Anything unrecognized is logged and surfaced as a generic 500.
func respondError(c *gin.Context, log *logger.Logger, err error) {
	switch {
	case errors.Is(err, entity.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationMessage(err)})
	case errors.Is(err, entity.ErrPostNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
	case errors.Is(err, entity.ErrCommentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
	case errors.Is(err, entity.ErrNotCommentAuthor):
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only delete your own comments"})
	default:
		log.Error("Request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func validationMessage(err error) string {
	msg := strings.TrimPrefix(err.Error(), entity.ErrInvalidInput.Error()+": ")
	if msg == "" {
		return "Invalid request"
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}
