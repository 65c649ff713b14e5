package http

import (
	"net/http"

	"flow-social/internal/entity"
	"flow-social/internal/usecase"
	"flow-social/pkg/logger"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentUseCase usecase.CommentUseCase
	logger         *logger.Logger
}

func NewCommentHandler(commentUseCase usecase.CommentUseCase, logger *logger.Logger) *CommentHandler {
	return &CommentHandler{
		commentUseCase: commentUseCase,
		logger:         logger,
	}
}

type CreateCommentRequest struct {
	Author entity.Author `json:"author"`
	Text   string        `json:"text"`
}

type DeleteCommentRequest struct {
	Address string `json:"address"`
}

// ListComments godoc
// @Summary      List comments for a post
// @Description  Comments in chronological display order (oldest first)
// @Tags         comments
// @Produce      json
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /posts/{id}/comments [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	comments, err := h.commentUseCase.ListComments(c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// CreateComment godoc
// @Summary      Add a comment to a post
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        id path string true "Post ID"
// @Param        comment body CreateCommentRequest true "Comment payload"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id}/comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	comment, err := h.commentUseCase.CreateComment(c.Param("id"), req.Author, req.Text)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

// DeleteComment godoc
// @Summary      Delete a comment
// @Description  Only the comment's author may delete it. The requester address comes from the body or the "address" query parameter.
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        id path string true "Comment ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /comments/{id} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	var req DeleteCommentRequest
	_ = c.ShouldBindJSON(&req)

	address := req.Address
	if address == "" {
		address = c.Query("address")
	}
	if address == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requester address is required"})
		return
	}

	if err := h.commentUseCase.DeleteComment(c.Param("id"), address); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
