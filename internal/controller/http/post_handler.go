package http

import (
	"net/http"

	"flow-social/internal/entity"
	"flow-social/internal/usecase"
	"flow-social/pkg/logger"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postUseCase usecase.PostUseCase
	logger      *logger.Logger
}

func NewPostHandler(postUseCase usecase.PostUseCase, logger *logger.Logger) *PostHandler {
	return &PostHandler{
		postUseCase: postUseCase,
		logger:      logger,
	}
}

type CreatePostRequest struct {
	Author entity.Author  `json:"author"`
	Text   string         `json:"text"`
	Media  []entity.Media `json:"media"`
}

// ListPosts godoc
// @Summary      List posts
// @Description  Get all posts, newest first, with attached media
// @Tags         posts
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /posts [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.postUseCase.ListPosts()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// CreatePost godoc
// @Summary      Create a new post
// @Description  Create a post with optional text and media attachments
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        post body CreatePostRequest true "Post payload"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	post, err := h.postUseCase.CreatePost(req.Author, req.Text, req.Media)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"post": post})
}

// GetPost godoc
// @Summary      Get post by ID
// @Tags         posts
// @Produce      json
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.postUseCase.GetPost(c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": post})
}

// GetUserPosts godoc
// @Summary      List posts by author
// @Tags         posts
// @Produce      json
// @Param        address path string true "Author wallet address"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /posts/user/{address} [get]
func (h *PostHandler) GetUserPosts(c *gin.Context) {
	posts, err := h.postUseCase.GetUserPosts(c.Param("address"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}
