package http

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"flow-social/internal/entity"
	"flow-social/pkg/logger"
	"flow-social/pkg/s3"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MediaHandler struct {
	s3Client *s3.Client
	logger   *logger.Logger
}

func NewMediaHandler(s3Client *s3.Client, logger *logger.Logger) *MediaHandler {
	return &MediaHandler{
		s3Client: s3Client,
		logger:   logger,
	}
}

// Upload godoc
// @Summary      Upload a media file
// @Description  Uploads an image, video, or gif and returns a media item ready to attach to a post
// @Tags         media
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file formData file true "Media file"
// @Success      201  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /media [post]
func (h *MediaHandler) Upload(c *gin.Context) {
	address := c.GetString("user_address")

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Media file is required"})
		return
	}

	contentType := file.Header.Get("Content-Type")
	mediaType, ok := mediaTypeFromContentType(contentType)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported media content type"})
		return
	}

	src, err := file.Open()
	if err != nil {
		h.logger.Error("Failed to open uploaded file: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	defer src.Close()

	fileKey := fmt.Sprintf("media/%s/%s%s", address, uuid.New().String(), filepath.Ext(file.Filename))
	url, err := h.s3Client.UploadFile(fileKey, src, contentType)
	if err != nil {
		h.logger.Error("Failed to upload media: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"type": string(mediaType),
		"url":  url,
	})
}

func mediaTypeFromContentType(contentType string) (entity.MediaType, bool) {
	switch {
	case contentType == "image/gif":
		return entity.MediaTypeGIF, true
	case strings.HasPrefix(contentType, "image/"):
		return entity.MediaTypeImage, true
	case strings.HasPrefix(contentType, "video/"):
		return entity.MediaTypeVideo, true
	}
	return "", false
}
