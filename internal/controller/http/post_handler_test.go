package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"flow-social/internal/entity"
	"flow-social/internal/usecase"
	"flow-social/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockPostUseCase is a mock implementation of PostUseCase
type MockPostUseCase struct {
	mock.Mock
}

func (m *MockPostUseCase) CreatePost(author entity.Author, text string, media []entity.Media) (*entity.Post, error) {
	args := m.Called(author, text, media)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) GetPost(postID string) (*entity.Post, error) {
	args := m.Called(postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) ListPosts() ([]*entity.Post, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) GetUserPosts(address string) ([]*entity.Post, error) {
	args := m.Called(address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

var _ usecase.PostUseCase = (*MockPostUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestNewPostHandler(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	logger := logger.New()
	handler := NewPostHandler(mockUseCase, logger)

	assert.NotNil(t, handler)
}

func TestListPosts_Success(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	logger := logger.New()
	handler := NewPostHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.GET("/posts", handler.ListPosts)

	mockPosts := []*entity.Post{
		{
			ID:     "post-1",
			Author: entity.Author{Address: "0xabc12345", Name: "Boby matter"},
			Text:   "first post",
		},
		{
			ID:     "post-2",
			Author: entity.Author{Address: "0xdef67890", Name: "Ola Dealova"},
			Text:   "second post",
		},
	}

	mockUseCase.On("ListPosts").Return(mockPosts, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	posts := response["posts"].([]interface{})
	assert.Equal(t, 2, len(posts))

	mockUseCase.AssertExpectations(t)
}

func TestCreatePost_Success(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	logger := logger.New()
	handler := NewPostHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.POST("/posts", handler.CreatePost)

	author := entity.Author{Address: "0xabc12345", Name: "Boby matter"}
	media := []entity.Media{{Type: entity.MediaTypeImage, URL: "https://cdn.example.com/a.jpg"}}
	mockPost := &entity.Post{
		ID:     "post-123",
		Author: author,
		Text:   "new ride",
		Media:  media,
	}

	mockUseCase.On("CreatePost", author, "new ride", media).Return(mockPost, nil)

	body := `{"author":{"address":"0xabc12345","name":"Boby matter"},"text":"new ride","media":[{"type":"image","url":"https://cdn.example.com/a.jpg"}]}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	post := response["post"].(map[string]interface{})
	assert.Equal(t, "post-123", post["id"])

	mockUseCase.AssertExpectations(t)
}

func TestCreatePost_InvalidInput(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	logger := logger.New()
	handler := NewPostHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.POST("/posts", handler.CreatePost)

	mockUseCase.On("CreatePost", entity.Author{}, "", ([]entity.Media)(nil)).
		Return(nil, errors.New("invalid input: author address is required"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	// unwrapped errors fall through as internal
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestCreatePost_ValidationError(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	logger := logger.New()
	handler := NewPostHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.POST("/posts", handler.CreatePost)

	wrapped := fmt.Errorf("%w: author address is required", entity.ErrInvalidInput)
	mockUseCase.On("CreatePost", entity.Author{}, "", ([]entity.Media)(nil)).Return(nil, wrapped)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Contains(t, response["error"], "required")

	mockUseCase.AssertExpectations(t)
}

func TestCreatePost_BadJSON(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	logger := logger.New()
	handler := NewPostHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.POST("/posts", handler.CreatePost)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts", bytes.NewBufferString(`{not json`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "CreatePost")
}

func TestGetPost_Success(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	logger := logger.New()
	handler := NewPostHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.GET("/posts/:id", handler.GetPost)

	mockPost := &entity.Post{
		ID:      "post-123",
		Author:  entity.Author{Address: "0xabc12345"},
		Text:    "hello",
		Upvotes: 3,
	}

	mockUseCase.On("GetPost", "post-123").Return(mockPost, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts/post-123", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	post := response["post"].(map[string]interface{})
	assert.Equal(t, float64(3), post["upvotes"])

	mockUseCase.AssertExpectations(t)
}

func TestGetPost_NotFound(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	logger := logger.New()
	handler := NewPostHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.GET("/posts/:id", handler.GetPost)

	mockUseCase.On("GetPost", "missing").Return(nil, entity.ErrPostNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts/missing", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestGetUserPosts_Success(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	logger := logger.New()
	handler := NewPostHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.GET("/posts/user/:address", handler.GetUserPosts)

	mockPosts := []*entity.Post{
		{ID: "post-1", Author: entity.Author{Address: "0xabc12345"}},
	}

	mockUseCase.On("GetUserPosts", "0xabc12345").Return(mockPosts, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts/user/0xabc12345", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	posts := response["posts"].([]interface{})
	assert.Equal(t, 1, len(posts))

	mockUseCase.AssertExpectations(t)
}
