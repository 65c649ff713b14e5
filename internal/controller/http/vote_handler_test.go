package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"flow-social/internal/chain"
	"flow-social/internal/entity"
	"flow-social/internal/usecase"
	"flow-social/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockVoteUseCase is a mock implementation of VoteUseCase
type MockVoteUseCase struct {
	mock.Mock
}

func (m *MockVoteUseCase) Vote(postID, voterAddress string, direction entity.VoteDirection) (*entity.Post, error) {
	args := m.Called(postID, voterAddress, direction)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

var _ usecase.VoteUseCase = (*MockVoteUseCase)(nil)

func TestVotePost_Success(t *testing.T) {
	mockUseCase := new(MockVoteUseCase)
	logger := logger.New()
	handler := NewVoteHandler(mockUseCase, chain.NewMockSubmitter(0), 0.01, logger)

	router := setupTestRouter()
	router.POST("/posts/:id/vote", handler.VotePost)

	mockPost := &entity.Post{
		ID:      "post-123",
		Author:  entity.Author{Address: "0xabc12345"},
		Upvotes: 1,
	}

	mockUseCase.On("Vote", "post-123", "0xdef67890", entity.VoteUp).Return(mockPost, nil)

	body := `{"voter":"0xdef67890","direction":"up"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts/post-123/vote", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	post := response["post"].(map[string]interface{})
	assert.Equal(t, float64(1), post["upvotes"])

	tx := response["tx"].(map[string]interface{})
	assert.True(t, strings.HasPrefix(tx["txId"].(string), "MOCK_TX_"))

	mockUseCase.AssertExpectations(t)
}

func TestVotePost_LegacyFieldNames(t *testing.T) {
	mockUseCase := new(MockVoteUseCase)
	logger := logger.New()
	handler := NewVoteHandler(mockUseCase, chain.NewMockSubmitter(0), 0.01, logger)

	router := setupTestRouter()
	router.POST("/posts/:id/vote", handler.VotePost)

	mockPost := &entity.Post{ID: "post-123", Downvotes: 1}
	mockUseCase.On("Vote", "post-123", "0xdef67890", entity.VoteDown).Return(mockPost, nil)

	body := `{"userAddress":"0xdef67890","voteType":"down"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts/post-123/vote", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestVotePost_MissingVoter(t *testing.T) {
	mockUseCase := new(MockVoteUseCase)
	logger := logger.New()
	handler := NewVoteHandler(mockUseCase, chain.NewMockSubmitter(0), 0.01, logger)

	router := setupTestRouter()
	router.POST("/posts/:id/vote", handler.VotePost)

	body := `{"direction":"up"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts/post-123/vote", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "Vote")
}

func TestVotePost_InvalidDirection(t *testing.T) {
	mockUseCase := new(MockVoteUseCase)
	logger := logger.New()
	handler := NewVoteHandler(mockUseCase, chain.NewMockSubmitter(0), 0.01, logger)

	router := setupTestRouter()
	router.POST("/posts/:id/vote", handler.VotePost)

	body := `{"voter":"0xdef67890","direction":"sideways"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts/post-123/vote", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "Vote")
}

func TestVotePost_PostNotFound(t *testing.T) {
	mockUseCase := new(MockVoteUseCase)
	logger := logger.New()
	handler := NewVoteHandler(mockUseCase, chain.NewMockSubmitter(0), 0.01, logger)

	router := setupTestRouter()
	router.POST("/posts/:id/vote", handler.VotePost)

	mockUseCase.On("Vote", "missing", "0xdef67890", entity.VoteUp).Return(nil, entity.ErrPostNotFound)

	body := `{"voter":"0xdef67890","direction":"up"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts/missing/vote", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestVotePost_SlowChainSkipsReceipt(t *testing.T) {
	mockUseCase := new(MockVoteUseCase)
	logger := logger.New()
	handler := NewVoteHandler(mockUseCase, chain.NewMockSubmitter(5*time.Second), 0.01, logger)
	handler.txWait = 10 * time.Millisecond

	router := setupTestRouter()
	router.POST("/posts/:id/vote", handler.VotePost)

	mockPost := &entity.Post{ID: "post-123", Upvotes: 1}
	mockUseCase.On("Vote", "post-123", "0xdef67890", entity.VoteUp).Return(mockPost, nil)

	body := `{"voter":"0xdef67890","direction":"up"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts/post-123/vote", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	// the vote still lands even though the chain did not answer in time
	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.NotNil(t, response["post"])
	assert.Nil(t, response["tx"])

	mockUseCase.AssertExpectations(t)
}
