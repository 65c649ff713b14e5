package usecase

import (
	"context"
	"fmt"
	"time"

	"flow-social/internal/entity"
	"flow-social/internal/repo"
	"flow-social/pkg/logger"
	"flow-social/pkg/queue"

	"github.com/redis/go-redis/v9"
)

type CommentUseCase interface {
	CreateComment(postID string, author entity.Author, text string) (*entity.Comment, error)
	ListComments(postID string) ([]*entity.Comment, error)
	DeleteComment(commentID, requesterAddress string) error
}

type commentUseCase struct {
	store       repo.Store
	redisClient *redis.Client
	queueClient *queue.Client
	logger      *logger.Logger
}

func NewCommentUseCase(
	store repo.Store,
	redisClient *redis.Client,
	queueClient *queue.Client,
	logger *logger.Logger,
) CommentUseCase {
	return &commentUseCase{
		store:       store,
		redisClient: redisClient,
		queueClient: queueClient,
		logger:      logger,
	}
}

func (uc *commentUseCase) CreateComment(postID string, author entity.Author, text string) (*entity.Comment, error) {
	if author.Address == "" {
		return nil, fmt.Errorf("%w: author address is required", entity.ErrInvalidInput)
	}
	if text == "" {
		return nil, fmt.Errorf("%w: comment text is required", entity.ErrInvalidInput)
	}

	comment := &entity.Comment{
		PostID:    postID,
		Author:    author,
		Text:      text,
		CreatedAt: time.Now(),
	}

	if err := uc.store.CreateComment(comment); err != nil {
		return nil, err
	}

	uc.invalidatePostCache(postID)

	if uc.queueClient != nil {
		go uc.publishCommentEvent(comment)
	}

	return comment, nil
}

func (uc *commentUseCase) ListComments(postID string) ([]*entity.Comment, error) {
	return uc.store.ListComments(postID)
}

func (uc *commentUseCase) DeleteComment(commentID, requesterAddress string) error {
	if requesterAddress == "" {
		return fmt.Errorf("%w: requester address is required", entity.ErrInvalidInput)
	}

	deleted, err := uc.store.DeleteComment(commentID, requesterAddress)
	if err != nil {
		return err
	}

	uc.invalidatePostCache(deleted.PostID)
	return nil
}

func (uc *commentUseCase) invalidatePostCache(postID string) {
	if uc.redisClient == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	uc.redisClient.Del(ctx, fmt.Sprintf("post:%s", postID))
}

func (uc *commentUseCase) publishCommentEvent(comment *entity.Comment) {
	event := map[string]interface{}{
		"type":           queue.EventNewComment,
		"post_id":        comment.PostID,
		"comment_id":     comment.ID,
		"author_address": comment.Author.Address,
		"priority":       3,
	}

	if err := uc.queueClient.PublishSocialEvent(event); err != nil {
		uc.logger.Error("[NOTIFICATION QUEUE] Failed to publish comment event: %v (post_id=%s)", err, comment.PostID)
	}
}
