package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"flow-social/internal/entity"
	"flow-social/internal/repo"
	"flow-social/pkg/logger"
	"flow-social/pkg/queue"

	"github.com/redis/go-redis/v9"
)

type VoteUseCase interface {
	Vote(postID, voterAddress string, direction entity.VoteDirection) (*entity.Post, error)
}

type voteUseCase struct {
	store       repo.Store
	redisClient *redis.Client
	queueClient *queue.Client
	logger      *logger.Logger
}

func NewVoteUseCase(
	store repo.Store,
	redisClient *redis.Client,
	queueClient *queue.Client,
	logger *logger.Logger,
) VoteUseCase {
	return &voteUseCase{
		store:       store,
		redisClient: redisClient,
		queueClient: queueClient,
		logger:      logger,
	}
}

func (uc *voteUseCase) Vote(postID, voterAddress string, direction entity.VoteDirection) (*entity.Post, error) {
	if voterAddress == "" {
		return nil, fmt.Errorf("%w: voter address is required", entity.ErrInvalidInput)
	}
	if !direction.Valid() {
		return nil, fmt.Errorf("%w: vote direction must be %q or %q", entity.ErrInvalidInput, entity.VoteUp, entity.VoteDown)
	}

	post, err := uc.store.Vote(postID, voterAddress, direction)
	if err != nil {
		return nil, err
	}

	uc.refreshCache(post)

	if uc.queueClient != nil && post.Author.Address != voterAddress {
		go uc.publishVoteEvent(post, voterAddress, direction)
	}

	return post, nil
}

func (uc *voteUseCase) refreshCache(post *entity.Post) {
	if uc.redisClient == nil {
		return
	}

	ctx := context.Background()
	postJSON, err := json.Marshal(post)
	if err != nil {
		return
	}
	uc.redisClient.Set(ctx, fmt.Sprintf("post:%s", post.ID), postJSON, 24*time.Hour)
}

func (uc *voteUseCase) publishVoteEvent(post *entity.Post, voterAddress string, direction entity.VoteDirection) {
	event := map[string]interface{}{
		"type":           queue.EventPostVoted,
		"post_id":        post.ID,
		"author_address": post.Author.Address,
		"voter_address":  voterAddress,
		"direction":      string(direction),
		"priority":       3,
	}

	if err := uc.queueClient.PublishSocialEvent(event); err != nil {
		uc.logger.Error("[NOTIFICATION QUEUE] Failed to publish vote event: %v (post_id=%s)", err, post.ID)
	}
}
