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

type PostUseCase interface {
	CreatePost(author entity.Author, text string, media []entity.Media) (*entity.Post, error)
	GetPost(postID string) (*entity.Post, error)
	ListPosts() ([]*entity.Post, error)
	GetUserPosts(address string) ([]*entity.Post, error)
}

type postUseCase struct {
	store          repo.Store
	redisClient    *redis.Client
	queueClient    *queue.Client
	logger         *logger.Logger
	requireContent bool
}

func NewPostUseCase(
	store repo.Store,
	redisClient *redis.Client,
	queueClient *queue.Client,
	logger *logger.Logger,
	requireContent bool,
) PostUseCase {
	return &postUseCase{
		store:          store,
		redisClient:    redisClient,
		queueClient:    queueClient,
		logger:         logger,
		requireContent: requireContent,
	}
}

func (uc *postUseCase) CreatePost(author entity.Author, text string, media []entity.Media) (*entity.Post, error) {
	if author.Address == "" {
		return nil, fmt.Errorf("%w: author address is required", entity.ErrInvalidInput)
	}
	if uc.requireContent && text == "" && len(media) == 0 {
		return nil, fmt.Errorf("%w: post must have text or media", entity.ErrInvalidInput)
	}
	for _, m := range media {
		if !m.Type.Valid() {
			return nil, fmt.Errorf("%w: unsupported media type %q", entity.ErrInvalidInput, m.Type)
		}
		if m.URL == "" {
			return nil, fmt.Errorf("%w: media url is required", entity.ErrInvalidInput)
		}
	}
	if media == nil {
		media = []entity.Media{}
	}

	post := &entity.Post{
		Author:    author,
		CreatedAt: time.Now(),
		Text:      text,
		Media:     media,
	}

	if err := uc.store.CreatePost(post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	uc.cachePost(post)
	uc.addToFeed(post)

	if uc.queueClient != nil {
		go uc.publishNewPostEvent(post)
	}

	return post, nil
}

func (uc *postUseCase) GetPost(postID string) (*entity.Post, error) {
	return uc.store.GetPost(postID)
}

func (uc *postUseCase) ListPosts() ([]*entity.Post, error) {
	return uc.store.ListPosts()
}

func (uc *postUseCase) GetUserPosts(address string) ([]*entity.Post, error) {
	return uc.store.ListPostsByAuthor(address)
}

func (uc *postUseCase) cachePost(post *entity.Post) {
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

func (uc *postUseCase) addToFeed(post *entity.Post) {
	if uc.redisClient == nil {
		return
	}

	ctx := context.Background()
	globalFeedKey := "feed:global"
	uc.redisClient.LPush(ctx, globalFeedKey, post.ID)
	uc.redisClient.LTrim(ctx, globalFeedKey, 0, 9999)
	uc.redisClient.Expire(ctx, globalFeedKey, 7*24*time.Hour)
}

func (uc *postUseCase) publishNewPostEvent(post *entity.Post) {
	event := map[string]interface{}{
		"type":           queue.EventNewPost,
		"post_id":        post.ID,
		"author_address": post.Author.Address,
		"priority":       5,
	}

	if err := uc.queueClient.PublishSocialEvent(event); err != nil {
		uc.logger.Error("[NOTIFICATION QUEUE] Failed to publish new post event: %v (post_id=%s)", err, post.ID)
	}
}
