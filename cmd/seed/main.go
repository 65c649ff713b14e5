package main

import (
	"fmt"

	"flow-social/internal/entity"
	"flow-social/internal/repo"
	"flow-social/internal/repo/persistent"
	"flow-social/internal/usecase"
	"flow-social/pkg/cache"
	"flow-social/pkg/config"
	"flow-social/pkg/database"
	"flow-social/pkg/logger"
)

// Seeds the demo feed the frontend ships with: a couple of wallet authors,
// posts with media, comments and votes.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v", err)
		panic(err)
	}

	store := persistent.NewSocialRepository(db)
	postUseCase := usecase.NewPostUseCase(store, redisClient, nil, log, cfg.PostRequireContent)
	commentUseCase := usecase.NewCommentUseCase(store, redisClient, nil, log)
	voteUseCase := usecase.NewVoteUseCase(store, redisClient, nil, log)

	if err := seedFeed(store, postUseCase, commentUseCase, voteUseCase, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

type seedPost struct {
	author entity.Author
	text   string
	media  []entity.Media
}

func seedFeed(
	store repo.Store,
	postUseCase usecase.PostUseCase,
	commentUseCase usecase.CommentUseCase,
	voteUseCase usecase.VoteUseCase,
	log *logger.Logger,
) error {
	boby := entity.Author{
		Address:   "0xabc12345",
		Name:      "Boby matter",
		AvatarURL: "https://i.pravatar.cc/150?img=12",
	}
	ola := entity.Author{
		Address:   "0xdef67890",
		Name:      "Ola Dealova",
		AvatarURL: "https://i.pravatar.cc/150?img=32",
	}

	existing, err := store.ListPosts()
	if err != nil {
		return fmt.Errorf("failed to check existing posts: %w", err)
	}
	if len(existing) > 0 {
		log.Info("Feed already has %d posts, skipping seed", len(existing))
		return nil
	}

	seeds := []seedPost{
		{
			author: boby,
			text:   "Just picked up the new ride. Weekend trip planning starts now.",
			media: []entity.Media{
				{Type: entity.MediaTypeImage, URL: "https://images.unsplash.com/photo-1502877338535-766e1452684a?w=800"},
				{Type: entity.MediaTypeImage, URL: "https://images.unsplash.com/photo-1503376780353-7e6692767b70?w=800"},
			},
		},
		{
			author: ola,
			text:   "Hot take: most onboarding flows fail because they explain the product instead of letting people use it. Ship the empty state first.",
		},
	}

	postIDs := make([]string, 0, len(seeds))
	for _, s := range seeds {
		post, err := postUseCase.CreatePost(s.author, s.text, s.media)
		if err != nil {
			return fmt.Errorf("failed to create post for %s: %w", s.author.Address, err)
		}
		log.Info("Created post %s by %s", post.ID, s.author.Name)
		postIDs = append(postIDs, post.ID)
	}

	if _, err := commentUseCase.CreateComment(postIDs[0], ola, "Nice color choice. Where's the first trip?"); err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	if _, err := commentUseCase.CreateComment(postIDs[1], boby, "Agreed. The best tutorial is a product that doesn't need one."); err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}

	if _, err := voteUseCase.Vote(postIDs[0], ola.Address, entity.VoteUp); err != nil {
		return fmt.Errorf("failed to vote: %w", err)
	}
	if _, err := voteUseCase.Vote(postIDs[1], boby.Address, entity.VoteUp); err != nil {
		return fmt.Errorf("failed to vote: %w", err)
	}

	log.Info("Seeded %d posts with comments and votes", len(postIDs))
	return nil
}
