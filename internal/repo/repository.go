package repo

import "flow-social/internal/entity"

// Store is the single persistence contract of the service. The Postgres
// implementation lives in persistent; memory provides the same contract for
// tests and is never wired as a production path.
type Store interface {
	CreatePost(post *entity.Post) error
	GetPost(id string) (*entity.Post, error)
	ListPosts() ([]*entity.Post, error)
	ListPostsByAuthor(address string) ([]*entity.Post, error)

	// Vote applies one per-voter transition atomically and returns the
	// post's fresh state.
	Vote(postID, voterAddress string, direction entity.VoteDirection) (*entity.Post, error)

	CreateComment(comment *entity.Comment) error
	ListComments(postID string) ([]*entity.Comment, error)
	DeleteComment(id, requesterAddress string) (*entity.Comment, error)
}
