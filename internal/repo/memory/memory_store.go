package memory

import (
	"sync"
	"time"

	"flow-social/internal/entity"
	"flow-social/internal/repo"

	"github.com/google/uuid"
)

// Store is an in-memory implementation of repo.Store, used by tests. It is
// explicitly owned by whoever constructs it; nothing here is process-global.
type Store struct {
	mu         sync.Mutex
	posts      map[string]*entity.Post
	postOrder  []string
	comments   map[string][]*entity.Comment
	commentIdx map[string]*entity.Comment
	votes      map[string]entity.VoteState
}

func NewStore() *Store {
	return &Store{
		posts:      make(map[string]*entity.Post),
		comments:   make(map[string][]*entity.Comment),
		commentIdx: make(map[string]*entity.Comment),
		votes:      make(map[string]entity.VoteState),
	}
}

var _ repo.Store = (*Store)(nil)

func (s *Store) CreatePost(post *entity.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now()
	}
	if post.Media == nil {
		post.Media = []entity.Media{}
	}

	stored := copyPost(post)
	s.posts[post.ID] = stored
	s.postOrder = append(s.postOrder, post.ID)
	return nil
}

func (s *Store) GetPost(id string) (*entity.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[id]
	if !ok {
		return nil, entity.ErrPostNotFound
	}
	return copyPost(post), nil
}

func (s *Store) ListPosts() ([]*entity.Post, error) {
	return s.listPosts("")
}

func (s *Store) ListPostsByAuthor(address string) ([]*entity.Post, error) {
	return s.listPosts(address)
}

func (s *Store) listPosts(address string) ([]*entity.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// newest-created first
	posts := make([]*entity.Post, 0, len(s.postOrder))
	for i := len(s.postOrder) - 1; i >= 0; i-- {
		post := s.posts[s.postOrder[i]]
		if address != "" && post.Author.Address != address {
			continue
		}
		posts = append(posts, copyPost(post))
	}
	return posts, nil
}

func (s *Store) Vote(postID, voterAddress string, direction entity.VoteDirection) (*entity.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[postID]
	if !ok {
		return nil, entity.ErrPostNotFound
	}

	key := postID + "|" + voterAddress
	next, delta := entity.ApplyVote(s.votes[key], direction)
	if next == entity.NoVote {
		delete(s.votes, key)
	} else {
		s.votes[key] = next
	}

	post.Upvotes += delta.Upvotes
	post.Downvotes += delta.Downvotes

	return copyPost(post), nil
}

func (s *Store) CreateComment(comment *entity.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[comment.PostID]
	if !ok {
		return entity.ErrPostNotFound
	}

	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}

	stored := copyComment(comment)
	s.comments[comment.PostID] = append(s.comments[comment.PostID], stored)
	s.commentIdx[comment.ID] = stored
	post.Comments++
	return nil
}

func (s *Store) ListComments(postID string) ([]*entity.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// oldest-created first (append order)
	comments := make([]*entity.Comment, 0, len(s.comments[postID]))
	for _, c := range s.comments[postID] {
		comments = append(comments, copyComment(c))
	}
	return comments, nil
}

func (s *Store) DeleteComment(id, requesterAddress string) (*entity.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	comment, ok := s.commentIdx[id]
	if !ok {
		return nil, entity.ErrCommentNotFound
	}
	if comment.Author.Address != requesterAddress {
		return nil, entity.ErrNotCommentAuthor
	}

	delete(s.commentIdx, id)
	siblings := s.comments[comment.PostID]
	for i, c := range siblings {
		if c.ID == id {
			s.comments[comment.PostID] = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}

	if post, ok := s.posts[comment.PostID]; ok {
		post.Comments--
	}

	return copyComment(comment), nil
}

func copyPost(p *entity.Post) *entity.Post {
	c := *p
	c.Media = make([]entity.Media, len(p.Media))
	copy(c.Media, p.Media)
	return &c
}

func copyComment(c *entity.Comment) *entity.Comment {
	cp := *c
	return &cp
}
