package persistent

import (
	"errors"

	"flow-social/internal/entity"
	"flow-social/internal/model"
	"flow-social/internal/repo"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type socialRepository struct {
	db *gorm.DB
}

func NewSocialRepository(db *gorm.DB) repo.Store {
	return &socialRepository{db: db}
}

func (r *socialRepository) CreatePost(post *entity.Post) error {
	postModel := ToPostModel(post)
	if postModel.ID == "" {
		postModel.ID = uuid.New().String()
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		media := postModel.Media
		postModel.Media = nil

		if err := tx.Create(postModel).Error; err != nil {
			return err
		}

		for i := range media {
			media[i].PostID = postModel.ID
			if err := tx.Create(&media[i]).Error; err != nil {
				return err
			}
		}
		postModel.Media = media

		*post = *ToPostEntity(postModel)
		return nil
	})
}

func (r *socialRepository) GetPost(id string) (*entity.Post, error) {
	var postModel model.PostModel
	err := r.db.Preload("Media", func(db *gorm.DB) *gorm.DB {
		return db.Order("post_media.created_at ASC")
	}).Where("id = ?", id).First(&postModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrPostNotFound
		}
		return nil, err
	}
	return ToPostEntity(&postModel), nil
}

func (r *socialRepository) ListPosts() ([]*entity.Post, error) {
	return r.listPosts(r.db)
}

func (r *socialRepository) ListPostsByAuthor(address string) ([]*entity.Post, error) {
	return r.listPosts(r.db.Where("author_address = ?", address))
}

func (r *socialRepository) listPosts(query *gorm.DB) ([]*entity.Post, error) {
	var postModels []model.PostModel
	err := query.Preload("Media", func(db *gorm.DB) *gorm.DB {
		return db.Order("post_media.created_at ASC")
	}).Order("created_at DESC").Find(&postModels).Error
	if err != nil {
		return nil, err
	}

	posts := make([]*entity.Post, len(postModels))
	for i := range postModels {
		posts[i] = ToPostEntity(&postModels[i])
	}
	return posts, nil
}

// Vote runs the per-voter transition in one transaction. The post row is
// locked for the duration, so concurrent votes on the same post serialize
// and each counter delta commits exactly once.
func (r *socialRepository) Vote(postID, voterAddress string, direction entity.VoteDirection) (*entity.Post, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var post model.PostModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", postID).First(&post).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return entity.ErrPostNotFound
			}
			return err
		}

		current := entity.NoVote
		var vote model.VoteModel
		err = tx.Where("post_id = ? AND user_address = ?", postID, voterAddress).First(&vote).Error
		switch {
		case err == nil:
			current = entity.VoteState(vote.VoteType)
		case errors.Is(err, gorm.ErrRecordNotFound):
			// first vote by this user on this post
		default:
			return err
		}

		next, delta := entity.ApplyVote(current, direction)

		switch {
		case next == entity.NoVote:
			err = tx.Where("post_id = ? AND user_address = ?", postID, voterAddress).
				Delete(&model.VoteModel{}).Error
		case current == entity.NoVote:
			err = tx.Create(&model.VoteModel{
				PostID:      postID,
				UserAddress: voterAddress,
				VoteType:    string(next),
			}).Error
		default:
			err = tx.Model(&model.VoteModel{}).
				Where("post_id = ? AND user_address = ?", postID, voterAddress).
				Update("vote_type", string(next)).Error
		}
		if err != nil {
			return err
		}

		if delta.Upvotes != 0 {
			err = tx.Model(&model.PostModel{}).Where("id = ?", postID).
				UpdateColumn("upvotes", gorm.Expr("upvotes + ?", delta.Upvotes)).Error
			if err != nil {
				return err
			}
		}
		if delta.Downvotes != 0 {
			err = tx.Model(&model.PostModel{}).Where("id = ?", postID).
				UpdateColumn("downvotes", gorm.Expr("downvotes + ?", delta.Downvotes)).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.GetPost(postID)
}

func (r *socialRepository) CreateComment(comment *entity.Comment) error {
	commentModel := ToCommentModel(comment)
	if commentModel.ID == "" {
		commentModel.ID = uuid.New().String()
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		// The guarded increment doubles as the existence check: zero rows
		// affected means the post is gone and the whole unit rolls back.
		res := tx.Model(&model.PostModel{}).Where("id = ?", comment.PostID).
			UpdateColumn("comments_count", gorm.Expr("comments_count + ?", 1))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return entity.ErrPostNotFound
		}

		if err := tx.Create(commentModel).Error; err != nil {
			return err
		}

		*comment = *ToCommentEntity(commentModel)
		return nil
	})
}

func (r *socialRepository) ListComments(postID string) ([]*entity.Comment, error) {
	var commentModels []model.CommentModel
	err := r.db.Where("post_id = ?", postID).Order("created_at ASC").Find(&commentModels).Error
	if err != nil {
		return nil, err
	}

	comments := make([]*entity.Comment, len(commentModels))
	for i := range commentModels {
		comments[i] = ToCommentEntity(&commentModels[i])
	}
	return comments, nil
}

func (r *socialRepository) DeleteComment(id, requesterAddress string) (*entity.Comment, error) {
	var deleted *entity.Comment

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var commentModel model.CommentModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).First(&commentModel).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return entity.ErrCommentNotFound
			}
			return err
		}

		if commentModel.AuthorAddress != requesterAddress {
			return entity.ErrNotCommentAuthor
		}

		if err := tx.Delete(&model.CommentModel{}, "id = ?", id).Error; err != nil {
			return err
		}

		err = tx.Model(&model.PostModel{}).Where("id = ?", commentModel.PostID).
			UpdateColumn("comments_count", gorm.Expr("comments_count - ?", 1)).Error
		if err != nil {
			return err
		}

		deleted = ToCommentEntity(&commentModel)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return deleted, nil
}
