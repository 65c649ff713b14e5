package persistent

import (
	"flow-social/internal/entity"
	"flow-social/internal/model"
)

func ToPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}

	post := &entity.Post{
		ID: m.ID,
		Author: entity.Author{
			Address:   m.AuthorAddress,
			Name:      m.AuthorName,
			AvatarURL: m.AuthorAvatarURL,
		},
		CreatedAt: m.CreatedAt,
		Text:      m.Text,
		Media:     make([]entity.Media, 0, len(m.Media)),
		Upvotes:   m.Upvotes,
		Downvotes: m.Downvotes,
		Comments:  m.CommentsCount,
		Following: m.Following,
	}

	for _, mm := range m.Media {
		post.Media = append(post.Media, entity.Media{
			Type: entity.MediaType(mm.Type),
			URL:  mm.URL,
		})
	}

	return post
}

func ToPostModel(e *entity.Post) *model.PostModel {
	if e == nil {
		return nil
	}

	post := &model.PostModel{
		ID:              e.ID,
		AuthorAddress:   e.Author.Address,
		AuthorName:      e.Author.Name,
		AuthorAvatarURL: e.Author.AvatarURL,
		Text:            e.Text,
		Upvotes:         e.Upvotes,
		Downvotes:       e.Downvotes,
		CommentsCount:   e.Comments,
		Following:       e.Following,
		CreatedAt:       e.CreatedAt,
	}

	if len(e.Media) > 0 {
		post.Media = make([]model.PostMediaModel, len(e.Media))
		for i, m := range e.Media {
			post.Media[i] = model.PostMediaModel{
				PostID: e.ID,
				Type:   string(m.Type),
				URL:    m.URL,
			}
		}
	}

	return post
}

func ToCommentEntity(m *model.CommentModel) *entity.Comment {
	if m == nil {
		return nil
	}

	return &entity.Comment{
		ID:     m.ID,
		PostID: m.PostID,
		Author: entity.Author{
			Address:   m.AuthorAddress,
			Name:      m.AuthorName,
			AvatarURL: m.AuthorAvatarURL,
		},
		Text:      m.Text,
		CreatedAt: m.CreatedAt,
		Likes:     m.Likes,
	}
}

func ToCommentModel(e *entity.Comment) *model.CommentModel {
	if e == nil {
		return nil
	}

	return &model.CommentModel{
		ID:              e.ID,
		PostID:          e.PostID,
		AuthorAddress:   e.Author.Address,
		AuthorName:      e.Author.Name,
		AuthorAvatarURL: e.Author.AvatarURL,
		Text:            e.Text,
		Likes:           e.Likes,
		CreatedAt:       e.CreatedAt,
	}
}
