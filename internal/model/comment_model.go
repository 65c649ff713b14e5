package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentModel struct {
	ID              string    `gorm:"type:uuid;primary_key" json:"id"`
	PostID          string    `gorm:"type:uuid;not null;index" json:"post_id"`
	AuthorAddress   string    `gorm:"not null;index" json:"author_address"`
	AuthorName      string    `json:"author_name"`
	AuthorAvatarURL string    `json:"author_avatar_url"`
	Text            string    `gorm:"not null" json:"text"`
	Likes           int       `gorm:"not null;default:0" json:"likes"`
	CreatedAt       time.Time `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (CommentModel) TableName() string {
	return "comments"
}

func (c *CommentModel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}
