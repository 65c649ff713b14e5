package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostModel struct {
	ID              string `gorm:"type:uuid;primary_key" json:"id"`
	AuthorAddress   string `gorm:"not null;index" json:"author_address"`
	AuthorName      string `json:"author_name"`
	AuthorAvatarURL string `json:"author_avatar_url"`
	Text            string `json:"text"`
	Upvotes         int    `gorm:"not null;default:0" json:"upvotes"`
	Downvotes       int    `gorm:"not null;default:0" json:"downvotes"`
	CommentsCount   int    `gorm:"not null;default:0" json:"comments_count"`
	Following       bool   `gorm:"not null;default:false" json:"following"`
	CreatedAt       time.Time `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Media []PostMediaModel `gorm:"foreignKey:PostID" json:"media"`
}

func (PostModel) TableName() string {
	return "posts"
}

func (p *PostModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
