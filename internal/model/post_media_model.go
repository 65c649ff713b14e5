package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostMediaModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	PostID    string    `gorm:"type:uuid;not null;index" json:"post_id"`
	Type      string    `gorm:"type:varchar(10);not null" json:"type"`
	URL       string    `gorm:"not null" json:"url"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (PostMediaModel) TableName() string {
	return "post_media"
}

func (m *PostMediaModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}
