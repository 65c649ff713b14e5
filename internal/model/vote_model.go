package model

import "time"

// One row per (post, voter) pair; the direction flips in place and the row
// is deleted on toggle-off.
type VoteModel struct {
	PostID      string    `gorm:"type:uuid;primaryKey" json:"post_id"`
	UserAddress string    `gorm:"primaryKey" json:"user_address"`
	VoteType    string    `gorm:"type:varchar(10);not null" json:"vote_type"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (VoteModel) TableName() string {
	return "votes"
}
