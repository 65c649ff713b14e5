package entity

import "time"

type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"postId"`
	Author    Author    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
	Likes     int       `json:"likes"`
}
