package entity

import "time"

type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
	MediaTypeGIF   MediaType = "gif"
)

func (t MediaType) Valid() bool {
	switch t {
	case MediaTypeImage, MediaTypeVideo, MediaTypeGIF:
		return true
	}
	return false
}

// Author is the wallet identity attached to posts and comments.
// The address is the identity key; name and avatar are display-only.
type Author struct {
	Address   string `json:"address"`
	Name      string `json:"name,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

type Media struct {
	Type MediaType `json:"type"`
	URL  string    `json:"url"`
}

type Post struct {
	ID        string    `json:"id"`
	Author    Author    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
	Text      string    `json:"text,omitempty"`
	Media     []Media   `json:"media"`
	Upvotes   int       `json:"upvotes"`
	Downvotes int       `json:"downvotes"`
	Comments  int       `json:"comments"`
	Following bool      `json:"following"`
}
