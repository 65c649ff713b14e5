package entity

import "errors"

// Typed failures surfaced by repositories and use cases. The HTTP layer is
// the only place these are translated to status codes.
var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrPostNotFound     = errors.New("post not found")
	ErrCommentNotFound  = errors.New("comment not found")
	ErrNotCommentAuthor = errors.New("comment does not belong to requester")
)
