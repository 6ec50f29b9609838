package domain

import "time"

// Quiz is a quiz post with an uploaded image. Only the owner may mutate it;
// deletion is a tombstone write, never a row removal.
type Quiz struct {
	QuizID   string `json:"quizID"`
	OwnerID  string `json:"ownerID"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	ImageURL string `json:"imageURL"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// QuizComment is a comment on a quiz. Same ownership and tombstone rules as
// Quiz, with the author as sole mutator.
type QuizComment struct {
	CommentID string `json:"commentID"`
	QuizID    string `json:"quizID"`
	AuthorID  string `json:"authorID"`
	Content   string `json:"content"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
