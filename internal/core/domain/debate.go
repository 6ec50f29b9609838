package domain

import "time"

// Debate is a discussion thread, optionally attached to a quiz.
type Debate struct {
	DebateID string  `json:"debateID"`
	OwnerID  string  `json:"ownerID"`
	QuizID   *string `json:"quizID,omitempty"`
	Title    string  `json:"title"`
	Content  string  `json:"content"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// DebateComment is a comment on a debate thread.
type DebateComment struct {
	CommentID string `json:"commentID"`
	DebateID  string `json:"debateID"`
	AuthorID  string `json:"authorID"`
	Content   string `json:"content"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
