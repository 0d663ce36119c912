package models

import (
	"time"
)

// Post statuses. Every post is in exactly one of these at any time.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusDeclined = "declined"
)

// Moderation actions accepted by the status endpoint.
const (
	ActionApprove = "approve"
	ActionDecline = "decline"
	ActionPending = "pending"
)

type Student struct {
	StudentID              string    `json:"studentId" db:"student_id"`
	FullName               string    `json:"fullName" db:"full_name"`
	Email                  string    `json:"email" db:"email"`
	PasswordHash           string    `json:"-" db:"password_hash"`
	IsAdmin                bool      `json:"isAdmin" db:"is_admin"`
	AvatarURL              string    `json:"avatarUrl" db:"avatar_url"`
	RefreshToken           string    `json:"-" db:"refresh_token"`
	RefreshTokenExpiryTime time.Time `json:"-" db:"refresh_token_expiry_time"`
	CreatedAt              time.Time `json:"createdAt" db:"created_at"`
}

type Post struct {
	PostID      string    `json:"postId" db:"post_id"`
	AuthorID    string    `json:"authorId" db:"author_id"`
	Content     string    `json:"content" db:"content"`
	IsAnonymous bool      `json:"isAnonymous" db:"is_anonymous"`
	Status      string    `json:"status" db:"status"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

type Comment struct {
	CommentID string    `json:"commentId" db:"comment_id"`
	PostID    string    `json:"postId" db:"post_id"`
	AuthorID  string    `json:"authorId" db:"author_id"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type Like struct {
	PostID    string    `json:"postId" db:"post_id"`
	StudentID string    `json:"studentId" db:"student_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type Journal struct {
	JournalID string    `json:"journalId" db:"journal_id"`
	StudentID string    `json:"studentId" db:"student_id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

type MoodEntry struct {
	MoodID    string    `json:"moodId" db:"mood_id"`
	StudentID string    `json:"studentId" db:"student_id"`
	Score     int       `json:"score" db:"score"`
	Note      string    `json:"note" db:"note"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type WellnessResource struct {
	ResourceID  string    `json:"resourceId" db:"resource_id"`
	Name        string    `json:"name" db:"name"`
	Type        string    `json:"type" db:"type"`
	Description string    `json:"description" db:"description"`
	URL         string    `json:"url" db:"url"`
	Phone       string    `json:"phone" db:"phone"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// ModerationCounts are always recomputed from the current post statuses,
// never stored or cached, so the admin dashboard can never drift from the
// actual lists.
type ModerationCounts struct {
	Pending  int `json:"pending" db:"pending"`
	Approved int `json:"approved" db:"approved"`
	Declined int `json:"declined" db:"declined"`
	Total    int `json:"total" db:"total"`
}

// PostEngagement is the batched like/comment lookup for a set of posts.
type PostEngagement struct {
	PostID       string `json:"postId" db:"post_id"`
	LikeCount    int    `json:"likeCount" db:"like_count"`
	CommentCount int    `json:"commentCount" db:"comment_count"`
}

// FeedPost is the public projection of an approved post.
type FeedPost struct {
	PostID            string    `json:"postId"`
	DisplayAuthorName string    `json:"displayAuthorName"`
	IsAnonymous       bool      `json:"isAnonymous"`
	Content           string    `json:"content"`
	CharCount         int       `json:"charCount"`
	WordCount         int       `json:"wordCount"`
	LikeCount         int       `json:"likeCount"`
	CommentCount      int       `json:"commentCount"`
	LikedByViewer     bool      `json:"likedByViewer"`
	CreatedAt         time.Time `json:"createdAt"`
}

// StudentWithStats is the admin user list row.
type StudentWithStats struct {
	Student
	PostCount int `json:"postCount" db:"post_count"`
}

func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusApproved, StatusDeclined:
		return true
	}
	return false
}

// StatusForAction maps a moderation action to the status it leaves the post
// in. The mapping is total: approve and decline are applied from any prior
// state, pending reverts either decision.
func StatusForAction(action string) (string, bool) {
	switch action {
	case ActionApprove:
		return StatusApproved, true
	case ActionDecline:
		return StatusDeclined, true
	case ActionPending:
		return StatusPending, true
	}
	return "", false
}
