package model

import "time"

// Post moderation statuses.
const (
	PostStatusPending  = "pending"
	PostStatusApproved = "approved"
	PostStatusRejected = "rejected"
)

// ValidPostStatus reports whether s is one of the known moderation statuses.
func ValidPostStatus(s string) bool {
	return s == PostStatusPending || s == PostStatusApproved || s == PostStatusRejected
}

// Post is a member-authored update subject to admin moderation.
type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	AuthorID  uint      `json:"author_id" gorm:"not null;index"`
	Title     string    `json:"title" gorm:"size:255;not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	Status    string    `json:"status" gorm:"size:20;default:'pending';not null;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Author *User `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
}
