package model

import "time"

// NewsletterSubscriber is a mailing-list entry, independent of user accounts.
// Unsubscribing flips IsActive rather than deleting the row.
type NewsletterSubscriber struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	SubscribedAt time.Time `json:"subscribed_at" gorm:"autoCreateTime"`
}
