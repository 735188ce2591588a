package model

import "time"

// AlumniProfile holds the career and biographical record attached to a user.
// All content fields are nullable; absent values serialize as JSON null.
type AlumniProfile struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	UserID            uint      `json:"user_id" gorm:"uniqueIndex;not null"`
	GraduationYear    *int      `json:"graduation_year"`
	Major             *string   `json:"major" gorm:"size:255"`
	CurrentPosition   *string   `json:"current_position" gorm:"size:255"`
	Company           *string   `json:"company" gorm:"size:255"`
	Bio               *string   `json:"bio" gorm:"type:text"`
	LinkedInURL       *string   `json:"linkedin_url" gorm:"size:512"`
	ProfilePictureURL *string   `json:"profile_picture_url" gorm:"size:512"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`

	// Relations
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
