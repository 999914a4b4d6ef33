package model

import "time"

// User mirrors the identity provider's subject. Rows are provisioned
// lazily the first time a subject writes a review, so the only column
// guaranteed to be present is the id.
type User struct {
	ID          string    `json:"id" db:"id"`
	Username    string    `json:"username" db:"username"`
	Email       *string   `json:"email,omitempty" db:"email"`
	DisplayName *string   `json:"display_name,omitempty" db:"display_name"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Placeholder builds the minimal row provisioned for an unseen subject.
func Placeholder(subject string) *User {
	return &User{
		ID:       subject,
		Username: subject,
	}
}
