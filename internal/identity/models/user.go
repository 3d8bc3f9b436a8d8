package models

import (
	"time"

	id "cinelog/pkg/domain"
)

// User is keyed by normalized email (trimmed, lower-cased). Records are
// write-once: no profile edits or deletes exist in this service.
//
// PasswordHash is the bcrypt hash. The plaintext never reaches a store or a
// log line; handlers and services treat it as a transient parameter only.
type User struct {
	Email        string    `json:"email"`
	UserID       id.UserID `json:"userId"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Profile is the caller-facing projection of a user. It is the only shape
// signup and signin ever return; the hash cannot leak through it.
type Profile struct {
	UserID id.UserID `json:"userId"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
}

func (u User) Profile() Profile {
	return Profile{UserID: u.UserID, Name: u.Name, Email: u.Email}
}
