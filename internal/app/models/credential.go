package models

import "time"

// Credential is the sign-in account created for a director. Its id is the
// id of the paired users document.
type Credential struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}
