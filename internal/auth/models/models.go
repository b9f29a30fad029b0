package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity record persisted in the credential store.
//
// PasswordHash is the bcrypt digest of the password; the plaintext is never
// stored, and the digest is never serialized into responses or logs.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// View maps a User to its external response shape. The digest field has no
// representation here at all, so it cannot leak by serialization mistake.
func (u *User) View() UserView {
	return UserView{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// UserView is the digest-free user shape returned by the API.
type UserView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
