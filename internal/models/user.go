package models

import "github.com/google/uuid"

// User exists for credential lookup only; it is never mutated here.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password"` // Never serialize in JSON
}
