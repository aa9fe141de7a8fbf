package domain

import "time"

// User models a registered customer. The password hash never appears in API
// responses; persistence maps it through its own record type.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"created_at"`
}
