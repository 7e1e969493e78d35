package domain

import "time"

type Role string

const (
	ADMIN    Role = "admin"
	EMPLOYEE Role = "employee"
)

type User struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	Password  string `gorm:"not null" json:"-"`
	Role      Role   `gorm:"type:text;not null" json:"role"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Identity is the authenticated view of a User carried by a token.
// It is never persisted on its own.
type Identity struct {
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

func (i Identity) IsAdmin() bool {
	return i.Role == ADMIN
}
