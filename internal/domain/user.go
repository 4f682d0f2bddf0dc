package domain

import (
	"strings"
	"time"
)

// User is a storefront customer.
type User struct {
	UserID    string    `json:"user_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// FullName joins first and last name, trimming the result so a missing part
// never leaves stray whitespace.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// AdminUser is a back-office operator account.
type AdminUser struct {
	AdminID   string    `json:"admin_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
