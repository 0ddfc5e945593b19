package models

import "time"

// Роли пользователей
const (
	RoleDeveloper = "developer"
	RoleAdmin     = "admin"
)

// User представляет пользователя в системе
type User struct {
	ID             string    `json:"id"`             // UUID пользователя
	Email          string    `json:"email"`          // уникальный email (lowercase)
	PasswordHash   string    `json:"password"`       // bcrypt хеш пароля
	Role           string    `json:"role"`           // developer или admin
	DateRegistered time.Time `json:"dateRegistered"` // время регистрации
	IPAddress      string    `json:"ipAddress"`      // IP адрес при регистрации
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
