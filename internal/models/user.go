package models

// User учетная запись сервера
type User struct {
	Email        string
	PasswordHash []byte // bcrypt
	Role         Role
}
