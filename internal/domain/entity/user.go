package entity

import "time"

// User usuario administrativo del sistema.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
}
