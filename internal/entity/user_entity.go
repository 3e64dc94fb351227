package entity

import (
	"time"
)

type User struct {
	Id           uint
	Email        string
	PasswordHash string
	FullName     string
	IsActive     bool
	CreatedAt    time.Time
}
