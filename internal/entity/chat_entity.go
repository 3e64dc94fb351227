package entity

import (
	"time"

	"github.com/google/uuid"
)

type Chat struct {
	Id        uuid.UUID
	UserId    uint
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
