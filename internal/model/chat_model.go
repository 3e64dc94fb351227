package model

import (
	"time"

	"github.com/google/uuid"
)

type Chat struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId    uint      `gorm:"not null;index"` // ownership scope for every query
	Title     string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	User *User `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE"`
}

func (Chat) TableName() string {
	return "chats"
}
