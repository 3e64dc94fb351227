package model

import (
	"time"

	"github.com/google/uuid"
)

type Message struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ChatId    uuid.UUID `gorm:"type:uuid;not null;index"`
	Content   string    `gorm:"type:text;not null"`
	Role      string    `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	Chat *Chat `gorm:"foreignKey:ChatId;constraint:OnDelete:CASCADE"`
}

func (Message) TableName() string {
	return "messages"
}
