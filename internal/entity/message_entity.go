package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	MessageRoleUser      = "user"
	MessageRoleAssistant = "assistant"
)

type Message struct {
	Id        uuid.UUID
	ChatId    uuid.UUID
	Content   string
	Role      string
	CreatedAt time.Time
}
