package dto

import (
	"time"

	"github.com/google/uuid"
)

type SendMessageRequest struct {
	ChatId  uuid.UUID `json:"chat_id" validate:"required"`
	Content string    `json:"content" validate:"required"`
}

type MessageResponse struct {
	Id        uuid.UUID `json:"id"`
	ChatId    uuid.UUID `json:"chat_id"`
	Content   string    `json:"content"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
