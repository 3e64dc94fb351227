package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateChatRequest struct {
	Title string `json:"title" validate:"required"`
}

type UpdateChatRequest struct {
	Id    uuid.UUID `json:"-"`
	Title *string   `json:"title"`
}

type ChatResponse struct {
	Id        uuid.UUID `json:"id"`
	UserId    uint      `json:"user_id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
