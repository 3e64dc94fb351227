package contract

import (
	"context"

	"fin-jurist-be/internal/entity"
	"fin-jurist-be/internal/repository/specification"

	"github.com/google/uuid"
)

type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByChatId(ctx context.Context, chatId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Message, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error)
	// FindOneOwned resolves a message by id while verifying ownership
	// transitively through the parent chat's owner.
	FindOneOwned(ctx context.Context, id uuid.UUID, userId uint) (*entity.Message, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
