package unitofwork

import (
	"context"

	"fin-jurist-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ChatRepository() contract.ChatRepository
	MessageRepository() contract.MessageRepository
}
