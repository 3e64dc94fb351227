package service

import (
	"context"
	"time"

	"fin-jurist-be/internal/dto"
	"fin-jurist-be/internal/entity"
	"fin-jurist-be/internal/pkg/serverutils"
	"fin-jurist-be/internal/repository/specification"
	"fin-jurist-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IChatService interface {
	Create(ctx context.Context, userId uint, req *dto.CreateChatRequest) (*dto.ChatResponse, error)
	GetAll(ctx context.Context, userId uint) ([]*dto.ChatResponse, error)
	Show(ctx context.Context, userId uint, id uuid.UUID) (*dto.ChatResponse, error)
	Update(ctx context.Context, userId uint, req *dto.UpdateChatRequest) (*dto.ChatResponse, error)
	Delete(ctx context.Context, userId uint, id uuid.UUID) error
}

type chatService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewChatService(uowFactory unitofwork.RepositoryFactory) IChatService {
	return &chatService{
		uowFactory: uowFactory,
	}
}

// findOwned loads a chat strictly by id and owner. A chat owned by
// another user is indistinguishable from a missing one so existence is
// never leaked.
func (s *chatService) findOwned(ctx context.Context, uow unitofwork.UnitOfWork, userId uint, id uuid.UUID) (*entity.Chat, error) {
	chat, err := uow.ChatRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, serverutils.Internal("Failed to load chat", err)
	}
	if chat == nil {
		return nil, serverutils.NotFound("Chat not found")
	}
	return chat, nil
}

func (s *chatService) Create(ctx context.Context, userId uint, req *dto.CreateChatRequest) (*dto.ChatResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	now := time.Now()
	chat := &entity.Chat{
		Id:        uuid.New(),
		UserId:    userId,
		Title:     req.Title,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uow.ChatRepository().Create(ctx, chat); err != nil {
		return nil, serverutils.Internal("Failed to create chat", err)
	}

	return toChatResponse(chat), nil
}

func (s *chatService) GetAll(ctx context.Context, userId uint) ([]*dto.ChatResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	chats, err := uow.ChatRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, serverutils.Internal("Failed to list chats", err)
	}

	result := make([]*dto.ChatResponse, len(chats))
	for i, chat := range chats {
		result[i] = toChatResponse(chat)
	}
	return result, nil
}

func (s *chatService) Show(ctx context.Context, userId uint, id uuid.UUID) (*dto.ChatResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	chat, err := s.findOwned(ctx, uow, userId, id)
	if err != nil {
		return nil, err
	}
	return toChatResponse(chat), nil
}

func (s *chatService) Update(ctx context.Context, userId uint, req *dto.UpdateChatRequest) (*dto.ChatResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	chat, err := s.findOwned(ctx, uow, userId, req.Id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		chat.Title = *req.Title
	}
	chat.UpdatedAt = time.Now()

	if err := uow.ChatRepository().Update(ctx, chat); err != nil {
		return nil, serverutils.Internal("Failed to update chat", err)
	}

	return toChatResponse(chat), nil
}

func (s *chatService) Delete(ctx context.Context, userId uint, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.findOwned(ctx, uow, userId, id); err != nil {
		return err
	}

	// Cascade: messages first, then the chat itself, atomically.
	if err := uow.Begin(ctx); err != nil {
		return serverutils.Internal("Failed to start transaction", err)
	}
	defer uow.Rollback()

	if err := uow.MessageRepository().DeleteByChatId(ctx, id); err != nil {
		return serverutils.Internal("Failed to delete chat messages", err)
	}
	if err := uow.ChatRepository().Delete(ctx, id); err != nil {
		return serverutils.Internal("Failed to delete chat", err)
	}

	if err := uow.Commit(); err != nil {
		return serverutils.Internal("Failed to commit chat deletion", err)
	}
	return nil
}

func toChatResponse(chat *entity.Chat) *dto.ChatResponse {
	return &dto.ChatResponse{
		Id:        chat.Id,
		UserId:    chat.UserId,
		Title:     chat.Title,
		CreatedAt: chat.CreatedAt,
		UpdatedAt: chat.UpdatedAt,
	}
}
