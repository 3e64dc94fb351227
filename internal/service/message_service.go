package service

import (
	"context"
	"time"

	"fin-jurist-be/internal/dto"
	"fin-jurist-be/internal/entity"
	"fin-jurist-be/internal/pkg/serverutils"
	"fin-jurist-be/internal/repository/specification"
	"fin-jurist-be/internal/repository/unitofwork"
	"fin-jurist-be/pkg/advisor"
	"fin-jurist-be/pkg/llm"

	"github.com/google/uuid"
)

// contextWindowSize is how many recent messages are fed back to the
// model as conversation context.
const contextWindowSize = 10

type IMessageService interface {
	Send(ctx context.Context, userId uint, req *dto.SendMessageRequest) (*dto.MessageResponse, error)
	GetByChat(ctx context.Context, userId uint, chatId uuid.UUID) ([]*dto.MessageResponse, error)
	Delete(ctx context.Context, userId uint, messageId uuid.UUID) error
}

type messageService struct {
	uowFactory unitofwork.RepositoryFactory
	engine     *advisor.Engine
}

func NewMessageService(uowFactory unitofwork.RepositoryFactory, engine *advisor.Engine) IMessageService {
	return &messageService{
		uowFactory: uowFactory,
		engine:     engine,
	}
}

func (s *messageService) verifyChatOwnership(ctx context.Context, uow unitofwork.UnitOfWork, userId uint, chatId uuid.UUID) error {
	chat, err := uow.ChatRepository().FindOne(ctx,
		specification.ByID{ID: chatId},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return serverutils.Internal("Failed to load chat", err)
	}
	if chat == nil {
		return serverutils.NotFound("Chat not found")
	}
	return nil
}

func (s *messageService) Send(ctx context.Context, userId uint, req *dto.SendMessageRequest) (*dto.MessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := s.verifyChatOwnership(ctx, uow, userId, req.ChatId); err != nil {
		return nil, err
	}

	// 1. Persist the user turn
	userMessage := &entity.Message{
		Id:        uuid.New(),
		ChatId:    req.ChatId,
		Content:   req.Content,
		Role:      entity.MessageRoleUser,
		CreatedAt: time.Now(),
	}
	if err := uow.MessageRepository().Create(ctx, userMessage); err != nil {
		return nil, serverutils.Internal("Failed to save message", err)
	}

	// 2. Load the most recent context window, oldest first
	recent, err := uow.MessageRepository().FindAll(ctx,
		specification.ByChatID{ChatID: req.ChatId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{N: contextWindowSize},
	)
	if err != nil {
		return nil, serverutils.Internal("Failed to load chat history", err)
	}

	history := make([]llm.Message, 0, len(recent)+1)
	for i := len(recent) - 1; i >= 0; i-- {
		if recent[i].Id == userMessage.Id {
			continue // appended explicitly as the final turn below
		}
		history = append(history, llm.Message{
			Role:    recent[i].Role,
			Content: recent[i].Content,
		})
	}
	history = append(history, llm.Message{
		Role:    entity.MessageRoleUser,
		Content: req.Content,
	})

	// 3. Generate and persist the assistant turn. The engine falls back
	// to a fixed string on provider failure, so the reply always exists.
	reply := s.engine.GenerateResponse(ctx, history)

	assistantMessage := &entity.Message{
		Id:        uuid.New(),
		ChatId:    req.ChatId,
		Content:   reply,
		Role:      entity.MessageRoleAssistant,
		CreatedAt: time.Now(),
	}
	if err := uow.MessageRepository().Create(ctx, assistantMessage); err != nil {
		return nil, serverutils.Internal("Failed to save assistant message", err)
	}

	return toMessageResponse(assistantMessage), nil
}

func (s *messageService) GetByChat(ctx context.Context, userId uint, chatId uuid.UUID) ([]*dto.MessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := s.verifyChatOwnership(ctx, uow, userId, chatId); err != nil {
		return nil, err
	}

	messages, err := uow.MessageRepository().FindAll(ctx,
		specification.ByChatID{ChatID: chatId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, serverutils.Internal("Failed to list messages", err)
	}

	result := make([]*dto.MessageResponse, len(messages))
	for i, msg := range messages {
		result[i] = toMessageResponse(msg)
	}
	return result, nil
}

func (s *messageService) Delete(ctx context.Context, userId uint, messageId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	message, err := uow.MessageRepository().FindOneOwned(ctx, messageId, userId)
	if err != nil {
		return serverutils.Internal("Failed to load message", err)
	}
	if message == nil {
		return serverutils.NotFound("Message not found")
	}

	if err := uow.MessageRepository().Delete(ctx, messageId); err != nil {
		return serverutils.Internal("Failed to delete message", err)
	}
	return nil
}

func toMessageResponse(msg *entity.Message) *dto.MessageResponse {
	return &dto.MessageResponse{
		Id:        msg.Id,
		ChatId:    msg.ChatId,
		Content:   msg.Content,
		Role:      msg.Role,
		CreatedAt: msg.CreatedAt,
	}
}
