package service

import (
	"context"
	"sort"

	"fin-jurist-be/internal/entity"
	"fin-jurist-be/internal/repository/contract"
	"fin-jurist-be/internal/repository/specification"
	"fin-jurist-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// In-memory repository doubles. They interpret the same specifications
// the GORM implementations translate to SQL, which keeps service tests
// honest about which filters each call site applies.

type fakeStore struct {
	users    []*entity.User
	chats    []*entity.Chat
	messages []*entity.Message
	nextId   uint

	beginCount    int
	commitCount   int
	rollbackCount int
}

func newFakeStore() *fakeStore {
	return &fakeStore{nextId: 1}
}

type fakeUow struct {
	store *fakeStore
}

func (u *fakeUow) Begin(_ context.Context) error { u.store.beginCount++; return nil }
func (u *fakeUow) Commit() error                 { u.store.commitCount++; return nil }
func (u *fakeUow) Rollback() error               { u.store.rollbackCount++; return nil }

func (u *fakeUow) UserRepository() contract.UserRepository {
	return &fakeUserRepo{store: u.store}
}

func (u *fakeUow) ChatRepository() contract.ChatRepository {
	return &fakeChatRepo{store: u.store}
}

func (u *fakeUow) MessageRepository() contract.MessageRepository {
	return &fakeMessageRepo{store: u.store}
}

type fakeFactory struct {
	store *fakeStore
}

func (f *fakeFactory) NewUnitOfWork(_ context.Context) unitofwork.UnitOfWork {
	return &fakeUow{store: f.store}
}

// --- users ---

type fakeUserRepo struct {
	store *fakeStore
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	user.Id = r.store.nextId
	r.store.nextId++
	copied := *user
	r.store.users = append(r.store.users, &copied)
	return nil
}

func (r *fakeUserRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, user := range r.store.users {
		if userMatches(user, specs) {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Count(_ context.Context, specs ...specification.Specification) (int64, error) {
	var n int64
	for _, user := range r.store.users {
		if userMatches(user, specs) {
			n++
		}
	}
	return n, nil
}

func userMatches(user *entity.User, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByEmail:
			if user.Email != s.Email {
				return false
			}
		case specification.ByUserID:
			if user.Id != s.ID {
				return false
			}
		}
	}
	return true
}

// --- chats ---

type fakeChatRepo struct {
	store *fakeStore
}

func (r *fakeChatRepo) Create(_ context.Context, chat *entity.Chat) error {
	copied := *chat
	r.store.chats = append(r.store.chats, &copied)
	return nil
}

func (r *fakeChatRepo) Update(_ context.Context, chat *entity.Chat) error {
	for i, existing := range r.store.chats {
		if existing.Id == chat.Id {
			copied := *chat
			r.store.chats[i] = &copied
			return nil
		}
	}
	return nil
}

func (r *fakeChatRepo) Delete(_ context.Context, id uuid.UUID) error {
	kept := r.store.chats[:0]
	for _, chat := range r.store.chats {
		if chat.Id != id {
			kept = append(kept, chat)
		}
	}
	r.store.chats = kept
	return nil
}

func (r *fakeChatRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.Chat, error) {
	for _, chat := range r.store.chats {
		if chatMatches(chat, specs) {
			copied := *chat
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeChatRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Chat, error) {
	var result []*entity.Chat
	for _, chat := range r.store.chats {
		if chatMatches(chat, specs) {
			copied := *chat
			result = append(result, &copied)
		}
	}
	if orderBy, ok := findOrderBy(specs); ok && orderBy.Field == "created_at" {
		sort.SliceStable(result, func(i, j int) bool {
			if orderBy.Desc {
				return result[i].CreatedAt.After(result[j].CreatedAt)
			}
			return result[i].CreatedAt.Before(result[j].CreatedAt)
		})
	}
	return applyChatLimit(result, specs), nil
}

func (r *fakeChatRepo) Count(_ context.Context, specs ...specification.Specification) (int64, error) {
	var n int64
	for _, chat := range r.store.chats {
		if chatMatches(chat, specs) {
			n++
		}
	}
	return n, nil
}

func chatMatches(chat *entity.Chat, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if chat.Id != s.ID {
				return false
			}
		case specification.OwnedBy:
			if chat.UserId != s.UserID {
				return false
			}
		}
	}
	return true
}

func applyChatLimit(chats []*entity.Chat, specs []specification.Specification) []*entity.Chat {
	for _, spec := range specs {
		if limit, ok := spec.(specification.Limit); ok && len(chats) > limit.N {
			return chats[:limit.N]
		}
	}
	return chats
}

// --- messages ---

type fakeMessageRepo struct {
	store *fakeStore
}

func (r *fakeMessageRepo) Create(_ context.Context, message *entity.Message) error {
	copied := *message
	r.store.messages = append(r.store.messages, &copied)
	return nil
}

func (r *fakeMessageRepo) Delete(_ context.Context, id uuid.UUID) error {
	kept := r.store.messages[:0]
	for _, message := range r.store.messages {
		if message.Id != id {
			kept = append(kept, message)
		}
	}
	r.store.messages = kept
	return nil
}

func (r *fakeMessageRepo) DeleteByChatId(_ context.Context, chatId uuid.UUID) error {
	kept := r.store.messages[:0]
	for _, message := range r.store.messages {
		if message.ChatId != chatId {
			kept = append(kept, message)
		}
	}
	r.store.messages = kept
	return nil
}

func (r *fakeMessageRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.Message, error) {
	for _, message := range r.store.messages {
		if messageMatches(message, specs) {
			copied := *message
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeMessageRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Message, error) {
	var result []*entity.Message
	for _, message := range r.store.messages {
		if messageMatches(message, specs) {
			copied := *message
			result = append(result, &copied)
		}
	}
	if orderBy, ok := findOrderBy(specs); ok && orderBy.Field == "created_at" {
		sort.SliceStable(result, func(i, j int) bool {
			if orderBy.Desc {
				return result[i].CreatedAt.After(result[j].CreatedAt)
			}
			return result[i].CreatedAt.Before(result[j].CreatedAt)
		})
	}
	for _, spec := range specs {
		if limit, ok := spec.(specification.Limit); ok && len(result) > limit.N {
			result = result[:limit.N]
		}
	}
	return result, nil
}

func (r *fakeMessageRepo) FindOneOwned(_ context.Context, id uuid.UUID, userId uint) (*entity.Message, error) {
	for _, message := range r.store.messages {
		if message.Id != id {
			continue
		}
		for _, chat := range r.store.chats {
			if chat.Id == message.ChatId && chat.UserId == userId {
				copied := *message
				return &copied, nil
			}
		}
	}
	return nil, nil
}

func (r *fakeMessageRepo) Count(_ context.Context, specs ...specification.Specification) (int64, error) {
	var n int64
	for _, message := range r.store.messages {
		if messageMatches(message, specs) {
			n++
		}
	}
	return n, nil
}

func messageMatches(message *entity.Message, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if message.Id != s.ID {
				return false
			}
		case specification.ByChatID:
			if message.ChatId != s.ChatID {
				return false
			}
		}
	}
	return true
}

func findOrderBy(specs []specification.Specification) (specification.OrderBy, bool) {
	for _, spec := range specs {
		if orderBy, ok := spec.(specification.OrderBy); ok {
			return orderBy, true
		}
	}
	return specification.OrderBy{}, false
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }
