package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"fin-jurist-be/internal/dto"
	"fin-jurist-be/internal/entity"
	"fin-jurist-be/internal/pkg/serverutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChatFixture() (IChatService, *fakeStore) {
	store := newFakeStore()
	svc := NewChatService(&fakeFactory{store: store})
	return svc, store
}

func seedChat(store *fakeStore, userId uint, title string, createdAt time.Time) *entity.Chat {
	chat := &entity.Chat{
		Id:        uuid.New(),
		UserId:    userId,
		Title:     title,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	store.chats = append(store.chats, chat)
	return chat
}

func assertNotFound(t *testing.T, err error, message string) {
	t.Helper()
	var appErr *serverutils.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 404, appErr.Code)
	assert.Equal(t, message, appErr.Message)
}

func TestChatCreate(t *testing.T) {
	svc, store := newChatFixture()

	res, err := svc.Create(context.Background(), 1, &dto.CreateChatRequest{Title: "Loan questions"})
	require.NoError(t, err)

	assert.Equal(t, "Loan questions", res.Title)
	assert.Equal(t, uint(1), res.UserId)
	assert.NotEqual(t, uuid.Nil, res.Id)
	assert.Len(t, store.chats, 1)
}

func TestChatGetAllReturnsOwnChatsNewestFirst(t *testing.T) {
	svc, store := newChatFixture()
	base := time.Now()
	older := seedChat(store, 1, "older", base.Add(-time.Hour))
	newer := seedChat(store, 1, "newer", base)
	seedChat(store, 2, "foreign", base)

	res, err := svc.GetAll(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, res, 2)
	assert.Equal(t, newer.Id, res[0].Id)
	assert.Equal(t, older.Id, res[1].Id)
}

func TestChatShowHidesForeignChats(t *testing.T) {
	svc, store := newChatFixture()
	foreign := seedChat(store, 2, "foreign", time.Now())

	_, err := svc.Show(context.Background(), 1, foreign.Id)
	assertNotFound(t, err, "Chat not found")
}

func TestChatUpdateTitle(t *testing.T) {
	svc, store := newChatFixture()
	chat := seedChat(store, 1, "old title", time.Now().Add(-time.Minute))

	newTitle := "new title"
	res, err := svc.Update(context.Background(), 1, &dto.UpdateChatRequest{
		Id:    chat.Id,
		Title: &newTitle,
	})
	require.NoError(t, err)

	assert.Equal(t, "new title", res.Title)
	assert.True(t, res.UpdatedAt.After(chat.UpdatedAt))
	assert.Equal(t, "new title", store.chats[0].Title)
}

func TestChatDeleteCascadesMessages(t *testing.T) {
	svc, store := newChatFixture()
	chat := seedChat(store, 1, "doomed", time.Now())
	keep := seedChat(store, 1, "kept", time.Now())

	store.messages = append(store.messages,
		&entity.Message{Id: uuid.New(), ChatId: chat.Id, Content: "a", Role: entity.MessageRoleUser},
		&entity.Message{Id: uuid.New(), ChatId: chat.Id, Content: "b", Role: entity.MessageRoleAssistant},
		&entity.Message{Id: uuid.New(), ChatId: keep.Id, Content: "c", Role: entity.MessageRoleUser},
	)

	err := svc.Delete(context.Background(), 1, chat.Id)
	require.NoError(t, err)

	require.Len(t, store.chats, 1)
	assert.Equal(t, keep.Id, store.chats[0].Id)
	require.Len(t, store.messages, 1)
	assert.Equal(t, keep.Id, store.messages[0].ChatId)

	// Delete runs inside a transaction.
	assert.Equal(t, 1, store.beginCount)
	assert.Equal(t, 1, store.commitCount)
}

func TestChatDeleteForeignChatIsNotFound(t *testing.T) {
	svc, store := newChatFixture()
	foreign := seedChat(store, 2, "foreign", time.Now())

	err := svc.Delete(context.Background(), 1, foreign.Id)
	assertNotFound(t, err, "Chat not found")
	assert.Len(t, store.chats, 1)
}
