package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"fin-jurist-be/internal/entity"
	"fin-jurist-be/internal/repository/specification"
	"fin-jurist-be/internal/repository/unitofwork"
	"fin-jurist-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.ChatRepository())
	assert.NotNil(t, uow.MessageRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)

	t.Run("Chat round trip", func(t *testing.T) {
		ctx := context.Background()

		user := &entity.User{
			Email:        "integration-" + uuid.NewString() + "@example.com",
			PasswordHash: "x",
			FullName:     "Integration Probe",
			IsActive:     true,
			CreatedAt:    time.Now(),
		}
		require.NoError(t, uow.UserRepository().Create(ctx, user))

		chat := &entity.Chat{
			Id:        uuid.New(),
			UserId:    user.Id,
			Title:     "integration chat",
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		require.NoError(t, uow.ChatRepository().Create(ctx, chat))

		loaded, err := uow.ChatRepository().FindOne(ctx,
			specification.ByID{ID: chat.Id},
			specification.OwnedBy{UserID: user.Id},
		)
		require.NoError(t, err)
		require.NotNil(t, loaded)
		assert.Equal(t, "integration chat", loaded.Title)

		// Cleanup
		require.NoError(t, uow.MessageRepository().DeleteByChatId(ctx, chat.Id))
		require.NoError(t, uow.ChatRepository().Delete(ctx, chat.Id))
	})
}
