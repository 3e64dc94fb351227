package bootstrap

import (
	"log"

	"fin-jurist-be/internal/config"
	"fin-jurist-be/internal/controller"
	"fin-jurist-be/internal/pkg/logger"
	"fin-jurist-be/internal/pkg/serverutils"
	"fin-jurist-be/internal/repository/unitofwork"
	"fin-jurist-be/internal/service"
	"fin-jurist-be/pkg/advisor"
	"fin-jurist-be/pkg/extract"
	"fin-jurist-be/pkg/llm/factory"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController    controller.IAuthController
	ChatController    controller.IChatController
	MessageController controller.IMessageController
	FileController    controller.IFileController

	// Shared middleware
	AuthMiddleware fiber.Handler

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. LLM provider and advisory engine
	llmBaseURL, llmModel := cfg.Ai.BaseURL, cfg.Ai.Model
	if cfg.Ai.Provider == "ollama" {
		llmBaseURL, llmModel = cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaModel
	}
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.Provider,
		llmBaseURL,
		cfg.Ai.APIKey,
		llmModel,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.Provider, llmModel)

	engine := advisor.NewEngine(llmProvider, sysLogger)

	transcriber := extract.NewTranscriber(
		cfg.Speech.BaseURL,
		cfg.Speech.APIKey,
		cfg.Speech.Model,
		cfg.Speech.Language,
	)

	// 3. Services
	authService := service.NewAuthService(uowFactory, cfg.Auth, sysLogger)
	chatService := service.NewChatService(uowFactory)
	messageService := service.NewMessageService(uowFactory, engine)
	advisoryService := service.NewAdvisoryService(engine)
	fileService := service.NewFileService(engine, transcriber, cfg.App.UploadDir, sysLogger)

	// 4. Auth middleware bound to live user lookups
	authMiddleware := serverutils.NewJwtMiddleware(cfg.Auth.JwtSecret, authService.UserExists)

	return &Container{
		AuthController:    controller.NewAuthController(authService),
		ChatController:    controller.NewChatController(chatService),
		MessageController: controller.NewMessageController(messageService, advisoryService),
		FileController:    controller.NewFileController(fileService),
		AuthMiddleware:    authMiddleware,
		Logger:            sysLogger,
	}
}
