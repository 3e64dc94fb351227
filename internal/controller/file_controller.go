package controller

import (
	"fin-jurist-be/internal/dto"
	"fin-jurist-be/internal/pkg/serverutils"
	"fin-jurist-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IFileController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	Upload(ctx *fiber.Ctx) error
	TextToSpeech(ctx *fiber.Ctx) error
}

type fileController struct {
	fileService service.IFileService
}

func NewFileController(fileService service.IFileService) IFileController {
	return &fileController{
		fileService: fileService,
	}
}

func (c *fileController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/files")
	h.Use(auth)
	h.Post("/upload", c.Upload)
	h.Post("/text-to-speech", c.TextToSpeech)
}

func (c *fileController) Upload(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return serverutils.BadRequest("No file provided")
	}

	res, err := c.fileService.Upload(ctx.Context(), fileHeader)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("File processed", res))
}

func (c *fileController) TextToSpeech(ctx *fiber.Ctx) error {
	var req dto.TextToSpeechRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.fileService.TextToSpeech(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Text-to-speech request accepted", res))
}
