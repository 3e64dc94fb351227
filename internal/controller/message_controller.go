package controller

import (
	"fin-jurist-be/internal/dto"
	"fin-jurist-be/internal/pkg/serverutils"
	"fin-jurist-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IMessageController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	Send(ctx *fiber.Ctx) error
	GetByChat(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	AnalyzeContract(ctx *fiber.Ctx) error
	DetectFraud(ctx *fiber.Ctx) error
	GenerateTemplate(ctx *fiber.Ctx) error
	FinancialEducation(ctx *fiber.Ctx) error
}

type messageController struct {
	messageService  service.IMessageService
	advisoryService service.IAdvisoryService
}

func NewMessageController(messageService service.IMessageService, advisoryService service.IAdvisoryService) IMessageController {
	return &messageController{
		messageService:  messageService,
		advisoryService: advisoryService,
	}
}

func (c *messageController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/messages")
	h.Use(auth)
	h.Post("", c.Send)
	h.Post("/analyze-contract", c.AnalyzeContract)
	h.Post("/detect-fraud", c.DetectFraud)
	h.Post("/generate-template", c.GenerateTemplate)
	h.Post("/financial-education", c.FinancialEducation)
	h.Get("/:chatId", c.GetByChat)
	h.Delete("/:id", c.Delete)
}

func (c *messageController) Send(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromCtx(ctx)

	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.messageService.Send(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Message sent", res))
}

func (c *messageController) GetByChat(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromCtx(ctx)

	chatId, err := uuid.Parse(ctx.Params("chatId"))
	if err != nil {
		return serverutils.BadRequest("Invalid chat id")
	}

	res, err := c.messageService.GetByChat(ctx.Context(), userId, chatId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get messages", res))
}

func (c *messageController) Delete(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromCtx(ctx)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.BadRequest("Invalid message id")
	}

	if err := c.messageService.Delete(ctx.Context(), userId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Message deleted", nil))
}

func (c *messageController) AnalyzeContract(ctx *fiber.Ctx) error {
	var req dto.AnalyzeContractRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res := c.advisoryService.AnalyzeContract(ctx.Context(), &req)
	return ctx.JSON(serverutils.SuccessResponse("Contract analyzed", res))
}

func (c *messageController) DetectFraud(ctx *fiber.Ctx) error {
	var req dto.DetectFraudRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res := c.advisoryService.DetectFraud(ctx.Context(), &req)
	return ctx.JSON(serverutils.SuccessResponse("Fraud analysis complete", res))
}

func (c *messageController) GenerateTemplate(ctx *fiber.Ctx) error {
	var req dto.GenerateTemplateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res := c.advisoryService.GenerateTemplate(ctx.Context(), &req)
	return ctx.JSON(serverutils.SuccessResponse("Template generated", res))
}

func (c *messageController) FinancialEducation(ctx *fiber.Ctx) error {
	var req dto.FinancialEducationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res := c.advisoryService.FinancialEducation(ctx.Context(), &req)
	return ctx.JSON(serverutils.SuccessResponse("Education content generated", res))
}
