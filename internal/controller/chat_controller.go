package controller

import (
	"fin-jurist-be/internal/dto"
	"fin-jurist-be/internal/pkg/serverutils"
	"fin-jurist-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	Create(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{
		chatService: chatService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/chats")
	h.Use(auth)
	h.Post("", c.Create)
	h.Get("", c.GetAll)
	h.Get("/:id", c.Show)
	h.Put("/:id", c.Update)
	h.Delete("/:id", c.Delete)
}

func (c *chatController) Create(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromCtx(ctx)

	var req dto.CreateChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Chat created", res))
}

func (c *chatController) GetAll(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromCtx(ctx)

	res, err := c.chatService.GetAll(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get chats", res))
}

func (c *chatController) Show(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromCtx(ctx)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.BadRequest("Invalid chat id")
	}

	res, err := c.chatService.Show(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get chat", res))
}

func (c *chatController) Update(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromCtx(ctx)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.BadRequest("Invalid chat id")
	}

	var req dto.UpdateChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Invalid request body")
	}
	req.Id = id

	res, err := c.chatService.Update(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Chat updated", res))
}

func (c *chatController) Delete(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromCtx(ctx)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.BadRequest("Invalid chat id")
	}

	if err := c.chatService.Delete(ctx.Context(), userId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Chat deleted", nil))
}
