// Package users содержит HTTP-обработчики ресурса пользователей.
package users

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"cookbook/internal/cookbook/adapters/http/middleware"
	"cookbook/internal/cookbook/adapters/http/respond"
	"cookbook/internal/cookbook/app"
	"cookbook/internal/cookbook/app/dto"
	"cookbook/internal/cookbook/ports/services"
	"cookbook/pkg/logger"
)

// Константы сообщений для логирования.
const (
	LogHandlerListUsers  = "handling list users request"
	LogHandlerGetUser    = "handling get user request"
	LogHandlerCreateUser = "handling create user request"
	LogHandlerUpdateUser = "handling update user request"
	LogHandlerDeleteUser = "handling delete user request"
)

// Константы сообщений ответов.
const (
	MsgUserNotFound  = "User not found"
	MsgUserDeleted   = "User deleted successfully"
	MsgErrorOccurred = "An error occurred"
	MsgServerError   = "Server error"
)

// Handler обработчик HTTP-запросов ресурса пользователей.
type Handler struct {
	userService services.UserService
	responder   *respond.Responder
}

// NewHandler создает новый экземпляр обработчика пользователей.
func NewHandler(userService services.UserService, responder *respond.Responder) *Handler {
	return &Handler{
		userService: userService,
		responder:   responder,
	}
}

// List обрабатывает запрос на получение всех пользователей.
func (h *Handler) List(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.List"))
	log.Debug(requestCtx, LogHandlerListUsers)

	users, err := h.userService.List(requestCtx)
	if err != nil {
		log.Error(requestCtx, "failed to list users", zap.Error(err))
		return h.handleError(ctx, err)
	}

	if err := ctx.JSON(users); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// Get обрабатывает запрос на получение пользователя по ID.
func (h *Handler) Get(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.Get"))
	log.Debug(requestCtx, LogHandlerGetUser)

	user, err := h.userService.Get(requestCtx, ctx.Params("userId"))
	if err != nil {
		log.Error(requestCtx, "failed to get user", zap.Error(err))
		return h.handleError(ctx, err)
	}

	if err := ctx.JSON(user); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// Create обрабатывает запрос на создание нового пользователя.
func (h *Handler) Create(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.Create"))
	log.Debug(requestCtx, LogHandlerCreateUser)

	var payload dto.UserPayload
	if err := ctx.Bind().Body(&payload); err != nil {
		log.Error(requestCtx, "invalid request body", zap.Error(err))
		return respond.Message(ctx, fiber.StatusBadRequest, MsgErrorOccurred)
	}

	user, err := h.userService.Create(requestCtx, &payload)
	if err != nil {
		log.Error(requestCtx, "failed to create user", zap.Error(err))
		return h.handleError(ctx, err)
	}

	ctx.Set(fiber.HeaderLocation, "/"+user.ID.Hex())
	if err := ctx.Status(fiber.StatusCreated).JSON(user); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// Update обрабатывает запрос на полное обновление пользователя.
func (h *Handler) Update(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.Update"))
	log.Debug(requestCtx, LogHandlerUpdateUser)

	var payload dto.UserPayload
	if err := ctx.Bind().Body(&payload); err != nil {
		log.Error(requestCtx, "invalid request body", zap.Error(err))
		return respond.Message(ctx, fiber.StatusBadRequest, MsgErrorOccurred)
	}

	user, err := h.userService.Update(requestCtx, ctx.Params("userId"), &payload)
	if err != nil {
		log.Error(requestCtx, "failed to update user", zap.Error(err))
		return h.handleError(ctx, err)
	}

	if err := ctx.JSON(user); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// Delete обрабатывает запрос на удаление пользователя.
func (h *Handler) Delete(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.Delete"))
	log.Debug(requestCtx, LogHandlerDeleteUser)

	if err := h.userService.Delete(requestCtx, ctx.Params("userId")); err != nil {
		log.Error(requestCtx, "failed to delete user", zap.Error(err))
		return h.handleError(ctx, err)
	}

	return respond.Message(ctx, fiber.StatusOK, MsgUserDeleted)
}

// handleError сопоставляет ошибки бизнес-логики с HTTP-статусами.
func (h *Handler) handleError(ctx fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, app.ErrUserNotFound):
		return respond.Message(ctx, fiber.StatusNotFound, MsgUserNotFound)
	case errors.Is(err, app.ErrInvalidID):
		return respond.Message(ctx, fiber.StatusBadRequest, MsgErrorOccurred)
	}

	var validationErr *app.ValidationError
	if errors.As(err, &validationErr) {
		return h.responder.Error(ctx, fiber.StatusBadRequest,
			"Invalid user data: "+validationErr.Error(), validationErr)
	}

	return h.responder.Error(ctx, fiber.StatusInternalServerError, MsgServerError, err)
}
