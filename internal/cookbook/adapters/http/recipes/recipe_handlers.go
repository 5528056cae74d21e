// Package recipes содержит HTTP-обработчики ресурса рецептов,
// вложенного под пользователем-владельцем.
package recipes

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
	LogHandlerListRecipes  = "handling list recipes request"
	LogHandlerGetRecipe    = "handling get recipe request"
	LogHandlerCreateRecipe = "handling create recipe request"
	LogHandlerUpdateRecipe = "handling update recipe request"
	LogHandlerDeleteRecipe = "handling delete recipe request"
)

// Константы сообщений ответов.
const (
	MsgUserNotFound   = "User not found"
	MsgRecipeNotFound = "Recipe not found"
	MsgRecipeDeleted  = "Recipe deleted successfully"
	MsgErrorOccurred  = "An error occurred"
	MsgServerError    = "Server error"
)

// Handler обработчик HTTP-запросов ресурса рецептов.
type Handler struct {
	recipeService services.RecipeService
	responder     *respond.Responder
}

// NewHandler создает новый экземпляр обработчика рецептов.
func NewHandler(recipeService services.RecipeService, responder *respond.Responder) *Handler {
	return &Handler{
		recipeService: recipeService,
		responder:     responder,
	}
}

// List обрабатывает запрос на получение всех рецептов пользователя.
func (h *Handler) List(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.List"))
	log.Debug(requestCtx, LogHandlerListRecipes)

	recipes, err := h.recipeService.List(requestCtx, ctx.Params("userId"))
	if err != nil {
		log.Error(requestCtx, "failed to list recipes", zap.Error(err))
		return h.handleError(ctx, err)
	}

	if err := ctx.JSON(recipes); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// Get обрабатывает запрос на получение рецепта по ID.
func (h *Handler) Get(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.Get"))
	log.Debug(requestCtx, LogHandlerGetRecipe)

	recipe, err := h.recipeService.Get(requestCtx, ctx.Params("userId"), ctx.Params("recipeId"))
	if err != nil {
		log.Error(requestCtx, "failed to get recipe", zap.Error(err))
		return h.handleError(ctx, err)
	}

	if err := ctx.JSON(recipe); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// Create обрабатывает запрос на создание нового рецепта.
func (h *Handler) Create(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.Create"))
	log.Debug(requestCtx, LogHandlerCreateRecipe)

	var payload dto.RecipePayload
	if err := ctx.Bind().Body(&payload); err != nil {
		log.Error(requestCtx, "invalid request body", zap.Error(err))
		return respond.Message(ctx, fiber.StatusBadRequest, MsgErrorOccurred)
	}

	recipe, err := h.recipeService.Create(requestCtx, ctx.Params("userId"), &payload)
	if err != nil {
		log.Error(requestCtx, "failed to create recipe", zap.Error(err))
		return h.handleError(ctx, err)
	}

	ctx.Set(fiber.HeaderLocation, "/"+recipe.ID.Hex())
	if err := ctx.Status(fiber.StatusCreated).JSON(recipe); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// Update обрабатывает запрос на полное обновление рецепта.
func (h *Handler) Update(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.Update"))
	log.Debug(requestCtx, LogHandlerUpdateRecipe)

	var payload dto.RecipePayload
	if err := ctx.Bind().Body(&payload); err != nil {
		log.Error(requestCtx, "invalid request body", zap.Error(err))
		return respond.Message(ctx, fiber.StatusBadRequest, MsgErrorOccurred)
	}

	recipe, err := h.recipeService.Update(requestCtx, ctx.Params("userId"), ctx.Params("recipeId"), &payload)
	if err != nil {
		log.Error(requestCtx, "failed to update recipe", zap.Error(err))
		return h.handleError(ctx, err)
	}

	if err := ctx.JSON(recipe); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// Delete обрабатывает запрос на удаление рецепта.
func (h *Handler) Delete(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.Delete"))
	log.Debug(requestCtx, LogHandlerDeleteRecipe)

	if err := h.recipeService.Delete(requestCtx, ctx.Params("userId"), ctx.Params("recipeId")); err != nil {
		log.Error(requestCtx, "failed to delete recipe", zap.Error(err))
		return h.handleError(ctx, err)
	}

	return respond.Message(ctx, fiber.StatusOK, MsgRecipeDeleted)
}

// handleError сопоставляет ошибки бизнес-логики с HTTP-статусами.
func (h *Handler) handleError(ctx fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, app.ErrUserNotFound):
		return respond.Message(ctx, fiber.StatusNotFound, MsgUserNotFound)
	case errors.Is(err, app.ErrRecipeNotFound):
		return respond.Message(ctx, fiber.StatusNotFound, MsgRecipeNotFound)
	case errors.Is(err, app.ErrInvalidID):
		return respond.Message(ctx, fiber.StatusBadRequest, MsgErrorOccurred)
	}

	var validationErr *app.ValidationError
	if errors.As(err, &validationErr) {
		return h.responder.Error(ctx, fiber.StatusBadRequest,
			"Invalid recipe data: "+validationErr.Error(), validationErr)
	}

	return h.responder.Error(ctx, fiber.StatusInternalServerError, MsgServerError, err)
}
