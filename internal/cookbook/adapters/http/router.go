// Package http содержит компоненты для HTTP сервера.
package http

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"cookbook/internal/cookbook/adapters/http/middleware"
	"cookbook/internal/cookbook/adapters/http/recipes"
	"cookbook/internal/cookbook/adapters/http/respond"
	"cookbook/internal/cookbook/adapters/http/users"
	"cookbook/internal/cookbook/ports/services"
)

// SetupRouter настраивает маршрутизацию для HTTP сервера.
// Ресурс пользователей смонтирован на /api/users, рецепты вложены под владельцем.
func SetupRouter(app *fiber.App, userService services.UserService, recipeService services.RecipeService, responder *respond.Responder) {
	userHandler := users.NewHandler(userService, responder)
	recipeHandler := recipes.NewHandler(recipeService, responder)

	// Middleware для всех запросов.
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	app.Get("/health", func(c fiber.Ctx) error {
		if err := c.JSON(fiber.Map{"status": "ok"}); err != nil {
			return fmt.Errorf("error sending response: %w", err)
		}
		return nil
	})

	userRoutes := app.Group("/api/users")
	userRoutes.Get("/", userHandler.List)
	userRoutes.Post("/", userHandler.Create)
	userRoutes.Get("/:userId", userHandler.Get)
	userRoutes.Put("/:userId", userHandler.Update)
	userRoutes.Delete("/:userId", userHandler.Delete)

	recipeRoutes := userRoutes.Group("/:userId/recipes")
	recipeRoutes.Get("/", recipeHandler.List)
	recipeRoutes.Post("/", recipeHandler.Create)
	recipeRoutes.Get("/:recipeId", recipeHandler.Get)
	recipeRoutes.Put("/:recipeId", recipeHandler.Update)
	recipeRoutes.Delete("/:recipeId", recipeHandler.Delete)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		if err := c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Route not found",
		}); err != nil {
			return fmt.Errorf("error sending response: %w", err)
		}
		return nil
	})
}
