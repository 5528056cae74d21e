package http_test

import (
	"context"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/mock"

	httpServer "cookbook/internal/cookbook/adapters/http"
	"cookbook/internal/cookbook/adapters/http/respond"
	"cookbook/internal/cookbook/app/dto"
	"cookbook/internal/cookbook/domain/entities"
)

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) List(ctx context.Context) ([]*entities.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.User), args.Error(1)
}

func (m *mockUserService) Get(ctx context.Context, id string) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserService) Create(ctx context.Context, payload *dto.UserPayload) (*entities.User, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserService) Update(ctx context.Context, id string, payload *dto.UserPayload) (*entities.User, error) {
	args := m.Called(ctx, id, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockRecipeService struct {
	mock.Mock
}

func (m *mockRecipeService) List(ctx context.Context, userID string) ([]*entities.Recipe, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Recipe), args.Error(1)
}

func (m *mockRecipeService) Get(ctx context.Context, userID, recipeID string) (*entities.Recipe, error) {
	args := m.Called(ctx, userID, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Recipe), args.Error(1)
}

func (m *mockRecipeService) Create(ctx context.Context, userID string, payload *dto.RecipePayload) (*entities.Recipe, error) {
	args := m.Called(ctx, userID, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Recipe), args.Error(1)
}

func (m *mockRecipeService) Update(ctx context.Context, userID, recipeID string, payload *dto.RecipePayload) (*entities.Recipe, error) {
	args := m.Called(ctx, userID, recipeID, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Recipe), args.Error(1)
}

func (m *mockRecipeService) Delete(ctx context.Context, userID, recipeID string) error {
	args := m.Called(ctx, userID, recipeID)
	return args.Error(0)
}

// newTestApp собирает приложение с маршрутизацией поверх мок-сервисов.
func newTestApp(userService *mockUserService, recipeService *mockRecipeService, development bool) *fiber.App {
	app := fiber.New()
	httpServer.SetupRouter(app, userService, recipeService, respond.NewResponder(development))
	return app
}
