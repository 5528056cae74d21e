package services

import (
	"context"

	"cookbook/internal/cookbook/app/dto"
	"cookbook/internal/cookbook/domain/entities"
)

// RecipeService определяет операции CRUD над рецептами в пределах владельца.
type RecipeService interface {
	List(ctx context.Context, userID string) ([]*entities.Recipe, error)
	Get(ctx context.Context, userID, recipeID string) (*entities.Recipe, error)
	Create(ctx context.Context, userID string, payload *dto.RecipePayload) (*entities.Recipe, error)
	Update(ctx context.Context, userID, recipeID string, payload *dto.RecipePayload) (*entities.Recipe, error)
	Delete(ctx context.Context, userID, recipeID string) error
}
