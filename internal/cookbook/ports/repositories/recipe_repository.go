package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"cookbook/internal/cookbook/domain/entities"
)

// RecipeRepository определяет интерфейс для работы с коллекцией рецептов.
// Все операции над отдельным рецептом ограничены его владельцем.
type RecipeRepository interface {
	FindByOwner(ctx context.Context, userID primitive.ObjectID) ([]*entities.Recipe, error)
	FindByID(ctx context.Context, id, userID primitive.ObjectID) (*entities.Recipe, error)
	Insert(ctx context.Context, recipe *entities.Recipe) error
	Replace(ctx context.Context, recipe *entities.Recipe) error
	Delete(ctx context.Context, id, userID primitive.ObjectID) error
}
