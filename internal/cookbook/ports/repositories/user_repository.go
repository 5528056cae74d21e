// Package repositories defines repository interfaces for the cookbook service.
package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"cookbook/internal/cookbook/domain/entities"
)

// UserRepository определяет интерфейс для работы с коллекцией пользователей.
// Методы поиска возвращают nil без ошибки, если документ не найден.
type UserRepository interface {
	FindAll(ctx context.Context) ([]*entities.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*entities.User, error)
	Insert(ctx context.Context, user *entities.User) error
	Replace(ctx context.Context, user *entities.User) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
