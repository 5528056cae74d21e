// Package services defines application service interfaces consumed by the HTTP layer.
package services

import (
	"context"

	"cookbook/internal/cookbook/app/dto"
	"cookbook/internal/cookbook/domain/entities"
)

// UserService определяет операции CRUD над пользователями.
type UserService interface {
	List(ctx context.Context) ([]*entities.User, error)
	Get(ctx context.Context, id string) (*entities.User, error)
	Create(ctx context.Context, payload *dto.UserPayload) (*entities.User, error)
	Update(ctx context.Context, id string, payload *dto.UserPayload) (*entities.User, error)
	Delete(ctx context.Context, id string) error
}
