package app

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"cookbook/internal/cookbook/app/dto"
	"cookbook/internal/cookbook/domain/entities"
	"cookbook/internal/cookbook/ports/repositories"
)

// UserUseCase представляет собой бизнес-логику работы с пользователями.
type UserUseCase struct {
	users repositories.UserRepository
}

// NewUserUseCase создает новый экземпляр UserUseCase.
func NewUserUseCase(users repositories.UserRepository) *UserUseCase {
	return &UserUseCase{users: users}
}

// List возвращает всех пользователей без фильтрации и пагинации.
func (uc *UserUseCase) List(ctx context.Context) ([]*entities.User, error) {
	users, err := uc.users.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// Get возвращает пользователя по идентификатору.
func (uc *UserUseCase) Get(ctx context.Context, id string) (*entities.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidID, id)
	}

	user, err := uc.users.FindByID(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return user, nil
}

// Create проверяет запись, создает нового пользователя и сохраняет его.
func (uc *UserUseCase) Create(ctx context.Context, payload *dto.UserPayload) (*entities.User, error) {
	if err := validatePayload(payload); err != nil {
		return nil, err
	}

	user := entities.NewUser(payload.Name, payload.LoginName, payload.Password, payload.Gender,
		payload.Role, payload.Picture, payload.Description, payload.Status)

	if err := uc.users.Insert(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Update полностью заменяет документ пользователя.
// Идентификатор и registryDate сохраняются из существующей записи,
// modifyDate устанавливается в текущий момент.
func (uc *UserUseCase) Update(ctx context.Context, id string, payload *dto.UserPayload) (*entities.User, error) {
	if err := validatePayload(payload); err != nil {
		return nil, err
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidID, id)
	}

	existing, err := uc.users.FindByID(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if existing == nil {
		return nil, ErrUserNotFound
	}

	user := entities.NewUser(payload.Name, payload.LoginName, payload.Password, payload.Gender,
		payload.Role, payload.Picture, payload.Description, payload.Status)
	user.ID = existing.ID
	user.RegistryDate = existing.RegistryDate
	user.ModifyDate = time.Now()

	if err := uc.users.Replace(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

// Delete удаляет пользователя после проверки его существования.
func (uc *UserUseCase) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidID, id)
	}

	existing, err := uc.users.FindByID(ctx, oid)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if existing == nil {
		return ErrUserNotFound
	}

	if err := uc.users.Delete(ctx, oid); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}
