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

// RecipeUseCase представляет собой бизнес-логику работы с рецептами.
// Каждая операция сначала убеждается, что владелец существует.
type RecipeUseCase struct {
	users   repositories.UserRepository
	recipes repositories.RecipeRepository
}

// NewRecipeUseCase создает новый экземпляр RecipeUseCase.
func NewRecipeUseCase(users repositories.UserRepository, recipes repositories.RecipeRepository) *RecipeUseCase {
	return &RecipeUseCase{users: users, recipes: recipes}
}

// ownerID разбирает идентификатор владельца и проверяет его существование.
func (uc *RecipeUseCase) ownerID(ctx context.Context, userID string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %s", ErrInvalidID, userID)
	}

	owner, err := uc.users.FindByID(ctx, oid)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to get user: %w", err)
	}
	if owner == nil {
		return primitive.NilObjectID, ErrUserNotFound
	}

	return oid, nil
}

// List возвращает все рецепты пользователя.
// Отсутствие рецептов не является ошибкой: возвращается пустой срез.
func (uc *RecipeUseCase) List(ctx context.Context, userID string) ([]*entities.Recipe, error) {
	oid, err := uc.ownerID(ctx, userID)
	if err != nil {
		return nil, err
	}

	recipes, err := uc.recipes.FindByOwner(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	return recipes, nil
}

// Get возвращает рецепт пользователя по идентификатору.
func (uc *RecipeUseCase) Get(ctx context.Context, userID, recipeID string) (*entities.Recipe, error) {
	oid, err := uc.ownerID(ctx, userID)
	if err != nil {
		return nil, err
	}

	rid, err := primitive.ObjectIDFromHex(recipeID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidID, recipeID)
	}

	recipe, err := uc.recipes.FindByID(ctx, rid, oid)
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	if recipe == nil {
		return nil, ErrRecipeNotFound
	}

	return recipe, nil
}

// Create проверяет запись, создает рецепт для подтвержденного владельца и сохраняет его.
func (uc *RecipeUseCase) Create(ctx context.Context, userID string, payload *dto.RecipePayload) (*entities.Recipe, error) {
	if err := validatePayload(payload); err != nil {
		return nil, err
	}

	oid, err := uc.ownerID(ctx, userID)
	if err != nil {
		return nil, err
	}

	recipe := entities.NewRecipe(oid, payload.Name, payload.ShortDesc, payload.FullDesc,
		payload.TimeToCook, payload.Ingredients, payload.Picture, payload.Tags)

	if err := uc.recipes.Insert(ctx, recipe); err != nil {
		return nil, fmt.Errorf("failed to create recipe: %w", err)
	}

	return recipe, nil
}

// Update полностью заменяет документ рецепта.
// Идентификатор, владелец и postDate сохраняются из существующей записи,
// modifyDate устанавливается в текущий момент.
func (uc *RecipeUseCase) Update(ctx context.Context, userID, recipeID string, payload *dto.RecipePayload) (*entities.Recipe, error) {
	if err := validatePayload(payload); err != nil {
		return nil, err
	}

	oid, err := uc.ownerID(ctx, userID)
	if err != nil {
		return nil, err
	}

	rid, err := primitive.ObjectIDFromHex(recipeID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidID, recipeID)
	}

	existing, err := uc.recipes.FindByID(ctx, rid, oid)
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	if existing == nil {
		return nil, ErrRecipeNotFound
	}

	recipe := entities.NewRecipe(oid, payload.Name, payload.ShortDesc, payload.FullDesc,
		payload.TimeToCook, payload.Ingredients, payload.Picture, payload.Tags)
	recipe.ID = existing.ID
	recipe.PostDate = existing.PostDate
	recipe.ModifyDate = time.Now()

	if err := uc.recipes.Replace(ctx, recipe); err != nil {
		return nil, fmt.Errorf("failed to update recipe: %w", err)
	}

	return recipe, nil
}

// Delete удаляет рецепт пользователя.
// После подтверждения владельца удаление выполняется безусловно:
// отсутствие рецепта не считается ошибкой.
func (uc *RecipeUseCase) Delete(ctx context.Context, userID, recipeID string) error {
	oid, err := uc.ownerID(ctx, userID)
	if err != nil {
		return err
	}

	rid, err := primitive.ObjectIDFromHex(recipeID)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidID, recipeID)
	}

	if err := uc.recipes.Delete(ctx, rid, oid); err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}

	return nil
}
