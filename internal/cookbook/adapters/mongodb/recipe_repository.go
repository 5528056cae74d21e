package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"cookbook/internal/cookbook/domain/entities"
	"cookbook/internal/cookbook/ports/repositories"
	"cookbook/pkg/logger"
)

// RecipeRepository реализует интерфейс repositories.RecipeRepository.
type RecipeRepository struct {
	col *mongo.Collection
}

// NewRecipeRepository создает новый репозиторий рецептов.
func NewRecipeRepository(db *mongo.Database) repositories.RecipeRepository {
	return &RecipeRepository{col: db.Collection(recipesCollection)}
}

// FindByOwner возвращает все рецепты пользователя.
// При отсутствии рецептов возвращается пустой срез, не nil.
func (r *RecipeRepository) FindByOwner(ctx context.Context, userID primitive.ObjectID) ([]*entities.Recipe, error) {
	log := logger.Log(ctx).With(zap.String("method", "RecipeRepository.FindByOwner"))
	log.Debug(ctx, "listing recipes", zap.String("userID", userID.Hex()))

	cur, err := r.col.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		log.Error(ctx, "failed to list recipes", zap.Error(err))
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	recipes := make([]*entities.Recipe, 0)
	if err := cur.All(ctx, &recipes); err != nil {
		log.Error(ctx, "failed to decode recipes", zap.Error(err))
		return nil, fmt.Errorf("failed to decode recipes: %w", err)
	}

	return recipes, nil
}

// FindByID получает рецепт по ID и ID владельца. Возвращает nil, если документ не найден.
func (r *RecipeRepository) FindByID(ctx context.Context, id, userID primitive.ObjectID) (*entities.Recipe, error) {
	log := logger.Log(ctx).With(zap.String("method", "RecipeRepository.FindByID"))
	log.Debug(ctx, "getting recipe", zap.String("recipeID", id.Hex()), zap.String("userID", userID.Hex()))

	var recipe entities.Recipe
	err := r.col.FindOne(ctx, bson.M{"id": id, "userId": userID}).Decode(&recipe)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			log.Debug(ctx, "recipe not found", zap.String("recipeID", id.Hex()))
			return nil, nil
		}
		log.Error(ctx, "failed to get recipe", zap.Error(err))
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}

	return &recipe, nil
}

// Insert сохраняет новый рецепт.
func (r *RecipeRepository) Insert(ctx context.Context, recipe *entities.Recipe) error {
	log := logger.Log(ctx).With(zap.String("method", "RecipeRepository.Insert"))
	log.Debug(ctx, "inserting recipe", zap.String("recipeID", recipe.ID.Hex()))

	if _, err := r.col.InsertOne(ctx, recipe); err != nil {
		log.Error(ctx, "failed to insert recipe", zap.Error(err))
		return fmt.Errorf("failed to insert recipe: %w", err)
	}

	return nil
}

// Replace полностью заменяет документ рецепта в пределах его владельца.
func (r *RecipeRepository) Replace(ctx context.Context, recipe *entities.Recipe) error {
	log := logger.Log(ctx).With(zap.String("method", "RecipeRepository.Replace"))
	log.Debug(ctx, "replacing recipe", zap.String("recipeID", recipe.ID.Hex()))

	res, err := r.col.ReplaceOne(ctx, bson.M{"id": recipe.ID, "userId": recipe.UserID}, recipe)
	if err != nil {
		log.Error(ctx, "failed to replace recipe", zap.Error(err))
		return fmt.Errorf("failed to replace recipe: %w", err)
	}

	if res.MatchedCount == 0 {
		log.Debug(ctx, "recipe not matched by replace", zap.String("recipeID", recipe.ID.Hex()))
		return ErrNotApplied
	}

	return nil
}

// Delete физически удаляет рецепт владельца.
// Удаление нулевого числа документов не считается ошибкой.
func (r *RecipeRepository) Delete(ctx context.Context, id, userID primitive.ObjectID) error {
	log := logger.Log(ctx).With(zap.String("method", "RecipeRepository.Delete"))
	log.Debug(ctx, "deleting recipe", zap.String("recipeID", id.Hex()))

	if _, err := r.col.DeleteOne(ctx, bson.M{"id": id, "userId": userID}); err != nil {
		log.Error(ctx, "failed to delete recipe", zap.Error(err))
		return fmt.Errorf("failed to delete recipe: %w", err)
	}

	return nil
}
