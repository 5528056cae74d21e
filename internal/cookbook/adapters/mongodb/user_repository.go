// Package mongodb provides MongoDB implementations of repositories.
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

// Имена коллекций документной базы.
const (
	usersCollection   = "users"
	recipesCollection = "recipes"
)

// ErrNotApplied is returned when the store acknowledges a write
// that matched no document.
var ErrNotApplied = errors.New("write not applied to any document")

// UserRepository реализует интерфейс repositories.UserRepository.
type UserRepository struct {
	col *mongo.Collection
}

// NewUserRepository создает новый репозиторий пользователей.
func NewUserRepository(db *mongo.Database) repositories.UserRepository {
	return &UserRepository{col: db.Collection(usersCollection)}
}

// FindAll возвращает всех пользователей без фильтрации.
func (r *UserRepository) FindAll(ctx context.Context) ([]*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", "UserRepository.FindAll"))
	log.Debug(ctx, "listing users")

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		log.Error(ctx, "failed to list users", zap.Error(err))
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]*entities.User, 0)
	if err := cur.All(ctx, &users); err != nil {
		log.Error(ctx, "failed to decode users", zap.Error(err))
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}

	return users, nil
}

// FindByID получает пользователя по ID. Возвращает nil, если документ не найден.
func (r *UserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", "UserRepository.FindByID"))
	log.Debug(ctx, "getting user", zap.String("userID", id.Hex()))

	var user entities.User
	err := r.col.FindOne(ctx, bson.M{"id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			log.Debug(ctx, "user not found", zap.String("userID", id.Hex()))
			return nil, nil
		}
		log.Error(ctx, "failed to get user", zap.Error(err))
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// Insert сохраняет нового пользователя.
func (r *UserRepository) Insert(ctx context.Context, user *entities.User) error {
	log := logger.Log(ctx).With(zap.String("method", "UserRepository.Insert"))
	log.Debug(ctx, "inserting user", zap.String("userID", user.ID.Hex()))

	if _, err := r.col.InsertOne(ctx, user); err != nil {
		log.Error(ctx, "failed to insert user", zap.Error(err))
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// Replace полностью заменяет документ пользователя.
func (r *UserRepository) Replace(ctx context.Context, user *entities.User) error {
	log := logger.Log(ctx).With(zap.String("method", "UserRepository.Replace"))
	log.Debug(ctx, "replacing user", zap.String("userID", user.ID.Hex()))

	res, err := r.col.ReplaceOne(ctx, bson.M{"id": user.ID}, user)
	if err != nil {
		log.Error(ctx, "failed to replace user", zap.Error(err))
		return fmt.Errorf("failed to replace user: %w", err)
	}

	if res.MatchedCount == 0 {
		log.Debug(ctx, "user not matched by replace", zap.String("userID", user.ID.Hex()))
		return ErrNotApplied
	}

	return nil
}

// Delete физически удаляет пользователя.
func (r *UserRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	log := logger.Log(ctx).With(zap.String("method", "UserRepository.Delete"))
	log.Debug(ctx, "deleting user", zap.String("userID", id.Hex()))

	if _, err := r.col.DeleteOne(ctx, bson.M{"id": id}); err != nil {
		log.Error(ctx, "failed to delete user", zap.Error(err))
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}
