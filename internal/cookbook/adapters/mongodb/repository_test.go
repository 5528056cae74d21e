package mongodb_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"cookbook/internal/cookbook/adapters/mongodb"
	"cookbook/internal/cookbook/domain/entities"
)

func TestUserRepositoryFindByID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("decodes the matching document", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mt.DB.Name()+".users", mtest.FirstBatch,
			bson.D{
				{Key: "id", Value: id},
				{Key: "name", Value: "Alice"},
				{Key: "loginName", Value: "alice"},
			}))

		repo := mongodb.NewUserRepository(mt.DB)

		user, err := repo.FindByID(context.Background(), id)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, id, user.ID)
		assert.Equal(t, "Alice", user.Name)
		assert.Equal(t, "alice", user.LoginName)
	})

	mt.Run("missing document is not an error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mt.DB.Name()+".users", mtest.FirstBatch))

		repo := mongodb.NewUserRepository(mt.DB)

		user, err := repo.FindByID(context.Background(), primitive.NewObjectID())
		require.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestUserRepositoryReplace(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("succeeds when a document matched", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1}))

		repo := mongodb.NewUserRepository(mt.DB)
		user := entities.NewUser("Alice", "alice", "secret-password", "female", "user", "", "", "")

		require.NoError(t, repo.Replace(context.Background(), user))
	})

	mt.Run("reports ErrNotApplied when nothing matched", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0}))

		repo := mongodb.NewUserRepository(mt.DB)
		user := entities.NewUser("Alice", "alice", "secret-password", "female", "user", "", "", "")

		err := repo.Replace(context.Background(), user)
		require.ErrorIs(t, err, mongodb.ErrNotApplied)
	})
}

func TestRecipeRepositoryFindByOwner(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns empty slice when the owner has no recipes", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mt.DB.Name()+".recipes", mtest.FirstBatch))

		repo := mongodb.NewRecipeRepository(mt.DB)

		recipes, err := repo.FindByOwner(context.Background(), primitive.NewObjectID())
		require.NoError(t, err)
		require.NotNil(t, recipes)
		assert.Empty(t, recipes)
	})

	mt.Run("decodes the owner's recipes", func(mt *mtest.T) {
		ownerID := primitive.NewObjectID()
		recipeID := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mt.DB.Name()+".recipes", mtest.FirstBatch,
			bson.D{
				{Key: "id", Value: recipeID},
				{Key: "userId", Value: ownerID},
				{Key: "name", Value: "Bread"},
				{Key: "timeToCook", Value: 90.0},
			}))

		repo := mongodb.NewRecipeRepository(mt.DB)

		recipes, err := repo.FindByOwner(context.Background(), ownerID)
		require.NoError(t, err)
		require.Len(t, recipes, 1)
		assert.Equal(t, recipeID, recipes[0].ID)
		assert.Equal(t, ownerID, recipes[0].UserID)
		assert.Equal(t, "Bread", recipes[0].Name)
		assert.InDelta(t, 90.0, recipes[0].TimeToCook, 0.001)
	})
}
