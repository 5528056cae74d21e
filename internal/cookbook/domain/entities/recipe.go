package entities

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Recipe представляет рецепт, принадлежащий пользователю.
type Recipe struct {
	ID          primitive.ObjectID `bson:"id" json:"id"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	Name        string             `bson:"name,omitempty" json:"name,omitempty"`
	ShortDesc   string             `bson:"shortDesc,omitempty" json:"shortDesc,omitempty"`
	FullDesc    string             `bson:"fullDesc,omitempty" json:"fullDesc,omitempty"`
	TimeToCook  float64            `bson:"timeToCook,omitempty" json:"timeToCook,omitempty"`
	Ingredients []any              `bson:"ingredients,omitempty" json:"ingredients,omitempty"`
	Picture     string             `bson:"picture,omitempty" json:"picture,omitempty"`
	Tags        []any              `bson:"tags,omitempty" json:"tags,omitempty"`
	PostDate    time.Time          `bson:"postDate" json:"postDate"`
	ModifyDate  time.Time          `bson:"modifyDate" json:"modifyDate"`
}

// NewRecipe creates a new recipe owned by the given user.
// The owner id is an explicit parameter so it can never come from client input.
// PostDate and ModifyDate are stamped to the same instant.
func NewRecipe(userID primitive.ObjectID, name, shortDesc, fullDesc string, timeToCook float64, ingredients []any, picture string, tags []any) *Recipe {
	now := time.Now()
	return &Recipe{
		ID:          primitive.NewObjectID(),
		UserID:      userID,
		Name:        name,
		ShortDesc:   shortDesc,
		FullDesc:    fullDesc,
		TimeToCook:  timeToCook,
		Ingredients: ingredients,
		Picture:     picture,
		Tags:        tags,
		PostDate:    now,
		ModifyDate:  now,
	}
}
