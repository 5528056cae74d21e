// Package entities defines the domain entities for the cookbook service.
package entities

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User представляет пользователя кулинарного сервиса.
// Документы хранятся с идентификатором в поле id, а не в _id.
type User struct {
	ID           primitive.ObjectID `bson:"id" json:"id"`
	Name         string             `bson:"name,omitempty" json:"name,omitempty"`
	LoginName    string             `bson:"loginName" json:"loginName"`
	Password     string             `bson:"password" json:"password"`
	Gender       string             `bson:"gender,omitempty" json:"gender,omitempty"`
	Role         string             `bson:"role,omitempty" json:"role,omitempty"`
	Picture      string             `bson:"picture,omitempty" json:"picture,omitempty"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	Status       string             `bson:"status,omitempty" json:"status,omitempty"`
	RegistryDate time.Time          `bson:"registryDate" json:"registryDate"`
	ModifyDate   time.Time          `bson:"modifyDate" json:"modifyDate"`
}

// NewUser creates a new user with a generated identifier.
// RegistryDate and ModifyDate are stamped to the same instant.
func NewUser(name, loginName, password, gender, role, picture, description, status string) *User {
	now := time.Now()
	return &User{
		ID:           primitive.NewObjectID(),
		Name:         name,
		LoginName:    loginName,
		Password:     password,
		Gender:       gender,
		Role:         role,
		Picture:      picture,
		Description:  description,
		Status:       status,
		RegistryDate: now,
		ModifyDate:   now,
	}
}
