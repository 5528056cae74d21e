// Package dto содержит структуры запросов и ответов HTTP API.
package dto

// UserPayload содержит данные пользователя для создания и полного обновления.
// Неизвестные поля JSON игнорируются при привязке.
type UserPayload struct {
	Name        string `json:"name"`
	LoginName   string `json:"loginName" validate:"required,max=15"`
	Password    string `json:"password" validate:"required,min=8"`
	Gender      string `json:"gender" validate:"omitempty,oneof=male female other"`
	Role        string `json:"role" validate:"omitempty,oneof=admin user"`
	Picture     string `json:"picture"`
	Description string `json:"description" validate:"omitempty,max=512"`
	Status      string `json:"status" validate:"omitempty,oneof=active suspended deactivated"`
}

// MessageResponse содержит текстовое сообщение для ответа.
type MessageResponse struct {
	Message string `json:"message"`
}
