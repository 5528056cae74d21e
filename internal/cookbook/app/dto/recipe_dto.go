package dto

// RecipePayload содержит данные рецепта для создания и полного обновления.
// Владелец рецепта приходит из пути запроса, а не из тела.
// Типовые ограничения (строка, число, массив) обеспечиваются самой привязкой JSON.
type RecipePayload struct {
	Name        string  `json:"name" validate:"omitempty,max=80"`
	ShortDesc   string  `json:"shortDesc" validate:"omitempty,max=256"`
	FullDesc    string  `json:"fullDesc" validate:"omitempty,max=2048"`
	TimeToCook  float64 `json:"timeToCook"`
	Ingredients []any   `json:"ingredients"`
	Picture     string  `json:"picture"`
	Tags        []any   `json:"tags"`
}
