package dto

import "github.com/alimikegami/e-bazaar/internal/domain"

type CategoryRequest struct {
	Name  string `json:"name" validate:"required"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

type CategoryUpdateRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1"`
	Icon  *string `json:"icon"`
	Color *string `json:"color"`
}

type CategoryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Icon  string `json:"icon,omitempty"`
	Color string `json:"color,omitempty"`
}

func NewCategoryResponse(category domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:    category.ID.Hex(),
		Name:  category.Name,
		Icon:  category.Icon,
		Color: category.Color,
	}
}
