package dto

import (
	"lavender/internal/domains/menu/model"
	"lavender/shared"
	gDto "lavender/shared/dto"
	"time"
)

type CreateMenuItemRequest struct {
	Name        string             `json:"name"        validate:"required"`
	Description string             `json:"description" validate:"required"`
	Price       *float64           `json:"price"       validate:"required,gte=0"`
	Category    model.FoodCategory `json:"category"    validate:"required,enum"`
	FoodType    model.FoodType     `json:"foodType"    validate:"required,enum"`
	ImageURL    string             `json:"imageUrl"`
	Popular     bool               `json:"popular"`
}

func (c *CreateMenuItemRequest) ToModel(now time.Time) model.MenuItem {
	item := model.MenuItem{
		ID:          shared.NewID(model.IDPrefix),
		Name:        c.Name,
		Description: c.Description,
		Price:       *c.Price,
		Category:    c.Category,
		FoodType:    c.FoodType,
		ImageURL:    c.ImageURL,
		Popular:     c.Popular,
	}
	item.Stamp(now)

	return item
}

// UpdateMenuItemRequest carries the fields to change. Absent fields keep their value.
type UpdateMenuItemRequest struct {
	Name        *string             `json:"name"        validate:"omitnil,min=1"`
	Description *string             `json:"description" validate:"omitnil,min=1"`
	Price       *float64            `json:"price"       validate:"omitnil,gte=0"`
	Category    *model.FoodCategory `json:"category"    validate:"omitnil,enum"`
	FoodType    *model.FoodType     `json:"foodType"    validate:"omitnil,enum"`
	ImageURL    *string             `json:"imageUrl"`
	Popular     *bool               `json:"popular"`
}

func (u *UpdateMenuItemRequest) ApplyTo(item *model.MenuItem) {
	if u.Name != nil {
		item.Name = *u.Name
	}

	if u.Description != nil {
		item.Description = *u.Description
	}

	if u.Price != nil {
		item.Price = *u.Price
	}

	if u.Category != nil {
		item.Category = *u.Category
	}

	if u.FoodType != nil {
		item.FoodType = *u.FoodType
	}

	if u.ImageURL != nil {
		item.ImageURL = *u.ImageURL
	}

	if u.Popular != nil {
		item.Popular = *u.Popular
	}
}

type MenuItemResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Price       float64            `json:"price"`
	Category    model.FoodCategory `json:"category"`
	FoodType    model.FoodType     `json:"foodType"`
	ImageURL    string             `json:"imageUrl,omitempty"`
	Popular     bool               `json:"popular"`
	gDto.Timestamps
}

func (r *MenuItemResponse) FromModel(model model.MenuItem) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.Price = model.Price
	r.Category = model.Category
	r.FoodType = model.FoodType
	r.ImageURL = model.ImageURL
	r.Popular = model.Popular
	r.Timestamps.FromModel(model.Timestamps)
}

func FromModels(models []model.MenuItem) []MenuItemResponse {
	res := make([]MenuItemResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
