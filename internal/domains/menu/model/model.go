package model

import "lavender/shared/model"

const (
	EntityName = "Menu item"
	IDPrefix   = "menu"
)

type FoodCategory string

const (
	FoodCategorySnacks     FoodCategory = "Snacks"
	FoodCategoryMainCourse FoodCategory = "Main Course"
	FoodCategoryDessert    FoodCategory = "Dessert"
)

func (c FoodCategory) IsValid() bool {
	switch c {
	case FoodCategorySnacks, FoodCategoryMainCourse, FoodCategoryDessert:
		return true
	default:
		return false
	}
}

type FoodType string

const (
	FoodTypeVegetarian    FoodType = "Vegetarian"
	FoodTypeNonVegetarian FoodType = "Non-Vegetarian"
)

func (t FoodType) IsValid() bool {
	switch t {
	case FoodTypeVegetarian, FoodTypeNonVegetarian:
		return true
	default:
		return false
	}
}

type MenuItem struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Price       float64      `json:"price"`
	Category    FoodCategory `json:"category"`
	FoodType    FoodType     `json:"foodType"`
	ImageURL    string       `json:"imageUrl,omitempty"`
	Popular     bool         `json:"popular"`
	model.Timestamps
}

// Filter narrows a menu listing. Empty fields match everything.
type Filter struct {
	Category FoodCategory
	FoodType FoodType
}

func (f Filter) Match(item MenuItem) bool {
	if f.Category != "" && item.Category != f.Category {
		return false
	}

	if f.FoodType != "" && item.FoodType != f.FoodType {
		return false
	}

	return true
}
