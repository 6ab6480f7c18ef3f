package domain

import "time"

type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CategoryFilter narrows a category listing. An empty Name matches everything.
type CategoryFilter struct {
	Name string
}

func NewCategory(name string, description *string, now time.Time) Category {
	now = now.UTC()
	return Category{
		ID:          NewID(),
		Name:        name,
		Description: description,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
