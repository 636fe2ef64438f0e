package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateCategoryRequest struct {
	Name       string  `json:"name" validate:"required,max=100"`
	Percentage float64 `json:"percentage" validate:"required,gt=0"`
}

type UpdateCategoryRequest struct {
	CategoryID int64   `json:"-" validate:"required"`
	Name       string  `json:"name" validate:"omitempty,max=100"`
	Percentage float64 `json:"percentage" validate:"omitempty,gt=0"`
}

type GetCategoryRequest struct {
	CategoryID int64 `json:"-" validate:"required"`
}

type CategoryResponse struct {
	CategoryID int64           `json:"category_id"`
	Name       string          `json:"category_name"`
	Percentage decimal.Decimal `json:"category_percentage"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  *time.Time      `json:"updated_at,omitempty"`
}
