package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateDestinationRequest struct {
	Name       string  `json:"name" validate:"required,max=100"`
	Distance   float64 `json:"distance" validate:"required,gt=0"`
	ZipCode    string  `json:"zip_code" validate:"required,zipdigits"`
	PricePerKm float64 `json:"price_per_km" validate:"required,gt=0"`
	Categories []int64 `json:"categories" validate:"required,min=1,dive,gt=0"`
}

// Zero values mean "field absent": only supplied fields are mutated.
type UpdateDestinationRequest struct {
	DestinationID    int64   `json:"-" validate:"required"`
	Name             string  `json:"name" validate:"omitempty,max=100"`
	Distance         float64 `json:"distance" validate:"omitempty,gt=0"`
	ZipCode          string  `json:"zip_code" validate:"omitempty,zipdigits"`
	PricePerKm       float64 `json:"price_per_km" validate:"omitempty,gt=0"`
	Categories       []int64 `json:"categories" validate:"omitempty,dive,gt=0"`
	DeleteCategories []int64 `json:"delete_categories" validate:"omitempty,dive,gt=0"`
}

type GetDestinationRequest struct {
	DestinationID int64 `json:"-" validate:"required"`
}

type DirectionResponse struct {
	Zip            string `json:"direction_zip"`
	City           string `json:"direction_city"`
	State          string `json:"direction_state"`
	Municipality   string `json:"direction_municipality"`
	Settlement     string `json:"direction_settlement"`
	SettlementType string `json:"direction_type_settlement"`
	Country        string `json:"direction_country"`
}

type DestinationResponse struct {
	DestinationID int64              `json:"destination_id"`
	Name          string             `json:"destination_name"`
	Distance      decimal.Decimal    `json:"destination_distance"`
	PricePerKm    decimal.Decimal    `json:"destination_price_per_km"`
	Direction     *DirectionResponse `json:"direction,omitempty"`
	Categories    []CategoryResponse `json:"categories,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     *time.Time         `json:"updated_at,omitempty"`
}

type OriginResponse struct {
	OriginID  int64              `json:"origin_id"`
	Name      string             `json:"origin_name"`
	Direction *DirectionResponse `json:"direction,omitempty"`
}

type GetOriginRequest struct {
	OriginID int64 `json:"-" validate:"required"`
}
