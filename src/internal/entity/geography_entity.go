package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Direction struct {
	DirectionID    int64      `db:"direction_id" json:"direction_id"`
	Zip            string     `db:"direction_zip" json:"direction_zip"`
	City           string     `db:"direction_city" json:"direction_city"`
	State          string     `db:"direction_state" json:"direction_state"`
	Municipality   string     `db:"direction_municipality" json:"direction_municipality"`
	Settlement     string     `db:"direction_settlement" json:"direction_settlement"`
	SettlementType string     `db:"direction_type_settlement" json:"direction_type_settlement"`
	Country        string     `db:"direction_country" json:"direction_country"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

type Destination struct {
	DestinationID int64           `db:"destination_id" json:"destination_id"`
	Name          string          `db:"destination_name" json:"destination_name"`
	Distance      decimal.Decimal `db:"destination_distance" json:"destination_distance"`
	PricePerKm    decimal.Decimal `db:"destination_price_per_km" json:"destination_price_per_km"`
	DirectionID   int64           `db:"direction_id" json:"direction_id"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt     *time.Time      `db:"updated_at" json:"updated_at,omitempty"`
}

type Origin struct {
	OriginID    int64      `db:"origin_id" json:"origin_id"`
	Name        string     `db:"origin_name" json:"origin_name"`
	DirectionID int64      `db:"direction_id" json:"direction_id"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// DestinationDetail is a destination row joined with its direction. Categories
// ride along from the pivot table, loaded with a second query.
type DestinationDetail struct {
	DestinationID int64           `db:"destination_id"`
	Name          string          `db:"destination_name"`
	Distance      decimal.Decimal `db:"destination_distance"`
	PricePerKm    decimal.Decimal `db:"destination_price_per_km"`
	DirectionID   int64           `db:"direction_id"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     *time.Time      `db:"updated_at"`

	Zip            string `db:"direction_zip"`
	City           string `db:"direction_city"`
	State          string `db:"direction_state"`
	Municipality   string `db:"direction_municipality"`
	Settlement     string `db:"direction_settlement"`
	SettlementType string `db:"direction_type_settlement"`
	Country        string `db:"direction_country"`

	Categories []Category `db:"-"`
}

// OriginDetail is an origin row joined with its direction.
type OriginDetail struct {
	OriginID    int64      `db:"origin_id"`
	Name        string     `db:"origin_name"`
	DirectionID int64      `db:"direction_id"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at"`

	Zip            string `db:"direction_zip"`
	City           string `db:"direction_city"`
	State          string `db:"direction_state"`
	Municipality   string `db:"direction_municipality"`
	Settlement     string `db:"direction_settlement"`
	SettlementType string `db:"direction_type_settlement"`
	Country        string `db:"direction_country"`
}
