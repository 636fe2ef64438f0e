package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category struct {
	CategoryID int64           `db:"category_id" json:"category_id"`
	Name       string          `db:"category_name" json:"category_name"`
	Percentage decimal.Decimal `db:"category_percentage" json:"category_percentage"`
	CreatedAt  time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt  *time.Time      `db:"updated_at" json:"updated_at,omitempty"`
}
