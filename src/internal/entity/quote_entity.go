package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quote statuses. "aproved" keeps the spelling the stored data has always used.
const (
	StatusPending   = "pending"
	StatusAproved   = "aproved"
	StatusCancelled = "cancelled"
)

type Trip struct {
	TripID        int64      `db:"trip_id" json:"trip_id"`
	Date          time.Time  `db:"trip_date" json:"trip_date"`
	OriginID      int64      `db:"origin_id" json:"origin_id"`
	DestinationID *int64     `db:"destination_id" json:"destination_id"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

type Quote struct {
	QuoteID    int64           `db:"quote_id" json:"quote_id"`
	Folio      string          `db:"quote_folio" json:"quote_folio"`
	Price      decimal.Decimal `db:"quote_price" json:"quote_price"`
	Status     string          `db:"quote_status" json:"quote_status"`
	Code       *string         `db:"quote_code" json:"-"`
	PersonID   int64           `db:"person_id" json:"person_id"`
	CategoryID int64           `db:"category_id" json:"category_id"`
	TripID     int64           `db:"trip_id" json:"trip_id"`
	CreatedAt  time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt  *time.Time      `db:"updated_at" json:"updated_at,omitempty"`
}

// QuoteDetail is the fully joined view of a quote: category, person, trip,
// trip destination with its direction and trip origin with its direction.
// Destination columns are pointers because a destination delete nulls the
// trip's destination_id.
type QuoteDetail struct {
	QuoteID    int64           `db:"quote_id"`
	Folio      string          `db:"quote_folio"`
	Price      decimal.Decimal `db:"quote_price"`
	Status     string          `db:"quote_status"`
	Code       *string         `db:"quote_code"`
	PersonID   int64           `db:"person_id"`
	CategoryID int64           `db:"category_id"`
	TripID     int64           `db:"trip_id"`
	CreatedAt  time.Time       `db:"created_at"`
	UpdatedAt  *time.Time      `db:"updated_at"`

	CategoryName       string          `db:"category_name"`
	CategoryPercentage decimal.Decimal `db:"category_percentage"`

	PersonName     string `db:"person_name"`
	PersonLastName string `db:"person_last_name"`
	PersonPhone    string `db:"person_phone"`
	PersonEmail    string `db:"person_email"`

	TripDate      time.Time `db:"trip_date"`
	OriginID      int64     `db:"origin_id"`
	DestinationID *int64    `db:"destination_id"`

	DestinationName       *string          `db:"destination_name"`
	DestinationDistance   *decimal.Decimal `db:"destination_distance"`
	DestinationPricePerKm *decimal.Decimal `db:"destination_price_per_km"`

	DestinationZip            *string `db:"dd_zip"`
	DestinationCity           *string `db:"dd_city"`
	DestinationState          *string `db:"dd_state"`
	DestinationMunicipality   *string `db:"dd_municipality"`
	DestinationSettlement     *string `db:"dd_settlement"`
	DestinationSettlementType *string `db:"dd_type_settlement"`
	DestinationCountry        *string `db:"dd_country"`

	OriginName *string `db:"origin_name"`

	OriginZip            *string `db:"od_zip"`
	OriginCity           *string `db:"od_city"`
	OriginState          *string `db:"od_state"`
	OriginMunicipality   *string `db:"od_municipality"`
	OriginSettlement     *string `db:"od_settlement"`
	OriginSettlementType *string `db:"od_type_settlement"`
	OriginCountry        *string `db:"od_country"`
}
