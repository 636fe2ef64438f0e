package model

import (
	"mime/multipart"
	"time"

	"github.com/shopspring/decimal"
)

type CreateQuoteRequest struct {
	DestinationID int64  `json:"destination_id" validate:"required"`
	PersonID      int64  `json:"person_id" validate:"required"`
	CategoryID    int64  `json:"category_id" validate:"required"`
	TripDate      string `json:"trip_date" validate:"required,datetime=2006-01-02"`
}

type SendQuoteCodeRequest struct {
	QuoteID int64 `json:"-" validate:"required"`
}

// Cancel carries the original wire convention: the literal string "true".
type UpdateQuoteRequest struct {
	QuoteID       int64  `json:"-" validate:"required"`
	Code          string `json:"code" validate:"required"`
	Cancel        string `json:"cancel" validate:"omitempty"`
	DestinationID int64  `json:"destination_id" validate:"omitempty,gt=0"`
	PersonID      int64  `json:"person_id" validate:"omitempty,gt=0"`
	CategoryID    int64  `json:"category_id" validate:"omitempty,gt=0"`
	TripDate      string `json:"trip_date" validate:"omitempty,datetime=2006-01-02"`
}

type GetQuoteRequest struct {
	QuoteID int64 `json:"-" validate:"required"`
}

type AuthorizeQuoteRequest struct {
	QuoteID int64                 `json:"-" validate:"required"`
	Code    string                `json:"code" validate:"required"`
	Photo   *multipart.FileHeader `json:"-" validate:"required"`
}

type TripResponse struct {
	TripID      int64                `json:"trip_id"`
	Date        time.Time            `json:"trip_date"`
	Origin      *OriginResponse      `json:"origin,omitempty"`
	Destination *DestinationResponse `json:"destination,omitempty"`
}

type PersonSummaryResponse struct {
	PersonID int64  `json:"person_id"`
	Name     string `json:"person_name"`
	LastName string `json:"person_last_name"`
	Phone    string `json:"person_phone"`
	Email    string `json:"person_email"`
}

type QuoteResponse struct {
	QuoteID   int64                  `json:"quote_id"`
	Folio     string                 `json:"quote_folio"`
	Price     decimal.Decimal        `json:"quote_price"`
	Status    string                 `json:"quote_status"`
	Category  *CategoryResponse      `json:"category,omitempty"`
	Person    *PersonSummaryResponse `json:"person,omitempty"`
	Trip      *TripResponse          `json:"trip,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt *time.Time             `json:"updated_at,omitempty"`
}
