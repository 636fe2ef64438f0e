package model

import "time"

type ListRequest struct {
	Page  int `json:"page" validate:"omitempty,min=1"`
	Limit int `json:"limit" validate:"omitempty,min=1"`
}

type CreatePersonRequest struct {
	Name      string `json:"name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Phone     string `json:"phone" validate:"required,phonedigits"`
	Email     string `json:"email" validate:"required,email,max=100"`
	BirthDate string `json:"birth_date" validate:"required,datetime=2006-01-02"`
}

type UpdatePersonRequest struct {
	PersonID  int64  `json:"-" validate:"required"`
	Name      string `json:"name" validate:"omitempty,max=100"`
	LastName  string `json:"last_name" validate:"omitempty,max=100"`
	Phone     string `json:"phone" validate:"omitempty,phonedigits"`
	Email     string `json:"email" validate:"omitempty,email,max=100"`
	BirthDate string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
}

type GetPersonRequest struct {
	PersonID int64 `json:"-" validate:"required"`
}

type AdministratorResponse struct {
	AdministratorID int64 `json:"administrator_id"`
	PersonID        int64 `json:"person_id"`
}

type PersonResponse struct {
	PersonID      int64                  `json:"person_id"`
	Name          string                 `json:"person_name"`
	LastName      string                 `json:"person_last_name"`
	Phone         string                 `json:"person_phone"`
	Email         string                 `json:"person_email"`
	BirthDate     time.Time              `json:"person_birth_date"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     *time.Time             `json:"updated_at,omitempty"`
	Administrator *AdministratorResponse `json:"administrator,omitempty"`
	Quotes        []QuoteResponse        `json:"quotes,omitempty"`
}
