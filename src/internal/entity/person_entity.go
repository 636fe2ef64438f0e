package entity

import "time"

type Person struct {
	PersonID  int64      `db:"person_id" json:"person_id"`
	Name      string     `db:"person_name" json:"person_name"`
	LastName  string     `db:"person_last_name" json:"person_last_name"`
	Phone     string     `db:"person_phone" json:"person_phone"`
	Email     string     `db:"person_email" json:"person_email"`
	BirthDate time.Time  `db:"person_birth_date" json:"person_birth_date"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

type Administrator struct {
	AdministratorID int64      `db:"administrator_id" json:"administrator_id"`
	PersonID        int64      `db:"person_id" json:"person_id"`
	PasswordHash    string     `db:"administrator_password" json:"-"`
	Code            *string    `db:"administrator_code" json:"-"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt       *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// PersonDetail is a person row left-joined with its administrator record.
type PersonDetail struct {
	PersonID  int64      `db:"person_id"`
	Name      string     `db:"person_name"`
	LastName  string     `db:"person_last_name"`
	Phone     string     `db:"person_phone"`
	Email     string     `db:"person_email"`
	BirthDate time.Time  `db:"person_birth_date"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`

	AdministratorID *int64 `db:"administrator_id"`
}
