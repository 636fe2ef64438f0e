package repository

import (
	"context"
	"database/sql"
	"errors"

	"quotation-service/src/internal/entity"
	"quotation-service/src/pkg/databases/mysql"
)

type administratorRepository struct {
	DB mysql.DBInterface
}

func NewAdministratorRepository(db mysql.DBInterface) AdministratorRepository {
	return &administratorRepository{DB: db}
}

func (r *administratorRepository) FindByID(ctx context.Context, id int64) (*entity.Administrator, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var administrator entity.Administrator
	err = db.GetContext(ctx, &administrator,
		`SELECT * FROM administrators WHERE administrator_id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &administrator, nil
}

func (r *administratorRepository) FindByPersonID(ctx context.Context, personID int64) (*entity.Administrator, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var administrator entity.Administrator
	err = db.GetContext(ctx, &administrator,
		`SELECT * FROM administrators WHERE person_id = ?`, personID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &administrator, nil
}

func (r *administratorRepository) SaveCode(ctx context.Context, id int64, code string) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx,
		`UPDATE administrators SET administrator_code = ?, updated_at = NOW() WHERE administrator_id = ?`,
		code, id)
	return err
}

// UpdatePassword stores the new hash and consumes the code in one statement.
func (r *administratorRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx,
		`UPDATE administrators SET administrator_password = ?, administrator_code = NULL, updated_at = NOW() WHERE administrator_id = ?`,
		passwordHash, id)
	return err
}
