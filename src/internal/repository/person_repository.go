package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"quotation-service/src/internal/entity"
	"quotation-service/src/pkg/databases/mysql"
)

type personRepository struct {
	DB mysql.DBInterface
}

func NewPersonRepository(db mysql.DBInterface) PersonRepository {
	return &personRepository{DB: db}
}

const personDetailColumns = `
	p.person_id,
	p.person_name,
	p.person_last_name,
	p.person_phone,
	p.person_email,
	p.person_birth_date,
	p.created_at,
	p.updated_at,
	a.administrator_id
`

func (r *personRepository) FindAll(ctx context.Context, limit, offset int) ([]entity.PersonDetail, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM people p
		LEFT JOIN administrators a ON a.person_id = p.person_id
		ORDER BY p.person_id`, personDetailColumns)

	var people []entity.PersonDetail
	if limit > 0 {
		query += " LIMIT ? OFFSET ?"
		err = db.SelectContext(ctx, &people, query, limit, offset)
	} else {
		err = db.SelectContext(ctx, &people, query)
	}
	if err != nil {
		return nil, err
	}
	return people, nil
}

func (r *personRepository) FindByID(ctx context.Context, id int64) (*entity.Person, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var person entity.Person
	err = db.GetContext(ctx, &person, `SELECT * FROM people WHERE person_id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &person, nil
}

func (r *personRepository) FindDetailByID(ctx context.Context, id int64) (*entity.PersonDetail, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM people p
		LEFT JOIN administrators a ON a.person_id = p.person_id
		WHERE p.person_id = ?`, personDetailColumns)

	var detail entity.PersonDetail
	err = db.GetContext(ctx, &detail, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func (r *personRepository) FindByEmail(ctx context.Context, email string) (*entity.Person, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var person entity.Person
	err = db.GetContext(ctx, &person, `SELECT * FROM people WHERE person_email = ?`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &person, nil
}

func (r *personRepository) ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return false, err
	}

	var count int64
	err = db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM people WHERE person_email = ? AND person_id <> ?`, email, excludeID)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *personRepository) Create(ctx context.Context, person *entity.Person) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	result, err := db.ExecContext(ctx, `
		INSERT INTO people (person_name, person_last_name, person_phone, person_email, person_birth_date, created_at)
		VALUES (?, ?, ?, ?, ?, NOW())`,
		person.Name, person.LastName, person.Phone, person.Email, person.BirthDate)
	if err != nil {
		return err
	}

	person.PersonID, err = result.LastInsertId()
	return err
}

func (r *personRepository) Update(ctx context.Context, person *entity.Person) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		UPDATE people
		SET person_name = ?, person_last_name = ?, person_phone = ?, person_email = ?, person_birth_date = ?, updated_at = NOW()
		WHERE person_id = ?`,
		person.Name, person.LastName, person.Phone, person.Email, person.BirthDate, person.PersonID)
	return err
}

// DeleteCascade removes the trips of the person's quotes, the quotes, the
// administrator record and finally the person row, all in one transaction.
func (r *personRepository) DeleteCascade(ctx context.Context, id int64) error {
	return mysql.WithTransaction(ctx, r.DB, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			DELETE t FROM trips t
			JOIN quotes q ON q.trip_id = t.trip_id
			WHERE q.person_id = ?`, id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM quotes WHERE person_id = ?`, id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM administrators WHERE person_id = ?`, id); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `DELETE FROM people WHERE person_id = ?`, id)
		return err
	})
}
