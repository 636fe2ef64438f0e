package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"quotation-service/src/internal/entity"
	"quotation-service/src/pkg/databases/mysql"
)

type originRepository struct {
	DB mysql.DBInterface
}

func NewOriginRepository(db mysql.DBInterface) OriginRepository {
	return &originRepository{DB: db}
}

const originDetailColumns = `
	o.origin_id,
	o.origin_name,
	o.direction_id,
	o.created_at,
	o.updated_at,
	d.direction_zip,
	d.direction_city,
	d.direction_state,
	d.direction_municipality,
	d.direction_settlement,
	d.direction_type_settlement,
	d.direction_country
`

func (r *originRepository) FindAll(ctx context.Context) ([]entity.OriginDetail, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM origins o
		JOIN directions d ON d.direction_id = o.direction_id
		ORDER BY o.origin_id`, originDetailColumns)

	var origins []entity.OriginDetail
	err = db.SelectContext(ctx, &origins, query)
	if err != nil {
		return nil, err
	}
	return origins, nil
}

func (r *originRepository) FindByID(ctx context.Context, id int64) (*entity.Origin, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var origin entity.Origin
	err = db.GetContext(ctx, &origin, `SELECT * FROM origins WHERE origin_id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &origin, nil
}

func (r *originRepository) FindDetailByID(ctx context.Context, id int64) (*entity.OriginDetail, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM origins o
		JOIN directions d ON d.direction_id = o.direction_id
		WHERE o.origin_id = ?`, originDetailColumns)

	var detail entity.OriginDetail
	err = db.GetContext(ctx, &detail, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &detail, nil
}
