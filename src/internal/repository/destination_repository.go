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

type destinationRepository struct {
	DB mysql.DBInterface
}

func NewDestinationRepository(db mysql.DBInterface) DestinationRepository {
	return &destinationRepository{DB: db}
}

const destinationDetailColumns = `
	ds.destination_id,
	ds.destination_name,
	ds.destination_distance,
	ds.destination_price_per_km,
	ds.direction_id,
	ds.created_at,
	ds.updated_at,
	d.direction_zip,
	d.direction_city,
	d.direction_state,
	d.direction_municipality,
	d.direction_settlement,
	d.direction_type_settlement,
	d.direction_country
`

func (r *destinationRepository) FindAll(ctx context.Context, limit, offset int) ([]entity.DestinationDetail, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM destinations ds
		JOIN directions d ON d.direction_id = ds.direction_id
		ORDER BY ds.destination_id`, destinationDetailColumns)

	var destinations []entity.DestinationDetail
	if limit > 0 {
		query += " LIMIT ? OFFSET ?"
		err = db.SelectContext(ctx, &destinations, query, limit, offset)
	} else {
		err = db.SelectContext(ctx, &destinations, query)
	}
	if err != nil {
		return nil, err
	}
	return destinations, nil
}

func (r *destinationRepository) FindByID(ctx context.Context, id int64) (*entity.Destination, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var destination entity.Destination
	err = db.GetContext(ctx, &destination, `SELECT * FROM destinations WHERE destination_id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &destination, nil
}

func (r *destinationRepository) FindDetailByID(ctx context.Context, id int64) (*entity.DestinationDetail, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM destinations ds
		JOIN directions d ON d.direction_id = ds.direction_id
		WHERE ds.destination_id = ?`, destinationDetailColumns)

	var detail entity.DestinationDetail
	err = db.GetContext(ctx, &detail, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func (r *destinationRepository) HasCategory(ctx context.Context, destinationID, categoryID int64) (bool, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return false, err
	}

	var count int64
	err = db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM category_destination WHERE destination_id = ? AND category_id = ?`,
		destinationID, categoryID)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateWithDirection inserts the direction, the destination pointing at it
// and the category relations in one transaction.
func (r *destinationRepository) CreateWithDirection(ctx context.Context, direction *entity.Direction, destination *entity.Destination, categoryIDs []int64) error {
	return mysql.WithTransaction(ctx, r.DB, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx, `
			INSERT INTO directions (direction_zip, direction_city, direction_state, direction_municipality,
				direction_settlement, direction_type_settlement, direction_country, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, NOW())`,
			direction.Zip, direction.City, direction.State, direction.Municipality,
			direction.Settlement, direction.SettlementType, direction.Country)
		if err != nil {
			return err
		}
		direction.DirectionID, err = result.LastInsertId()
		if err != nil {
			return err
		}

		destination.DirectionID = direction.DirectionID
		result, err = tx.ExecContext(ctx, `
			INSERT INTO destinations (destination_name, destination_distance, destination_price_per_km, direction_id, created_at)
			VALUES (?, ?, ?, ?, NOW())`,
			destination.Name, destination.Distance, destination.PricePerKm, destination.DirectionID)
		if err != nil {
			return err
		}
		destination.DestinationID, err = result.LastInsertId()
		if err != nil {
			return err
		}

		for _, categoryID := range categoryIDs {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO category_destination (category_id, destination_id, created_at)
				VALUES (?, ?, NOW())`,
				categoryID, destination.DestinationID); err != nil {
				return err
			}
		}
		return nil
	})
}

// UpdateWithDirection persists the destination, rewrites its direction when a
// new zip resolved and adjusts the category relations, all in one transaction.
func (r *destinationRepository) UpdateWithDirection(ctx context.Context, destination *entity.Destination, direction *entity.Direction, attach, detach []int64) error {
	return mysql.WithTransaction(ctx, r.DB, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			UPDATE destinations
			SET destination_name = ?, destination_distance = ?, destination_price_per_km = ?, updated_at = NOW()
			WHERE destination_id = ?`,
			destination.Name, destination.Distance, destination.PricePerKm, destination.DestinationID); err != nil {
			return err
		}

		if direction != nil {
			if _, err := tx.ExecContext(ctx, `
				UPDATE directions
				SET direction_zip = ?, direction_city = ?, direction_state = ?, direction_municipality = ?,
					direction_settlement = ?, direction_type_settlement = ?, direction_country = ?, updated_at = NOW()
				WHERE direction_id = ?`,
				direction.Zip, direction.City, direction.State, direction.Municipality,
				direction.Settlement, direction.SettlementType, direction.Country,
				destination.DirectionID); err != nil {
				return err
			}
		}

		for _, categoryID := range attach {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO category_destination (category_id, destination_id, created_at)
				VALUES (?, ?, NOW())`,
				categoryID, destination.DestinationID); err != nil {
				return err
			}
		}
		for _, categoryID := range detach {
			if _, err := tx.ExecContext(ctx, `
				DELETE FROM category_destination WHERE category_id = ? AND destination_id = ?`,
				categoryID, destination.DestinationID); err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteCascade drops the category relations, unlinks trips and removes the
// destination together with its direction.
func (r *destinationRepository) DeleteCascade(ctx context.Context, id, directionID int64) error {
	return mysql.WithTransaction(ctx, r.DB, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM category_destination WHERE destination_id = ?`, id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `UPDATE trips SET destination_id = NULL, updated_at = NOW() WHERE destination_id = ?`, id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM destinations WHERE destination_id = ?`, id); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `DELETE FROM directions WHERE direction_id = ?`, directionID)
		return err
	})
}
