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

type quoteRepository struct {
	DB mysql.DBInterface
}

func NewQuoteRepository(db mysql.DBInterface) QuoteRepository {
	return &quoteRepository{DB: db}
}

const quoteDetailColumns = `
	q.quote_id,
	q.quote_folio,
	q.quote_price,
	q.quote_status,
	q.quote_code,
	q.person_id,
	q.category_id,
	q.trip_id,
	q.created_at,
	q.updated_at,
	c.category_name,
	c.category_percentage,
	p.person_name,
	p.person_last_name,
	p.person_phone,
	p.person_email,
	t.trip_date,
	t.origin_id,
	t.destination_id,
	ds.destination_name,
	ds.destination_distance,
	ds.destination_price_per_km,
	dd.direction_zip AS dd_zip,
	dd.direction_city AS dd_city,
	dd.direction_state AS dd_state,
	dd.direction_municipality AS dd_municipality,
	dd.direction_settlement AS dd_settlement,
	dd.direction_type_settlement AS dd_type_settlement,
	dd.direction_country AS dd_country,
	o.origin_name,
	od.direction_zip AS od_zip,
	od.direction_city AS od_city,
	od.direction_state AS od_state,
	od.direction_municipality AS od_municipality,
	od.direction_settlement AS od_settlement,
	od.direction_type_settlement AS od_type_settlement,
	od.direction_country AS od_country
`

const quoteDetailJoins = `
	FROM quotes q
	JOIN categories c ON c.category_id = q.category_id
	JOIN people p ON p.person_id = q.person_id
	JOIN trips t ON t.trip_id = q.trip_id
	JOIN origins o ON o.origin_id = t.origin_id
	JOIN directions od ON od.direction_id = o.direction_id
	LEFT JOIN destinations ds ON ds.destination_id = t.destination_id
	LEFT JOIN directions dd ON dd.direction_id = ds.direction_id
`

func (r *quoteRepository) FindAll(ctx context.Context, limit, offset int) ([]entity.QuoteDetail, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT %s %s ORDER BY q.quote_id`, quoteDetailColumns, quoteDetailJoins)

	var quotes []entity.QuoteDetail
	if limit > 0 {
		query += " LIMIT ? OFFSET ?"
		err = db.SelectContext(ctx, &quotes, query, limit, offset)
	} else {
		err = db.SelectContext(ctx, &quotes, query)
	}
	if err != nil {
		return nil, err
	}
	return quotes, nil
}

func (r *quoteRepository) FindByID(ctx context.Context, id int64) (*entity.Quote, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var quote entity.Quote
	err = db.GetContext(ctx, &quote, `SELECT * FROM quotes WHERE quote_id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

func (r *quoteRepository) FindDetailByID(ctx context.Context, id int64) (*entity.QuoteDetail, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT %s %s WHERE q.quote_id = ?`, quoteDetailColumns, quoteDetailJoins)

	var detail entity.QuoteDetail
	err = db.GetContext(ctx, &detail, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func (r *quoteRepository) FindDetailByPersonID(ctx context.Context, personID int64) ([]entity.QuoteDetail, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT %s %s WHERE q.person_id = ? ORDER BY q.quote_id`, quoteDetailColumns, quoteDetailJoins)

	var quotes []entity.QuoteDetail
	err = db.SelectContext(ctx, &quotes, query, personID)
	if err != nil {
		return nil, err
	}
	return quotes, nil
}

// CreateWithTrip inserts the trip and the quote pointing at it in one
// transaction.
func (r *quoteRepository) CreateWithTrip(ctx context.Context, trip *entity.Trip, quote *entity.Quote) error {
	return mysql.WithTransaction(ctx, r.DB, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx, `
			INSERT INTO trips (trip_date, origin_id, destination_id, created_at)
			VALUES (?, ?, ?, NOW())`,
			trip.Date, trip.OriginID, trip.DestinationID)
		if err != nil {
			return err
		}
		trip.TripID, err = result.LastInsertId()
		if err != nil {
			return err
		}

		quote.TripID = trip.TripID
		result, err = tx.ExecContext(ctx, `
			INSERT INTO quotes (quote_folio, quote_price, quote_status, person_id, category_id, trip_id, created_at)
			VALUES (?, ?, ?, ?, ?, ?, NOW())`,
			quote.Folio, quote.Price, quote.Status, quote.PersonID, quote.CategoryID, quote.TripID)
		if err != nil {
			return err
		}
		quote.QuoteID, err = result.LastInsertId()
		return err
	})
}

func (r *quoteRepository) UpdateWithTrip(ctx context.Context, quote *entity.Quote, trip *entity.Trip) error {
	return mysql.WithTransaction(ctx, r.DB, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			UPDATE quotes
			SET quote_price = ?, quote_status = ?, quote_code = NULL, person_id = ?, category_id = ?, updated_at = NOW()
			WHERE quote_id = ?`,
			quote.Price, quote.Status, quote.PersonID, quote.CategoryID, quote.QuoteID); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `
			UPDATE trips SET trip_date = ?, destination_id = ?, updated_at = NOW()
			WHERE trip_id = ?`,
			trip.Date, trip.DestinationID, trip.TripID)
		return err
	})
}

func (r *quoteRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx,
		`UPDATE quotes SET quote_status = ?, quote_code = NULL, updated_at = NOW() WHERE quote_id = ?`,
		status, id)
	return err
}

func (r *quoteRepository) SaveCode(ctx context.Context, id int64, code string) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx,
		`UPDATE quotes SET quote_code = ?, updated_at = NOW() WHERE quote_id = ?`,
		code, id)
	return err
}

func (r *quoteRepository) DeleteWithTrip(ctx context.Context, quoteID, tripID int64) error {
	return mysql.WithTransaction(ctx, r.DB, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM quotes WHERE quote_id = ?`, quoteID); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `DELETE FROM trips WHERE trip_id = ?`, tripID)
		return err
	})
}
