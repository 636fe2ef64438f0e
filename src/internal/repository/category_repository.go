package repository

import (
	"context"
	"database/sql"
	"errors"

	"quotation-service/src/internal/entity"
	"quotation-service/src/pkg/databases/mysql"
)

type categoryRepository struct {
	DB mysql.DBInterface
}

func NewCategoryRepository(db mysql.DBInterface) CategoryRepository {
	return &categoryRepository{DB: db}
}

func (r *categoryRepository) FindAll(ctx context.Context) ([]entity.Category, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var categories []entity.Category
	err = db.SelectContext(ctx, &categories, `SELECT * FROM categories ORDER BY category_id`)
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) FindByID(ctx context.Context, id int64) (*entity.Category, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var category entity.Category
	err = db.GetContext(ctx, &category, `SELECT * FROM categories WHERE category_id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) FindByDestinationID(ctx context.Context, destinationID int64) ([]entity.Category, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var categories []entity.Category
	err = db.SelectContext(ctx, &categories, `
		SELECT c.*
		FROM categories c
		JOIN category_destination cd ON cd.category_id = c.category_id
		WHERE cd.destination_id = ?
		ORDER BY c.category_id`, destinationID)
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	result, err := db.ExecContext(ctx, `
		INSERT INTO categories (category_name, category_percentage, created_at)
		VALUES (?, ?, NOW())`,
		category.Name, category.Percentage)
	if err != nil {
		return err
	}

	category.CategoryID, err = result.LastInsertId()
	return err
}

func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		UPDATE categories SET category_name = ?, category_percentage = ?, updated_at = NOW()
		WHERE category_id = ?`,
		category.Name, category.Percentage, category.CategoryID)
	return err
}

func (r *categoryRepository) Delete(ctx context.Context, id int64) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `DELETE FROM categories WHERE category_id = ?`, id)
	return err
}

// CountReferences counts the quotes and destination relations still pointing
// at the category; a referenced category cannot be deleted.
func (r *categoryRepository) CountReferences(ctx context.Context, id int64) (int64, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return 0, err
	}

	var count int64
	err = db.GetContext(ctx, &count, `
		SELECT
			(SELECT COUNT(*) FROM quotes WHERE category_id = ?) +
			(SELECT COUNT(*) FROM category_destination WHERE category_id = ?)`,
		id, id)
	if err != nil {
		return 0, err
	}
	return count, nil
}
