package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"usedphoneshop/internal/model"
)

// PhoneRepository defines operations for catalog data
type PhoneRepository interface {
	Create(ctx context.Context, phone *model.Phone) error
	FindByID(ctx context.Context, id int) (*model.Phone, error)
	List(ctx context.Context) ([]model.Phone, error)
	Update(ctx context.Context, phone *model.Phone) error
	Delete(ctx context.Context, id int) error
}

type phoneRepository struct {
	db *sql.DB
}

// NewPhoneRepository creates a new PhoneRepository
func NewPhoneRepository(db *sql.DB) PhoneRepository {
	return &phoneRepository{db: db}
}

func (r *phoneRepository) Create(ctx context.Context, phone *model.Phone) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO phones (brand, model, price, description, condition, stock_quantity)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		phone.Brand, phone.Model, phone.Price, phone.Description, phone.Condition, phone.StockQuantity,
	)
	if err != nil {
		return fmt.Errorf("failed to create phone: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read new phone id: %w", err)
	}
	phone.ID = int(id)
	return nil
}

func (r *phoneRepository) FindByID(ctx context.Context, id int) (*model.Phone, error) {
	phone := &model.Phone{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, brand, model, price, description, condition, stock_quantity FROM phones WHERE id = ?`, id,
	).Scan(&phone.ID, &phone.Brand, &phone.Model, &phone.Price, &phone.Description, &phone.Condition, &phone.StockQuantity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find phone by ID: %w", err)
	}
	return phone, nil
}

func (r *phoneRepository) List(ctx context.Context) ([]model.Phone, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, brand, model, price, description, condition, stock_quantity FROM phones ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query phones: %w", err)
	}
	defer rows.Close()

	var phones []model.Phone
	for rows.Next() {
		var phone model.Phone
		if err := rows.Scan(&phone.ID, &phone.Brand, &phone.Model, &phone.Price, &phone.Description, &phone.Condition, &phone.StockQuantity); err != nil {
			return nil, fmt.Errorf("failed to scan phone row: %w", err)
		}
		phones = append(phones, phone)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating phone rows: %w", err)
	}
	return phones, nil
}

func (r *phoneRepository) Update(ctx context.Context, phone *model.Phone) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE phones
		 SET brand = ?, model = ?, price = ?, description = ?, condition = ?, stock_quantity = ?
		 WHERE id = ?`,
		phone.Brand, phone.Model, phone.Price, phone.Description, phone.Condition, phone.StockQuantity, phone.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update phone: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *phoneRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM phones WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete phone: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
