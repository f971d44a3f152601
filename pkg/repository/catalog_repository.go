package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// CatalogRepository handles users, products, stores and usage tracking.
// These are ownership scaffolding around listings; identity and billing
// changes happen outside this service.
type CatalogRepository struct {
	db *sqlx.DB
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *sqlx.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// CreateUser inserts a new user
func (r *CatalogRepository) CreateUser(ctx context.Context, user *User) error {
	query := "INSERT INTO users (email, tier) VALUES (:email, :tier)"
	result, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get insert id: %w", err)
	}
	user.ID = id
	return nil
}

// GetUser retrieves a user by ID
func (r *CatalogRepository) GetUser(ctx context.Context, id int64) (*User, error) {
	var user User
	err := r.db.GetContext(ctx, &user, "SELECT * FROM users WHERE id = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user %d not found", id)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}

// CreateProduct inserts a new product
func (r *CatalogRepository) CreateProduct(ctx context.Context, product *Product) error {
	query := "INSERT INTO products (user_id, name) VALUES (:user_id, :name)"
	result, err := r.db.NamedExecContext(ctx, query, product)
	if err != nil {
		return fmt.Errorf("create product: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get insert id: %w", err)
	}
	product.ID = id
	return nil
}

// CreateStore inserts a new store
func (r *CatalogRepository) CreateStore(ctx context.Context, store *Store) error {
	query := `
		INSERT INTO stores (name, domain, price_selector, availability_selector)
		VALUES (:name, :domain, :price_selector, :availability_selector)
	`
	result, err := r.db.NamedExecContext(ctx, query, store)
	if err != nil {
		return fmt.Errorf("create store: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get insert id: %w", err)
	}
	store.ID = id
	return nil
}

// GetStore retrieves a store by ID
func (r *CatalogRepository) GetStore(ctx context.Context, id int64) (*Store, error) {
	var store Store
	err := r.db.GetContext(ctx, &store, "SELECT * FROM stores WHERE id = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("store %d not found", id)
		}
		return nil, fmt.Errorf("get store: %w", err)
	}
	return &store, nil
}

// IncrementUsage bumps the scrape counter for a user on the given day
// (YYYY-MM-DD). Used for reporting, not enforcement.
func (r *CatalogRepository) IncrementUsage(ctx context.Context, userID int64, day string) error {
	return withBusyRetry(ctx, func() error {
		query := `
			INSERT INTO usage_tracking (user_id, day, scrape_count) VALUES (?, ?, 1)
			ON CONFLICT(user_id, day) DO UPDATE SET scrape_count = scrape_count + 1
		`
		if _, e := r.db.ExecContext(ctx, query, userID, day); e != nil {
			if isLockError(e) {
				return e // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("increment usage: %w", e)}
		}
		return nil
	})
}

// GetUsage returns the scrape count for a user on the given day
func (r *CatalogRepository) GetUsage(ctx context.Context, userID int64, day string) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		"SELECT COALESCE(SUM(scrape_count), 0) FROM usage_tracking WHERE user_id = ? AND day = ?", userID, day)
	if err != nil {
		return 0, fmt.Errorf("get usage: %w", err)
	}
	return count, nil
}
