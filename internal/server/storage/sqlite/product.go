package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/shopsync/internal/models"
	"github.com/iudanet/shopsync/internal/server/storage"
)

// GetProduct retrieves a product from the catalog
func (s *Storage) GetProduct(ctx context.Context, productID string) (*models.Product, error) {
	query := `SELECT id, name, price, updated_at FROM products WHERE id = ?`

	var product models.Product
	var updatedAt int64
	err := s.db.QueryRowContext(ctx, query, productID).Scan(&product.ID, &product.Name, &product.Price, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	product.UpdatedAt = time.UnixMilli(updatedAt).UTC()
	return &product, nil
}

// UpsertProduct creates or updates a catalog product
func (s *Storage) UpsertProduct(ctx context.Context, product *models.Product) error {
	query := `
		INSERT INTO products (id, name, price, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			price = excluded.price,
			updated_at = excluded.updated_at
	`

	_, err := s.db.ExecContext(ctx, query, product.ID, product.Name, product.Price, product.UpdatedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to upsert product: %w", err)
	}
	return nil
}
