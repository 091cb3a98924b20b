package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/shopsync/internal/models"
	"github.com/iudanet/shopsync/internal/server/storage"
)

// Timestamps доменных записей храним в миллисекундах:
// секундной точности не хватает для LWW сравнения.

// GetCart retrieves all cart items for a user
func (s *Storage) GetCart(ctx context.Context, userID string) ([]models.CartItem, error) {
	query := `
		SELECT product_id, name, variant, quantity, unit_price, updated_at
		FROM cart_items
		WHERE user_id = ?
		ORDER BY product_id
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query cart: %w", err)
	}
	defer rows.Close()

	var items []models.CartItem
	for rows.Next() {
		var item models.CartItem
		var updatedAt int64
		if err := rows.Scan(&item.ProductID, &item.Name, &item.Variant, &item.Quantity, &item.UnitPrice, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}
		item.UpdatedAt = time.UnixMilli(updatedAt).UTC()
		items = append(items, item)
	}
	return items, rows.Err()
}

// UpsertCart writes cart items, keeping newer stored rows intact
func (s *Storage) UpsertCart(ctx context.Context, userID string, items []models.CartItem) error {
	query := `
		INSERT INTO cart_items (user_id, product_id, name, variant, quantity, unit_price, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, product_id) DO UPDATE SET
			name = excluded.name,
			variant = excluded.variant,
			quantity = excluded.quantity,
			unit_price = excluded.unit_price,
			updated_at = excluded.updated_at
		WHERE excluded.updated_at >= cart_items.updated_at
	`

	return s.inTx(ctx, func(tx *sql.Tx) error {
		for _, item := range items {
			_, err := tx.ExecContext(ctx, query,
				userID, item.ProductID, item.Name, item.Variant,
				item.Quantity, item.UnitPrice, item.UpdatedAt.UnixMilli(),
			)
			if err != nil {
				return fmt.Errorf("failed to upsert cart item %s: %w", item.ProductID, err)
			}
		}
		return nil
	})
}

// GetPreferences retrieves the user's preferences document
func (s *Storage) GetPreferences(ctx context.Context, userID string) (models.Preferences, error) {
	query := `SELECT data FROM user_preferences WHERE user_id = ?`

	var raw string
	err := s.db.QueryRowContext(ctx, query, userID).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Preferences{}, nil
		}
		return nil, fmt.Errorf("failed to query preferences: %w", err)
	}

	var prefs models.Preferences
	if err := json.Unmarshal([]byte(raw), &prefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal preferences: %w", err)
	}
	return prefs, nil
}

// UpsertPreferences replaces the user's preferences document
func (s *Storage) UpsertPreferences(ctx context.Context, userID string, prefs models.Preferences) error {
	data, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	query := `
		INSERT INTO user_preferences (user_id, data, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			data = excluded.data,
			updated_at = excluded.updated_at
	`
	if _, err := s.db.ExecContext(ctx, query, userID, string(data), time.Now().UnixMilli()); err != nil {
		return fmt.Errorf("failed to upsert preferences: %w", err)
	}
	return nil
}

// GetFavorites retrieves the user's wishlist
func (s *Storage) GetFavorites(ctx context.Context, userID string) ([]models.FavoriteItem, error) {
	query := `
		SELECT product_id, updated_at
		FROM favorites
		WHERE user_id = ?
		ORDER BY product_id
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query favorites: %w", err)
	}
	defer rows.Close()

	var items []models.FavoriteItem
	for rows.Next() {
		var item models.FavoriteItem
		var updatedAt int64
		if err := rows.Scan(&item.ProductID, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		item.UpdatedAt = time.UnixMilli(updatedAt).UTC()
		items = append(items, item)
	}
	return items, rows.Err()
}

// UpsertFavorites writes wishlist items, keeping newer stored rows intact
func (s *Storage) UpsertFavorites(ctx context.Context, userID string, items []models.FavoriteItem) error {
	query := `
		INSERT INTO favorites (user_id, product_id, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (user_id, product_id) DO UPDATE SET
			updated_at = excluded.updated_at
		WHERE excluded.updated_at >= favorites.updated_at
	`

	return s.inTx(ctx, func(tx *sql.Tx) error {
		for _, item := range items {
			if _, err := tx.ExecContext(ctx, query, userID, item.ProductID, item.UpdatedAt.UnixMilli()); err != nil {
				return fmt.Errorf("failed to upsert favorite %s: %w", item.ProductID, err)
			}
		}
		return nil
	})
}

// GetPriceAlerts retrieves all price alerts for a user
func (s *Storage) GetPriceAlerts(ctx context.Context, userID string) ([]models.PriceAlert, error) {
	query := `
		SELECT id, product_id, target_price, is_active, triggered_at, updated_at
		FROM price_alerts
		WHERE user_id = ?
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query alerts: %w", err)
	}
	defer rows.Close()

	var alerts []models.PriceAlert
	for rows.Next() {
		alert, err := scanAlert(rows)
		if err != nil {
			return nil, err
		}
		alerts = append(alerts, alert)
	}
	return alerts, rows.Err()
}

// UpsertPriceAlerts writes alerts with the LWW guard.
// Triggered терминален: сохраненный сработавший alert не может стать
// активным, и его triggered_at не очищается.
func (s *Storage) UpsertPriceAlerts(ctx context.Context, userID string, alerts []models.PriceAlert) error {
	selectQuery := `
		SELECT id, product_id, target_price, is_active, triggered_at, updated_at
		FROM price_alerts
		WHERE id = ? AND user_id = ?
	`
	upsertQuery := `
		INSERT INTO price_alerts (id, user_id, product_id, target_price, is_active, triggered_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			target_price = excluded.target_price,
			is_active = excluded.is_active,
			triggered_at = excluded.triggered_at,
			updated_at = excluded.updated_at
	`

	return s.inTx(ctx, func(tx *sql.Tx) error {
		for _, alert := range alerts {
			existing, err := scanAlertRow(tx.QueryRowContext(ctx, selectQuery, alert.ID, userID))
			if err != nil && !errors.Is(err, storage.ErrAlertNotFound) {
				return err
			}

			if err == nil {
				// LWW guard по записи
				if existing.UpdatedAt.After(alert.UpdatedAt) {
					continue
				}
				// Triggered не откатывается
				if existing.Triggered() {
					if alert.TriggeredAt == nil || existing.TriggeredAt.Before(*alert.TriggeredAt) {
						alert.TriggeredAt = existing.TriggeredAt
					}
					alert.IsActive = false
				}
			}

			var triggeredAt sql.NullInt64
			if alert.TriggeredAt != nil {
				triggeredAt = sql.NullInt64{Int64: alert.TriggeredAt.UnixMilli(), Valid: true}
			}

			_, err = tx.ExecContext(ctx, upsertQuery,
				alert.ID, userID, alert.ProductID, alert.TargetPrice,
				boolToInt(alert.IsActive), triggeredAt, alert.UpdatedAt.UnixMilli(),
			)
			if err != nil {
				return fmt.Errorf("failed to upsert alert %s: %w", alert.ID, err)
			}
		}
		return nil
	})
}

// TriggerPriceAlert точечно фиксирует срабатывание alert
func (s *Storage) TriggerPriceAlert(ctx context.Context, userID string, alert *models.PriceAlert) error {
	query := `
		UPDATE price_alerts
		SET is_active = 0,
		    triggered_at = COALESCE(triggered_at, ?),
		    updated_at = ?
		WHERE id = ? AND user_id = ?
	`

	var triggeredAt sql.NullInt64
	if alert.TriggeredAt != nil {
		triggeredAt = sql.NullInt64{Int64: alert.TriggeredAt.UnixMilli(), Valid: true}
	}

	result, err := s.db.ExecContext(ctx, query, triggeredAt, alert.UpdatedAt.UnixMilli(), alert.ID, userID)
	if err != nil {
		return fmt.Errorf("failed to trigger alert: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrAlertNotFound
	}
	return nil
}

// inTx выполняет fn в транзакции с commit/rollback
func (s *Storage) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAlert(row rowScanner) (models.PriceAlert, error) {
	var alert models.PriceAlert
	var isActive int
	var triggeredAt sql.NullInt64
	var updatedAt int64

	err := row.Scan(&alert.ID, &alert.ProductID, &alert.TargetPrice, &isActive, &triggeredAt, &updatedAt)
	if err != nil {
		return alert, fmt.Errorf("failed to scan alert: %w", err)
	}

	alert.IsActive = isActive != 0
	alert.UpdatedAt = time.UnixMilli(updatedAt).UTC()
	if triggeredAt.Valid {
		ts := time.UnixMilli(triggeredAt.Int64).UTC()
		alert.TriggeredAt = &ts
	}
	return alert, nil
}

func scanAlertRow(row *sql.Row) (models.PriceAlert, error) {
	alert, err := scanAlert(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return alert, storage.ErrAlertNotFound
		}
		return alert, err
	}
	return alert, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
