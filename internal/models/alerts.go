package models

import (
	"fmt"
	"time"
)

// PriceAlert представляет подписку пользователя на снижение цены товара.
//
// Машина состояний:
//   - Active (untriggered): IsActive=true, TriggeredAt=nil
//   - Inactive (untriggered): IsActive=false, TriggeredAt=nil (ручное отключение)
//   - Triggered: IsActive=false, TriggeredAt!=nil
//
// Переход Active -> Triggered выполняет evaluator и он односторонний:
// сработавший alert никогда не возвращается в Active движком синхронизации.
type PriceAlert struct {
	TriggeredAt *time.Time `json:"triggered_at,omitempty"` // терминальный: однажды установлен - не очищается
	UpdatedAt   time.Time  `json:"updated_at"`
	ID          string     `json:"id"` // UUID записи
	ProductID   string     `json:"product_id"`
	TargetPrice float64    `json:"target_price"`
	IsActive    bool       `json:"is_active"`
}

// Key возвращает натуральный ключ записи для keyed merge
func (a PriceAlert) Key() string {
	return a.ID
}

// ModifiedAt возвращает timestamp записи для LWW разрешения конфликтов
func (a PriceAlert) ModifiedAt() time.Time {
	return a.UpdatedAt
}

// Triggered сообщает, сработал ли alert (терминальное состояние)
func (a PriceAlert) Triggered() bool {
	return a.TriggeredAt != nil
}

// Eligible сообщает, должен ли evaluator проверять alert на этом проходе:
// только активные и еще не сработавшие alerts.
func (a PriceAlert) Eligible() bool {
	return a.IsActive && a.TriggeredAt == nil
}

// Trigger переводит alert в терминальное состояние Triggered.
// Возвращает ошибку, если alert уже сработал.
func (a *PriceAlert) Trigger(now time.Time) error {
	if a.TriggeredAt != nil {
		return fmt.Errorf("alert %s already triggered at %s", a.ID, a.TriggeredAt.Format(time.RFC3339))
	}
	t := now
	a.TriggeredAt = &t
	a.IsActive = false
	a.UpdatedAt = now
	return nil
}

// Validate проверяет инвариант состояния alert:
// TriggeredAt != nil => IsActive == false
func (a PriceAlert) Validate() error {
	if a.TriggeredAt != nil && a.IsActive {
		return fmt.Errorf("alert %s is both active and triggered", a.ID)
	}
	return nil
}
