// Package notify определяет интерфейс диспетчера пользовательских
// уведомлений. Транспорт доставки (push, локальные нотификации) вне
// зоны ответственности движка синхронизации - движку нужен только
// fire-and-forget вызов Schedule.
package notify

import "context"

//go:generate moq -out notify_mock.go . Dispatcher

// Dispatcher планирует показ одного уведомления пользователю.
type Dispatcher interface {
	// Schedule ставит уведомление в очередь доставки.
	// Ошибка логируется вызывающей стороной и никогда не блокирует
	// обработку остальных уведомлений.
	Schedule(ctx context.Context, title, body string, data map[string]string) error
}
