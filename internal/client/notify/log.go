package notify

import (
	"context"
	"log/slog"
)

// LogDispatcher - реализация Dispatcher, пишущая уведомления в лог.
// Используется CLI клиентом вместо настоящего push транспорта.
type LogDispatcher struct {
	logger *slog.Logger
}

// Compile-time check that LogDispatcher implements Dispatcher
var _ Dispatcher = (*LogDispatcher)(nil)

// NewLogDispatcher creates a dispatcher that logs notifications
func NewLogDispatcher(logger *slog.Logger) *LogDispatcher {
	return &LogDispatcher{logger: logger}
}

// Schedule пишет уведомление в лог
func (d *LogDispatcher) Schedule(ctx context.Context, title, body string, data map[string]string) error {
	attrs := []any{"title", title, "body", body}
	for k, v := range data {
		attrs = append(attrs, k, v)
	}
	d.logger.InfoContext(ctx, "Notification scheduled", attrs...)
	return nil
}
