// Package alerts реализует evaluator price alert-ов: по merged набору
// alert-ов и живым ценам товаров решает, какие alerts срабатывают,
// планирует уведомления и фиксирует переход в состояние Triggered.
package alerts

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	httpclient "github.com/iudanet/shopsync/internal/client/api"
	"github.com/iudanet/shopsync/internal/client/notify"
	"github.com/iudanet/shopsync/internal/models"
	"github.com/iudanet/shopsync/pkg/api"
)

// Evaluator превращает merged набор price alerts в уведомления
// и переходы состояний
type Evaluator struct {
	apiClient  httpclient.ClientAPI
	dispatcher notify.Dispatcher
	logger     *slog.Logger
	now        func() time.Time
}

// NewEvaluator creates a new alert evaluator
func NewEvaluator(apiClient httpclient.ClientAPI, dispatcher notify.Dispatcher, logger *slog.Logger) *Evaluator {
	return &Evaluator{
		apiClient:  apiClient,
		dispatcher: dispatcher,
		logger:     logger,
		now:        time.Now,
	}
}

// Result contains alert evaluation counters
type Result struct {
	Evaluated int // количество проверенных alerts (активных и несработавших)
	Fired     int // количество сработавших alerts
	Skipped   int // количество пропущенных из-за ошибки чтения цены
}

// Evaluate последовательно проходит merged alerts в порядке merge.
// Для каждого активного несработавшего alert:
//  1. Point read текущей цены товара (не локальный кэш).
//  2. Ошибка чтения цены - alert пропускается до следующего цикла.
//  3. Если цена <= целевой: одно уведомление, затем перевод в Triggered
//     в локальной копии и точечный remote update.
//
// Сработавшие и неактивные alerts не трогаются: Triggered терминален.
// Срез alerts мутируется на месте; вызывающая сторона сохраняет его
// в локальный кэш после Evaluate.
func (e *Evaluator) Evaluate(ctx context.Context, token string, alerts []models.PriceAlert) Result {
	var result Result

	for i := range alerts {
		if !alerts[i].Eligible() {
			continue
		}
		result.Evaluated++

		price, err := e.apiClient.ReadProductPrice(ctx, token, alerts[i].ProductID)
		if err != nil {
			// Не фатально: alert проверится на следующем цикле
			e.logger.WarnContext(ctx, "Failed to read product price, skipping alert",
				"alert_id", alerts[i].ID,
				"product_id", alerts[i].ProductID,
				"error", err)
			result.Skipped++
			continue
		}

		if price.Price > alerts[i].TargetPrice {
			continue
		}

		e.fire(ctx, token, &alerts[i], price)
		result.Fired++
	}

	if result.Fired > 0 || result.Skipped > 0 {
		e.logger.InfoContext(ctx, "Alert evaluation completed",
			"evaluated", result.Evaluated,
			"fired", result.Fired,
			"skipped", result.Skipped)
	}

	return result
}

// fire отправляет уведомление и фиксирует срабатывание alert
func (e *Evaluator) fire(ctx context.Context, token string, alert *models.PriceAlert, price *api.ProductPriceResponse) {
	now := e.now()

	// Уведомление fire-and-forget: ошибка доставки не отменяет срабатывание
	title := "Price drop alert"
	body := fmt.Sprintf("%s is now %.2f (target %.2f)", price.Name, price.Price, alert.TargetPrice)
	data := map[string]string{
		"alert_id":      alert.ID,
		"product_id":    alert.ProductID,
		"product_name":  price.Name,
		"target_price":  fmt.Sprintf("%.2f", alert.TargetPrice),
		"current_price": fmt.Sprintf("%.2f", price.Price),
	}
	if err := e.dispatcher.Schedule(ctx, title, body, data); err != nil {
		e.logger.WarnContext(ctx, "Failed to schedule notification",
			"alert_id", alert.ID,
			"error", err)
	}

	if err := alert.Trigger(now); err != nil {
		e.logger.WarnContext(ctx, "Failed to trigger alert", "alert_id", alert.ID, "error", err)
		return
	}

	// Фиксируем срабатывание на сервере. Ошибка не откатывает локальное
	// состояние: следующий push домена price_alerts доставит его.
	req := api.UpdatePriceAlertRequest{
		IsActive:    false,
		TriggeredAt: alert.TriggeredAt,
		UpdatedAt:   alert.UpdatedAt,
	}
	if err := e.apiClient.UpdatePriceAlert(ctx, token, alert.ID, req); err != nil {
		e.logger.WarnContext(ctx, "Failed to update alert on server",
			"alert_id", alert.ID,
			"error", err)
	}

	e.logger.InfoContext(ctx, "Price alert fired",
		"alert_id", alert.ID,
		"product_id", alert.ProductID,
		"current_price", price.Price,
		"target_price", alert.TargetPrice)
}
