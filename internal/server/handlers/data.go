package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/shopsync/internal/models"
	"github.com/iudanet/shopsync/internal/server/storage"
	"github.com/iudanet/shopsync/internal/validation"
	"github.com/iudanet/shopsync/pkg/api"
)

// DataHandler обрабатывает per-domain чтение и запись данных пользователя.
// Пользователь определяется access token-ом (AuthMiddleware кладет
// user_id в контекст), path не содержит userID.
type DataHandler struct {
	logger  *slog.Logger
	storage storage.DataStorage
}

// NewDataHandler создает новый handler для данных пользователя
func NewDataHandler(logger *slog.Logger, storage storage.DataStorage) *DataHandler {
	return &DataHandler{
		logger:  logger,
		storage: storage,
	}
}

// userID извлекает user_id из контекста, установленного AuthMiddleware
func (h *DataHandler) userID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		h.logger.Error("user_id not found in context")
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return "", false
	}
	return userID, true
}

// GetCart обрабатывает GET /api/v1/cart
func (h *DataHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	items, err := h.storage.GetCart(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get cart", slog.Any("error", err), slog.String("user_id", userID))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, api.CartResponse{Items: models.CartToAPI(items)}, http.StatusOK)
}

// PutCart обрабатывает PUT /api/v1/cart
// Записывает корзину целиком; строки новее присланных не перетираются
func (h *DataHandler) PutCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req api.UpsertCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	for _, item := range req.Items {
		if err := validation.ValidateProductID(item.ProductID); err != nil {
			sendError(h.logger, w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := validation.ValidateQuantity(item.Quantity); err != nil {
			sendError(h.logger, w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	if err := h.storage.UpsertCart(ctx, userID, models.CartFromAPI(req.Items)); err != nil {
		h.logger.ErrorContext(ctx, "failed to upsert cart", slog.Any("error", err), slog.String("user_id", userID))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "cart updated",
		slog.String("user_id", userID),
		slog.Int("items", len(req.Items)))

	w.WriteHeader(http.StatusNoContent)
}

// GetPreferences обрабатывает GET /api/v1/preferences
func (h *DataHandler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	prefs, err := h.storage.GetPreferences(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get preferences", slog.Any("error", err), slog.String("user_id", userID))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, api.PreferencesResponse{Preferences: prefs}, http.StatusOK)
}

// PutPreferences обрабатывает PUT /api/v1/preferences
// Заменяет документ preferences целиком
func (h *DataHandler) PutPreferences(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req api.UpsertPreferencesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.storage.UpsertPreferences(ctx, userID, models.Preferences(req.Preferences)); err != nil {
		h.logger.ErrorContext(ctx, "failed to upsert preferences", slog.Any("error", err), slog.String("user_id", userID))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "preferences updated", slog.String("user_id", userID))

	w.WriteHeader(http.StatusNoContent)
}

// GetFavorites обрабатывает GET /api/v1/favorites
func (h *DataHandler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	items, err := h.storage.GetFavorites(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get favorites", slog.Any("error", err), slog.String("user_id", userID))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, api.FavoritesResponse{Items: models.FavoritesToAPI(items)}, http.StatusOK)
}

// PutFavorites обрабатывает PUT /api/v1/favorites
func (h *DataHandler) PutFavorites(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req api.UpsertFavoritesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	for _, item := range req.Items {
		if err := validation.ValidateProductID(item.ProductID); err != nil {
			sendError(h.logger, w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	if err := h.storage.UpsertFavorites(ctx, userID, models.FavoritesFromAPI(req.Items)); err != nil {
		h.logger.ErrorContext(ctx, "failed to upsert favorites", slog.Any("error", err), slog.String("user_id", userID))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "favorites updated",
		slog.String("user_id", userID),
		slog.Int("items", len(req.Items)))

	w.WriteHeader(http.StatusNoContent)
}

// GetPriceAlerts обрабатывает GET /api/v1/alerts
func (h *DataHandler) GetPriceAlerts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	alerts, err := h.storage.GetPriceAlerts(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get alerts", slog.Any("error", err), slog.String("user_id", userID))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, api.PriceAlertsResponse{Alerts: models.AlertsToAPI(alerts)}, http.StatusOK)
}

// PutPriceAlerts обрабатывает PUT /api/v1/alerts
// Сработавшие alerts на сервере не реактивируются присланным состоянием
func (h *DataHandler) PutPriceAlerts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req api.UpsertPriceAlertsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	alerts := models.AlertsFromAPI(req.Alerts)
	for _, alert := range alerts {
		if alert.ID == "" {
			sendError(h.logger, w, "alert id is required", http.StatusBadRequest)
			return
		}
		if err := validation.ValidateProductID(alert.ProductID); err != nil {
			sendError(h.logger, w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := validation.ValidateTargetPrice(alert.TargetPrice); err != nil {
			sendError(h.logger, w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := alert.Validate(); err != nil {
			sendError(h.logger, w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	if err := h.storage.UpsertPriceAlerts(ctx, userID, alerts); err != nil {
		h.logger.ErrorContext(ctx, "failed to upsert alerts", slog.Any("error", err), slog.String("user_id", userID))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "alerts updated",
		slog.String("user_id", userID),
		slog.Int("alerts", len(req.Alerts)))

	w.WriteHeader(http.StatusNoContent)
}

// PatchPriceAlert обрабатывает PATCH /api/v1/alerts/{id}
// Точечное обновление состояния alert: evaluator фиксирует срабатывание
func (h *DataHandler) PatchPriceAlert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	alertID := r.PathValue("id")
	if alertID == "" {
		sendError(h.logger, w, "alert id is required", http.StatusBadRequest)
		return
	}

	var req api.UpdatePriceAlertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	alert := models.PriceAlert{
		ID:          alertID,
		IsActive:    req.IsActive,
		TriggeredAt: req.TriggeredAt,
		UpdatedAt:   req.UpdatedAt,
	}
	if err := alert.Validate(); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.storage.TriggerPriceAlert(ctx, userID, &alert); err != nil {
		if errors.Is(err, storage.ErrAlertNotFound) {
			sendError(h.logger, w, "alert not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to update alert", slog.Any("error", err),
			slog.String("user_id", userID), slog.String("alert_id", alertID))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "alert state updated",
		slog.String("user_id", userID),
		slog.String("alert_id", alertID))

	w.WriteHeader(http.StatusNoContent)
}
