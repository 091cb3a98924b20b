package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/shopsync/internal/models"
	"github.com/iudanet/shopsync/internal/server/storage"
	"github.com/iudanet/shopsync/internal/validation"
	"github.com/iudanet/shopsync/pkg/api"
)

// ProductHandler обрабатывает запросы к каталогу товаров.
// Каталог нужен evaluator-у price alerts: point read текущей цены.
type ProductHandler struct {
	logger  *slog.Logger
	storage storage.ProductStorage
}

// NewProductHandler создает новый handler для каталога
func NewProductHandler(logger *slog.Logger, storage storage.ProductStorage) *ProductHandler {
	return &ProductHandler{
		logger:  logger,
		storage: storage,
	}
}

// GetPrice обрабатывает GET /api/v1/products/{id}/price
func (h *ProductHandler) GetPrice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	productID := r.PathValue("id")
	if err := validation.ValidateProductID(productID); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	product, err := h.storage.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, storage.ErrProductNotFound) {
			sendError(h.logger, w, "product not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get product", slog.Any("error", err), slog.String("product_id", productID))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.ProductPriceResponse{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// Upsert обрабатывает PUT /api/v1/products/{id}
// Создание/обновление товара в каталоге
func (h *ProductHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	productID := r.PathValue("id")
	if err := validation.ValidateProductID(productID); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	var req api.UpsertProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Name == "" {
		sendError(h.logger, w, "name is required", http.StatusBadRequest)
		return
	}
	if req.Price <= 0 {
		sendError(h.logger, w, "price must be positive", http.StatusBadRequest)
		return
	}

	product := &models.Product{
		ID:        productID,
		Name:      req.Name,
		Price:     req.Price,
		UpdatedAt: time.Now(),
	}

	if err := h.storage.UpsertProduct(ctx, product); err != nil {
		h.logger.ErrorContext(ctx, "failed to upsert product", slog.Any("error", err), slog.String("product_id", productID))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "product updated",
		slog.String("product_id", productID),
		slog.Float64("price", req.Price))

	w.WriteHeader(http.StatusNoContent)
}
