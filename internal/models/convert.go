package models

import (
	"time"

	"github.com/iudanet/shopsync/pkg/api"
)

// Конвертация между внутренними моделями и wire-форматом pkg/api.
// Структуры совпадают по полям, но держатся раздельно, чтобы изменение
// wire-формата не меняло молча внутренние инварианты.

// CartFromAPI конвертирует wire-формат корзины во внутренние модели
func CartFromAPI(in []api.CartItem) []CartItem {
	out := make([]CartItem, 0, len(in))
	for _, item := range in {
		out = append(out, CartItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Variant:   item.Variant,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			UpdatedAt: item.UpdatedAt,
		})
	}
	return out
}

// CartToAPI конвертирует внутренние модели корзины в wire-формат
func CartToAPI(in []CartItem) []api.CartItem {
	out := make([]api.CartItem, 0, len(in))
	for _, item := range in {
		out = append(out, api.CartItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Variant:   item.Variant,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			UpdatedAt: item.UpdatedAt,
		})
	}
	return out
}

// FavoritesFromAPI конвертирует wire-формат wishlist во внутренние модели
func FavoritesFromAPI(in []api.FavoriteItem) []FavoriteItem {
	out := make([]FavoriteItem, 0, len(in))
	for _, item := range in {
		out = append(out, FavoriteItem{
			ProductID: item.ProductID,
			UpdatedAt: item.UpdatedAt,
		})
	}
	return out
}

// FavoritesToAPI конвертирует внутренние модели wishlist в wire-формат
func FavoritesToAPI(in []FavoriteItem) []api.FavoriteItem {
	out := make([]api.FavoriteItem, 0, len(in))
	for _, item := range in {
		out = append(out, api.FavoriteItem{
			ProductID: item.ProductID,
			UpdatedAt: item.UpdatedAt,
		})
	}
	return out
}

// AlertsFromAPI конвертирует wire-формат price alerts во внутренние модели
func AlertsFromAPI(in []api.PriceAlert) []PriceAlert {
	out := make([]PriceAlert, 0, len(in))
	for _, alert := range in {
		out = append(out, PriceAlert{
			ID:          alert.ID,
			ProductID:   alert.ProductID,
			TargetPrice: alert.TargetPrice,
			IsActive:    alert.IsActive,
			TriggeredAt: cloneTime(alert.TriggeredAt),
			UpdatedAt:   alert.UpdatedAt,
		})
	}
	return out
}

// AlertsToAPI конвертирует внутренние модели price alerts в wire-формат
func AlertsToAPI(in []PriceAlert) []api.PriceAlert {
	out := make([]api.PriceAlert, 0, len(in))
	for _, alert := range in {
		out = append(out, api.PriceAlert{
			ID:          alert.ID,
			ProductID:   alert.ProductID,
			TargetPrice: alert.TargetPrice,
			IsActive:    alert.IsActive,
			TriggeredAt: cloneTime(alert.TriggeredAt),
			UpdatedAt:   alert.UpdatedAt,
		})
	}
	return out
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
