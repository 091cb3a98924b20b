package models

// SyncDomain определяет одну из независимо синхронизируемых категорий данных.
type SyncDomain string

const (
	DomainCart        SyncDomain = "cart"
	DomainPreferences SyncDomain = "preferences"
	DomainFavorites   SyncDomain = "favorites"
	DomainPriceAlerts SyncDomain = "price_alerts"
)

// SyncOrder возвращает фиксированный порядок обработки доменов.
// Порядок важен: PriceAlerts идет последним, потому что evaluator
// читает живые цены и не должен обгонять запись предыдущих доменов.
func SyncOrder() []SyncDomain {
	return []SyncDomain{DomainCart, DomainPreferences, DomainFavorites, DomainPriceAlerts}
}
