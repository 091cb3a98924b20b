// Package merge содержит чистые стратегии слияния локального и удаленного
// набора записей одного домена в один авторитетный набор.
//
// Для keyed доменов (cart, favorites, price alerts) применяется
// Last-Write-Wins по wall-clock UpdatedAt. Preferences сливаются иначе:
// shallow overlay, где локальный ключ всегда перекрывает удаленный.
// Эта асимметрия намеренная: UI-настройки считаются client-authoritative.
package merge

import (
	"time"

	"github.com/iudanet/shopsync/internal/models"
)

// Keyed ограничивает типы записей, участвующих в LWW merge.
type Keyed interface {
	// Key возвращает натуральный ключ записи (product_id, id alert-а)
	Key() string

	// ModifiedAt возвращает время последнего изменения записи
	ModifiedAt() time.Time
}

// valid отсекает записи без натурального ключа или timestamp.
// Такая запись исключается из merge, а не роняет pipeline.
func valid[T Keyed](r T) bool {
	return r.Key() != "" && !r.ModifiedAt().IsZero()
}

// LastWriteWins сливает локальный и удаленный набор keyed записей.
//
// Правила:
//  1. Удаленный набор - baseline (источник истины для нетронутых записей).
//  2. Локальная запись с существующим ключом побеждает только при строго
//     большем UpdatedAt; при равенстве выигрывает remote.
//  3. Локальная запись с новым ключом добавляется в конец
//     (pending creation, еще не доехавшая до сервера).
//
// Результат содержит объединение ключей обеих сторон, по одной записи
// на ключ. Возвращает (merged, skipped), где skipped - количество
// исключенных невалидных записей. Операция идемпотентна.
func LastWriteWins[T Keyed](local, remote []T) ([]T, int) {
	skipped := 0
	merged := make([]T, 0, len(remote)+len(local))
	index := make(map[string]int, len(remote))

	for _, r := range remote {
		if !valid(r) {
			skipped++
			continue
		}
		if i, ok := index[r.Key()]; ok {
			// Дубликат ключа внутри remote: оставляем более свежий
			if r.ModifiedAt().After(merged[i].ModifiedAt()) {
				merged[i] = r
			}
			continue
		}
		index[r.Key()] = len(merged)
		merged = append(merged, r)
	}

	for _, l := range local {
		if !valid(l) {
			skipped++
			continue
		}
		if i, ok := index[l.Key()]; ok {
			if l.ModifiedAt().After(merged[i].ModifiedAt()) {
				merged[i] = l
			}
			continue
		}
		index[l.Key()] = len(merged)
		merged = append(merged, l)
	}

	return merged, skipped
}

// PriceAlerts сливает price alerts по LWW и дополнительно защищает
// терминальное состояние Triggered: если alert сработал хотя бы на одной
// стороне, merged запись остается сработавшей, даже если проигравшая LWW
// версия была активной. Движок никогда не воскрешает Triggered alert.
func PriceAlerts(local, remote []models.PriceAlert) ([]models.PriceAlert, int) {
	triggered := make(map[string]*time.Time)
	for _, set := range [][]models.PriceAlert{remote, local} {
		for _, a := range set {
			if a.TriggeredAt == nil {
				continue
			}
			if prev, ok := triggered[a.ID]; !ok || a.TriggeredAt.Before(*prev) {
				t := *a.TriggeredAt
				triggered[a.ID] = &t
			}
		}
	}

	merged, skipped := LastWriteWins(local, remote)

	for i := range merged {
		if t, ok := triggered[merged[i].ID]; ok && merged[i].TriggeredAt == nil {
			merged[i].TriggeredAt = t
		}
		// Инвариант: сработавший alert не может быть активным
		if merged[i].TriggeredAt != nil {
			merged[i].IsActive = false
		}
	}

	return merged, skipped
}

// Preferences сливает настройки shallow overlay-ем: каждый ключ верхнего
// уровня, присутствующий локально, перекрывает удаленный; отсутствующие
// локально ключи берутся из remote. Timestamps не участвуют.
func Preferences(local, remote models.Preferences) models.Preferences {
	merged := make(models.Preferences, len(local)+len(remote))
	for k, v := range remote {
		merged[k] = v
	}
	for k, v := range local {
		merged[k] = v
	}
	return merged
}
