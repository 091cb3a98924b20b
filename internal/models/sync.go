package models

import "time"

// SyncState представляет watermark последней успешной полной синхронизации.
// Глобальный для пользователя, не per-domain (осознанное упрощение).
type SyncState struct {
	LastSync *time.Time `json:"last_sync"`
}

// Stale сообщает, пора ли синхронизироваться: watermark отсутствует
// или прошло больше maxAge с момента последней синхронизации.
func (s SyncState) Stale(now time.Time, maxAge time.Duration) bool {
	if s.LastSync == nil {
		return true
	}
	return now.Sub(*s.LastSync) > maxAge
}
