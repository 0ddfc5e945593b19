package models

import "time"

// BannedIP представляет заблокированный IP адрес.
// Блокировка постоянная: запись живет до ручного удаления.
type BannedIP struct {
	IP       string    `json:"ip"`       // нормализованный IP адрес
	BannedAt time.Time `json:"bannedAt"` // время блокировки
}
