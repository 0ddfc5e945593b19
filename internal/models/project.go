package models

import "time"

// Project представляет проект, к которому привязываются тикеты
type Project struct {
	ID          string    `json:"id"`          // UUID проекта
	Title       string    `json:"title"`       // название проекта
	Description string    `json:"description"` // описание
	Creator     string    `json:"creator"`     // email создателя (из claims)
	CreatedAt   time.Time `json:"createdAt"`   // время создания
}
