package models

import "time"

// StatusNew назначается каждому новому тикету при создании
const StatusNew = "new"

// Ticket представляет тикет (issue), привязанный к проекту
type Ticket struct {
	ID            string    `json:"id"`            // UUID тикета
	Title         string    `json:"title"`         // заголовок
	Description   string    `json:"description"`   // описание проблемы
	Project       string    `json:"project"`       // название проекта
	TicketAuthor  string    `json:"ticketAuthor"`  // email автора (из claims)
	Priority      string    `json:"priority"`      // приоритет
	Status        string    `json:"status"`        // текущий статус
	Type          string    `json:"type"`          // тип (bug, feature, ...)
	EstimatedTime string    `json:"estimatedTime"` // оценка времени
	AssignedDevs  []string  `json:"assignedDevs"`  // назначенные разработчики
	Comments      []Comment `json:"comments"`      // комментарии
	CreatedAt     time.Time `json:"createdAt"`     // время создания
}

// Comment представляет комментарий к тикету
type Comment struct {
	Author  string `json:"author"`  // email автора (из claims)
	Comment string `json:"comment"` // текст комментария
}
