package api

// RegisterRequest представляет запрос на регистрацию нового пользователя
type RegisterRequest struct {
	Email    string `json:"email"`    // email пользователя
	Password string `json:"password"` // пароль в открытом виде (только по TLS)
}

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Email    string `json:"email"`    // email пользователя
	Password string `json:"password"` // пароль в открытом виде
}

// TokenResponse представляет ответ с токеном доступа.
// Возвращается и при регистрации, и при логине.
type TokenResponse struct {
	Token string `json:"token"` // JWT, срок жизни 24 часа
	Email string `json:"email"` // нормализованный email
}

// CreateProjectRequest представляет запрос на создание проекта
type CreateProjectRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CreateTicketRequest представляет запрос на создание тикета
type CreateTicketRequest struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Project       string `json:"project"`
	Priority      string `json:"priority"`
	Type          string `json:"type"`
	EstimatedTime string `json:"estimatedTime"`
}

// UpdateStatusRequest представляет запрос на смену статуса тикета
type UpdateStatusRequest struct {
	ID     string `json:"id"`     // UUID тикета
	Status string `json:"status"` // новый статус
}

// AddDevsRequest представляет запрос на назначение разработчика на тикет
type AddDevsRequest struct {
	ID     string `json:"id"`     // UUID тикета
	NewDev string `json:"newDev"` // email разработчика
}

// AddCommentRequest представляет запрос на добавление комментария
type AddCommentRequest struct {
	ID      string `json:"id"`      // UUID тикета
	Comment string `json:"comment"` // текст комментария
}

// BanUserRequest представляет запрос на блокировку IP адреса
type BanUserRequest struct {
	IP string `json:"ip"` // IP адрес для блокировки
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	OK     bool    `json:"ok"`
	Uptime float64 `json:"uptime"` // секунды с момента старта процесса
	DB     string  `json:"db"`     // состояние подключения к БД
	Env    string  `json:"env"`    // окружение (development/production)
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error string `json:"error"` // описание ошибки
}

// AuthFailedResponse представляет ответ middleware при невалидном токене.
// Форма сохранена для совместимости с существующими клиентами.
type AuthFailedResponse struct {
	Auth    bool   `json:"auth"`
	Message string `json:"message"`
}
