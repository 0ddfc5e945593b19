package middleware

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/iudanet/bugtrack/internal/server/handlers"
)

// Лимиты классов маршрутов. Счетчики процесс-локальные:
// рестарт сбрасывает все окна, горизонтальное масштабирование
// потребует общего хранилища счетчиков.
const (
	RegisterLimit  = 5
	RegisterWindow = 60 * time.Minute

	ProjectLimit  = 5
	ProjectWindow = 30 * time.Minute

	TicketLimit  = 10
	TicketWindow = 30 * time.Minute
)

// Сообщения отказа по классам маршрутов, сохранены дословно
const (
	RegisterLimitMessage = "Too many accounts created, please try again after an hour"
	ProjectLimitMessage  = "Too many projects created, please wait 30 minutes"
	TicketLimitMessage   = "Too many tickets created, please wait 30 minutes"
)

// RateLimiter ограничивает частоту запросов по ключу (IP клиента)
// в фиксированном окне
type RateLimiter struct {
	windows  map[string]*window
	logger   *slog.Logger
	cleanupC chan struct{}
	max      int
	size     time.Duration
	mu       sync.Mutex
}

// window представляет окно подсчета для конкретного ключа
type window struct {
	startedAt time.Time
	count     int
	mu        sync.Mutex
}

// NewRateLimiter создает новый rate limiter
// max - максимальное количество запросов в окне
// size - длительность окна
func NewRateLimiter(max int, size time.Duration, logger *slog.Logger) *RateLimiter {
	rl := &RateLimiter{
		windows:  make(map[string]*window),
		max:      max,
		size:     size,
		logger:   logger,
		cleanupC: make(chan struct{}),
	}

	// Периодическая очистка истекших окон для экономии памяти
	go rl.cleanup()

	return rl
}

// cleanup периодически удаляет истекшие окна
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(rl.size * 2)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.dropExpired()
		case <-rl.cleanupC:
			return
		}
	}
}

// dropExpired удаляет окна, истекшие больше чем на размер окна назад
func (rl *RateLimiter) dropExpired() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	for key, w := range rl.windows {
		w.mu.Lock()
		if now.Sub(w.startedAt) > rl.size*2 {
			delete(rl.windows, key)
		}
		w.mu.Unlock()
	}
}

// Stop останавливает cleanup goroutine
func (rl *RateLimiter) Stop() {
	close(rl.cleanupC)
}

// Allow проверяет, разрешен ли запрос для данного ключа.
// Инкременты сериализованы per-key мьютексом: без этого конкурентные
// запросы недосчитываются и лимит пропускает больше, чем настроено.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	w, exists := rl.windows[key]
	if !exists {
		w = &window{}
		rl.windows[key] = w
	}
	rl.mu.Unlock()

	w.mu.Lock()
	defer w.mu.Unlock()

	now := time.Now()

	// Нет активного окна или текущее истекло: новое окно, count=1
	if w.startedAt.IsZero() || now.Sub(w.startedAt) >= rl.size {
		w.startedAt = now
		w.count = 1
		return true
	}

	if w.count < rl.max {
		w.count++
		return true
	}

	// Отказ без инкремента: окно обязано истечь в свой срок
	return false
}

// RateLimitMiddleware создает middleware для ограничения частоты запросов.
// Отказ всегда репортится вызывающему с настроенным сообщением.
func RateLimitMiddleware(limiter *RateLimiter, message string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := handlers.ClientIP(r)

			if !limiter.Allow(key) {
				limiter.logger.Warn("rate limit exceeded",
					"ip", key,
					"method", r.Method,
					"path", r.URL.Path,
				)

				w.Header().Set("Content-Type", "text/plain; charset=utf-8")
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(message))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
