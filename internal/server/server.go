package server

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/bugtrack/internal/server/handlers"
	"github.com/iudanet/bugtrack/internal/server/middleware"
	"github.com/iudanet/bugtrack/internal/server/storage"
	"github.com/iudanet/bugtrack/internal/server/token"
)

// Stores объединяет хранилища, нужные HTTP слою
type Stores struct {
	Users    storage.UserStorage
	Projects storage.ProjectStorage
	Tickets  storage.TicketStorage
	Bans     storage.BanStorage
}

// Server обслуживает HTTP API трекера
type Server struct {
	logger   *slog.Logger
	httpSrv  *http.Server
	limiters []*middleware.RateLimiter
}

// New собирает сервер: маршруты, middleware цепочку и лимитеры
func New(addr, env, frontendOrigin string, logger *slog.Logger, db *sql.DB, stores Stores, tokens *token.Service) *Server {
	authHandler := handlers.NewAuthHandler(logger, stores.Users, tokens)
	securityHandler := handlers.NewSecurityHandler(logger, stores.Bans)
	adminHandler := handlers.NewAdminHandler(logger, stores.Users, stores.Bans)
	projectHandler := handlers.NewProjectHandler(logger, stores.Projects)
	ticketHandler := handlers.NewTicketHandler(logger, stores.Tickets)
	healthHandler := handlers.NewHealthHandler(logger, db, env)

	auth := middleware.AuthMiddleware(logger, tokens)
	admin := middleware.AdminOnly(logger)

	// Три независимых лимитера по классам маршрутов
	registerLimiter := middleware.NewRateLimiter(middleware.RegisterLimit, middleware.RegisterWindow, logger)
	projectLimiter := middleware.NewRateLimiter(middleware.ProjectLimit, middleware.ProjectWindow, logger)
	ticketLimiter := middleware.NewRateLimiter(middleware.TicketLimit, middleware.TicketWindow, logger)

	limitRegister := middleware.RateLimitMiddleware(registerLimiter, middleware.RegisterLimitMessage)
	limitProject := middleware.RateLimitMiddleware(projectLimiter, middleware.ProjectLimitMessage)
	limitTicket := middleware.RateLimitMiddleware(ticketLimiter, middleware.TicketLimitMessage)

	mux := http.NewServeMux()

	// Служебные маршруты
	mux.HandleFunc("GET /{$}", healthHandler.Root)
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.HandleFunc("GET /pingServer", healthHandler.Ping)

	// Аутентификация
	mux.Handle("POST /register", limitRegister(http.HandlerFunc(authHandler.Register)))
	mux.HandleFunc("POST /login", authHandler.Login)
	mux.Handle("GET /isUserAuth", auth(http.HandlerFunc(authHandler.IsUserAuth)))
	mux.HandleFunc("GET /userSecurity", securityHandler.UserSecurity)

	// Проекты
	mux.Handle("POST /createProject", auth(limitProject(http.HandlerFunc(projectHandler.CreateProject))))
	mux.Handle("GET /getAllProjects", auth(http.HandlerFunc(projectHandler.GetAllProjects)))

	// Тикеты
	mux.Handle("POST /createTicket", auth(limitTicket(http.HandlerFunc(ticketHandler.CreateTicket))))
	mux.Handle("GET /getAllTickets", auth(http.HandlerFunc(ticketHandler.GetAllTickets)))
	mux.Handle("POST /updateStatus", auth(http.HandlerFunc(ticketHandler.UpdateStatus)))
	mux.Handle("POST /addDevs", auth(http.HandlerFunc(ticketHandler.AddDevs)))
	mux.Handle("POST /addComment", auth(http.HandlerFunc(ticketHandler.AddComment)))

	// Администрирование
	mux.Handle("GET /getUsers", auth(admin(http.HandlerFunc(adminHandler.GetUsers))))
	mux.Handle("POST /banUser", auth(admin(http.HandlerFunc(adminHandler.BanUser))))

	// Несматченные пути (включая не-GET на /) падают в Root → 404
	mux.HandleFunc("/", healthHandler.Root)

	// Глобальная цепочка: recovery снаружи, затем логирование, затем CORS
	var handler http.Handler = mux
	handler = middleware.CORSMiddleware(frontendOrigin)(handler)
	handler = middleware.LoggingMiddleware(logger)(handler)
	handler = middleware.RecoveryMiddleware(logger)(handler)

	return &Server{
		logger: logger,
		httpSrv: &http.Server{
			Addr:         addr,
			Handler:      handler,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		limiters: []*middleware.RateLimiter{registerLimiter, projectLimiter, ticketLimiter},
	}
}

// Handler returns the root handler for testing purposes
func (s *Server) Handler() http.Handler {
	return s.httpSrv.Handler
}

// Run блокируется до отмены контекста, затем gracefully останавливает сервер
func (s *Server) Run(ctx context.Context) error {
	errC := make(chan error, 1)

	go func() {
		s.logger.Info("server listening", "addr", s.httpSrv.Addr)
		if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errC <- err
		}
	}()

	select {
	case err := <-errC:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")

	for _, limiter := range s.limiters {
		limiter.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.httpSrv.Shutdown(shutdownCtx)
}
