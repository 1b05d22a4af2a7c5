package myhttp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"loadgo/config"
	"loadgo/internal/admin-service/adapters/driven/bm"
	"loadgo/internal/admin-service/adapters/driven/db"
	"loadgo/internal/admin-service/adapters/driver/myhttp/handle"
	"loadgo/internal/admin-service/adapters/driver/myhttp/middleware"
	"loadgo/internal/admin-service/adapters/driver/myhttp/ws"
	"loadgo/internal/admin-service/core/guard"
	"loadgo/internal/admin-service/core/ports"
	"loadgo/internal/admin-service/core/services"
	"loadgo/internal/mylogger"
)

const WaitTime = 10

type Server struct {
	mux    *http.ServeMux
	cfg    *config.Config
	srv    *http.Server
	mylog  mylogger.Logger
	db     ports.IDB
	mb     ports.IEventsBroker
	ctx    context.Context
	appCtx context.Context
	mu     sync.Mutex
}

func NewServer(ctx, appCtx context.Context, mylog mylogger.Logger, cfg *config.Config) *Server {
	return &Server{
		ctx:    ctx,
		appCtx: appCtx,
		cfg:    cfg,
		mylog:  mylog,
		mux:    http.NewServeMux(),
	}
}

// Run opens the record store and broker, configures routes and listens until
// the context is cancelled or the listener fails.
func (s *Server) Run() error {
	mylog := s.mylog.Action("server_started")

	store, err := s.openStore()
	if err != nil {
		return fmt.Errorf("failed to open record store: %w", err)
	}
	s.db = store
	mylog.Info("record store opened", "driver", store.Dialect())

	// The event feed is best effort: without a broker the dashboard just
	// loses live updates.
	mb, err := bm.New(s.appCtx, *s.cfg.RabbitMq, s.mylog)
	if err != nil {
		mylog.Warn("message broker unavailable, live feed disabled", "err", err.Error())
	} else {
		s.mb = mb
		mylog.Info("message broker connected")
	}

	s.Configure()

	s.mu.Lock()
	s.srv = &http.Server{
		Addr:    fmt.Sprintf(":%d", s.cfg.App.Port),
		Handler: s.mux,
	}
	s.mu.Unlock()

	mylog = mylog.WithGroup("details").With("port", s.cfg.App.Port)

	mylog.Info("server is running")
	return s.startHTTPServer()
}

// Stop shuts the server down gracefully and releases the store and broker.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mylog.Info("Shutting down HTTP server...")

	if s.srv != nil {
		shutdownCtx, cancel := context.WithTimeout(ctx, WaitTime*time.Second)
		defer cancel()

		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			s.mylog.Error("Failed to shut down HTTP server gracefully", err)
			return fmt.Errorf("http server shutdown: %w", err)
		}
	}

	if s.mb != nil {
		if err := s.mb.Close(); err != nil {
			s.mylog.Error("Failed to close message broker", err)
		}
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.mylog.Error("Failed to close record store", err)
			return fmt.Errorf("store close: %w", err)
		}
		s.mylog.Info("Record store closed")
	}

	s.mylog.Info("HTTP server shut down gracefully")
	return nil
}

func (s *Server) openStore() (ports.IDB, error) {
	if s.cfg.DB.Driver == "sqlite" {
		return db.NewSQLite(s.ctx, s.cfg.DB.SQLitePath, s.mylog)
	}
	return db.New(s.ctx, s.cfg.DB, s.mylog)
}

func (s *Server) startHTTPServer() error {
	errCh := make(chan error, 1)

	go func() {
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		} else {
			errCh <- nil
		}
	}()

	select {
	case <-s.ctx.Done():
		return nil
	case err := <-errCh:
		return err
	}
}

// Configure sets up repositories, services and routes.
func (s *Server) Configure() {
	// guarded mutation executor shared by every repo
	executor := guard.NewExecutor(s.db, s.mylog)

	// repositories
	accountsRepo := db.NewAccountsRepo(s.db, executor)
	tripsRepo := db.NewTripsRepo(s.db, executor)
	paymentsRepo := db.NewPaymentsRepo(s.db, executor)
	statsRepo := db.NewStatsRepo(s.db)

	// services
	authService := services.NewAuthService(s.cfg, accountsRepo, s.mylog)
	accountsService := services.NewAccountsService(accountsRepo, s.mb, s.mylog)
	tripsService := services.NewTripsService(tripsRepo, s.mb, s.mylog)
	paymentsService := services.NewPaymentsService(paymentsRepo, s.mb, s.mylog)
	statsService := services.NewStatsService(statsRepo, s.mylog)

	// handlers
	authHandler := handle.NewAuthHandler(authService, s.mylog)
	accountsHandler := handle.NewAccountsHandler(accountsService, s.mylog)
	tripsHandler := handle.NewTripsHandler(tripsService, s.mylog)
	paymentsHandler := handle.NewPaymentsHandler(paymentsService, s.mylog)
	statsHandler := handle.NewStatsHandler(statsService, s.db, s.mylog)

	authMiddleware := middleware.NewAuthMiddleware(s.cfg.App.JwtSecret)

	dispatcher := ws.NewDispatcher(s.mylog)
	s.startEventFeed(dispatcher)

	// auth
	s.mux.Handle("POST /api/auth/register", authHandler.Register())
	s.mux.Handle("POST /api/auth/login", authHandler.Login())
	s.mux.Handle("GET /api/auth/verify", authHandler.Verify())

	// dashboard
	s.mux.Handle("GET /api/health", statsHandler.Health())
	s.mux.Handle("GET /api/stats", statsHandler.Overview())
	s.mux.Handle("GET /api/analytics/trips", statsHandler.TripsPerDay())
	s.mux.Handle("GET /api/analytics/revenue", statsHandler.RevenuePerDay())
	s.mux.Handle("GET /api/trips/recent", tripsHandler.Recent())

	// accounts
	s.mux.Handle("GET /api/accounts", accountsHandler.List())
	s.mux.Handle("PUT /api/accounts/{id}", authMiddleware.Wrap(accountsHandler.Update()))
	s.mux.Handle("DELETE /api/accounts/{id}", authMiddleware.Wrap(accountsHandler.Delete()))

	// trips
	s.mux.Handle("GET /api/trips", tripsHandler.List())
	s.mux.Handle("POST /api/trips", authMiddleware.Wrap(tripsHandler.Create()))
	s.mux.Handle("PUT /api/trips/{id}", authMiddleware.Wrap(tripsHandler.Update()))
	s.mux.Handle("DELETE /api/trips/{id}", authMiddleware.Wrap(tripsHandler.Delete()))

	// payments
	s.mux.Handle("GET /api/payments", paymentsHandler.List())
	s.mux.Handle("POST /api/payments", authMiddleware.Wrap(paymentsHandler.Create()))
	s.mux.Handle("PUT /api/payments/{id}", authMiddleware.Wrap(paymentsHandler.Update()))
	s.mux.Handle("PUT /api/payments/{id}/approve", authMiddleware.Wrap(paymentsHandler.Approve()))
	s.mux.Handle("DELETE /api/payments/{id}", authMiddleware.Wrap(paymentsHandler.Delete()))

	// live dashboard feed
	s.mux.Handle("/ws/admin", dispatcher.WsHandler())
}

// startEventFeed forwards broker deliveries to connected dashboards.
func (s *Server) startEventFeed(dispatcher *ws.Dispatcher) {
	if s.mb == nil {
		return
	}

	events, err := s.mb.ConsumeMutations(s.appCtx)
	if err != nil {
		s.mylog.Warn("cannot consume mutation events, live feed disabled", "err", err.Error())
		return
	}

	go func() {
		for event := range events {
			dispatcher.Broadcast(event)
		}
	}()
}
