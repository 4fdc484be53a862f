// Command api serves the hotel property management API.
//
// @title                       Hotel PMS API
// @version                     1.0
// @description                 Staff dashboard for a small hotel: reservations, rooms, stock, expenses, staff and settings.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	_ "github.com/casaluna/hotel-pms/docs"
	"github.com/casaluna/hotel-pms/internal/api"
	"github.com/casaluna/hotel-pms/internal/api/handler"
	"github.com/casaluna/hotel-pms/internal/api/metrics"
	"github.com/casaluna/hotel-pms/internal/core/service"
	"github.com/casaluna/hotel-pms/internal/core/session"
	"github.com/casaluna/hotel-pms/internal/infrastructure/advisor"
	mongodb "github.com/casaluna/hotel-pms/internal/infrastructure/db/mongo"
	rediscache "github.com/casaluna/hotel-pms/internal/infrastructure/db/redis"
	"github.com/casaluna/hotel-pms/internal/infrastructure/queue"
	"github.com/casaluna/hotel-pms/internal/pkg/config"
	"github.com/casaluna/hotel-pms/pkg/logger"
)

func main() {
	cfg := config.Load()

	logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "hotel-pms",
		Env:     cfg.Env,
	})
	log := logger.Get()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mongoClient, db, err := mongodb.Open(ctx, mongodb.Options{
		URI:         cfg.Mongo.URI,
		Database:    cfg.Mongo.Database,
		AppName:     "hotel-pms",
		MaxPoolSize: cfg.Mongo.MaxPoolSize,
	}, logger.Component("mongodb"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect mongodb")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongodb disconnect")
		}
	}()
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to create indexes")
	}

	rdb, err := rediscache.Open(ctx, rediscache.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	}, logger.Component("redis"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect redis")
	}
	defer rdb.Close()

	responseCache := rediscache.NewResponseCache(rdb, cfg.CacheVersion)
	if purged, err := responseCache.PurgeOtherVersions(ctx); err != nil {
		log.Warn().Err(err).Msg("response cache purge failed")
	} else if purged > 0 {
		metrics.ResponseCacheTotal.WithLabelValues("purged").Add(float64(purged))
		log.Info().Int("keys", purged).Str("version", cfg.CacheVersion).Msg("purged stale response cache")
	}

	// --- Write queue ---
	dispatcher := queue.NewDispatcher(cfg.WriteWorkers, logger.Component("write-queue"))
	dispatcher.Start(ctx)

	// --- Repositories ---
	staffRepo := mongodb.NewStaffRepository(db, logger.Component("staff-repo"))
	roomRepo := mongodb.NewRoomRepository(db, logger.Component("room-repo"))
	reservationRepo := mongodb.NewReservationRepository(db, logger.Component("reservation-repo"))
	stockRepo := mongodb.NewStockRepository(db, logger.Component("stock-repo"))
	expenseRepo := mongodb.NewExpenseRepository(db, logger.Component("expense-repo"))
	dedup := rediscache.NewDeleteDedup(rdb)

	// --- Sessions ---
	// The manager and the auth service reference each other: timers end
	// sessions through the service, the service arms timers at sign-in.
	var authService *service.AuthService
	sessions := session.NewManager(
		session.Config{IdleTimeout: cfg.Session.IdleTimeout, HiddenThreshold: cfg.Session.HiddenThreshold},
		session.SystemClock(),
		func(sessionID string, reason session.Reason) {
			expireCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := authService.Expire(expireCtx, sessionID, string(reason)); err != nil {
				log.Error().Err(err).Str("session_id", sessionID).Msg("failed to expire session")
			}
		},
		logger.Component("session"),
	)
	defer sessions.StopAll()

	authService = service.NewAuthService(
		mongodb.NewAuthRepository(db),
		rediscache.NewSessionStore(rdb),
		sessions,
		mongodb.NewAuditRepository(db),
		staffRepo,
		service.AuthOptions{
			JWTSecret:           cfg.JWTSecret,
			TokenTTL:            cfg.TokenTTL,
			BootstrapAdminEmail: cfg.BootstrapAdminEmail,
		},
		logger.Component("auth"),
	)

	// --- Services ---
	pricingAdvisor := advisor.NewClient(cfg.Advisor.URL, cfg.Advisor.APIKey, cfg.Advisor.Timeout, logger.Component("advisor"))
	svc := api.Services{
		Auth:         authService,
		Roles:        service.NewRoleResolver(staffRepo, logger.Component("roles")),
		Sessions:     sessions,
		Staff:        service.NewStaffService(staffRepo, authService, dispatcher, dedup, logger.Component("staff")),
		Rooms:        service.NewRoomService(roomRepo, dispatcher, dedup, logger.Component("rooms")),
		Reservations: service.NewReservationService(reservationRepo, roomRepo, dispatcher, dedup, logger.Component("reservations")),
		Stock:        service.NewStockService(stockRepo, dispatcher, dedup, logger.Component("stock")),
		Expenses:     service.NewExpenseService(expenseRepo, dispatcher, dedup, logger.Component("expenses")),
		HotelConfig:  service.NewHotelConfigService(mongodb.NewHotelConfigRepository(db), logger.Component("hotel-config")),
		Pricing:      service.NewPricingService(roomRepo, reservationRepo, pricingAdvisor, logger.Component("pricing")),
		Dashboard:    service.NewDashboardService(roomRepo, reservationRepo, expenseRepo, stockRepo),
	}

	e := api.NewRouter(svc, api.Options{
		Cache: responseCache,
		Readiness: map[string]handler.Checker{
			"mongodb": mongodb.Ping(db),
			"redis":   rediscache.Ping(rdb),
		},
		Heartbeat: handler.DefaultHeartbeat,
	}, logger.Component("http"))

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server")
		}
	}()

	waitForShutdown(log)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	cancel()
}

func waitForShutdown(log zerolog.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	log.Info().Str("signal", sig.String()).Msg("shutting down")
}
