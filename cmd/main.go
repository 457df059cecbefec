package main

import (
	"context"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	allocationapp "github.com/muhammadheryan/stock-ledger/application/allocation"
	batchapp "github.com/muhammadheryan/stock-ledger/application/batch"
	reservationapp "github.com/muhammadheryan/stock-ledger/application/reservation"
	stocklockapp "github.com/muhammadheryan/stock-ledger/application/stocklock"
	"github.com/muhammadheryan/stock-ledger/cmd/config"
	redisclient "github.com/muhammadheryan/stock-ledger/cmd/redis"
	_ "github.com/muhammadheryan/stock-ledger/docs"
	batchRepo "github.com/muhammadheryan/stock-ledger/repository/batch"
	redisRepo "github.com/muhammadheryan/stock-ledger/repository/redis"
	reservationRepo "github.com/muhammadheryan/stock-ledger/repository/reservation"
	stocklockRepo "github.com/muhammadheryan/stock-ledger/repository/stocklock"
	txRepo "github.com/muhammadheryan/stock-ledger/repository/tx"
	"github.com/muhammadheryan/stock-ledger/thirdparty/rabbitmq"
	"github.com/muhammadheryan/stock-ledger/transport"
	"github.com/muhammadheryan/stock-ledger/utils/logger"
	"github.com/muhammadheryan/stock-ledger/worker"
	"go.uber.org/zap"
)

// @title STOCK LEDGER API
// @version 1.0
// @description Batch-level stock ledger with allocation, reservation and lock engines
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Connect to RabbitMQ. Fact publishing is best-effort, so a broker
	// outage must not keep the ledger from serving traffic.
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Error("err connect rabbitmq, stock change facts disabled", zap.String("error", err.Error()))
		publisher = nil
	} else {
		defer publisher.Close()
	}

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	BatchRepo := batchRepo.NewBatchRepository(db)
	ReservationRepo := reservationRepo.NewReservationRepository(db)
	StockLockRepo := stocklockRepo.NewStockLockRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Initialize application layers
	Allocator := allocationapp.NewAllocator(BatchRepo)
	AllocationApp := allocationapp.NewAllocationApp(TxRepo, Allocator, RedisRepo, publisher)
	BatchApp := batchapp.NewBatchApp(cfg, TxRepo, BatchRepo, Allocator, RedisRepo, publisher)
	ReservationApp := reservationapp.NewReservationApp(cfg, TxRepo, ReservationRepo, BatchRepo, Allocator, RedisRepo, publisher)
	StockLockApp := stocklockapp.NewStockLockApp(TxRepo, StockLockRepo, BatchRepo, RedisRepo, publisher)

	// Background sweeper for expired reservations and locks
	sweepCtx, stopSweeper := context.WithCancel(context.Background())
	defer stopSweeper()
	Sweeper := worker.NewSweeper(cfg.Ledger.SweepInterval, ReservationApp, StockLockApp)
	Sweeper.Start(sweepCtx)

	httpTransport := transport.NewTransport(cfg.Auth.JWTSecret, cfg.Auth.InternalAPIKey, AllocationApp, BatchApp, ReservationApp, StockLockApp, Sweeper)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
