package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	couponapp "github.com/jackyeh168/classpoints/src/internal/application/coupon"
	pointsapp "github.com/jackyeh168/classpoints/src/internal/application/points"
	shopapp "github.com/jackyeh168/classpoints/src/internal/application/shop"
	studentapp "github.com/jackyeh168/classpoints/src/internal/application/student"
	"github.com/jackyeh168/classpoints/src/internal/domain/shared"
	"github.com/jackyeh168/classpoints/src/internal/infrastructure/config"
	"github.com/jackyeh168/classpoints/src/internal/infrastructure/logging"
	"github.com/jackyeh168/classpoints/src/internal/infrastructure/persistence"
	catalogpersistence "github.com/jackyeh168/classpoints/src/internal/infrastructure/persistence/catalog"
	couponpersistence "github.com/jackyeh168/classpoints/src/internal/infrastructure/persistence/coupon"
	pointspersistence "github.com/jackyeh168/classpoints/src/internal/infrastructure/persistence/points"
	studentpersistence "github.com/jackyeh168/classpoints/src/internal/infrastructure/persistence/student"
	"github.com/jackyeh168/classpoints/src/internal/infrastructure/scheduler"
	"github.com/jackyeh168/classpoints/src/internal/interfaces/httpapi"
)

func main() {
	envFile := flag.String("env", ".env", "path to optional .env file")
	flag.Parse()

	if err := run(*envFile); err != nil {
		slog.Error("classpoints exited", "error", err)
		os.Exit(1)
	}
}

func run(envFile string) error {
	// 設定與日誌
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}
	logger := logging.Setup(cfg.LogLevel)
	logger.Info("starting classpoints",
		"http", cfg.HTTPAddress,
		"db_driver", cfg.DBDriver,
		"timezone", cfg.Location.String(),
		"sweep_schedule", cfg.CouponSweepSchedule,
	)

	// 資料庫（開啟時執行遷移）
	db, err := persistence.Open(persistence.Options{
		Driver:        cfg.DBDriver,
		DSN:           cfg.DBDSN,
		SlowThreshold: cfg.DBSlowThreshold,
		Logger:        logger,
	})
	if err != nil {
		return err
	}
	defer persistence.Close(db)

	// Repositories
	txManager := persistence.NewGORMTransactionManager(db)
	students := studentpersistence.NewStudentRepository(db)
	items := catalogpersistence.NewShopItemRepository(db)
	ledger := pointspersistence.NewLedgerRepository(db)
	coupons := couponpersistence.NewCouponRepository(db)

	clock := shared.SystemClock{Location: cfg.Location}
	publisher := logging.NewEventPublisher(logger)

	// Use Cases
	expire := couponapp.NewExpireOverdueUseCase(coupons, txManager, publisher, clock)
	uc := httpapi.UseCases{
		RegisterStudent: studentapp.NewRegisterStudentUseCase(students, txManager, clock),
		ListStudents:    studentapp.NewListStudentsUseCase(students),

		AdjustPoints: pointsapp.NewAdjustPointsUseCase(ledger, txManager, publisher, clock),
		AwardPoints:  pointsapp.NewAwardPointsUseCase(ledger, txManager, publisher, clock),
		GetBalance:   pointsapp.NewGetBalanceUseCase(students),
		ListHistory:  pointsapp.NewListHistoryUseCase(students, ledger),
		VerifyLedger: pointsapp.NewVerifyLedgerUseCase(students, ledger, txManager),
		ClassSummary: pointsapp.NewClassSummaryUseCase(students, ledger, txManager),

		Catalog: shopapp.NewCatalogUseCase(items, txManager, clock),
		Purchase: shopapp.NewPurchaseUseCase(
			students, items, ledger, coupons, txManager, publisher, clock, cfg.CouponValidityMonths,
		),

		RequestUse:         couponapp.NewRequestUseUseCase(coupons, txManager, publisher, clock),
		Approve:            couponapp.NewApproveUseCase(coupons, txManager, publisher, clock),
		ListCoupons:        couponapp.NewListCouponsUseCase(coupons, expire, txManager, publisher),
		ListStudentCoupons: couponapp.NewListStudentCouponsUseCase(students, coupons, expire, txManager, publisher),
	}

	// 背景到期掃描
	sweeper, err := scheduler.NewSweeper(cfg.CouponSweepSchedule, cfg.Location, expire, logger)
	if err != nil {
		return err
	}
	if sweeper != nil {
		sweeper.Start()
	}

	// HTTP
	app := httpapi.NewApp(uc, logger)
	serverErr := make(chan error, 1)
	go func() {
		logger.Info("http listening", "address", cfg.HTTPAddress)
		serverErr <- app.Listen(cfg.HTTPAddress)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err = <-serverErr:
	case sig := <-quit:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if shutdownErr := app.ShutdownWithContext(ctx); shutdownErr != nil {
		logger.Warn("http shutdown", "error", shutdownErr)
	}
	if sweeper != nil {
		if stopErr := sweeper.Stop(ctx); stopErr != nil {
			logger.Warn("sweeper shutdown", "error", stopErr)
		}
	}
	return err
}
