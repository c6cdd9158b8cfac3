package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"holiday-reportbot/internal/config"
	"holiday-reportbot/internal/database"
	httpapi "holiday-reportbot/internal/http"
	"holiday-reportbot/internal/line"
	"holiday-reportbot/internal/report"
	"holiday-reportbot/internal/repository"
	"holiday-reportbot/internal/service"
	"holiday-reportbot/internal/store"

	"github.com/go-redis/redis/v8"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the LINE webhook server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loc, err := cfg.Report.Location()
	if err != nil {
		return err
	}

	lineClient, err := line.NewClient(cfg.Line, log)
	if err != nil {
		return err
	}

	reportStore, db, err := openReportStore(ctx, &cfg.Database, log)
	if err != nil {
		return err
	}

	var dedup httpapi.EventClaimer
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		kv := store.NewRedisKV(redisClient)
		if err := kv.Ping(ctx); err != nil {
			log.Warn("Redis ping failed, webhook de-duplication will retry per event", zap.Error(err))
		}
		dedup = store.NewEventDeduper(kv, cfg.Redis.DedupTTL)
	}

	reports := service.NewReportService(reportStore, service.ReportServiceOptions{
		Location:        loc,
		SoldierIDPrefix: cfg.Report.SoldierIDPrefix,
		Temperatures:    report.NewTemperatureGenerator(nil),
	}, log)

	router := httpapi.NewRouter(log)
	router.RegisterWebhookRoutes(httpapi.NewWebhookHandler(lineClient, lineClient, reports, dedup, log))
	if len(cfg.Admin.APIKeys) > 0 {
		router.RegisterReportRoutes(httpapi.NewReportHandler(reports, log), cfg.Admin.APIKeys)
	} else {
		log.Info("No admin API keys configured, report API disabled")
	}

	srv := service.NewServer(cfg.HTTP.Addr, httpapi.WithRequestLog(router, log), log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	var serveErr error
	select {
	case sig := <-sigCh:
		log.Info("Received signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil {
			serveErr = err
			log.Error("HTTP server stopped", zap.Error(err))
		}
	}
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Stop(shutdownCtx)
	if redisClient != nil {
		_ = redisClient.Close()
	}
	if db != nil {
		_ = database.Close(db)
	}
	return serveErr
}

// openReportStore DB 启用时必须连得上，否则启动失败；
// 只有 DB_ENABLED=false 才使用内存实现（本地联调）
func openReportStore(ctx context.Context, dbCfg *config.DatabaseConfig, log *zap.Logger) (repository.Store, *sql.DB, error) {
	if !dbCfg.Enabled {
		log.Warn("DB disabled, using in-memory report store")
		return repository.NewMemoryStore(), nil, nil
	}
	db, err := database.NewPostgresDB(ctx, dbCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect report database: %w", err)
	}
	log.Info("DB enabled for holiday-reportbot")
	return repository.NewPostgresStore(db), db, nil
}
