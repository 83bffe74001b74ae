package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Totarae/ShortLinks/internal/cache"
	"github.com/Totarae/ShortLinks/internal/config"
	"github.com/Totarae/ShortLinks/internal/database"
	"github.com/Totarae/ShortLinks/internal/handlers"
	"github.com/Totarae/ShortLinks/internal/repositories"
	"github.com/Totarae/ShortLinks/internal/router"
	"github.com/Totarae/ShortLinks/internal/service"
	"github.com/Totarae/ShortLinks/internal/storage"
	"go.uber.org/zap"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Инициализация конфигурации
	cfg := config.NewConfig()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Выбор хранилища: PostgreSQL при заданном DSN, иначе память процесса
	var repo service.Repository
	if cfg.Mode == "database" {
		if err := database.RunMigrations(cfg.DatabaseDSN, logger); err != nil {
			logger.Fatal("Не удалось применить миграции", zap.Error(err))
		}
		db, err := database.NewDB(ctx, cfg.DatabaseDSN, logger)
		if err != nil {
			logger.Fatal("Не удалось подключиться к БД", zap.Error(err))
		}
		defer db.Close()
		repo = repositories.NewLinkRepository(db)
	} else {
		logger.Warn("DSN не задан, ссылки живут в памяти процесса")
		repo = storage.NewMemoryStore()
	}

	// Кеш резолва необязателен
	var resolveCache service.Cache
	if cfg.RedisAddr != "" {
		c, err := cache.ConnectRedis(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			logger.Fatal("Не удалось подключиться к Redis", zap.Error(err))
		}
		defer c.Close()
		resolveCache = c
	}

	svc := service.NewLinkService(repo, resolveCache, logger, cfg.ShortCodeLength)
	handler := handlers.NewHandler(svc, logger, cfg.BaseURL)
	r := router.NewRouter(handler, logger)

	srv := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: r,
	}

	go func() {
		logger.Info("Сервер запущен", zap.String("address", cfg.ServerAddress))
		var err error
		if cfg.EnableHTTPS {
			err = srv.ListenAndServeTLS(cfg.TLSCertPath, cfg.TLSKeyPath)
		} else {
			err = srv.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Ошибка при запуске сервера", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Ошибка при остановке сервера", zap.Error(err))
	}
	logger.Info("Сервер остановлен")
}
