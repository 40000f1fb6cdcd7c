package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-service/internal/config"
	"github.com/rocketscienceinc/tictactoe-service/internal/repository"
	"github.com/rocketscienceinc/tictactoe-service/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-service/internal/service"
	"github.com/rocketscienceinc/tictactoe-service/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-service/transport/rest"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	sqliteStorage, err := storage.NewSQLiteStorage(conf.SQLiteStoragePath)
	if err != nil {
		return fmt.Errorf("could not open sqlite storage: %w", err)
	}
	defer closeStorage(log, "sqlite", sqliteStorage)

	if err = sqliteStorage.Init(ctx); err != nil {
		return fmt.Errorf("could not init sqlite storage: %w", err)
	}

	gameRepo, closer, err := newGameRepository(ctx, conf)
	if err != nil {
		return err
	}
	defer closeStorage(log, conf.GameStorage, closer)

	userService := service.NewUserService(repository.NewUserRepository(sqliteStorage.Connection))
	gameUseCase := usecase.NewGameManager(logger, userService, gameRepo, usecase.DefaultRandomBit)

	log.Info("Starting HTTP server", "port", conf.HTTPPort, "gameStorage", conf.GameStorage)

	server := rest.New(logger, gameUseCase, userService)
	if err = server.Start(ctx, conf.HTTPPort, conf.ShutdownTimeout); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}

func newGameRepository(ctx context.Context, conf *config.Config) (repository.GameRepository, io.Closer, error) {
	if conf.GameStorage == config.GameStorageMemory {
		return repository.NewMemoryGameRepository(), nopCloser{}, nil
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return nil, nil, ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	return repository.NewGameRepository(redisStorage.Connection), redisStorage, nil
}

func closeStorage(log *slog.Logger, name string, closer io.Closer) {
	if err := closer.Close(); err != nil {
		log.Error("could not close storage", "storage", name, "error", err)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
