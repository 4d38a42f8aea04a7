package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/congklak-backend/internal/bot"
	"github.com/rocketscienceinc/congklak-backend/internal/config"
	"github.com/rocketscienceinc/congklak-backend/internal/repository"
	"github.com/rocketscienceinc/congklak-backend/internal/repository/storage"
	"github.com/rocketscienceinc/congklak-backend/internal/usecase"
	"github.com/rocketscienceinc/congklak-backend/transport/rest"
	"github.com/rocketscienceinc/congklak-backend/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	strategy, err := bot.ByName(conf.BotStrategy)
	if err != nil {
		return fmt.Errorf("could not pick bot strategy: %w", err)
	}

	playerRepo := repository.NewPlayerRepository(redisStorage, conf.GameTTL)
	gameRepo := repository.NewGameRepository(redisStorage, conf.GameTTL)
	gameUseCase := usecase.NewGameManager(logger, playerRepo, gameRepo, conf.Rules, strategy)

	log.Info("game rules loaded",
		"holesPerSide", conf.Rules.HolesPerSide,
		"initialSeeds", conf.Rules.InitialSeeds,
		"maxExtraTurns", conf.Rules.MaxExtraTurns,
		"botStrategy", conf.BotStrategy,
	)

	group, groupCtx := errgroup.WithContext(ctx)

	// run HTTP server
	group.Go(func() error {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		restServer := rest.New(logger, storage.HealthCheck{Client: redisStorage}, conf.Rules)
		if httpErr := restServer.Start(groupCtx, conf.HTTPPort); httpErr != nil {
			return fmt.Errorf("HTTP server error: %w", httpErr)
		}
		return nil
	})

	// run Websocket server
	group.Go(func() error {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsServer := websocket.New(logger, gameUseCase)
		if wsErr := wsServer.Start(groupCtx, conf.SocketPort); wsErr != nil {
			return fmt.Errorf("WebSocket server error: %w", wsErr)
		}
		return nil
	})

	if err = group.Wait(); err != nil {
		return err
	}

	log.Info("Application context canceled, shutting down")

	return nil
}
