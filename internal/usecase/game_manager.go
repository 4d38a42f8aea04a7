package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/congklak-backend/internal/apperror"
	"github.com/rocketscienceinc/congklak-backend/internal/bot"
	"github.com/rocketscienceinc/congklak-backend/internal/congklak"
	"github.com/rocketscienceinc/congklak-backend/internal/entity"
	"github.com/rocketscienceinc/congklak-backend/internal/repository"
)

var ErrNoActiveGame = errors.New("player has no active game")

type playerRepo interface {
	CreateOrUpdate(ctx context.Context, player *entity.Player) error
	GetByID(ctx context.Context, id string) (*entity.Player, error)
}

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// TurnResult is the game after a submission together with every move it caused.
type TurnResult struct {
	Game   *entity.Game    `json:"game"`
	Report congklak.Report `json:"report"`
}

type GameManager struct {
	logger     *slog.Logger
	playerRepo playerRepo
	gameRepo   gameRepo

	rules    entity.Rules
	strategy bot.Strategy

	// gameID -> *sync.Mutex, held while a move of that game is being resolved
	locks sync.Map
}

func NewGameManager(logger *slog.Logger, playerRepo playerRepo, gameRepo gameRepo, rules entity.Rules, strategy bot.Strategy) *GameManager {
	return &GameManager{
		logger: logger.With("component", "gameManager"),

		playerRepo: playerRepo,
		gameRepo:   gameRepo,

		rules:    rules,
		strategy: strategy,
	}
}

// MakeTurn - plays the player's hole and the bot's answer, then stores or retires the game.
func (that *GameManager) MakeTurn(ctx context.Context, playerID string, hole int) (*TurnResult, error) {
	player, err := that.getPlayerByID(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if player.GameID == "" {
		return nil, ErrNoActiveGame
	}

	unlock, err := that.lockGame(player.GameID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	game, err := that.getPlayerGame(ctx, player)
	if err != nil {
		return nil, err
	}

	controller, err := congklak.NewController(that.logger, game, congklak.WithStrategy(that.strategy))
	if err != nil {
		return nil, fmt.Errorf("failed to start game %s: %w", game.ID, err)
	}

	report, err := controller.SubmitMove(entity.SidePlayer, hole)
	if err != nil && len(report.Moves) == 0 {
		return nil, fmt.Errorf("failed make turn: %w", err)
	}

	if game.IsFinished() {
		that.deleteGame(ctx, game, player)

		return &TurnResult{Game: game, Report: report}, err
	}

	if updateErr := that.updateGame(ctx, game); updateErr != nil {
		return nil, updateErr
	}

	// keeps the player key alive as long as its game
	if updateErr := that.updatePlayer(ctx, player); updateErr != nil {
		return nil, updateErr
	}

	return &TurnResult{Game: game, Report: report}, err
}

func (that *GameManager) GetOrCreateGame(ctx context.Context, playerID string) (*entity.Game, error) {
	player, err := that.getPlayerByID(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if player.GameID != "" {
		game, err := that.getPlayerGame(ctx, player)
		if !errors.Is(err, ErrNoActiveGame) {
			return game, err
		}
	}

	game, err := that.createGame(ctx, player)
	if err != nil {
		return nil, fmt.Errorf("failed create game: %w", err)
	}

	return game, nil
}

// GetGame - returns the player's current game.
func (that *GameManager) GetGame(ctx context.Context, playerID string) (*entity.Game, error) {
	player, err := that.getPlayerByID(ctx, playerID)
	if err != nil {
		return nil, err
	}

	return that.getPlayerGame(ctx, player)
}

func (that *GameManager) GetOrCreatePlayer(ctx context.Context, id string) (*entity.Player, error) {
	if id == "" {
		player, err := that.createPlayer(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create new player: %w", err)
		}

		return player, nil
	}

	return that.getPlayerByID(ctx, id)
}

func (that *GameManager) createGame(ctx context.Context, player *entity.Player) (*entity.Game, error) {
	game := entity.NewGame(uuid.NewString(), that.rules)
	game.PlayerID = player.ID

	if _, err := congklak.NewController(that.logger, game); err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}

	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	player.GameID = game.ID
	if err := that.updatePlayer(ctx, player); err != nil {
		return nil, err
	}

	that.logger.Info("game created", "gameID", game.ID, "playerID", player.ID)

	return game, nil
}

func (that *GameManager) createPlayer(ctx context.Context) (*entity.Player, error) {
	player := &entity.Player{
		ID: uuid.NewString(),
	}

	if err := that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	return player, nil
}

// lockGame - claims the game for one move at a time.
func (that *GameManager) lockGame(gameID string) (func(), error) {
	value, _ := that.locks.LoadOrStore(gameID, &sync.Mutex{})
	mu, _ := value.(*sync.Mutex)

	if !mu.TryLock() {
		return nil, fmt.Errorf("game %s: %w", gameID, apperror.ErrConcurrentMove)
	}

	return mu.Unlock, nil
}

// getPlayerGame - loads the player's game. A game that expired from storage is forgotten:
// its lock is dropped and the player is detached.
func (that *GameManager) getPlayerGame(ctx context.Context, player *entity.Player) (*entity.Game, error) {
	if player.GameID == "" {
		return nil, ErrNoActiveGame
	}

	game, err := that.getGameByID(ctx, player.GameID)
	if err == nil {
		return game, nil
	}

	if !errors.Is(err, repository.ErrGameNotFound) {
		return nil, err
	}

	that.logger.Info("game expired", "gameID", player.GameID, "playerID", player.ID)

	that.locks.Delete(player.GameID)
	player.GameID = ""

	if updateErr := that.updatePlayer(ctx, player); updateErr != nil {
		return nil, updateErr
	}

	return nil, fmt.Errorf("%w: %w", ErrNoActiveGame, err)
}

func (that *GameManager) getGameByID(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

func (that *GameManager) updateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}

func (that *GameManager) deleteGame(ctx context.Context, game *entity.Game, player *entity.Player) {
	log := that.logger.With("method", "deleteGame", "gameID", game.ID)

	if err := that.gameRepo.DeleteByID(ctx, game.ID); err != nil {
		log.Error("failed to delete game", "error", err)
	}

	player.GameID = ""
	if err := that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		log.Error("failed to update player", "error", err)
	}

	that.locks.Delete(game.ID)

	log.Info("game deleted", "outcome", game.Result.Outcome)
}

func (that *GameManager) getPlayerByID(ctx context.Context, id string) (*entity.Player, error) {
	player, err := that.playerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	return player, nil
}

func (that *GameManager) updatePlayer(ctx context.Context, player *entity.Player) error {
	if err := that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		return fmt.Errorf("failed to update player: %w", err)
	}

	return nil
}
