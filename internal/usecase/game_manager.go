package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-service/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-service/internal/entity"
	"github.com/rocketscienceinc/tictactoe-service/internal/tictactoe"
)

type userResolver interface {
	Get(ctx context.Context, id int64) (*entity.User, error)
}

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id int64) (*entity.Game, error)
	GetAll(ctx context.Context) ([]*entity.Game, error)
}

// RandomBit is the source of the mark and first-turn draws made at game creation.
type RandomBit func() bool

func DefaultRandomBit() bool {
	return rand.Intn(2) == 0 //nolint: gosec // it's ok
}

// GameManager creates games and adjudicates moves. Moves on the same game are
// serialized; moves on different games run in parallel.
type GameManager struct {
	logger *slog.Logger

	users    userResolver
	gameRepo gameRepo

	locks     *gameLocks
	randomBit RandomBit
}

func NewGameManager(logger *slog.Logger, users userResolver, gameRepo gameRepo, randomBit RandomBit) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		users:    users,
		gameRepo: gameRepo,

		locks:     newGameLocks(),
		randomBit: randomBit,
	}
}

func (that *GameManager) CreateGame(ctx context.Context, userOneID, userTwoID int64, boardSize int) (*GameState, error) {
	log := that.logger.With("method", "CreateGame")

	if boardSize < entity.MinBoardSize {
		return nil, fmt.Errorf("%w: minimum board size is %d, got %d", apperror.ErrInvalidConfiguration, entity.MinBoardSize, boardSize)
	}

	for _, userID := range []int64{userOneID, userTwoID} {
		if err := that.resolveUser(ctx, userID); err != nil {
			return nil, err
		}
	}

	roles := tictactoe.AssignRoles(that.randomBit(), that.randomBit())

	game, err := tictactoe.NewGame(userOneID, userTwoID, boardSize, roles)
	if err != nil {
		return nil, err
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	log.Info("game created", "gameID", game.ID, "boardSize", boardSize, "userIDs", game.UserIDs())

	return NewGameState(game), nil
}

func (that *GameManager) GetGame(ctx context.Context, gameID int64) (*GameState, error) {
	game, err := that.getGameByID(ctx, gameID)
	if err != nil {
		return nil, err
	}

	return NewGameState(game), nil
}

func (that *GameManager) ListGames(ctx context.Context) ([]GameSummary, error) {
	games, err := that.gameRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	summaries := make([]GameSummary, 0, len(games))
	for _, game := range games {
		summaries = append(summaries, NewGameSummary(game))
	}

	return summaries, nil
}

// SubmitMove places the player's mark at row/column and advances the game.
// Nothing is stored when the move is rejected or cannot be persisted.
func (that *GameManager) SubmitMove(ctx context.Context, gameID, playerID int64, row, column int) (*GameState, error) {
	log := that.logger.With("method", "SubmitMove", "gameID", gameID, "playerID", playerID)

	unlock := that.locks.lock(gameID)
	defer unlock()

	game, err := that.getGameByID(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if err = tictactoe.MakeMove(game, playerID, row, column); err != nil {
		log.Debug("move rejected", "row", row, "column", column, "error", err)
		return nil, err
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	if game.IsComplete() {
		mover, _, _ := game.ResolvePlayers(playerID)
		log.Info("game finished", "moverStatus", mover.Status)
	}

	return NewGameState(game), nil
}

func (that *GameManager) resolveUser(ctx context.Context, userID int64) error {
	_, err := that.users.Get(ctx, userID)
	if errors.Is(err, apperror.ErrUserNotFound) {
		return fmt.Errorf("%w: user %d", apperror.ErrPlayerNotFound, userID)
	}

	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}

	return nil
}

func (that *GameManager) getGameByID(ctx context.Context, gameID int64) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, gameID)
	if errors.Is(err, apperror.ErrGameNotFound) {
		return nil, err
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}
