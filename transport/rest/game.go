package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/tictactoe-service/internal/usecase"
)

type GameHandler interface {
	Create(ctx echo.Context) error
	Get(ctx echo.Context) error
	List(ctx echo.Context) error
	Move(ctx echo.Context) error
}

type gameUseCase interface {
	CreateGame(ctx context.Context, userOneID, userTwoID int64, boardSize int) (*usecase.GameState, error)
	GetGame(ctx context.Context, gameID int64) (*usecase.GameState, error)
	ListGames(ctx context.Context) ([]usecase.GameSummary, error)
	SubmitMove(ctx context.Context, gameID, playerID int64, row, column int) (*usecase.GameState, error)
}

type createGameRequest struct {
	UserIDs   []int64 `json:"user_ids"`
	BoardSize int     `json:"board_size"`
}

type moveRequest struct {
	PlayerID int64 `json:"player_id"`
	Row      int   `json:"row"`
	Column   int   `json:"column"`
}

type gamesResponse struct {
	Games []usecase.GameSummary `json:"games"`
}

type gameHandler struct {
	logger *slog.Logger

	games gameUseCase
}

func NewGameHandler(logger *slog.Logger, games gameUseCase) GameHandler {
	return &gameHandler{
		logger: logger.With("handler", "game"),
		games:  games,
	}
}

func (that *gameHandler) Create(ctx echo.Context) error {
	log := that.logger.With("method", "Create")

	var request createGameRequest
	if err := ctx.Bind(&request); err != nil {
		return writeError(ctx, log, fmt.Errorf("%w: %w", errBadRequest, err))
	}

	if len(request.UserIDs) != 2 {
		return writeError(ctx, log, fmt.Errorf("%w: got %d", errUserIDs, len(request.UserIDs)))
	}

	state, err := that.games.CreateGame(ctx.Request().Context(), request.UserIDs[0], request.UserIDs[1], request.BoardSize)
	if err != nil {
		return writeError(ctx, log, err)
	}

	return ctx.JSON(http.StatusCreated, state)
}

func (that *gameHandler) Get(ctx echo.Context) error {
	log := that.logger.With("method", "Get")

	gameID, err := parseID(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, log, err)
	}

	state, err := that.games.GetGame(ctx.Request().Context(), gameID)
	if err != nil {
		return writeError(ctx, log, err)
	}

	return ctx.JSON(http.StatusOK, state)
}

func (that *gameHandler) List(ctx echo.Context) error {
	log := that.logger.With("method", "List")

	summaries, err := that.games.ListGames(ctx.Request().Context())
	if err != nil {
		return writeError(ctx, log, err)
	}

	return ctx.JSON(http.StatusOK, gamesResponse{Games: summaries})
}

func (that *gameHandler) Move(ctx echo.Context) error {
	log := that.logger.With("method", "Move")

	gameID, err := parseID(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, log, err)
	}

	var request moveRequest
	if err = ctx.Bind(&request); err != nil {
		return writeError(ctx, log, fmt.Errorf("%w: %w", errBadRequest, err))
	}

	state, err := that.games.SubmitMove(ctx.Request().Context(), gameID, request.PlayerID, request.Row, request.Column)
	if err != nil {
		return writeError(ctx, log, err)
	}

	return ctx.JSON(http.StatusOK, state)
}
