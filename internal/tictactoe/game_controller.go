package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-service/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-service/internal/entity"
)

// Roles is the random part of a new game: who holds which mark and who moves first.
type Roles struct {
	PlayerOneMark entity.Mark
	PlayerTwoMark entity.Mark
	PlayerOneTurn bool
}

// AssignRoles turns two random bits into marks and the initial turn.
func AssignRoles(crossToPlayerOne, playerOneStarts bool) Roles {
	roles := Roles{
		PlayerOneMark: entity.MarkCircle,
		PlayerOneTurn: playerOneStarts,
	}

	if crossToPlayerOne {
		roles.PlayerOneMark = entity.MarkCross
	}

	roles.PlayerTwoMark = roles.PlayerOneMark.Opposite()

	return roles
}

// NewGame builds an in-progress game for two users. Ids are left for the store to assign.
func NewGame(userOne, userTwo int64, boardSize int, roles Roles) (*entity.Game, error) {
	board, err := entity.NewBoard(boardSize)
	if err != nil {
		return nil, err
	}

	return &entity.Game{
		Board:     board,
		PlayerOne: entity.NewPlayer(userOne, roles.PlayerOneMark, roles.PlayerOneTurn),
		PlayerTwo: entity.NewPlayer(userTwo, roles.PlayerTwoMark, !roles.PlayerOneTurn),
		Status:    entity.StatusInProgress,
	}, nil
}

// MakeMove adjudicates a move by playerID. The game is left untouched when an error is returned.
func MakeMove(game *entity.Game, playerID int64, row, column int) error {
	if !game.IsInProgress() {
		return apperror.ErrGameNotInProgress
	}

	mover, opponent, err := game.ResolvePlayers(playerID)
	if err != nil {
		return err
	}

	if !mover.Turn {
		return apperror.ErrNotPlayersTurn
	}

	if err = game.Board.PlaceMark(row, column, mover.Mark); err != nil {
		return err
	}

	updateGameStatus(game, mover, opponent)

	return nil
}

// updateGameStatus - checks the game outcome after a move. A win is checked before a full board.
func updateGameStatus(game *entity.Game, mover, opponent *entity.Player) {
	switch {
	case game.Board.HasWinningLine():
		// turn flags stay as they were when the game was won
		mover.Status = entity.PlayerWinner
		opponent.Status = entity.PlayerLoser
		game.Status = entity.StatusComplete
	case game.Board.IsFull():
		mover.Status = entity.PlayerTie
		opponent.Status = entity.PlayerTie
		game.Status = entity.StatusComplete
	default:
		mover.Turn = false
		opponent.Turn = true
	}
}
