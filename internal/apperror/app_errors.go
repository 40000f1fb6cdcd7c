package apperror

import "errors"

var (
	ErrInvalidConfiguration = errors.New("invalid game configuration")
	ErrOutOfBounds          = errors.New("cell is out of bounds")
	ErrCellOccupied         = errors.New("cell is already occupied")
	ErrInvalidMark          = errors.New("invalid mark")

	ErrGameNotFound      = errors.New("game not found")
	ErrGameNotInProgress = errors.New("game is not in progress")
	ErrPlayerNotFound    = errors.New("player not found")
	ErrPlayerNotInGame   = errors.New("player is not part of the game")
	ErrNotPlayersTurn    = errors.New("it's not your turn")

	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidUserName = errors.New("user name must not be empty")
)
