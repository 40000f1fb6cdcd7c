package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-service/internal/apperror"
)

// GameStatus is the lifecycle state of a game.
type GameStatus string

const (
	StatusInProgress GameStatus = "IN_PROGRESS"
	StatusComplete   GameStatus = "COMPLETE"
)

// Game aggregates a board and its two players. The board and the players live
// and die with the game.
type Game struct {
	ID        int64      `json:"id"`
	Board     *Board     `json:"board"`
	PlayerOne *Player    `json:"player_one"`
	PlayerTwo *Player    `json:"player_two"`
	Status    GameStatus `json:"status"`
}

func (that *Game) IsInProgress() bool {
	return that.Status == StatusInProgress
}

func (that *Game) IsComplete() bool {
	return that.Status == StatusComplete
}

// Players returns player-one and player-two, in that order.
func (that *Game) Players() []*Player {
	return []*Player{that.PlayerOne, that.PlayerTwo}
}

// ResolvePlayers returns the player with the given id and its opponent.
func (that *Game) ResolvePlayers(playerID int64) (*Player, *Player, error) {
	switch playerID {
	case that.PlayerOne.ID:
		return that.PlayerOne, that.PlayerTwo, nil
	case that.PlayerTwo.ID:
		return that.PlayerTwo, that.PlayerOne, nil
	default:
		return nil, nil, fmt.Errorf("%w: player %d, game %d", apperror.ErrPlayerNotInGame, playerID, that.ID)
	}
}

// UserIDs returns the user ids of player-one and player-two.
func (that *Game) UserIDs() [2]int64 {
	return [2]int64{that.PlayerOne.UserID, that.PlayerTwo.UserID}
}

// Clone returns a deep copy, so the copy can be mutated without touching the original.
func (that *Game) Clone() *Game {
	playerOne := *that.PlayerOne
	playerTwo := *that.PlayerTwo

	return &Game{
		ID:        that.ID,
		Board:     that.Board.Clone(),
		PlayerOne: &playerOne,
		PlayerTwo: &playerTwo,
		Status:    that.Status,
	}
}
