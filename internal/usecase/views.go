package usecase

import "github.com/rocketscienceinc/tictactoe-service/internal/entity"

type PlayerView struct {
	PlayerID int64               `json:"player_id"`
	UserID   int64               `json:"user_id"`
	Mark     entity.Mark         `json:"mark"`
	Turn     bool                `json:"turn"`
	Status   entity.PlayerStatus `json:"status"`
}

// GameState is the full, read-only state of a game.
type GameState struct {
	GameID     int64             `json:"game_id"`
	BoardSize  int               `json:"board_size"`
	Board      [][]entity.Mark   `json:"board"`
	GameStatus entity.GameStatus `json:"game_status"`
	Players    [2]PlayerView     `json:"players"`
}

type GameSummary struct {
	GameID     int64             `json:"game_id"`
	GameStatus entity.GameStatus `json:"game_status"`
	UserIDs    [2]int64          `json:"user_ids"`
}

func NewGameState(game *entity.Game) *GameState {
	return &GameState{
		GameID:     game.ID,
		BoardSize:  game.Board.Size(),
		Board:      game.Board.Snapshot(),
		GameStatus: game.Status,
		Players:    [2]PlayerView{newPlayerView(game.PlayerOne), newPlayerView(game.PlayerTwo)},
	}
}

func NewGameSummary(game *entity.Game) GameSummary {
	return GameSummary{
		GameID:     game.ID,
		GameStatus: game.Status,
		UserIDs:    game.UserIDs(),
	}
}

func newPlayerView(player *entity.Player) PlayerView {
	return PlayerView{
		PlayerID: player.ID,
		UserID:   player.UserID,
		Mark:     player.Mark,
		Turn:     player.Turn,
		Status:   player.Status,
	}
}
