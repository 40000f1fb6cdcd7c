package entity

// PlayerStatus is a participant's outcome within one game.
type PlayerStatus string

const (
	PlayerPlaying PlayerStatus = "PLAYING"
	PlayerWinner  PlayerStatus = "WINNER"
	PlayerLoser   PlayerStatus = "LOSER"
	PlayerTie     PlayerStatus = "TIE"
)

// Player is a user's role within exactly one game.
type Player struct {
	ID     int64        `json:"id"`
	UserID int64        `json:"user_id"`
	Mark   Mark         `json:"mark"`
	Turn   bool         `json:"turn"`
	Status PlayerStatus `json:"status"`
}

func NewPlayer(userID int64, mark Mark, turn bool) *Player {
	return &Player{
		UserID: userID,
		Mark:   mark,
		Turn:   turn,
		Status: PlayerPlaying,
	}
}

func (that *Player) IsTerminal() bool {
	return that.Status == PlayerWinner || that.Status == PlayerLoser || that.Status == PlayerTie
}
