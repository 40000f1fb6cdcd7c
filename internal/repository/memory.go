package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/rocketscienceinc/tictactoe-service/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-service/internal/entity"
)

// memoryGame keeps games in process memory. Games are copied on the way in and
// on the way out, so callers never share state with the store.
type memoryGame struct {
	mu    sync.RWMutex
	games map[int64]*entity.Game
	order []int64

	lastGameID   int64
	lastPlayerID int64
}

func NewMemoryGameRepository() GameRepository {
	return &memoryGame{
		games: make(map[int64]*entity.Game),
	}
}

func (that *memoryGame) CreateOrUpdate(_ context.Context, game *entity.Game) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if game.ID == 0 {
		that.lastGameID++
		game.ID = that.lastGameID
	}

	for _, player := range game.Players() {
		if player.ID == 0 {
			that.lastPlayerID++
			player.ID = that.lastPlayerID
		}
	}

	if _, exists := that.games[game.ID]; !exists {
		that.order = append(that.order, game.ID)
	}

	that.games[game.ID] = game.Clone()

	return nil
}

func (that *memoryGame) GetByID(_ context.Context, id int64) (*entity.Game, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	game, ok := that.games[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", apperror.ErrGameNotFound, id)
	}

	return game.Clone(), nil
}

func (that *memoryGame) GetAll(_ context.Context) ([]*entity.Game, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	games := make([]*entity.Game, 0, len(that.order))
	for _, id := range that.order {
		games = append(games, that.games[id].Clone())
	}

	return games, nil
}
