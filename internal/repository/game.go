package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-service/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-service/internal/entity"
)

const (
	gameKeyPrefix     = "game:"
	gameIndexKey      = "games"
	gameSequenceKey   = "sequence:game"
	playerSequenceKey = "sequence:player"
)

// GameRepository stores games together with their board and players.
// CreateOrUpdate assigns game and player ids on first save.
type GameRepository interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id int64) (*entity.Game, error)
	GetAll(ctx context.Context) ([]*entity.Game, error)
}

type dbGame struct {
	client *redis.Client
}

func NewGameRepository(client *redis.Client) GameRepository {
	return &dbGame{
		client: client,
	}
}

func (that *dbGame) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	isNew := game.ID == 0
	if isNew {
		id, err := that.client.Incr(ctx, gameSequenceKey).Result()
		if err != nil {
			return fmt.Errorf("failed to generate game id: %w", err)
		}

		game.ID = id
	}

	for _, player := range game.Players() {
		if player.ID != 0 {
			continue
		}

		id, err := that.client.Incr(ctx, playerSequenceKey).Result()
		if err != nil {
			return fmt.Errorf("failed to generate player id: %w", err)
		}

		player.ID = id
	}

	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, gameKey(game.ID), gameJSON, 0)
		if isNew {
			pipe.RPush(ctx, gameIndexKey, game.ID)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	return nil
}

func (that *dbGame) GetByID(ctx context.Context, id int64) (*entity.Game, error) {
	response, err := that.client.Get(ctx, gameKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: id %d", apperror.ErrGameNotFound, id)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return decodeGame(response)
}

func (that *dbGame) GetAll(ctx context.Context) ([]*entity.Game, error) {
	ids, err := that.client.LRange(ctx, gameIndexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list game ids: %w", err)
	}

	games := make([]*entity.Game, 0, len(ids))
	if len(ids) == 0 {
		return games, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = gameKeyPrefix + id
	}

	values, err := that.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get games: %w", err)
	}

	for _, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue
		}

		game, err := decodeGame(raw)
		if err != nil {
			return nil, err
		}

		games = append(games, game)
	}

	return games, nil
}

func gameKey(id int64) string {
	return gameKeyPrefix + strconv.FormatInt(id, 10)
}

func decodeGame(raw string) (*entity.Game, error) {
	var existingGame entity.Game
	if err := json.Unmarshal([]byte(raw), &existingGame); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &existingGame, nil
}
