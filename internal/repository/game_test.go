package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-service/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-service/internal/entity"
	"github.com/rocketscienceinc/tictactoe-service/testing/suite"
)

func newGame(t *testing.T, userOne, userTwo int64) *entity.Game {
	t.Helper()

	board, err := entity.NewBoard(3)
	require.NoError(t, err)

	return &entity.Game{
		Board:     board,
		PlayerOne: entity.NewPlayer(userOne, entity.MarkCross, true),
		PlayerTwo: entity.NewPlayer(userTwo, entity.MarkCircle, false),
		Status:    entity.StatusInProgress,
	}
}

func TestGameRepository_CreateOrUpdate(t *testing.T) {
	t.Run("Assigns ids on first save", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		// Given: two unsaved games
		first := newGame(t, 1, 2)
		second := newGame(t, 3, 4)

		// When: CreateOrUpdate is called for both
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, first))
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, second))

		// Then: games and players should get distinct ids
		assert.Equal(t, int64(1), first.ID)
		assert.Equal(t, int64(2), second.ID)

		ids := map[int64]bool{}
		for _, game := range []*entity.Game{first, second} {
			for _, player := range game.Players() {
				assert.NotZero(t, player.ID)
				ids[player.ID] = true
			}
		}
		assert.Len(t, ids, 4)
	})

	t.Run("Updates an existing game", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		// Given: a saved game
		game := newGame(t, 1, 2)
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))
		playerOneID := game.PlayerOne.ID

		// When: the game is changed and saved again
		require.NoError(t, game.Board.PlaceMark(0, 0, entity.MarkCross))
		game.PlayerOne.Turn = false
		game.PlayerTwo.Turn = true
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// Then: the stored game should hold the change under the same ids
		stored, err := gameRepo.GetByID(ctx, game.ID)
		require.NoError(t, err)
		assert.Equal(t, game, stored)
		assert.Equal(t, playerOneID, stored.PlayerOne.ID)

		// And: the game should be listed once
		games, err := gameRepo.GetAll(ctx)
		require.NoError(t, err)
		assert.Len(t, games, 1)
	})
}

func TestGameRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		// Given: a saved game
		game := newGame(t, 1, 2)
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: GetByID is called with existing ID
		retrievedGame, err := gameRepo.GetByID(ctx, game.ID)

		// Then: the retrieved game should match the saved game
		require.NoError(t, err)
		assert.Equal(t, game, retrievedGame)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		// When: GetByID is called with non-existent ID
		retrievedGame, err := gameRepo.GetByID(ctx, 9999999)

		// Then: an ErrGameNotFound error should be returned
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
		assert.Nil(t, retrievedGame)
	})
}

func TestGameRepository_GetAll(t *testing.T) {
	t.Run("Empty storage", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		games, err := gameRepo.GetAll(ctx)

		require.NoError(t, err)
		assert.Empty(t, games)
	})

	t.Run("Lists games in insertion order", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		// Given: three saved games
		for i := int64(0); i < 3; i++ {
			require.NoError(t, gameRepo.CreateOrUpdate(ctx, newGame(t, i*2+1, i*2+2)))
		}

		// When: listing games
		games, err := gameRepo.GetAll(ctx)

		// Then: they should come back in the order they were created
		require.NoError(t, err)
		require.Len(t, games, 3)
		for i, game := range games {
			assert.Equal(t, int64(i+1), game.ID)
			assert.Equal(t, [2]int64{int64(i)*2 + 1, int64(i)*2 + 2}, game.UserIDs())
		}
	})
}
