package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-service/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-service/internal/repository"
	"github.com/rocketscienceinc/tictactoe-service/internal/service"
	"github.com/rocketscienceinc/tictactoe-service/testing/suite"
)

func TestUserService(t *testing.T) {
	t.Run("Register trims the name and assigns an id", func(t *testing.T) {
		// Given: a user service over a fresh database
		ctx, sqliteStorage := suite.NewSQLite(t)
		users := service.NewUserService(repository.NewUserRepository(sqliteStorage.Connection))

		// When: registering a padded name
		user, err := users.Register(ctx, "  Foo  ")

		// Then: the user should be stored under the trimmed name
		require.NoError(t, err)
		assert.NotZero(t, user.ID)
		assert.Equal(t, "Foo", user.Name)

		found, err := users.Get(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, user, found)
	})

	t.Run("Register rejects a blank name", func(t *testing.T) {
		ctx, sqliteStorage := suite.NewSQLite(t)
		users := service.NewUserService(repository.NewUserRepository(sqliteStorage.Connection))

		for _, name := range []string{"", "   ", "\t\n"} {
			user, err := users.Register(ctx, name)

			require.ErrorIs(t, err, apperror.ErrInvalidUserName)
			assert.Nil(t, user)
		}

		all, err := users.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("Get returns ErrUserNotFound", func(t *testing.T) {
		ctx, sqliteStorage := suite.NewSQLite(t)
		users := service.NewUserService(repository.NewUserRepository(sqliteStorage.Connection))

		user, err := users.Get(ctx, 42)

		require.ErrorIs(t, err, apperror.ErrUserNotFound)
		assert.Nil(t, user)
	})

	t.Run("List returns users in registration order", func(t *testing.T) {
		ctx, sqliteStorage := suite.NewSQLite(t)
		users := service.NewUserService(repository.NewUserRepository(sqliteStorage.Connection))

		foo, err := users.Register(ctx, "Foo")
		require.NoError(t, err)
		bar, err := users.Register(ctx, "Bar")
		require.NoError(t, err)

		all, err := users.List(ctx)

		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, foo, all[0])
		assert.Equal(t, bar, all[1])
	})
}
