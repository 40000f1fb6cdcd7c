package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-service/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-service/internal/entity"
)

type UserService interface {
	Register(ctx context.Context, name string) (*entity.User, error)
	Get(ctx context.Context, id int64) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
}

type userRepo interface {
	Save(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetAll(ctx context.Context) ([]*entity.User, error)
}

type userService struct {
	userRepo userRepo
}

func NewUserService(userRepo userRepo) UserService {
	return &userService{
		userRepo: userRepo,
	}
}

// Register stores a new user under the trimmed name.
func (that *userService) Register(ctx context.Context, name string) (*entity.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is empty", apperror.ErrInvalidUserName)
	}

	user := &entity.User{Name: name}
	if err := that.userRepo.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("could not save user: %w", err)
	}

	return user, nil
}

func (that *userService) Get(ctx context.Context, id int64) (*entity.User, error) {
	user, err := that.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}

	return user, nil
}

func (that *userService) List(ctx context.Context) ([]*entity.User, error) {
	users, err := that.userRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list users: %w", err)
	}

	return users, nil
}
