package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/tictactoe-service/internal/entity"
)

type UserHandler interface {
	Register(ctx echo.Context) error
	Get(ctx echo.Context) error
	List(ctx echo.Context) error
}

type userService interface {
	Register(ctx context.Context, name string) (*entity.User, error)
	Get(ctx context.Context, id int64) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
}

type registerUserRequest struct {
	Name string `json:"name"`
}

type userResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type usersResponse struct {
	Users []userResponse `json:"users"`
}

type userHandler struct {
	logger *slog.Logger

	users userService
}

func NewUserHandler(logger *slog.Logger, users userService) UserHandler {
	return &userHandler{
		logger: logger.With("handler", "user"),
		users:  users,
	}
}

func (that *userHandler) Register(ctx echo.Context) error {
	log := that.logger.With("method", "Register")

	var request registerUserRequest
	if err := ctx.Bind(&request); err != nil {
		return writeError(ctx, log, fmt.Errorf("%w: %w", errBadRequest, err))
	}

	user, err := that.users.Register(ctx.Request().Context(), request.Name)
	if err != nil {
		return writeError(ctx, log, err)
	}

	log.Info("user registered", "userID", user.ID)

	return ctx.JSON(http.StatusCreated, newUserResponse(user))
}

func (that *userHandler) Get(ctx echo.Context) error {
	log := that.logger.With("method", "Get")

	id, err := parseID(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, log, err)
	}

	user, err := that.users.Get(ctx.Request().Context(), id)
	if err != nil {
		return writeError(ctx, log, err)
	}

	return ctx.JSON(http.StatusOK, newUserResponse(user))
}

func (that *userHandler) List(ctx echo.Context) error {
	log := that.logger.With("method", "List")

	users, err := that.users.List(ctx.Request().Context())
	if err != nil {
		return writeError(ctx, log, err)
	}

	response := usersResponse{Users: make([]userResponse, 0, len(users))}
	for _, user := range users {
		response.Users = append(response.Users, newUserResponse(user))
	}

	return ctx.JSON(http.StatusOK, response)
}

func newUserResponse(user *entity.User) userResponse {
	return userResponse{
		ID:   user.ID,
		Name: user.Name,
	}
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: got %q", errBadID, raw)
	}

	return id, nil
}
