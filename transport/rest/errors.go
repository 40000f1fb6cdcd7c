package rest

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/tictactoe-service/internal/apperror"
)

var (
	errBadRequest = errors.New("malformed request")
	errBadID      = errors.New("id must be a positive integer")
	errUserIDs    = errors.New("exactly two user ids are required")
)

type errorResponse struct {
	Error string `json:"error"`
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrInvalidConfiguration),
		errors.Is(err, apperror.ErrOutOfBounds),
		errors.Is(err, apperror.ErrInvalidMark),
		errors.Is(err, apperror.ErrInvalidUserName),
		errors.Is(err, apperror.ErrPlayerNotInGame),
		errors.Is(err, errBadRequest),
		errors.Is(err, errBadID),
		errors.Is(err, errUserIDs):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrGameNotFound),
		errors.Is(err, apperror.ErrPlayerNotFound),
		errors.Is(err, apperror.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrCellOccupied),
		errors.Is(err, apperror.ErrNotPlayersTurn),
		errors.Is(err, apperror.ErrGameNotInProgress):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err as {"error": ...}. Internal failures are logged and hidden from the client.
func writeError(ctx echo.Context, log *slog.Logger, err error) error {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Error("request failed", "error", err)
		return ctx.JSON(status, errorResponse{Error: http.StatusText(status)})
	}

	return ctx.JSON(status, errorResponse{Error: err.Error()})
}

// handleEchoError renders router and binder errors in the same shape as handler errors.
func handleEchoError(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := http.StatusText(status)

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.Code
		message = fmt.Sprint(httpErr.Message)
	}

	if ctx.Request().Method == http.MethodHead {
		_ = ctx.NoContent(status)
		return
	}

	_ = ctx.JSON(status, errorResponse{Error: message})
}
