package httpapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"cragfeed/internal/application/command"
	"cragfeed/internal/application/interfaces"
)

type UserHandler struct {
	userService interfaces.UserService
	log         zerolog.Logger
}

func NewUserHandler(userService interfaces.UserService, log zerolog.Logger) *UserHandler {
	return &UserHandler{userService: userService, log: log}
}

func (h *UserHandler) Register(c echo.Context) error {
	cmd := new(command.RegisterUserCommand)
	if err := c.Bind(cmd); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
	}

	result, err := h.userService.Register(c.Request().Context(), cmd)
	if err != nil {
		return writeServiceError(c, h.log, err)
	}

	return c.JSON(http.StatusCreated, result)
}

func (h *UserHandler) Login(c echo.Context) error {
	cmd := new(command.LoginUserCommand)
	if err := c.Bind(cmd); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
	}

	result, err := h.userService.Login(c.Request().Context(), cmd)
	if err != nil {
		return writeServiceError(c, h.log, err)
	}

	return c.JSON(http.StatusOK, result)
}

func (h *UserHandler) Me(c echo.Context) error {
	actorID, ok := ActorID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Access token required"})
	}

	user, err := h.userService.GetProfile(c.Request().Context(), actorID)
	if err != nil {
		return writeServiceError(c, h.log, err)
	}

	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) GetByID(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid user ID"})
	}

	user, err := h.userService.GetPublicProfile(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, h.log, err)
	}

	return c.JSON(http.StatusOK, user)
}
