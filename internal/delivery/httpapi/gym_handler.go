package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"cragfeed/internal/application/command"
	"cragfeed/internal/application/interfaces"
)

type GymHandler struct {
	gymService interfaces.GymService
	log        zerolog.Logger
}

func NewGymHandler(gymService interfaces.GymService, log zerolog.Logger) *GymHandler {
	return &GymHandler{gymService: gymService, log: log}
}

func (h *GymHandler) List(c echo.Context) error {
	gyms, err := h.gymService.List(c.Request().Context())
	if err != nil {
		return writeServiceError(c, h.log, err)
	}

	return c.JSON(http.StatusOK, gyms)
}

func (h *GymHandler) Create(c echo.Context) error {
	cmd := new(command.CreateGymCommand)
	if err := c.Bind(cmd); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
	}

	result, err := h.gymService.Create(c.Request().Context(), cmd)
	if err != nil {
		return writeServiceError(c, h.log, err)
	}

	return c.JSON(http.StatusCreated, result.Gym)
}
