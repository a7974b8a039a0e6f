package httpapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"cragfeed/internal/application/command"
	"cragfeed/internal/application/interfaces"
	"cragfeed/internal/application/query"
)

type SessionHandler struct {
	sessionService interfaces.SessionService
	log            zerolog.Logger
}

func NewSessionHandler(sessionService interfaces.SessionService, log zerolog.Logger) *SessionHandler {
	return &SessionHandler{sessionService: sessionService, log: log}
}

func (h *SessionHandler) Create(c echo.Context) error {
	actorID, ok := ActorID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Access token required"})
	}

	cmd := new(command.CreateSessionCommand)
	if err := c.Bind(cmd); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
	}

	result, err := h.sessionService.Create(c.Request().Context(), actorID, cmd)
	if err != nil {
		return writeServiceError(c, h.log, err)
	}

	return c.JSON(http.StatusCreated, result.Session)
}

func (h *SessionHandler) GetByID(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid session ID"})
	}

	session, err := h.sessionService.GetByID(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, h.log, err)
	}

	return c.JSON(http.StatusOK, session)
}

func (h *SessionHandler) Update(c echo.Context) error {
	actorID, ok := ActorID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Access token required"})
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid session ID"})
	}

	cmd := new(command.UpdateSessionCommand)
	if err := c.Bind(cmd); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
	}

	result, err := h.sessionService.Update(c.Request().Context(), id, actorID, cmd)
	if err != nil {
		return writeServiceError(c, h.log, err)
	}

	return c.JSON(http.StatusOK, result.Session)
}

func (h *SessionHandler) Delete(c echo.Context) error {
	actorID, ok := ActorID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Access token required"})
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid session ID"})
	}

	if err := h.sessionService.Delete(c.Request().Context(), id, actorID); err != nil {
		return writeServiceError(c, h.log, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *SessionHandler) AttachMedia(c echo.Context) error {
	actorID, ok := ActorID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Access token required"})
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid session ID"})
	}

	cmd := new(command.AttachMediaCommand)
	if err := c.Bind(cmd); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
	}

	result, err := h.sessionService.AttachMedia(c.Request().Context(), id, actorID, cmd)
	if err != nil {
		return writeServiceError(c, h.log, err)
	}

	return c.JSON(http.StatusCreated, result.Media)
}

func (h *SessionHandler) Feed(c echo.Context) error {
	page, ok := intQueryParam(c, "page", query.DefaultFeedPage)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid pagination parameters"})
	}
	limit, ok := intQueryParam(c, "limit", query.DefaultFeedLimit)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid pagination parameters"})
	}

	feed, err := h.sessionService.Feed(c.Request().Context(), query.NewFeedQuery(page, limit))
	if err != nil {
		return writeServiceError(c, h.log, err)
	}

	return c.JSON(http.StatusOK, feed)
}

func (h *SessionHandler) Timeline(c echo.Context) error {
	timeline, err := h.sessionService.Timeline(c.Request().Context())
	if err != nil {
		return writeServiceError(c, h.log, err)
	}

	return c.JSON(http.StatusOK, timeline)
}

func intQueryParam(c echo.Context, name string, defaultValue int) (int, bool) {
	raw := c.QueryParam(name)
	if raw == "" {
		return defaultValue, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return value, true
}
