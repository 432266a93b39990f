package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"maplehub/internal/delivery/http/response"
	"maplehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LookupHandler holds dependencies for the upstream lookup handlers.
type LookupHandler struct {
	uc     usecase.LookupUsecase
	logger *slog.Logger
}

// NewLookupHandler is the constructor for LookupHandler, injected by Fx.
func NewLookupHandler(uc usecase.LookupUsecase, logger *slog.Logger) *LookupHandler {
	return &LookupHandler{
		uc:     uc,
		logger: logger,
	}
}

// Search aggregates every character section into one composite record.
func (h *LookupHandler) Search(c echo.Context) error {
	record, err := h.uc.SearchCharacter(c.Request().Context(), c.Param("name"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, record, "Character retrieved successfully")
}

// WeeklyBosses returns the weekly boss clear records of a character.
func (h *LookupHandler) WeeklyBosses(c echo.Context) error {
	records, err := h.uc.GetWeeklyBosses(c.Request().Context(), c.Param("name"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, records, "Weekly bosses retrieved successfully")
}

// GuildRanking returns one page of the guild ranking. The page defaults to 1
// and the optional refinement comes from query parameters.
func (h *LookupHandler) GuildRanking(c echo.Context) error {
	page := 1
	if raw := c.QueryParam("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Page must be a number")
		}
		page = parsed
	}

	output, err := h.uc.GetGuildRanking(c.Request().Context(), &usecase.GuildRankingInput{
		Page:       page,
		SearchType: c.QueryParam("search_type"),
		Parameter:  c.QueryParam("parameter"),
		GuildName:  c.QueryParam("guild_name"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Guild ranking retrieved successfully")
}
