package handler

import (
	"log/slog"
	"net/http"

	"maplehub/internal/delivery/http/response"
	"maplehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// registerCharacterRequest is the wire form of a character registration.
type registerCharacterRequest struct {
	Name string `json:"character_name" validate:"required"`
}

// CharacterHandler holds dependencies for registered-character handlers.
type CharacterHandler struct {
	uc     usecase.CharacterUsecase
	logger *slog.Logger
}

// NewCharacterHandler is the constructor for CharacterHandler, injected by Fx.
func NewCharacterHandler(uc usecase.CharacterUsecase, logger *slog.Logger) *CharacterHandler {
	return &CharacterHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns the caller's registered characters.
func (h *CharacterHandler) List(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	characters, err := h.uc.ListCharacters(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, characters, "Characters retrieved successfully")
}

// Register claims a character name for the caller.
func (h *CharacterHandler) Register(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req registerCharacterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid character registration input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Character name is required")
	}

	character, err := h.uc.RegisterCharacter(c.Request().Context(), userID, req.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, character, "Character registered successfully")
}

// Unregister releases a registration owned by the caller.
func (h *CharacterHandler) Unregister(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	characterID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid character ID")
	}

	if err := h.uc.UnregisterCharacter(c.Request().Context(), userID, characterID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": characterID.String()}, "Character unregistered successfully")
}

// callerID extracts the authenticated user ID set by the auth middleware.
func callerID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get("userID").(uuid.UUID)

	return userID, ok
}
