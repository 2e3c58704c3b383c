// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"atlas/internal/delivery/http/response"
	"atlas/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CustomizationHandler holds dependencies for customization handlers.
type CustomizationHandler struct {
	uc     usecase.CustomizationUsecase
	logger *slog.Logger
}

// NewCustomizationHandler is the constructor for CustomizationHandler, injected by Fx.
func NewCustomizationHandler(uc usecase.CustomizationUsecase, logger *slog.Logger) *CustomizationHandler {
	return &CustomizationHandler{
		uc:     uc,
		logger: logger,
	}
}

// userIDFrom reads the user ID placed on the context by the auth middleware.
func userIDFrom(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get("userID").(uuid.UUID)

	return userID, ok
}

// Load resolves and applies the user's customization.
func (h *CustomizationHandler) Load(c echo.Context) error {
	userID, ok := userIDFrom(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "User not authenticated")
	}

	output, err := h.uc.Load(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Customization loaded")
}

// Current returns the in-memory session state.
func (h *CustomizationHandler) Current(c echo.Context) error {
	userID, ok := userIDFrom(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "User not authenticated")
	}

	view, err := h.uc.Current(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// SetField applies a single field-path update.
func (h *CustomizationHandler) SetField(c echo.Context) error {
	userID, ok := userIDFrom(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "User not authenticated")
	}

	var input *usecase.SetFieldInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid field update input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	view, err := h.uc.SetField(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Preference updated")
}

// SetThemeColors applies a paired primary/accent color update.
func (h *CustomizationHandler) SetThemeColors(c echo.Context) error {
	userID, ok := userIDFrom(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "User not authenticated")
	}

	var input *usecase.SetThemeColorsInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid theme colors input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	view, err := h.uc.SetThemeColors(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Theme colors updated")
}

// Save persists the session document to the local cache and the remote store.
func (h *CustomizationHandler) Save(c echo.Context) error {
	userID, ok := userIDFrom(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "User not authenticated")
	}

	output, err := h.uc.Save(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	message := "Customization saved"
	if output.Note != "" {
		message = output.Note
	}

	return response.Success(c, http.StatusOK, output, message)
}

// Reset replaces the session document with defaults without persisting.
func (h *CustomizationHandler) Reset(c echo.Context) error {
	userID, ok := userIDFrom(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "User not authenticated")
	}

	view, err := h.uc.Reset(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Customization reset to defaults")
}

// DiscardSession drops the in-memory session, e.g. on logout.
func (h *CustomizationHandler) DiscardSession(c echo.Context) error {
	userID, ok := userIDFrom(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "User not authenticated")
	}

	h.uc.Discard(userID)

	return response.Success(c, http.StatusOK, nil, "Session discarded")
}
