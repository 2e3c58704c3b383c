package handler

import (
	"net/http"

	"atlas/internal/delivery/http/response"
	"atlas/internal/infra/environment"

	"github.com/labstack/echo/v4"
)

// EnvironmentHandler exposes the applied environment state for read-back and
// diagnostics.
type EnvironmentHandler struct {
	state *environment.State
}

// NewEnvironmentHandler is the constructor for EnvironmentHandler, injected by Fx.
func NewEnvironmentHandler(state *environment.State) *EnvironmentHandler {
	return &EnvironmentHandler{state: state}
}

// Snapshot returns the current variables and mode flags.
func (h *EnvironmentHandler) Snapshot(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.state.Snapshot(), "")
}
