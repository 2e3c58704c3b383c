// Package environment provides the in-process implementation of the
// presentation environment the applier projects onto. Clients read the
// applied state back over the API to render preview effects; tests read it to
// assert what a document application produced.
package environment

import (
	"sync"

	"atlas/config"
	"atlas/internal/domain/service"
)

// State holds the currently applied visual variables and mode flags.
type State struct {
	mu         sync.RWMutex
	variables  map[string]string
	flags      map[string]bool
	preferDark func() bool
	reflows    int
}

// Snapshot is a point-in-time copy of the applied state.
type Snapshot struct {
	Variables map[string]string `json:"variables"`
	Flags     map[string]bool   `json:"flags"`
	DarkMode  bool              `json:"darkMode"`
	Reflows   int               `json:"reflows"`
}

// New creates the environment state with the dark mode signal taken from
// configuration.
func New(cfg *config.Config) *State {
	preferDark := cfg.Environment.PreferDark

	return NewWithSignal(func() bool { return preferDark })
}

// NewWithSignal creates the environment state with a caller-supplied dark
// mode signal, used by tests and by embedders that track the host OS.
func NewWithSignal(preferDark func() bool) *State {
	return &State{
		variables:  make(map[string]string),
		flags:      make(map[string]bool),
		preferDark: preferDark,
	}
}

var _ service.Environment = (*State)(nil)

// SetVariable sets a named visual variable.
func (s *State) SetVariable(name, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.variables[name] = value
}

// SetModeFlag toggles a named boolean mode flag.
func (s *State) SetModeFlag(name string, enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.flags[name] = enabled
}

// DarkModePreferred reports the system-level dark mode signal.
func (s *State) DarkModePreferred() bool {
	return s.preferDark()
}

// ForceReflow records a forced reflow. The in-process implementation has
// nothing to repaint; counting the calls keeps the contract observable.
func (s *State) ForceReflow() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reflows++
}

// Snapshot returns a copy of the applied state.
func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	variables := make(map[string]string, len(s.variables))
	for name, value := range s.variables {
		variables[name] = value
	}
	flags := make(map[string]bool, len(s.flags))
	for name, enabled := range s.flags {
		flags[name] = enabled
	}

	return Snapshot{
		Variables: variables,
		Flags:     flags,
		DarkMode:  s.flags["dark"],
		Reflows:   s.reflows,
	}
}
