// Package service defines domain service interfaces implemented by the
// infrastructure layer.
package service

// Environment abstracts the presentation runtime the applier projects onto:
// named visual variables, boolean mode flags on a global root scope, the
// system-level dark mode signal, and a forced synchronous reflow. The engine
// never touches environment primitives directly, so any implementation (a
// browser bridge, a native toolkit, the in-memory state used here and in
// tests) satisfies it.
type Environment interface {
	// SetVariable sets a named visual variable readable by the rendering layer.
	SetVariable(name, value string)

	// SetModeFlag toggles a named boolean mode flag on the root scope.
	SetModeFlag(name string, enabled bool)

	// DarkModePreferred reports the system-level dark mode signal at the
	// moment of the call. Used to resolve the "auto" theme mode.
	DarkModePreferred() bool

	// ForceReflow forces a synchronous visual reflow so applied changes are
	// observable immediately. Best effort, never fails.
	ForceReflow()
}
