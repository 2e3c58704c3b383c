package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState_SetAndSnapshot(t *testing.T) {
	state := NewWithSignal(func() bool { return true })

	state.SetVariable("--color-primary", "#3B82F6")
	state.SetModeFlag("dark", true)
	state.SetModeFlag("compact", false)
	state.ForceReflow()

	snap := state.Snapshot()

	assert.Equal(t, "#3B82F6", snap.Variables["--color-primary"])
	assert.True(t, snap.Flags["dark"])
	assert.False(t, snap.Flags["compact"])
	assert.True(t, snap.DarkMode)
	assert.Equal(t, 1, snap.Reflows)
	assert.True(t, state.DarkModePreferred())
}

func TestState_SnapshotIsACopy(t *testing.T) {
	state := NewWithSignal(func() bool { return false })
	state.SetVariable("--radius", "8px")

	snap := state.Snapshot()
	snap.Variables["--radius"] = "0px"
	snap.Flags["dark"] = true

	fresh := state.Snapshot()
	assert.Equal(t, "8px", fresh.Variables["--radius"])
	assert.False(t, fresh.Flags["dark"])
}

func TestState_OverwriteVariable(t *testing.T) {
	state := NewWithSignal(func() bool { return false })

	state.SetVariable("--color-primary", "#111111")
	state.SetVariable("--color-primary", "#222222")

	assert.Equal(t, "#222222", state.Snapshot().Variables["--color-primary"])
}
