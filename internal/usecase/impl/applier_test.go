package impl

import (
	"testing"

	"atlas/internal/domain/entity"
	"atlas/internal/infra/environment"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDocument_Variables(t *testing.T) {
	env := environment.NewWithSignal(func() bool { return false })
	doc := entity.BuildDefault(uuid.New())

	applyDocument(env, doc)

	snap := env.Snapshot()
	assert.Equal(t, "#3B82F6", snap.Variables["--color-primary"])
	assert.Equal(t, "59, 130, 246", snap.Variables["--color-primary-rgb"])
	assert.Equal(t, "#8B5CF6", snap.Variables["--color-accent"])
	assert.Equal(t, "139, 92, 246", snap.Variables["--color-accent-rgb"])
	assert.Equal(t, "#FFFFFF", snap.Variables["--color-background"])
	assert.Equal(t, "255, 255, 255", snap.Variables["--color-background-rgb"])
	assert.Equal(t, "#1F2937", snap.Variables["--color-text"])
	assert.Equal(t, "8px", snap.Variables["--radius"])
	assert.Equal(t, "14px", snap.Variables["--font-size"])
	assert.Equal(t, "Inter, sans-serif", snap.Variables["--font-family"])
	assert.Equal(t, "1", snap.Variables["--font-scale"])
	assert.Equal(t, 1, snap.Reflows)
}

func TestApplyDocument_ModeFlags(t *testing.T) {
	env := environment.NewWithSignal(func() bool { return false })
	doc := entity.BuildDefault(uuid.New())
	doc.Layout.CompactMode = true
	doc.Preferences.Accessibility.HighContrast = true
	doc.Preferences.Accessibility.LargeText = true

	applyDocument(env, doc)

	snap := env.Snapshot()
	assert.False(t, snap.Flags["dark"])
	assert.True(t, snap.Flags["compact"])
	assert.True(t, snap.Flags["high-contrast"])
	assert.True(t, snap.Flags["large-text"])
	assert.False(t, snap.Flags["reduce-motion"])
	assert.False(t, snap.Flags["screen-reader"])
	assert.Equal(t, "1.25", snap.Variables["--font-scale"])
}

func TestApplyDocument_DarkModeResolution(t *testing.T) {
	tests := []struct {
		name       string
		mode       entity.ThemeMode
		systemDark bool
		want       bool
	}{
		{"explicit dark", entity.ThemeModeDark, false, true},
		{"explicit light ignores system", entity.ThemeModeLight, true, false},
		{"auto follows system dark", entity.ThemeModeAuto, true, true},
		{"auto follows system light", entity.ThemeModeAuto, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := environment.NewWithSignal(func() bool { return tt.systemDark })
			doc := entity.BuildDefault(uuid.New())
			doc.Theme.Mode = tt.mode

			applyDocument(env, doc)

			assert.Equal(t, tt.want, env.Snapshot().Flags["dark"])
		})
	}
}

func TestApplyDocument_ReduceMotion(t *testing.T) {
	env := environment.NewWithSignal(func() bool { return false })
	doc := entity.BuildDefault(uuid.New())

	// Disabling animations implies reduced motion even without the
	// accessibility flag.
	doc.Layout.ShowAnimations = false
	applyDocument(env, doc)
	assert.True(t, env.Snapshot().Flags["reduce-motion"])

	doc.Layout.ShowAnimations = true
	doc.Preferences.Accessibility.ReduceMotion = true
	applyDocument(env, doc)
	assert.True(t, env.Snapshot().Flags["reduce-motion"])
}

func TestApplyDocument_Idempotent(t *testing.T) {
	env := environment.NewWithSignal(func() bool { return false })
	doc := entity.BuildDefault(uuid.New())

	applyDocument(env, doc)
	first := env.Snapshot()
	applyDocument(env, doc)
	second := env.Snapshot()

	assert.Equal(t, first.Variables, second.Variables)
	assert.Equal(t, first.Flags, second.Flags)
	assert.Equal(t, 2, second.Reflows)
}

func TestApplyDocument_MalformedColorSkipsTriplet(t *testing.T) {
	env := environment.NewWithSignal(func() bool { return false })
	doc := entity.BuildDefault(uuid.New())
	doc.Theme.PrimaryColor = "tomato"

	applyDocument(env, doc)

	snap := env.Snapshot()
	assert.Equal(t, "tomato", snap.Variables["--color-primary"])
	_, ok := snap.Variables["--color-primary-rgb"]
	assert.False(t, ok)
}

func TestHexToRGB(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"#000000", "0, 0, 0", true},
		{"#FFFFFF", "255, 255, 255", true},
		{"#3B82F6", "59, 130, 246", true},
		{"#abc", "170, 187, 204", true},
		{"fff", "255, 255, 255", true},
		{"#12345", "", false},
		{"#GGGGGG", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := hexToRGB(tt.in)
		require.Equalf(t, tt.ok, ok, "input %q", tt.in)
		assert.Equalf(t, tt.want, got, "input %q", tt.in)
	}
}
