package impl

import (
	"strconv"
	"strings"

	"atlas/internal/domain/entity"
	"atlas/internal/domain/service"
)

// applyDocument projects a preference document onto the environment as
// variables and mode flags, then forces a reflow so the changes take effect
// together. It is a pure projection: applying the same document twice leaves
// the environment in the same state.
func applyDocument(env service.Environment, doc *entity.PreferenceDocument) {
	theme := doc.Theme

	setColor(env, "--color-primary", theme.PrimaryColor)
	setColor(env, "--color-accent", theme.AccentColor)
	setColor(env, "--color-background", theme.BackgroundColor)
	setColor(env, "--color-text", theme.TextColor)

	env.SetVariable("--radius", strconv.Itoa(theme.BorderRadius)+"px")
	env.SetVariable("--font-size", strconv.Itoa(theme.FontSize)+"px")
	env.SetVariable("--font-family", theme.FontFamily)

	fontScale := "1"
	if doc.Preferences.Accessibility.LargeText {
		fontScale = "1.25"
	}
	env.SetVariable("--font-scale", fontScale)

	dark := theme.Mode == entity.ThemeModeDark ||
		(theme.Mode == entity.ThemeModeAuto && env.DarkModePreferred())
	env.SetModeFlag("dark", dark)

	acc := doc.Preferences.Accessibility
	env.SetModeFlag("compact", doc.Layout.CompactMode)
	env.SetModeFlag("high-contrast", acc.HighContrast)
	env.SetModeFlag("large-text", acc.LargeText)
	env.SetModeFlag("reduce-motion", acc.ReduceMotion || !doc.Layout.ShowAnimations)
	env.SetModeFlag("screen-reader", acc.ScreenReader)

	env.ForceReflow()
}

// setColor writes the color variable and, when the value parses as a hex
// color, a companion "r, g, b" triplet for alpha composition. A malformed
// color still sets the base variable but skips the triplet.
func setColor(env service.Environment, name, value string) {
	env.SetVariable(name, value)
	if rgb, ok := hexToRGB(value); ok {
		env.SetVariable(name+"-rgb", rgb)
	}
}

func hexToRGB(hex string) (string, bool) {
	s := strings.TrimPrefix(hex, "#")
	switch len(s) {
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	case 6:
	default:
		return "", false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return "", false
	}
	r, g, b := (v>>16)&0xFF, (v>>8)&0xFF, v&0xFF
	return strconv.FormatUint(r, 10) + ", " + strconv.FormatUint(g, 10) + ", " + strconv.FormatUint(b, 10), true
}
