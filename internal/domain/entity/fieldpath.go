package entity

import (
	"math"

	"github.com/pkg/errors"
)

// Sentinel errors for field mutation. Both indicate a caller bug rather than a
// runtime condition and are never swallowed by the customization engine.
var (
	// ErrInvalidFieldPath reports a dot path that does not address a known
	// leaf of the preference document.
	ErrInvalidFieldPath = errors.New("invalid preference field path")

	// ErrInvalidFieldValue reports a value whose type or range does not fit
	// the addressed leaf.
	ErrInvalidFieldValue = errors.New("invalid preference field value")
)

// SetField assigns value at the dot-delimited path, e.g. "theme.fontSize" or
// "preferences.accessibility.highContrast". Paths form a closed, validated set
// rather than a reflective walk, so an unknown path or intermediate segment
// fails loudly with ErrInvalidFieldPath. Values arriving from JSON are coerced
// (numbers decode as float64, string slices as []any).
func (d *PreferenceDocument) SetField(path string, value any) error {
	switch path {
	case "theme.mode":
		return setEnum(&d.Theme.Mode, value, ThemeModeLight, ThemeModeDark, ThemeModeAuto)
	case "theme.primaryColor":
		return setString(&d.Theme.PrimaryColor, value)
	case "theme.accentColor":
		return setString(&d.Theme.AccentColor, value)
	case "theme.backgroundColor":
		return setString(&d.Theme.BackgroundColor, value)
	case "theme.textColor":
		return setString(&d.Theme.TextColor, value)
	case "theme.borderRadius":
		return setIntMin(&d.Theme.BorderRadius, value, 0)
	case "theme.fontSize":
		return setIntMin(&d.Theme.FontSize, value, 1)
	case "theme.fontFamily":
		return setString(&d.Theme.FontFamily, value)

	case "layout.sidebarPosition":
		return setEnum(&d.Layout.SidebarPosition, value, SidebarLeft, SidebarRight, SidebarHidden)
	case "layout.headerStyle":
		return setEnum(&d.Layout.HeaderStyle, value, HeaderMinimal, HeaderStandard, HeaderExpanded)
	case "layout.widgetLayout":
		return setEnum(&d.Layout.WidgetLayout, value, WidgetLayoutGrid, WidgetLayoutList, WidgetLayoutMasonry)
	case "layout.compactMode":
		return setBool(&d.Layout.CompactMode, value)
	case "layout.showAnimations":
		return setBool(&d.Layout.ShowAnimations, value)

	case "preferences.language":
		return setString(&d.Preferences.Language, value)
	case "preferences.timezone":
		return setString(&d.Preferences.Timezone, value)
	case "preferences.dateFormat":
		return setString(&d.Preferences.DateFormat, value)
	case "preferences.numberFormat":
		return setString(&d.Preferences.NumberFormat, value)
	case "preferences.autoSave":
		return setBool(&d.Preferences.AutoSave, value)
	case "preferences.notifications":
		return setBool(&d.Preferences.Notifications, value)
	case "preferences.soundEffects":
		return setBool(&d.Preferences.SoundEffects, value)
	case "preferences.keyboardShortcuts":
		return setBool(&d.Preferences.KeyboardShortcuts, value)
	case "preferences.accessibility.highContrast":
		return setBool(&d.Preferences.Accessibility.HighContrast, value)
	case "preferences.accessibility.largeText":
		return setBool(&d.Preferences.Accessibility.LargeText, value)
	case "preferences.accessibility.reduceMotion":
		return setBool(&d.Preferences.Accessibility.ReduceMotion, value)
	case "preferences.accessibility.screenReader":
		return setBool(&d.Preferences.Accessibility.ScreenReader, value)

	case "dashboard.widgets":
		return setStringSlice(&d.Dashboard.Widgets, value)
	case "dashboard.layout":
		return setRectMap(&d.Dashboard.Layout, value)
	case "dashboard.pinnedItems":
		return setStringSlice(&d.Dashboard.PinnedItems, value)
	case "dashboard.recentItems":
		return setStringSlice(&d.Dashboard.RecentItems, value)
	}

	return errors.Wrapf(ErrInvalidFieldPath, "no such field %q", path)
}

func setString(dst *string, value any) error {
	s, ok := value.(string)
	if !ok {
		return errors.Wrapf(ErrInvalidFieldValue, "expected string, got %T", value)
	}
	*dst = s

	return nil
}

func setBool(dst *bool, value any) error {
	b, ok := value.(bool)
	if !ok {
		return errors.Wrapf(ErrInvalidFieldValue, "expected bool, got %T", value)
	}
	*dst = b

	return nil
}

func setIntMin(dst *int, value any, floor int) error {
	n, err := asInt(value)
	if err != nil {
		return err
	}
	if n < floor {
		return errors.Wrapf(ErrInvalidFieldValue, "value %d below minimum %d", n, floor)
	}
	*dst = n

	return nil
}

func setEnum[T ~string](dst *T, value any, allowed ...T) error {
	s, ok := value.(string)
	if !ok {
		return errors.Wrapf(ErrInvalidFieldValue, "expected string, got %T", value)
	}
	for _, candidate := range allowed {
		if T(s) == candidate {
			*dst = candidate

			return nil
		}
	}

	return errors.Wrapf(ErrInvalidFieldValue, "%q is not one of the allowed values", s)
}

func setStringSlice(dst *[]string, value any) error {
	switch v := value.(type) {
	case []string:
		*dst = append([]string(nil), v...)

		return nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return errors.Wrapf(ErrInvalidFieldValue, "expected string element, got %T", item)
			}
			out = append(out, s)
		}
		*dst = out

		return nil
	}

	return errors.Wrapf(ErrInvalidFieldValue, "expected string list, got %T", value)
}

func setRectMap(dst *map[string]WidgetRect, value any) error {
	switch v := value.(type) {
	case map[string]WidgetRect:
		out := make(map[string]WidgetRect, len(v))
		for id, rect := range v {
			out[id] = rect
		}
		*dst = out

		return nil
	case map[string]any:
		out := make(map[string]WidgetRect, len(v))
		for id, raw := range v {
			rect, err := asRect(raw)
			if err != nil {
				return errors.Wrapf(err, "widget %q", id)
			}
			out[id] = rect
		}
		*dst = out

		return nil
	}

	return errors.Wrapf(ErrInvalidFieldValue, "expected widget rect mapping, got %T", value)
}

func asRect(value any) (WidgetRect, error) {
	fields, ok := value.(map[string]any)
	if !ok {
		return WidgetRect{}, errors.Wrapf(ErrInvalidFieldValue, "expected rect object, got %T", value)
	}

	var rect WidgetRect
	for key, dst := range map[string]*int{"x": &rect.X, "y": &rect.Y, "w": &rect.W, "h": &rect.H} {
		raw, present := fields[key]
		if !present {
			return WidgetRect{}, errors.Wrapf(ErrInvalidFieldValue, "rect missing %q", key)
		}
		n, err := asInt(raw)
		if err != nil {
			return WidgetRect{}, err
		}
		*dst = n
	}

	return rect, nil
}

func asInt(value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != math.Trunc(v) {
			return 0, errors.Wrapf(ErrInvalidFieldValue, "expected integer, got %v", v)
		}

		return int(v), nil
	}

	return 0, errors.Wrapf(ErrInvalidFieldValue, "expected integer, got %T", value)
}
