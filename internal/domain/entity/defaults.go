package entity

import (
	"time"

	"github.com/google/uuid"
)

// Default visual tokens. These match the product's stock palette; the reset
// flow and its tests depend on them staying stable.
const (
	DefaultPrimaryColor    = "#3B82F6"
	DefaultAccentColor     = "#8B5CF6"
	DefaultBackgroundColor = "#FFFFFF"
	DefaultTextColor       = "#1F2937"
	DefaultBorderRadius    = 8
	DefaultFontSize        = 14
	DefaultFontFamily      = "Inter, sans-serif"
)

// documentNamespace scopes the deterministic document IDs derived from user
// IDs. Changing it would assign every user a new document identity.
var documentNamespace = uuid.MustParse("9f2c41a0-6b3e-4d8a-9c71-5e0d8b24f6a3")

// BuildDefault produces a fully populated preference document for the given
// user. Every leaf has a defined value so a document built here can be applied
// and persisted without further filling. The document ID is derived from the
// user ID, so the result is deterministic except for the timestamps and the
// runtime-detected timezone.
func BuildDefault(userID uuid.UUID) *PreferenceDocument {
	now := time.Now().UTC()

	return &PreferenceDocument{
		ID:     uuid.NewSHA1(documentNamespace, userID[:]),
		UserID: userID,
		Theme: Theme{
			Mode:            ThemeModeLight,
			PrimaryColor:    DefaultPrimaryColor,
			AccentColor:     DefaultAccentColor,
			BackgroundColor: DefaultBackgroundColor,
			TextColor:       DefaultTextColor,
			BorderRadius:    DefaultBorderRadius,
			FontSize:        DefaultFontSize,
			FontFamily:      DefaultFontFamily,
		},
		Layout: Layout{
			SidebarPosition: SidebarLeft,
			HeaderStyle:     HeaderStandard,
			WidgetLayout:    WidgetLayoutGrid,
			CompactMode:     false,
			ShowAnimations:  true,
		},
		Preferences: Preferences{
			Language:          "en",
			Timezone:          detectTimezone(),
			DateFormat:        "MM/DD/YYYY",
			NumberFormat:      "en-US",
			AutoSave:          true,
			Notifications:     true,
			SoundEffects:      true,
			KeyboardShortcuts: true,
			Accessibility: Accessibility{
				HighContrast: false,
				LargeText:    false,
				ReduceMotion: false,
				ScreenReader: false,
			},
		},
		Dashboard: Dashboard{
			Widgets: []string{"recent-chats", "usage", "tips"},
			Layout: map[string]WidgetRect{
				"recent-chats": {X: 0, Y: 0, W: 2, H: 2},
				"usage":        {X: 2, Y: 0, W: 1, H: 1},
				"tips":         {X: 2, Y: 1, W: 1, H: 1},
			},
			PinnedItems: []string{},
			RecentItems: []string{},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// detectTimezone reads the runtime's local zone name, falling back to UTC
// when the zone database only reports the opaque "Local" name.
func detectTimezone() string {
	name := time.Local.String()
	if name == "" || name == "Local" {
		return "UTC"
	}

	return name
}
