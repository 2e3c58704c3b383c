// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"maps"
	"slices"
	"time"

	"github.com/google/uuid"
)

// ThemeMode selects how the dark/light presentation mode is resolved.
type ThemeMode string

const (
	ThemeModeLight ThemeMode = "light"
	ThemeModeDark  ThemeMode = "dark"
	// ThemeModeAuto defers to the environment's system-level dark mode signal,
	// resolved at apply time rather than at save time.
	ThemeModeAuto ThemeMode = "auto"
)

// SidebarPosition places the navigation sidebar.
type SidebarPosition string

const (
	SidebarLeft   SidebarPosition = "left"
	SidebarRight  SidebarPosition = "right"
	SidebarHidden SidebarPosition = "hidden"
)

// HeaderStyle selects the chrome density of the page header.
type HeaderStyle string

const (
	HeaderMinimal  HeaderStyle = "minimal"
	HeaderStandard HeaderStyle = "standard"
	HeaderExpanded HeaderStyle = "expanded"
)

// WidgetLayout selects how dashboard widgets are arranged.
type WidgetLayout string

const (
	WidgetLayoutGrid    WidgetLayout = "grid"
	WidgetLayoutList    WidgetLayout = "list"
	WidgetLayoutMasonry WidgetLayout = "masonry"
)

// PreferenceDocument is the full customization record for one user: theme,
// layout, behavioral preferences and dashboard arrangement. It is the unit of
// load, mutation and persistence; after a load it is always fully populated,
// partial documents never leave the repository layer.
type PreferenceDocument struct {
	ID          uuid.UUID   `json:"id"`
	UserID      uuid.UUID   `json:"userId"`
	Theme       Theme       `json:"theme"`
	Layout      Layout      `json:"layout"`
	Preferences Preferences `json:"preferences"`
	Dashboard   Dashboard   `json:"dashboard"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// Theme holds the visual tokens projected onto the environment by the applier.
type Theme struct {
	Mode            ThemeMode `json:"mode"`
	PrimaryColor    string    `json:"primaryColor"`
	AccentColor     string    `json:"accentColor"`
	BackgroundColor string    `json:"backgroundColor"`
	TextColor       string    `json:"textColor"`
	BorderRadius    int       `json:"borderRadius"` // px, >= 0
	FontSize        int       `json:"fontSize"`     // px, > 0
	FontFamily      string    `json:"fontFamily"`
}

// Layout holds structural presentation choices.
type Layout struct {
	SidebarPosition SidebarPosition `json:"sidebarPosition"`
	HeaderStyle     HeaderStyle     `json:"headerStyle"`
	WidgetLayout    WidgetLayout    `json:"widgetLayout"`
	CompactMode     bool            `json:"compactMode"`
	ShowAnimations  bool            `json:"showAnimations"`
}

// Preferences holds behavioral settings and accessibility flags.
type Preferences struct {
	Language          string        `json:"language"`
	Timezone          string        `json:"timezone"`
	DateFormat        string        `json:"dateFormat"`
	NumberFormat      string        `json:"numberFormat"`
	AutoSave          bool          `json:"autoSave"`
	Notifications     bool          `json:"notifications"`
	SoundEffects      bool          `json:"soundEffects"`
	KeyboardShortcuts bool          `json:"keyboardShortcuts"`
	Accessibility     Accessibility `json:"accessibility"`
}

// Accessibility holds the accessibility toggles applied as environment flags.
type Accessibility struct {
	HighContrast bool `json:"highContrast"`
	LargeText    bool `json:"largeText"`
	ReduceMotion bool `json:"reduceMotion"`
	ScreenReader bool `json:"screenReader"`
}

// WidgetRect is a dashboard grid rectangle for a single widget.
type WidgetRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// Dashboard holds the widget arrangement. Widget and recent-item order is
// meaningful, so slices are compared element-wise.
type Dashboard struct {
	Widgets     []string              `json:"widgets"`
	Layout      map[string]WidgetRect `json:"layout"`
	PinnedItems []string              `json:"pinnedItems"`
	RecentItems []string              `json:"recentItems"`
}

// Clone returns a deep copy of the document. The copy shares no slices or maps
// with the receiver, so mutating one never leaks into the other. The dirty
// tracker's shadow snapshot relies on this.
func (d *PreferenceDocument) Clone() *PreferenceDocument {
	if d == nil {
		return nil
	}

	cloned := *d
	cloned.Dashboard = d.Dashboard.clone()

	return &cloned
}

func (db Dashboard) clone() Dashboard {
	return Dashboard{
		Widgets:     slices.Clone(db.Widgets),
		Layout:      maps.Clone(db.Layout),
		PinnedItems: slices.Clone(db.PinnedItems),
		RecentItems: slices.Clone(db.RecentItems),
	}
}

// Equal reports structural equality of two documents: every nested field is
// compared by value, slices element-wise in order. Identical pointers
// short-circuit to true.
func (d *PreferenceDocument) Equal(other *PreferenceDocument) bool {
	if d == other {
		return true
	}
	if d == nil || other == nil {
		return false
	}

	return d.ID == other.ID &&
		d.UserID == other.UserID &&
		d.Theme == other.Theme &&
		d.Layout == other.Layout &&
		d.Preferences == other.Preferences &&
		d.Dashboard.equal(other.Dashboard) &&
		d.CreatedAt.Equal(other.CreatedAt) &&
		d.UpdatedAt.Equal(other.UpdatedAt)
}

func (db Dashboard) equal(other Dashboard) bool {
	return slices.Equal(db.Widgets, other.Widgets) &&
		maps.Equal(db.Layout, other.Layout) &&
		slices.Equal(db.PinnedItems, other.PinnedItems) &&
		slices.Equal(db.RecentItems, other.RecentItems)
}
