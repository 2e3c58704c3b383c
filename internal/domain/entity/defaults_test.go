package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDefault_FullyPopulated(t *testing.T) {
	userID := uuid.New()

	doc := BuildDefault(userID)

	require.NotNil(t, doc)
	assert.NotEqual(t, uuid.Nil, doc.ID)
	assert.Equal(t, userID, doc.UserID)

	assert.Equal(t, ThemeModeLight, doc.Theme.Mode)
	assert.Equal(t, DefaultPrimaryColor, doc.Theme.PrimaryColor)
	assert.Equal(t, DefaultAccentColor, doc.Theme.AccentColor)
	assert.Equal(t, DefaultBackgroundColor, doc.Theme.BackgroundColor)
	assert.Equal(t, DefaultTextColor, doc.Theme.TextColor)
	assert.Equal(t, DefaultBorderRadius, doc.Theme.BorderRadius)
	assert.Equal(t, DefaultFontSize, doc.Theme.FontSize)
	assert.Equal(t, DefaultFontFamily, doc.Theme.FontFamily)

	assert.Equal(t, SidebarLeft, doc.Layout.SidebarPosition)
	assert.Equal(t, HeaderStandard, doc.Layout.HeaderStyle)
	assert.Equal(t, WidgetLayoutGrid, doc.Layout.WidgetLayout)
	assert.False(t, doc.Layout.CompactMode)
	assert.True(t, doc.Layout.ShowAnimations)

	assert.Equal(t, "en", doc.Preferences.Language)
	assert.NotEmpty(t, doc.Preferences.Timezone)
	assert.Equal(t, "MM/DD/YYYY", doc.Preferences.DateFormat)
	assert.Equal(t, "en-US", doc.Preferences.NumberFormat)
	assert.True(t, doc.Preferences.AutoSave)
	assert.True(t, doc.Preferences.Notifications)
	assert.True(t, doc.Preferences.SoundEffects)
	assert.True(t, doc.Preferences.KeyboardShortcuts)
	assert.Equal(t, Accessibility{}, doc.Preferences.Accessibility)

	assert.Equal(t, []string{"recent-chats", "usage", "tips"}, doc.Dashboard.Widgets)
	assert.Len(t, doc.Dashboard.Layout, 3)
	assert.NotNil(t, doc.Dashboard.PinnedItems)
	assert.Empty(t, doc.Dashboard.PinnedItems)
	assert.NotNil(t, doc.Dashboard.RecentItems)
	assert.Empty(t, doc.Dashboard.RecentItems)

	assert.False(t, doc.CreatedAt.IsZero())
	assert.Equal(t, doc.CreatedAt, doc.UpdatedAt)
}

func TestBuildDefault_DeterministicID(t *testing.T) {
	userID := uuid.New()

	first := BuildDefault(userID)
	second := BuildDefault(userID)

	// The document ID is a pure function of the user ID, so rebuilding for
	// the same user keeps the identity while another user gets their own.
	assert.Equal(t, first.ID, second.ID)
	assert.NotEqual(t, first.ID, BuildDefault(uuid.New()).ID)

	// Collections are still independent between calls.
	second.Dashboard.Widgets[0] = "changed"
	assert.Equal(t, "recent-chats", first.Dashboard.Widgets[0])
}
