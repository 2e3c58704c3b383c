package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetField_ScalarLeaves(t *testing.T) {
	doc := BuildDefault(uuid.New())

	require.NoError(t, doc.SetField("theme.primaryColor", "#FF0000"))
	assert.Equal(t, "#FF0000", doc.Theme.PrimaryColor)

	require.NoError(t, doc.SetField("theme.mode", "dark"))
	assert.Equal(t, ThemeModeDark, doc.Theme.Mode)

	require.NoError(t, doc.SetField("layout.compactMode", true))
	assert.True(t, doc.Layout.CompactMode)

	require.NoError(t, doc.SetField("preferences.accessibility.highContrast", true))
	assert.True(t, doc.Preferences.Accessibility.HighContrast)

	require.NoError(t, doc.SetField("preferences.language", "de"))
	assert.Equal(t, "de", doc.Preferences.Language)
}

func TestSetField_NumericCoercion(t *testing.T) {
	doc := BuildDefault(uuid.New())

	// JSON numbers arrive as float64.
	require.NoError(t, doc.SetField("theme.fontSize", float64(18)))
	assert.Equal(t, 18, doc.Theme.FontSize)

	require.NoError(t, doc.SetField("theme.borderRadius", 0))
	assert.Equal(t, 0, doc.Theme.BorderRadius)

	err := doc.SetField("theme.fontSize", 14.5)
	require.ErrorIs(t, err, ErrInvalidFieldValue)

	err = doc.SetField("theme.fontSize", 0)
	require.ErrorIs(t, err, ErrInvalidFieldValue)

	err = doc.SetField("theme.borderRadius", -1)
	require.ErrorIs(t, err, ErrInvalidFieldValue)
}

func TestSetField_CollectionLeaves(t *testing.T) {
	doc := BuildDefault(uuid.New())

	require.NoError(t, doc.SetField("dashboard.widgets", []any{"usage", "tips"}))
	assert.Equal(t, []string{"usage", "tips"}, doc.Dashboard.Widgets)

	require.NoError(t, doc.SetField("dashboard.pinnedItems", []string{"doc-1"}))
	assert.Equal(t, []string{"doc-1"}, doc.Dashboard.PinnedItems)

	// Decoded JSON shape for a rect mapping.
	require.NoError(t, doc.SetField("dashboard.layout", map[string]any{
		"usage": map[string]any{"x": float64(1), "y": float64(0), "w": float64(2), "h": float64(1)},
	}))
	assert.Equal(t, map[string]WidgetRect{"usage": {X: 1, Y: 0, W: 2, H: 1}}, doc.Dashboard.Layout)

	err := doc.SetField("dashboard.layout", map[string]any{
		"usage": map[string]any{"x": float64(1), "y": float64(0), "w": float64(2)},
	})
	require.ErrorIs(t, err, ErrInvalidFieldValue)

	err = doc.SetField("dashboard.widgets", []any{"usage", 3})
	require.ErrorIs(t, err, ErrInvalidFieldValue)
}

func TestSetField_UnknownPath(t *testing.T) {
	doc := BuildDefault(uuid.New())

	for _, path := range []string{
		"theme.unknown",
		"theme",
		"dashboard.layout.usage",
		"",
		"preferences.accessibility",
	} {
		err := doc.SetField(path, "x")
		assert.Truef(t, errors.Is(err, ErrInvalidFieldPath), "path %q should be rejected, got %v", path, err)
	}
}

func TestSetField_TypeMismatch(t *testing.T) {
	doc := BuildDefault(uuid.New())

	assert.ErrorIs(t, doc.SetField("theme.primaryColor", 42), ErrInvalidFieldValue)
	assert.ErrorIs(t, doc.SetField("layout.compactMode", "yes"), ErrInvalidFieldValue)
	assert.ErrorIs(t, doc.SetField("theme.mode", "sepia"), ErrInvalidFieldValue)
	assert.ErrorIs(t, doc.SetField("layout.sidebarPosition", true), ErrInvalidFieldValue)
}

func TestSetField_FailureLeavesDocumentUntouched(t *testing.T) {
	doc := BuildDefault(uuid.New())
	before := doc.Clone()

	require.Error(t, doc.SetField("theme.mode", "sepia"))
	require.Error(t, doc.SetField("nope.nope", "x"))

	assert.True(t, before.Equal(doc))
}
