package resources

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultThemeEmbedded(t *testing.T) {
	assert.Contains(t, string(DefaultTheme()), "palettes:")
}

func TestIconCached(t *testing.T) {
	first, err := Icon()
	require.NoError(t, err)
	second, err := Icon()
	require.NoError(t, err)

	assert.Equal(t, "icon.svg", first.Name())
	assert.Same(t, first, second)
}
