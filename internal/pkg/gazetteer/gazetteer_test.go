package gazetteer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	name, coords, ok := Lookup("denver")
	require.True(t, ok)
	assert.Equal(t, "Denver", name)
	assert.InDelta(t, 39.7392, coords.Latitude, 1e-6)
	assert.InDelta(t, -104.9903, coords.Longitude, 1e-6)

	_, _, ok = Lookup("SAN FRANCISCO")
	assert.True(t, ok)

	_, _, ok = Lookup("  Boston  ")
	assert.True(t, ok)

	_, _, ok = Lookup("Nowhereville")
	assert.False(t, ok)
}

func TestNamesSortedAndComplete(t *testing.T) {
	names := Names()
	require.Len(t, names, 15)
	assert.IsType(t, []string{}, names)
	for i := 1; i < len(names); i++ {
		assert.LessOrEqual(t, names[i-1], names[i])
	}
}

func TestNotFoundMessageListsFullSet(t *testing.T) {
	msg := NotFoundMessage("Nowhereville")
	assert.True(t, strings.HasPrefix(msg, "City 'Nowhereville' not found. Available cities: "))
	for _, name := range Names() {
		assert.Contains(t, msg, name)
	}
}
