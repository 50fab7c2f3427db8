package generation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgrosjean/fightcard/go/internal/weightclass"
)

func TestSuggestWeightClasses(t *testing.T) {
	store, compID := fixtureStore(2)
	// Senior men at light-contact: 60kg resolves to -63, born 2000 is 26
	// at the 2026 reference date.
	w := 60.0
	store.entries[0].Weight = &w
	store.entries[0].WeightClass = "-63"
	store.entries[1].Weight = nil
	store.entries[1].WeightClass = ""
	app, _, _ := newTestApp(store)

	suggestions, err := app.SuggestWeightClasses(context.Background(), compID)
	require.NoError(t, err)
	require.Len(t, suggestions, 2)

	first := suggestions[0]
	assert.Equal(t, store.entries[0].ID, first.EntryID)
	assert.Equal(t, weightclass.StatusOK, first.Status)
	assert.Equal(t, "-63", first.Label)
	assert.True(t, first.Matches)

	second := suggestions[1]
	assert.Equal(t, weightclass.StatusMissingWeight, second.Status)
	assert.Empty(t, second.Label)
	assert.False(t, second.Matches)
}
