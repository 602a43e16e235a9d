package ioschema

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugColumns(t *testing.T) {
	cols := slugColumns()
	require.NotEmpty(t, cols)

	got := make(map[string]bool)
	for _, col := range cols {
		got[col.Table+"."+col.Name] = true
	}

	// Spot-check known slug columns.
	assert.True(t, got["item_flags.identifier"])
	assert.True(t, got["item_pockets.identifier"])
	assert.True(t, got["evolution_triggers.identifier"])
	assert.True(t, got["growth_rates.name"])

	// Name doubling as a slug counts too.
	assert.True(t, got["egg_groups.name"])

	// Order must be stable between runs.
	isSorted := sort.SliceIsSorted(cols, func(i, j int) bool {
		if cols[i].Table != cols[j].Table {
			return cols[i].Table < cols[j].Table
		}
		return cols[i].Name < cols[j].Name
	})
	assert.True(t, isSorted)
}
