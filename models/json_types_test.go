package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListRoundTrip(t *testing.T) {
	in := StringList{"fitness", "social"}
	raw, err := in.Value()
	require.NoError(t, err)

	var out StringList
	require.NoError(t, out.Scan(raw))
	assert.Equal(t, in, out)
}

func TestStringListNilValueIsEmptyArray(t *testing.T) {
	var l StringList
	raw, err := l.Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), raw)
}

func TestStringListContains(t *testing.T) {
	l := StringList{"a", "b"}
	assert.True(t, l.Contains("a"))
	assert.False(t, l.Contains("c"))
	assert.False(t, StringList(nil).Contains("a"))
}

func TestCountMapRoundTrip(t *testing.T) {
	in := CountMap{"fitness": 3, "social": 1}
	raw, err := in.Value()
	require.NoError(t, err)

	var out CountMap
	require.NoError(t, out.Scan(raw))
	assert.Equal(t, in, out)
}

func TestPathSelectionNilValue(t *testing.T) {
	var p *PathSelection
	raw, err := p.Value()
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestPathSelectionRoundTrip(t *testing.T) {
	in := &PathSelection{
		Key:        "scholar",
		Name:       "The Scholar",
		SelectedAt: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
	}
	raw, err := in.Value()
	require.NoError(t, err)

	var out PathSelection
	require.NoError(t, out.Scan(raw))
	assert.Equal(t, *in, out)
}

func TestProgressHistoryPreservesOrder(t *testing.T) {
	in := ProgressHistory{
		{Date: time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC), Level: 1, XP: 40, Streak: 1},
		{Date: time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), Level: 1, XP: 80, Streak: 2},
		{Date: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), Level: 2, XP: 120, Streak: 3},
	}
	raw, err := in.Value()
	require.NoError(t, err)

	var out ProgressHistory
	require.NoError(t, out.Scan(raw))
	require.Len(t, out, 3)
	assert.Equal(t, in, out)
	assert.True(t, out[0].Date.Before(out[1].Date))
}

func TestScanHandlesStringsAndNil(t *testing.T) {
	var l StringList
	require.NoError(t, l.Scan(`["x"]`))
	assert.Equal(t, StringList{"x"}, l)

	var m CountMap
	require.NoError(t, m.Scan(nil))
	assert.Nil(t, m)

	require.Error(t, l.Scan(42))
}
