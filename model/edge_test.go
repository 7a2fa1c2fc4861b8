package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEdgeOther(t *testing.T) {
	e := Edge{From: "Cicendo", To: "Coblong", Dist: 4}

	assert.Equal(t, "Coblong", e.Other("Cicendo"))
	assert.Equal(t, "Cicendo", e.Other("Coblong"))
	assert.Empty(t, e.Other("Sukajadi"))
}

func TestMapDataMeta(t *testing.T) {
	var m MapData
	require.NoError(t, json.Unmarshal([]byte(`{"meta": {"center": [-6.9, 107.6], "zoom": 13}}`), &m))

	center, ok := m.Center()
	require.True(t, ok)
	assert.Equal(t, Point{Lat: -6.9, Lng: 107.6}, center)

	zoom, ok := m.Zoom()
	require.True(t, ok)
	assert.Equal(t, 13, zoom)

	_, ok = MapData{Meta: map[string]interface{}{"center": "x"}}.Center()
	assert.False(t, ok)
	_, ok = MapData{}.Zoom()
	assert.False(t, ok)
}
