package db

import (
	"os"
	"testing"
	"time"

	"bandung-maps/config"
	"bandung-maps/data"
	"bandung-maps/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecords(t *testing.T) {
	mapData := model.MapData{
		Nodes: []model.Node{{ID: "B"}, {ID: "A"}},
		Edges: []model.Edge{{ID: 9, From: "A", To: "B", Dist: 2}},
	}

	nodes, edges := Records(mapData)
	require.Len(t, nodes, 2)
	assert.Equal(t, 0, nodes[0].Position)
	assert.Equal(t, 1, nodes[1].Position)
	assert.Equal(t, "A", nodes[1].ID)

	require.Len(t, edges, 1)
	assert.Zero(t, edges[0].ID)
	assert.Equal(t, 2.0, edges[0].Dist)

	// 不修改输入
	assert.Equal(t, uint(9), mapData.Edges[0].ID)
}

func TestMetaEntriesRoundTrip(t *testing.T) {
	d, err := data.Bandung()
	require.NoError(t, err)

	entries, err := MetaEntries(d.Meta)
	require.NoError(t, err)
	assert.Len(t, entries, len(d.Meta))

	meta, err := DecodeMeta(entries)
	require.NoError(t, err)
	restored := model.MapData{Meta: meta}

	center, ok := restored.Center()
	require.True(t, ok)
	assert.Equal(t, model.Point{Lat: -6.9147, Lng: 107.6098}, center)
	zoom, ok := restored.Zoom()
	require.True(t, ok)
	assert.Equal(t, 12, zoom)
	assert.Equal(t, "Bandung", meta["name"])
}

func TestDecodeMeta(t *testing.T) {
	meta, err := DecodeMeta(nil)
	require.NoError(t, err)
	assert.Nil(t, meta)

	_, err = DecodeMeta([]model.MetaEntry{{Key: "zoom", Value: "{bad"}})
	assert.Error(t, err)
}

func TestNilDB(t *testing.T) {
	_, err := LoadMapData(nil)
	assert.Error(t, err)
	assert.Error(t, ImportMapData(nil, model.MapData{}))
}

// 需要一个可用的 PostgreSQL, 设置 TEST_DB_HOST 后运行
func TestInitDBRoundTrip(t *testing.T) {
	host := os.Getenv("TEST_DB_HOST")
	if host == "" {
		t.Skip("TEST_DB_HOST 未设置, 跳过数据库测试")
	}

	cfg := config.Database{
		Host:          host,
		Port:          config.Get("TEST_DB_PORT", "5432"),
		User:          config.Get("TEST_DB_USER", "bandung"),
		Password:      config.Get("TEST_DB_PASSWORD", "bandung"),
		Name:          config.Get("TEST_DB_NAME", "bandungmaps_test"),
		MaxRetries:    1,
		RetryInterval: time.Second,
	}

	gdb, err := InitDB(cfg)
	require.NoError(t, err)

	loaded, err := LoadMapData(gdb)
	require.NoError(t, err)

	want, err := data.Bandung()
	require.NoError(t, err)
	require.Len(t, loaded.Nodes, len(want.Nodes))
	require.Len(t, loaded.Edges, len(want.Edges))
	for i := range want.Nodes {
		assert.Equal(t, want.Nodes[i].ID, loaded.Nodes[i].ID)
	}
	for i := range want.Edges {
		assert.Equal(t, want.Edges[i].From, loaded.Edges[i].From)
		assert.Equal(t, want.Edges[i].Dist, loaded.Edges[i].Dist)
	}

	center, ok := loaded.Center()
	require.True(t, ok)
	assert.Equal(t, model.Point{Lat: -6.9147, Lng: 107.6098}, center)
}
