package console

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bandung-maps/algo"
	"bandung-maps/data"
	"bandung-maps/model"
	"bandung-maps/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bandungGraph(t *testing.T) *algo.Graph {
	t.Helper()
	d, err := data.Bandung()
	require.NoError(t, err)
	g, err := algo.NewGraph(d)
	require.NoError(t, err)
	return g
}

func testOptions(t *testing.T, g *algo.Graph) Options {
	t.Helper()
	return Options{
		Output: filepath.Join(t.TempDir(), "map_bandung.html"),
		Map:    render.DefaultOptions(g),
	}
}

func TestNormalizeName(t *testing.T) {
	tests := map[string]string{
		"cicendo":            "Cicendo",
		"  ujung   BERUNG  ": "Ujung Berung",
		"buah batu\r":        "Buah Batu",
		"":                   "",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeName(in), "input %q", in)
	}
}

func TestRun(t *testing.T) {
	g := bandungGraph(t)
	opts := testOptions(t, g)

	var opened string
	opts.Opener = func(path string) error {
		opened = path
		return nil
	}

	var out bytes.Buffer
	err := Run(strings.NewReader("cicendo\nneglasari\n"), &out, g, opts)
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "- Ujung Berung")
	assert.Contains(t, text, "路线: Cicendo -> Coblong -> Neglasari")
	assert.Contains(t, text, "距离: 6 公里")
	assert.Contains(t, text, "度最大的节点: Coblong -> 度: 5")
	assert.Equal(t, opts.Output, opened)

	_, err = os.Stat(opts.Output)
	assert.NoError(t, err)
}

func TestRunOpenerFailureIsNotFatal(t *testing.T) {
	g := bandungGraph(t)
	opts := testOptions(t, g)
	opts.Opener = func(string) error { return errors.New("no browser") }

	err := Run(strings.NewReader("Cicendo\nUjung Berung\n"), io.Discard, g, opts)
	assert.NoError(t, err)
}

func TestRunInvalidInput(t *testing.T) {
	g := bandungGraph(t)

	tests := []struct {
		name  string
		input string
		want  error
	}{
		{name: "unknown start", input: "Dago\nCicendo\n", want: ErrInvalidNode},
		{name: "unknown end", input: "Cicendo\nDago\n", want: ErrInvalidNode},
		{name: "same node", input: "coblong\nCOBLONG\n", want: ErrSameNode},
		{name: "missing end", input: "Cicendo\n", want: io.ErrUnexpectedEOF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := testOptions(t, g)
			err := Run(strings.NewReader(tt.input), io.Discard, g, opts)
			assert.ErrorIs(t, err, tt.want)

			_, statErr := os.Stat(opts.Output)
			assert.True(t, os.IsNotExist(statErr), "不应生成地图")
		})
	}
}

func TestRunNoRoute(t *testing.T) {
	g, err := algo.NewGraph(model.MapData{
		Nodes: []model.Node{{ID: "Cicendo"}, {ID: "Cibiru"}},
	})
	require.NoError(t, err)
	opts := testOptions(t, g)

	var out bytes.Buffer
	err = Run(strings.NewReader("Cicendo\nCibiru\n"), &out, g, opts)
	assert.ErrorIs(t, err, ErrNoRoute)
	assert.Contains(t, out.String(), "没有路线")
}
