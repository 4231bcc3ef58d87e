package scene

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuushi/hedra/shapes"
)

const sampleYAML = `
shapes:
  - name: ramp
    layer: 1
    triangle: {points: [[0, 0], [4, 0], [0, 3]]}
  - sas: {a: [5, 5], ab: 3, ac: 4, alpha: 90}
  - equilateral: {center: [0, 0], radius: 2}
    rotate: 60
  - segments: {first: [[0, 0], [2, 0]], second: [[2, 0], [1, 2]]}
  - rectangle: {center: [1, 1], width: 4, height: 2}
    translate: [0, -1]
  - rectangle: {corners: [[0, 0], [3, 3]]}
  - rectangle: {points: [[0, 0], [2, 2], [1, 3], [-1, 1]]}
`

func TestParse(t *testing.T) {
	s, err := Parse(strings.NewReader(sampleYAML))
	require.NoError(t, err)
	require.Len(t, s.Entries, 7)

	names := make([]string, len(s.Entries))
	for i, e := range s.Entries {
		names[i] = e.Name
	}
	assert.Equal(t, []string{"ramp", "triangle1", "triangle2", "triangle3", "rectangle4", "rectangle5", "rectangle6"}, names)

	assert.Equal(t, 1, s.Entries[0].Layer)
	assert.InDelta(t, 6, s.Entries[0].Shape.Area(), 1e-9)
	assert.InDelta(t, 6, s.Entries[1].Shape.Area(), 1e-9)
	assert.InDelta(t, 60, s.Entries[2].Shape.Rotation(), 1e-9)
	assert.InDelta(t, 2, s.Entries[3].Shape.Area(), 1e-9)

	moved := s.Entries[4].Shape
	assert.InDelta(t, 1, moved.Center().X, 1e-9)
	assert.InDelta(t, 0, moved.Center().Y, 1e-9)
	assert.InDelta(t, 9, s.Entries[5].Shape.Area(), 1e-9)
	assert.InDelta(t, 4, s.Entries[6].Shape.Area(), 1e-9)

	_, ok := s.Entries[1].Shape.(*shapes.Triangle)
	assert.True(t, ok)
	_, ok = s.Entries[4].Shape.(*shapes.Rectangle)
	assert.True(t, ok)
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"no kind":        "shapes:\n  - name: empty\n",
		"two kinds":      "shapes:\n  - equilateral: {center: [0, 0], radius: 1}\n    rectangle: {center: [0, 0], width: 1, height: 1}\n",
		"bad point":      "shapes:\n  - equilateral: {center: [0], radius: 1}\n",
		"degenerate":     "shapes:\n  - triangle: {points: [[0, 0], [1, 1], [2, 2]]}\n",
		"unknown field":  "shapes:\n  - hexagon: {}\n",
		"disjoint pair":  "shapes:\n  - segments: {first: [[0, 0], [1, 0]], second: [[5, 5], [6, 5]]}\n",
		"too few points": "shapes:\n  - triangle: {points: [[0, 0], [1, 1]]}\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}

	_, err := Parse(strings.NewReader("shapes:\n  - triangle: {points: [[0, 0], [1, 1], [2, 2]]}\n"))
	assert.ErrorIs(t, err, shapes.ErrDegenerateTriangle)
	_, err = Parse(strings.NewReader("shapes:\n  - segments: {first: [[0, 0], [1, 0]], second: [[5, 5], [6, 5]]}\n"))
	assert.ErrorIs(t, err, shapes.ErrInvalidTopology)
}

func TestParseEmpty(t *testing.T) {
	s, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, s.Entries)
}

const sampleSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="100" height="100">
  <polygon id="wedge" data-layer="2" points="0,0 40,0 0,30"/>
  <polygon points="10,10 30,10 30,20 10,20"/>
  <rect x="50" y="50" width="20" height="10"/>
</svg>`

func TestParseSVG(t *testing.T) {
	s, err := ParseSVG(strings.NewReader(sampleSVG))
	require.NoError(t, err)
	require.Len(t, s.Entries, 3)

	assert.Equal(t, "wedge", s.Entries[0].Name)
	assert.Equal(t, 2, s.Entries[0].Layer)
	assert.InDelta(t, 600, s.Entries[0].Shape.Area(), 1e-9)

	assert.Equal(t, "rectangle1", s.Entries[1].Name)
	assert.InDelta(t, 200, s.Entries[1].Shape.Area(), 1e-9)

	assert.Equal(t, "rectangle2", s.Entries[2].Name)
	assert.InDelta(t, 60, s.Entries[2].Shape.Center().X, 1e-9)
	assert.InDelta(t, 55, s.Entries[2].Shape.Center().Y, 1e-9)
}

func TestParsePointList(t *testing.T) {
	points, err := parsePointList(" 1,2 3 , 4  5,6 ")
	require.NoError(t, err)
	assert.Equal(t, []shapes.Point{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 6}}, points)

	_, err = parsePointList("1,2 3")
	assert.Error(t, err)
	_, err = parsePointList("1,x")
	assert.Error(t, err)
}

func TestLoadAndWorld(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(sampleYAML), 0o644))
	svgPath := filepath.Join(dir, "scene.SVG")
	require.NoError(t, os.WriteFile(svgPath, []byte(sampleSVG), 0o644))

	s, err := Load(yamlPath)
	require.NoError(t, err)
	assert.Len(t, s.Entries, 7)

	w, handles, err := s.World()
	require.NoError(t, err)
	assert.Equal(t, 7, w.Len())
	assert.Equal(t, handles, w.Handles())

	s, err = Load(svgPath)
	require.NoError(t, err)
	assert.Len(t, s.Entries, 3)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
