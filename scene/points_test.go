package scene

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuushi/hedra/shapes"
)

func TestParsePoints(t *testing.T) {
	input := `# a right triangle
0 0
4 0
0 3

1 1
3 1
3 2
1 2
`
	s, err := ParsePoints(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, s.Entries, 2)

	assert.Equal(t, "triangle0", s.Entries[0].Name)
	assert.InDelta(t, 6, s.Entries[0].Shape.Area(), 1e-9)
	assert.Equal(t, "rectangle1", s.Entries[1].Name)
	assert.InDelta(t, 2, s.Entries[1].Shape.Area(), 1e-9)
}

func TestParsePointsErrors(t *testing.T) {
	_, err := ParsePoints(strings.NewReader("0 0\n1 1\n"))
	assert.ErrorIs(t, err, shapes.ErrNotSupported)

	_, err = ParsePoints(strings.NewReader("0 0\n1 x\n2 2\n"))
	assert.Error(t, err)

	_, err = ParsePoints(strings.NewReader("0 0 0\n"))
	assert.Error(t, err)

	_, err = ParsePoints(strings.NewReader("0 0\n1 1\n2 2\n"))
	assert.ErrorIs(t, err, shapes.ErrDegenerateTriangle)
}
