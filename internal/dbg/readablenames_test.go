package dbg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	a, b := new(int), new(int)

	nameA := Name(a)
	assert.NotEmpty(t, nameA)
	assert.Equal(t, nameA, Name(a), "names are stable for the same object")
	assert.NotEqual(t, "Ø", Name(b))

	assert.Equal(t, "Ø", Name(nil))
	var nilPointer *int
	assert.Equal(t, "Ø", Name(nilPointer))
}
