package item

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTags_Add(t *testing.T) {
	var tags Tags

	assert.True(t, tags.Add("go"))
	assert.True(t, tags.Add("Go"))
	assert.False(t, tags.Add("go"))
	assert.False(t, tags.Add("  "))

	assert.Equal(t, Tags{"go", "Go"}, tags)
}

func TestTags_Remove(t *testing.T) {
	tags := NewTags("a", "b", "c")

	assert.False(t, tags.Remove("z"))
	assert.Equal(t, Tags{"a", "b", "c"}, tags)

	assert.True(t, tags.Remove("b"))
	assert.Equal(t, Tags{"a", "c"}, tags)
}

func TestTags_RemoveDoesNotAliasCopies(t *testing.T) {
	tags := NewTags("a", "b", "c")
	snapshot := tags.Slice()

	tags.Remove("a")

	assert.Equal(t, []string{"a", "b", "c"}, snapshot)
	assert.Equal(t, Tags{"b", "c"}, tags)
}

func TestNewTags(t *testing.T) {
	assert.Equal(t, Tags{"x", "y"}, NewTags("x", "", "y", "x"))
	assert.NotNil(t, NewTags())
}
