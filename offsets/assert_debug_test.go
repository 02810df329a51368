//go:build layoutdebug

package offsets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebugChecks(t *testing.T) {
	s := NewStorage(3, 1)
	assert.PanicsWithValue(t, "offsets: negative value", func() { s.Set(0, -1) })
	assert.PanicsWithValue(t, "offsets: index out of range", func() { s.At(3) })
	assert.PanicsWithValue(t, "offsets: insert index out of range", func() { s.Insert(5, 1) })
	assert.PanicsWithValue(t, "offsets: remove range out of range", func() { s.RemoveRange(2, 2) })
	assert.PanicsWithValue(t, "offsets: negative default value", func() { NewStorage(1, -2) })
}
