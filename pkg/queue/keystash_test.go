package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIKeyStash(t *testing.T) {
	stash := NewAPIKeyStash()

	t.Run("miss returns false", func(t *testing.T) {
		_, ok := stash.Get("del_missing")
		assert.False(t, ok)
	})

	t.Run("put and get", func(t *testing.T) {
		stash.Put("del_1", "sk-abc")
		key, ok := stash.Get("del_1")
		assert.True(t, ok)
		assert.Equal(t, "sk-abc", key)
		assert.Equal(t, 1, stash.Len())
	})

	t.Run("empty key ignored", func(t *testing.T) {
		stash.Put("del_2", "")
		_, ok := stash.Get("del_2")
		assert.False(t, ok)
	})

	t.Run("remove", func(t *testing.T) {
		stash.Put("del_3", "sk-def")
		stash.Remove("del_3")
		_, ok := stash.Get("del_3")
		assert.False(t, ok)
	})

	t.Run("remove unknown is no-op", func(t *testing.T) {
		stash.Remove("del_never_seen")
	})
}
