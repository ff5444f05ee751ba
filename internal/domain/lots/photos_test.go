package lots

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyncCoverPhotoSet(t *testing.T) {
	t.Run("keeps surviving photos in order and appends new ones", func(t *testing.T) {
		set := SyncCoverPhotoSet([]string{"p1", "p2"}, "p2", []string{"p2", "p3"})
		assert.Equal(t, []string{"p2", "p3"}, set.Photos)
		assert.Equal(t, "p2", set.Cover)
	})

	t.Run("cover falls back to first photo when its article is removed", func(t *testing.T) {
		set := SyncCoverPhotoSet([]string{"p1"}, "p1", []string{"p2", "p3"})
		assert.Equal(t, []string{"p2", "p3"}, set.Photos)
		assert.Equal(t, "p2", set.Cover)
	})

	t.Run("drops photos of removed articles", func(t *testing.T) {
		set := SyncCoverPhotoSet([]string{"a", "b", "c"}, "b", []string{"c", "a"})
		assert.Equal(t, []string{"a", "c"}, set.Photos)
		assert.Equal(t, "a", set.Cover)
	})

	t.Run("empty member set clears everything", func(t *testing.T) {
		set := SyncCoverPhotoSet([]string{"p1", "p2"}, "p1", nil)
		assert.Empty(t, set.Photos)
		assert.Equal(t, "", set.Cover)
	})

	t.Run("no current photos takes member order", func(t *testing.T) {
		set := SyncCoverPhotoSet(nil, "", []string{"x", "y"})
		assert.Equal(t, []string{"x", "y"}, set.Photos)
		assert.Equal(t, "x", set.Cover)
	})

	t.Run("duplicate member photos appear once", func(t *testing.T) {
		set := SyncCoverPhotoSet([]string{"p1"}, "p1", []string{"p1", "p1", "p2"})
		assert.Equal(t, []string{"p1", "p2"}, set.Photos)
	})
}

func TestCapPhotos(t *testing.T) {
	t.Run("short lists pass through", func(t *testing.T) {
		in := []string{"a", "b"}
		assert.Equal(t, in, CapPhotos(in))
	})

	t.Run("long lists keep the first five", func(t *testing.T) {
		in := []string{"a", "b", "c", "d", "e", "f", "g"}
		assert.Equal(t, []string{"a", "b", "c", "d", "e"}, CapPhotos(in))
	})
}
