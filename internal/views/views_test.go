package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheSetGet(t *testing.T) {
	c, err := NewCache(8)
	require.NoError(t, err)

	_, ok := c.Get(PostList)
	assert.False(t, ok)

	c.Set(PostList, []string{"a", "b"}, time.Minute)
	got, ok := c.Get(PostList)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestCacheExpiry(t *testing.T) {
	c, err := NewCache(8)
	require.NoError(t, err)

	c.Set(PostList, "stale", time.Millisecond)
	time.Sleep(5 * time.Millisecond)

	_, ok := c.Get(PostList)
	assert.False(t, ok)
}

func TestCacheInvalidate(t *testing.T) {
	c, err := NewCache(8)
	require.NoError(t, err)

	c.Set(PostList, "listing", time.Minute)
	c.Set(PostDetail(7), "detail", time.Minute)

	c.Invalidate(PostList, PostDetail(7))

	_, ok := c.Get(PostList)
	assert.False(t, ok)
	_, ok = c.Get(PostDetail(7))
	assert.False(t, ok)
}

func TestPostDetailName(t *testing.T) {
	assert.Equal(t, "post-detail:42", PostDetail(42))
}
