package helpers

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedThing struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestRedisJSON_RoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := NewRedisClient(mr.Addr(), "", 0)
	defer func() { _ = rdb.Close() }()

	in := cachedThing{ID: "42", Name: "Player"}
	require.NoError(t, RedisSetJSON(context.Background(), rdb, "thing:42", in, time.Minute))

	var out cachedThing
	ok, err := RedisGetJSON(context.Background(), rdb, "thing:42", &out)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, in, out)
}

func TestRedisGetJSON_MissIsNotAnError(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := NewRedisClient(mr.Addr(), "", 0)
	defer func() { _ = rdb.Close() }()

	var out cachedThing
	ok, err := RedisGetJSON(context.Background(), rdb, "thing:missing", &out)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisDel(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := NewRedisClient(mr.Addr(), "", 0)
	defer func() { _ = rdb.Close() }()

	require.NoError(t, RedisSetJSON(context.Background(), rdb, "thing:42", cachedThing{ID: "42"}, time.Minute))
	require.NoError(t, RedisDel(context.Background(), rdb, "thing:42"))

	var out cachedThing
	ok, err := RedisGetJSON(context.Background(), rdb, "thing:42", &out)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisSetJSON_RejectsUnmarshalableValue(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := NewRedisClient(mr.Addr(), "", 0)
	defer func() { _ = rdb.Close() }()

	err := RedisSetJSON(context.Background(), rdb, "bad", func() {}, time.Minute)
	assert.Error(t, err)
}
