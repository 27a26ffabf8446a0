package database

import (
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

func TestConnectRedis(t *testing.T) {
	mini, err := miniredis.Run()
	require.NoError(t, err)
	defer mini.Close()

	client, err := ConnectRedis("redis://" + mini.Addr())
	require.NoError(t, err)
	require.NoError(t, client.Close())
}

func TestConnectRedisInvalidURL(t *testing.T) {
	_, err := ConnectRedis("not a url")
	require.Error(t, err)
}
