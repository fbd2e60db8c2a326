package headers

import (
	"testing"

	"github.com/evermet/wshttp/status"
	"github.com/stretchr/testify/require"
)

func TestHeaders(t *testing.T) {
	t.Run("append and get", func(t *testing.T) {
		h := New()
		require.NoError(t, h.Append("Host", "example.com"))
		require.Equal(t, "example.com", h.Value("Host"))
		require.Equal(t, "example.com", h.Value("hOsT"))

		value, found := h.Get("HOST")
		require.True(t, found)
		require.Equal(t, "example.com", value)
	})

	t.Run("missing key is empty, not an error", func(t *testing.T) {
		h := New()
		require.Equal(t, "", h.Value("Accept"))
		require.False(t, h.Has("Accept"))
	})

	t.Run("repeated append folds with comma", func(t *testing.T) {
		h := New()
		require.NoError(t, h.Append("Accept", "a"))
		require.NoError(t, h.Append("accept", "b"))
		require.Equal(t, "a, b", h.Value("Accept"))
		require.Equal(t, 1, h.Len())
	})

	t.Run("invalid names leave the store unchanged", func(t *testing.T) {
		h := New()
		require.NoError(t, h.Append("Host", "example.com"))

		for _, key := range []string{"", "Bad Header", "Bad:Header", "Bad\x00", "Bad\r\n", "Tab\there"} {
			require.ErrorIs(t, h.Append(key, "x"), status.ErrInvalidHeaderName)
			require.ErrorIs(t, h.Replace(key, "x"), status.ErrInvalidHeaderName)
			require.ErrorIs(t, h.Remove(key), status.ErrInvalidHeaderName)
		}

		require.Equal(t, 1, h.Len())
		require.Equal(t, "example.com", h.Value("Host"))
	})

	t.Run("replace overwrites and keeps first spelling", func(t *testing.T) {
		h := New()
		require.NoError(t, h.Append("Content-Length", "5"))
		require.NoError(t, h.Replace("content-length", "10"))
		require.Equal(t, "10", h.Value("Content-Length"))
		require.Equal(t, "Content-Length: 10\r\n", h.Serialize())

		require.NoError(t, h.Replace("Upgrade", "websocket"))
		require.Equal(t, "websocket", h.Value("Upgrade"))
	})

	t.Run("remove", func(t *testing.T) {
		h := New()
		require.NoError(t, h.Append("Host", "example.com"))
		require.NoError(t, h.Remove("HOST"))
		require.False(t, h.Has("Host"))
		// removing what isn't there is fine
		require.NoError(t, h.Remove("Host"))
	})

	t.Run("serialize", func(t *testing.T) {
		h := New()
		require.NoError(t, h.Append("Host", "example.com"))
		require.NoError(t, h.Append("Upgrade", "websocket"))
		require.Equal(t, "Host: example.com\r\nUpgrade: websocket\r\n", h.Serialize())
	})

	t.Run("pairs iteration", func(t *testing.T) {
		h := New()
		require.NoError(t, h.Append("A", "1"))
		require.NoError(t, h.Append("B", "2"))

		got := map[string]string{}
		for key, value := range h.Pairs() {
			got[key] = value
		}

		require.Equal(t, map[string]string{"A": "1", "B": "2"}, got)
	})

	t.Run("clear", func(t *testing.T) {
		h := New()
		require.NoError(t, h.Append("Host", "example.com"))
		require.Equal(t, 0, h.Clear().Len())
		require.Equal(t, "", h.Serialize())
	})

	t.Run("as params", func(t *testing.T) {
		h := New()
		require.NoError(t, h.Append("Transfer-Encoding", "gzip, chunked"))
		require.NoError(t, h.Append("Empty", ""))
		require.NoError(t, h.Append("Garbage", "a=b=c,,"))

		list, ok := h.AsParams("Transfer-Encoding")
		require.True(t, ok)
		require.Len(t, list, 2)
		require.Equal(t, "gzip", list[0].Token)
		require.Equal(t, "chunked", list[1].Token)

		_, ok = h.AsParams("Missing")
		require.False(t, ok)
		_, ok = h.AsParams("Empty")
		require.False(t, ok)
		_, ok = h.AsParams("Garbage")
		require.False(t, ok)
	})
}

func TestFromLine(t *testing.T) {
	t.Run("plain line", func(t *testing.T) {
		key, value, err := FromLine("Host: example.com")
		require.NoError(t, err)
		require.Equal(t, "Host", key)
		require.Equal(t, "example.com", value)
	})

	t.Run("whitespace is stripped on both sides", func(t *testing.T) {
		key, value, err := FromLine("  Host \t:  \texample.com  ")
		require.NoError(t, err)
		require.Equal(t, "Host", key)
		require.Equal(t, "example.com", value)
	})

	t.Run("empty value", func(t *testing.T) {
		key, value, err := FromLine("X-Empty:")
		require.NoError(t, err)
		require.Equal(t, "X-Empty", key)
		require.Equal(t, "", value)
	})

	t.Run("no colon", func(t *testing.T) {
		_, _, err := FromLine("Host example.com")
		require.ErrorIs(t, err, status.ErrInvalidFormat)
	})
}
