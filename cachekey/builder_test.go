package cachekey

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/JakeFAU/request-normalizer/urlnorm"
)

func TestURLKeyStableAcrossSpellings(t *testing.T) {
	t.Parallel()

	b := New(urlnorm.DefaultPolicy())
	key := b.URLKey("http://example.com/a/b?x=1&y=2")
	require.Equal(t, key, b.URLKey("HTTP://EXAMPLE.COM/a/b?y=2&x=1"))
	require.Equal(t, key, b.URLKey("http://example.com:80/a/c/../b?y=2&x=1"))
	require.NotEqual(t, key, b.URLKey("http://example.com/a/b?x=1&y=3"))
	require.Len(t, key, 64)
}

func TestRequestKeyIgnoresVolatileParameters(t *testing.T) {
	t.Parallel()

	p := urlnorm.DefaultPolicy()
	p.IgnoredParameters = []string{"token", "X-Request-Id"}
	b := New(p)

	keyA := b.RequestKey(
		"http://example.com/?token=A",
		map[string]string{"X-Request-Id": "111", "Accept": "text/html"},
		nil,
	)
	keyB := b.RequestKey(
		"http://example.com/?token=B",
		map[string]string{"X-Request-Id": "222", "Accept": "text/html"},
		nil,
	)
	require.Equal(t, keyA, keyB)

	other := b.RequestKey(
		"http://example.com/?token=A",
		map[string]string{"X-Request-Id": "111", "Accept": "text/plain"},
		nil,
	)
	require.NotEqual(t, keyA, other)
}

func TestRequestKeyCoversBody(t *testing.T) {
	t.Parallel()

	b := New(urlnorm.DefaultPolicy())
	headers := map[string]string{"Content-Type": "application/json"}

	withBody := b.RequestKey("http://example.com/", headers, []byte(`{"a": 1}`))
	reordered := b.RequestKey("http://example.com/", headers, []byte(`{"a":  1}`))
	empty := b.RequestKey("http://example.com/", headers, nil)
	require.Equal(t, withBody, reordered)
	require.NotEqual(t, withBody, empty)
}
