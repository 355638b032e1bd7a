package requestnorm

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/JakeFAU/request-normalizer/urlnorm"
)

func jsonHeaders() map[string]string {
	return map[string]string{"Content-Type": "application/json"}
}

func TestNormalizeBodyEmpty(t *testing.T) {
	t.Parallel()

	require.Empty(t, NormalizeBody(nil, jsonHeaders(), urlnorm.DefaultPolicy()))
	require.Empty(t, NormalizeBody([]byte{}, nil, urlnorm.DefaultPolicy()))
}

func TestNormalizeBodyJSON(t *testing.T) {
	t.Parallel()

	t.Run("object keys sorted", func(t *testing.T) {
		got := NormalizeBody([]byte(`{"b": 2, "a": 1}`), jsonHeaders(), urlnorm.DefaultPolicy())
		require.Equal(t, `{"a":1,"b":2}`, string(got))
	})

	t.Run("nested objects filtered", func(t *testing.T) {
		p := urlnorm.DefaultPolicy()
		p.IgnoredParameters = []string{"token"}
		got := NormalizeBody([]byte(`{"outer": {"token": "x", "keep": true}}`), jsonHeaders(), p)
		require.Equal(t, `{"outer":{"keep":true}}`, string(got))
	})

	t.Run("arrays sorted", func(t *testing.T) {
		got := NormalizeBody([]byte(`["b", "a", "c"]`), jsonHeaders(), urlnorm.DefaultPolicy())
		require.Equal(t, `["a","b","c"]`, string(got))
	})

	t.Run("number form preserved", func(t *testing.T) {
		got := NormalizeBody([]byte(`{"a": 1.50}`), jsonHeaders(), urlnorm.DefaultPolicy())
		require.Equal(t, `{"a":1.50}`, string(got))
	})

	t.Run("content type parameters tolerated", func(t *testing.T) {
		headers := map[string]string{"content-type": "Application/JSON; charset=utf-8"}
		got := NormalizeBody([]byte(`{"b": 2, "a": 1}`), headers, urlnorm.DefaultPolicy())
		require.Equal(t, `{"a":1,"b":2}`, string(got))
	})

	t.Run("redaction", func(t *testing.T) {
		p := urlnorm.DefaultPolicy()
		p.IgnoredParameters = []string{"token"}
		p.RedactIgnored = true
		got := NormalizeBody([]byte(`{"token": "x", "a": 1}`), jsonHeaders(), p)
		require.Equal(t, `{"a":1,"token":"REDACTED"}`, string(got))
	})
}

func TestNormalizeBodyJSONPassthrough(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{"malformed", `{not json`},
		{"trailing garbage", `{"a": 1} extra`},
		{"scalar root", `"hello"`},
		{"number root", `12345`},
		{"tiny body", `{}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeBody([]byte(tc.body), jsonHeaders(), urlnorm.DefaultPolicy())
			require.Equal(t, tc.body, string(got))
		})
	}
}

func TestNormalizeBodyForm(t *testing.T) {
	t.Parallel()

	headers := map[string]string{"Content-Type": "application/x-www-form-urlencoded"}
	p := urlnorm.DefaultPolicy()
	p.IgnoredParameters = []string{"token"}

	got := NormalizeBody([]byte("b=2&token=x&a=1"), headers, p)
	require.Equal(t, "a=1&b=2", string(got))
}

func TestNormalizeBodyUnknownContentType(t *testing.T) {
	t.Parallel()

	body := []byte("opaque bytes")
	require.Equal(t, body, NormalizeBody(body, map[string]string{"Content-Type": "text/plain"}, urlnorm.DefaultPolicy()))
	require.Equal(t, body, NormalizeBody(body, nil, urlnorm.DefaultPolicy()))
}

func TestNormalizeBodyIgnoredEquivalence(t *testing.T) {
	t.Parallel()

	p := urlnorm.DefaultPolicy()
	p.IgnoredParameters = []string{"token"}

	a := NormalizeBody([]byte(`{"token": "A", "q": 1}`), jsonHeaders(), p)
	b := NormalizeBody([]byte(`{"token": "B", "q": 1}`), jsonHeaders(), p)
	require.Equal(t, string(a), string(b))
}
