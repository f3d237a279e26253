package request

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/cliwire/internal/argv"
	"github.com/vk/cliwire/internal/urlbuild"
)

func TestBuild_Get(t *testing.T) {
	args := argv.Parse([]string{"users", "42", "--limit", "5", "--", "ignored=yes"})

	req, err := Build(GetVariant, args, urlbuild.Options{})
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/users/42", req.URL.Path)
	assert.Equal(t, "limit=5", req.URL.RawQuery)
	// The GET variant has no body and ignores tail tokens entirely.
	assert.Nil(t, req.Body)
	assert.Empty(t, req.Header.Get("Content-Type"))
}

func TestBuild_PostWithBody(t *testing.T) {
	args := argv.Parse([]string{"users", "--", "name=ada", "admin"})

	req, err := Build(PostVariant, args, urlbuild.Options{})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))

	raw, err := io.ReadAll(req.Body)
	require.NoError(t, err)
	var fields map[string]string
	require.NoError(t, json.Unmarshal(raw, &fields))
	// A tail token without "=" maps to an empty-string value.
	assert.Equal(t, map[string]string{"name": "ada", "admin": ""}, fields)
}

func TestBuild_PostEmptyTail(t *testing.T) {
	req, err := Build(PostVariant, argv.Parse([]string{"users"}), urlbuild.Options{})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, req.Method)
	assert.Nil(t, req.Body)
	assert.Empty(t, req.Header.Get("Content-Type"))
}

func TestVariant(t *testing.T) {
	assert.Equal(t, http.MethodGet, GetVariant.Method())
	assert.Equal(t, http.MethodPost, PostVariant.Method())
}

func TestHookSet_Resolve(t *testing.T) {
	marker := func(header string) Hook {
		return func(req *http.Request, _ *argv.Args) *http.Request {
			req.Header.Set("X-Hook", header)
			return req
		}
	}

	t.Run("single function wins", func(t *testing.T) {
		hs := HookSet{Fn: marker("single"), ByCommand: map[string]Hook{"users": marker("keyed")}}
		hook := hs.Resolve(argv.Parse([]string{"users"}))
		require.NotNil(t, hook)

		req, err := http.NewRequest(http.MethodPost, "http://cli/", nil)
		require.NoError(t, err)
		ApplyHook(hook, req, argv.Parse(nil))
		assert.Equal(t, "single", req.Header.Get("X-Hook"))
	})

	t.Run("keyed lookup", func(t *testing.T) {
		hs := HookSet{ByCommand: map[string]Hook{"users": marker("keyed")}}
		assert.NotNil(t, hs.Resolve(argv.Parse([]string{"users"})))
		assert.Nil(t, hs.Resolve(argv.Parse([]string{"other"})))
	})

	t.Run("no command resolves nil", func(t *testing.T) {
		hs := HookSet{ByCommand: map[string]Hook{"users": marker("keyed")}}
		assert.Nil(t, hs.Resolve(argv.Parse([]string{"--json"})))
	})

	t.Run("empty set resolves nil", func(t *testing.T) {
		assert.Nil(t, HookSet{}.Resolve(argv.Parse([]string{"users"})))
	})
}

func TestApplyHook(t *testing.T) {
	original, err := http.NewRequest(http.MethodPost, "http://cli/a", nil)
	require.NoError(t, err)
	replacement, err := http.NewRequest(http.MethodPost, "http://cli/b", nil)
	require.NoError(t, err)

	t.Run("nil hook keeps original", func(t *testing.T) {
		assert.Same(t, original, ApplyHook(nil, original, argv.Parse(nil)))
	})

	t.Run("nil return keeps original", func(t *testing.T) {
		hook := Hook(func(req *http.Request, _ *argv.Args) *http.Request { return nil })
		assert.Same(t, original, ApplyHook(hook, original, argv.Parse(nil)))
	})

	t.Run("returned request replaces", func(t *testing.T) {
		hook := Hook(func(req *http.Request, _ *argv.Args) *http.Request { return replacement })
		assert.Same(t, replacement, ApplyHook(hook, original, argv.Parse(nil)))
	})
}
