package dispatch

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDo_CapturesResponse(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Test", "yes")
		w.WriteHeader(http.StatusTeapot)
		fmt.Fprint(w, "short and stout")
	})
	req, err := http.NewRequest(http.MethodGet, "http://cli/teapot", nil)
	require.NoError(t, err)

	resp, err := Do(context.Background(), handler, req, nil)
	require.NoError(t, err)

	assert.Equal(t, http.StatusTeapot, resp.StatusCode)
	assert.Equal(t, "yes", resp.Header.Get("X-Test"))
	assert.Equal(t, "short and stout", resp.Text())
	assert.False(t, resp.OK())
}

func TestDo_EnvReachesHandler(t *testing.T) {
	var seen map[string]string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = EnvFrom(r.Context())
	})
	req, err := http.NewRequest(http.MethodGet, "http://cli/", nil)
	require.NoError(t, err)

	_, err = Do(context.Background(), handler, req, map[string]string{"K": "V"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"K": "V"}, seen)
}

func TestEnvFrom_Absent(t *testing.T) {
	assert.Empty(t, EnvFrom(context.Background()))
}

func TestDo_NilHandler(t *testing.T) {
	req, err := http.NewRequest(http.MethodGet, "http://cli/", nil)
	require.NoError(t, err)

	_, err = Do(context.Background(), nil, req, nil)
	assert.Error(t, err)
}

func TestDo_NilRequest(t *testing.T) {
	_, err := Do(context.Background(), http.NewServeMux(), nil, nil)
	assert.Error(t, err)
}

func TestResponse_BytesIsACopy(t *testing.T) {
	resp := &Response{StatusCode: http.StatusOK, body: []byte("immutable")}

	b := resp.Bytes()
	b[0] = 'X'

	assert.Equal(t, "immutable", resp.Text())
	assert.Equal(t, []byte("immutable"), resp.Bytes())
}

func TestResponse_OKBounds(t *testing.T) {
	testCases := []struct {
		status   int
		expected bool
	}{
		{status: 199, expected: false},
		{status: 200, expected: true},
		{status: 204, expected: true},
		{status: 299, expected: true},
		{status: 300, expected: false},
		{status: 404, expected: false},
		{status: 500, expected: false},
	}
	for _, tc := range testCases {
		resp := &Response{StatusCode: tc.status}
		assert.Equal(t, tc.expected, resp.OK(), "status %d", tc.status)
	}
}
