package middleware

import (
	"bytes"
	"compress/gzip"
	"net/http"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func responseWith(encoding string, body []byte) *resty.Response {
	header := http.Header{}
	if encoding != "" {
		header.Set("Content-Encoding", encoding)
	}
	resp := &resty.Response{RawResponse: &http.Response{Header: header}}
	resp.SetBody(body)
	return resp
}

func TestDecompressMiddleware_Brotli(t *testing.T) {
	var buf bytes.Buffer
	w := brotli.NewWriter(&buf)
	_, err := w.Write([]byte(`{"success":true}`))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	resp := responseWith("br", buf.Bytes())
	require.NoError(t, DecompressMiddleware(nil, resp))
	assert.Equal(t, `{"success":true}`, string(resp.Body()))
	assert.Empty(t, resp.Header().Get("Content-Encoding"))
}

func TestDecompressMiddleware_Gzip(t *testing.T) {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write([]byte(`{"status":200}`))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	resp := responseWith("gzip", buf.Bytes())
	require.NoError(t, DecompressMiddleware(nil, resp))
	assert.Equal(t, `{"status":200}`, string(resp.Body()))
}

func TestDecompressMiddleware_LeavesPlainBodiesAlone(t *testing.T) {
	tests := []struct {
		name     string
		encoding string
	}{
		{"no encoding", ""},
		{"gzip already inflated", "gzip"},
		{"unknown encoding", "deflate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := responseWith(tt.encoding, []byte(`{"ok":1}`))
			require.NoError(t, DecompressMiddleware(nil, resp))
			assert.Equal(t, `{"ok":1}`, string(resp.Body()))
		})
	}
}
