package middleware

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/go-resty/resty/v2"
)

// DecompressMiddleware inflates br and gzip bodies that the transport left
// encoded, so decoding always sees plain JSON.
func DecompressMiddleware(_ *resty.Client, resp *resty.Response) error {
	encoding := strings.ToLower(strings.TrimSpace(resp.Header().Get("Content-Encoding")))
	if encoding == "" || len(resp.Body()) == 0 {
		return nil
	}

	var reader io.Reader
	switch encoding {
	case "br":
		reader = brotli.NewReader(bytes.NewReader(resp.Body()))
	case "gzip":
		// resty already inflates gzip bodies it reads itself
		if !isGzip(resp.Body()) {
			return nil
		}
		gz, err := gzip.NewReader(bytes.NewReader(resp.Body()))
		if err != nil {
			return fmt.Errorf("failed to open gzip body: %w", err)
		}
		defer gz.Close()
		reader = gz
	default:
		return nil
	}

	decompressed, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("failed to decompress %s body: %w", encoding, err)
	}

	resp.SetBody(decompressed)
	resp.Header().Del("Content-Encoding")
	return nil
}

func isGzip(body []byte) bool {
	return len(body) >= 2 && body[0] == 0x1f && body[1] == 0x8b
}
