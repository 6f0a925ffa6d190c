package utils

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// IsHTTPURL reports whether s looks like an http(s) URL rather than a local
// file path.
func IsHTTPURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// LoadBytes reads pathOrURL from disk, or downloads it when it is an http(s)
// URL. Remote loads honor ctx and reject non-2xx statuses.
func LoadBytes(ctx context.Context, client *http.Client, pathOrURL string) ([]byte, error) {
	if !IsHTTPURL(pathOrURL) {
		data, err := os.ReadFile(pathOrURL)
		if err != nil {
			return nil, fmt.Errorf("failed to read file %q: %w", pathOrURL, err)
		}
		return data, nil
	}

	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pathOrURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %q: %w", pathOrURL, err)
	}

	res, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download %q: %w", pathOrURL, err)
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, &StatusError{StatusCode: res.StatusCode, Body: res.Status}
	}

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %q: %w", pathOrURL, err)
	}
	return data, nil
}

// EncodeToBase64 returns the standard base64 encoding of data.
func EncodeToBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// EncodeImageToBase64 loads an image from a local path or http(s) URL and
// returns it base64-encoded, ready for an inline image content part.
func EncodeImageToBase64(ctx context.Context, pathOrURL string) (string, error) {
	data, err := LoadBytes(ctx, nil, pathOrURL)
	if err != nil {
		return "", err
	}
	return EncodeToBase64(data), nil
}
