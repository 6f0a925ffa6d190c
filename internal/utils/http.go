package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/promptlab/llmbridge/providers/observability"
)

// HeaderOption is an extra header attached to an outbound request. Providers
// that do not use Bearer authentication (Anthropic's x-api-key, Gemini's
// x-goog-api-key) pass their credentials this way.
type HeaderOption struct {
	Key   string
	Value string
}

// StatusError reports a non-2xx response. Body carries the raw response text
// so callers can surface provider diagnostics verbatim.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("non-2xx status %d: %s", e.StatusCode, e.Body)
}

// DecodeError reports response JSON that could not be unmarshaled into the
// expected shape. Preview holds a truncated copy of the offending body.
type DecodeError struct {
	Err     error
	Preview string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("error unmarshaling response body: %v\nResponse preview: %s", e.Err, e.Preview)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// DoPostSync performs a synchronous HTTP POST with a JSON body and parses the
// response into OutputStruct.
//
// Error handling strategy:
//   - context errors and connection failures are returned as-is (transport)
//   - non-2xx statuses return a *StatusError carrying the raw body (protocol)
//   - unparseable JSON returns a *DecodeError with a body preview (decode)
//
// When apiKey is non-empty it is sent as a Bearer Authorization header;
// providers with their own auth scheme pass it via headers instead. The
// response body is always closed; close failures are logged without
// overriding the primary error.
//
// When the context carries a span (see [observability.SpanFromContext]) the
// wire round trip is recorded on it as request/response events with URL,
// status code, body sizes, and duration.
func DoPostSync[OutputStruct any](ctx context.Context, client *http.Client, url, apiKey string, body any, headers ...HeaderOption) (*http.Response, *OutputStruct, error) {
	span := observability.SpanFromContext(ctx)

	httpClient := client
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, nil, fmt.Errorf("error marshaling body: %w", err)
	}

	if span != nil {
		span.AddEvent("http.request.prepared",
			observability.String(observability.AttrHTTPMethod, http.MethodPost),
			observability.String(observability.AttrHTTPURL, url),
			observability.Int(observability.AttrHTTPRequestBodySize, len(jsonBody)),
		)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, nil, fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+apiKey)
	}
	for _, h := range headers {
		req.Header.Set(h.Key, h.Value)
	}

	requestStart := time.Now()
	res, err := httpClient.Do(req)
	requestDuration := time.Since(requestStart)

	if err != nil {
		if span != nil {
			span.AddEvent("http.request.error",
				observability.Error(err),
				observability.Duration("http.request.duration", requestDuration),
			)
		}
		return res, nil, fmt.Errorf("error sending request: %w", err)
	}
	defer func(body io.ReadCloser) {
		if closeErr := body.Close(); closeErr != nil {
			slog.Warn("failed to close response body", "error", closeErr.Error(), "url", url)
		}
	}(res.Body)

	respBody, err := io.ReadAll(res.Body)
	if err != nil {
		return res, nil, fmt.Errorf("error reading response body: %w", err)
	}

	if span != nil {
		span.AddEvent("http.response.received",
			observability.Int(observability.AttrHTTPStatusCode, res.StatusCode),
			observability.Int(observability.AttrHTTPResponseBodySize, len(respBody)),
			observability.Duration("http.request.duration", requestDuration),
		)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return res, nil, &StatusError{StatusCode: res.StatusCode, Body: string(respBody)}
	}

	var resStruct OutputStruct
	if err = json.Unmarshal(respBody, &resStruct); err != nil {
		return res, nil, &DecodeError{Err: err, Preview: TruncateString(string(respBody), DefaultMaxStringLength)}
	}

	return res, &resStruct, nil
}
