package hiremind

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"

	"go.uber.org/zap"
)

const contentTypeJSON = "application/json"

// envelope wraps every JSON response from the HireMind API.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// errorBody is the failure payload the API reports on non-2xx statuses.
type errorBody struct {
	Error  string `json:"error,omitempty"`
	Detail string `json:"detail,omitempty"`
}

func get[T any](ctx context.Context, c *Client, path string, q url.Values) (T, error) {
	return send[T](ctx, c, http.MethodGet, path, q, nil, contentTypeJSON)
}

func post[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	var zero T

	encoded, err := encodeBody(body)
	if err != nil {
		return zero, err
	}

	return send[T](ctx, c, http.MethodPost, path, nil, encoded, contentTypeJSON)
}

func put[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	var zero T

	encoded, err := encodeBody(body)
	if err != nil {
		return zero, err
	}

	return send[T](ctx, c, http.MethodPut, path, nil, encoded, contentTypeJSON)
}

func del(ctx context.Context, c *Client, path string) error {
	_, err := send[json.RawMessage](ctx, c, http.MethodDelete, path, nil, nil, contentTypeJSON)
	return err
}

// uploadFile sends a multipart body with the file under the given field name.
func uploadFile[T any](ctx context.Context, c *Client, path, field, filename string, r io.Reader) (T, error) {
	var zero T

	var b bytes.Buffer
	w := multipart.NewWriter(&b)

	part, err := w.CreateFormFile(field, filepath.Base(filename))
	if err != nil {
		return zero, newTransportError(err)
	}

	if _, err = io.Copy(part, r); err != nil {
		return zero, newTransportError(err)
	}

	if err = w.Close(); err != nil {
		return zero, newTransportError(err)
	}

	return send[T](ctx, c, http.MethodPost, path, nil, &b, w.FormDataContentType())
}

// send performs exactly one HTTP round trip and unwraps the envelope's data
// payload. Every failure comes back as a *ServiceError; this is the single
// normalization point for the whole client.
func send[T any](ctx context.Context, c *Client, method, path string, q url.Values, body io.Reader, contentType string) (T, error) {
	var zero T

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return zero, newTransportError(err)
	}

	req.Header.Set("Content-Type", contentType)
	req.Header.Set("User-Agent", c.UserAgent)
	if q != nil {
		req.URL.RawQuery = q.Encode()
	}

	c.logger.Debug("make request",
		zap.String("method", method),
		zap.String("url", req.URL.String()),
	)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return zero, newTransportError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, newTransportError(err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return zero, normalizeStatusError(resp.StatusCode, raw)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return zero, &ServiceError{
			Message:    genericErrorMessage,
			StatusCode: 500,
			Detail:     err.Error(),
		}
	}

	if len(env.Data) == 0 {
		return zero, nil
	}

	var out T
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return zero, &ServiceError{
			Message:    genericErrorMessage,
			StatusCode: 500,
			Detail:     err.Error(),
		}
	}

	return out, nil
}

// normalizeStatusError converts a non-2xx response into a ServiceError. The
// message prefers the service's reported error string, then the generic
// transport text; the status code is kept as-is.
func normalizeStatusError(status int, raw []byte) *ServiceError {
	var body errorBody
	// A non-JSON error body is fine; the fields just stay empty.
	_ = json.Unmarshal(raw, &body)

	message := body.Error
	if message == "" {
		message = http.StatusText(status)
	}
	if message == "" {
		message = genericErrorMessage
	}

	if status == 0 {
		status = 500
	}

	return &ServiceError{
		Message:    message,
		StatusCode: status,
		Detail:     body.Detail,
	}
}

func encodeBody(body any) (io.Reader, error) {
	if body == nil {
		return nil, nil
	}

	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, newTransportError(err)
	}

	return bytes.NewReader(encoded), nil
}
