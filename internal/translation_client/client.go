// Package translation_client talks to the translation backend.
//
// Every call performs exactly one HTTP round trip. Nothing is retried,
// cached or batched; failures are returned to the caller as
// *TransportError, *BackendError or *DecodeError.
package translation_client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"translate-bridge/pkg/types"
)

const (
	translatePath = "/translate"
	healthPath    = "/health"

	// maxBodyBytes caps how much of a response body is read.
	maxBodyBytes = 10 << 20
)

// Client calls the translation backend at a fixed base endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a client for the backend rooted at baseURL.
// The URL is not validated here; a malformed one surfaces as a TransportError on first use.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured endpoint root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Translate asks the backend to translate text from sourceLang to targetLang.
// The arguments are sent verbatim; validating them is the caller's job.
func (c *Client) Translate(ctx context.Context, text, sourceLang, targetLang string) (Outcome, error) {
	url := c.baseURL + translatePath

	payload, err := json.Marshal(types.TranslateRequest{
		Text:       text,
		SourceLang: sourceLang,
		TargetLang: targetLang,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, &TransportError{Op: http.MethodPost, URL: url, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("sending translation request",
		zap.String("url", url),
		zap.String("source_language", sourceLang),
		zap.String("target_language", targetLang),
		zap.Int("text_length", len(text)),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Op: http.MethodPost, URL: url, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &TransportError{Op: http.MethodPost, URL: url, Err: fmt.Errorf("read body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, backendError(resp.StatusCode, body)
	}

	outcome, err := decodeOutcome(resp.StatusCode, body)
	if err != nil {
		c.logger.Warn("unexpected translation response",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", body),
			zap.Error(err),
		)
		return nil, err
	}

	if soft, ok := outcome.(SoftFailure); ok {
		c.logger.Debug("translation soft failure", zap.String("message", soft.Message))
	}

	return outcome, nil
}

// CheckHealth reports whether GET /health answers with exactly 200.
// Only transport failures produce an error.
func (c *Client) CheckHealth(ctx context.Context) (bool, error) {
	url := c.baseURL + healthPath

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, &TransportError{Op: http.MethodGet, URL: url, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, &TransportError{Op: http.MethodGet, URL: url, Err: err}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))

	c.logger.Debug("health check", zap.String("url", url), zap.Int("status", resp.StatusCode))

	return resp.StatusCode == http.StatusOK, nil
}

func backendError(status int, body []byte) *BackendError {
	var errResp types.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil {
		return &BackendError{StatusCode: status}
	}
	return &BackendError{StatusCode: status, Message: errResp.Error}
}

// wireResult mirrors types.TranslateResponse with pointers so missing fields can be told apart.
type wireResult struct {
	Input          *string                   `json:"input"`
	Translated     *string                   `json:"translated"`
	Error          *string                   `json:"error"`
	Method         string                    `json:"method"`
	SourceLanguage *types.LanguageDescriptor `json:"source_language"`
	TargetLanguage *types.LanguageDescriptor `json:"target_language"`
}

var errMissingFields = errors.New("response is missing input or translated")

func decodeOutcome(status int, body []byte) (Outcome, error) {
	var w wireResult
	if err := json.Unmarshal(body, &w); err != nil {
		return nil, &DecodeError{StatusCode: status, Body: body, Err: err}
	}

	result := Result{
		Method:         w.Method,
		SourceLanguage: w.SourceLanguage,
		TargetLanguage: w.TargetLanguage,
	}
	if w.Input != nil {
		result.Input = *w.Input
	}
	if w.Translated != nil {
		result.Translated = *w.Translated
	}

	if w.Error != nil {
		return SoftFailure{Result: result, StatusCode: status, Message: *w.Error}, nil
	}

	if w.Input == nil || w.Translated == nil {
		return nil, &DecodeError{StatusCode: status, Body: body, Err: errMissingFields}
	}

	return Translated{Result: result}, nil
}
