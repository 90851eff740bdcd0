package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/Rorical/TextValidator/internal/models"
)

// GenericErrorMessage is shown when the service gives no usable detail.
const GenericErrorMessage = "An error occurred during validation."

// Validator sends text to the validation service.
type Validator interface {
	Validate(ctx context.Context, text string) (*models.Result, error)
}

// APIError is a non-2xx answer from the validation service.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("validation service returned status %d: %s", e.StatusCode, e.Message())
}

// Message is the human-readable part of the error.
func (e *APIError) Message() string {
	if e.Detail == "" {
		return GenericErrorMessage
	}
	return e.Detail
}

// Message extracts what the user should see for any error returned by
// Validate.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message()
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		return urlErr.Err.Error()
	}
	return err.Error()
}

type Client struct {
	baseURL     string
	profileName string
	http        *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the transport, mostly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithProfileName asks the service to validate with a named profile.
func WithProfileName(name string) Option {
	return func(c *Client) {
		c.profileName = name
	}
}

// New returns a client for the service at baseURL. No timeout is set on
// the transport; callers bound requests through the context if needed.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

type validateRequest struct {
	Text        string `json:"text"`
	ProfileName string `json:"profile_name,omitempty"`
}

// validateResponse tells a missing normalized_text apart from an empty one.
type validateResponse struct {
	NormalizedText *string               `json:"normalized_text"`
	QualityReport  *models.QualityReport `json:"quality_report"`
	Usage          *models.Usage         `json:"usage"`
}

var errMissingText = errors.New("normalized_text is missing")

type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

// Validate posts text to /validate. Exactly one request is made; there are
// no retries.
func (c *Client) Validate(ctx context.Context, text string) (*models.Result, error) {
	payload, err := json.Marshal(validateRequest{Text: text, ProfileName: c.profileName})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/validate", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Detail: parseDetail(body)}
	}

	var decoded validateResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("invalid response from validation service: %w", err)
	}
	if decoded.NormalizedText == nil {
		return nil, fmt.Errorf("invalid response from validation service: %w", errMissingText)
	}
	return &models.Result{
		NormalizedText: *decoded.NormalizedText,
		QualityReport:  decoded.QualityReport,
		Usage:          decoded.Usage,
	}, nil
}

// Health calls GET /health and returns the reported status.
func (c *Client) Health(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("health check returned status %d", resp.StatusCode)
	}

	var health struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return "", fmt.Errorf("failed to decode health response: %w", err)
	}
	return health.Status, nil
}

// parseDetail accepts both a plain string detail and the list shape
// [{"msg": ...}] used for request validation errors.
func parseDetail(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil || len(eb.Detail) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(eb.Detail, &s); err == nil {
		return strings.TrimSpace(s)
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(eb.Detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, item := range items {
			if item.Msg != "" {
				msgs = append(msgs, item.Msg)
			}
		}
		return strings.Join(msgs, "; ")
	}

	return ""
}
