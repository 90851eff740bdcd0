package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/TextValidator/internal/mockservice"
)

func newServer(t *testing.T, status int, body string, inspect func(r *http.Request, body []byte)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		if inspect != nil {
			inspect(r, data)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestValidate_Success(t *testing.T) {
	calls := 0
	srv := newServer(t, http.StatusOK,
		`{"normalized_text": "Weekly Report", "quality_report": {"reasoning": "Clear and concise", "human_quality_score": 92}}`,
		func(r *http.Request, body []byte) {
			calls++
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/validate", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.JSONEq(t, `{"text": "## Weekly Report"}`, string(body))
		})

	result, err := New(srv.URL).Validate(context.Background(), "## Weekly Report")
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "Weekly Report", result.NormalizedText)
	require.NotNil(t, result.QualityReport)
	assert.Equal(t, "Clear and concise", result.QualityReport.Reasoning)
	assert.Equal(t, float64(92), result.QualityReport.HumanQualityScore)
	assert.Nil(t, result.Usage)
}

func TestValidate_SuccessWithoutReport(t *testing.T) {
	for _, body := range []string{
		`{"normalized_text": "plain"}`,
		`{"normalized_text": "plain", "quality_report": null}`,
	} {
		srv := newServer(t, http.StatusOK, body, nil)
		result, err := New(srv.URL).Validate(context.Background(), "plain")
		require.NoError(t, err)
		assert.Equal(t, "plain", result.NormalizedText)
		assert.Nil(t, result.QualityReport)
	}
}

func TestValidate_ProfileNameAndUsage(t *testing.T) {
	srv := newServer(t, http.StatusOK,
		`{"normalized_text": "ok", "usage": {"count": 3, "limit": 10}}`,
		func(r *http.Request, body []byte) {
			var req map[string]string
			require.NoError(t, json.Unmarshal(body, &req))
			assert.Equal(t, "Legal", req["profile_name"])
		})

	result, err := New(srv.URL+"/", WithProfileName("Legal")).Validate(context.Background(), "text")
	require.NoError(t, err)
	require.NotNil(t, result.Usage)
	assert.Equal(t, 3, result.Usage.Count)
	assert.Equal(t, 10, result.Usage.Limit)
}

func TestValidate_ErrorDetail(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"string detail", http.StatusInternalServerError, `{"detail": "Upstream model unavailable"}`, "Upstream model unavailable"},
		{"list detail", http.StatusUnprocessableEntity, `{"detail": [{"msg": "too short"}, {"msg": "bad profile"}]}`, "too short; bad profile"},
		{"no detail", http.StatusBadGateway, `{}`, GenericErrorMessage},
		{"empty detail", http.StatusBadGateway, `{"detail": ""}`, GenericErrorMessage},
		{"not json", http.StatusServiceUnavailable, `<html>oops</html>`, GenericErrorMessage},
		{"odd detail", http.StatusBadRequest, `{"detail": 42}`, GenericErrorMessage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newServer(t, tt.status, tt.body, nil)
			result, err := New(srv.URL).Validate(context.Background(), "text")
			require.Error(t, err)
			assert.Nil(t, result)

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.want, Message(err))
		})
	}
}

func TestValidate_InvalidSuccessBody(t *testing.T) {
	srv := newServer(t, http.StatusOK, `not json`, nil)
	_, err := New(srv.URL).Validate(context.Background(), "text")
	require.Error(t, err)
	assert.Contains(t, Message(err), "invalid response from validation service")
}

func TestValidate_MissingNormalizedText(t *testing.T) {
	for _, body := range []string{`null`, `{}`, `{"quality_report": {"reasoning": "ok", "human_quality_score": 90}}`} {
		t.Run(body, func(t *testing.T) {
			srv := newServer(t, http.StatusOK, body, nil)
			result, err := New(srv.URL).Validate(context.Background(), "text")
			require.Error(t, err)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, errMissingText)
			assert.Contains(t, Message(err), "invalid response from validation service")
		})
	}
}

func TestValidate_EmptyNormalizedTextIsAResult(t *testing.T) {
	srv := newServer(t, http.StatusOK, `{"normalized_text": ""}`, nil)
	result, err := New(srv.URL).Validate(context.Background(), "text")
	require.NoError(t, err)
	assert.Equal(t, "", result.NormalizedText)
}

func TestValidate_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := New(url).Validate(context.Background(), "text")
	require.Error(t, err)
	msg := Message(err)
	assert.NotEmpty(t, msg)
	assert.NotContains(t, msg, "Post ")
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(mockservice.New())
	defer srv.Close()

	status, err := New(srv.URL).Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", status)
}

func TestHealth_BadStatus(t *testing.T) {
	srv := newServer(t, http.StatusServiceUnavailable, `{}`, nil)
	_, err := New(srv.URL).Health(context.Background())
	require.Error(t, err)
}

func TestValidate_AgainstMockService(t *testing.T) {
	srv := httptest.NewServer(mockservice.New())
	defer srv.Close()

	c := New(srv.URL)
	result, err := c.Validate(context.Background(), "## Weekly Report\nEverything shipped on time.")
	require.NoError(t, err)
	assert.Equal(t, "Weekly Report\nEverything shipped on time.", result.NormalizedText)
	require.NotNil(t, result.QualityReport)

	_, err = c.Validate(context.Background(), "short")
	require.Error(t, err)
	assert.Equal(t, "String should have at least 10 characters", Message(err))
}

func TestMessage_Nil(t *testing.T) {
	assert.Equal(t, "", Message(nil))
}
