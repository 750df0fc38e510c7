//go:build unit

package httptest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// PerformRequest runs one request through the router and records the result.
func PerformRequest(t *testing.T, router http.Handler, method, url string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// AssertSuccessResponse checks the status code and decodes the body into out.
func AssertSuccessResponse(t *testing.T, rec *httptest.ResponseRecorder, expectCode int, out any) {
	t.Helper()

	require.Equal(t, expectCode, rec.Code, "unexpected status, body: %s", rec.Body.String())
	if out != nil {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
	}
}

// AssertErrorResponse checks the status code and returns the error message.
func AssertErrorResponse(t *testing.T, rec *httptest.ResponseRecorder, expectCode int) string {
	t.Helper()

	require.Equal(t, expectCode, rec.Code, "unexpected status, body: %s", rec.Body.String())
	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}
